package main

import "github.com/ideamans/fontawesome/cmd/fontawesome/cmd"

func main() {
	cmd.Execute()
}
