package filewatcher

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain enables goroutine leak detection for all tests in this package
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
