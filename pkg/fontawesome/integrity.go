package fontawesome

import (
	"crypto/sha512"
	"encoding/base64"
	"strings"
)

// Subresource integrity digests of the minified DefaultVersion files on the
// CDN, keyed by style name. The core stylesheet has no entry, so its tag
// carries no integrity attribute unless the caller supplies one.
var (
	cssIntegrity = map[string]string{
		"all":     "sha512-xh6O/CkQoPOWDdYTDqeRdPCVd1SpvCA9XXcUnZS2FmJNp1coAFzvtCN9BmamE+4aHK8yyUHUSCcJHgXloTyT2A==",
		"regular": "sha512-aNH2ILn88yXgp/1dcFPt2/EkSNc03f9HBFX0rqX3Kw37+vjipi1pK3L9W08TZLhMg4Slk810sPLdJlNIjwygFw==",
		"solid":   "sha512-uj2QCZdpo8PSbRGL/g5mXek6HM/APd7k/B5Hx/rkVFPNOxAQMXD+t+bG4Zv8OAdUpydZTU3UHmyjjiHv2Ww0PA==",
		"brands":  "sha512-+oRH6u1nDGSm3hH8poU85YFIVTdSnS2f+texdPGrURaJh8hzmhMiZrQth6l56P4ZQmxeZzd2DqVEMqQoJ8J89A==",
	}
	jsIntegrity = map[string]string{
		"all":         "sha512-naukR7I+Nk6gp7p5TMA4ycgfxaZBJ7MO5iC3Fp6ySQyKFHOGfpkSZkYVWV5R7u7cfAicxanwYQ5D1e17EfJcMA==",
		"regular":     "sha512-Kcbb5bDGCQQwo67YHS9uDvRmyrNEqHLPA1Kmn0eqrritqGDp3OpkBGvHk36GNEH44MtWM1L5k3i9MSQPMkNIuA==",
		"solid":       "sha512-dcTe66qF6q/NW1X64tKXnDDcaVyRowrsVQ9wX6u7KSQpYuAl5COzdMIYDg+HqAXhPpIz1LO9ilUCL4qCbHN5Ng==",
		"brands":      "sha512-1e+6G7fuQ5RdPcZcRTnR3++VY2mjeh0+zFdrD580Ell/XcUw/DQLgad5XSCX+y2p/dmJwboZYBPoiNn77YAL5A==",
		"fontawesome": "sha512-j3gF1rYV2kvAKJ0Jo5CdgLgSYS7QYmBVVUjduXdoeBkc4NFV4aSRTi+Rodkiy9ht7ZYEwF+s09S43Z1Y+ujUkA==",
	}
)

// KnownIntegrity returns the built-in SRI digest for a, if there is one.
func KnownIntegrity(a Asset) (string, bool) {
	if a.Version != DefaultVersion || !a.Minified {
		return "", false
	}
	var table map[string]string
	switch a.Ext {
	case ExtCSS:
		table = cssIntegrity
	case ExtJS:
		table = jsIntegrity
	default:
		return "", false
	}
	sri, ok := table[a.Style.String()]
	return sri, ok
}

// ComputeIntegrity returns the sha512 SRI string of data.
func ComputeIntegrity(data []byte) string {
	sum := sha512.Sum512(data)
	return "sha512-" + base64.StdEncoding.EncodeToString(sum[:])
}

// matchesIntegrity reports whether data hashes to the sha512 SRI digest sri.
// Digests for other algorithms never match.
func matchesIntegrity(data []byte, sri string) bool {
	if !strings.HasPrefix(sri, "sha512-") {
		return false
	}
	return ComputeIntegrity(data) == sri
}
