package version

import _ "embed"

//go:embed VERSION
var Version string

// Get reports the build version baked into the binary.
func Get() string {
	return Version
}
