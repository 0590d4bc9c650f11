package version

// Version is the mochi CLI version. Overridden at build time with
// -ldflags "-X github.com/mochi-tools/mochi-go/internal/version.Version=...".
var Version = "0.1.0-dev"
