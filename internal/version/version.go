// internal/version/version.go
package version

// Version is stamped into --version output and usage headers.
const Version = "0.3.1"
