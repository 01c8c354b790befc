// Package since holds module-wide metadata for the since application.
package since

// Version is the release version reported by the CLI.
const Version = "v0.3.0"
