// Package clients holds build metadata for the clients module.
package clients

// Version is the module version reported by the CLI.
const Version = "0.1.0"
