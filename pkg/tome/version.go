// Package tome carries module-level metadata shared by the CLI and server.
package tome

// Version is the current tome release.
const Version = "0.1.0"
