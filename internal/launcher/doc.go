// Package launcher prepares the project environment for the host
// application and starts it detached from the CLI.
package launcher
