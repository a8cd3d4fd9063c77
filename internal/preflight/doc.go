// Package preflight provides readiness checks for the filesystem paths and
// external binaries Eve depends on.
//
// The CLI "eve doctor" command runs RunAll and renders the results; "eve
// launch" uses CheckBinary before starting the host application.
package preflight
