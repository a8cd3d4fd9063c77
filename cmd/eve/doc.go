// Command eve is the pipeline CLI: it parses and builds scene file paths,
// resolves save conflicts against the versions on disk, keeps the production
// catalog, scaffolds project folders, and launches the host application with
// the project environment.
package main
