// Package scaffold lays out the directory tree of a new project.
//
// Template describes the tree from the project's asset categories and
// sequences; Create materializes it under a project root. The scene
// directories match the locations scenepath.Builder produces, so files built
// for a catalogued asset or shot land in a directory that already exists.
package scaffold
