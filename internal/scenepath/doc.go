// Package scenepath names, parses, and versions pipeline scene files.
//
// Every scene file follows one grammar:
//
//	<file_path> = <location>/<name>
//	<name>      = <code>_<version>.<extension>
//	<code>      = <prefix>[_<base>]
//	<version>   = three-digit zero-padded integer ("001")
//
// A file may also live inside a folder named after its version
// (".../001/AST_NYC_001.hip"). When it does, the folder and file versions are
// kept identical whenever the version changes.
//
// Parse disassembles a path string into a FilePath and Build reassembles it.
// Builder produces paths for the known file categories from a project root.
// VersionResolver scans the filesystem for the other members of a file family,
// and ConflictResolver decides what to do when a save target already exists.
// The package only reads directory listings and existence checks; it never
// writes to disk.
package scenepath
