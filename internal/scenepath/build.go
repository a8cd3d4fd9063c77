package scenepath

// Build assembles the path string for fp. It never touches the filesystem.
//
// When fp lives in a version folder, the folder segment at the end of the
// location is replaced with the current file version.
func Build(fp FilePath) string {
	return buildLocation(fp) + fp.Name()
}

func buildLocation(fp FilePath) string {
	location := fp.location
	if fp.folderVersion == "" {
		return location
	}
	cut := len(location) - len(Separator) - VersionWidth
	if cut < 0 {
		return location
	}
	return location[:cut] + fp.version + Separator
}
