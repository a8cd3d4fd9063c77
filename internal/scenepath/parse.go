package scenepath

import (
	"fmt"
	"strings"
)

// Parse disassembles raw into a FilePath.
//
// raw must contain a directory separator, an extension, and at least a
// prefix and a three-digit version token in the file name. Anything else is
// reported as a *ParseError.
func Parse(raw string) (FilePath, error) {
	idx := strings.LastIndex(raw, Separator)
	if idx < 0 {
		return FilePath{}, &ParseError{Path: raw, Reason: "missing directory"}
	}
	location, name := raw[:idx+len(Separator)], raw[idx+len(Separator):]
	if name == "" {
		return FilePath{}, &ParseError{Path: raw, Reason: "missing file name"}
	}

	dot := strings.LastIndex(name, ExtensionSeparator)
	if dot < 0 {
		return FilePath{}, &ParseError{Path: raw, Reason: "missing extension"}
	}
	codeVersion, extension := name[:dot], name[dot+len(ExtensionSeparator):]
	if extension == "" {
		return FilePath{}, &ParseError{Path: raw, Reason: "empty extension"}
	}

	tokens := strings.Split(codeVersion, FieldSeparator)
	if len(tokens) < 2 {
		return FilePath{}, &ParseError{Path: raw, Reason: "missing version token"}
	}
	for _, token := range tokens {
		if token == "" {
			return FilePath{}, &ParseError{Path: raw, Reason: "empty name token"}
		}
	}
	version := tokens[len(tokens)-1]
	if _, ok := ParseVersion(version); !ok {
		return FilePath{}, &ParseError{
			Path:   raw,
			Reason: fmt.Sprintf("version token %q is not a %d-digit number", version, VersionWidth),
		}
	}

	fp := FilePath{
		raw:       raw,
		kind:      KindPath,
		location:  location,
		prefix:    tokens[0],
		base:      strings.Join(tokens[1:len(tokens)-1], FieldSeparator),
		version:   version,
		extension: extension,
	}
	fp.code = joinCode(fp.prefix, fp.base)

	// A three-digit parent that disagrees with the file version is an ordinary
	// directory (sequence folders such as "010"), not a version folder.
	if folder := parentFolder(location); folder == version {
		fp.folderVersion = folder
	}
	return fp, nil
}

// parentFolder returns the immediate parent directory name of a location when
// it is a three-digit numeral.
func parentFolder(location string) string {
	trimmed := strings.TrimSuffix(location, Separator)
	folder := trimmed[strings.LastIndex(trimmed, Separator)+1:]
	if _, ok := ParseVersion(folder); !ok {
		return ""
	}
	return folder
}
