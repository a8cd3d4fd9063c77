package scenepath

// FilePath is a scene file path split into its naming components.
//
// A FilePath is a value: version changes return a new FilePath whose raw
// string has been rebuilt, so Raw always agrees with the other fields.
type FilePath struct {
	raw           string
	kind          Kind
	location      string
	folderVersion string
	prefix        string
	base          string
	version       string
	code          string
	extension     string
}

// Raw returns the full path string.
func (p FilePath) Raw() string { return p.raw }

// String implements fmt.Stringer.
func (p FilePath) String() string { return p.raw }

// IsZero reports whether p holds no path.
func (p FilePath) IsZero() bool { return p.raw == "" }

func (p FilePath) Kind() Kind { return p.kind }

// Location returns the directory portion, always ending in Separator.
func (p FilePath) Location() string { return p.location }

// Name returns the file name: code, version, and extension.
func (p FilePath) Name() string {
	return p.code + FieldSeparator + p.version + ExtensionSeparator + p.extension
}

// FolderVersion returns the version folder name, or "" when the file is not
// stored in a version folder.
func (p FilePath) FolderVersion() string { return p.folderVersion }

func (p FilePath) HasFolderVersion() bool { return p.folderVersion != "" }

func (p FilePath) Prefix() string { return p.prefix }

// Base returns the tokens between prefix and version, rejoined with
// FieldSeparator. It is empty for names of the form prefix_version.
func (p FilePath) Base() string { return p.base }

// Version returns the zero-padded file version token.
func (p FilePath) Version() string { return p.version }

// VersionNumber returns the integer value of Version.
func (p FilePath) VersionNumber() int {
	n, _ := ParseVersion(p.version)
	return n
}

// Code returns the version-independent identity of the file family.
func (p FilePath) Code() string { return p.code }

func (p FilePath) Extension() string { return p.extension }

// WithVersion returns a copy of p at version n. A version folder, if
// present, is renamed to match.
func (p FilePath) WithVersion(n int) (FilePath, error) {
	token, err := FormatVersion(n)
	if err != nil {
		return FilePath{}, err
	}
	next := p
	next.version = token
	if next.folderVersion != "" {
		next.folderVersion = token
	}
	next.rebuild()
	return next, nil
}

func (p *FilePath) rebuild() {
	p.location = buildLocation(*p)
	p.raw = p.location + p.Name()
}
