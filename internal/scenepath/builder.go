package scenepath

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const defaultSceneExtension = "hip"

// FileType identifies a category of pipeline file and the prefix its names
// start with (for example asset_hip / AST).
type FileType struct {
	ID          int64
	Name        string
	Prefix      string
	Description string
}

// AssetCategory groups assets (character, environment, prop).
type AssetCategory struct {
	ID          int64
	Name        string
	Description string
}

// Roots lists the category directories derived from a project root.
type Roots struct {
	Project  string
	Assets   string
	Shots    string
	Render3D string
	Render2D string
	Comp     string
}

func newRoots(project string) Roots {
	join := func(sub string) string { return project + Separator + sub }
	return Roots{
		Project:  project,
		Assets:   join(assetScenesDir),
		Shots:    join(shotScenesDir),
		Render3D: join(render3DDir),
		Render2D: join(render2DDir),
		Comp:     join(compDir),
	}
}

// Builder assembles paths for the known file categories of one project.
type Builder struct {
	roots     Roots
	extension string
	upper     cases.Caser
}

// BuilderOption customizes a Builder.
type BuilderOption func(*Builder)

// WithSceneExtension sets the extension of scene files (default "hip").
func WithSceneExtension(ext string) BuilderOption {
	return func(b *Builder) {
		if ext = strings.TrimPrefix(strings.TrimSpace(ext), ExtensionSeparator); ext != "" {
			b.extension = ext
		}
	}
}

// NewBuilder returns a Builder rooted at projectRoot. The root is converted to
// slash form once; an empty root is rejected here rather than when a path is
// built.
func NewBuilder(projectRoot string, opts ...BuilderOption) (*Builder, error) {
	root := strings.TrimSpace(projectRoot)
	if root == "" {
		return nil, ErrMissingProjectRoot
	}
	root = strings.TrimRight(filepath.ToSlash(root), Separator)

	b := &Builder{
		roots:     newRoots(root),
		extension: defaultSceneExtension,
		upper:     cases.Upper(language.Und),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Roots returns the category directories of the builder's project.
func (b *Builder) Roots() Roots { return b.roots }

// Extension returns the scene file extension.
func (b *Builder) Extension() string { return b.extension }

// AssetScene returns the working scene path of an asset:
//
//	<assets>/<CATEGORY_PLURAL>/<asset>/<prefix>_<asset>_<version>.<ext>
func (b *Builder) AssetScene(fileType FileType, category AssetCategory, asset string, version int) (FilePath, error) {
	if err := checkName("asset category", category.Name); err != nil {
		return FilePath{}, err
	}
	if err := checkName("asset name", asset); err != nil {
		return FilePath{}, err
	}
	folder := b.upper.String(category.Name + categoryFolderSuffix)
	location := strings.Join([]string{b.roots.Assets, folder, asset}, Separator) + Separator
	return b.assemble(fileType, location, asset, version)
}

// ShotRenderScene returns the render scene path of a shot:
//
//	<shots>/RENDER/<sequence>/<shot>/<prefix>_<shot>_<version>.<ext>
func (b *Builder) ShotRenderScene(fileType FileType, sequence, shot string, version int) (FilePath, error) {
	if err := checkName("sequence name", sequence); err != nil {
		return FilePath{}, err
	}
	if err := checkName("shot name", shot); err != nil {
		return FilePath{}, err
	}
	location := strings.Join([]string{b.roots.Shots, renderScenesDir, sequence, shot}, Separator) + Separator
	return b.assemble(fileType, location, shot, version)
}

func (b *Builder) assemble(fileType FileType, location, base string, version int) (FilePath, error) {
	prefix := strings.TrimSpace(fileType.Prefix)
	if prefix == "" || strings.Contains(prefix, FieldSeparator) {
		return FilePath{}, fmt.Errorf("%w: file type %q prefix %q", ErrInvalidName, fileType.Name, fileType.Prefix)
	}
	token, err := FormatVersion(version)
	if err != nil {
		return FilePath{}, err
	}
	fp := FilePath{
		kind:      KindPath,
		location:  location,
		prefix:    prefix,
		base:      base,
		version:   token,
		code:      joinCode(prefix, base),
		extension: b.extension,
	}
	fp.rebuild()
	return fp, nil
}

func checkName(field, value string) error {
	switch {
	case strings.TrimSpace(value) == "":
		return fmt.Errorf("%w: %s is empty", ErrInvalidName, field)
	case value != strings.TrimSpace(value):
		return fmt.Errorf("%w: %s %q has surrounding whitespace", ErrInvalidName, field, value)
	case strings.ContainsAny(value, `/\.`):
		return fmt.Errorf("%w: %s %q contains a separator", ErrInvalidName, field, value)
	case strings.HasPrefix(value, FieldSeparator) || strings.HasSuffix(value, FieldSeparator) ||
		strings.Contains(value, FieldSeparator+FieldSeparator):
		return fmt.Errorf("%w: %s %q has an empty %q token", ErrInvalidName, field, value, FieldSeparator)
	}
	return nil
}

const categoryFolderSuffix = "s"

// CategoryFolder returns the directory name used for an asset category, for
// example CHARACTERS for character.
func CategoryFolder(category string) string {
	return cases.Upper(language.Und).String(category + categoryFolderSuffix)
}
