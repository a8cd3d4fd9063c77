package scenepath

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"eve/internal/logging"
)

// VersionResolver discovers the versions of a file family on disk.
type VersionResolver struct {
	fs     FS
	logger *slog.Logger
}

// NewVersionResolver returns a resolver reading through fsys. A nil fsys
// reads the local filesystem and a nil logger discards output.
func NewVersionResolver(fsys FS, logger *slog.Logger) *VersionResolver {
	if fsys == nil {
		fsys = OSFS{}
	}
	return &VersionResolver{
		fs:     fsys,
		logger: logging.NewComponentLogger(logger, "versions"),
	}
}

// MaxExistingVersion returns the highest version among location/code_*.extension.
// It fails with *NoVersionsFoundError when the family has no members.
func (r *VersionResolver) MaxExistingVersion(location, code, extension string) (int, error) {
	pattern := escapeGlob(location) + escapeGlob(code) + FieldSeparator + "*" + ExtensionSeparator + escapeGlob(extension)
	members, err := r.scan(pattern, code, extension, false)
	if err != nil {
		return 0, err
	}
	return maxVersion(members, pattern, code)
}

// Versions returns the members of fp's family found on disk, ordered by
// version. Files kept in version folders are looked up across the sibling
// version folders of fp's location.
func (r *VersionResolver) Versions(fp FilePath) ([]FilePath, error) {
	members, err := r.scan(familyPattern(fp), fp.code, fp.extension, fp.HasFolderVersion())
	if err != nil {
		return nil, err
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].version != members[j].version {
			return members[i].version < members[j].version
		}
		return members[i].raw < members[j].raw
	})
	return members, nil
}

// LastVersion returns the highest version of fp's family on disk.
func (r *VersionResolver) LastVersion(fp FilePath) (int, error) {
	pattern := familyPattern(fp)
	members, err := r.scan(pattern, fp.code, fp.extension, fp.HasFolderVersion())
	if err != nil {
		return 0, err
	}
	return maxVersion(members, pattern, fp.code)
}

// LatestVersion returns fp moved to one past the highest version on disk.
// Unlike NextVersion it ignores the version recorded in fp.
func (r *VersionResolver) LatestVersion(fp FilePath) (FilePath, error) {
	last, err := r.LastVersion(fp)
	if err != nil {
		return FilePath{}, err
	}
	latest, err := fp.WithVersion(last + 1)
	if err != nil {
		return FilePath{}, err
	}
	r.logger.Debug("latest version resolved",
		logging.String(logging.FieldPath, latest.raw),
		logging.Int("last_version", last),
	)
	return latest, nil
}

// NextVersion returns fp moved to one past its own version, without
// consulting the filesystem.
func NextVersion(fp FilePath) (FilePath, error) {
	return fp.WithVersion(fp.VersionNumber() + 1)
}

func (r *VersionResolver) scan(pattern, code, extension string, folderVersioned bool) ([]FilePath, error) {
	matches, err := r.fs.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", pattern, err)
	}
	members := make([]FilePath, 0, len(matches))
	for _, match := range matches {
		member, err := Parse(match)
		if err != nil {
			r.logger.Debug("skipping non-conforming file", logging.String(logging.FieldPath, match), logging.Error(err))
			continue
		}
		// code_* also matches longer codes such as AST_NYC_TREE for AST_NYC.
		if member.code != code || member.extension != extension {
			continue
		}
		if folderVersioned && !member.HasFolderVersion() {
			continue
		}
		members = append(members, member)
	}
	return members, nil
}

func maxVersion(members []FilePath, pattern, code string) (int, error) {
	if len(members) == 0 {
		return 0, &NoVersionsFoundError{Pattern: pattern, Code: code}
	}
	highest := 0
	for _, member := range members {
		if n := member.VersionNumber(); n > highest {
			highest = n
		}
	}
	return highest, nil
}

func familyPattern(fp FilePath) string {
	name := escapeGlob(fp.code) + FieldSeparator + "*" + ExtensionSeparator + escapeGlob(fp.extension)
	if !fp.HasFolderVersion() {
		return escapeGlob(fp.location) + name
	}
	parent := strings.TrimSuffix(fp.location, Separator)
	parent = parent[:len(parent)-VersionWidth]
	return escapeGlob(parent) + strings.Repeat("[0-9]", VersionWidth) + Separator + name
}
