package scenepath

import (
	"fmt"
	"strconv"
)

const (
	// Separator delimits directories. Backslashes are never rewritten.
	Separator = "/"
	// FieldSeparator delimits prefix, base tokens, and version in a file name.
	FieldSeparator = "_"
	// ExtensionSeparator precedes the file extension.
	ExtensionSeparator = "."

	// VersionWidth is the zero-padded width of file and folder versions.
	VersionWidth = 3
	// MaxVersion is the largest version the width can express.
	MaxVersion = 999
)

// Project sub-directories that category roots hang off.
const (
	assetScenesDir  = "PROD/3D/scenes/ASSETS"
	shotScenesDir   = "PROD/3D/scenes/SHOTS"
	render3DDir     = "PROD/3D/images"
	render2DDir     = "PROD/2D/RENDER"
	compDir         = "PROD/2D/COMP"
	renderScenesDir = "RENDER"
)

// Kind classifies a path string.
//
// Only KindPath is produced by Parse. Frame sequences
// (code_version.frame.ext) and bare locations are reserved so they can be
// added without changing how plain files are handled.
type Kind int

const (
	KindPath Kind = iota
	KindSequence
	KindLocation
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindSequence:
		return "sequence"
	case KindLocation:
		return "location"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// FormatVersion renders n as a zero-padded version token.
func FormatVersion(n int) (string, error) {
	if n < 0 || n > MaxVersion {
		return "", fmt.Errorf("%w: %d (want 0-%d)", ErrVersionOverflow, n, MaxVersion)
	}
	return fmt.Sprintf("%0*d", VersionWidth, n), nil
}

// ParseVersion reports the integer value of a version token. The token must
// be exactly VersionWidth ASCII digits.
func ParseVersion(token string) (int, bool) {
	if len(token) != VersionWidth {
		return 0, false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}

func joinCode(prefix, base string) string {
	if base == "" {
		return prefix
	}
	return prefix + FieldSeparator + base
}
