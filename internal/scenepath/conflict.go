package scenepath

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"eve/internal/logging"
)

// Decision is the outcome chosen when a save target already exists.
type Decision int

const (
	DecisionOverwrite Decision = iota + 1
	DecisionSaveNextVersion
	DecisionCancel
)

func (d Decision) String() string {
	switch d {
	case DecisionOverwrite:
		return "overwrite"
	case DecisionSaveNextVersion:
		return "next"
	case DecisionCancel:
		return "cancel"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

// ParseDecision maps a policy or answer string to a Decision.
func ParseDecision(value string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "o", "overwrite":
		return DecisionOverwrite, nil
	case "n", "next", "save-next", "savenext":
		return DecisionSaveNextVersion, nil
	case "c", "cancel":
		return DecisionCancel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDecision, value)
	}
}

// DecisionProvider chooses what to do about an existing save target. It may
// block, for example while a user answers a prompt.
type DecisionProvider interface {
	Decide(ctx context.Context, existing FilePath) (Decision, error)
}

// DecisionFunc adapts a function to DecisionProvider.
type DecisionFunc func(ctx context.Context, existing FilePath) (Decision, error)

func (f DecisionFunc) Decide(ctx context.Context, existing FilePath) (Decision, error) {
	return f(ctx, existing)
}

// FixedDecision returns a provider that always answers d.
func FixedDecision(d Decision) DecisionProvider {
	return DecisionFunc(func(context.Context, FilePath) (Decision, error) {
		return d, nil
	})
}

// ConflictResolver turns a candidate save path into the path to write.
type ConflictResolver struct {
	fs       FS
	versions *VersionResolver
	logger   *slog.Logger
}

// NewConflictResolver returns a resolver that checks existence through fsys
// and computes new versions with versions. Nil arguments fall back to the
// local filesystem and a resolver over it.
func NewConflictResolver(fsys FS, versions *VersionResolver, logger *slog.Logger) *ConflictResolver {
	if fsys == nil {
		fsys = OSFS{}
	}
	if versions == nil {
		versions = NewVersionResolver(fsys, logger)
	}
	return &ConflictResolver{
		fs:       fsys,
		versions: versions,
		logger:   logging.NewComponentLogger(logger, "conflict"),
	}
}

// ResolveSave checks whether fp exists and resolves the collision if it does.
func (c *ConflictResolver) ResolveSave(ctx context.Context, fp FilePath, decide DecisionProvider) (FilePath, error) {
	exists, err := c.fs.Exists(fp.raw)
	if err != nil {
		return FilePath{}, fmt.Errorf("check %s: %w", fp.raw, err)
	}
	return c.Resolve(ctx, fp, exists, decide)
}

// Resolve returns the path to save to. When exists is false fp is returned
// unchanged and decide is not consulted. Otherwise decide picks between
// overwriting fp, saving one past the highest version on disk, or cancelling,
// which returns ErrCancelled and no path.
func (c *ConflictResolver) Resolve(ctx context.Context, fp FilePath, exists bool, decide DecisionProvider) (FilePath, error) {
	if !exists {
		return fp, nil
	}
	if decide == nil {
		return FilePath{}, errors.New("resolve conflict: no decision provider")
	}

	decision, err := decide.Decide(ctx, fp)
	if err != nil {
		return FilePath{}, fmt.Errorf("resolve conflict for %s: %w", fp.raw, err)
	}
	logger := logging.WithContext(ctx, c.logger)

	switch decision {
	case DecisionOverwrite:
		logger.Info("overwriting existing file", logging.Args(append(
			logging.DecisionAttrs("save_conflict", decision.String(), "target exists"),
			logging.String(logging.FieldPath, fp.raw),
		)...)...)
		return fp, nil
	case DecisionSaveNextVersion:
		latest, err := c.versions.LatestVersion(fp)
		if err != nil {
			return FilePath{}, fmt.Errorf("resolve conflict for %s: %w", fp.raw, err)
		}
		logger.Info("saving next version", logging.Args(append(
			logging.DecisionAttrs("save_conflict", decision.String(), "target exists"),
			logging.String(logging.FieldPath, latest.raw),
		)...)...)
		return latest, nil
	case DecisionCancel:
		logger.Info("save cancelled", logging.Args(append(
			logging.DecisionAttrs("save_conflict", decision.String(), "target exists"),
			logging.String(logging.FieldPath, fp.raw),
		)...)...)
		return FilePath{}, ErrCancelled
	default:
		return FilePath{}, fmt.Errorf("%w: %d", ErrUnknownDecision, int(decision))
	}
}
