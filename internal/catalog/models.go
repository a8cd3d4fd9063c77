package catalog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"eve/internal/scenepath"
)

// Project is a production with its own root directory under the projects
// directory.
type Project struct {
	ID           int64
	Name         string
	HoudiniBuild string
	Description  string
	CreatedAt    time.Time
}

// Asset belongs to a project and is filed under one category.
type Asset struct {
	ID          int64
	Name        string
	ProjectID   int64
	CategoryID  int64
	Description string
}

// Sequence groups shots within a project.
type Sequence struct {
	ID          int64
	Name        string
	ProjectID   int64
	Description string
}

// Shot is a frame range inside a sequence, optionally linked to an asset.
type Shot struct {
	ID            int64
	Name          string
	ProjectID     int64
	SequenceID    int64
	LinkedAssetID int64 // zero when unlinked
	StartFrame    int
	EndFrame      int
	Width         int
	Height        int
	Description   string
}

// FileType is a naming prefix registered in the catalog.
type FileType struct {
	ID          int64
	Name        string
	Prefix      string
	Description string
}

// ScenePath converts the row for use with scenepath.Builder.
func (f FileType) ScenePath() scenepath.FileType {
	return scenepath.FileType{ID: f.ID, Name: f.Name, Prefix: f.Prefix, Description: f.Description}
}

// AssetCategory is an asset grouping registered in the catalog.
type AssetCategory struct {
	ID          int64
	Name        string
	Description string
}

// ScenePath converts the row for use with scenepath.Builder.
func (c AssetCategory) ScenePath() scenepath.AssetCategory {
	return scenepath.AssetCategory{ID: c.ID, Name: c.Name, Description: c.Description}
}

const (
	defaultStartFrame = 1001
	defaultEndFrame   = 1100
	defaultWidth      = 1920
	defaultHeight     = 1080
)

func requireName(kind, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s name is required", ErrInvalidRecord, kind)
	}
	if strings.ContainsAny(trimmed, `/\`) {
		return "", fmt.Errorf("%w: %s name %q contains a path separator", ErrInvalidRecord, kind, trimmed)
	}
	return trimmed, nil
}

func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func idFromNull(v sql.NullInt64) int64 {
	if !v.Valid {
		return 0
	}
	return v.Int64
}

func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

type rowScanner interface {
	Scan(dest ...any) error
}
