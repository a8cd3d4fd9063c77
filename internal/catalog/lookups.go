package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// FileType fetches a file type by name, for example "asset_hip".
func (s *Store) FileType(ctx context.Context, name string) (*FileType, error) {
	var ft FileType
	err := s.db.QueryRowContext(ensureContext(ctx),
		`SELECT id, name, prefix, description FROM file_types WHERE name = ?`, name,
	).Scan(&ft.ID, &ft.Name, &ft.Prefix, &ft.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("file type %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get file type: %w", err)
	}
	return &ft, nil
}

// ListFileTypes returns every registered file type ordered by name.
func (s *Store) ListFileTypes(ctx context.Context) ([]FileType, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx), `SELECT id, name, prefix, description FROM file_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list file types: %w", err)
	}
	defer rows.Close()

	var types []FileType
	for rows.Next() {
		var ft FileType
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.Prefix, &ft.Description); err != nil {
			return nil, fmt.Errorf("scan file type: %w", err)
		}
		types = append(types, ft)
	}
	return types, rows.Err()
}

// AssetCategory fetches an asset category by identifier.
func (s *Store) AssetCategory(ctx context.Context, id int64) (*AssetCategory, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT id, name, description FROM asset_categories WHERE id = ?`, id)
	return scanCategory(row, fmt.Sprintf("asset category %d", id))
}

// AssetCategoryByName fetches an asset category by name, for example "prop".
func (s *Store) AssetCategoryByName(ctx context.Context, name string) (*AssetCategory, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT id, name, description FROM asset_categories WHERE name = ?`, name)
	return scanCategory(row, fmt.Sprintf("asset category %q", name))
}

// ListAssetCategories returns every asset category ordered by name.
func (s *Store) ListAssetCategories(ctx context.Context) ([]AssetCategory, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx), `SELECT id, name, description FROM asset_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list asset categories: %w", err)
	}
	defer rows.Close()

	var categories []AssetCategory
	for rows.Next() {
		var c AssetCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan asset category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func scanCategory(row rowScanner, label string) (*AssetCategory, error) {
	var c AssetCategory
	err := row.Scan(&c.ID, &c.Name, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", label, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get asset category: %w", err)
	}
	return &c, nil
}
