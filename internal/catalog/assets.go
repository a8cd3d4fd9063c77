package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const assetColumns = "id, name, project_id, category_id, description"

// AddAsset inserts an asset into its project.
func (s *Store) AddAsset(ctx context.Context, asset Asset) (*Asset, error) {
	name, err := requireName("asset", asset.Name)
	if err != nil {
		return nil, err
	}
	if asset.ProjectID == 0 || asset.CategoryID == 0 {
		return nil, fmt.Errorf("%w: asset %q needs a project and a category", ErrInvalidRecord, name)
	}
	id, err := s.insert(ctx, "asset "+name,
		`INSERT INTO assets (name, project_id, category_id, description) VALUES (?, ?, ?, ?)`,
		name, asset.ProjectID, asset.CategoryID, asset.Description,
	)
	if err != nil {
		return nil, err
	}
	return s.GetAsset(ctx, id)
}

// GetAsset fetches an asset by identifier.
func (s *Store) GetAsset(ctx context.Context, id int64) (*Asset, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+assetColumns+` FROM assets WHERE id = ?`, id)
	asset, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("asset %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return asset, nil
}

// GetAssetByName fetches an asset of a project by name.
func (s *Store) GetAssetByName(ctx context.Context, projectID int64, name string) (*Asset, error) {
	row := s.db.QueryRowContext(ensureContext(ctx),
		`SELECT `+assetColumns+` FROM assets WHERE project_id = ? AND name = ?`, projectID, name)
	asset, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("asset %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get asset by name: %w", err)
	}
	return asset, nil
}

// ListAssets returns the assets of a project ordered by name.
func (s *Store) ListAssets(ctx context.Context, projectID int64) ([]*Asset, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx),
		`SELECT `+assetColumns+` FROM assets WHERE project_id = ? ORDER BY name`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var assets []*Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

func scanAsset(row rowScanner) (*Asset, error) {
	var a Asset
	if err := row.Scan(&a.ID, &a.Name, &a.ProjectID, &a.CategoryID, &a.Description); err != nil {
		return nil, err
	}
	return &a, nil
}
