package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

const projectColumns = "id, name, houdini_build, description, created_at"

// AddProject inserts a project and returns the stored row.
func (s *Store) AddProject(ctx context.Context, project Project) (*Project, error) {
	name, err := requireName("project", project.Name)
	if err != nil {
		return nil, err
	}
	created := time.Now().UTC()
	id, err := s.insert(ctx, "project "+name,
		`INSERT INTO projects (name, houdini_build, description, created_at) VALUES (?, ?, ?, ?)`,
		name,
		strings.TrimSpace(project.HoudiniBuild),
		project.Description,
		created.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, err
	}
	return s.GetProject(ctx, id)
}

// GetProject fetches a project by identifier.
func (s *Store) GetProject(ctx context.Context, id int64) (*Project, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

// GetProjectByName fetches a project by its unique name.
func (s *Store) GetProjectByName(ctx context.Context, name string) (*Project, error) {
	name = strings.TrimSpace(name)
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+projectColumns+` FROM projects WHERE name = ?`, name)
	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project by name: %w", err)
	}
	return project, nil
}

// ListProjects returns every project ordered by name.
func (s *Store) ListProjects(ctx context.Context) ([]*Project, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx), `SELECT `+projectColumns+` FROM projects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// UpdateProject persists the mutable fields of an existing project.
func (s *Store) UpdateProject(ctx context.Context, project *Project) error {
	if project == nil {
		return errors.New("project is nil")
	}
	name, err := requireName("project", project.Name)
	if err != nil {
		return err
	}
	res, err := s.execWithRetry(ctx,
		`UPDATE projects SET name = ?, houdini_build = ?, description = ? WHERE id = ?`,
		name,
		strings.TrimSpace(project.HoudiniBuild),
		project.Description,
		project.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update project %q: %w", name, ErrDuplicate)
		}
		return fmt.Errorf("update project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("project %d: %w", project.ID, ErrNotFound)
	}
	project.Name = name
	return nil
}

// DeleteProject removes a project along with its assets, sequences, and shots.
func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	res, err := s.execWithRetry(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanProject(row rowScanner) (*Project, error) {
	var (
		p       Project
		created string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.HoudiniBuild, &p.Description, &created); err != nil {
		return nil, err
	}
	p.CreatedAt = parseTimestamp(created)
	return &p, nil
}
