package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const (
	sequenceColumns = "id, name, project_id, description"
	shotColumns     = "id, name, project_id, sequence_id, linked_asset_id, start_frame, end_frame, width, height, description"
)

// AddSequence inserts a sequence into its project.
func (s *Store) AddSequence(ctx context.Context, sequence Sequence) (*Sequence, error) {
	name, err := requireName("sequence", sequence.Name)
	if err != nil {
		return nil, err
	}
	if sequence.ProjectID == 0 {
		return nil, fmt.Errorf("%w: sequence %q needs a project", ErrInvalidRecord, name)
	}
	id, err := s.insert(ctx, "sequence "+name,
		`INSERT INTO sequences (name, project_id, description) VALUES (?, ?, ?)`,
		name, sequence.ProjectID, sequence.Description,
	)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+sequenceColumns+` FROM sequences WHERE id = ?`, id)
	stored, err := scanSequence(row)
	if err != nil {
		return nil, fmt.Errorf("get sequence: %w", err)
	}
	return stored, nil
}

// GetSequenceByName fetches a sequence of a project by name.
func (s *Store) GetSequenceByName(ctx context.Context, projectID int64, name string) (*Sequence, error) {
	row := s.db.QueryRowContext(ensureContext(ctx),
		`SELECT `+sequenceColumns+` FROM sequences WHERE project_id = ? AND name = ?`, projectID, name)
	sequence, err := scanSequence(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sequence %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get sequence by name: %w", err)
	}
	return sequence, nil
}

// ListSequences returns the sequences of a project ordered by name.
func (s *Store) ListSequences(ctx context.Context, projectID int64) ([]*Sequence, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx),
		`SELECT `+sequenceColumns+` FROM sequences WHERE project_id = ? ORDER BY name`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sequences: %w", err)
	}
	defer rows.Close()

	var sequences []*Sequence
	for rows.Next() {
		sequence, err := scanSequence(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sequence: %w", err)
		}
		sequences = append(sequences, sequence)
	}
	return sequences, rows.Err()
}

// AddShot inserts a shot into a sequence. Zero frame ranges and resolutions
// take the studio defaults.
func (s *Store) AddShot(ctx context.Context, shot Shot) (*Shot, error) {
	name, err := requireName("shot", shot.Name)
	if err != nil {
		return nil, err
	}
	if shot.ProjectID == 0 || shot.SequenceID == 0 {
		return nil, fmt.Errorf("%w: shot %q needs a project and a sequence", ErrInvalidRecord, name)
	}
	if shot.StartFrame == 0 && shot.EndFrame == 0 {
		shot.StartFrame, shot.EndFrame = defaultStartFrame, defaultEndFrame
	}
	if shot.EndFrame < shot.StartFrame {
		return nil, fmt.Errorf("%w: shot %q ends (%d) before it starts (%d)", ErrInvalidRecord, name, shot.EndFrame, shot.StartFrame)
	}
	if shot.Width == 0 && shot.Height == 0 {
		shot.Width, shot.Height = defaultWidth, defaultHeight
	}
	if shot.Width <= 0 || shot.Height <= 0 {
		return nil, fmt.Errorf("%w: shot %q resolution %dx%d", ErrInvalidRecord, name, shot.Width, shot.Height)
	}

	id, err := s.insert(ctx, "shot "+name,
		`INSERT INTO shots (
            name, project_id, sequence_id, linked_asset_id,
            start_frame, end_frame, width, height, description
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name,
		shot.ProjectID,
		shot.SequenceID,
		nullableID(shot.LinkedAssetID),
		shot.StartFrame,
		shot.EndFrame,
		shot.Width,
		shot.Height,
		shot.Description,
	)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+shotColumns+` FROM shots WHERE id = ?`, id)
	stored, err := scanShot(row)
	if err != nil {
		return nil, fmt.Errorf("get shot: %w", err)
	}
	return stored, nil
}

// GetShotByName fetches a shot of a sequence by name.
func (s *Store) GetShotByName(ctx context.Context, sequenceID int64, name string) (*Shot, error) {
	row := s.db.QueryRowContext(ensureContext(ctx),
		`SELECT `+shotColumns+` FROM shots WHERE sequence_id = ? AND name = ?`, sequenceID, name)
	shot, err := scanShot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("shot %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get shot by name: %w", err)
	}
	return shot, nil
}

// ListShots returns the shots of a sequence ordered by name.
func (s *Store) ListShots(ctx context.Context, sequenceID int64) ([]*Shot, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx),
		`SELECT `+shotColumns+` FROM shots WHERE sequence_id = ? ORDER BY name`, sequenceID)
	if err != nil {
		return nil, fmt.Errorf("list shots: %w", err)
	}
	defer rows.Close()

	var shots []*Shot
	for rows.Next() {
		shot, err := scanShot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shot: %w", err)
		}
		shots = append(shots, shot)
	}
	return shots, rows.Err()
}

func scanSequence(row rowScanner) (*Sequence, error) {
	var q Sequence
	if err := row.Scan(&q.ID, &q.Name, &q.ProjectID, &q.Description); err != nil {
		return nil, err
	}
	return &q, nil
}

func scanShot(row rowScanner) (*Shot, error) {
	var (
		sh     Shot
		linked sql.NullInt64
	)
	if err := row.Scan(
		&sh.ID, &sh.Name, &sh.ProjectID, &sh.SequenceID, &linked,
		&sh.StartFrame, &sh.EndFrame, &sh.Width, &sh.Height, &sh.Description,
	); err != nil {
		return nil, err
	}
	sh.LinkedAssetID = idFromNull(linked)
	return &sh, nil
}
