package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Render is one scramble drawn by the CLI.
type Render struct {
	RenderID  string
	CreatedAt time.Time
	Event     *string
	Size      int
	Scramble  string
	MoveCount int
	SVG       string
}

// RenderRepository provides CRUD operations for renders.
type RenderRepository struct {
	db *DB
}

// NewRenderRepository creates a new render repository.
func NewRenderRepository(db *DB) *RenderRepository {
	return &RenderRepository{db: db}
}

// Create stores a render and returns its ID.
func (r *RenderRepository) Create(event string, size int, scramble string, moveCount int, svg string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var eventPtr *string
	if event != "" {
		eventPtr = &event
	}

	_, err := r.db.Exec(`
		INSERT INTO renders (render_id, created_at, event, size, scramble_text, move_count, svg)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), eventPtr, size, scramble, moveCount, svg)

	if err != nil {
		return "", fmt.Errorf("failed to create render: %w", err)
	}

	return id, nil
}

const renderColumns = `render_id, created_at, event, size, scramble_text, move_count, svg`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRender(row rowScanner) (*Render, error) {
	var rd Render
	var createdAtStr string
	if err := row.Scan(&rd.RenderID, &createdAtStr, &rd.Event, &rd.Size, &rd.Scramble, &rd.MoveCount, &rd.SVG); err != nil {
		return nil, err
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	rd.CreatedAt = createdAt
	return &rd, nil
}

// Get retrieves a render by ID. It returns nil if none exists.
func (r *RenderRepository) Get(renderID string) (*Render, error) {
	rd, err := scanRender(r.db.QueryRow(`SELECT `+renderColumns+` FROM renders WHERE render_id = ?`, renderID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get render: %w", err)
	}
	return rd, nil
}

// GetLast retrieves the most recent render. It returns nil if there are none.
func (r *RenderRepository) GetLast() (*Render, error) {
	rd, err := scanRender(r.db.QueryRow(`SELECT ` + renderColumns + ` FROM renders ORDER BY rowid DESC LIMIT 1`))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last render: %w", err)
	}
	return rd, nil
}

// List retrieves renders newest first. An empty event matches all events;
// limit <= 0 means no limit.
func (r *RenderRepository) List(event string, limit int) ([]Render, error) {
	query := `SELECT ` + renderColumns + ` FROM renders`
	var args []any
	if event != "" {
		query += ` WHERE event = ?`
		args = append(args, event)
	}
	query += ` ORDER BY rowid DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list renders: %w", err)
	}
	defer rows.Close()

	var renders []Render
	for rows.Next() {
		rd, err := scanRender(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan render: %w", err)
		}
		renders = append(renders, *rd)
	}

	return renders, rows.Err()
}

// Count returns the number of stored renders.
func (r *RenderRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM renders").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count renders: %w", err)
	}
	return count, nil
}

// Delete removes a render. It reports whether a row was deleted.
func (r *RenderRepository) Delete(renderID string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM renders WHERE render_id = ?", renderID)
	if err != nil {
		return false, fmt.Errorf("failed to delete render: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}

// Prune keeps the newest keep renders and deletes the rest, returning how
// many were removed.
func (r *RenderRepository) Prune(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	var removed int64
	err := r.db.Transaction(func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			DELETE FROM renders
			WHERE rowid NOT IN (SELECT rowid FROM renders ORDER BY rowid DESC LIMIT ?)
		`, keep)
		if err != nil {
			return fmt.Errorf("failed to prune renders: %w", err)
		}
		removed, err = result.RowsAffected()
		return err
	})
	return removed, err
}
