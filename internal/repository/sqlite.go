package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"sketchpad/internal/scene"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("scene not found")

//go:embed migrations/*.sql
var migrations embed.FS

// ============================================================
// SQLite Repository
// ============================================================

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Summary describes a stored scene without its shapes.
type Summary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Version    int    `json:"version"`
	ShapeCount int    `json:"shapeCount"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// Init applies the embedded migrations.
func (r *Repository) Init(ctx context.Context) error {
	if err := r.runMigrations(ctx); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Create stores doc under a fresh id and returns it.
func (r *Repository) Create(ctx context.Context, name string, doc *scene.Document) (string, error) {
	data, err := scene.Marshal(doc)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx, `
        INSERT INTO scenes (id, name, version, shape_count, document)
        VALUES (?, ?, ?, ?, ?)
    `, id, name, doc.Version, len(doc.Shapes), string(data))
	if err != nil {
		return "", fmt.Errorf("insert scene: %w", err)
	}
	return id, nil
}

// Save overwrites the document of an existing scene.
func (r *Repository) Save(ctx context.Context, id string, doc *scene.Document) error {
	data, err := scene.Marshal(doc)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
        UPDATE scenes
        SET version = ?, shape_count = ?, document = ?, updated_at = CURRENT_TIMESTAMP
        WHERE id = ?
    `, doc.Version, len(doc.Shapes), string(data), id)
	if err != nil {
		return fmt.Errorf("update scene: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update scene: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (*scene.Document, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT document
        FROM scenes
        WHERE id = ?
    `, id)

	var data string
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return scene.Unmarshal([]byte(data))
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scenes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete scene: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete scene: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all scenes, most recently updated first.
func (r *Repository) List(ctx context.Context) ([]Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, version, shape_count, created_at, updated_at
        FROM scenes
        ORDER BY updated_at DESC, id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.Version, &s.ShapeCount, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ============================================================
// Migrations
// ============================================================

func (r *Repository) runMigrations(ctx context.Context) error {
	names, err := migrations.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Name() < names[j].Name() })

	for _, entry := range names {
		data, err := migrations.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// OpenSQLite opens the sqlite database at dbPath, creating its directory.
// The caller imports a driver registered as "sqlite3".
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
