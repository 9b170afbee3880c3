package cart

import (
	"database/sql"
	"encoding/json"
	"time"
)

// PostgresRepository persists carts as a JSON document per cart id in the
// `carts` table, the only table this service writes.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the carts table when missing. Called once at boot.
func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS carts (
        cart_id TEXT PRIMARY KEY,
        lines JSONB NOT NULL DEFAULT '[]',
        updated_at TEXT
    )`)
	return err
}

func (r *PostgresRepository) Get(cartID string) ([]Line, error) {
	var raw sql.NullString
	err := r.db.QueryRow(`SELECT lines FROM carts WHERE cart_id = $1`, cartID).Scan(&raw)
	if err == sql.ErrNoRows {
		return []Line{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !raw.Valid || raw.String == "" {
		return []Line{}, nil
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw.String), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *PostgresRepository) Save(cartID string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	encoded, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = r.db.Exec(`INSERT INTO carts (cart_id, lines, updated_at) VALUES ($1, $2, $3)
        ON CONFLICT (cart_id) DO UPDATE SET lines = $2, updated_at = $3`, cartID, string(encoded), now)
	return err
}

func (r *PostgresRepository) Delete(cartID string) error {
	_, err := r.db.Exec(`DELETE FROM carts WHERE cart_id = $1`, cartID)
	return err
}
