package category

import (
	"database/sql"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(`SELECT id, name, parent_id FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Category, error) {
	row := r.db.QueryRow(`SELECT id, name, parent_id FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return Category{}, ErrNotFound
	}
	return c, err
}

func (r *PostgresRepository) FilterAttributes(categoryID int) ([]FilterAttribute, error) {
	rows, err := r.db.Query(`SELECT category_id, attribute_id, display_order FROM category_filter_attributes WHERE category_id = $1 ORDER BY display_order ASC`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]FilterAttribute, 0)
	for rows.Next() {
		var f FilterAttribute
		if err := rows.Scan(&f.CategoryID, &f.AttributeID, &f.DisplayOrder); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCategory(row rowScanner) (Category, error) {
	var (
		c        Category
		parentID sql.NullInt64
	)
	if err := row.Scan(&c.ID, &c.Name, &parentID); err != nil {
		return Category{}, err
	}
	if parentID.Valid {
		v := int(parentID.Int64)
		c.ParentID = &v
	}
	return c, nil
}
