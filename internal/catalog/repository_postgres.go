package catalog

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// PostgresRepository implements Repository over the hosted product
// database. The connection is read-only by convention: every statement
// here is a SELECT.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `sku, parent_sku, name, short_description, long_description, list_price, sale_price, category_id, super_category_id, height, width, depth, weight, ean, brand, active, stock_status, created_at, updated_at`

func (r *PostgresRepository) Search(sel Selection, categoryID int) ([]Product, int, error) {
	args := []interface{}{categoryID, sel.PriceMin, sel.PriceMax}
	query := `SELECT ` + productColumns + `, COUNT(*) OVER () AS total_count
        FROM products
        WHERE active = true AND category_id = $1 AND sale_price >= $2 AND sale_price <= $3`

	if len(sel.Brands) > 0 {
		args = append(args, pq.Array(sel.Brands))
		query += fmt.Sprintf(` AND brand = ANY($%d::text[])`, len(args))
	}
	if sel.Query != "" {
		args = append(args, "%"+sel.Query+"%")
		query += fmt.Sprintf(` AND name ILIKE $%d`, len(args))
	}

	switch sel.Sort {
	case SortPriceAsc:
		query += ` ORDER BY sale_price ASC NULLS LAST`
	case SortPriceDesc:
		query += ` ORDER BY sale_price DESC NULLS LAST`
	case SortName:
		query += ` ORDER BY name ASC`
	default:
		query += ` ORDER BY created_at DESC`
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	total := 0
	for rows.Next() {
		p, t, err := scanProductWithCount(rows)
		if err != nil {
			return nil, 0, err
		}
		total = t
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepository) GetBySKU(sku string) (Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) ActiveByCategory(categoryID int) ([]Product, error) {
	return r.queryProducts(`SELECT `+productColumns+` FROM products WHERE active = true AND category_id = $1`, categoryID)
}

func (r *PostgresRepository) Siblings(parentSKU string, excludeSKU string) ([]Product, error) {
	return r.queryProducts(`SELECT `+productColumns+` FROM products WHERE active = true AND parent_sku = $1 AND sku <> $2`, parentSKU, excludeSKU)
}

func (r *PostgresRepository) Related(categoryID int, excludeSKU string, limit int) ([]Product, error) {
	return r.queryProducts(`SELECT `+productColumns+` FROM products WHERE active = true AND category_id = $1 AND sku <> $2 ORDER BY created_at DESC LIMIT $3`, categoryID, excludeSKU, limit)
}

func (r *PostgresRepository) Featured(superCategoryID int, limit int) ([]Product, error) {
	return r.queryProducts(`SELECT `+productColumns+` FROM products WHERE active = true AND super_category_id = $1 ORDER BY created_at DESC LIMIT $2`, superCategoryID, limit)
}

func (r *PostgresRepository) ImagesBySKUs(skus []string) ([]ProductImage, error) {
	rows, err := r.db.Query(`SELECT sku, url, ord FROM product_images WHERE sku = ANY($1::text[]) ORDER BY ord ASC`, pq.Array(skus))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ProductImage, 0)
	for rows.Next() {
		var img ProductImage
		if err := rows.Scan(&img.SKU, &img.URL, &img.Order); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) AttributeValues(skus []string, attributeIDs []int) ([]AttributeValue, error) {
	rows, err := r.db.Query(`SELECT sku, attribute_id, value, is_variant FROM product_attributes WHERE sku = ANY($1::text[]) AND attribute_id = ANY($2::int[]) AND value IS NOT NULL`, pq.Array(skus), pq.Array(attributeIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAttributeValues(rows)
}

func (r *PostgresRepository) DiscriminatorValues(skus []string) ([]AttributeValue, error) {
	rows, err := r.db.Query(`SELECT sku, attribute_id, value, is_variant FROM product_attributes WHERE sku = ANY($1::text[]) AND is_variant = true`, pq.Array(skus))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAttributeValues(rows)
}

func (r *PostgresRepository) AttributeTypes(attributeIDs []int) ([]AttributeType, error) {
	rows, err := r.db.Query(`SELECT attribute_id, attribute_name, filterable FROM product_attribute_types WHERE attribute_id = ANY($1::int[])`, pq.Array(attributeIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AttributeType, 0)
	for rows.Next() {
		var (
			t          AttributeType
			filterable sql.NullBool
		)
		if err := rows.Scan(&t.AttributeID, &t.Name, &filterable); err != nil {
			return nil, err
		}
		t.Filterable = filterable.Valid && filterable.Bool
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) AttributesBySKU(sku string) ([]AttributeValue, error) {
	rows, err := r.db.Query(`SELECT a.sku, a.attribute_id, a.value, a.is_variant, t.attribute_name
        FROM product_attributes a
        JOIN product_attribute_types t ON t.attribute_id = a.attribute_id
        WHERE a.sku = $1`, sku)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AttributeValue, 0)
	for rows.Next() {
		var (
			v         AttributeValue
			value     sql.NullString
			isVariant sql.NullBool
		)
		if err := rows.Scan(&v.SKU, &v.AttributeID, &value, &isVariant, &v.Name); err != nil {
			return nil, err
		}
		if value.Valid {
			v.Value = &value.String
		}
		v.VariantDiscriminator = isVariant.Valid && isVariant.Bool
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) queryProducts(query string, args ...interface{}) ([]Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p      Product
		fields = newProductFields()
	)
	if err := row.Scan(fields.dest(&p)...); err != nil {
		return Product{}, err
	}
	fields.apply(&p)
	return p, nil
}

func scanProductWithCount(row rowScanner) (Product, int, error) {
	var (
		p      Product
		total  int
		fields = newProductFields()
	)
	dest := append(fields.dest(&p), &total)
	if err := row.Scan(dest...); err != nil {
		return Product{}, 0, err
	}
	fields.apply(&p)
	return p, total, nil
}

// productFields collects the nullable column buffers a product scan needs.
type productFields struct {
	parentSKU        sql.NullString
	shortDescription sql.NullString
	longDescription  sql.NullString
	listPrice        sql.NullFloat64
	salePrice        sql.NullFloat64
	superCategoryID  sql.NullInt64
	height           sql.NullFloat64
	width            sql.NullFloat64
	depth            sql.NullFloat64
	weight           sql.NullFloat64
	ean              sql.NullString
	brand            sql.NullString
	stockStatus      sql.NullString
	createdAt        sql.NullString
	updatedAt        sql.NullString
}

func newProductFields() *productFields {
	return &productFields{}
}

func (f *productFields) dest(p *Product) []interface{} {
	return []interface{}{
		&p.SKU, &f.parentSKU, &p.Name, &f.shortDescription, &f.longDescription,
		&f.listPrice, &f.salePrice, &p.CategoryID, &f.superCategoryID,
		&f.height, &f.width, &f.depth, &f.weight, &f.ean, &f.brand,
		&p.Active, &f.stockStatus, &f.createdAt, &f.updatedAt,
	}
}

func (f *productFields) apply(p *Product) {
	if f.parentSKU.Valid {
		p.ParentSKU = &f.parentSKU.String
	}
	if f.shortDescription.Valid {
		p.ShortDescription = &f.shortDescription.String
	}
	if f.longDescription.Valid {
		p.LongDescription = &f.longDescription.String
	}
	if f.listPrice.Valid {
		p.ListPrice = &f.listPrice.Float64
	}
	if f.salePrice.Valid {
		p.SalePrice = &f.salePrice.Float64
	}
	if f.superCategoryID.Valid {
		v := int(f.superCategoryID.Int64)
		p.SuperCategoryID = &v
	}
	if f.height.Valid {
		p.Height = &f.height.Float64
	}
	if f.width.Valid {
		p.Width = &f.width.Float64
	}
	if f.depth.Valid {
		p.Depth = &f.depth.Float64
	}
	if f.weight.Valid {
		p.Weight = &f.weight.Float64
	}
	if f.ean.Valid {
		p.EAN = &f.ean.String
	}
	if f.brand.Valid {
		p.Brand = &f.brand.String
	}
	if f.stockStatus.Valid {
		p.StockStatus = &f.stockStatus.String
	}
	if f.createdAt.Valid {
		p.CreatedAt = f.createdAt.String
	}
	if f.updatedAt.Valid {
		p.UpdatedAt = f.updatedAt.String
	}
}

func scanAttributeValues(rows *sql.Rows) ([]AttributeValue, error) {
	out := make([]AttributeValue, 0)
	for rows.Next() {
		var (
			v         AttributeValue
			value     sql.NullString
			isVariant sql.NullBool
		)
		if err := rows.Scan(&v.SKU, &v.AttributeID, &value, &isVariant); err != nil {
			return nil, err
		}
		if value.Valid {
			v.Value = &value.String
		}
		v.VariantDiscriminator = isVariant.Valid && isVariant.Bool
		out = append(out, v)
	}
	return out, rows.Err()
}
