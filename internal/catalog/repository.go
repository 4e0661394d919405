package catalog

import (
	"context"
	"database/sql"

	"allergysafe-be/internal/money"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) (Product, error)
}

type repository struct {
	db *sql.DB
}

// NewRepository returns a Postgres-backed catalog repository.
func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price_millimes, category, image, description,
		       materials, features, allergy_tags, in_stock
		FROM products
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, price_millimes, category, image, description,
		       materials, features, allergy_tags, in_stock
		FROM products
		WHERE id = $1
	`, id)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p Product) (Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
			(id, name, price_millimes, category, image, description,
			 materials, features, allergy_tags, in_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`,
		p.ID, p.Name, p.Price.Millimes(), p.Category, p.Image, p.Description,
		pq.Array(p.Materials), pq.Array(p.Features), pq.Array(p.AllergyTags), p.InStock,
	)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *repository) Update(ctx context.Context, p Product) (Product, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $2, price_millimes = $3, category = $4, image = $5,
		    description = $6, materials = $7, features = $8,
		    allergy_tags = $9, in_stock = $10, updated_at = NOW()
		WHERE id = $1
	`,
		p.ID, p.Name, p.Price.Millimes(), p.Category, p.Image, p.Description,
		pq.Array(p.Materials), pq.Array(p.Features), pq.Array(p.AllergyTags), p.InStock,
	)
	if err != nil {
		return Product{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p         Product
		millimes  int64
		materials pq.StringArray
		features  pq.StringArray
		tags      pq.StringArray
	)

	err := row.Scan(&p.ID, &p.Name, &millimes, &p.Category, &p.Image,
		&p.Description, &materials, &features, &tags, &p.InStock)
	if err != nil {
		return Product{}, err
	}

	p.Price = money.FromMillimes(millimes)
	p.Materials = []string(materials)
	p.Features = []string(features)
	p.AllergyTags = []string(tags)
	return p, nil
}
