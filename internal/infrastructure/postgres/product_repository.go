package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, category, quantity, unit, min_threshold, price_per_unit, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto; la DB asigna id y timestamps.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, category, quantity, unit, min_threshold, price_per_unit)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		product.Name, string(product.Category), product.Quantity, product.Unit,
		product.MinThreshold, product.PricePerUnit,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return domain.Invalid("producto rechazado por la base de datos: %v", err)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto con SELECT ... FOR UPDATE (solo tiene efecto dentro de una tx).
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// Update actualiza los campos editables (no quantity) y propaga el nombre a los movimientos.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, unit = $4, min_threshold = $5, price_per_unit = $6, updated_at = now()
		WHERE id = $1
		RETURNING quantity, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		product.ID, product.Name, string(product.Category), product.Unit,
		product.MinThreshold, product.PricePerUnit,
	).Scan(&product.Quantity, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	_, err = r.q.Exec(ctx,
		`UPDATE movements SET product_name = $2 WHERE product_id = $1 AND product_name <> $2`,
		product.ID, product.Name,
	)
	if err != nil {
		return fmt.Errorf("rename product movements: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad disponible. El CHECK (quantity >= 0) es la última barrera.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`, id, quantity)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update product quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el catálogo en orden (nombre, id), opcionalmente filtrado por categoría.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var args []any
	if filter.Category != "" {
		query += ` WHERE category = $1`
		args = append(args, string(filter.Category))
	}
	query += ` ORDER BY name, id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina el producto; ON DELETE CASCADE borra sus movimientos.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var category string
	err := row.Scan(
		&p.ID, &p.Name, &category, &p.Quantity, &p.Unit,
		&p.MinThreshold, &p.PricePerUnit, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Category = entity.Category(category)
	return &p, nil
}
