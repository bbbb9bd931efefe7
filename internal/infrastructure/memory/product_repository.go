package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository. tx != nil = dentro de Store.Run.
type ProductRepo struct {
	store *Store
	tx    *state
}

// Create asigna ID y timestamps y guarda una copia.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.store.write(r.tx, func(st *state) error {
		now := r.store.now()
		product.ID = st.nextProductID
		product.CreatedAt = now
		product.UpdatedAt = now
		st.nextProductID++
		cp := *product
		st.products[cp.ID] = &cp
		return nil
	})
}

// GetByID devuelve una copia del producto o nil, nil.
func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.store.read(r.tx, func(st *state) error {
		if p, ok := st.products[id]; ok {
			cp := *p
			out = &cp
		}
		return nil
	})
	return out, err
}

// GetForUpdate dentro de Store.Run el lock exclusivo ya está tomado; fuera equivale a GetByID.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// Update persiste los campos editables y propaga un cambio de nombre al libro.
// Quantity no se toca: solo cambia vía UpdateQuantity.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.store.write(r.tx, func(st *state) error {
		p, ok := st.products[product.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if p.Name != product.Name {
			renameMovements(st, p.ID, product.Name)
		}
		p.Name = product.Name
		p.Category = product.Category
		p.Unit = product.Unit
		p.MinThreshold = product.MinThreshold
		p.PricePerUnit = product.PricePerUnit
		p.UpdatedAt = r.store.now()
		product.Quantity = p.Quantity
		product.CreatedAt = p.CreatedAt
		product.UpdatedAt = p.UpdatedAt
		return nil
	})
}

// renameMovements reemplaza (sin mutar) los movimientos del producto con el nombre nuevo.
func renameMovements(st *state, productID int64, name string) {
	for i, m := range st.movements {
		if m.ProductID == productID {
			cp := *m
			cp.ProductName = name
			st.movements[i] = &cp
		}
	}
}

// UpdateQuantity fija la cantidad disponible.
func (r *ProductRepo) UpdateQuantity(_ context.Context, id int64, quantity decimal.Decimal) error {
	return r.store.write(r.tx, func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		p.Quantity = quantity
		p.UpdatedAt = r.store.now()
		return nil
	})
}

// List devuelve copias en orden de catálogo: nombre (colación francesa), luego id.
func (r *ProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.store.read(r.tx, func(st *state) error {
		out = make([]*entity.Product, 0, len(st.products))
		for _, p := range st.products {
			if filter.Category != "" && p.Category != filter.Category {
				continue
			}
			cp := *p
			out = append(out, &cp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortCatalog(out)
	return out, nil
}

// Delete elimina el producto y sus movimientos.
func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	return r.store.write(r.tx, func(st *state) error {
		if _, ok := st.products[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.products, id)
		st.movements = slices.DeleteFunc(slices.Clone(st.movements), func(m *entity.Movement) bool {
			return m.ProductID == id
		})
		return nil
	})
}

// sortCatalog ordena por nombre según la colación francesa (accents secundarios, sin distinguir
// mayúsculas) y desempata por id. Collator no es seguro entre goroutines: uno por llamada.
func sortCatalog(products []*entity.Product) {
	col := collate.New(language.French, collate.IgnoreCase)
	slices.SortStableFunc(products, func(a, b *entity.Product) int {
		if c := col.CompareString(strings.TrimSpace(a.Name), strings.TrimSpace(b.Name)); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}
