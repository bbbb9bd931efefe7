package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/inventory"
	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-manager/internal/domain/inventory"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

// ProductUseCase casos de uso CRUD del catálogo y vistas de alertas.
// Quantity solo cambia vía movimientos: una edición manual de la cantidad se registra
// como movimiento de ajuste dentro de la misma transacción.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, log: log}
}

// Create crea un nuevo producto. No genera movimiento: la cantidad inicial es el stock de apertura.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	fields, err := parseProductRequest(in)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:         fields.name,
		Category:     fields.category,
		Quantity:     fields.quantity,
		Unit:         fields.unit,
		MinThreshold: fields.minThreshold,
		PricePerUnit: fields.pricePerUnit,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto por ID. domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// List lista el catálogo en su orden canónico, opcionalmente filtrado por categoría.
func (uc *ProductUseCase) List(ctx context.Context, category string) ([]dto.ProductResponse, error) {
	filter, err := productFilter(category)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewProductList(list), nil
}

// Update reemplaza el registro completo. Si la cantidad cambia, el delta se registra como
// movimiento de ajuste (Entrée o Sortie) con fecha de hoy; todo en una transacción.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	fields, err := parseProductRequest(in)
	if err != nil {
		return nil, err
	}
	var (
		updated *entity.Product
		adjust  *entity.Movement
	)
	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		product, err := productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		product.Name = fields.name
		product.Category = fields.category
		product.Unit = fields.unit
		product.MinThreshold = fields.minThreshold
		product.PricePerUnit = fields.pricePerUnit
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}

		if t, qty, ok := domaininv.ReconciliationFor(product.Quantity, fields.quantity); ok {
			comment := inventory.ReconciliationComment
			adjust, err = inventory.ApplyInTx(ctx, productRepo, movRepo, product, inventory.MovementInput{
				ProductID: product.ID,
				Type:      t,
				Quantity:  qty,
				Date:      entity.Today(),
				Comment:   &comment,
			})
			if err != nil {
				return err
			}
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	if adjust != nil {
		uc.log.Info().
			Int64("product_id", id).
			Int64("movement_id", adjust.ID).
			Str("type", string(adjust.Type)).
			Str("quantity", adjust.Quantity.String()).
			Msg("ajuste manual de stock registrado")
	}
	out := dto.NewProductResponse(updated)
	return &out, nil
}

// Delete elimina el producto y todos sus movimientos.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("product_id", id).Msg("producto eliminado")
	return nil
}

// Alerts productos con estado distinto de OK, del más crítico al menos crítico.
func (uc *ProductUseCase) Alerts(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	return dto.NewProductList(domaininv.SortBySeverity(list)), nil
}

// AlertSummary conteo por bucket (ruptura, crítico, bajo).
func (uc *ProductUseCase) AlertSummary(ctx context.Context) (*dto.AlertSummaryResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	s := domaininv.SummarizeAlerts(list)
	return &dto.AlertSummaryResponse{
		Stockout: s.Stockout,
		Critical: s.Critical,
		Low:      s.Low,
		Total:    s.Total(),
	}, nil
}

// Categories devuelve el conjunto cerrado de categorías en orden de presentación.
func (uc *ProductUseCase) Categories() []string {
	cats := entity.Categories()
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, string(c))
	}
	return out
}

type productFields struct {
	name         string
	category     entity.Category
	unit         string
	quantity     decimal.Decimal
	minThreshold decimal.Decimal
	pricePerUnit decimal.Decimal
}

func parseProductRequest(in dto.ProductRequest) (productFields, error) {
	var f productFields
	f.name = strings.TrimSpace(in.Name)
	if f.name == "" {
		return f, domain.Invalid("name es requerido")
	}
	cat, err := entity.ParseCategory(strings.TrimSpace(in.Category))
	if err != nil {
		return f, domain.Invalid("%s", err.Error())
	}
	f.category = cat
	f.unit = strings.TrimSpace(in.Unit)
	if f.unit == "" {
		return f, domain.Invalid("unit es requerido")
	}
	for _, v := range []struct {
		field string
		value decimal.NullDecimal
		dst   *decimal.Decimal
	}{
		{"quantity", in.Quantity, &f.quantity},
		{"min_threshold", in.MinThreshold, &f.minThreshold},
		{"price_per_unit", in.PricePerUnit, &f.pricePerUnit},
	} {
		if !v.value.Valid {
			return f, domain.Invalid("%s es requerido", v.field)
		}
		if v.value.Decimal.IsNegative() {
			return f, domain.Invalid("%s no puede ser negativo", v.field)
		}
		if err := domaininv.ValidateAmount(v.field, v.value.Decimal); err != nil {
			return f, err
		}
		*v.dst = v.value.Decimal
	}
	return f, nil
}

func productFilter(category string) (repository.ProductFilter, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return repository.ProductFilter{}, nil
	}
	cat, err := entity.ParseCategory(category)
	if err != nil {
		return repository.ProductFilter{}, domain.Invalid("%s", err.Error())
	}
	return repository.ProductFilter{Category: cat}, nil
}
