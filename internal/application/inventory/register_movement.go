package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-manager/internal/domain/inventory"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

// ReconciliationComment comentario de los movimientos generados por una edición manual del stock.
const ReconciliationComment = "Ajuste manual de inventario"

// RegisterMovementUseCase registra movimientos de stock de forma transaccional:
// bloquea el producto (GetForUpdate), aplica el motor de inventario, actualiza la cantidad
// y agrega el movimiento. Todo o nada.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, log *logger.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, log: log}
}

// MovementInput entrada ya validada del motor.
type MovementInput struct {
	ProductID int64
	Type      entity.MovementType
	Quantity  decimal.Decimal
	Date      time.Time
	Comment   *string
}

// Register valida la petición HTTP y registra el movimiento.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	input, err := parseMovementRequest(in)
	if err != nil {
		return nil, err
	}
	mov, err := uc.RegisterMovement(ctx, input)
	if err != nil {
		return nil, err
	}
	out := dto.NewMovementResponse(mov)
	return &out, nil
}

// RegisterMovement inicia una transacción, bloquea el producto, aplica el movimiento
// y hace Commit o Rollback.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if input.ProductID <= 0 {
		return nil, domain.Invalid("product_id es requerido")
	}
	var created *entity.Movement
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		product, err := productRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		mov, err := ApplyInTx(ctx, productRepo, movRepo, product, input)
		if err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			uc.log.Warn().
				Int64("product_id", input.ProductID).
				Str("quantity", input.Quantity.String()).
				Msg("salida rechazada: stock insuficiente")
		}
		return nil, err
	}
	uc.log.Info().
		Int64("movement_id", created.ID).
		Int64("product_id", created.ProductID).
		Str("type", string(created.Type)).
		Str("quantity", created.Quantity.String()).
		Msg("movimiento registrado")
	return created, nil
}

// ApplyInTx aplica un movimiento sobre product (ya bloqueado) usando los repositorios de la
// transacción del caller. Lo usan RegisterMovement y la edición manual de productos.
func ApplyInTx(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	product *entity.Product,
	input MovementInput,
) (*entity.Movement, error) {
	newQty, err := domaininv.ApplyMovement(product, input.Type, input.Quantity)
	if err != nil {
		return nil, err
	}
	if err := productRepo.UpdateQuantity(ctx, product.ID, newQty); err != nil {
		return nil, err
	}
	product.Quantity = newQty
	mov := &entity.Movement{
		ProductID:   product.ID,
		ProductName: product.Name,
		Type:        input.Type,
		Quantity:    input.Quantity,
		Date:        entity.DateOf(input.Date),
		Comment:     input.Comment,
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}

func parseMovementRequest(in dto.CreateMovementRequest) (MovementInput, error) {
	if in.ProductID <= 0 {
		return MovementInput{}, domain.Invalid("product_id es requerido")
	}
	typ, err := entity.ParseMovementType(in.Type)
	if err != nil {
		return MovementInput{}, domain.Invalid("%s", err.Error())
	}
	if !in.Quantity.Valid {
		return MovementInput{}, domain.Invalid("quantity es requerido")
	}
	if !in.Quantity.Decimal.IsPositive() {
		return MovementInput{}, domain.Invalid("quantity debe ser mayor que 0")
	}
	if err := domaininv.ValidateAmount("quantity", in.Quantity.Decimal); err != nil {
		return MovementInput{}, err
	}
	date, err := entity.ParseDate(strings.TrimSpace(in.Date))
	if err != nil {
		return MovementInput{}, domain.Invalid("date inválida, formato esperado YYYY-MM-DD")
	}
	comment := in.Comment
	if comment != nil {
		trimmed := strings.TrimSpace(*comment)
		if trimmed == "" {
			comment = nil
		} else {
			comment = &trimmed
		}
	}
	return MovementInput{
		ProductID: in.ProductID,
		Type:      typ,
		Quantity:  in.Quantity.Decimal,
		Date:      date,
		Comment:   comment,
	}, nil
}
