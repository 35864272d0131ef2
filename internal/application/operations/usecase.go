package operations

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
	"github.com/jcamargo/almacen-api/pkg/logger"
)

// UseCase implementa el libro de stock: creación y validación de
// recepciones, entregas y transferencias internas. Las tres validaciones
// comparten el mismo motor en dos fases (chequear disponibilidad, luego
// aplicar deltas) sobre un único snapshot del documento objetivo.
type UseCase struct {
	ops       repository.OperationRepository
	products  repository.ProductRepository
	locations repository.LocationRepository
	log       *logger.Logger

	// validateMu serializa el ciclo completo buscar→chequear→aplicar→marcar.
	// Los locks por documento del store solo cubren cada leer→escribir
	// individual; sin esta serialización, dos validaciones concurrentes del
	// mismo id leen ambas Waiting y aplican los deltas dos veces.
	validateMu sync.Mutex
}

// NewUseCase construye el caso de uso del libro de stock.
func NewUseCase(
	ops repository.OperationRepository,
	products repository.ProductRepository,
	locations repository.LocationRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{ops: ops, products: products, locations: locations, log: log}
}

// List devuelve las operaciones de un tipo.
func (uc *UseCase) List(kind entity.OperationKind) ([]*entity.Operation, error) {
	return uc.ops.List(kind)
}

// GetByID devuelve la operación o domain.ErrNotFound.
func (uc *UseCase) GetByID(kind entity.OperationKind, id int64) (*entity.Operation, error) {
	op, err := uc.ops.GetByID(kind, id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	return op, nil
}

// CreateReceipt registra una recepción en estado Waiting.
func (uc *UseCase) CreateReceipt(in dto.CreateReceiptRequest) (*entity.Operation, error) {
	op := &entity.Operation{
		ID:        domain.NewID(),
		Supplier:  in.Supplier,
		Items:     *in.Items,
		Status:    entity.StatusWaiting,
		CreatedAt: time.Now(),
	}
	if err := uc.ops.Create(entity.KindReceipts, op); err != nil {
		return nil, err
	}
	return op, nil
}

// CreateDelivery registra una entrega en estado Waiting.
func (uc *UseCase) CreateDelivery(in dto.CreateDeliveryRequest) (*entity.Operation, error) {
	op := &entity.Operation{
		ID:        domain.NewID(),
		Customer:  in.Customer,
		Items:     *in.Items,
		Status:    entity.StatusWaiting,
		CreatedAt: time.Now(),
	}
	if err := uc.ops.Create(entity.KindDeliveries, op); err != nil {
		return nil, err
	}
	return op, nil
}

// CreateTransfer registra una transferencia interna en estado Waiting.
func (uc *UseCase) CreateTransfer(in dto.CreateTransferRequest) (*entity.Operation, error) {
	op := &entity.Operation{
		ID:             domain.NewID(),
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Items:          *in.Items,
		Status:         entity.StatusWaiting,
		CreatedAt:      time.Now(),
	}
	if err := uc.ops.Create(entity.KindInternalTransfers, op); err != nil {
		return nil, err
	}
	return op, nil
}

// ValidateReceipt aplica la recepción: suma qty al total_stock de cada
// producto. No hay chequeo de disponibilidad (el stock solo crece); un
// producto inexistente se omite con warning, no es fallo duro.
func (uc *UseCase) ValidateReceipt(id int64) (*entity.Operation, error) {
	return uc.validate(entity.KindReceipts, id, uc.applyReceipt)
}

// ValidateDelivery aplica la entrega: resta qty del total_stock de cada
// producto, solo si todos los ítems tienen stock suficiente.
func (uc *UseCase) ValidateDelivery(id int64) (*entity.Operation, error) {
	return uc.validate(entity.KindDeliveries, id, uc.applyDelivery)
}

// ValidateTransfer mueve qty del libro de la ubicación origen al de la
// destino, solo si el origen tiene stock suficiente para todos los ítems.
func (uc *UseCase) ValidateTransfer(id int64) (*entity.Operation, error) {
	return uc.validate(entity.KindInternalTransfers, id, uc.applyTransfer)
}

// applyFn chequea disponibilidad y aplica los deltas de una operación sobre
// un único snapshot del documento objetivo, bajo su lock. Un error aborta
// sin persistir nada (*domain.InsufficientStockError enumera el faltante).
type applyFn func(op *entity.Operation, txID string) error

// validate es el motor compartido de las tres validaciones:
//
//  1. buscar por id → ErrNotFound,
//  2. guarda de idempotencia: Done (normalizado) → ErrAlreadyValidated sin
//     mutación,
//  3. chequear-y-aplicar sobre el mismo snapshot (apply),
//  4. persistir el objetivo y recién entonces Waiting → Done + validatedAt.
//
// validateMu cubre los cuatro pasos: de N validaciones concurrentes del
// mismo id exactamente una pasa la guarda y aplica deltas; el resto ve Done.
// Si el proceso muere entre 3 y 4 la operación queda Waiting con el stock ya
// aplicado, igual que el sistema original; no hay atomicidad entre
// documentos.
func (uc *UseCase) validate(kind entity.OperationKind, id int64, apply applyFn) (*entity.Operation, error) {
	uc.validateMu.Lock()
	defer uc.validateMu.Unlock()

	op, err := uc.ops.GetByID(kind, id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	if op.IsDone() {
		return nil, domain.ErrAlreadyValidated
	}

	txID := uuid.New().String()
	if err := apply(op, txID); err != nil {
		return nil, err
	}

	validated, err := uc.ops.MarkValidated(kind, id, time.Now())
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("tx_id", txID).
		Str("kind", string(kind)).
		Int64("operation_id", id).
		Msg("operación validada")
	return validated, nil
}

func findProduct(list []*entity.Product, id int64) *entity.Product {
	for _, p := range list {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (uc *UseCase) applyReceipt(op *entity.Operation, txID string) error {
	return uc.products.Mutate(func(products []*entity.Product) ([]*entity.Product, error) {
		for _, it := range op.Items {
			p := findProduct(products, it.ProductID)
			if p == nil {
				uc.log.Warn().
					Str("tx_id", txID).
					Int64("product_id", it.ProductID).
					Msg("producto inexistente en ítem de recepción; se omite")
				continue
			}
			p.TotalStock += it.Qty
		}
		return products, nil
	})
}

func (uc *UseCase) applyDelivery(op *entity.Operation, txID string) error {
	return uc.products.Mutate(func(products []*entity.Product) ([]*entity.Product, error) {
		// Fase 1: disponibilidad de TODOS los ítems contra este snapshot.
		var insuff []domain.InsufficientItem
		for _, it := range op.Items {
			p := findProduct(products, it.ProductID)
			available := int64(0)
			if p != nil {
				available = p.TotalStock
			}
			if p == nil || available < it.Qty {
				insuff = append(insuff, domain.InsufficientItem{
					ProductID: it.ProductID,
					Required:  it.Qty,
					Available: available,
				})
			}
		}
		if len(insuff) > 0 {
			return nil, &domain.InsufficientStockError{Items: insuff}
		}
		// Fase 2: deltas sobre el mismo snapshot.
		for _, it := range op.Items {
			findProduct(products, it.ProductID).TotalStock -= it.Qty
		}
		return products, nil
	})
}

func (uc *UseCase) applyTransfer(op *entity.Operation, txID string) error {
	return uc.locations.Mutate(func(locations []*entity.Location) ([]*entity.Location, error) {
		var from, to *entity.Location
		for _, l := range locations {
			if l.ID == op.FromLocationID {
				from = l
			}
			if l.ID == op.ToLocationID {
				to = l
			}
		}
		if from == nil || to == nil {
			return nil, domain.ErrInvalidLocations
		}
		// Fase 1: disponibilidad contra el libro del origen.
		var insuff []domain.InsufficientItem
		for _, it := range op.Items {
			if available := from.Qty(it.ProductID); available < it.Qty {
				insuff = append(insuff, domain.InsufficientItem{
					ProductID: it.ProductID,
					Required:  it.Qty,
					Available: available,
				})
			}
		}
		if len(insuff) > 0 {
			return nil, &domain.InsufficientStockError{Items: insuff}
		}
		// Fase 2: mover origen → destino; el registro destino se crea en
		// cero si el producto no estaba rastreado.
		for _, it := range op.Items {
			from.Adjust(it.ProductID, -it.Qty)
			to.Adjust(it.ProductID, it.Qty)
		}
		return locations, nil
	})
}
