package jsonstore

import (
	"time"

	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
)

// operationsDoc es la forma del documento `operations`: un objeto con las
// tres listas, siempre presentes (nunca null) al persistir.
type operationsDoc struct {
	Receipts          []*entity.Operation `json:"receipts"`
	Deliveries        []*entity.Operation `json:"deliveries"`
	InternalTransfers []*entity.Operation `json:"internalTransfers"`
}

func (d *operationsDoc) normalize() {
	if d.Receipts == nil {
		d.Receipts = []*entity.Operation{}
	}
	if d.Deliveries == nil {
		d.Deliveries = []*entity.Operation{}
	}
	if d.InternalTransfers == nil {
		d.InternalTransfers = []*entity.Operation{}
	}
}

func (d *operationsDoc) byKind(kind entity.OperationKind) []*entity.Operation {
	switch kind {
	case entity.KindReceipts:
		return d.Receipts
	case entity.KindDeliveries:
		return d.Deliveries
	case entity.KindInternalTransfers:
		return d.InternalTransfers
	}
	return nil
}

func (d *operationsDoc) setKind(kind entity.OperationKind, list []*entity.Operation) {
	switch kind {
	case entity.KindReceipts:
		d.Receipts = list
	case entity.KindDeliveries:
		d.Deliveries = list
	case entity.KindInternalTransfers:
		d.InternalTransfers = list
	}
}

// OperationRepository implementa repository.OperationRepository sobre el
// documento `operations`.
type OperationRepository struct {
	store *Store
}

// NewOperationRepository construye el repositorio.
func NewOperationRepository(store *Store) *OperationRepository {
	return &OperationRepository{store: store}
}

func (r *OperationRepository) load() *operationsDoc {
	doc := &operationsDoc{}
	r.store.Load(DocOperations, doc)
	doc.normalize()
	return doc
}

// List devuelve las operaciones de un tipo.
func (r *OperationRepository) List(kind entity.OperationKind) ([]*entity.Operation, error) {
	var list []*entity.Operation
	err := r.store.WithLock(DocOperations, func() error {
		list = r.load().byKind(kind)
		return nil
	})
	return list, err
}

// GetByID devuelve nil, nil si el id no existe en la lista del tipo.
func (r *OperationRepository) GetByID(kind entity.OperationKind, id int64) (*entity.Operation, error) {
	list, err := r.List(kind)
	if err != nil {
		return nil, err
	}
	for _, op := range list {
		if op.ID == id {
			return op, nil
		}
	}
	return nil, nil
}

// Create agrega la operación a la lista de su tipo y persiste.
func (r *OperationRepository) Create(kind entity.OperationKind, op *entity.Operation) error {
	return r.store.WithLock(DocOperations, func() error {
		doc := r.load()
		doc.setKind(kind, append(doc.byKind(kind), op))
		return r.store.Save(DocOperations, doc)
	})
}

// MarkValidated transiciona Waiting → Done y sella validatedAt.
func (r *OperationRepository) MarkValidated(kind entity.OperationKind, id int64, at time.Time) (*entity.Operation, error) {
	var validated *entity.Operation
	err := r.store.WithLock(DocOperations, func() error {
		doc := r.load()
		for _, op := range doc.byKind(kind) {
			if op.ID == id {
				op.Status = entity.StatusDone
				op.ValidatedAt = &at
				validated = op
				return r.store.Save(DocOperations, doc)
			}
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return validated, nil
}
