package repository

import (
	"time"

	"github.com/jcamargo/almacen-api/internal/domain/entity"
)

// OperationRepository persiste las tres listas de operaciones del libro de
// stock (recepciones, entregas, transferencias internas) dentro del
// documento `operations`.
type OperationRepository interface {
	List(kind entity.OperationKind) ([]*entity.Operation, error)
	GetByID(kind entity.OperationKind, id int64) (*entity.Operation, error)
	Create(kind entity.OperationKind, op *entity.Operation) error
	// MarkValidated aplica la transición monótona Waiting → Done y sella
	// validatedAt; devuelve domain.ErrNotFound si el id no existe.
	MarkValidated(kind entity.OperationKind, id int64, at time.Time) (*entity.Operation, error)
}
