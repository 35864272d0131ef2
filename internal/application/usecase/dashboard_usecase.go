package usecase

import (
	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
)

// DashboardUseCase agrega conteos de solo lectura sobre catálogo y libro de
// operaciones. Los estados se comparan normalizados (minúsculas, sin
// espacios alrededor) porque los documentos heredados traen casings mixtos.
type DashboardUseCase struct {
	products repository.ProductRepository
	ops      repository.OperationRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, ops repository.OperationRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products, ops: ops}
}

// Summary calcula el resumen del dashboard. Puro: no muta ningún documento.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummaryDTO, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryDTO{TotalProducts: len(products)}
	for _, p := range products {
		if p.LowStock() {
			out.LowStockItems++
		}
	}

	receipts, err := uc.ops.List(entity.KindReceipts)
	if err != nil {
		return nil, err
	}
	out.PendingReceipts = countStatus(receipts, func(s string) bool {
		return s == "draft" || s == "waiting" || s == "pending"
	})

	deliveries, err := uc.ops.List(entity.KindDeliveries)
	if err != nil {
		return nil, err
	}
	out.PendingDeliveries = countStatus(deliveries, func(s string) bool {
		return s != "done" && s != "completed"
	})

	transfers, err := uc.ops.List(entity.KindInternalTransfers)
	if err != nil {
		return nil, err
	}
	out.InternalTransfersScheduled = countStatus(transfers, func(s string) bool {
		return s == "scheduled" || s == "waiting" || s == "pending"
	})

	return out, nil
}

func countStatus(ops []*entity.Operation, match func(s string) bool) int {
	n := 0
	for _, op := range ops {
		if match(entity.NormalizeStatus(op.Status)) {
			n++
		}
	}
	return n
}
