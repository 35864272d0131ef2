package usecase_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/almacen-api/internal/application/usecase"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/infrastructure/jsonstore"
	"github.com/jcamargo/almacen-api/pkg/logger"
)

func newDashboardEnv(t *testing.T) (*usecase.DashboardUseCase, *jsonstore.ProductRepository, *jsonstore.OperationRepository) {
	t.Helper()
	store := jsonstore.New(afero.NewMemMapFs(), "data", logger.Nop())
	products := jsonstore.NewProductRepository(store)
	ops := jsonstore.NewOperationRepository(store)
	return usecase.NewDashboardUseCase(products, ops), products, ops
}

func seedOp(t *testing.T, ops *jsonstore.OperationRepository, kind entity.OperationKind, id int64, status string) {
	t.Helper()
	require.NoError(t, ops.Create(kind, &entity.Operation{ID: id, Status: status, Items: []entity.OperationItem{}}))
}

func TestDashboardSummary_Vacio(t *testing.T) {
	uc, _, _ := newDashboardEnv(t)

	s, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 0, s.TotalProducts)
	assert.Equal(t, 0, s.LowStockItems)
	assert.Equal(t, 0, s.PendingReceipts)
	assert.Equal(t, 0, s.PendingDeliveries)
	assert.Equal(t, 0, s.InternalTransfersScheduled)
}

func TestDashboardSummary_StockBajoIncluyeElUmbral(t *testing.T) {
	uc, products, _ := newDashboardEnv(t)
	require.NoError(t, products.Create(&entity.Product{ID: 1, Name: "a", TotalStock: 5, ReorderLevel: 10}))  // bajo
	require.NoError(t, products.Create(&entity.Product{ID: 2, Name: "b", TotalStock: 10, ReorderLevel: 10})) // igual al umbral: cuenta
	require.NoError(t, products.Create(&entity.Product{ID: 3, Name: "c", TotalStock: 11, ReorderLevel: 10}))

	s, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 3, s.TotalProducts)
	assert.Equal(t, 2, s.LowStockItems)
}

func TestDashboardSummary_EstadosConCasingMixto(t *testing.T) {
	uc, _, ops := newDashboardEnv(t)

	// Recepciones: draft/waiting/pending cuentan, sin importar casing ni
	// espacios residuales.
	seedOp(t, ops, entity.KindReceipts, 1, "Waiting")
	seedOp(t, ops, entity.KindReceipts, 2, "DRAFT")
	seedOp(t, ops, entity.KindReceipts, 3, "pending ")
	seedOp(t, ops, entity.KindReceipts, 4, "Done")

	// Entregas: cuenta todo lo que NO esté done/completed.
	seedOp(t, ops, entity.KindDeliveries, 5, "Waiting")
	seedOp(t, ops, entity.KindDeliveries, 6, "done ")
	seedOp(t, ops, entity.KindDeliveries, 7, "COMPLETED")
	seedOp(t, ops, entity.KindDeliveries, 8, "cualquier-cosa")

	// Transferencias: scheduled/waiting/pending.
	seedOp(t, ops, entity.KindInternalTransfers, 9, "Scheduled")
	seedOp(t, ops, entity.KindInternalTransfers, 10, "WAITING")
	seedOp(t, ops, entity.KindInternalTransfers, 11, "Done")

	s, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 3, s.PendingReceipts)
	assert.Equal(t, 2, s.PendingDeliveries)
	assert.Equal(t, 2, s.InternalTransfersScheduled)
}
