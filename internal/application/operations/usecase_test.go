package operations_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/application/operations"
	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/infrastructure/jsonstore"
	"github.com/jcamargo/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type ledgerEnv struct {
	uc        *operations.UseCase
	products  *jsonstore.ProductRepository
	locations *jsonstore.LocationRepository
	ops       *jsonstore.OperationRepository
}

// newLedgerEnv arma el libro de stock completo sobre un filesystem en
// memoria: ningún test toca disco.
func newLedgerEnv(t *testing.T) *ledgerEnv {
	t.Helper()
	store := jsonstore.New(afero.NewMemMapFs(), "data", logger.Nop())
	env := &ledgerEnv{
		products:  jsonstore.NewProductRepository(store),
		locations: jsonstore.NewLocationRepository(store),
		ops:       jsonstore.NewOperationRepository(store),
	}
	env.uc = operations.NewUseCase(env.ops, env.products, env.locations, logger.Nop())
	return env
}

func (e *ledgerEnv) seedProduct(t *testing.T, id, stock, reorder int64) {
	t.Helper()
	require.NoError(t, e.products.Create(&entity.Product{
		ID:           id,
		Name:         "producto",
		TotalStock:   stock,
		ReorderLevel: reorder,
	}))
}

func (e *ledgerEnv) seedLocation(t *testing.T, id int64, name string, stock map[int64]int64) {
	t.Helper()
	loc := &entity.Location{ID: id, Name: name, Stock: []*entity.StockRecord{}}
	for pid, qty := range stock {
		loc.Stock = append(loc.Stock, &entity.StockRecord{ProductID: pid, Qty: qty})
	}
	require.NoError(t, e.locations.Create(loc))
}

func (e *ledgerEnv) productStock(t *testing.T, id int64) int64 {
	t.Helper()
	p, err := e.products.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.TotalStock
}

func (e *ledgerEnv) locationQty(t *testing.T, locID, productID int64) int64 {
	t.Helper()
	loc, err := e.locations.GetByID(locID)
	require.NoError(t, err)
	require.NotNil(t, loc)
	return loc.Qty(productID)
}

func items(list ...entity.OperationItem) *[]entity.OperationItem {
	return &list
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateReceipt_EstadoInicialWaiting(t *testing.T) {
	env := newLedgerEnv(t)

	op, err := env.uc.CreateReceipt(dto.CreateReceiptRequest{
		Supplier: "ACME",
		Items:    items(entity.OperationItem{ProductID: 1, Qty: 10}),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusWaiting, op.Status)
	assert.NotZero(t, op.ID)
	assert.Nil(t, op.ValidatedAt)

	persisted, err := env.ops.GetByID(entity.KindReceipts, op.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted, "la recepción debe quedar persistida")
}

func TestCreate_IdsUnicosYCrecientes(t *testing.T) {
	env := newLedgerEnv(t)

	seen := map[int64]bool{}
	var prev int64
	for i := 0; i < 50; i++ {
		op, err := env.uc.CreateReceipt(dto.CreateReceiptRequest{Supplier: "ACME", Items: items()})
		require.NoError(t, err)
		assert.False(t, seen[op.ID], "id repetido: %d", op.ID)
		assert.Greater(t, op.ID, prev, "los ids deben ser estrictamente crecientes")
		seen[op.ID] = true
		prev = op.ID
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de recepciones
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateReceipt_AplicaItemsDuplicadosSecuencialmente(t *testing.T) {
	env := newLedgerEnv(t)
	env.seedProduct(t, 1, 10, 0)

	// Dos líneas del mismo producto: se suman ambas, no se deduplican.
	op, err := env.uc.CreateReceipt(dto.CreateReceiptRequest{
		Supplier: "ACME",
		Items: items(
			entity.OperationItem{ProductID: 1, Qty: 5},
			entity.OperationItem{ProductID: 1, Qty: 3},
		),
	})
	require.NoError(t, err)

	validated, err := env.uc.ValidateReceipt(op.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(18), env.productStock(t, 1))
	assert.Equal(t, entity.StatusDone, validated.Status)
	require.NotNil(t, validated.ValidatedAt)
}

func TestValidateReceipt_ProductoInexistenteSeOmite(t *testing.T) {
	env := newLedgerEnv(t)
	env.seedProduct(t, 1, 10, 0)

	op, err := env.uc.CreateReceipt(dto.CreateReceiptRequest{
		Supplier: "ACME",
		Items: items(
			entity.OperationItem{ProductID: 99, Qty: 7}, // no existe: warning, no fallo
			entity.OperationItem{ProductID: 1, Qty: 5},
		),
	})
	require.NoError(t, err)

	_, err = env.uc.ValidateReceipt(op.ID)
	require.NoError(t, err, "un producto inexistente no es fallo duro en recepciones")
	assert.Equal(t, int64(15), env.productStock(t, 1))
}

func TestValidateReceipt_NotFound(t *testing.T) {
	env := newLedgerEnv(t)

	_, err := env.uc.ValidateReceipt(424242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guarda de idempotencia
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_Revalidar_EsNoOp(t *testing.T) {
	env := newLedgerEnv(t)
	env.seedProduct(t, 1, 10, 0)

	op, err := env.uc.CreateReceipt(dto.CreateReceiptRequest{
		Supplier: "ACME",
		Items:    items(entity.OperationItem{ProductID: 1, Qty: 5}),
	})
	require.NoError(t, err)

	_, err = env.uc.ValidateReceipt(op.ID)
	require.NoError(t, err)
	require.Equal(t, int64(15), env.productStock(t, 1))

	// Segunda validación: falla sin tocar el stock.
	_, err = env.uc.ValidateReceipt(op.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyValidated)
	assert.Equal(t, int64(15), env.productStock(t, 1), "revalidar no debe duplicar el stock")
}

func TestValidate_ConcurrenteAplicaUnaSolaVez(t *testing.T) {
	env := newLedgerEnv(t)
	env.seedProduct(t, 1, 10, 0)

	op, err := env.uc.CreateReceipt(dto.CreateReceiptRequest{
		Supplier: "ACME",
		Items:    items(entity.OperationItem{ProductID: 1, Qty: 5}),
	})
	require.NoError(t, err)

	// N validaciones simultáneas del mismo id tras una barrera de arranque:
	// exactamente una pasa la guarda; el resto ve Done sin aplicar deltas.
	const n = 8
	start := make(chan struct{})
	results := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := env.uc.ValidateReceipt(op.ID)
			results <- err
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	okCount, dupCount := 0, 0
	for err := range results {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, domain.ErrAlreadyValidated):
			dupCount++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "solo una validación debe pasar la guarda")
	assert.Equal(t, n-1, dupCount)
	assert.Equal(t, int64(15), env.productStock(t, 1), "los deltas deben aplicarse exactamente una vez")
}

func TestValidate_GuardaCaseInsensitive(t *testing.T) {
	env := newLedgerEnv(t)
	env.seedProduct(t, 1, 10, 0)

	// Documento heredado con estado en otro casing y espacio residual.
	op := &entity.Operation{ID: 7, Supplier: "ACME", Status: "DONE ", Items: []entity.OperationItem{{ProductID: 1, Qty: 5}}}
	require.NoError(t, env.ops.Create(entity.KindReceipts, op))

	_, err := env.uc.ValidateReceipt(7)
	assert.ErrorIs(t, err, domain.ErrAlreadyValidated)
	assert.Equal(t, int64(10), env.productStock(t, 1))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entregas
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateDelivery_DescuentaStock(t *testing.T) {
	env := newLedgerEnv(t)
	env.seedProduct(t, 1, 10, 0)
	env.seedProduct(t, 2, 4, 0)

	op, err := env.uc.CreateDelivery(dto.CreateDeliveryRequest{
		Customer: "Cliente",
		Items: items(
			entity.OperationItem{ProductID: 1, Qty: 6},
			entity.OperationItem{ProductID: 2, Qty: 4},
		),
	})
	require.NoError(t, err)

	_, err = env.uc.ValidateDelivery(op.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(4), env.productStock(t, 1))
	assert.Equal(t, int64(0), env.productStock(t, 2), "vaciar el stock exacto es válido")
}

func TestValidateDelivery_FaltanteAbortaAtomicamente(t *testing.T) {
	env := newLedgerEnv(t)
	env.seedProduct(t, 1, 10, 0)
	env.seedProduct(t, 2, 3, 0)

	op, err := env.uc.CreateDelivery(dto.CreateDeliveryRequest{
		Customer: "Cliente",
		Items: items(
			entity.OperationItem{ProductID: 1, Qty: 6},  // alcanza
			entity.OperationItem{ProductID: 2, Qty: 5},  // falta
			entity.OperationItem{ProductID: 99, Qty: 1}, // producto inexistente
		),
	})
	require.NoError(t, err)

	_, err = env.uc.ValidateDelivery(op.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La respuesta enumera TODOS los faltantes, no solo el primero.
	var insuff *domain.InsufficientStockError
	require.True(t, errors.As(err, &insuff))
	require.Len(t, insuff.Items, 2)
	assert.Equal(t, domain.InsufficientItem{ProductID: 2, Required: 5, Available: 3}, insuff.Items[0])
	assert.Equal(t, domain.InsufficientItem{ProductID: 99, Required: 1, Available: 0}, insuff.Items[1])

	// Ninguna mutación parcial: ni el ítem que sí alcanzaba se aplicó.
	assert.Equal(t, int64(10), env.productStock(t, 1))
	assert.Equal(t, int64(3), env.productStock(t, 2))

	persisted, err := env.ops.GetByID(entity.KindDeliveries, op.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusWaiting, persisted.Status, "la entrega debe seguir Waiting")
	assert.Nil(t, persisted.ValidatedAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de transferencias internas
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateTransfer_ConservaElTotalPorProducto(t *testing.T) {
	env := newLedgerEnv(t)
	env.seedLocation(t, 100, "Main Warehouse", map[int64]int64{1: 8, 2: 5})
	env.seedLocation(t, 200, "Sucursal Norte", map[int64]int64{1: 2})

	before1 := env.locationQty(t, 100, 1) + env.locationQty(t, 200, 1)
	before2 := env.locationQty(t, 100, 2) + env.locationQty(t, 200, 2)

	op, err := env.uc.CreateTransfer(dto.CreateTransferRequest{
		FromLocationID: 100,
		ToLocationID:   200,
		Items: items(
			entity.OperationItem{ProductID: 1, Qty: 3},
			entity.OperationItem{ProductID: 2, Qty: 5}, // el destino no rastreaba el producto 2
		),
	})
	require.NoError(t, err)

	_, err = env.uc.ValidateTransfer(op.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(5), env.locationQty(t, 100, 1))
	assert.Equal(t, int64(5), env.locationQty(t, 200, 1))
	assert.Equal(t, int64(0), env.locationQty(t, 100, 2))
	assert.Equal(t, int64(5), env.locationQty(t, 200, 2), "el registro destino se crea en cero y recibe la cantidad")

	// Invariante de conservación: la suma origen+destino no cambia.
	assert.Equal(t, before1, env.locationQty(t, 100, 1)+env.locationQty(t, 200, 1))
	assert.Equal(t, before2, env.locationQty(t, 100, 2)+env.locationQty(t, 200, 2))
}

func TestValidateTransfer_FaltanteEnOrigenAborta(t *testing.T) {
	env := newLedgerEnv(t)
	env.seedLocation(t, 100, "Main Warehouse", map[int64]int64{1: 2})
	env.seedLocation(t, 200, "Sucursal Norte", nil)

	op, err := env.uc.CreateTransfer(dto.CreateTransferRequest{
		FromLocationID: 100,
		ToLocationID:   200,
		Items:          items(entity.OperationItem{ProductID: 1, Qty: 3}),
	})
	require.NoError(t, err)

	_, err = env.uc.ValidateTransfer(op.ID)
	var insuff *domain.InsufficientStockError
	require.True(t, errors.As(err, &insuff))
	require.Len(t, insuff.Items, 1)
	assert.Equal(t, domain.InsufficientItem{ProductID: 1, Required: 3, Available: 2}, insuff.Items[0])

	assert.Equal(t, int64(2), env.locationQty(t, 100, 1))
	assert.Equal(t, int64(0), env.locationQty(t, 200, 1))
}

func TestValidateTransfer_UbicacionesInvalidas(t *testing.T) {
	env := newLedgerEnv(t)
	env.seedLocation(t, 100, "Main Warehouse", map[int64]int64{1: 5})

	op, err := env.uc.CreateTransfer(dto.CreateTransferRequest{
		FromLocationID: 100,
		ToLocationID:   999, // no existe
		Items:          items(entity.OperationItem{ProductID: 1, Qty: 1}),
	})
	require.NoError(t, err)

	_, err = env.uc.ValidateTransfer(op.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidLocations)
	assert.Equal(t, int64(5), env.locationQty(t, 100, 1))
}
