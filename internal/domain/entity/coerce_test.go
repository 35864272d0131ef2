package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcamargo/almacen-api/internal/domain/entity"
)

func TestCoerceInt(t *testing.T) {
	cases := []struct {
		nombre string
		in     string
		want   int64
	}{
		{"numero", `42`, 42},
		{"numero negativo", `-3`, -3},
		{"flotante se trunca", `7.9`, 7},
		{"string numerico", `"40"`, 40},
		{"string flotante", `"2.5"`, 2},
		{"string no numerico", `"abc"`, 0},
		{"null", `null`, 0},
		{"objeto", `{}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.CoerceInt(json.RawMessage(tc.in)))
		})
	}
	// Campo ausente: raw nil cuenta como 0.
	assert.Equal(t, int64(0), entity.CoerceInt(nil))
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, "done", entity.NormalizeStatus("DONE"))
	assert.Equal(t, "done", entity.NormalizeStatus("done "))
	assert.Equal(t, "waiting", entity.NormalizeStatus(" Waiting"))
}

func TestOperationItem_UnmarshalCoerciona(t *testing.T) {
	var it entity.OperationItem
	assert.NoError(t, json.Unmarshal([]byte(`{"productId":"7","qty":3.9}`), &it))
	assert.Equal(t, int64(7), it.ProductID)
	assert.Equal(t, int64(3), it.Qty)
}

func TestLocation_Adjust(t *testing.T) {
	loc := &entity.Location{ID: 1, Name: "Main", Stock: []*entity.StockRecord{}}

	// Registro inexistente: Qty devuelve 0 y Adjust lo crea.
	assert.Equal(t, int64(0), loc.Qty(9))
	loc.Adjust(9, 5)
	assert.Equal(t, int64(5), loc.Qty(9))
	loc.Adjust(9, -2)
	assert.Equal(t, int64(3), loc.Qty(9))
}
