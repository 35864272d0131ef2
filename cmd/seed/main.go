// Comando de un solo uso: puebla el stock de la ubicación "Main Warehouse"
// desde el total_stock del catálogo. Si la ubicación no existe usa la
// primera, y si no hay ninguna la crea.
package main

import (
	"github.com/spf13/afero"

	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/infrastructure/jsonstore"
	"github.com/jcamargo/almacen-api/pkg/config"
	"github.com/jcamargo/almacen-api/pkg/logger"
)

const mainWarehouseName = "Main Warehouse"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	store := jsonstore.New(afero.NewOsFs(), cfg.Store.DataDir, log)
	productRepo := jsonstore.NewProductRepository(store)
	locationRepo := jsonstore.NewLocationRepository(store)

	products, err := productRepo.List()
	if err != nil {
		log.Fatal().Err(err).Msg("leer catálogo de productos")
	}

	err = locationRepo.Mutate(func(locations []*entity.Location) ([]*entity.Location, error) {
		var main *entity.Location
		for _, l := range locations {
			if l.Name == mainWarehouseName {
				main = l
				break
			}
		}
		if main == nil && len(locations) > 0 {
			main = locations[0]
		}
		if main == nil {
			main = &entity.Location{ID: domain.NewID(), Name: mainWarehouseName}
			locations = append(locations, main)
		}

		stock := make([]*entity.StockRecord, 0, len(products))
		for _, p := range products {
			stock = append(stock, &entity.StockRecord{ProductID: p.ID, Qty: p.TotalStock})
		}
		main.Stock = stock
		return locations, nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("poblar Main Warehouse")
	}

	log.Info().Int("products", len(products)).Msg("bootstrap completo: stock de Main Warehouse poblado")
}
