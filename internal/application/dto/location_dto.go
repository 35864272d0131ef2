package dto

import "github.com/jcamargo/almacen-api/internal/domain/entity"

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Name string `json:"name" validate:"required"`
}

// LocationResponse sobre de éxito con la ubicación creada.
type LocationResponse struct {
	Success  bool             `json:"success"`
	Location *entity.Location `json:"location"`
}
