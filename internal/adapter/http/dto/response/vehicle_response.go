package response

import (
	"time"

	"tallerhub/internal/domain/entities"
)

type VehicleResponse struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	WorkshopID string    `json:"workshop_id,omitempty"`
	Plate      string    `json:"plate"`
	Make       string    `json:"make"`
	Model      string    `json:"model"`
	Year       int       `json:"year,omitempty"`
	VIN        string    `json:"vin,omitempty"`
	Mileage    int       `json:"mileage"`
	Color      string    `json:"color,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:         v.ID,
		ClientID:   v.ClientID,
		WorkshopID: v.WorkshopID,
		Plate:      v.Plate,
		Make:       v.Make,
		Model:      v.Model,
		Year:       v.Year,
		VIN:        v.VIN,
		Mileage:    v.Mileage,
		Color:      v.Color,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FromVehicles(list []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, FromVehicle(v))
	}
	return out
}
