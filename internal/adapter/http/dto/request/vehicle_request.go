package request

import "tallerhub/internal/usecase"

type VehicleRequest struct {
	ClientID   string `json:"client_id"`
	WorkshopID string `json:"workshop_id"`
	Plate      string `json:"plate"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	VIN        string `json:"vin"`
	Mileage    int    `json:"mileage"`
	Color      string `json:"color"`
}

func (r VehicleRequest) ToInput() usecase.VehicleInput {
	return usecase.VehicleInput{
		ClientID:   r.ClientID,
		WorkshopID: r.WorkshopID,
		Plate:      r.Plate,
		Make:       r.Make,
		Model:      r.Model,
		Year:       r.Year,
		VIN:        r.VIN,
		Mileage:    r.Mileage,
		Color:      r.Color,
	}
}
