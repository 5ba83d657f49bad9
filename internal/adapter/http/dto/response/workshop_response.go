package response

import (
	"time"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase"
)

type WorkshopResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	TaxID     string    `json:"tax_id,omitempty"`
	OwnerID   string    `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromWorkshop(w entities.Workshop) WorkshopResponse {
	return WorkshopResponse{
		ID:        w.ID,
		Name:      w.Name,
		Address:   w.Address,
		Phone:     w.Phone,
		Email:     w.Email,
		TaxID:     w.TaxID,
		OwnerID:   w.OwnerID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func FromWorkshops(list []entities.Workshop) []WorkshopResponse {
	out := make([]WorkshopResponse, 0, len(list))
	for _, w := range list {
		out = append(out, FromWorkshop(w))
	}
	return out
}

type WorkshopWithOwnerResponse struct {
	Workshop WorkshopResponse `json:"workshop"`
	Owner    UserResponse     `json:"owner"`
}

func FromWorkshopWithOwner(r usecase.WorkshopWithOwner) WorkshopWithOwnerResponse {
	return WorkshopWithOwnerResponse{Workshop: FromWorkshop(r.Workshop), Owner: FromUser(r.Owner)}
}
