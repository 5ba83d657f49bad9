package request

import (
	"strings"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase"
)

type RegisterUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role" binding:"required"`
	WorkshopID string `json:"workshop_id"`
}

// ToInput keeps unknown roles as-is so the use case can reject them.
func (r RegisterUserRequest) ToInput() usecase.RegisterUserInput {
	role, err := entities.ParseUserRole(r.Role)
	if err != nil {
		role = entities.UserRole(strings.TrimSpace(r.Role))
	}
	return usecase.RegisterUserInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Password:   r.Password,
		Role:       role,
		WorkshopID: strings.TrimSpace(r.WorkshopID),
	}
}

type UpdateUserRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Active *bool   `json:"active"`
}

func (r UpdateUserRequest) ToInput() usecase.UpdateUserInput {
	return usecase.UpdateUserInput{Name: r.Name, Phone: r.Phone, Active: r.Active}
}
