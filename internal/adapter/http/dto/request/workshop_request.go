package request

import "tallerhub/internal/usecase"

type WorkshopRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	TaxID   string `json:"tax_id"`
	OwnerID string `json:"owner_id"`
}

func (r WorkshopRequest) ToInput() usecase.WorkshopInput {
	return usecase.WorkshopInput{Name: r.Name, Address: r.Address, Phone: r.Phone, Email: r.Email, TaxID: r.TaxID}
}

// UpdateWorkshopRequest leaves fields that are not sent unchanged.
type UpdateWorkshopRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	TaxID   string `json:"tax_id"`
}

func (r UpdateWorkshopRequest) ToInput() usecase.WorkshopInput {
	return usecase.WorkshopInput{Name: r.Name, Address: r.Address, Phone: r.Phone, Email: r.Email, TaxID: r.TaxID}
}

type OwnerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

// CreateWorkshopWithOwnerRequest is the body of the site admin's
// "new workshop" form: the workshop and the account of its owner.
type CreateWorkshopWithOwnerRequest struct {
	Workshop WorkshopRequest `json:"workshop" binding:"required"`
	Owner    OwnerRequest    `json:"owner" binding:"required"`
}

func (r CreateWorkshopWithOwnerRequest) OwnerInput() usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		Name:     r.Owner.Name,
		Email:    r.Owner.Email,
		Phone:    r.Owner.Phone,
		Password: r.Owner.Password,
	}
}
