package request

type CreateWorkOrderRequest struct {
	AssessmentID string `json:"assessment_id" binding:"required"`
}

type AssignWorkOrderMechanicRequest struct {
	MechanicID string `json:"mechanic_id" binding:"required"`
}
