package handlers

import (
	"net/http"
	"testing"

	"tallerhub/internal/adapter/http/handlers/mocks"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAssessmentHandler_AssignMechanic(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("owner is pinned to own workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/assessments", as(entities.UserRoleOwner, "own-1", "ws-1"), NewAssessmentHandler(uc).AssignMechanic)

		uc.EXPECT().AssignMechanic(gomock.Any(), usecase.AssignMechanicInput{VehicleID: "veh-1", MechanicID: "mec-1", WorkshopID: "ws-1"}).
			Return(entities.Assessment{ID: "as-1", WorkshopID: "ws-1", Status: entities.AssessmentStatusPending}, nil)

		w := doJSON(r, http.MethodPost, "/v1/assessments", `{"vehicle_id":"veh-1","mechanic_id":"mec-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("owner cannot target another workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/assessments", as(entities.UserRoleOwner, "own-1", "ws-1"), NewAssessmentHandler(uc).AssignMechanic)

		w := doJSON(r, http.MethodPost, "/v1/assessments", `{"vehicle_id":"veh-1","mechanic_id":"mec-1","workshop_id":"ws-2"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("mechanic of another workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/assessments", NewAssessmentHandler(uc).AssignMechanic)

		uc.EXPECT().AssignMechanic(gomock.Any(), gomock.Any()).Return(entities.Assessment{}, usecase.ErrMechanicNotInWorkshop)

		w := doJSON(r, http.MethodPost, "/v1/assessments", `{"vehicle_id":"veh-1","mechanic_id":"mec-9","workshop_id":"ws-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestAssessmentHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/assessments/:id", NewAssessmentHandler(uc).GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "as-1").Return(entities.Assessment{}, usecase.ErrAssessmentNotFound)

		w := doJSON(r, http.MethodGet, "/v1/assessments/as-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("client of another vehicle is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/assessments/:id", as(entities.UserRoleClient, "cli-2", ""), NewAssessmentHandler(uc).GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "as-1").Return(entities.Assessment{ID: "as-1", WorkshopID: "ws-1", ClientID: "cli-1"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/assessments/as-1", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("mechanic not assigned is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/assessments/:id", as(entities.UserRoleMechanic, "mec-2", "ws-1"), NewAssessmentHandler(uc).GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "as-1").Return(entities.Assessment{ID: "as-1", WorkshopID: "ws-1", MechanicID: "mec-1"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/assessments/as-1", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestAssessmentHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("client always lists own", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/assessments", as(entities.UserRoleClient, "cli-1", ""), NewAssessmentHandler(uc).List)

		uc.EXPECT().List(gomock.Any(), usecase.AssessmentFilter{ClientID: "cli-1"}).Return([]entities.Assessment{{ID: "as-1"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/assessments?workshop_id=ws-9", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/assessments", NewAssessmentHandler(uc).List)

		uc.EXPECT().List(gomock.Any(), usecase.AssessmentFilter{}).Return(nil, usecase.ErrMissingFilter)

		w := doJSON(r, http.MethodGet, "/v1/assessments", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAssessmentHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.PATCH("/v1/assessments/:id/status", as(entities.UserRoleMechanic, "mec-1", "ws-1"), NewAssessmentHandler(uc).UpdateStatus)

		uc.EXPECT().GetByID(gomock.Any(), "as-1").Return(entities.Assessment{ID: "as-1", WorkshopID: "ws-1", MechanicID: "mec-1"}, nil)
		uc.EXPECT().UpdateStatus(gomock.Any(), "as-1", entities.AssessmentStatusAwaitingClient).Return(entities.Assessment{}, usecase.ErrInvalidAssessmentStatus)

		w := doJSON(r, http.MethodPatch, "/v1/assessments/as-1/status", `{"status":"Awaiting-Client"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.PATCH("/v1/assessments/:id/status", NewAssessmentHandler(uc).UpdateStatus)

		uc.EXPECT().GetByID(gomock.Any(), "as-1").Return(entities.Assessment{ID: "as-1", WorkshopID: "ws-1"}, nil)
		uc.EXPECT().UpdateStatus(gomock.Any(), "as-1", entities.AssessmentStatusInProgress).
			Return(entities.Assessment{ID: "as-1", Status: entities.AssessmentStatusInProgress}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/assessments/as-1/status", `{"status":"in-progress"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAssessmentHandler_AddTask(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAssessmentUseCase(ctrl)
	r := gin.New()
	r.POST("/v1/assessments/:id/tasks", NewAssessmentHandler(uc).AddTask)

	uc.EXPECT().GetByID(gomock.Any(), "as-1").Return(entities.Assessment{ID: "as-1"}, nil)
	uc.EXPECT().AddTask(gomock.Any(), "as-1", usecase.NewTaskInput{Name: "Brake pads", EstimatedPrice: 80}).Return(entities.Assessment{}, usecase.ErrAssessmentLocked)

	w := doJSON(r, http.MethodPost, "/v1/assessments/as-1/tasks", `{"name":"Brake pads","estimated_price":80}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["code"] != "ASSESSMENT_LOCKED" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAssessmentHandler_RespondToTask(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/assessments/:id/tasks/:task_id/response", NewAssessmentHandler(uc).RespondToTask)

		w := doJSON(r, http.MethodPost, "/v1/assessments/as-1/tasks/t-1/response", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("task already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/assessments/:id/tasks/:task_id/response", as(entities.UserRoleClient, "cli-1", ""), NewAssessmentHandler(uc).RespondToTask)

		uc.EXPECT().RespondToTask(gomock.Any(), "as-1", "t-1", entities.TaskDecisionAccept, "cli-1").
			Return(usecase.TaskResponseResult{}, usecase.ErrTaskAlreadyResolved)

		w := doJSON(r, http.MethodPost, "/v1/assessments/as-1/tasks/t-1/response", `{"decision":"accept"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("last answer creates work order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/assessments/:id/tasks/:task_id/response", as(entities.UserRoleClient, "cli-1", ""), NewAssessmentHandler(uc).RespondToTask)

		wo := entities.WorkOrder{ID: "wo-1", AssessmentID: "as-1", Status: entities.WorkOrderStatusPending}
		uc.EXPECT().RespondToTask(gomock.Any(), "as-1", "t-2", entities.TaskDecisionReject, "cli-1").
			Return(usecase.TaskResponseResult{
				Assessment: entities.Assessment{ID: "as-1", ClientStatus: entities.ClientStatusPartiallyAccepted},
				WorkOrder:  &wo,
			}, nil)

		w := doJSON(r, http.MethodPost, "/v1/assessments/as-1/tasks/t-2/response", `{"decision":"REJECT"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["message"] != "Response recorded, work order created" {
			t.Fatalf("unexpected message: %v", body["message"])
		}
		data, _ := body["data"].(map[string]any)
		order, _ := data["work_order"].(map[string]any)
		if order["id"] != "wo-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("answer without work order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/assessments/:id/tasks/:task_id/response", NewAssessmentHandler(uc).RespondToTask)

		uc.EXPECT().RespondToTask(gomock.Any(), "as-1", "t-1", entities.TaskDecisionAccept, "").
			Return(usecase.TaskResponseResult{Assessment: entities.Assessment{ID: "as-1"}}, nil)

		w := doJSON(r, http.MethodPost, "/v1/assessments/as-1/tasks/t-1/response", `{"decision":"accept"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data, _ := decodeBody(t, w)["data"].(map[string]any)
		if _, ok := data["work_order"]; ok {
			t.Fatalf("work_order should be omitted: %s", w.Body.String())
		}
	})
}
