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

func TestWorkOrderHandler_CreateFromAssessment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	assessment := entities.Assessment{ID: "as-1", WorkshopID: "ws-Y"}

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		assessments := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/work-orders", NewWorkOrderHandler(uc, assessments).CreateFromAssessment)

		assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(assessment, nil)
		uc.EXPECT().CreateFromAssessment(gomock.Any(), "as-1").Return(entities.WorkOrder{}, usecase.ErrWorkOrderAlreadyExists)

		w := doJSON(r, http.MethodPost, "/v1/work-orders", `{"assessment_id":"as-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "WORK_ORDER_ALREADY_EXISTS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		assessments := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/work-orders", NewWorkOrderHandler(uc, assessments).CreateFromAssessment)

		assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(assessment, nil)
		uc.EXPECT().CreateFromAssessment(gomock.Any(), "as-1").Return(entities.WorkOrder{}, usecase.ErrWorkOrderNotReady)

		w := doJSON(r, http.MethodPost, "/v1/work-orders", `{"assessment_id":"as-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("assessment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		assessments := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/work-orders", NewWorkOrderHandler(uc, assessments).CreateFromAssessment)

		assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(entities.Assessment{}, usecase.ErrAssessmentNotFound)

		w := doJSON(r, http.MethodPost, "/v1/work-orders", `{"assessment_id":"as-1"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("owner of another workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		assessments := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/work-orders", as(entities.UserRoleOwner, "own-X", "ws-X"), NewWorkOrderHandler(uc, assessments).CreateFromAssessment)

		assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(assessment, nil)
		uc.EXPECT().CreateFromAssessment(gomock.Any(), gomock.Any()).Times(0)

		w := doJSON(r, http.MethodPost, "/v1/work-orders", `{"assessment_id":"as-1"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("owner of the workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		assessments := mocks.NewMockIAssessmentUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/work-orders", as(entities.UserRoleOwner, "own-Y", "ws-Y"), NewWorkOrderHandler(uc, assessments).CreateFromAssessment)

		assessments.EXPECT().GetByID(gomock.Any(), "as-1").Return(assessment, nil)
		uc.EXPECT().CreateFromAssessment(gomock.Any(), "as-1").Return(entities.WorkOrder{ID: "as-1", WorkshopID: "ws-Y"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/work-orders", `{"assessment_id":"as-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	r := gin.New()
	r.GET("/v1/work-orders", as(entities.UserRoleMechanic, "mec-1", "ws-1"), NewWorkOrderHandler(uc, nil).List)

	uc.EXPECT().List(gomock.Any(), usecase.WorkOrderFilter{MechanicID: "mec-1"}).Return([]entities.WorkOrder{{ID: "wo-1"}}, nil)

	w := doJSON(r, http.MethodGet, "/v1/work-orders?workshop_id=ws-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestWorkOrderHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("other mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := gin.New()
		r.PATCH("/v1/work-orders/:id/status", as(entities.UserRoleMechanic, "mec-2", "ws-1"), NewWorkOrderHandler(uc, nil).UpdateStatus)

		uc.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", WorkshopID: "ws-1", MechanicID: "mec-1"}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/work-orders/wo-1/status", `{"status":"in-progress"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("assigned mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := gin.New()
		r.PATCH("/v1/work-orders/:id/status", as(entities.UserRoleMechanic, "mec-1", "ws-1"), NewWorkOrderHandler(uc, nil).UpdateStatus)

		uc.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", WorkshopID: "ws-1", MechanicID: "mec-1"}, nil)
		uc.EXPECT().UpdateStatus(gomock.Any(), "wo-1", entities.WorkOrderStatusCompleted).Return(entities.WorkOrder{}, usecase.ErrInvalidWorkOrderStatus)

		w := doJSON(r, http.MethodPatch, "/v1/work-orders/wo-1/status", `{"status":"completed"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_AssignMechanic(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	r := gin.New()
	r.PUT("/v1/work-orders/:id/mechanic", as(entities.UserRoleOwner, "own-1", "ws-1"), NewWorkOrderHandler(uc, nil).AssignMechanic)

	uc.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", WorkshopID: "ws-1"}, nil)
	uc.EXPECT().AssignMechanic(gomock.Any(), "wo-1", "mec-1").
		Return(entities.WorkOrder{ID: "wo-1", WorkshopID: "ws-1", MechanicID: "mec-1", Status: entities.WorkOrderStatusAssigned}, nil)

	w := doJSON(r, http.MethodPut, "/v1/work-orders/wo-1/mechanic", `{"mechanic_id":"mec-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data, _ := decodeBody(t, w)["data"].(map[string]any)
	if data["mechanic_id"] != "mec-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
