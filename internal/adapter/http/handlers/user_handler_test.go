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

func TestUserHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("owner cannot register admins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/users", as(entities.UserRoleOwner, "own-1", "ws-1"), NewUserHandler(uc).Register)

		w := doJSON(r, http.MethodPost, "/v1/users", `{"name":"X","email":"x@y.com","password":"secret123","role":"admin"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("owner registers mechanic in own workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/users", as(entities.UserRoleOwner, "own-1", "ws-1"), NewUserHandler(uc).Register)

		uc.EXPECT().Register(gomock.Any(), usecase.RegisterUserInput{
			Name: "Leo", Email: "leo@norte.com", Password: "secret123", Role: entities.UserRoleMechanic, WorkshopID: "ws-1",
		}).Return(entities.User{ID: "mec-1", Role: entities.UserRoleMechanic, WorkshopID: "ws-1"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/users", `{"name":"Leo","email":"leo@norte.com","password":"secret123","role":"mechanic","workshop_id":"ws-9"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("weak password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/users", NewUserHandler(uc).Register)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.User{}, usecase.ErrWeakPassword)

		w := doJSON(r, http.MethodPost, "/v1/users", `{"name":"X","email":"x@y.com","password":"short","role":"client"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "WEAK_PASSWORD" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestUserHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mechanic can view a client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/users/:id", as(entities.UserRoleMechanic, "mec-1", "ws-1"), NewUserHandler(uc).GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.User{ID: "cli-1", Role: entities.UserRoleClient}, nil)

		w := doJSON(r, http.MethodGet, "/v1/users/cli-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("owner cannot view another workshop's mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/users/:id", as(entities.UserRoleOwner, "own-1", "ws-1"), NewUserHandler(uc).GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "mec-9").Return(entities.User{ID: "mec-9", Role: entities.UserRoleMechanic, WorkshopID: "ws-2"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/users/mec-9", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("client cannot view others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/users/:id", as(entities.UserRoleClient, "cli-1", ""), NewUserHandler(uc).GetByID)

		w := doJSON(r, http.MethodGet, "/v1/users/cli-2", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestUserHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("role filter is admin only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/users", as(entities.UserRoleOwner, "own-1", "ws-1"), NewUserHandler(uc).List)

		w := doJSON(r, http.MethodGet, "/v1/users?role=client", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("owner lists own workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/users", as(entities.UserRoleOwner, "own-1", "ws-1"), NewUserHandler(uc).List)

		uc.EXPECT().ListByWorkshop(gomock.Any(), "ws-1").Return([]entities.User{{ID: "mec-1"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/users", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("admin by role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/users", as(entities.UserRoleAdmin, "adm-1", ""), NewUserHandler(uc).List)

		uc.EXPECT().ListByRole(gomock.Any(), entities.UserRoleOwner).Return([]entities.User{}, nil)

		w := doJSON(r, http.MethodGet, "/v1/users?role=owner", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestUserHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUserUseCase(ctrl)
	r := gin.New()
	r.PUT("/v1/users/:id", as(entities.UserRoleClient, "cli-1", ""), NewUserHandler(uc).Update)

	w := doJSON(r, http.MethodPut, "/v1/users/cli-1", `{"active":false}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
