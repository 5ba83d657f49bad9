package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tallerhub/internal/adapter/http/middleware"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

func as(role entities.UserRole, userID, workshopID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetClaims(c, interfaces.TokenClaims{UserID: userID, Role: role, WorkshopID: workshopID})
		c.Next()
	}
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}
