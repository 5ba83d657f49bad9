package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	e := NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	body := e.ToHTTPError()
	if body.Success {
		t.Fatalf("expected success=false")
	}
	if body.Code != "VEHICLE_NOT_FOUND" || body.Message != "Vehicle not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("dynamo down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: dynamo down" {
		t.Fatalf("unexpected message: %s", e.Error())
	}
	if NewDomainErrorSimple("X", "y", 400).Error() != "X: y" {
		t.Fatalf("unexpected simple message")
	}
}
