package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"
	mock_interfaces "tallerhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func completedWorkOrder() entities.WorkOrder {
	return entities.WorkOrder{
		ID:         "5f0c2b9e-aaaa-bbbb",
		WorkshopID: "ws-1",
		ClientID:   "cli-1",
		Status:     entities.WorkOrderStatusCompleted,
		Tasks: []entities.Task{
			{ID: "A", Name: "oil", Description: "5W30", EstimatedPrice: 40, Status: entities.TaskStatusAccepted},
			{ID: "B", Name: "filter", EstimatedPrice: 10.25, Status: entities.TaskStatusAccepted},
		},
		TotalCost: 50.25,
	}
}

func TestInvoiceUseCase_CreateFromWorkOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, nil, 0.21)
		_, err := uc.CreateFromWorkOrder(context.Background(), "")
		if !errors.Is(err, ErrInvalidWorkOrderID) {
			t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
		}
	})

	t.Run("work order not completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		woRepo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewInvoiceUseCase(nil, woRepo, nil, nil, 0.21)

		wo := completedWorkOrder()
		wo.Status = entities.WorkOrderStatusInProgress
		woRepo.EXPECT().GetByID(gomock.Any(), wo.ID).Return(wo, nil)

		_, err := uc.CreateFromWorkOrder(context.Background(), wo.ID)
		if !errors.Is(err, ErrWorkOrderNotCompleted) {
			t.Fatalf("expected ErrWorkOrderNotCompleted, got %v", err)
		}
	})

	t.Run("already invoiced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		woRepo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewInvoiceUseCase(repo, woRepo, nil, nil, 0.21)

		wo := completedWorkOrder()
		woRepo.EXPECT().GetByID(gomock.Any(), wo.ID).Return(wo, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, interfaces.ErrAlreadyExists)

		_, err := uc.CreateFromWorkOrder(context.Background(), wo.ID)
		if !errors.Is(err, ErrInvoiceAlreadyExists) {
			t.Fatalf("expected ErrInvoiceAlreadyExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		woRepo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewInvoiceUseCase(repo, woRepo, nil, events, 0.21)

		wo := completedWorkOrder()
		woRepo.EXPECT().GetByID(gomock.Any(), wo.ID).Return(wo, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			return inv, nil
		})
		events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		inv, err := uc.CreateFromWorkOrder(context.Background(), wo.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID != wo.ID || inv.Status != entities.InvoiceStatusPending {
			t.Fatalf("unexpected invoice %+v", inv)
		}
		if inv.Subtotal != 50.25 || inv.Tax != 10.55 || inv.Total != 60.8 {
			t.Fatalf("unexpected totals subtotal=%v tax=%v total=%v", inv.Subtotal, inv.Tax, inv.Total)
		}
		if len(inv.Lines) != 2 || inv.Lines[0].Description != "oil - 5W30" {
			t.Fatalf("unexpected lines %+v", inv.Lines)
		}
		if !strings.HasPrefix(inv.Number, "FAC-") || !strings.HasSuffix(inv.Number, "-5F0C2B") {
			t.Fatalf("unexpected number %s", inv.Number)
		}
	})
}

func TestInvoiceUseCase_Pay(t *testing.T) {
	pending := entities.Invoice{ID: "inv-1", Number: "FAC-20260101-ABCDEF", ClientID: "cli-1", WorkshopID: "ws-1", Total: 60.8, Status: entities.InvoiceStatusPending}

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, nil, 0.21)
		_, err := uc.Pay(context.Background(), "inv-1", json.RawMessage(`{`), "")
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, nil, 0.21)
		_, err := uc.Pay(context.Background(), "inv-1", nil, "")
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("other client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, nil, gateway, nil, 0.21)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pending, nil)

		_, err := uc.Pay(context.Background(), "inv-1", nil, "cli-2")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, nil, gateway, nil, 0.21)

		paid := pending
		paid.Status = entities.InvoiceStatusPaid
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(paid, nil)

		_, err := uc.Pay(context.Background(), "inv-1", nil, "")
		if !errors.Is(err, ErrInvoiceNotPayable) {
			t.Fatalf("expected ErrInvoiceNotPayable, got %v", err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, nil, gateway, nil, 0.21)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pending, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("timeout"))

		_, err := uc.Pay(context.Background(), "inv-1", nil, "")
		if !errors.Is(err, ErrPaymentGatewayFailed) {
			t.Fatalf("expected ErrPaymentGatewayFailed, got %v", err)
		}
	})

	t.Run("rejected payment leaves invoice pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, nil, gateway, nil, 0.21)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pending, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "rejected", json.RawMessage(`{}`), nil)

		_, err := uc.Pay(context.Background(), "inv-1", nil, "")
		if !errors.Is(err, ErrPaymentRejected) {
			t.Fatalf("expected ErrPaymentRejected, got %v", err)
		}
	})

	t.Run("success uses invoice amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewInvoiceUseCase(repo, nil, gateway, events, 0.21)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pending, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("invalid payload: %v", err)
			}
			if req["transaction_amount"] != 60.8 {
				t.Fatalf("expected invoice amount, got %v", req["transaction_amount"])
			}
			if req["external_reference"] != "inv-1" || req["payment_method_id"] != "pix" {
				t.Fatalf("unexpected payload %v", req)
			}
			return "mp-1", "approved", json.RawMessage(`{"id":"mp-1"}`), nil
		})
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			return inv, nil
		})
		events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Pay(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`), "cli-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.InvoiceStatusPaid || got.PaymentID != "mp-1" || got.PaidAt == nil {
			t.Fatalf("unexpected invoice %+v", got)
		}
		if string(got.ProviderPayloadRaw) != `{"id":"mp-1"}` {
			t.Fatalf("unexpected provider payload %s", got.ProviderPayloadRaw)
		}
	})
}

func TestInvoiceUseCase_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	uc := NewInvoiceUseCase(repo, nil, nil, nil, 0.21)

	paidAt := time.Now()
	repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid, PaidAt: &paidAt}, nil)
	if _, err := uc.Cancel(context.Background(), "inv-1"); !errors.Is(err, ErrInvoiceNotPayable) {
		t.Fatalf("expected ErrInvoiceNotPayable, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "inv-2").Return(entities.Invoice{ID: "inv-2", Status: entities.InvoiceStatusPending}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
		return inv, nil
	})
	got, err := uc.Cancel(context.Background(), "inv-2")
	if err != nil || got.Status != entities.InvoiceStatusCancelled {
		t.Fatalf("unexpected result %+v %v", got, err)
	}
}
