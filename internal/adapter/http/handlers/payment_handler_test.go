package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller_xpto/internal/adapter/http/handlers/mocks"
	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *PaymentHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/payments", h.RecordPayment)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cash payment recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newRouter(h)

		uc.EXPECT().RecordPayment(gomock.Any(), gomock.AssignableToTypeOf(usecase.RecordPaymentCommand{})).DoAndReturn(
			func(_ context.Context, cmd usecase.RecordPaymentCommand) (entities.Payment, error) {
				if cmd.WorkOrderID != "wo-1" || cmd.Method != "efectivo" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if !cmd.Amount.Equal(decimal.NewFromInt(150000)) {
					t.Fatalf("unexpected amount: %s", cmd.Amount)
				}
				if !cmd.PaidAt.IsZero() {
					t.Fatalf("expected zero paid_at when omitted")
				}
				return entities.Payment{ID: "pay-1", WorkOrderID: "wo-1", Amount: cmd.Amount, Method: cmd.Method}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"work_order_id":"wo-1","amount":150000,"method":"efectivo"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("provider payload forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newRouter(h)

		uc.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.RecordPaymentCommand) (entities.Payment, error) {
				if len(cmd.ProviderPayload) == 0 {
					t.Fatalf("expected provider payload")
				}
				var m map[string]any
				if err := json.Unmarshal(cmd.ProviderPayload, &m); err != nil {
					t.Fatalf("provider payload not json: %v", err)
				}
				if m["token"] != "tok-1" {
					t.Fatalf("unexpected payload: %v", m)
				}
				return entities.Payment{ID: "pay-1", ProviderPaymentID: "mp-123"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"work_order_id":"wo-1","amount":250000,"method":"tarjeta","provider_payload":{"token":"tok-1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newRouter(h)

		uc.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrPaymentGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"work_order_id":"wo-1","amount":100,"method":"tarjeta","provider_payload":{"token":"tok-1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("gateway bad request maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newRouter(h)

		uc.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrPaymentGatewayBadRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"work_order_id":"wo-1","amount":100,"method":"tarjeta","provider_payload":{"token":"tok-1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_DeletePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.DELETE("/v1/payments/:id", h.DeletePayment)

		uc.EXPECT().DeletePayment(gomock.Any(), "pay-missing").Return(&usecase.NotFoundError{Entity: "payment", ID: "pay-missing"})

		req := httptest.NewRequest(http.MethodDelete, "/v1/payments/pay-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.DELETE("/v1/payments/:id", h.DeletePayment)

		uc.EXPECT().DeletePayment(gomock.Any(), "pay-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetBalance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/work-orders/:id/balance", h.GetBalance)

	uc.EXPECT().OutstandingBalance(gomock.Any(), "wo-1").Return(usecase.BalanceStatement{
		WorkOrderID:   "wo-1",
		HasInvoice:    true,
		InvoiceID:     "inv-1",
		InvoiceNumber: "F-000003",
		InvoiceTotal:  decimal.NewFromInt(295000),
		Paid:          decimal.NewFromInt(100000),
		Balance:       decimal.NewFromInt(195000),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/work-orders/wo-1/balance", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["has_invoice"] != true || body["invoice_number"] != "F-000003" {
		t.Fatalf("unexpected body: %v", body)
	}
	if body["fully_paid"] != false {
		t.Fatalf("expected fully_paid false, got %v", body["fully_paid"])
	}
}
