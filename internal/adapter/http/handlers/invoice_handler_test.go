package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taller_xpto/internal/adapter/http/handlers/mocks"
	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_GenerateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *InvoiceHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/invoices", h.GenerateInvoice)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing subtotal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"work_order_id":"wo-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not billable maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)
		r := newRouter(h)

		uc.EXPECT().GenerateInvoice(gomock.Any(), gomock.AssignableToTypeOf(usecase.GenerateInvoiceCommand{})).Return(
			entities.Invoice{}, &usecase.InvalidStateError{Entity: "work order", ID: "wo-1", Current: "COTIZANDO", Op: "invoice"},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"work_order_id":"wo-1","subtotal":180000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success forwards command", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)
		r := newRouter(h)

		uc.EXPECT().GenerateInvoice(gomock.Any(), gomock.AssignableToTypeOf(usecase.GenerateInvoiceCommand{})).DoAndReturn(
			func(_ context.Context, cmd usecase.GenerateInvoiceCommand) (entities.Invoice, error) {
				if cmd.WorkOrderID != "wo-1" {
					t.Fatalf("unexpected work order id: %s", cmd.WorkOrderID)
				}
				if !cmd.Subtotal.Equal(decimal.NewFromInt(180000)) {
					t.Fatalf("unexpected subtotal: %s", cmd.Subtotal)
				}
				if cmd.PaymentTerms != "contado" {
					t.Fatalf("unexpected payment terms: %s", cmd.PaymentTerms)
				}
				return entities.Invoice{ID: "inv-1", WorkOrderID: "wo-1", Number: "F-000042"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"work_order_id":"wo-1","subtotal":180000,"tax_amount":34200,"payment_terms":"contado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "F-000042") {
			t.Fatalf("invoice number missing from response: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_GetLatestByWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *InvoiceHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/work-orders/:id/invoice", h.GetLatestByWorkOrder)
		return r
	}

	t.Run("no invoice yet maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)
		r := newRouter(h)

		uc.EXPECT().LatestByWorkOrderID(gomock.Any(), "wo-1").Return(
			entities.Invoice{}, &usecase.NotFoundError{Entity: "invoice for work order", ID: "wo-1"},
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders/wo-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)
		r := newRouter(h)

		uc.EXPECT().LatestByWorkOrderID(gomock.Any(), "wo-1").Return(
			entities.Invoice{ID: "inv-1", WorkOrderID: "wo-1", Number: "F-000042"}, nil,
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders/wo-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
