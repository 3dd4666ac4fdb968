package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taller_xpto/internal/adapter/http/handlers/mocks"
	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPartsRequestHandler_RequestPart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *PartsRequestHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/parts-requests", h.RequestPart)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPartsRequestHandler(mocks.NewMockIPartsRequestUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/parts-requests", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPartsRequestHandler(mocks.NewMockIPartsRequestUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/parts-requests", bytes.NewBufferString(`{"work_order_id":"wo-1","description":"filtro de aceite"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartsRequestUseCase(ctrl)
		h := NewPartsRequestHandler(uc)
		r := newRouter(h)

		uc.EXPECT().RequestPart(gomock.Any(), "wo-1", "p-1", "filtro de aceite", 2, true).Return(
			entities.PartsRequest{ID: "pr-1", WorkOrderID: "wo-1", Status: entities.PartsRequestStatusSolicitado}, nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/parts-requests", bytes.NewBufferString(`{"work_order_id":"wo-1","process_id":"p-1","description":"filtro de aceite","quantity":2,"urgent":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestPartsRequestHandler_MarkOrdered(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *PartsRequestHandler) *gin.Engine {
		r := gin.New()
		r.PATCH("/v1/parts-requests/:id/order", h.MarkOrdered)
		return r
	}

	t.Run("already ordered maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartsRequestUseCase(ctrl)
		h := NewPartsRequestHandler(uc)
		r := newRouter(h)

		uc.EXPECT().MarkOrdered(gomock.Any(), "pr-1", "maria", "", gomock.Any(), gomock.Nil()).Return(
			entities.PartsRequest{}, &usecase.InvalidStateError{Entity: "parts request", ID: "pr-1", Current: "PEDIDO", Op: "order"},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/parts-requests/pr-1/order", bytes.NewBufferString(`{"ordered_by":"maria","estimated_cost":35000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success forwards expected date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartsRequestUseCase(ctrl)
		h := NewPartsRequestHandler(uc)
		r := newRouter(h)

		uc.EXPECT().MarkOrdered(gomock.Any(), "pr-1", "maria", "sup-9", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id, orderedBy, supplierID string, estimatedCost decimal.Decimal, expectedAt *time.Time) (entities.PartsRequest, error) {
				if expectedAt == nil {
					t.Fatal("expected_at not forwarded")
				}
				if !estimatedCost.Equal(decimal.NewFromInt(35000)) {
					t.Fatalf("unexpected estimated cost: %s", estimatedCost)
				}
				return entities.PartsRequest{ID: id, Status: entities.PartsRequestStatusPedido}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/parts-requests/pr-1/order", bytes.NewBufferString(`{"ordered_by":"maria","supplier_id":"sup-9","estimated_cost":35000,"expected_at":"2026-09-05T00:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPartsRequestHandler_MarkReceived(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *PartsRequestHandler) *gin.Engine {
		r := gin.New()
		r.PATCH("/v1/parts-requests/:id/receive", h.MarkReceived)
		return r
	}

	t.Run("unknown id maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartsRequestUseCase(ctrl)
		h := NewPartsRequestHandler(uc)
		r := newRouter(h)

		uc.EXPECT().MarkReceived(gomock.Any(), "pr-missing", gomock.Any()).Return(
			entities.PartsRequest{}, &usecase.NotFoundError{Entity: "parts request", ID: "pr-missing"},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/parts-requests/pr-missing/receive", bytes.NewBufferString(`{"real_cost":31000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing real cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPartsRequestHandler(mocks.NewMockIPartsRequestUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPatch, "/v1/parts-requests/pr-1/receive", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartsRequestUseCase(ctrl)
		h := NewPartsRequestHandler(uc)
		r := newRouter(h)

		uc.EXPECT().MarkReceived(gomock.Any(), "pr-1", gomock.Any()).Return(
			entities.PartsRequest{ID: "pr-1", Status: entities.PartsRequestStatusRecibido, RealCost: decimal.NewFromInt(31000)}, nil,
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/parts-requests/pr-1/receive", bytes.NewBufferString(`{"real_cost":31000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
