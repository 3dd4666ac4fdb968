package handlers

import (
	"bytes"
	"context"
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

func TestCommissionHandler_CreateCommission(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *CommissionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/commissions", h.CreateCommission)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCommissionHandler(mocks.NewMockICommissionUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/commissions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing concept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCommissionHandler(mocks.NewMockICommissionUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/commissions", bytes.NewBufferString(`{"employee_id":"emp-1","amount":12000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with omitted date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICommissionUseCase(ctrl)
		h := NewCommissionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().CreateCommission(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateCommissionCommand{})).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateCommissionCommand) (entities.Commission, error) {
				if cmd.EmployeeID != "emp-1" {
					t.Fatalf("unexpected employee id: %s", cmd.EmployeeID)
				}
				if !cmd.Amount.Equal(decimal.NewFromInt(12000)) {
					t.Fatalf("unexpected amount: %s", cmd.Amount)
				}
				if !cmd.Date.IsZero() {
					t.Fatalf("omitted date should be zero, got %s", cmd.Date)
				}
				return entities.Commission{ID: "com-1", EmployeeID: cmd.EmployeeID, Status: entities.CommissionStatusPendiente}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/commissions", bytes.NewBufferString(`{"employee_id":"emp-1","amount":12000,"concept":"mano de obra frenos","work_order_id":"wo-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestCommissionHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *CommissionHandler) *gin.Engine {
		r := gin.New()
		r.PATCH("/v1/commissions/:id/status", h.SetStatus)
		return r
	}

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCommissionHandler(mocks.NewMockICommissionUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPatch, "/v1/commissions/com-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICommissionUseCase(ctrl)
		h := NewCommissionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().SetStatus(gomock.Any(), "com-1", entities.CommissionStatus("congelado")).Return(
			entities.Commission{}, &usecase.ValidationError{Msg: "invalid commission status: congelado"},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/commissions/com-1/status", bytes.NewBufferString(`{"status":"congelado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("uppercase status is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICommissionUseCase(ctrl)
		h := NewCommissionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().SetStatus(gomock.Any(), "com-1", entities.CommissionStatusPagado).Return(
			entities.Commission{ID: "com-1", Status: entities.CommissionStatusPagado, Paid: true}, nil,
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/commissions/com-1/status", bytes.NewBufferString(`{"status":"PAGADO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("voided commission maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICommissionUseCase(ctrl)
		h := NewCommissionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().SetStatus(gomock.Any(), "com-1", entities.CommissionStatusPagado).Return(
			entities.Commission{}, &usecase.InvalidStateError{Entity: "commission", ID: "com-1", Current: "anulado", Op: "set status"},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/commissions/com-1/status", bytes.NewBufferString(`{"status":"pagado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCommissionHandler_ListByEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICommissionUseCase(ctrl)
	h := NewCommissionHandler(uc)

	r := gin.New()
	r.GET("/v1/employees/:employee_id/commissions", h.ListByEmployee)

	uc.EXPECT().ListByEmployeeID(gomock.Any(), "emp-1").Return([]entities.Commission{
		{ID: "com-1", EmployeeID: "emp-1"},
		{ID: "com-2", EmployeeID: "emp-1"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/employees/emp-1/commissions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
