package usecase

import (
	"context"
	"errors"
	"testing"

	"taller_xpto/internal/domain/entities"
	mock_interfaces "taller_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newWorkOrderUseCaseForTest(ctrl *gomock.Controller) (*WorkOrderUseCase, *mock_interfaces.MockIWorkOrderRepository, *mock_interfaces.MockIProcessRepository, *mock_interfaces.MockIInvoiceRepository, *mock_interfaces.MockIPaymentRepository) {
	repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
	processRepo := mock_interfaces.NewMockIProcessRepository(ctrl)
	invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewWorkOrderUseCase(repo, processRepo, invoiceRepo, paymentRepo, decimal.NewFromFloat(0.19))
	return uc, repo, processRepo, invoiceRepo, paymentRepo
}

func TestWorkOrderUseCase_CreateWorkOrder(t *testing.T) {
	t.Run("missing customer id", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil, nil, nil, decimal.Zero)
		_, err := uc.CreateWorkOrder(context.Background(), CreateWorkOrderCommand{CustomerID: "  ", VehicleID: "veh-1"})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("missing vehicle id", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil, nil, nil, decimal.Zero)
		_, err := uc.CreateWorkOrder(context.Background(), CreateWorkOrderCommand{CustomerID: "cust-1"})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("warranty enabled without days", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil, nil, nil, decimal.Zero)
		_, err := uc.CreateWorkOrder(context.Background(), CreateWorkOrderCommand{
			CustomerID: "cust-1", VehicleID: "veh-1", WarrantyEnabled: true,
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("negative tax rate", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil, nil, nil, decimal.Zero)
		neg := decimal.NewFromFloat(-0.1)
		_, err := uc.CreateWorkOrder(context.Background(), CreateWorkOrderCommand{
			CustomerID: "cust-1", VehicleID: "veh-1", TaxRate: &neg,
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("create success with default tax rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{})).DoAndReturn(
			func(_ context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
				if o.ID == "" || o.CustomerID != "cust-1" || o.VehicleID != "veh-1" {
					t.Fatalf("unexpected work order: %+v", o)
				}
				if o.Status != entities.OrderStatusCotizando {
					t.Fatalf("expected COTIZANDO, got %s", o.Status)
				}
				if !o.TaxRate.Equal(decimal.NewFromFloat(0.19)) {
					t.Fatalf("expected default tax rate, got %s", o.TaxRate)
				}
				if o.Version != 1 {
					t.Fatalf("expected version 1, got %d", o.Version)
				}
				if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return o, nil
			},
		)

		res, err := uc.CreateWorkOrder(context.Background(), CreateWorkOrderCommand{CustomerID: " cust-1 ", VehicleID: " veh-1 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestWorkOrderUseCase_RequestTransition_Structural(t *testing.T) {
	t.Run("unknown target status", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil, nil, nil, decimal.Zero)
		_, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatus("PERDIDA"), "")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("work order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{}, nil)

		_, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatusAceptada, "")
		var nfe *NotFoundError
		if !errors.As(err, &nfe) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	// The full edge set: anything not listed for a source status must be
	// rejected as an illegal transition, guards untouched.
	t.Run("transition table", func(t *testing.T) {
		allowed := map[entities.OrderStatus][]entities.OrderStatus{
			entities.OrderStatusCotizando:  {entities.OrderStatusAceptada, entities.OrderStatusCancelada},
			entities.OrderStatusAceptada:   {entities.OrderStatusEnProceso, entities.OrderStatusCancelada},
			entities.OrderStatusEnProceso:  {entities.OrderStatusPorPagar, entities.OrderStatusCancelada},
			entities.OrderStatusPorPagar:   {entities.OrderStatusCompletada, entities.OrderStatusCancelada},
			entities.OrderStatusCompletada: {entities.OrderStatusEntregada},
			entities.OrderStatusEntregada:  {},
			entities.OrderStatusCancelada:  {},
		}
		all := []entities.OrderStatus{
			entities.OrderStatusCotizando, entities.OrderStatusAceptada, entities.OrderStatusEnProceso,
			entities.OrderStatusPorPagar, entities.OrderStatusCompletada, entities.OrderStatusEntregada,
			entities.OrderStatusCancelada,
		}

		for from, targets := range allowed {
			permitted := map[entities.OrderStatus]bool{}
			for _, to := range targets {
				permitted[to] = true
			}
			for _, to := range all {
				if permitted[to] {
					continue
				}
				ctrl := gomock.NewController(t)
				uc, repo, _, _, _ := newWorkOrderUseCaseForTest(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", Status: from, Version: 3}, nil)

				_, err := uc.RequestTransition(context.Background(), "wo-1", to, "")
				var ite *IllegalTransitionError
				if !errors.As(err, &ite) {
					t.Fatalf("%s -> %s: expected IllegalTransitionError, got %v", from, to, err)
				}
				if ite.From != from || ite.To != to {
					t.Fatalf("unexpected error detail: %+v", ite)
				}
				ctrl.Finish()
			}
		}
	})

	// An edge missing from the table fails structurally even when the
	// guard for the target would pass.
	t.Run("structural check precedes guard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", Status: entities.OrderStatusCotizando, Version: 1}, nil)

		_, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatusCompletada, "")
		var ite *IllegalTransitionError
		if !errors.As(err, &ite) {
			t.Fatalf("expected IllegalTransitionError, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_RequestTransition_PorPagarGuard(t *testing.T) {
	order := entities.WorkOrder{ID: "wo-1", Status: entities.OrderStatusEnProceso, Version: 5}

	t.Run("no processes registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, processRepo, _, _ := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(order, nil)
		processRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.Process{}, nil)

		_, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatusPorPagar, "")
		var gv *GuardViolation
		if !errors.As(err, &gv) {
			t.Fatalf("expected GuardViolation, got %v", err)
		}
		if gv.Reason != "sin procesos registrados" {
			t.Fatalf("unexpected reason: %q", gv.Reason)
		}
	})

	t.Run("incomplete processes counted in reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, processRepo, _, _ := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(order, nil)
		processRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.Process{
			{ID: "p-1", Status: entities.ProcessStatusCompletado},
			{ID: "p-2", Status: entities.ProcessStatusEnProgreso},
		}, nil)

		_, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatusPorPagar, "")
		var gv *GuardViolation
		if !errors.As(err, &gv) {
			t.Fatalf("expected GuardViolation, got %v", err)
		}
		if gv.Reason != "1 proceso(s) sin completar" {
			t.Fatalf("unexpected reason: %q", gv.Reason)
		}
	})

	t.Run("all processes complete commits transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, processRepo, _, _ := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(order, nil)
		processRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.Process{
			{ID: "p-1", Status: entities.ProcessStatusCompletado},
			{ID: "p-2", Status: entities.ProcessStatusCompletado},
		}, nil)
		repo.EXPECT().UpdateState(gomock.Any(), "wo-1", gomock.AssignableToTypeOf(entities.StateChange{}), int64(5)).DoAndReturn(
			func(_ context.Context, id string, change entities.StateChange, _ int64) (entities.WorkOrder, error) {
				if change.Status != entities.OrderStatusPorPagar {
					t.Fatalf("unexpected target: %s", change.Status)
				}
				if change.QuoteApprovedAt != nil || change.WarrantyExpiresAt != nil {
					t.Fatalf("unexpected stamps: %+v", change)
				}
				return entities.WorkOrder{ID: id, Status: change.Status, Version: 6}, nil
			},
		)

		res, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatusPorPagar, "listo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OrderStatusPorPagar || res.Version != 6 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestWorkOrderUseCase_RequestTransition_CompletadaGuard(t *testing.T) {
	order := entities.WorkOrder{ID: "wo-1", Status: entities.OrderStatusPorPagar, Version: 7}

	t.Run("no invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, invoiceRepo, paymentRepo := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(order, nil)
		paymentRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return(nil, nil)
		invoiceRepo.EXPECT().LatestByWorkOrderID(gomock.Any(), "wo-1").Return(entities.Invoice{}, nil)

		_, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatusCompletada, "")
		var gv *GuardViolation
		if !errors.As(err, &gv) {
			t.Fatalf("expected GuardViolation, got %v", err)
		}
		if gv.Reason != "sin factura generada" {
			t.Fatalf("unexpected reason: %q", gv.Reason)
		}
	})

	t.Run("outstanding balance in reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, invoiceRepo, paymentRepo := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(order, nil)
		paymentRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.Payment{
			{ID: "pay-1", Amount: decimal.NewFromInt(100000)},
		}, nil)
		invoiceRepo.EXPECT().LatestByWorkOrderID(gomock.Any(), "wo-1").Return(entities.Invoice{
			ID: "inv-1", Number: "F-000042", Total: decimal.NewFromInt(295000),
		}, nil)

		_, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatusCompletada, "")
		var gv *GuardViolation
		if !errors.As(err, &gv) {
			t.Fatalf("expected GuardViolation, got %v", err)
		}
		if gv.Reason != "saldo pendiente: 195000" {
			t.Fatalf("unexpected reason: %q", gv.Reason)
		}
	})

	t.Run("fully paid commits transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, invoiceRepo, paymentRepo := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(order, nil)
		paymentRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.Payment{
			{ID: "pay-1", Amount: decimal.NewFromInt(200000)},
			{ID: "pay-2", Amount: decimal.NewFromInt(95000)},
		}, nil)
		invoiceRepo.EXPECT().LatestByWorkOrderID(gomock.Any(), "wo-1").Return(entities.Invoice{
			ID: "inv-1", Total: decimal.NewFromInt(295000),
		}, nil)
		repo.EXPECT().UpdateState(gomock.Any(), "wo-1", gomock.AssignableToTypeOf(entities.StateChange{}), int64(7)).Return(
			entities.WorkOrder{ID: "wo-1", Status: entities.OrderStatusCompletada, Version: 8}, nil,
		)

		res, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatusCompletada, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OrderStatusCompletada {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("overpayment still passes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, invoiceRepo, paymentRepo := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(order, nil)
		paymentRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.Payment{
			{ID: "pay-1", Amount: decimal.NewFromInt(300000)},
		}, nil)
		invoiceRepo.EXPECT().LatestByWorkOrderID(gomock.Any(), "wo-1").Return(entities.Invoice{
			ID: "inv-1", Total: decimal.NewFromInt(295000),
		}, nil)
		repo.EXPECT().UpdateState(gomock.Any(), "wo-1", gomock.Any(), int64(7)).Return(
			entities.WorkOrder{ID: "wo-1", Status: entities.OrderStatusCompletada, Version: 8}, nil,
		)

		if _, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatusCompletada, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_RequestTransition_Stamps(t *testing.T) {
	t.Run("aceptada stamps quote approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", Status: entities.OrderStatusCotizando, Version: 1}, nil)
		repo.EXPECT().UpdateState(gomock.Any(), "wo-1", gomock.Any(), int64(1)).DoAndReturn(
			func(_ context.Context, id string, change entities.StateChange, _ int64) (entities.WorkOrder, error) {
				if change.QuoteApprovedAt == nil || change.QuoteApprovedAt.IsZero() {
					t.Fatalf("expected quote approval stamp")
				}
				return entities.WorkOrder{ID: id, Status: change.Status, Version: 2}, nil
			},
		)

		if _, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatusAceptada, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("entregada stamps warranty expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{
			ID: "wo-1", Status: entities.OrderStatusCompletada, Version: 9,
			WarrantyEnabled: true, WarrantyDays: 90,
		}, nil)
		repo.EXPECT().UpdateState(gomock.Any(), "wo-1", gomock.Any(), int64(9)).DoAndReturn(
			func(_ context.Context, id string, change entities.StateChange, _ int64) (entities.WorkOrder, error) {
				if change.WarrantyExpiresAt == nil {
					t.Fatalf("expected warranty expiry stamp")
				}
				return entities.WorkOrder{ID: id, Status: change.Status, Version: 10}, nil
			},
		)

		if _, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatusEntregada, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("entregada without warranty leaves no stamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", Status: entities.OrderStatusCompletada, Version: 9}, nil)
		repo.EXPECT().UpdateState(gomock.Any(), "wo-1", gomock.Any(), int64(9)).DoAndReturn(
			func(_ context.Context, id string, change entities.StateChange, _ int64) (entities.WorkOrder, error) {
				if change.WarrantyExpiresAt != nil {
					t.Fatalf("unexpected warranty stamp")
				}
				return entities.WorkOrder{ID: id, Status: change.Status, Version: 10}, nil
			},
		)

		if _, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatusEntregada, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_RequestTransition_Concurrency(t *testing.T) {
	// Two racing transitions both read version N; only the first conditional
	// write commits. The loser observes an empty result from the repository.
	//
	// Guard reads and the state write are not atomic: a process created
	// between the guard read and the commit is not seen. The version check
	// only fences concurrent writes to the work order item itself.
	t.Run("lost version check maps to ErrConcurrentUpdate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", Status: entities.OrderStatusCotizando, Version: 4}, nil)
		repo.EXPECT().UpdateState(gomock.Any(), "wo-1", gomock.Any(), int64(4)).Return(entities.WorkOrder{}, nil)

		_, err := uc.RequestTransition(context.Background(), "wo-1", entities.OrderStatusCancelada, "")
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_RecalculateTotals(t *testing.T) {
	t.Run("mixes completed and estimated labor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, processRepo, _, _ := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{
			ID: "wo-1", Status: entities.OrderStatusEnProceso, TaxRate: decimal.NewFromFloat(0.19), Version: 2,
		}, nil)
		processRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.Process{
			{ID: "p-1", Status: entities.ProcessStatusCompletado, LaborCost: decimal.NewFromInt(120000)},
			{ID: "p-2", Status: entities.ProcessStatusPendiente, EstimatedHours: 2, HourlyRate: decimal.NewFromInt(40000)},
		}, nil)
		repo.EXPECT().UpdateTotals(gomock.Any(), "wo-1", gomock.Any(), gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
			func(_ context.Context, id string, subtotal, taxAmount, total decimal.Decimal, _ int64) (entities.WorkOrder, error) {
				if !subtotal.Equal(decimal.NewFromInt(200000)) {
					t.Fatalf("expected subtotal 200000, got %s", subtotal)
				}
				if !taxAmount.Equal(decimal.NewFromInt(38000)) {
					t.Fatalf("expected tax 38000, got %s", taxAmount)
				}
				if !total.Equal(decimal.NewFromInt(238000)) {
					t.Fatalf("expected total 238000, got %s", total)
				}
				return entities.WorkOrder{ID: id, Subtotal: subtotal, TaxAmount: taxAmount, Total: total, Version: 3}, nil
			},
		)

		res, err := uc.RecalculateTotals(context.Background(), "wo-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Total.Equal(decimal.NewFromInt(238000)) {
			t.Fatalf("unexpected total: %s", res.Total)
		}
	})

	t.Run("lost version check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, processRepo, _, _ := newWorkOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", TaxRate: decimal.Zero, Version: 2}, nil)
		processRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return(nil, nil)
		repo.EXPECT().UpdateTotals(gomock.Any(), "wo-1", gomock.Any(), gomock.Any(), gomock.Any(), int64(2)).Return(entities.WorkOrder{}, nil)

		_, err := uc.RecalculateTotals(context.Background(), "wo-1")
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}
