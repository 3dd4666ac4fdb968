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

func TestProcessUseCase_CreateProcess(t *testing.T) {
	t.Run("validation failures", func(t *testing.T) {
		uc := NewProcessUseCase(nil, nil)
		cases := []struct {
			name           string
			workOrderID    string
			description    string
			estimatedHours float64
			hourlyRate     decimal.Decimal
		}{
			{"missing work order id", " ", "cambio de aceite", 1, decimal.NewFromInt(40000)},
			{"missing description", "wo-1", "", 1, decimal.NewFromInt(40000)},
			{"zero estimated hours", "wo-1", "cambio de aceite", 0, decimal.NewFromInt(40000)},
			{"negative hourly rate", "wo-1", "cambio de aceite", 1, decimal.NewFromInt(-1)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.CreateProcess(context.Background(), tc.workOrderID, tc.description, tc.estimatedHours, tc.hourlyRate, "")
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
			})
		}
	})

	t.Run("work order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workOrderRepo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewProcessUseCase(nil, workOrderRepo)

		workOrderRepo.EXPECT().GetByID(gomock.Any(), "wo-missing").Return(entities.WorkOrder{}, nil)

		_, err := uc.CreateProcess(context.Background(), "wo-missing", "frenos", 2, decimal.NewFromInt(40000), "")
		var nfe *NotFoundError
		if !errors.As(err, &nfe) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		workOrderRepo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewProcessUseCase(repo, workOrderRepo)

		workOrderRepo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Process{})).DoAndReturn(
			func(_ context.Context, p entities.Process) (entities.Process, error) {
				if p.ID == "" || p.WorkOrderID != "wo-1" || p.Description != "frenos" {
					t.Fatalf("unexpected process: %+v", p)
				}
				if p.Status != entities.ProcessStatusPendiente {
					t.Fatalf("expected PENDIENTE, got %s", p.Status)
				}
				if !p.LaborCost.IsZero() {
					t.Fatalf("expected zero labor cost, got %s", p.LaborCost)
				}
				return p, nil
			},
		)

		res, err := uc.CreateProcess(context.Background(), "wo-1", " frenos ", 2, decimal.NewFromInt(40000), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.EstimatedHours != 2 {
			t.Fatalf("unexpected estimated hours: %v", res.EstimatedHours)
		}
	})
}

func TestProcessUseCase_StartProcess(t *testing.T) {
	t.Run("only pending can start", func(t *testing.T) {
		for _, status := range []entities.ProcessStatus{entities.ProcessStatusEnProgreso, entities.ProcessStatusCompletado} {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIProcessRepository(ctrl)
			uc := NewProcessUseCase(repo, nil)

			repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Process{ID: "p-1", Status: status}, nil)

			_, err := uc.StartProcess(context.Background(), "p-1")
			var ise *InvalidStateError
			if !errors.As(err, &ise) {
				t.Fatalf("%s: expected InvalidStateError, got %v", status, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("start success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Process{ID: "p-1", Status: entities.ProcessStatusPendiente}, nil)
		repo.EXPECT().MarkInProgress(gomock.Any(), "p-1").Return(entities.Process{ID: "p-1", Status: entities.ProcessStatusEnProgreso}, nil)

		res, err := uc.StartProcess(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ProcessStatusEnProgreso {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})
}

func TestProcessUseCase_CompleteProcess(t *testing.T) {
	t.Run("zero actual hours", func(t *testing.T) {
		uc := NewProcessUseCase(nil, nil)
		_, err := uc.CompleteProcess(context.Background(), "p-1", 0, decimal.NewFromInt(40000))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Process{ID: "p-1", Status: entities.ProcessStatusCompletado}, nil)

		_, err := uc.CompleteProcess(context.Background(), "p-1", 3, decimal.NewFromInt(40000))
		var ise *InvalidStateError
		if !errors.As(err, &ise) {
			t.Fatalf("expected InvalidStateError, got %v", err)
		}
	})

	t.Run("freezes labor cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Process{ID: "p-1", Status: entities.ProcessStatusEnProgreso}, nil)
		repo.EXPECT().MarkCompleted(gomock.Any(), "p-1", 2.5, decimal.NewFromInt(40000), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, actualHours float64, hourlyRate, laborCost decimal.Decimal) (entities.Process, error) {
				if !laborCost.Equal(decimal.NewFromInt(100000)) {
					t.Fatalf("expected labor cost 100000, got %s", laborCost)
				}
				return entities.Process{ID: id, Status: entities.ProcessStatusCompletado, ActualHours: actualHours, HourlyRate: hourlyRate, LaborCost: laborCost}, nil
			},
		)

		res, err := uc.CompleteProcess(context.Background(), "p-1", 2.5, decimal.NewFromInt(40000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ProcessStatusCompletado {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("pending can complete directly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Process{ID: "p-1", Status: entities.ProcessStatusPendiente}, nil)
		repo.EXPECT().MarkCompleted(gomock.Any(), "p-1", 1.0, decimal.NewFromInt(50000), gomock.Any()).Return(
			entities.Process{ID: "p-1", Status: entities.ProcessStatusCompletado}, nil,
		)

		if _, err := uc.CompleteProcess(context.Background(), "p-1", 1.0, decimal.NewFromInt(50000)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProcessUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-missing").Return(entities.Process{}, nil)

		_, err := uc.GetByID(context.Background(), "p-missing")
		var nfe *NotFoundError
		if !errors.As(err, &nfe) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo, nil)

		boom := errors.New("dynamo down")
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Process{}, boom)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped repo error, got %v", err)
		}
	})
}
