package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a work order (orden de trabajo).
//
// Domain notes:
//   - The engine is the source of truth for work-order state.
//   - Status only moves through the edges in allowedTransitions; CANCELADA
//     is reachable from any non-settled status.
//   - COMPLETADA and ENTREGADA are settled: money has been reconciled and
//     cancellation is no longer allowed.

type OrderStatus string

const (
	OrderStatusCotizando  OrderStatus = "COTIZANDO"
	OrderStatusAceptada   OrderStatus = "ACEPTADA"
	OrderStatusEnProceso  OrderStatus = "EN_PROCESO"
	OrderStatusPorPagar   OrderStatus = "POR_PAGAR"
	OrderStatusCompletada OrderStatus = "COMPLETADA"
	OrderStatusEntregada  OrderStatus = "ENTREGADA"
	OrderStatusCancelada  OrderStatus = "CANCELADA"
)

var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusCotizando:  {OrderStatusAceptada, OrderStatusCancelada},
	OrderStatusAceptada:   {OrderStatusEnProceso, OrderStatusCancelada},
	OrderStatusEnProceso:  {OrderStatusPorPagar, OrderStatusCancelada},
	OrderStatusPorPagar:   {OrderStatusCompletada, OrderStatusCancelada},
	OrderStatusCompletada: {OrderStatusEntregada},
	OrderStatusEntregada:  {},
	OrderStatusCancelada:  {},
}

// IsValid reports whether s is one of the defined order statuses.
func (s OrderStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminal reports whether no further transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// CanTransitionTo reports whether the edge (s, target) exists in the
// transition table. Guard conditions are evaluated separately.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, t := range allowedTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// WorkOrder is one customer job, tracked from quote to delivery.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Invariants:
//   - Total = Subtotal + TaxAmount, TaxAmount = Subtotal * TaxRate.
//   - Status is mutated exclusively through the work-order use case; the
//     Version field backs the conditional write that commits a transition.

type WorkOrder struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	VehicleID  string      `json:"vehicle_id"`
	Status     OrderStatus `json:"status"`

	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`

	QuoteApproved   bool       `json:"quote_approved"`
	QuoteApprovedAt *time.Time `json:"quote_approved_at,omitempty"`

	WarrantyEnabled   bool       `json:"warranty_enabled"`
	WarrantyDays      int        `json:"warranty_days,omitempty"`
	WarrantyExpiresAt *time.Time `json:"warranty_expires_at,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StateChange carries the fields written together with a status transition.
type StateChange struct {
	Status            OrderStatus
	QuoteApprovedAt   *time.Time
	WarrantyExpiresAt *time.Time
}
