package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusCotizando, OrderStatusAceptada, OrderStatusEnProceso,
		OrderStatusPorPagar, OrderStatusCompletada, OrderStatusEntregada,
		OrderStatusCancelada,
	} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, OrderStatus("").IsValid())
	assert.False(t, OrderStatus("PERDIDA").IsValid())
	assert.False(t, OrderStatus("cotizando").IsValid())
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusEntregada.IsTerminal())
	assert.True(t, OrderStatusCancelada.IsTerminal())

	for _, s := range []OrderStatus{
		OrderStatusCotizando, OrderStatusAceptada, OrderStatusEnProceso,
		OrderStatusPorPagar, OrderStatusCompletada,
	} {
		assert.False(t, s.IsTerminal(), string(s))
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusCotizando, OrderStatusAceptada, true},
		{OrderStatusCotizando, OrderStatusCancelada, true},
		{OrderStatusCotizando, OrderStatusEnProceso, false},
		{OrderStatusCotizando, OrderStatusCompletada, false},
		{OrderStatusAceptada, OrderStatusEnProceso, true},
		{OrderStatusAceptada, OrderStatusCotizando, false},
		{OrderStatusEnProceso, OrderStatusPorPagar, true},
		{OrderStatusEnProceso, OrderStatusEntregada, false},
		{OrderStatusPorPagar, OrderStatusCompletada, true},
		{OrderStatusPorPagar, OrderStatusEnProceso, false},
		{OrderStatusCompletada, OrderStatusEntregada, true},
		{OrderStatusCompletada, OrderStatusCancelada, false},
		{OrderStatusEntregada, OrderStatusCancelada, false},
		{OrderStatusCancelada, OrderStatusCotizando, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
