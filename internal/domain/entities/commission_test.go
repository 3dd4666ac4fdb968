package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommissionStatus_IsValid(t *testing.T) {
	assert.True(t, CommissionStatusPendiente.IsValid())
	assert.True(t, CommissionStatusPagado.IsValid())
	assert.True(t, CommissionStatusAnulado.IsValid())
	assert.False(t, CommissionStatus("PAGADO").IsValid())
	assert.False(t, CommissionStatus("").IsValid())
}
