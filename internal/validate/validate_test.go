package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert.NoError(t, Name("Цех сборки", MaxNameLen))
	assert.Error(t, Name("", MaxNameLen))
	assert.Error(t, Name("   ", MaxNameLen))
	assert.Error(t, Name(strings.Repeat("а", MaxNameLen+1), MaxNameLen))
	// Ровно на границе — валидно
	assert.NoError(t, Name(strings.Repeat("а", MaxNameLen), MaxNameLen))
}

func TestLossPercentage(t *testing.T) {
	assert.NoError(t, LossPercentage(0))
	assert.NoError(t, LossPercentage(0.8))
	assert.NoError(t, LossPercentage(100))
	assert.Error(t, LossPercentage(-0.1))
	assert.Error(t, LossPercentage(100.1))
}

func TestCoefficient(t *testing.T) {
	assert.NoError(t, Coefficient(3.5))
	assert.Error(t, Coefficient(0))
	assert.Error(t, Coefficient(-1))
}

func TestManufacturingHours(t *testing.T) {
	assert.NoError(t, ManufacturingHours(0))
	assert.NoError(t, ManufacturingHours(2.4))
	assert.Error(t, ManufacturingHours(-0.5))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12500.5, Round2(12500.499))
	assert.Equal(t, 0.01, Round2(0.005))
	assert.Equal(t, 99.99, Round2(99.994))
}
