package calculation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTotalProductionTime_SumsAndRounds(t *testing.T) {
	// Три цеха: 2.0 + 3.4 + 0.2 = 5.6 → 6
	mockStorage := new(MockCalcStorage)
	mockStorage.On("SumManufacturingHours", mock.Anything, int64(10)).Return(5.6, nil)

	svc := NewCalcService(mockStorage)

	total, err := svc.TotalProductionTime(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, 6, total)
	mockStorage.AssertExpectations(t)
}

// Продукт без связей с цехами — ноль, а не ошибка "продукт не найден"
func TestTotalProductionTime_NoWorkshops(t *testing.T) {
	mockStorage := new(MockCalcStorage)
	mockStorage.On("SumManufacturingHours", mock.Anything, int64(42)).Return(0.0, nil)

	svc := NewCalcService(mockStorage)

	total, err := svc.TotalProductionTime(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, 0, total)
}

// Половина округляется от нуля: 3.5 → 4
func TestTotalProductionTime_HalfRoundsUp(t *testing.T) {
	mockStorage := new(MockCalcStorage)
	mockStorage.On("SumManufacturingHours", mock.Anything, int64(7)).Return(3.5, nil)

	svc := NewCalcService(mockStorage)

	total, err := svc.TotalProductionTime(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestTotalProductionTime_RoundsDown(t *testing.T) {
	mockStorage := new(MockCalcStorage)
	mockStorage.On("SumManufacturingHours", mock.Anything, int64(8)).Return(2.4, nil)

	svc := NewCalcService(mockStorage)

	total, err := svc.TotalProductionTime(context.Background(), 8)

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
}

// Связь с нулевым временем не меняет итог
func TestTotalProductionTime_ZeroHourLinkDoesNotChangeResult(t *testing.T) {
	withoutZero := new(MockCalcStorage)
	withoutZero.On("SumManufacturingHours", mock.Anything, int64(3)).Return(5.6, nil)

	withZero := new(MockCalcStorage)
	withZero.On("SumManufacturingHours", mock.Anything, int64(3)).Return(5.6+0.0, nil)

	a, err := NewCalcService(withoutZero).TotalProductionTime(context.Background(), 3)
	assert.NoError(t, err)
	b, err := NewCalcService(withZero).TotalProductionTime(context.Background(), 3)
	assert.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestTotalProductionTime_StorageError(t *testing.T) {
	mockStorage := new(MockCalcStorage)
	mockStorage.On("SumManufacturingHours", mock.Anything, int64(1)).Return(0.0, assert.AnError)

	svc := NewCalcService(mockStorage)

	total, err := svc.TotalProductionTime(context.Background(), 1)

	assert.Error(t, err)
	assert.Equal(t, 0, total)
}
