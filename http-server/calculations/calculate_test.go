package calculations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"furniture-golang/internal/service/calculation"
)

type MockRawMaterialCalculator struct {
	mock.Mock
}

func (m *MockRawMaterialCalculator) CalculateRawMaterial(ctx context.Context, productTypeID, materialTypeID int64,
	productQuantity int, param1, param2 float64) (int, *calculation.Details, error) {
	args := m.Called(ctx, productTypeID, materialTypeID, productQuantity, param1, param2)

	var details *calculation.Details
	if args.Get(1) != nil {
		details = args.Get(1).(*calculation.Details)
	}

	return args.Int(0), details, args.Error(2)
}

func TestCalculateRawMaterial_Success(t *testing.T) {
	// 1. Мок калькулятора с контрольным примером
	mockCalc := new(MockRawMaterialCalculator)

	details := &calculation.Details{
		ProductTypeName:  "Гостиные",
		MaterialName:     "Мебельный щит",
		Coefficient:      3.5,
		LossPercentage:   0.8,
		ProductQuantity:  10,
		Param1:           2.5,
		Param2:           1.8,
		ParamsProduct:    4.5,
		MaterialPerUnit:  15.75,
		TotalWithoutLoss: 157.5,
		LossFactor:       1.008,
		TotalWithLoss:    158.76,
		TotalRounded:     159,
	}

	mockCalc.On("CalculateRawMaterial",
		mock.Anything, // context
		int64(1),      // productTypeID
		int64(2),      // materialTypeID
		10,            // productQuantity
		2.5,           // param1
		1.8,           // param2
	).Return(159, details, nil)

	logger := slog.Default()
	handler := CalculateRawMaterial(logger, mockCalc)

	reqBody := `{
		"product_type_id": 1,
		"material_type_id": 2,
		"product_quantity": 10,
		"param1": 2.5,
		"param2": 1.8
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculations/raw-material", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "ожидался статус 200")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp RawMaterialResp
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err, "ошибка декодирования JSON ответа")

	assert.Equal(t, 159, resp.RawMaterialQuantity)
	assert.Equal(t, int64(1), resp.ProductTypeID)
	assert.Equal(t, int64(2), resp.MaterialTypeID)
	assert.NotNil(t, resp.CalculationDetails)
	assert.Equal(t, "Гостиные", resp.CalculationDetails.ProductTypeName)
	assert.Equal(t, 158.76, resp.CalculationDetails.TotalWithLoss)
	assert.Equal(t, 159, resp.CalculationDetails.TotalRounded)

	mockCalc.AssertExpectations(t)
}

func TestCalculateRawMaterial_InvalidJSON(t *testing.T) {
	mockCalc := new(MockRawMaterialCalculator)
	handler := CalculateRawMaterial(slog.Default(), mockCalc)

	req := httptest.NewRequest(http.MethodPost, "/api/calculations/raw-material", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Некорректный JSON")

	mockCalc.AssertNotCalled(t, "CalculateRawMaterial")
}

// Любой отказ расчёта — одно и то же сообщение, без деталей какая проверка упала
func TestCalculateRawMaterial_InvalidInput(t *testing.T) {
	mockCalc := new(MockRawMaterialCalculator)
	mockCalc.On("CalculateRawMaterial", mock.Anything, int64(1), int64(2), 0, 2.5, 1.8).
		Return(0, nil, calculation.ErrInvalidInput)

	handler := CalculateRawMaterial(slog.Default(), mockCalc)

	reqBody := `{"product_type_id": 1, "material_type_id": 2, "product_quantity": 0, "param1": 2.5, "param2": 1.8}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculations/raw-material", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Некорректные данные")

	mockCalc.AssertExpectations(t)
}

func TestCalculateRawMaterial_ServiceError(t *testing.T) {
	mockCalc := new(MockRawMaterialCalculator)
	mockCalc.On("CalculateRawMaterial", mock.Anything, int64(1), int64(2), 10, 2.5, 1.8).
		Return(0, nil, assert.AnError)

	handler := CalculateRawMaterial(slog.Default(), mockCalc)

	reqBody := `{"product_type_id": 1, "material_type_id": 2, "product_quantity": 10, "param1": 2.5, "param2": 1.8}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculations/raw-material", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Internal error")

	mockCalc.AssertExpectations(t)
}
