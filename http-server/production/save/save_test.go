package save

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"furniture-golang/internal/storage"
)

type MockProductionLinker struct {
	mock.Mock
}

func (m *MockProductionLinker) LinkProductWorkshop(ctx context.Context, link storage.ProductWorkshop) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func TestLinkProductWorkshop_Success(t *testing.T) {
	mockLinker := new(MockProductionLinker)
	mockLinker.On("LinkProductWorkshop", mock.Anything, storage.ProductWorkshop{
		ProductID:              1,
		WorkshopID:             2,
		ManufacturingTimeHours: 2.5,
	}).Return(nil)

	handler := LinkProductWorkshop(slog.Default(), mockLinker)

	reqBody := `{"product_id": 1, "workshop_id": 2, "manufacturing_time_hours": 2.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/production", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	mockLinker.AssertExpectations(t)
}

func TestLinkProductWorkshop_Duplicate(t *testing.T) {
	mockLinker := new(MockProductionLinker)
	mockLinker.On("LinkProductWorkshop", mock.Anything, mock.Anything).
		Return(storage.ErrDuplicateLink)

	handler := LinkProductWorkshop(slog.Default(), mockLinker)

	reqBody := `{"product_id": 1, "workshop_id": 2, "manufacturing_time_hours": 2.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/production", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "уже связан")

	mockLinker.AssertExpectations(t)
}

// Нулевое время допустимо, отрицательное — нет
func TestLinkProductWorkshop_NegativeHours(t *testing.T) {
	mockLinker := new(MockProductionLinker)
	handler := LinkProductWorkshop(slog.Default(), mockLinker)

	reqBody := `{"product_id": 1, "workshop_id": 2, "manufacturing_time_hours": -0.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/production", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockLinker.AssertNotCalled(t, "LinkProductWorkshop")
}

func TestLinkProductWorkshop_UnknownProduct(t *testing.T) {
	mockLinker := new(MockProductionLinker)
	mockLinker.On("LinkProductWorkshop", mock.Anything, mock.Anything).
		Return(storage.ErrNotFound)

	handler := LinkProductWorkshop(slog.Default(), mockLinker)

	reqBody := `{"product_id": 99, "workshop_id": 2, "manufacturing_time_hours": 1}`
	req := httptest.NewRequest(http.MethodPost, "/api/production", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	mockLinker.AssertExpectations(t)
}
