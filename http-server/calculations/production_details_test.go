package calculations

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"furniture-golang/internal/storage"
)

type MockProductionDetailsProvider struct {
	mock.Mock
}

func (m *MockProductionDetailsProvider) GetProductByID(ctx context.Context, id int64) (*storage.ProductDetails, error) {
	args := m.Called(ctx, id)

	var pr *storage.ProductDetails
	if args.Get(0) != nil {
		pr = args.Get(0).(*storage.ProductDetails)
	}

	return pr, args.Error(1)
}

func (m *MockProductionDetailsProvider) GetWorkshopTimes(ctx context.Context, productID int64) ([]storage.WorkshopTime, error) {
	args := m.Called(ctx, productID)

	var times []storage.WorkshopTime
	if args.Get(0) != nil {
		times = args.Get(0).([]storage.WorkshopTime)
	}

	return times, args.Error(1)
}

type MockProductionTimer struct {
	mock.Mock
}

func (m *MockProductionTimer) TotalProductionTime(ctx context.Context, productID int64) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

func newDetailsRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/products/"+id+"/production-details", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetProductionDetails_Success(t *testing.T) {
	provider := new(MockProductionDetailsProvider)
	timer := new(MockProductionTimer)

	product := &storage.ProductDetails{
		ID:              5,
		Article:         "ART-100",
		Name:            "Диван угловой",
		ProductType:     "Гостиные",
		MainMaterial:    "Мебельный щит",
		MinPartnerPrice: 12500.50,
	}
	times := []storage.WorkshopTime{
		{WorkshopID: 1, WorkshopName: "Столярный цех", WorkshopType: "производственный", EmployeeCount: 12, ManufacturingTimeHours: 2.0},
		{WorkshopID: 2, WorkshopName: "Сборочный цех", WorkshopType: "сборочный", EmployeeCount: 8, ManufacturingTimeHours: 3.4},
		{WorkshopID: 3, WorkshopName: "Цех упаковки", WorkshopType: "вспомогательный", EmployeeCount: 4, ManufacturingTimeHours: 0.2},
	}

	provider.On("GetProductByID", mock.Anything, int64(5)).Return(product, nil)
	provider.On("GetWorkshopTimes", mock.Anything, int64(5)).Return(times, nil)
	// 2.0 + 3.4 + 0.2 = 5.6 → 6
	timer.On("TotalProductionTime", mock.Anything, int64(5)).Return(6, nil)

	handler := GetProductionDetails(slog.Default(), provider, timer)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newDetailsRequest("5"))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ProductionDetailsResp
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.Equal(t, "Диван угловой", resp.Product.Name)
	assert.Len(t, resp.ProductionSteps, 3)
	assert.Equal(t, 6, resp.Summary.TotalProductionTime)
	assert.Equal(t, 3, resp.Summary.WorkshopsCount)
	assert.Equal(t, 24, resp.Summary.TotalEmployees)
	assert.Equal(t, 2.0, resp.Summary.AverageTimePerWorkshop)

	provider.AssertExpectations(t)
	timer.AssertExpectations(t)
}

// Продукт без цехов — нулевой итог, не ошибка
func TestGetProductionDetails_NoWorkshops(t *testing.T) {
	provider := new(MockProductionDetailsProvider)
	timer := new(MockProductionTimer)

	provider.On("GetProductByID", mock.Anything, int64(9)).
		Return(&storage.ProductDetails{ID: 9, Name: "Табурет"}, nil)
	provider.On("GetWorkshopTimes", mock.Anything, int64(9)).
		Return([]storage.WorkshopTime{}, nil)
	timer.On("TotalProductionTime", mock.Anything, int64(9)).Return(0, nil)

	handler := GetProductionDetails(slog.Default(), provider, timer)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newDetailsRequest("9"))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ProductionDetailsResp
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.Equal(t, 0, resp.Summary.TotalProductionTime)
	assert.Equal(t, 0, resp.Summary.WorkshopsCount)
	assert.Equal(t, 0.0, resp.Summary.AverageTimePerWorkshop)
}

func TestGetProductionDetails_ProductNotFound(t *testing.T) {
	provider := new(MockProductionDetailsProvider)
	timer := new(MockProductionTimer)

	provider.On("GetProductByID", mock.Anything, int64(404)).
		Return(nil, storage.ErrNotFound)

	handler := GetProductionDetails(slog.Default(), provider, timer)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newDetailsRequest("404"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Продукт не найден")

	timer.AssertNotCalled(t, "TotalProductionTime")
}

func TestGetProductionDetails_BadID(t *testing.T) {
	provider := new(MockProductionDetailsProvider)
	timer := new(MockProductionTimer)

	handler := GetProductionDetails(slog.Default(), provider, timer)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newDetailsRequest("abc"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	provider.AssertNotCalled(t, "GetProductByID")
}
