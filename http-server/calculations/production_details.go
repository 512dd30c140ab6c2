package calculations

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"furniture-golang/internal/storage"
	"furniture-golang/internal/validate"
)

type ProductionDetailsProvider interface {
	GetProductByID(ctx context.Context, id int64) (*storage.ProductDetails, error)
	GetWorkshopTimes(ctx context.Context, productID int64) ([]storage.WorkshopTime, error)
}

type ProductionTimer interface {
	TotalProductionTime(ctx context.Context, productID int64) (int, error)
}

type ProductionStep struct {
	WorkshopName           string  `json:"workshop_name"`
	WorkshopType           string  `json:"workshop_type"`
	EmployeeCount          int     `json:"employee_count"`
	ManufacturingTimeHours float64 `json:"manufacturing_time_hours"`
}

type ProductionSummary struct {
	TotalProductionTime    int     `json:"total_production_time"`
	WorkshopsCount         int     `json:"workshops_count"`
	AverageTimePerWorkshop float64 `json:"average_time_per_workshop"`
	TotalEmployees         int     `json:"total_employees"`
}

type ProductionDetailsResp struct {
	Product         *storage.ProductDetails `json:"product"`
	ProductionSteps []ProductionStep        `json:"production_steps"`
	Summary         ProductionSummary       `json:"summary"`
}

// GetProductionDetails — детальный расчёт времени изготовления продукта:
// время по каждому цеху плюс агрегаты
func GetProductionDetails(log *slog.Logger, provider ProductionDetailsProvider, timer ProductionTimer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.calculations.GetProductionDetails"

		productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id продукта", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		product, err := provider.GetProductByID(ctx, productID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Продукт не найден", http.StatusNotFound)
				return
			}
			log.Error("Ошибка получения продукта", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		times, err := provider.GetWorkshopTimes(ctx, productID)
		if err != nil {
			log.Error("Ошибка получения цехов продукта", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		total, err := timer.TotalProductionTime(ctx, productID)
		if err != nil {
			log.Error("Ошибка расчёта времени изготовления", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		steps := make([]ProductionStep, 0, len(times))
		totalEmployees := 0
		for _, wt := range times {
			steps = append(steps, ProductionStep{
				WorkshopName:           wt.WorkshopName,
				WorkshopType:           wt.WorkshopType,
				EmployeeCount:          wt.EmployeeCount,
				ManufacturingTimeHours: wt.ManufacturingTimeHours,
			})
			totalEmployees += wt.EmployeeCount
		}

		avg := 0.0
		if len(times) > 0 {
			avg = validate.Round2(float64(total) / float64(len(times)))
		}

		render.JSON(w, r, ProductionDetailsResp{
			Product:         product,
			ProductionSteps: steps,
			Summary: ProductionSummary{
				TotalProductionTime:    total,
				WorkshopsCount:         len(times),
				AverageTimePerWorkshop: avg,
				TotalEmployees:         totalEmployees,
			},
		})
	}
}
