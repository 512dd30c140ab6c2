package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"furniture-golang/internal/storage"
	"furniture-golang/internal/validate"
)

type ProductionLinker interface {
	LinkProductWorkshop(ctx context.Context, link storage.ProductWorkshop) error
}

type LinkReq struct {
	ProductID              int64   `json:"product_id"`
	WorkshopID             int64   `json:"workshop_id"`
	ManufacturingTimeHours float64 `json:"manufacturing_time_hours"`
}

// LinkProductWorkshop привязывает продукт к цеху. Уникальность пары
// гарантирует ключ в базе, а не проверка перед вставкой
func LinkProductWorkshop(log *slog.Logger, linker ProductionLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.production.LinkProductWorkshop"

		var req LinkReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if req.ProductID <= 0 || req.WorkshopID <= 0 {
			http.Error(w, "Некорректный id продукта или цеха", http.StatusBadRequest)
			return
		}
		if err := validate.ManufacturingHours(req.ManufacturingTimeHours); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		link := storage.ProductWorkshop{
			ProductID:              req.ProductID,
			WorkshopID:             req.WorkshopID,
			ManufacturingTimeHours: req.ManufacturingTimeHours,
		}

		if err := linker.LinkProductWorkshop(ctx, link); err != nil {
			if errors.Is(err, storage.ErrDuplicateLink) {
				http.Error(w, "Продукт уже связан с этим цехом", http.StatusBadRequest)
				return
			}
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Продукт или цех не найден", http.StatusNotFound)
				return
			}
			log.Error("Ошибка привязки продукта к цеху", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]interface{}{
			"status": "success",
		})
	}
}
