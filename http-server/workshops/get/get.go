package get

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
)

type WorkshopProvider interface {
	GetAllWorkshops(ctx context.Context, limit, offset int) ([]*storage.Workshop, error)
	GetWorkshopByID(ctx context.Context, id int64) (*storage.Workshop, error)
	GetWorkshopProducts(ctx context.Context, workshopID int64) ([]*storage.ProductDetails, []float64, error)
}

func GetWorkshops(log *slog.Logger, provider WorkshopProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.workshops.GetWorkshops"

		limit := queryInt(r, "limit", 100)
		offset := queryInt(r, "offset", 0)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		workshops, err := provider.GetAllWorkshops(ctx, limit, offset)
		if err != nil {
			log.Error("Ошибка получения списка цехов", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, workshops)
	}
}

func GetWorkshop(log *slog.Logger, provider WorkshopProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.workshops.GetWorkshop"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id цеха", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		workshop, err := provider.GetWorkshopByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Цех не найден", http.StatusNotFound)
				return
			}
			log.Error("Ошибка получения цеха", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, workshop)
	}
}

type WorkshopProductResp struct {
	Product                *storage.ProductDetails `json:"product"`
	ManufacturingTimeHours float64                 `json:"manufacturing_time_hours"`
}

// GetWorkshopProducts — продукты, закреплённые за цехом, со временем в этом цехе
func GetWorkshopProducts(log *slog.Logger, provider WorkshopProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.workshops.GetWorkshopProducts"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id цеха", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		// цех должен существовать, иначе 404
		if _, err := provider.GetWorkshopByID(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Цех не найден", http.StatusNotFound)
				return
			}
			log.Error("Ошибка получения цеха", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		products, hours, err := provider.GetWorkshopProducts(ctx, id)
		if err != nil {
			log.Error("Ошибка получения продуктов цеха", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		resp := make([]WorkshopProductResp, 0, len(products))
		for i, p := range products {
			resp = append(resp, WorkshopProductResp{
				Product:                p,
				ManufacturingTimeHours: hours[i],
			})
		}

		render.JSON(w, r, resp)
	}
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
