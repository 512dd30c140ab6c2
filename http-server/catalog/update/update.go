package update

import (
	"context"
	"encoding/json"
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

type CatalogUpdater interface {
	UpdateProductType(ctx context.Context, id int64, update storage.ProductTypeUpdate) error
	UpdateMaterialType(ctx context.Context, id int64, update storage.MaterialTypeUpdate) error
}

func UpdateProductTypeAdmin(log *slog.Logger, updater CatalogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.UpdateProductTypeAdmin"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id", http.StatusBadRequest)
			return
		}

		var req storage.ProductTypeUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if req.Name != nil {
			if err := validate.Name(*req.Name, validate.MaxNameLen); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		if req.Coefficient != nil {
			if err := validate.Coefficient(*req.Coefficient); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateProductType(ctx, id, req); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Тип продукции не найден", http.StatusNotFound)
				return
			}
			if errors.Is(err, storage.ErrDuplicateName) {
				http.Error(w, "Тип продукции с таким названием уже существует", http.StatusBadRequest)
				return
			}
			log.Error("Ошибка обновления типа продукции", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     id,
		})
	}
}

func UpdateMaterialTypeAdmin(log *slog.Logger, updater CatalogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.UpdateMaterialTypeAdmin"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id", http.StatusBadRequest)
			return
		}

		var req storage.MaterialTypeUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if req.Name != nil {
			if err := validate.Name(*req.Name, validate.MaxNameLen); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		if req.LossPercentage != nil {
			if err := validate.LossPercentage(*req.LossPercentage); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateMaterialType(ctx, id, req); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Тип материала не найден", http.StatusNotFound)
				return
			}
			if errors.Is(err, storage.ErrDuplicateName) {
				http.Error(w, "Тип материала с таким названием уже существует", http.StatusBadRequest)
				return
			}
			log.Error("Ошибка обновления типа материала", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     id,
		})
	}
}
