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

type CatalogSaver interface {
	CreateProductType(ctx context.Context, pt storage.ProductType) (int64, error)
	CreateMaterialType(ctx context.Context, mt storage.MaterialType) (int64, error)
}

// SaveProductTypeAdmin — справочник коэффициентов ведёт администратор
func SaveProductTypeAdmin(log *slog.Logger, saver CatalogSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.SaveProductTypeAdmin"

		var req storage.ProductType
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Name(req.Name, validate.MaxNameLen); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := validate.Coefficient(req.Coefficient); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.CreateProductType(ctx, req)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateName) {
				http.Error(w, "Тип продукции с таким названием уже существует", http.StatusBadRequest)
				return
			}
			log.Error("Ошибка сохранения типа продукции", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     id,
		})
	}
}

// SaveMaterialTypeAdmin принимает процент потерь только в процентном
// представлении [0, 100], доли не угадываются
func SaveMaterialTypeAdmin(log *slog.Logger, saver CatalogSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.SaveMaterialTypeAdmin"

		var req storage.MaterialType
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Name(req.Name, validate.MaxNameLen); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := validate.LossPercentage(req.LossPercentage); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.CreateMaterialType(ctx, req)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateName) {
				http.Error(w, "Тип материала с таким названием уже существует", http.StatusBadRequest)
				return
			}
			log.Error("Ошибка сохранения типа материала", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     id,
		})
	}
}
