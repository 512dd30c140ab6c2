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

type CatalogProvider interface {
	GetAllProductTypes(ctx context.Context, limit, offset int) ([]*storage.ProductType, error)
	GetProductTypeByID(ctx context.Context, id int64) (*storage.ProductType, error)
	GetAllMaterialTypes(ctx context.Context, limit, offset int) ([]*storage.MaterialType, error)
	GetMaterialTypeByID(ctx context.Context, id int64) (*storage.MaterialType, error)
}

func GetProductTypes(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.GetProductTypes"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		types, err := provider.GetAllProductTypes(ctx, queryInt(r, "limit", 100), queryInt(r, "offset", 0))
		if err != nil {
			log.Error("Ошибка получения типов продукции", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, types)
	}
}

func GetProductType(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.GetProductType"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		pt, err := provider.GetProductTypeByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Тип продукции не найден", http.StatusNotFound)
				return
			}
			log.Error("Ошибка получения типа продукции", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, pt)
	}
}

func GetMaterialTypes(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.GetMaterialTypes"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		types, err := provider.GetAllMaterialTypes(ctx, queryInt(r, "limit", 100), queryInt(r, "offset", 0))
		if err != nil {
			log.Error("Ошибка получения типов материалов", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, types)
	}
}

func GetMaterialType(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.GetMaterialType"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		mt, err := provider.GetMaterialTypeByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Тип материала не найден", http.StatusNotFound)
				return
			}
			log.Error("Ошибка получения типа материала", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, mt)
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
