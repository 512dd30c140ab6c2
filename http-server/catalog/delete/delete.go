package delete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"furniture-golang/internal/storage"
)

type CatalogDeleter interface {
	DeleteProductType(ctx context.Context, id int64) error
	DeleteMaterialType(ctx context.Context, id int64) error
}

// Справочники защищены от удаления: пока тип используется продуктами,
// база отвечает RESTRICT и наружу уходит 409
func DeleteProductTypeAdmin(log *slog.Logger, deleter CatalogDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.DeleteProductTypeAdmin"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteProductType(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Тип продукции не найден", http.StatusNotFound)
				return
			}
			if errors.Is(err, storage.ErrHasDependents) {
				http.Error(w, "Нельзя удалить тип продукции: он используется продуктами", http.StatusConflict)
				return
			}
			log.Error("Ошибка удаления типа продукции", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteMaterialTypeAdmin(log *slog.Logger, deleter CatalogDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.DeleteMaterialTypeAdmin"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteMaterialType(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Тип материала не найден", http.StatusNotFound)
				return
			}
			if errors.Is(err, storage.ErrHasDependents) {
				http.Error(w, "Нельзя удалить тип материала: он используется продуктами", http.StatusConflict)
				return
			}
			log.Error("Ошибка удаления типа материала", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
