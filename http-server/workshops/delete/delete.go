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

type WorkshopDeleter interface {
	DeleteWorkshop(ctx context.Context, id int64) error
}

// DeleteWorkshop отказывает, пока к цеху привязаны продукты
func DeleteWorkshop(log *slog.Logger, deleter WorkshopDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.workshops.DeleteWorkshop"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id цеха", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteWorkshop(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Цех не найден", http.StatusNotFound)
				return
			}
			if errors.Is(err, storage.ErrHasDependents) {
				http.Error(w, "Нельзя удалить цех: с ним связаны продукты", http.StatusConflict)
				return
			}
			log.Error("Ошибка удаления цеха", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
