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

type WorkshopUpdater interface {
	UpdateWorkshop(ctx context.Context, id int64, update storage.WorkshopUpdate) error
}

func UpdateWorkshop(log *slog.Logger, updater WorkshopUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.workshops.UpdateWorkshop"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id цеха", http.StatusBadRequest)
			return
		}

		var req storage.WorkshopUpdate
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
		if req.EmployeeCount != nil {
			if err := validate.EmployeeCount(*req.EmployeeCount); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateWorkshop(ctx, id, req); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Цех не найден", http.StatusNotFound)
				return
			}
			if errors.Is(err, storage.ErrDuplicateName) {
				http.Error(w, "Цех с таким названием уже существует", http.StatusBadRequest)
				return
			}
			log.Error("Ошибка обновления цеха", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     id,
		})
	}
}
