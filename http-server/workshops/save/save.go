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

type WorkshopSaver interface {
	CreateWorkshop(ctx context.Context, w storage.Workshop) (int64, error)
}

func SaveWorkshop(log *slog.Logger, saver WorkshopSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.workshops.SaveWorkshop"

		var req storage.Workshop
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Name(req.Name, validate.MaxNameLen); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := validate.EmployeeCount(req.EmployeeCount); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.CreateWorkshop(ctx, req)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateName) {
				http.Error(w, "Цех с таким названием уже существует", http.StatusBadRequest)
				return
			}
			log.Error("Ошибка сохранения цеха", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("Workshop saved", slog.Int64("id", id), slog.String("name", req.Name))

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     id,
		})
	}
}
