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

type ProductionUnlinker interface {
	UnlinkProductWorkshop(ctx context.Context, productID, workshopID int64) error
}

func UnlinkProductWorkshop(log *slog.Logger, unlinker ProductionUnlinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.production.UnlinkProductWorkshop"

		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id продукта", http.StatusBadRequest)
			return
		}
		workshopID, err := strconv.ParseInt(chi.URLParam(r, "workshopID"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id цеха", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := unlinker.UnlinkProductWorkshop(ctx, productID, workshopID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Связь продукта с цехом не найдена", http.StatusNotFound)
				return
			}
			log.Error("Ошибка отвязки продукта от цеха", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
