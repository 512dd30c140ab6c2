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

type ProductUpdater interface {
	UpdateProduct(ctx context.Context, id int64, update storage.ProductUpdate) error
}

// UpdateProduct — частичное обновление: меняются только переданные поля
func UpdateProduct(log *slog.Logger, updater ProductUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.products.UpdateProduct"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id продукта", http.StatusBadRequest)
			return
		}

		var req storage.ProductUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if req.Article != nil {
			if err := validate.Article(*req.Article); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		if req.Name != nil {
			if err := validate.Name(*req.Name, validate.MaxProductNameLen); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		if req.MinPartnerPrice != nil {
			if err := validate.PartnerPrice(*req.MinPartnerPrice); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			rounded := validate.Round2(*req.MinPartnerPrice)
			req.MinPartnerPrice = &rounded
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateProduct(ctx, id, req); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Продукт, тип продукции или материал не найден", http.StatusNotFound)
				return
			}
			if errors.Is(err, storage.ErrDuplicateName) {
				http.Error(w, "Продукт с таким артикулом уже существует", http.StatusBadRequest)
				return
			}
			log.Error("Ошибка обновления продукта", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     id,
		})
	}
}
