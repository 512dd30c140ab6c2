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

type ProductSaver interface {
	CreateProduct(ctx context.Context, p storage.Product) (int64, error)
}

func SaveProduct(log *slog.Logger, saver ProductSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.products.SaveProduct"

		var req storage.Product
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Article(req.Article); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := validate.Name(req.Name, validate.MaxProductNameLen); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := validate.PartnerPrice(req.MinPartnerPrice); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.MinPartnerPrice = validate.Round2(req.MinPartnerPrice)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.CreateProduct(ctx, req)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Тип продукции или материала не существует", http.StatusBadRequest)
				return
			}
			if errors.Is(err, storage.ErrDuplicateName) {
				http.Error(w, "Продукт с таким артикулом уже существует", http.StatusBadRequest)
				return
			}
			log.Error("Ошибка сохранения продукта", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("Product saved", slog.Int64("id", id), slog.String("article", req.Article))

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     id,
		})
	}
}
