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

type ProductProvider interface {
	GetAllProducts(ctx context.Context, limit, offset int) ([]*storage.ProductDetails, error)
	GetProductByID(ctx context.Context, id int64) (*storage.ProductDetails, error)
}

type ProductionTimer interface {
	TotalProductionTime(ctx context.Context, productID int64) (int, error)
}

// ProductResp — строка списка продукции по макету:
// тип | наименование | время изготовления | артикул | мин. цена | материал
type ProductResp struct {
	ID              int64   `json:"id"`
	ProductType     string  `json:"product_type"`
	ProductName     string  `json:"product_name"`
	ProductionTime  int     `json:"production_time"`
	Article         string  `json:"article"`
	MinPartnerPrice float64 `json:"min_partner_price"`
	MainMaterial    string  `json:"main_material"`
}

func GetProducts(log *slog.Logger, provider ProductProvider, timer ProductionTimer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.products.GetProducts"

		limit := queryInt(r, "limit", 100)
		offset := queryInt(r, "offset", 0)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		products, err := provider.GetAllProducts(ctx, limit, offset)
		if err != nil {
			log.Error("Ошибка получения списка продукции", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		resp := make([]ProductResp, 0, len(products))
		for _, p := range products {
			totalTime, err := timer.TotalProductionTime(ctx, p.ID)
			if err != nil {
				log.Error("Ошибка расчёта времени изготовления",
					slog.String("op", op), slog.Int64("product_id", p.ID), slog.String("error", err.Error()))
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}
			resp = append(resp, toResp(p, totalTime))
		}

		render.JSON(w, r, resp)
	}
}

func GetProduct(log *slog.Logger, provider ProductProvider, timer ProductionTimer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.products.GetProduct"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id продукта", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		product, err := provider.GetProductByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Продукт не найден", http.StatusNotFound)
				return
			}
			log.Error("Ошибка получения продукта", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		totalTime, err := timer.TotalProductionTime(ctx, id)
		if err != nil {
			log.Error("Ошибка расчёта времени изготовления", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, toResp(product, totalTime))
	}
}

func toResp(p *storage.ProductDetails, totalTime int) ProductResp {
	return ProductResp{
		ID:              p.ID,
		ProductType:     p.ProductType,
		ProductName:     p.Name,
		ProductionTime:  totalTime,
		Article:         p.Article,
		MinPartnerPrice: p.MinPartnerPrice,
		MainMaterial:    p.MainMaterial,
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
