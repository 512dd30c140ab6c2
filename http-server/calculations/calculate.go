package calculations

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"furniture-golang/internal/service/calculation"
)

type RawMaterialCalculator interface {
	CalculateRawMaterial(ctx context.Context, productTypeID, materialTypeID int64,
		productQuantity int, param1, param2 float64) (int, *calculation.Details, error)
}

// Единое сообщение на любой отказ расчёта: какая именно проверка упала — не раскрываем
const invalidDataMsg = "Некорректные данные. Проверьте: 1) существование типа продукции и материала, 2) положительные значения количества и параметров"

type RawMaterialReq struct {
	ProductTypeID   int64   `json:"product_type_id"`
	MaterialTypeID  int64   `json:"material_type_id"`
	ProductQuantity int     `json:"product_quantity"`
	Param1          float64 `json:"param1"`
	Param2          float64 `json:"param2"`
}

type RawMaterialResp struct {
	RawMaterialQuantity int                  `json:"raw_material_quantity"`
	ProductTypeID       int64                `json:"product_type_id"`
	MaterialTypeID      int64                `json:"material_type_id"`
	ProductQuantity     int                  `json:"product_quantity"`
	Param1              float64              `json:"param1"`
	Param2              float64              `json:"param2"`
	CalculationDetails  *calculation.Details `json:"calculation_details"`
}

func CalculateRawMaterial(log *slog.Logger, calc RawMaterialCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.calculations.CalculateRawMaterial"

		var req RawMaterialReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, details, err := calc.CalculateRawMaterial(ctx,
			req.ProductTypeID, req.MaterialTypeID, req.ProductQuantity, req.Param1, req.Param2)
		if err != nil {
			if errors.Is(err, calculation.ErrInvalidInput) {
				log.Warn("Отказ расчёта сырья", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, invalidDataMsg, http.StatusBadRequest)
				return
			}
			log.Error("Failed to calculate raw material", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, RawMaterialResp{
			RawMaterialQuantity: result,
			ProductTypeID:       req.ProductTypeID,
			MaterialTypeID:      req.MaterialTypeID,
			ProductQuantity:     req.ProductQuantity,
			Param1:              req.Param1,
			Param2:              req.Param2,
			CalculationDetails:  details,
		})
	}
}
