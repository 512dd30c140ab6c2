package calculation

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"furniture-golang/internal/storage"
)

// Details — все промежуточные значения расчёта сырья для аудита.
// Плавающие значения округлены для показа (количества — 4 знака,
// коэффициент потерь — 6), но ceil берётся от полной точности до округления
type Details struct {
	ProductTypeName  string  `json:"product_type_name"`
	MaterialName     string  `json:"material_name"`
	Coefficient      float64 `json:"coefficient"`
	LossPercentage   float64 `json:"loss_percentage"`
	ProductQuantity  int     `json:"product_quantity"`
	Param1           float64 `json:"param1"`
	Param2           float64 `json:"param2"`
	ParamsProduct    float64 `json:"params_product"`
	MaterialPerUnit  float64 `json:"material_per_unit"`
	TotalWithoutLoss float64 `json:"total_without_loss"`
	LossFactor       float64 `json:"loss_factor"`
	TotalWithLoss    float64 `json:"total_with_loss"`
	TotalRounded     int     `json:"total_rounded"`
}

// CalculateRawMaterial считает количество сырья на партию продукции.
//
// Формула:
//
//	сырьё = ceil(количество × параметр1 × параметр2 × коэффициент_типа × (1 + потери/100))
//
// loss_percentage хранится как процент (0.8 = 0.8%), деление на 100 происходит
// только здесь. Округление всегда ВВЕРХ: недозаказ сырья дороже перезаказа
func (s *CalcService) CalculateRawMaterial(
	ctx context.Context,
	productTypeID int64,
	materialTypeID int64,
	productQuantity int,
	param1 float64,
	param2 float64,
) (int, *Details, error) {
	const op = "service.calculation.CalculateRawMaterial"

	if productQuantity <= 0 || param1 <= 0 || param2 <= 0 {
		return 0, nil, fmt.Errorf("%s: quantity=%d, param1=%v, param2=%v: %w",
			op, productQuantity, param1, param2, ErrInvalidInput)
	}

	var (
		productType  *storage.ProductType
		materialType *storage.MaterialType
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		productType, err = s.storage.GetProductTypeByID(gCtx, productTypeID)
		if err != nil {
			return fmt.Errorf("product type: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		materialType, err = s.storage.GetMaterialTypeByID(gCtx, materialTypeID)
		if err != nil {
			return fmt.Errorf("material type: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, nil, fmt.Errorf("%s: %s: %w", op, err, ErrInvalidInput)
		}
		return 0, nil, fmt.Errorf("%s: %w", op, err)
	}

	paramsProduct := param1 * param2
	materialPerUnit := paramsProduct * productType.Coefficient
	totalWithoutLoss := materialPerUnit * float64(productQuantity)
	lossFactor := 1 + materialType.LossPercentage/100
	totalWithLoss := totalWithoutLoss * lossFactor

	// При выполненных предусловиях недостижимо, но аномалию арифметики
	// складываем в тот же канал отказа, а не паникуем из глубины расчёта
	if math.IsNaN(totalWithLoss) || math.IsInf(totalWithLoss, 0) {
		return 0, nil, fmt.Errorf("%s: арифметическая аномалия: %w", op, ErrInvalidInput)
	}

	totalRounded := int(math.Ceil(totalWithLoss))

	details := &Details{
		ProductTypeName:  productType.Name,
		MaterialName:     materialType.Name,
		Coefficient:      productType.Coefficient,
		LossPercentage:   materialType.LossPercentage,
		ProductQuantity:  productQuantity,
		Param1:           param1,
		Param2:           param2,
		ParamsProduct:    paramsProduct,
		MaterialPerUnit:  round4(materialPerUnit),
		TotalWithoutLoss: round4(totalWithoutLoss),
		LossFactor:       round6(lossFactor),
		TotalWithLoss:    round4(totalWithLoss),
		TotalRounded:     totalRounded,
	}

	return totalRounded, details, nil
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
