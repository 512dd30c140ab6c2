package calculation

import (
	"context"
	"fmt"
	"math"
)

// TotalProductionTime — суммарное время изготовления продукта по всем цехам,
// округлённое до целого часа (половина — от нуля: 3.5 → 4).
// Продукт без связей с цехами — валидный ноль, существование продукта
// здесь не проверяется, это забота вызывающего
func (s *CalcService) TotalProductionTime(ctx context.Context, productID int64) (int, error) {
	const op = "service.calculation.TotalProductionTime"

	sum, err := s.storage.SumManufacturingHours(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return int(math.Round(sum)), nil
}
