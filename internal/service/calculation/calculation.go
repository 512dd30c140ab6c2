package calculation

import (
	"context"
	"errors"

	"furniture-golang/internal/storage"
)

// ErrInvalidInput — единый сигнал отказа расчёта: несуществующий тип продукции
// или материала, неположительное количество или параметры. Хендлер переводит его
// в одно общее сообщение пользователю, не раскрывая, какая именно проверка упала
var ErrInvalidInput = errors.New("некорректные данные расчёта")

type CalcStorage interface {
	GetProductTypeByID(ctx context.Context, id int64) (*storage.ProductType, error)
	GetMaterialTypeByID(ctx context.Context, id int64) (*storage.MaterialType, error)
	SumManufacturingHours(ctx context.Context, productID int64) (float64, error)
}

// CalcService — расчёты без состояния поверх хранилища, ничего не мутирует
type CalcService struct {
	storage CalcStorage
}

func NewCalcService(storage CalcStorage) *CalcService {
	return &CalcService{storage: storage}
}
