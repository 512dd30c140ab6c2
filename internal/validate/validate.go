package validate

import (
	"fmt"
	"math"
	"strings"
)

// Границы полей по схеме базы
const (
	MaxNameLen        = 100
	MaxProductNameLen = 200
)

func Name(name string, maxLen int) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("название не может быть пустым")
	}
	if len([]rune(trimmed)) > maxLen {
		return fmt.Errorf("название длиннее %d символов", maxLen)
	}
	return nil
}

func Article(article string) error {
	if strings.TrimSpace(article) == "" {
		return fmt.Errorf("артикул не может быть пустым")
	}
	return nil
}

// LossPercentage принимает только процентное представление: 0.8 означает 0.8%.
// Доли вида 0.008 на входе не угадываются и не домножаются — это ловушка
// двойной конвертации, значение валидируется на границе ввода
func LossPercentage(v float64) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("процент потерь должен быть в диапазоне [0, 100], получено %v", v)
	}
	return nil
}

func Coefficient(v float64) error {
	if v <= 0 {
		return fmt.Errorf("коэффициент должен быть положительным, получено %v", v)
	}
	return nil
}

func EmployeeCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("количество сотрудников должно быть положительным, получено %d", n)
	}
	return nil
}

func ManufacturingHours(v float64) error {
	if v < 0 {
		return fmt.Errorf("время изготовления не может быть отрицательным, получено %v", v)
	}
	return nil
}

func PartnerPrice(v float64) error {
	if v < 0 {
		return fmt.Errorf("минимальная цена для партнёра не может быть отрицательной, получено %v", v)
	}
	return nil
}

// Round2 — цена пишется в базу с точностью до копеек
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
