package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"furniture-golang/internal/storage"
)

type GenerateExcelStorage interface {
	GetAllProducts(ctx context.Context, limit, offset int) ([]*storage.ProductDetails, error)
}

type ProductionTimer interface {
	TotalProductionTime(ctx context.Context, productID int64) (int, error)
}

type GenerateExcelService struct {
	storage GenerateExcelStorage
	timer   ProductionTimer
}

func NewGenerateService(storage GenerateExcelStorage, timer ProductionTimer) *GenerateExcelService {
	return &GenerateExcelService{storage: storage, timer: timer}
}

// Каталог продукции выгружается целиком одним листом
const reportLimit = 10000

func (g *GenerateExcelService) GenerateExcel(ctx context.Context) ([]byte, error) {
	products, err := g.storage.GetAllProducts(ctx, reportLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch data: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Каталог продукции"
	f.SetSheetName("Sheet1", sheet)

	// Жирный шрифт для шапки
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{"Тип", "Наименование продукта", "Время изготовления, ч", "Артикул",
		"Мин. стоимость для партнёра", "Основной материал"}

	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, p := range products {
		rowNum := rowIdx + 2

		totalTime, err := g.timer.TotalProductionTime(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("production time for product id=%d: %w", p.ID, err)
		}

		f.SetCellValue(sheet, cellName(1, rowNum), p.ProductType)
		f.SetCellValue(sheet, cellName(2, rowNum), p.Name)
		f.SetCellValue(sheet, cellName(3, rowNum), totalTime)
		f.SetCellValue(sheet, cellName(4, rowNum), p.Article)
		f.SetCellValue(sheet, cellName(5, rowNum), p.MinPartnerPrice)
		f.SetCellValue(sheet, cellName(6, rowNum), p.MainMaterial)
	}

	// Закрепляем первую строку
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})

	f.SetColWidth(sheet, "A", "F", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
