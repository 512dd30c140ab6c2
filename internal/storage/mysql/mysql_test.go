package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"furniture-golang/internal/storage"
)

var testDB *sql.DB

// Интеграционные тесты ходят в живую MySQL. Если база недоступна,
// тесты пропускаются, а не падают
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		dsn = "root:@tcp(localhost:3306)/test_furniture?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err == nil {
		if err := db.Ping(); err == nil {
			if err := goose.SetDialect("mysql"); err != nil {
				panic(fmt.Errorf("goose dialect: %w", err))
			}
			if err := goose.Up(db, "../../../migrations"); err != nil {
				panic(fmt.Errorf("миграции тестовой БД: %w", err))
			}
			testDB = db
		}
	}

	code := m.Run()

	if testDB != nil {
		_ = testDB.Close()
	}
	os.Exit(code)
}

func testStorage(t *testing.T) *Storage {
	t.Helper()
	if testDB == nil {
		t.Skip("тестовая БД недоступна")
	}
	return &Storage{db: testDB}
}

func createTestCatalog(t *testing.T, s *Storage, suffix string) (int64, int64) {
	t.Helper()
	ctx := context.Background()

	ptID, err := s.CreateProductType(ctx, storage.ProductType{
		Name:        "Гостиные " + suffix,
		Coefficient: 3.5,
	})
	require.NoError(t, err)

	mtID, err := s.CreateMaterialType(ctx, storage.MaterialType{
		Name:           "Мебельный щит " + suffix,
		LossPercentage: 0.8,
	})
	require.NoError(t, err)

	return ptID, mtID
}

func TestCreateMaterialType_DuplicateName(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	mt := storage.MaterialType{Name: "ДСП дубликат", LossPercentage: 1.5}

	id, err := s.CreateMaterialType(ctx, mt)
	require.NoError(t, err)
	defer func() { _ = s.DeleteMaterialType(ctx, id) }()

	_, err = s.CreateMaterialType(ctx, mt)
	assert.ErrorIs(t, err, storage.ErrDuplicateName)
}

func TestDeleteMaterialType_UsedByProduct(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	ptID, mtID := createTestCatalog(t, s, "restrict")

	productID, err := s.CreateProduct(ctx, storage.Product{
		Article:         "ART-RESTRICT-1",
		ProductTypeID:   ptID,
		Name:            "Стенка для гостиной",
		MinPartnerPrice: 12500.50,
		MaterialID:      mtID,
	})
	require.NoError(t, err)

	// тип материала держит продукт, база отвечает RESTRICT
	err = s.DeleteMaterialType(ctx, mtID)
	assert.ErrorIs(t, err, storage.ErrHasDependents)

	require.NoError(t, s.DeleteProduct(ctx, productID))
	require.NoError(t, s.DeleteMaterialType(ctx, mtID))
	require.NoError(t, s.DeleteProductType(ctx, ptID))
}

func TestLinkProductWorkshop_Duplicate(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	ptID, mtID := createTestCatalog(t, s, "link")

	productID, err := s.CreateProduct(ctx, storage.Product{
		Article:         "ART-LINK-1",
		ProductTypeID:   ptID,
		Name:            "Тумба",
		MinPartnerPrice: 4500,
		MaterialID:      mtID,
	})
	require.NoError(t, err)

	workshopID, err := s.CreateWorkshop(ctx, storage.Workshop{
		Name:          "Цех распила link",
		WorkshopType:  "распил",
		EmployeeCount: 8,
	})
	require.NoError(t, err)

	link := storage.ProductWorkshop{
		ProductID:              productID,
		WorkshopID:             workshopID,
		ManufacturingTimeHours: 2.5,
	}

	require.NoError(t, s.LinkProductWorkshop(ctx, link))

	// уникальность пары обеспечивает ключ, повтор — ErrDuplicateLink
	err = s.LinkProductWorkshop(ctx, link)
	assert.ErrorIs(t, err, storage.ErrDuplicateLink)

	sum, err := s.SumManufacturingHours(ctx, productID)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, sum, 1e-9)

	// удаление продукта каскадом чистит связи, цех после этого удаляется
	require.NoError(t, s.DeleteProduct(ctx, productID))
	require.NoError(t, s.DeleteWorkshop(ctx, workshopID))
	require.NoError(t, s.DeleteMaterialType(ctx, mtID))
	require.NoError(t, s.DeleteProductType(ctx, ptID))
}

func TestGetProductByID_NotFound(t *testing.T) {
	s := testStorage(t)

	_, err := s.GetProductByID(context.Background(), 999999999)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}
