package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"furniture-golang/internal/storage"
)

// SumManufacturingHours — точная (неокруглённая) сумма часов по всем цехам продукта.
// Нет строк связи — сумма ноль, это не ошибка
func (s *Storage) SumManufacturingHours(ctx context.Context, productID int64) (float64, error) {
	const op = "storage.mysql.SumManufacturingHours"

	query := `SELECT COALESCE(SUM(manufacturing_time_hours), 0)
	          FROM product_workshop WHERE product_id = ?`

	var sum float64
	if err := s.db.QueryRowContext(ctx, query, productID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return sum, nil
}

func (s *Storage) GetWorkshopTimes(ctx context.Context, productID int64) ([]storage.WorkshopTime, error) {
	const op = "storage.mysql.GetWorkshopTimes"

	query := `
		SELECT w.id, w.name, w.workshop_type, w.employee_count, pw.manufacturing_time_hours
		FROM product_workshop pw
		JOIN workshops w ON w.id = pw.workshop_id
		WHERE pw.product_id = ?
		ORDER BY w.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var times []storage.WorkshopTime
	for rows.Next() {
		var wt storage.WorkshopTime
		err := rows.Scan(&wt.WorkshopID, &wt.WorkshopName, &wt.WorkshopType, &wt.EmployeeCount, &wt.ManufacturingTimeHours)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		times = append(times, wt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return times, nil
}

// LinkProductWorkshop создаёт связь продукт—цех. Уникальность пары держит
// UNIQUE KEY в базе, проверка до вставки была бы гонкой при конкурентных писателях
func (s *Storage) LinkProductWorkshop(ctx context.Context, link storage.ProductWorkshop) error {
	const op = "storage.mysql.LinkProductWorkshop"

	stmt := `INSERT INTO product_workshop (product_id, workshop_id, manufacturing_time_hours)
	         VALUES (?, ?, ?)`

	_, err := s.db.ExecContext(ctx, stmt, link.ProductID, link.WorkshopID, link.ManufacturingTimeHours)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) {
			switch mysqlErr.Number {
			case errDuplicateEntry:
				return fmt.Errorf("%s: product_id=%d workshop_id=%d: %w",
					op, link.ProductID, link.WorkshopID, storage.ErrDuplicateLink)
			case errNoReferencedRow:
				return fmt.Errorf("%s: продукт или цех не существует: %w", op, storage.ErrNotFound)
			}
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UnlinkProductWorkshop(ctx context.Context, productID, workshopID int64) error {
	const op = "storage.mysql.UnlinkProductWorkshop"

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM product_workshop WHERE product_id = ? AND workshop_id = ?`, productID, workshopID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: связь product_id=%d workshop_id=%d: %w",
			op, productID, workshopID, storage.ErrNotFound)
	}

	return nil
}

// GetWorkshopProducts — продукты, закреплённые за цехом, со временем в этом цехе
func (s *Storage) GetWorkshopProducts(ctx context.Context, workshopID int64) ([]*storage.ProductDetails, []float64, error) {
	const op = "storage.mysql.GetWorkshopProducts"

	query := `
		SELECT p.id, p.article, p.name, p.product_type_id, pt.name, p.material_id, mt.name,
		       p.min_partner_price, pw.manufacturing_time_hours
		FROM product_workshop pw
		JOIN products p ON p.id = pw.product_id
		JOIN product_types pt ON p.product_type_id = pt.id
		JOIN material_types mt ON p.material_id = mt.id
		WHERE pw.workshop_id = ?
		ORDER BY p.id
	`

	rows, err := s.db.QueryContext(ctx, query, workshopID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var (
		products []*storage.ProductDetails
		hours    []float64
	)
	for rows.Next() {
		pr := &storage.ProductDetails{}
		var h float64
		err := rows.Scan(
			&pr.ID,
			&pr.Article,
			&pr.Name,
			&pr.ProductTypeID,
			&pr.ProductType,
			&pr.MaterialID,
			&pr.MainMaterial,
			&pr.MinPartnerPrice,
			&h,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		products = append(products, pr)
		hours = append(hours, h)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return products, hours, nil
}
