package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"furniture-golang/internal/storage"
)

func (s *Storage) GetWorkshopByID(ctx context.Context, id int64) (*storage.Workshop, error) {
	const op = "storage.mysql.GetWorkshopByID"

	query := `SELECT id, name, workshop_type, employee_count FROM workshops WHERE id = ?`

	w := &storage.Workshop{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Name, &w.WorkshopType, &w.EmployeeCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: цех id=%d: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return w, nil
}

func (s *Storage) GetAllWorkshops(ctx context.Context, limit, offset int) ([]*storage.Workshop, error) {
	const op = "storage.mysql.GetAllWorkshops"

	query := `SELECT id, name, workshop_type, employee_count FROM workshops ORDER BY name ASC LIMIT ? OFFSET ?`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения всех цехов: %w", op, err)
	}
	defer rows.Close()

	var workshops []*storage.Workshop
	for rows.Next() {
		w := &storage.Workshop{}
		if err := rows.Scan(&w.ID, &w.Name, &w.WorkshopType, &w.EmployeeCount); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		workshops = append(workshops, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return workshops, nil
}

func (s *Storage) CreateWorkshop(ctx context.Context, w storage.Workshop) (int64, error) {
	const op = "storage.mysql.CreateWorkshop"

	stmt := `INSERT INTO workshops (name, workshop_type, employee_count) VALUES (?, ?, ?)`

	res, err := s.db.ExecContext(ctx, stmt, w.Name, w.WorkshopType, w.EmployeeCount)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
			return 0, fmt.Errorf("%s: name='%s': %w", op, w.Name, storage.ErrDuplicateName)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateWorkshop(ctx context.Context, id int64, update storage.WorkshopUpdate) error {
	const op = "storage.mysql.UpdateWorkshop"

	stmt := `UPDATE workshops SET
	            name = COALESCE(?, name),
	            workshop_type = COALESCE(?, workshop_type),
	            employee_count = COALESCE(?, employee_count)
	         WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, update.Name, update.WorkshopType, update.EmployeeCount, id)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
			return fmt.Errorf("%s: %w", op, storage.ErrDuplicateName)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		if _, err := s.GetWorkshopByID(ctx, id); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

// DeleteWorkshop отклоняет удаление цеха, пока к нему привязаны продукты.
// Каскад на связи продукт—цех срабатывает только при удалении продукта,
// поэтому наличие связей проверяем до удаления
func (s *Storage) DeleteWorkshop(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteWorkshop"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var linked int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM product_workshop WHERE workshop_id = ?`, id).Scan(&linked)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if linked > 0 {
		return fmt.Errorf("%s: к цеху id=%d привязано продуктов: %d: %w", op, id, linked, storage.ErrHasDependents)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM workshops WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: цех id=%d: %w", op, id, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}
