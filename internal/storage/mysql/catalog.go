package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"furniture-golang/internal/storage"
)

// Коды ошибок MySQL, которые переводим в сентинельные ошибки хранилища
const (
	errDuplicateEntry   = 1062
	errRowIsReferenced  = 1451
	errNoReferencedRow  = 1452
)

func (s *Storage) GetMaterialTypeByID(ctx context.Context, id int64) (*storage.MaterialType, error) {
	const op = "storage.mysql.GetMaterialTypeByID"

	query := `SELECT id, name, loss_percentage FROM material_types WHERE id = ?`

	mt := &storage.MaterialType{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(&mt.ID, &mt.Name, &mt.LossPercentage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: тип материала id=%d: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mt, nil
}

func (s *Storage) GetAllMaterialTypes(ctx context.Context, limit, offset int) ([]*storage.MaterialType, error) {
	const op = "storage.mysql.GetAllMaterialTypes"

	query := `SELECT id, name, loss_percentage FROM material_types ORDER BY id LIMIT ? OFFSET ?`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var types []*storage.MaterialType
	for rows.Next() {
		mt := &storage.MaterialType{}
		if err := rows.Scan(&mt.ID, &mt.Name, &mt.LossPercentage); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		types = append(types, mt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return types, nil
}

func (s *Storage) CreateMaterialType(ctx context.Context, mt storage.MaterialType) (int64, error) {
	const op = "storage.mysql.CreateMaterialType"

	stmt := `INSERT INTO material_types (name, loss_percentage) VALUES (?, ?)`

	res, err := s.db.ExecContext(ctx, stmt, mt.Name, mt.LossPercentage)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
			return 0, fmt.Errorf("%s: name='%s': %w", op, mt.Name, storage.ErrDuplicateName)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateMaterialType(ctx context.Context, id int64, update storage.MaterialTypeUpdate) error {
	const op = "storage.mysql.UpdateMaterialType"

	stmt := `UPDATE material_types
	         SET name = COALESCE(?, name), loss_percentage = COALESCE(?, loss_percentage)
	         WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, update.Name, update.LossPercentage, id)
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
		// COALESCE с теми же значениями тоже даёт 0, поэтому перепроверяем существование
		if _, err := s.GetMaterialTypeByID(ctx, id); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *Storage) DeleteMaterialType(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteMaterialType"

	res, err := s.db.ExecContext(ctx, `DELETE FROM material_types WHERE id = ?`, id)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errRowIsReferenced {
			return fmt.Errorf("%s: тип материала id=%d используется продуктами: %w", op, id, storage.ErrHasDependents)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: тип материала id=%d: %w", op, id, storage.ErrNotFound)
	}

	return nil
}

func (s *Storage) GetProductTypeByID(ctx context.Context, id int64) (*storage.ProductType, error) {
	const op = "storage.mysql.GetProductTypeByID"

	query := `SELECT id, name, coefficient FROM product_types WHERE id = ?`

	pt := &storage.ProductType{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(&pt.ID, &pt.Name, &pt.Coefficient)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: тип продукции id=%d: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pt, nil
}

func (s *Storage) GetAllProductTypes(ctx context.Context, limit, offset int) ([]*storage.ProductType, error) {
	const op = "storage.mysql.GetAllProductTypes"

	query := `SELECT id, name, coefficient FROM product_types ORDER BY id LIMIT ? OFFSET ?`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var types []*storage.ProductType
	for rows.Next() {
		pt := &storage.ProductType{}
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.Coefficient); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		types = append(types, pt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return types, nil
}

func (s *Storage) CreateProductType(ctx context.Context, pt storage.ProductType) (int64, error) {
	const op = "storage.mysql.CreateProductType"

	stmt := `INSERT INTO product_types (name, coefficient) VALUES (?, ?)`

	res, err := s.db.ExecContext(ctx, stmt, pt.Name, pt.Coefficient)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
			return 0, fmt.Errorf("%s: name='%s': %w", op, pt.Name, storage.ErrDuplicateName)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateProductType(ctx context.Context, id int64, update storage.ProductTypeUpdate) error {
	const op = "storage.mysql.UpdateProductType"

	stmt := `UPDATE product_types
	         SET name = COALESCE(?, name), coefficient = COALESCE(?, coefficient)
	         WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, update.Name, update.Coefficient, id)
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
		if _, err := s.GetProductTypeByID(ctx, id); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *Storage) DeleteProductType(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteProductType"

	res, err := s.db.ExecContext(ctx, `DELETE FROM product_types WHERE id = ?`, id)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errRowIsReferenced {
			return fmt.Errorf("%s: тип продукции id=%d используется продуктами: %w", op, id, storage.ErrHasDependents)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: тип продукции id=%d: %w", op, id, storage.ErrNotFound)
	}

	return nil
}
