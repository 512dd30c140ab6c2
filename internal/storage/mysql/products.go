package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"furniture-golang/internal/storage"
)

func (s *Storage) GetProductByID(ctx context.Context, id int64) (*storage.ProductDetails, error) {
	const op = "storage.mysql.GetProductByID"

	query := `
		SELECT p.id, p.article, p.name, p.product_type_id, pt.name, p.material_id, mt.name, p.min_partner_price
		FROM products p
		JOIN product_types pt ON p.product_type_id = pt.id
		JOIN material_types mt ON p.material_id = mt.id
		WHERE p.id = ?
	`

	pr := &storage.ProductDetails{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&pr.ID,
		&pr.Article,
		&pr.Name,
		&pr.ProductTypeID,
		&pr.ProductType,
		&pr.MaterialID,
		&pr.MainMaterial,
		&pr.MinPartnerPrice,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: продукт id=%d: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pr, nil
}

func (s *Storage) GetAllProducts(ctx context.Context, limit, offset int) ([]*storage.ProductDetails, error) {
	const op = "storage.mysql.GetAllProducts"

	query := `
		SELECT p.id, p.article, p.name, p.product_type_id, pt.name, p.material_id, mt.name, p.min_partner_price
		FROM products p
		JOIN product_types pt ON p.product_type_id = pt.id
		JOIN material_types mt ON p.material_id = mt.id
		ORDER BY p.id
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var products []*storage.ProductDetails
	for rows.Next() {
		pr := &storage.ProductDetails{}
		err := rows.Scan(
			&pr.ID,
			&pr.Article,
			&pr.Name,
			&pr.ProductTypeID,
			&pr.ProductType,
			&pr.MaterialID,
			&pr.MainMaterial,
			&pr.MinPartnerPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		products = append(products, pr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return products, nil
}

func (s *Storage) CreateProduct(ctx context.Context, p storage.Product) (int64, error) {
	const op = "storage.mysql.CreateProduct"

	stmt := `INSERT INTO products (article, name, product_type_id, material_id, min_partner_price)
	         VALUES (?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, stmt, p.Article, p.Name, p.ProductTypeID, p.MaterialID, p.MinPartnerPrice)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) {
			switch mysqlErr.Number {
			case errNoReferencedRow:
				return 0, fmt.Errorf("%s: тип продукции или материала не существует: %w", op, storage.ErrNotFound)
			case errDuplicateEntry:
				return 0, fmt.Errorf("%s: артикул занят: %w", op, storage.ErrDuplicateName)
			}
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateProduct(ctx context.Context, id int64, update storage.ProductUpdate) error {
	const op = "storage.mysql.UpdateProduct"

	stmt := `UPDATE products SET
	            article = COALESCE(?, article),
	            name = COALESCE(?, name),
	            product_type_id = COALESCE(?, product_type_id),
	            material_id = COALESCE(?, material_id),
	            min_partner_price = COALESCE(?, min_partner_price)
	         WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt,
		update.Article, update.Name, update.ProductTypeID, update.MaterialID, update.MinPartnerPrice, id)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) {
			switch mysqlErr.Number {
			case errNoReferencedRow:
				return fmt.Errorf("%s: тип продукции или материала не существует: %w", op, storage.ErrNotFound)
			case errDuplicateEntry:
				return fmt.Errorf("%s: артикул занят: %w", op, storage.ErrDuplicateName)
			}
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		if _, err := s.GetProductByID(ctx, id); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *Storage) DeleteProduct(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteProduct"

	// связи продукт—цех уходят каскадом по внешнему ключу
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: продукт id=%d: %w", op, id, storage.ErrNotFound)
	}

	return nil
}
