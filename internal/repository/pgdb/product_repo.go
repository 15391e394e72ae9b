package pgdb

import (
	"context"

	"github.com/DRSN-tech/products-backend/internal/domain"
	"github.com/DRSN-tech/products-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/DRSN-tech/products-backend/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
// Каждый метод берёт из пула одно соединение и возвращает его перед выходом.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// List возвращает все товары, отсортированные по времени создания (новые первыми).
func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Release()

	query := `
		SELECT id, photo, hint, sku, selling_price, purchase_price, quantity, created_at::text
		FROM products
		ORDER BY created_at DESC
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var m converter.ProductModel
		if err := rows.Scan(
			&m.ID, &m.Photo, &m.Hint, &m.SKU,
			&m.SellingPrice, &m.PurchasePrice, &m.Quantity, &m.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// Create вставляет товар и возвращает его с назначенными id и created_at.
func (p *ProductRepo) Create(ctx context.Context, fields *domain.ProductFields) (*domain.Product, error) {
	model := p.conv.ToModel(fields)

	// VALUES ($1..$6) photo, hint, sku, selling_price, purchase_price, quantity
	query := `
		INSERT INTO products (photo, hint, sku, selling_price, purchase_price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at::text
	`

	err := p.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			model.Photo, model.Hint, model.SKU,
			model.SellingPrice, model.PurchasePrice, model.Quantity,
		).Scan(&model.ID, &model.CreatedAt)
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update перезаписывает все изменяемые поля строки с указанным id. Если строки нет, ничего не происходит.
func (p *ProductRepo) Update(ctx context.Context, id int64, fields *domain.ProductFields) error {
	model := p.conv.ToModel(fields)

	query := `
		UPDATE products
		SET photo = $1, hint = $2, sku = $3, selling_price = $4, purchase_price = $5, quantity = $6
		WHERE id = $7
	`

	err := p.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			model.Photo, model.Hint, model.SKU,
			model.SellingPrice, model.PurchasePrice, model.Quantity, id,
		)
		return err
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Delete удаляет строку с указанным id. Если строки нет, ничего не происходит.
func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	err := p.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
		return err
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// inTx выполняет fn в транзакции на отдельно взятом соединении и освобождает его после коммита или отката.
func (p *ProductRepo) inTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) (err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, conn)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			_ = tx.Rollback(ctx)
		}
	}()
	ctx = tr.WithTx(ctx, tx.Transaction())

	pgTx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return err
	}

	if err = fn(ctx, pgTx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
