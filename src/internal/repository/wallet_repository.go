package repository

import (
	"context"
	"database/sql"

	"skillswitch-service/src/internal/entity"
	"skillswitch-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

type WalletRepository struct {
	DB mysql.DBInterface
}

func NewWalletRepository(db mysql.DBInterface) *WalletRepository {
	return &WalletRepository{
		DB: db,
	}
}

func (r *WalletRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entity.WalletTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	rows := []entity.WalletTransaction{}
	query := `
		SELECT id, user_id, session_id, type, amount, description, created_at
		FROM wallet_transactions
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?`
	if err := db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

func insertTransaction(ctx context.Context, tx *sqlx.Tx, row *entity.WalletTransaction) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO wallet_transactions (id, user_id, session_id, type, amount, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.UserID, row.SessionID, row.Type, row.Amount, row.Description, row.CreatedAt,
	)
	return err
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
