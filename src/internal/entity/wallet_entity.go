package entity

import "time"

const (
	TransactionEarned = "earned"
	TransactionSpent  = "spent"
	TransactionBonus  = "bonus"
)

// WalletTransaction is one append-only ledger row; Amount is always positive, Type gives the direction.
type WalletTransaction struct {
	ID          string    `json:"id" db:"id" gorm:"column:id;type:char(36);primaryKey"`
	UserID      string    `json:"userId" db:"user_id" gorm:"column:user_id;type:char(36);not null;index"`
	SessionID   *string   `json:"sessionId,omitempty" db:"session_id" gorm:"column:session_id;type:char(36);index"`
	Type        string    `json:"type" db:"type" gorm:"column:type;size:20;not null"`
	Amount      int64     `json:"amount" db:"amount" gorm:"column:amount;not null"`
	Description string    `json:"description" db:"description" gorm:"column:description;size:255"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"column:created_at"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
