package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTerminal keys the staging area for single-till deployments. Every
// staged line belongs to exactly one terminal's in-progress order.
const DefaultTerminal = "main"

// StagedLine is one line of the not-yet-finalized current order. At most one
// line exists per (terminal, item); re-adding an item merges quantities.
type StagedLine struct {
	ID         uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	TerminalID string          `json:"terminalId" gorm:"size:50;not null;default:'main';uniqueIndex:idx_terminal_item,priority:1"`
	ItemID     int             `json:"itemId" gorm:"not null;uniqueIndex:idx_terminal_item,priority:2"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	LineValue  decimal.Decimal `json:"lineValue" gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CurrentSaleLine is a StagedLine joined with the menu for display.
type CurrentSaleLine struct {
	ID        uint            `json:"id"`
	ItemID    int             `json:"itemId"`
	Quantity  int             `json:"quantity"`
	LineValue decimal.Decimal `json:"lineValue"`
	ItemName  string          `json:"itemName"`
}

// Sale is a completed order. Immutable once written.
type Sale struct {
	OrderID    int             `json:"orderId" gorm:"primaryKey;autoIncrement"`
	OrderDate  time.Time       `json:"orderDate" gorm:"index;not null"`
	TotalValue decimal.Decimal `json:"totalValue" gorm:"type:decimal(10,2);not null"`
}

// SaleLine is one line of a completed order. The item name is denormalized
// at checkout so history survives later catalog deletions.
type SaleLine struct {
	ID       uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID  int             `json:"orderId" gorm:"index;not null"`
	ItemID   int             `json:"itemId" gorm:"not null"`
	Quantity int             `json:"quantity" gorm:"not null"`
	Value    decimal.Decimal `json:"value" gorm:"type:decimal(10,2);not null"`
	ItemName string          `json:"itemName" gorm:"size:100;not null"`
}
