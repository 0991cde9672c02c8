package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a catalog entry on the menu.
type MenuItem struct {
	ItemID    int             `json:"itemId" gorm:"primaryKey;autoIncrement"`
	ItemName  string          `json:"itemName" gorm:"size:100;not null"`
	ItemPrice decimal.Decimal `json:"itemPrice" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// DailyItem marks a menu item as offered on a given day.
type DailyItem struct {
	ID     int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Date   *time.Time `json:"date"`
	ItemID int        `json:"itemId" gorm:"index;not null"`
	Status string     `json:"status" gorm:"size:20;default:'available'"`
}

// DailyMenuEntry is a DailyItem joined with its catalog data for display.
type DailyMenuEntry struct {
	ID        int             `json:"id"`
	Date      *time.Time      `json:"date"`
	ItemID    int             `json:"itemId"`
	Status    string          `json:"status"`
	ItemName  string          `json:"itemName"`
	ItemPrice decimal.Decimal `json:"itemPrice"`
}
