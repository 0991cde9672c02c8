package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tastetrack/internal/errors"
	"tastetrack/internal/model"
	"tastetrack/internal/repository"
)

// SaleService is the order staging engine: it accumulates line items for a
// terminal's current sale and atomically commits them into sales history.
type SaleService interface {
	AddItem(ctx context.Context, terminalID string, itemID, quantity int) error
	RemoveItem(ctx context.Context, terminalID string, itemID int) error
	ListCurrent(ctx context.Context, terminalID string) ([]model.CurrentSaleLine, error)
	Checkout(ctx context.Context, terminalID string) (int, error)

	ListSales(ctx context.Context) ([]model.Sale, error)
	GetSale(ctx context.Context, orderID int) (*model.Sale, error)
	GetSaleLines(ctx context.Context, orderID int) ([]model.SaleLine, error)
}

type saleService struct {
	saleRepo repository.SaleRepository
	itemRepo repository.ItemRepository
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo repository.SaleRepository, itemRepo repository.ItemRepository) SaleService {
	return &saleService{
		saleRepo: saleRepo,
		itemRepo: itemRepo,
	}
}

// AddItem stages quantity units of an item on the terminal's current sale.
// Re-adding an item merges into the existing line and revalues it at the unit
// price read at call time; lines for other items are left untouched by a
// price change.
func (s *saleService) AddItem(ctx context.Context, terminalID string, itemID, quantity int) error {
	if quantity <= 0 {
		return errors.ErrInvalidQuantity
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrItemNotFound
		}
		return fmt.Errorf("resolve menu item %d: %w", itemID, err)
	}

	err = s.saleRepo.WithTransaction(ctx, func(ctx context.Context, tx repository.SaleRepository) error {
		line, err := tx.FindStagedForUpdate(ctx, terminalID, itemID)
		switch {
		case err == gorm.ErrRecordNotFound:
			line = &model.StagedLine{
				TerminalID: terminalID,
				ItemID:     itemID,
				Quantity:   quantity,
				LineValue:  item.ItemPrice.Mul(decimal.NewFromInt(int64(quantity))),
			}
		case err != nil:
			return err
		default:
			line.Quantity += quantity
			line.LineValue = item.ItemPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		}
		return tx.SaveStaged(ctx, line)
	})
	if err != nil {
		log.Printf("add item %d (qty %d) to sale failed: %v", itemID, quantity, err)
		return fmt.Errorf("stage item %d: %w", itemID, err)
	}

	log.Printf("item %d (qty %d) added to current sale on terminal %s", itemID, quantity, terminalID)
	return nil
}

// RemoveItem takes an item's line off the current sale entirely. Decrementing
// a quantity is remove-then-add.
func (s *saleService) RemoveItem(ctx context.Context, terminalID string, itemID int) error {
	affected, err := s.saleRepo.DeleteStaged(ctx, terminalID, itemID)
	if err != nil {
		log.Printf("remove item %d from sale failed: %v", itemID, err)
		return fmt.Errorf("remove staged item %d: %w", itemID, err)
	}
	if affected == 0 {
		return errors.ErrItemNotStaged
	}
	log.Printf("item %d removed from current sale on terminal %s", itemID, terminalID)
	return nil
}

// ListCurrent returns a snapshot of the terminal's staged lines with item names.
func (s *saleService) ListCurrent(ctx context.Context, terminalID string) ([]model.CurrentSaleLine, error) {
	return s.saleRepo.ListStaged(ctx, terminalID)
}

// Checkout migrates every staged line of the terminal into one new completed
// sale. The sale row, its lines, and the staging clear happen in a single
// transaction; any failure leaves both staging and history untouched.
func (s *saleService) Checkout(ctx context.Context, terminalID string) (int, error) {
	var orderID int

	err := s.saleRepo.WithTransaction(ctx, func(ctx context.Context, tx repository.SaleRepository) error {
		staged, err := tx.ListStagedForUpdate(ctx, terminalID)
		if err != nil {
			return err
		}
		if len(staged) == 0 {
			return errors.ErrEmptySale
		}

		itemIDs := make([]int, 0, len(staged))
		total := decimal.Zero
		for _, line := range staged {
			itemIDs = append(itemIDs, line.ItemID)
			total = total.Add(line.LineValue)
		}

		names, err := tx.FindItemNames(ctx, itemIDs)
		if err != nil {
			return err
		}

		sale := &model.Sale{
			OrderDate:  time.Now(),
			TotalValue: total,
		}
		if err := tx.CreateSale(ctx, sale); err != nil {
			return err
		}

		lines := make([]model.SaleLine, 0, len(staged))
		for _, line := range staged {
			name, ok := names[line.ItemID]
			if !ok {
				return fmt.Errorf("staged item %d: %w", line.ItemID, errors.ErrItemNotFound)
			}
			lines = append(lines, model.SaleLine{
				OrderID:  sale.OrderID,
				ItemID:   line.ItemID,
				Quantity: line.Quantity,
				Value:    line.LineValue,
				ItemName: name,
			})
		}
		if err := tx.CreateSaleLines(ctx, lines); err != nil {
			return err
		}
		if err := tx.ClearStaged(ctx, terminalID); err != nil {
			return err
		}

		orderID = sale.OrderID
		return nil
	})
	if err != nil {
		log.Printf("checkout on terminal %s failed: %v", terminalID, err)
		if err == errors.ErrEmptySale {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", errors.ErrCheckoutFailed, err)
	}

	log.Printf("sale completed on terminal %s, order %d", terminalID, orderID)
	return orderID, nil
}

// ListSales lists completed sales, newest first.
func (s *saleService) ListSales(ctx context.Context) ([]model.Sale, error) {
	return s.saleRepo.ListSales(ctx)
}

// GetSale fetches one completed sale.
func (s *saleService) GetSale(ctx context.Context, orderID int) (*model.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSaleNotFound
		}
		return nil, fmt.Errorf("find sale %d: %w", orderID, err)
	}
	return sale, nil
}

// GetSaleLines fetches the lines of one completed sale.
func (s *saleService) GetSaleLines(ctx context.Context, orderID int) ([]model.SaleLine, error) {
	return s.saleRepo.ListSaleLines(ctx, orderID)
}
