package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tastetrack/internal/errors"
	"tastetrack/internal/model"
	"tastetrack/internal/repository"
)

// fakeSaleRepository is an in-memory SaleRepository. WithTransaction snapshots
// the state and restores it when fn errors, mirroring a rollback.
type fakeSaleRepository struct {
	staged      []*model.StagedLine
	sales       []*model.Sale
	saleLines   map[int][]model.SaleLine
	items       map[int]model.MenuItem
	nextLineID  uint
	nextOrderID int

	failCreateSaleLines bool
}

func newFakeSaleRepository(items map[int]model.MenuItem) *fakeSaleRepository {
	return &fakeSaleRepository{
		saleLines:   map[int][]model.SaleLine{},
		items:       items,
		nextLineID:  1,
		nextOrderID: 1,
	}
}

func (f *fakeSaleRepository) snapshot() *fakeSaleRepository {
	cp := &fakeSaleRepository{
		staged:      make([]*model.StagedLine, len(f.staged)),
		sales:       make([]*model.Sale, len(f.sales)),
		saleLines:   make(map[int][]model.SaleLine, len(f.saleLines)),
		items:       f.items,
		nextLineID:  f.nextLineID,
		nextOrderID: f.nextOrderID,
	}
	for i, line := range f.staged {
		lineCopy := *line
		cp.staged[i] = &lineCopy
	}
	for i, sale := range f.sales {
		saleCopy := *sale
		cp.sales[i] = &saleCopy
	}
	for orderID, lines := range f.saleLines {
		cp.saleLines[orderID] = append([]model.SaleLine(nil), lines...)
	}
	return cp
}

func (f *fakeSaleRepository) restore(snap *fakeSaleRepository) {
	f.staged = snap.staged
	f.sales = snap.sales
	f.saleLines = snap.saleLines
	f.nextLineID = snap.nextLineID
	f.nextOrderID = snap.nextOrderID
}

func (f *fakeSaleRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.SaleRepository) error) error {
	snap := f.snapshot()
	if err := fn(ctx, f); err != nil {
		f.restore(snap)
		return err
	}
	return nil
}

func (f *fakeSaleRepository) FindStagedForUpdate(ctx context.Context, terminalID string, itemID int) (*model.StagedLine, error) {
	for _, line := range f.staged {
		if line.TerminalID == terminalID && line.ItemID == itemID {
			return line, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSaleRepository) SaveStaged(ctx context.Context, line *model.StagedLine) error {
	if line.ID == 0 {
		line.ID = f.nextLineID
		f.nextLineID++
		f.staged = append(f.staged, line)
	}
	return nil
}

func (f *fakeSaleRepository) DeleteStaged(ctx context.Context, terminalID string, itemID int) (int64, error) {
	for i, line := range f.staged {
		if line.TerminalID == terminalID && line.ItemID == itemID {
			f.staged = append(f.staged[:i], f.staged[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeSaleRepository) ListStaged(ctx context.Context, terminalID string) ([]model.CurrentSaleLine, error) {
	var out []model.CurrentSaleLine
	for _, line := range f.staged {
		if line.TerminalID != terminalID {
			continue
		}
		out = append(out, model.CurrentSaleLine{
			ID:        line.ID,
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			LineValue: line.LineValue,
			ItemName:  f.items[line.ItemID].ItemName,
		})
	}
	return out, nil
}

func (f *fakeSaleRepository) ListStagedForUpdate(ctx context.Context, terminalID string) ([]model.StagedLine, error) {
	var out []model.StagedLine
	for _, line := range f.staged {
		if line.TerminalID == terminalID {
			out = append(out, *line)
		}
	}
	return out, nil
}

func (f *fakeSaleRepository) ClearStaged(ctx context.Context, terminalID string) error {
	kept := f.staged[:0]
	for _, line := range f.staged {
		if line.TerminalID != terminalID {
			kept = append(kept, line)
		}
	}
	f.staged = kept
	return nil
}

func (f *fakeSaleRepository) FindItemNames(ctx context.Context, itemIDs []int) (map[int]string, error) {
	names := make(map[int]string)
	for _, id := range itemIDs {
		if item, ok := f.items[id]; ok {
			names[id] = item.ItemName
		}
	}
	return names, nil
}

func (f *fakeSaleRepository) CreateSale(ctx context.Context, sale *model.Sale) error {
	sale.OrderID = f.nextOrderID
	f.nextOrderID++
	f.sales = append(f.sales, sale)
	return nil
}

func (f *fakeSaleRepository) CreateSaleLines(ctx context.Context, lines []model.SaleLine) error {
	if f.failCreateSaleLines {
		return stderrors.New("disk full")
	}
	for _, line := range lines {
		f.saleLines[line.OrderID] = append(f.saleLines[line.OrderID], line)
	}
	return nil
}

func (f *fakeSaleRepository) FindSaleByID(ctx context.Context, orderID int) (*model.Sale, error) {
	for _, sale := range f.sales {
		if sale.OrderID == orderID {
			return sale, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSaleRepository) ListSales(ctx context.Context) ([]model.Sale, error) {
	out := make([]model.Sale, 0, len(f.sales))
	for i := len(f.sales) - 1; i >= 0; i-- {
		out = append(out, *f.sales[i])
	}
	return out, nil
}

func (f *fakeSaleRepository) ListSaleLines(ctx context.Context, orderID int) ([]model.SaleLine, error) {
	return f.saleLines[orderID], nil
}

// fakeItemRepository serves catalog lookups from the same map the sale
// repository joins against.
type fakeItemRepository struct {
	items map[int]model.MenuItem
}

func (f *fakeItemRepository) Create(ctx context.Context, item *model.MenuItem) error { return nil }
func (f *fakeItemRepository) Update(ctx context.Context, item *model.MenuItem) error { return nil }
func (f *fakeItemRepository) Delete(ctx context.Context, itemID int) error           { return nil }

func (f *fakeItemRepository) FindByID(ctx context.Context, itemID int) (*model.MenuItem, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (f *fakeItemRepository) List(ctx context.Context) ([]model.MenuItem, error) { return nil, nil }
func (f *fakeItemRepository) ListDaily(ctx context.Context) ([]model.DailyMenuEntry, error) {
	return nil, nil
}
func (f *fakeItemRepository) AddDaily(ctx context.Context, itemID int) error { return nil }
func (f *fakeItemRepository) UpdateDailyStatus(ctx context.Context, dailyItemID int, status string) error {
	return nil
}

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("bad test price %q: %v", s, err))
	}
	return d
}

func newSaleServiceFixture() (SaleService, *fakeSaleRepository) {
	items := map[int]model.MenuItem{
		1: {ItemID: 1, ItemName: "Margherita Pizza", ItemPrice: price("10.00")},
		2: {ItemID: 2, ItemName: "Garlic Bread", ItemPrice: price("5.50")},
	}
	saleRepo := newFakeSaleRepository(items)
	return NewSaleService(saleRepo, &fakeItemRepository{items: items}), saleRepo
}

func TestSaleService_AddItemMergesLines(t *testing.T) {
	svc, repo := newSaleServiceFixture()
	ctx := context.Background()
	terminal := model.DefaultTerminal

	require.NoError(t, svc.AddItem(ctx, terminal, 1, 2))
	require.NoError(t, svc.AddItem(ctx, terminal, 1, 3))

	lines, err := svc.ListCurrent(ctx, terminal)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].ItemID)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.True(t, price("50.00").Equal(lines[0].LineValue),
		"expected 50.00, got %s", lines[0].LineValue)
	assert.Len(t, repo.staged, 1)
}

func TestSaleService_AddItemRejectsBadInput(t *testing.T) {
	svc, repo := newSaleServiceFixture()
	ctx := context.Background()

	tests := []struct {
		name     string
		itemID   int
		quantity int
		wantErr  error
	}{
		{name: "zero quantity", itemID: 1, quantity: 0, wantErr: errors.ErrInvalidQuantity},
		{name: "negative quantity", itemID: 1, quantity: -1, wantErr: errors.ErrInvalidQuantity},
		{name: "unknown item", itemID: 99, quantity: 1, wantErr: errors.ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.AddItem(ctx, model.DefaultTerminal, tt.itemID, tt.quantity)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Empty(t, repo.staged, "rejected adds must not stage anything")
}

func TestSaleService_RemoveItem(t *testing.T) {
	svc, _ := newSaleServiceFixture()
	ctx := context.Background()
	terminal := model.DefaultTerminal

	require.NoError(t, svc.AddItem(ctx, terminal, 1, 2))

	assert.ErrorIs(t, svc.RemoveItem(ctx, terminal, 2), errors.ErrItemNotStaged)

	require.NoError(t, svc.RemoveItem(ctx, terminal, 1))
	lines, err := svc.ListCurrent(ctx, terminal)
	require.NoError(t, err)
	assert.Empty(t, lines)

	assert.ErrorIs(t, svc.RemoveItem(ctx, terminal, 1), errors.ErrItemNotStaged)
}

func TestSaleService_CheckoutCompletesSale(t *testing.T) {
	svc, _ := newSaleServiceFixture()
	ctx := context.Background()
	terminal := model.DefaultTerminal

	require.NoError(t, svc.AddItem(ctx, terminal, 1, 2))
	require.NoError(t, svc.AddItem(ctx, terminal, 2, 1))

	current, err := svc.ListCurrent(ctx, terminal)
	require.NoError(t, err)
	require.Len(t, current, 2)

	orderID, err := svc.Checkout(ctx, terminal)
	require.NoError(t, err)
	require.NotZero(t, orderID)

	sale, err := svc.GetSale(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, price("25.50").Equal(sale.TotalValue),
		"expected 25.50, got %s", sale.TotalValue)
	assert.WithinDuration(t, time.Now(), sale.OrderDate, time.Minute)

	saleLines, err := svc.GetSaleLines(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, saleLines, 2)
	assert.Equal(t, "Margherita Pizza", saleLines[0].ItemName)
	assert.Equal(t, 2, saleLines[0].Quantity)
	assert.Equal(t, "Garlic Bread", saleLines[1].ItemName)
	assert.Equal(t, 1, saleLines[1].Quantity)

	current, err = svc.ListCurrent(ctx, terminal)
	require.NoError(t, err)
	assert.Empty(t, current, "checkout must clear the staging area")
}

func TestSaleService_CheckoutEmptySaleRejected(t *testing.T) {
	svc, _ := newSaleServiceFixture()

	orderID, err := svc.Checkout(context.Background(), model.DefaultTerminal)
	assert.ErrorIs(t, err, errors.ErrEmptySale)
	assert.Zero(t, orderID)
}

func TestSaleService_CheckoutFailureLeavesNoTrace(t *testing.T) {
	svc, repo := newSaleServiceFixture()
	ctx := context.Background()
	terminal := model.DefaultTerminal

	require.NoError(t, svc.AddItem(ctx, terminal, 1, 2))
	require.NoError(t, svc.AddItem(ctx, terminal, 2, 1))

	repo.failCreateSaleLines = true
	orderID, err := svc.Checkout(ctx, terminal)
	assert.ErrorIs(t, err, errors.ErrCheckoutFailed)
	assert.Zero(t, orderID)

	// Staging is intact and no partial sale is visible.
	current, listErr := svc.ListCurrent(ctx, terminal)
	require.NoError(t, listErr)
	assert.Len(t, current, 2)

	sales, listErr := svc.ListSales(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, sales)

	// The same order succeeds once the fault clears.
	repo.failCreateSaleLines = false
	orderID, err = svc.Checkout(ctx, terminal)
	require.NoError(t, err)

	sale, err := svc.GetSale(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, price("25.50").Equal(sale.TotalValue))
}

func TestSaleService_TerminalsAreIsolated(t *testing.T) {
	svc, _ := newSaleServiceFixture()
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "till-1", 1, 1))
	require.NoError(t, svc.AddItem(ctx, "till-2", 2, 4))

	orderID, err := svc.Checkout(ctx, "till-1")
	require.NoError(t, err)

	sale, err := svc.GetSale(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, price("10.00").Equal(sale.TotalValue))

	remaining, err := svc.ListCurrent(ctx, "till-2")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, 2, remaining[0].ItemID)
	assert.Equal(t, 4, remaining[0].Quantity)
}

func TestSaleService_DeletedItemStaysVisibleInCurrentSale(t *testing.T) {
	svc, repo := newSaleServiceFixture()
	ctx := context.Background()
	terminal := model.DefaultTerminal

	require.NoError(t, svc.AddItem(ctx, terminal, 1, 2))
	require.NoError(t, svc.AddItem(ctx, terminal, 2, 1))
	delete(repo.items, 2)

	lines, err := svc.ListCurrent(ctx, terminal)
	require.NoError(t, err)
	require.Len(t, lines, 2, "a dangling line must not vanish from the cart")
	assert.Equal(t, 2, lines[1].ItemID)
	assert.Empty(t, lines[1].ItemName)
	assert.True(t, price("5.50").Equal(lines[1].LineValue))

	// The dangling line blocks checkout but nothing is lost.
	_, err = svc.Checkout(ctx, terminal)
	assert.ErrorIs(t, err, errors.ErrCheckoutFailed)

	lines, err = svc.ListCurrent(ctx, terminal)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestSaleService_GetSaleNotFound(t *testing.T) {
	svc, _ := newSaleServiceFixture()

	sale, err := svc.GetSale(context.Background(), 404)
	assert.ErrorIs(t, err, errors.ErrSaleNotFound)
	assert.Nil(t, sale)
}
