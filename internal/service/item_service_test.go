package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tastetrack/internal/errors"
	"tastetrack/internal/model"
)

// MockItemRepository is a mock implementation of ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, itemID int) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(ctx context.Context, itemID int) (*model.MenuItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockItemRepository) ListDaily(ctx context.Context) ([]model.DailyMenuEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DailyMenuEntry), args.Error(1)
}

func (m *MockItemRepository) AddDaily(ctx context.Context, itemID int) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockItemRepository) UpdateDailyStatus(ctx context.Context, dailyItemID int, status string) error {
	args := m.Called(ctx, dailyItemID, status)
	return args.Error(0)
}

func TestItemService_GetItem(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("FindByID", mock.Anything, 1).Return(&model.MenuItem{
			ItemID:    1,
			ItemName:  "Margherita Pizza",
			ItemPrice: decimal.RequireFromString("10.00"),
		}, nil)

		service := NewItemService(mockRepo, nil)
		item, err := service.GetItem(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "Margherita Pizza", item.ItemName)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("FindByID", mock.Anything, 99).Return(nil, gorm.ErrRecordNotFound)

		service := NewItemService(mockRepo, nil)
		item, err := service.GetItem(context.Background(), 99)

		assert.ErrorIs(t, err, errors.ErrItemNotFound)
		assert.Nil(t, item)
	})
}

func TestItemService_UpdateItemNotFound(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.MenuItem")).
		Return(gorm.ErrRecordNotFound)

	service := NewItemService(mockRepo, nil)
	err := service.UpdateItem(context.Background(), &model.MenuItem{ItemID: 99, ItemName: "Ghost"})

	assert.ErrorIs(t, err, errors.ErrItemNotFound)
}

func TestItemService_DeleteItemNotFound(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockRepo.On("Delete", mock.Anything, 99).Return(gorm.ErrRecordNotFound)

	service := NewItemService(mockRepo, nil)
	assert.ErrorIs(t, service.DeleteItem(context.Background(), 99), errors.ErrItemNotFound)
}

func TestItemService_AddDailyItem(t *testing.T) {
	t.Run("catalog item required", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("FindByID", mock.Anything, 99).Return(nil, gorm.ErrRecordNotFound)

		service := NewItemService(mockRepo, nil)
		err := service.AddDailyItem(context.Background(), 99)

		assert.ErrorIs(t, err, errors.ErrItemNotFound)
		mockRepo.AssertNotCalled(t, "AddDaily", mock.Anything, mock.Anything)
	})

	t.Run("added", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("FindByID", mock.Anything, 1).Return(&model.MenuItem{ItemID: 1}, nil)
		mockRepo.On("AddDaily", mock.Anything, 1).Return(nil)

		service := NewItemService(mockRepo, nil)
		assert.NoError(t, service.AddDailyItem(context.Background(), 1))
		mockRepo.AssertExpectations(t)
	})
}
