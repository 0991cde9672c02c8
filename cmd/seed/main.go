package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tastetrack/internal/config"
	"tastetrack/internal/db"
	"tastetrack/internal/model"
	"tastetrack/internal/repository"
)

type seedUser struct {
	userID   string
	password string
	role     model.Role
}

var defaultUsers = []seedUser{
	{userID: "admin", password: "admin123", role: model.RoleAdmin},
	{userID: "cashier", password: "cashier123", role: model.RoleUser},
}

var defaultMenu = []model.MenuItem{
	{ItemName: "Margherita Pizza", ItemPrice: decimal.NewFromFloat(10.00)},
	{ItemName: "Garlic Bread", ItemPrice: decimal.NewFromFloat(5.50)},
	{ItemName: "Caesar Salad", ItemPrice: decimal.NewFromFloat(7.25)},
	{ItemName: "Lemonade", ItemPrice: decimal.NewFromFloat(2.75)},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.MenuItem{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	created, err := seedUsers(ctx, repository.NewUserRepository(gormDB))
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Users created: %d", created)

	created, err = seedMenu(ctx, gormDB, repository.NewItemRepository(gormDB))
	if err != nil {
		log.Fatalf("Failed to seed menu: %v", err)
	}
	log.Printf("Menu items created: %d", created)

	log.Println("Seed completed successfully!")
}

// seedUsers creates the default accounts, leaving existing ones untouched so
// changed passwords survive a re-seed.
func seedUsers(ctx context.Context, repo repository.UserRepository) (int, error) {
	created := 0
	for _, su := range defaultUsers {
		existing, err := repo.FindByID(ctx, su.userID)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, fmt.Errorf("error checking user %s: %w", su.userID, err)
		}
		if existing != nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return created, fmt.Errorf("error hashing password for %s: %w", su.userID, err)
		}
		user := &model.User{
			UserID:       su.userID,
			PasswordHash: string(hash),
			Role:         su.role,
		}
		if err := repo.Create(ctx, user); err != nil {
			return created, fmt.Errorf("error creating user %s: %w", su.userID, err)
		}
		created++
	}
	return created, nil
}

// seedMenu creates the sample menu once, keyed by item name.
func seedMenu(ctx context.Context, gormDB *gorm.DB, repo repository.ItemRepository) (int, error) {
	created := 0
	for _, item := range defaultMenu {
		var count int64
		if err := gormDB.WithContext(ctx).Model(&model.MenuItem{}).
			Where("item_name = ?", item.ItemName).Count(&count).Error; err != nil {
			return created, fmt.Errorf("error checking item %q: %w", item.ItemName, err)
		}
		if count > 0 {
			continue
		}

		toCreate := item
		if err := repo.Create(ctx, &toCreate); err != nil {
			return created, fmt.Errorf("error creating item %q: %w", item.ItemName, err)
		}
		created++
	}
	return created, nil
}
