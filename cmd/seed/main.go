package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storeapi/internal/config"
	"storeapi/internal/db"
	"storeapi/internal/model"
	"storeapi/internal/repository"
)

const bcryptCost = 10

var seedUsers = []struct {
	email    string
	password string
}{
	{"admin@store.local", "admin123"},
	{"demo@store.local", "demo1234"},
}

var seedProducts = []struct {
	name  string
	price float64
}{
	{"Widget", 9.90},
	{"Gadget", 24.50},
	{"Gizmo", 3.75},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Product{}, &model.User{}, &model.ErrorLog{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	seedUserRows(ctx, repository.NewUserRepository(gormDB))
	seedProductRows(ctx, repository.NewProductRepository(gormDB), gormDB)

	log.Println("Seed completed")
}

func seedUserRows(ctx context.Context, users repository.UserRepository) {
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	for i, su := range seedUsers {
		if _, err := users.FindByEmail(ctx, su.email); err == nil {
			log.Printf("User %s already exists, skipping", su.email)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to look up user %s: %v", su.email, err)
		}

		password := su.password
		if i == 0 && adminPassword != "" {
			password = adminPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", su.email, err)
		}
		if err := users.Create(ctx, &model.User{Email: su.email, PasswordHash: string(hash)}); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.email, err)
		}
		log.Printf("Created user %s", su.email)
	}
}

func seedProductRows(ctx context.Context, products repository.ProductRepository, gormDB *gorm.DB) {
	var count int64
	if err := gormDB.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count products: %v", err)
	}
	if count > 0 {
		log.Printf("Products table already has %d rows, skipping", count)
		return
	}

	for _, sp := range seedProducts {
		product, err := model.NewProduct(sp.name, sp.price, nil)
		if err != nil {
			log.Fatalf("Invalid seed product %s: %v", sp.name, err)
		}
		if err := products.Create(ctx, product); err != nil {
			log.Fatalf("Failed to create product %s: %v", sp.name, err)
		}
		log.Printf("Created product %s (id=%d)", product.Name, product.ID)
	}
}
