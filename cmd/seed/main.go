package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"recordstudio/internal/database"
	"recordstudio/internal/domain"
	"recordstudio/internal/modules/orders"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "studio.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM details")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		FullName:     "Studio Admin",
		Email:        "admin@recordstudio.io",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("seed admin:", err)
	}

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
	client := domain.User{
		FullName:     "Demo Client",
		Email:        "client@recordstudio.io",
		PasswordHash: string(clientHash),
		Role:         domain.RoleUser,
		Status:       domain.UserActive,
	}
	if err := db.Create(&client).Error; err != nil {
		log.Fatal("seed client:", err)
	}

	log.Println("Creating service catalog...")
	services := []domain.Service{
		{NameValue: "standard-rent", Name: "Studio rental", Description: "Standard studio rental by the hour", Price: 5000, IsRent: true},
		{NameValue: "pro-rent", Name: "Studio rental with engineer", Description: "Studio rental with a sound engineer included", Price: 8000, IsRent: true},
		{NameValue: "mixing", Name: "Mixing", Description: "Mixing of recorded material", Price: 500, IsRent: false},
		{NameValue: "design", Name: "Graphic design", Description: "Artwork for albums and promo materials", Price: 700, IsRent: false},
		{NameValue: "mastering", Name: "Mastering", Description: "Final processing and mastering of tracks", Price: 800, IsRent: false},
		{NameValue: "ghostwriting", Name: "Ghostwriting", Description: "Lyrics written to order", Price: 1000, IsRent: false},
		{NameValue: "instrumental", Name: "Instrumental production", Description: "Arrangement and beat production", Price: 1200, IsRent: false},
		{NameValue: "song-for-key", Name: "Turnkey song", Description: "A song produced from scratch to the finished product", Price: 1500, IsRent: false},
	}
	if err := db.Create(&services).Error; err != nil {
		log.Fatal("seed services:", err)
	}

	log.Println("Creating a sample order...")
	details := []domain.Detail{
		{ServiceID: services[0].ID, Service: &services[0], Quantity: 2},
		{ServiceID: services[2].ID, Service: &services[2], Quantity: 3},
	}
	order := domain.Order{
		UserID:     client.ID,
		Status:     domain.OrderPending,
		TotalPrice: orders.TotalPrice(details),
	}
	if err := db.Create(&order).Error; err != nil {
		log.Fatal("seed order:", err)
	}
	for i := range details {
		details[i].OrderID = order.ID
	}
	if err := db.Omit("Service").Create(&details).Error; err != nil {
		log.Fatal("seed details:", err)
	}

	log.Printf("Done. admin=%s client=%s services=%d", admin.Email, client.Email, len(services))
}
