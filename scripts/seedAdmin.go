package main

import (
	"log"
	"os"
	"vesta/config"
	"vesta/database"
	"vesta/models"
	"vesta/utils"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set")
	}

	db := database.Database.Db

	// Skip if the admin already exists
	if err := db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
		log.Printf("Admin %s already exists, nothing to do", email)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		FirstName:    "Super",
		LastName:     "Admin",
		Email:        email,
		Password:     string(hashedPassword),
		Role:         "SUPER-ADMIN",
		ReferralCode: utils.GenerateReferralCode(),
		IsActive:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Created SUPER-ADMIN %s (id %d)", admin.Email, admin.ID)
}
