// Command create-user creates developer account with generated password.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"devagent-backend/internal/database"
	"devagent-backend/internal/model"
	"devagent-backend/internal/utilities"
)

// generateRandomString creates a random hex string of length 2n
func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal().Err(err).Msg("Failed to read random bytes")
	}
	return hex.EncodeToString(bytes)
}

// generateUniqueUsername tries until a unique username is found
func generateUniqueUsername(db *gorm.DB) string {
	for {
		username := "developer_" + generateRandomString(4)
		var count int64
		db.Model(&model.User{}).Where("username = ?", username).Count(&count)
		if count == 0 {
			return username
		}
	}
}

func main() {
	email := flag.String("email", "", "email of the new account (required)")
	username := flag.String("username", "", "username, generated when empty")
	staff := flag.Bool("staff", false, "mark account as staff")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "usage: create-user -email <email> [-username <name>] [-staff]")
		os.Exit(2)
	}

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Database failed to initialize")
	}

	if *username == "" {
		*username = generateUniqueUsername(db.DB)
	}
	password := generateRandomString(8)

	hashedPassword, err := utilities.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	user := model.User{
		EditableUserInfo: model.EditableUserInfo{
			Username: *username,
			Email:    *email,
		},
		Password: hashedPassword,
		IsStaff:  *staff,
	}
	if err := db.Create(&user).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			log.Fatal().Msg("Username or email already taken")
		}
		log.Fatal().Err(err).Msg("Failed to create user")
	}

	// Print credentials (only show plain password here!)
	fmt.Println("User credentials generated successfully!")
	fmt.Println("======================================")
	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Email:    %s\n", user.Email)
	fmt.Printf("Password: %s\n", password)
	fmt.Println("======================================")
}
