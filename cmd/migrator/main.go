package main

import (
	"fmt"
	"log"

	"blogapi/domain"
	"blogapi/internal/service/dsn"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func migrate() (err error) {
	_ = godotenv.Load()
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		return err
	}
	err = db.AutoMigrate(&domain.User{}, &domain.AuthToken{}, &domain.PostUser{}, &domain.Post{})
	if err != nil {
		return err
	}
	if err = provisionTokens(db); err != nil {
		return err
	}
	fmt.Println("Database migrated")
	return nil
}

// provisionTokens creates a token for every user that lacks one. Login never
// creates tokens, so this is the only place keys are minted.
func provisionTokens(db *gorm.DB) error {
	var users []domain.User
	if err := db.Joins("LEFT JOIN auth_tokens ON auth_tokens.user_id = users.id").
		Where("auth_tokens.key IS NULL").
		Find(&users).Error; err != nil {
		return err
	}
	for _, user := range users {
		token := domain.AuthToken{Key: uuid.New().String(), UserID: user.ID}
		if err := db.Create(&token).Error; err != nil {
			return err
		}
	}
	if len(users) > 0 {
		fmt.Printf("Provisioned %d auth tokens\n", len(users))
	}
	return nil
}

func main() {
	err := migrate()
	if err != nil {
		log.Fatal(err)
	}
}
