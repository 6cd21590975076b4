package bootstrap

import (
	"errors"
	"log"

	"anoa.com/ramadhanpitstop/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Participant{},
		&model.Comment{},
		&model.Schedule{},
	)
}

// SeedAdminUser memastikan satu baris admin ada. Kalau sudah ada, hash
// password diperbarui mengikuti konfigurasi.
func SeedAdminUser(db *gorm.DB, username, password string) error {
	if password == "" {
		log.Println("ADMIN_PASSWORD is empty, skipping admin seed")
		return nil
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var user model.User
	err = db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		user = model.User{
			Username:     username,
			PasswordHash: string(hashedPasswordBytes),
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}

		log.Printf("Admin user %q seeded", username)
		return nil
	}

	user.PasswordHash = string(hashedPasswordBytes)
	if err := db.Save(&user).Error; err != nil {
		return err
	}

	log.Printf("Admin user %q already exists, password hash refreshed", username)
	return nil
}
