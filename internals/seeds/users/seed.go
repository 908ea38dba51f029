// file: internals/seeds/users/seed.go
package users

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coursepay_backend/internals/configs"
	userModel "coursepay_backend/internals/features/users/user/model"
)

// EnsureSuperadmin creates the bootstrap account when it does not exist yet,
// so a fresh deployment can always log in and create real accounts.
func EnsureSuperadmin(db *gorm.DB) error {
	username := configs.GetEnv("SUPERADMIN_USERNAME", "superadmin")
	password := configs.GetEnv("SUPERADMIN_PASSWORD", "changeme123")

	var existing userModel.UserModel
	err := db.First(&existing, "username = ?", username).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := userModel.UserModel{
		Username: username,
		Password: string(hashed),
		Role:     "superadmin",
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	log.Printf("✅ superadmin %q seeded.", username)
	return nil
}
