package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rokto.app/bloodlink/internal/config"
	"rokto.app/bloodlink/internal/model"
	"rokto.app/bloodlink/internal/server"
	"rokto.app/bloodlink/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := seedRoles(db); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := seedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL not set, notifications and caching disabled")
	}

	srv := server.NewServer(cfg, db, redisClient)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.DonationRequest{},
		&model.Blog{},
		&model.Funding{},
		&model.Notification{},
	)
}

func seedRoles(db *gorm.DB) error {
	defaultRoles := []model.Role{
		{Name: model.RoleAdmin, Description: "Platform administrator"},
		{Name: model.RoleVolunteer, Description: "Volunteer moderator"},
		{Name: model.RoleDonor, Description: "Registered donor"},
	}

	for _, role := range defaultRoles {
		var count int64
		if err := db.Model(&model.Role{}).
			Where("name = ?", role.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func seedAdminUser(db *gorm.DB) error {
	var adminRole model.Role
	if err := db.Where("name = ?", model.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@bloodlink.local").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("admin user already exists, skipping seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Name:         "Administrator",
		Email:        "admin@bloodlink.local",
		PasswordHash: string(hashed),
		RoleID:       &adminRole.ID,
		BloodGroup:   "O+",
		District:     "Dhaka",
		Upazila:      "Savar",
		Status:       model.UserStatusActive,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("admin user seeded: admin@bloodlink.local / admin123")
	return nil
}
