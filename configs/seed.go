package configs

import (
	"log"

	"github.com/Orbe-ERP/pos-backend/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin user from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedDemo creates a demo restaurant with stations and a few products when
// SEED_DEMO=1. Useful for pointing a kitchen display at a fresh database.
func SeedDemo() error {
	if getEnv("SEED_DEMO", "") != "1" {
		return nil
	}
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	rest := entity.Restaurant{Name: "Demo"}
	if err := db.Create(&rest).Error; err != nil {
		return err
	}

	grill := entity.Kitchen{Name: "Grill", Color: "#c0392b", ShowOnKitchen: true, RestaurantID: rest.ID}
	bar := entity.Kitchen{Name: "Bar", Color: "#2980b9", ShowOnKitchen: true, RestaurantID: rest.ID}
	db.Create(&grill)
	db.Create(&bar)

	cat := entity.Category{Name: "Mains", RestaurantID: rest.ID}
	db.Create(&cat)

	db.Create(&entity.Product{Name: "Picanha", Price: 8900, CategoryID: cat.ID, KitchenID: grill.ID, RestaurantID: rest.ID})
	db.Create(&entity.Product{Name: "Caipirinha", Price: 2500, CategoryID: cat.ID, KitchenID: bar.ID, RestaurantID: rest.ID})

	db.Create(&entity.Table{Name: "Mesa 1", RestaurantID: rest.ID})
	db.Create(&entity.Table{Name: "Mesa 2", RestaurantID: rest.ID})

	log.Println("seeded demo restaurant:", rest.ID)
	return nil
}
