package configs

import (
	"github.com/Orbe-ERP/pos-backend/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Table{},
		&entity.Kitchen{}, &entity.Category{}, &entity.Product{}, &entity.Modifier{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.OrderLineObservation{}, &entity.OrderLineModifier{},
		&entity.PaymentConfig{},
		&entity.Settlement{}, &entity.SettlementBill{}, &entity.SettlementItem{},
	)
}
