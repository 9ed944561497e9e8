package services

import (
	"path/filepath"
	"testing"

	"github.com/Orbe-ERP/pos-backend/entity"
	"github.com/Orbe-ERP/pos-backend/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Table{},
		&entity.Kitchen{}, &entity.Category{}, &entity.Product{}, &entity.Modifier{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.OrderLineObservation{}, &entity.OrderLineModifier{},
		&entity.PaymentConfig{},
		&entity.Settlement{}, &entity.SettlementBill{}, &entity.SettlementItem{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// fixture is a restaurant with two stations, two products and a table.
type fixture struct {
	Restaurant entity.Restaurant
	Grill      entity.Kitchen
	Bar        entity.Kitchen
	Steak      entity.Product
	Drink      entity.Product
	Table      entity.Table
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	var f fixture
	f.Restaurant = entity.Restaurant{Name: "Test"}
	mustCreate(t, db, &f.Restaurant)

	f.Grill = entity.Kitchen{Name: "Grill", ShowOnKitchen: true, RestaurantID: f.Restaurant.ID}
	f.Bar = entity.Kitchen{Name: "Bar", ShowOnKitchen: true, RestaurantID: f.Restaurant.ID}
	mustCreate(t, db, &f.Grill)
	mustCreate(t, db, &f.Bar)

	cat := entity.Category{Name: "Mains", RestaurantID: f.Restaurant.ID}
	mustCreate(t, db, &cat)

	f.Steak = entity.Product{Name: "Steak", Price: 5000, CategoryID: cat.ID, KitchenID: f.Grill.ID, RestaurantID: f.Restaurant.ID}
	f.Drink = entity.Product{Name: "Drink", Price: 1000, CategoryID: cat.ID, KitchenID: f.Bar.ID, RestaurantID: f.Restaurant.ID}
	mustCreate(t, db, &f.Steak)
	mustCreate(t, db, &f.Drink)

	f.Table = entity.Table{Name: "Mesa 1", RestaurantID: f.Restaurant.ID}
	mustCreate(t, db, &f.Table)

	return f
}

func mustCreate(t *testing.T, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), nil, nil)
}

func newSettlementService(db *gorm.DB, orders *OrderService) *SettlementService {
	fees := NewPaymentConfigService(repository.NewPaymentConfigRepository(db))
	return NewSettlementService(db, orders.Repo, repository.NewSettlementRepository(db), fees, orders.Locks)
}

func createOrder(t *testing.T, svc *OrderService, f fixture, productIDs ...uint) *entity.Order {
	t.Helper()

	items := make([]OrderLineIn, 0, len(productIDs))
	for _, id := range productIDs {
		items = append(items, OrderLineIn{ProductID: id, Quantity: 1})
	}
	order, err := svc.Create(&CreateOrderReq{
		RestaurantID: f.Restaurant.ID,
		TableID:      f.Table.ID,
		Items:        items,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}
