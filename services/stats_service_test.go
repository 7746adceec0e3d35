package services

import (
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/ABuBakar7447/foodvillage-server/entity"
	"github.com/ABuBakar7447/foodvillage-server/repository"
)

func newStats(db *gorm.DB) *StatsService {
	return NewStatsService(
		repository.NewUserRepository(db),
		repository.NewMenuRepository(db),
		repository.NewCartRepository(db),
		repository.NewPaymentRepository(db),
	)
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, category string, price float64) uint {
	t.Helper()
	item := entity.MenuItem{Name: name, Category: category, Price: price}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return item.ID
}

// seededEntryID hands out cart entry ids for payment items seeded directly
// into the history; they only need to be unique within one test database.
var seededEntryID uint = 1000

func seedPayment(t *testing.T, db *gorm.DB, email string, price float64, menuItemIDs ...uint) {
	t.Helper()
	items := make([]entity.PaymentItem, 0, len(menuItemIDs))
	for _, mid := range menuItemIDs {
		seededEntryID++
		items = append(items, entity.PaymentItem{CartEntryID: seededEntryID, MenuItemID: mid})
	}
	seededEntryID++
	p := entity.Payment{
		PayerEmail:     email,
		Price:          price,
		TransactionRef: fmt.Sprintf("txn_test_%d", seededEntryID),
		Items:          items,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}
}

func TestOrderStatesGroupsByCategory(t *testing.T) {
	db := newTestDB(t)
	stats := newStats(db)

	brownie := seedMenuItem(t, db, "Brownie", "Dessert", 4.00)
	cake := seedMenuItem(t, db, "Cheesecake", "Dessert", 6.50)
	seedPayment(t, db, "a@x.com", 10.50, brownie, cake)

	states, err := stats.OrderStates()
	if err != nil {
		t.Fatalf("order states: %v", err)
	}
	if len(states) != 1 {
		t.Fatalf("expected one category, got %+v", states)
	}
	got := states[0]
	if got.Category != "Dessert" || got.Count != 2 || got.Total != 10.50 {
		t.Errorf("expected {Dessert 2 10.50}, got %+v", got)
	}
}

func TestOrderStatesSortsAndOmitsUnsettledCategories(t *testing.T) {
	db := newTestDB(t)
	stats := newStats(db)

	pizza := seedMenuItem(t, db, "Margherita", "Pizza", 11.25)
	brownie := seedMenuItem(t, db, "Brownie", "Dessert", 4.00)
	seedMenuItem(t, db, "Cola", "Drinks", 2.50) // never settled

	seedPayment(t, db, "a@x.com", 11.25, pizza)
	seedPayment(t, db, "b@y.com", 4.00, brownie)

	states, err := stats.OrderStates()
	if err != nil {
		t.Fatalf("order states: %v", err)
	}
	if len(states) != 2 {
		t.Fatalf("expected two categories, got %+v", states)
	}
	if states[0].Category != "Dessert" || states[1].Category != "Pizza" {
		t.Errorf("expected ascending category order, got %+v", states)
	}
}

func TestOrderStatesEmptyHistory(t *testing.T) {
	stats := newStats(newTestDB(t))

	states, err := stats.OrderStates()
	if err != nil {
		t.Fatalf("order states: %v", err)
	}
	if len(states) != 0 {
		t.Errorf("expected no categories, got %+v", states)
	}
}

func TestAdminDashboardTotals(t *testing.T) {
	db := newTestDB(t)
	stats := newStats(db)

	for _, email := range []string{"a@x.com", "b@y.com", "c@z.com"} {
		if err := db.Create(&entity.User{Email: email, Role: "guest"}).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	seedMenuItem(t, db, "Margherita", "Pizza", 11.25)
	seedMenuItem(t, db, "Brownie", "Dessert", 4.00)

	seedPayment(t, db, "a@x.com", 10.004)
	seedPayment(t, db, "b@y.com", 5.003)

	dash, err := stats.AdminDashboard()
	if err != nil {
		t.Fatalf("admin dashboard: %v", err)
	}
	if dash.Customer != 3 || dash.Products != 2 || dash.Orders != 2 {
		t.Errorf("unexpected counts: %+v", dash)
	}
	// 10.004 + 5.003 = 15.007, rounds half-up to 15.01
	if dash.Revenues != 15.01 {
		t.Errorf("expected revenues 15.01, got %v", dash.Revenues)
	}
}

func TestUserDashboardReturnsBothCollections(t *testing.T) {
	db := newTestDB(t)
	stats := newStats(db)

	seedCartEntries(t, db, "a@x.com", 5.00, 7.00)
	seedCartEntries(t, db, "b@y.com", 9.00)
	seedPayment(t, db, "a@x.com", 12.00)

	carts, payments, err := stats.UserDashboard("a@x.com")
	if err != nil {
		t.Fatalf("user dashboard: %v", err)
	}
	if len(carts) != 2 {
		t.Errorf("expected 2 cart entries, got %d", len(carts))
	}
	if len(payments) != 1 {
		t.Errorf("expected 1 payment, got %d", len(payments))
	}
}
