package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ABuBakar7447/foodvillage-server/entity"
	"github.com/ABuBakar7447/foodvillage-server/repository"
)

// StatsService is the read-only reporting side: dashboard totals, the
// per-category breakdown of settled items and per-user stats. No mutation.
type StatsService struct {
	UserRepo *repository.UserRepository
	MenuRepo *repository.MenuRepository
	CartRepo *repository.CartRepository
	PayRepo  *repository.PaymentRepository
}

func NewStatsService(userRepo *repository.UserRepository, menuRepo *repository.MenuRepository, cartRepo *repository.CartRepository, payRepo *repository.PaymentRepository) *StatsService {
	return &StatsService{UserRepo: userRepo, MenuRepo: menuRepo, CartRepo: cartRepo, PayRepo: payRepo}
}

type AdminDashboard struct {
	Customer int64   `json:"customer"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
	Revenues float64 `json:"revenues"`
}

func (s *StatsService) AdminDashboard() (*AdminDashboard, error) {
	customer, err := s.UserRepo.Count()
	if err != nil {
		return nil, err
	}
	products, err := s.MenuRepo.Count()
	if err != nil {
		return nil, err
	}
	orders, err := s.PayRepo.Count()
	if err != nil {
		return nil, err
	}

	prices, err := s.PayRepo.AllPrices()
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	for _, p := range prices {
		revenue = revenue.Add(decimal.NewFromFloat(p))
	}

	return &AdminDashboard{
		Customer: customer,
		Products: products,
		Orders:   orders,
		Revenues: revenue.Round(2).InexactFloat64(),
	}, nil
}

type CategoryState struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Total    float64 `json:"total"`
}

// OrderStates groups every settled line item by its menu category and sums
// the catalog prices, rounded to 2 decimals. Categories with no settled
// items are omitted; output is sorted by category name for determinism.
func (s *StatsService) OrderStates() ([]CategoryState, error) {
	rows, err := s.PayRepo.SettledItemRows()
	if err != nil {
		return nil, err
	}

	type bucket struct {
		count int
		total decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, row := range rows {
		b, ok := buckets[row.Category]
		if !ok {
			b = &bucket{total: decimal.Zero}
			buckets[row.Category] = b
		}
		b.count++
		b.total = b.total.Add(decimal.NewFromFloat(row.Price))
	}

	categories := make([]string, 0, len(buckets))
	for cat := range buckets {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	out := make([]CategoryState, 0, len(categories))
	for _, cat := range categories {
		b := buckets[cat]
		out = append(out, CategoryState{
			Category: cat,
			Count:    b.count,
			Total:    b.total.Round(2).InexactFloat64(),
		})
	}
	return out, nil
}

// UserDashboard returns the user's pending cart entries and settlement
// history side by side.
func (s *StatsService) UserDashboard(email string) ([]entity.CartEntry, []entity.Payment, error) {
	carts, err := s.CartRepo.ListByOwner(email)
	if err != nil {
		return nil, nil, err
	}
	payments, err := s.PayRepo.ListByPayer(email)
	if err != nil {
		return nil, nil, err
	}
	return carts, payments, nil
}
