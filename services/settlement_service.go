package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ABuBakar7447/foodvillage-server/entity"
	"github.com/ABuBakar7447/foodvillage-server/repository"
)

var (
	ErrInvalidPrice   = errors.New("invalid price")
	ErrNoCartEntries  = errors.New("no cart entries given")
	ErrAlreadySettled = errors.New("cart entries already settled")
)

// SettlementService runs the two-phase checkout: open a payment intent with
// the gateway, then durably record the confirmed payment and retire the
// cart entries it covers.
type SettlementService struct {
	DB       *gorm.DB
	Gateway  PaymentGateway
	CartRepo *repository.CartRepository
	PayRepo  *repository.PaymentRepository
}

func NewSettlementService(db *gorm.DB, gateway PaymentGateway, cartRepo *repository.CartRepository, payRepo *repository.PaymentRepository) *SettlementService {
	return &SettlementService{DB: db, Gateway: gateway, CartRepo: cartRepo, PayRepo: payRepo}
}

// CreateIntent converts a major-unit price to the gateway's minor-unit
// integer (19.99 -> 1999) and returns the client secret unmodified. The
// call is not retried here; it carries no idempotency key, so retrying is
// the caller's decision.
func (s *SettlementService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", ErrInvalidPrice
	}
	amount := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return s.Gateway.CreateIntent(ctx, amount, "usd")
}

type SettleInput struct {
	PayerEmail   string
	Price        float64
	CartEntryIDs []uint
	MenuItemIDs  []uint
}

type InsertResult struct {
	Acknowledged   bool   `json:"acknowledged"`
	InsertedID     uint   `json:"insertedId"`
	TransactionRef string `json:"transactionRef"`
}

type DeleteResult struct {
	Acknowledged bool   `json:"acknowledged"`
	DeletedCount int64  `json:"deletedCount"`
	MissedIDs    []uint `json:"missedIds,omitempty"`
}

// Settle records the payment and retires the covered cart entries as one
// transaction. A cart entry can be settled at most once: any overlap with
// an earlier payment aborts the whole call, and the unique index on
// payment_items.cart_entry_id holds that even for concurrent settlements.
// Entries that were requested but not removed (already gone, or not owned
// by the payer) are reported in MissedIDs so the caller can reconcile.
func (s *SettlementService) Settle(in *SettleInput) (*InsertResult, *DeleteResult, error) {
	if in.Price <= 0 {
		return nil, nil, ErrInvalidPrice
	}
	if len(in.CartEntryIDs) == 0 {
		return nil, nil, ErrNoCartEntries
	}

	var (
		insert InsertResult
		del    DeleteResult
	)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		settled, err := s.PayRepo.SettledEntryIDs(tx, in.CartEntryIDs)
		if err != nil {
			return err
		}
		if len(settled) > 0 {
			return ErrAlreadySettled
		}

		items := make([]entity.PaymentItem, 0, len(in.CartEntryIDs))
		for i, ceID := range in.CartEntryIDs {
			item := entity.PaymentItem{CartEntryID: ceID}
			if i < len(in.MenuItemIDs) {
				item.MenuItemID = in.MenuItemIDs[i]
			}
			items = append(items, item)
		}

		payment := entity.Payment{
			PayerEmail:     in.PayerEmail,
			Price:          in.Price,
			TransactionRef: "txn_" + uuid.NewString(),
			Items:          items,
		}
		if err := s.PayRepo.CreateWithItems(tx, &payment); err != nil {
			return err
		}

		owned, err := s.CartRepo.OwnedIDsIn(tx, in.PayerEmail, in.CartEntryIDs)
		if err != nil {
			return err
		}
		deleted, err := s.CartRepo.DeleteOwnedIn(tx, in.PayerEmail, in.CartEntryIDs)
		if err != nil {
			return err
		}

		ownedSet := make(map[uint]bool, len(owned))
		for _, id := range owned {
			ownedSet[id] = true
		}
		var missed []uint
		for _, id := range in.CartEntryIDs {
			if !ownedSet[id] {
				missed = append(missed, id)
			}
		}

		insert = InsertResult{Acknowledged: true, InsertedID: payment.ID, TransactionRef: payment.TransactionRef}
		del = DeleteResult{Acknowledged: true, DeletedCount: deleted, MissedIDs: missed}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &insert, &del, nil
}
