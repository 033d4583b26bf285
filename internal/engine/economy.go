package engine

import (
	"context"

	"github.com/google/uuid"

	"boardquest/internal/catalog"
)

// applyEvent is the single place transition events touch the ledger.
func (s *Service) applyEvent(ev Event) {
	switch e := ev.(type) {
	case TaskCompleted:
		s.points += e.Reward
	case TaskReopened:
		// Refund clamps at zero: points already spent in the shop are not
		// owed back as debt.
		s.points -= e.Refund
		if s.points < 0 {
			s.points = 0
		}
	}
}

func (s *Service) Points() int {
	return s.points
}

// Inventory returns a copy of the purchase history, oldest first.
func (s *Service) Inventory() []PurchaseRecord {
	out := make([]PurchaseRecord, len(s.inventory))
	copy(out, s.inventory)
	return out
}

// Upgrades returns a copy of the owned-upgrade flags.
func (s *Service) Upgrades() map[string]bool {
	out := make(map[string]bool, len(s.upgrades))
	for k, v := range s.upgrades {
		out[k] = v
	}
	return out
}

func (s *Service) HasUpgrade(itemID string) bool {
	return s.upgrades[itemID]
}

// CanAfford reports whether the ledger covers the item's cost. Pure; the
// view layer uses it for disabled-state feedback.
func (s *Service) CanAfford(itemID string) bool {
	item, ok := catalog.ItemByID(itemID)
	return ok && s.points >= item.Cost
}

// Purchase debits the ledger, appends an inventory record and sets the
// upgrade flag, all or nothing. Unknown items, already-owned items and
// insufficient funds are refused without any partial effect; purchases are
// idempotent per item.
func (s *Service) Purchase(ctx context.Context, itemID string) (*PurchaseRecord, bool) {
	item, ok := catalog.ItemByID(itemID)
	if !ok {
		return nil, false
	}
	if s.upgrades[item.ID] {
		return nil, false
	}
	if s.points < item.Cost {
		return nil, false
	}

	s.points -= item.Cost
	rec := PurchaseRecord{
		ID:          uuid.NewString(),
		ItemID:      item.ID,
		Name:        item.Name,
		Emoji:       item.Emoji,
		PurchasedAt: s.nowMs(),
	}
	s.inventory = append(s.inventory, rec)
	s.upgrades[item.ID] = true
	s.commit(ctx)

	c := rec
	return &c, true
}
