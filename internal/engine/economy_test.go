package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardquest/internal/catalog"
)

// earn completes fresh tasks of the given tiers to fund the ledger.
func earn(t *testing.T, svc *Service, tiers ...catalog.TierKey) {
	t.Helper()
	ctx := context.Background()
	for _, tier := range tiers {
		task := mustCreate(t, svc, CreateTaskInput{Title: "earn " + string(tier), Difficulty: tier})
		if _, ok := svc.MoveTask(ctx, task.ID, StatusDone); !ok {
			t.Fatalf("earn move failed")
		}
	}
}

func TestPurchaseInsufficientFundsIsUntouchedNoop(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	earn(t, svc, catalog.TierL, catalog.TierS) // 100 points
	require.Equal(t, 100, svc.Points())

	rec, ok := svc.Purchase(ctx, catalog.ItemThemeDark) // costs 180
	assert.False(t, ok)
	assert.Nil(t, rec)
	assert.Equal(t, 100, svc.Points())
	assert.Empty(t, svc.Inventory())
	assert.False(t, svc.HasUpgrade(catalog.ItemThemeDark))
}

func TestPurchaseDebitsAndRecords(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	earn(t, svc, catalog.TierL, catalog.TierS) // 100 points
	rec, ok := svc.Purchase(ctx, catalog.ItemConfetti) // costs 90

	require.True(t, ok)
	require.NotNil(t, rec)
	assert.Equal(t, catalog.ItemConfetti, rec.ItemID)
	assert.Equal(t, "Completion confetti", rec.Name)
	assert.NotZero(t, rec.PurchasedAt)

	assert.Equal(t, 10, svc.Points())
	require.Len(t, svc.Inventory(), 1)
	assert.True(t, svc.HasUpgrade(catalog.ItemConfetti))
	assert.False(t, svc.CanAfford(catalog.ItemConfetti))
}

func TestPurchaseIdempotentPerItem(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	earn(t, svc, catalog.TierXL, catalog.TierXL) // 240 points
	_, ok := svc.Purchase(ctx, catalog.ItemVideoUnlock)
	require.True(t, ok)
	require.Equal(t, 180, svc.Points())

	// An owned item is refused without a second debit or duplicate record.
	rec, ok := svc.Purchase(ctx, catalog.ItemVideoUnlock)
	assert.False(t, ok)
	assert.Nil(t, rec)
	assert.Equal(t, 180, svc.Points())
	assert.Len(t, svc.Inventory(), 1)
}

func TestPurchaseUnknownItem(t *testing.T) {
	svc, _ := newTestService(t)

	earn(t, svc, catalog.TierXL)
	rec, ok := svc.Purchase(context.Background(), "jetpack")
	assert.False(t, ok)
	assert.Nil(t, rec)
	assert.Equal(t, 120, svc.Points())
}

func TestCanAfford(t *testing.T) {
	svc, _ := newTestService(t)

	assert.False(t, svc.CanAfford(catalog.ItemVideoUnlock))
	assert.False(t, svc.CanAfford("jetpack"))
	earn(t, svc, catalog.TierL) // 80 >= 60
	assert.True(t, svc.CanAfford(catalog.ItemVideoUnlock))
}

func TestVideoSettingGatedByUnlock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.False(t, svc.SetVideoEnabled(ctx, true))
	assert.False(t, svc.VideoEnabled())

	earn(t, svc, catalog.TierL)
	_, ok := svc.Purchase(ctx, catalog.ItemVideoUnlock)
	require.True(t, ok)

	assert.True(t, svc.SetVideoEnabled(ctx, true))
	assert.True(t, svc.VideoEnabled())

	svc.SetVideoURL(ctx, "  https://example.com/calm.mp4  ")
	assert.Equal(t, "https://example.com/calm.mp4", svc.VideoURL())

	// Disabling never needs the unlock.
	assert.True(t, svc.SetVideoEnabled(ctx, false))
	assert.False(t, svc.VideoEnabled())
}
