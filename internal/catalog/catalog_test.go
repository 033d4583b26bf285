package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiersOrderedByAscendingReward(t *testing.T) {
	require.NotEmpty(t, Tiers)
	for i := 1; i < len(Tiers); i++ {
		assert.Greater(t, Tiers[i].Reward, Tiers[i-1].Reward,
			"tier %s must out-reward %s", Tiers[i].Key, Tiers[i-1].Key)
	}
	for _, tier := range Tiers {
		assert.Positive(t, tier.Reward)
		assert.NotEmpty(t, tier.Label)
	}
}

func TestTierByKeyFallsBackToDefault(t *testing.T) {
	assert.Equal(t, 80, TierByKey(TierL).Reward)
	assert.Equal(t, TierByKey(DefaultTier), TierByKey("XXL"))
	assert.True(t, DefaultTier.IsValid())
	assert.False(t, TierKey("xs").IsValid(), "keys are case sensitive")
}

func TestTierIndexOrdering(t *testing.T) {
	assert.Less(t, TierIndex(TierXS), TierIndex(TierXL))
	// Unknown keys rank as the default tier.
	assert.Equal(t, TierIndex(DefaultTier), TierIndex("nope"))
}

func TestShopItems(t *testing.T) {
	unlocks := 0
	seen := map[string]bool{}
	for _, item := range ShopItems {
		assert.Positive(t, item.Cost, "item %s", item.ID)
		assert.False(t, seen[item.ID], "duplicate item id %s", item.ID)
		seen[item.ID] = true
		if item.Kind == KindUnlock {
			unlocks++
		} else {
			assert.Equal(t, KindToggle, item.Kind, "item %s", item.ID)
		}
	}
	assert.Equal(t, 1, unlocks, "exactly one unlock item exists")

	video, ok := ItemByID(ItemVideoUnlock)
	require.True(t, ok)
	assert.Equal(t, KindUnlock, video.Kind)

	_, ok = ItemByID("jetpack")
	assert.False(t, ok)
}
