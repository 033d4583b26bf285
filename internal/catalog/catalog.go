package catalog

// Static reference data for the board: difficulty tiers and shop items.
// Both tables are immutable; everything else in the app looks values up here.

type TierKey string

const (
	TierXS TierKey = "XS"
	TierS  TierKey = "S"
	TierM  TierKey = "M"
	TierL  TierKey = "L"
	TierXL TierKey = "XL"
)

// DefaultTier is used when user input is missing/invalid.
const DefaultTier TierKey = TierM

type Tier struct {
	Key    TierKey
	Label  string
	Reward int
}

// Tiers are ordered by ascending reward; the position in this slice is the
// tie-break order used by difficulty sorting.
var Tiers = []Tier{
	{Key: TierXS, Label: "Very easy", Reward: 10},
	{Key: TierS, Label: "Easy", Reward: 20},
	{Key: TierM, Label: "Medium", Reward: 40},
	{Key: TierL, Label: "Hard", Reward: 80},
	{Key: TierXL, Label: "Very hard", Reward: 120},
}

func (k TierKey) IsValid() bool {
	for _, t := range Tiers {
		if t.Key == k {
			return true
		}
	}
	return false
}

// TierByKey returns the tier for the key, falling back to the default tier
// for unknown keys.
func TierByKey(k TierKey) Tier {
	for _, t := range Tiers {
		if t.Key == k {
			return t
		}
	}
	return TierByKey(DefaultTier)
}

// TierIndex returns the ordering position of the key (unknown keys rank as
// the default tier).
func TierIndex(k TierKey) int {
	if !k.IsValid() {
		k = DefaultTier
	}
	for i, t := range Tiers {
		if t.Key == k {
			return i
		}
	}
	return 0
}

type ItemKind string

const (
	// KindToggle items flip a persistent display flag once owned.
	KindToggle ItemKind = "toggle"
	// KindUnlock items gate availability of another feature.
	KindUnlock ItemKind = "unlock"
)

type ShopItem struct {
	ID    string
	Name  string
	Emoji string
	Cost  int
	Kind  ItemKind
}

const (
	ItemThemeDark   = "theme_dark"
	ItemRoundPlus   = "round_plus"
	ItemGlassPlus   = "glass_plus"
	ItemShadowPlus  = "shadow_plus"
	ItemConfetti    = "confetti"
	ItemVideoUnlock = "video_unlock"
)

var ShopItems = []ShopItem{
	{ID: ItemThemeDark, Name: "Dark theme", Emoji: "🌙", Cost: 180, Kind: KindToggle},
	{ID: ItemRoundPlus, Name: "Extra rounding", Emoji: "🫧", Cost: 120, Kind: KindToggle},
	{ID: ItemGlassPlus, Name: "Glass cards", Emoji: "🪟", Cost: 140, Kind: KindToggle},
	{ID: ItemShadowPlus, Name: "Soft shadows", Emoji: "☁️", Cost: 100, Kind: KindToggle},
	{ID: ItemConfetti, Name: "Completion confetti", Emoji: "🎉", Cost: 90, Kind: KindToggle},
	{ID: ItemVideoUnlock, Name: "Background video unlock", Emoji: "📽️", Cost: 60, Kind: KindUnlock},
}

func ItemByID(id string) (ShopItem, bool) {
	for _, it := range ShopItems {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}
