package engine

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"boardquest/internal/catalog"
	"boardquest/internal/storage"
)

// Persisted state slice keys.
const (
	keyTasks          = "tasks"
	keyPoints         = "points"
	keyInventory      = "inventory"
	keyUpgrades       = "upgrades"
	keyVideoEnabled   = "videoEnabled"
	keyVideoURL       = "videoUrl"
	keyPersistGranted = "persistGranted"
)

// Service owns the board state: the task collection, the points ledger, the
// shop inventory/upgrades, and the host settings. All commands run on a
// single logical writer (the command dispatcher), so no locking is needed;
// queries hand out value copies.
//
// Commands never return errors. Invalid input (empty title, unknown id,
// insufficient funds) is a silent no-op signalled by a nil/false return, and
// persistence failures are absorbed by the storage adapter.
type Service struct {
	store *storage.Store
	log   *zap.Logger
	now   func() time.Time

	tasks     []*Task
	points    int
	inventory []PurchaseRecord
	upgrades  map[string]bool

	videoEnabled   bool
	videoURL       string
	persistGranted bool
}

type Option func(*Service)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService loads every state slice from the store (absent or corrupt
// slices fall back to zero values) and performs the one-shot durability
// negotiation with the host store.
func NewService(ctx context.Context, store *storage.Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		log:      zap.NewNop(),
		now:      time.Now,
		upgrades: map[string]bool{},
	}
	for _, opt := range opts {
		opt(s)
	}

	store.Load(ctx, keyTasks, &s.tasks)
	store.Load(ctx, keyPoints, &s.points)
	store.Load(ctx, keyInventory, &s.inventory)
	store.Load(ctx, keyUpgrades, &s.upgrades)
	if s.upgrades == nil {
		s.upgrades = map[string]bool{}
	}
	store.Load(ctx, keyVideoEnabled, &s.videoEnabled)
	store.Load(ctx, keyVideoURL, &s.videoURL)
	store.Load(ctx, keyPersistGranted, &s.persistGranted)

	if granted := store.RequestDurable(ctx); granted != s.persistGranted {
		s.persistGranted = granted
		store.Save(ctx, keyPersistGranted, granted)
	}

	return s
}

func (s *Service) nowMs() int64 {
	return s.now().UnixMilli()
}

// commit snapshots every gamification slice in one transaction. Fire and
// forget: the in-memory state stays authoritative either way.
func (s *Service) commit(ctx context.Context) {
	s.store.SaveAll(ctx, map[string]any{
		keyTasks:     s.tasks,
		keyPoints:    s.points,
		keyInventory: s.inventory,
		keyUpgrades:  s.upgrades,
	})
}

func (s *Service) find(id string) *Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Task returns a copy of the task with the given id, or nil.
func (s *Service) Task(id string) *Task {
	t := s.find(id)
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// ResetAll clears tasks, points, inventory and upgrades together in one
// snapshot. Irreversible; confirmation is the caller's job. Host settings
// (video, persistGranted) survive.
func (s *Service) ResetAll(ctx context.Context) {
	s.tasks = nil
	s.points = 0
	s.inventory = nil
	s.upgrades = map[string]bool{}
	s.commit(ctx)
}

func (s *Service) VideoEnabled() bool   { return s.videoEnabled }
func (s *Service) VideoURL() string     { return s.videoURL }
func (s *Service) PersistGranted() bool { return s.persistGranted }

// SetVideoEnabled flips the background-video setting. Enabling requires the
// video unlock to be owned; without it the call is a refused no-op.
func (s *Service) SetVideoEnabled(ctx context.Context, on bool) bool {
	if on && !s.upgrades[catalog.ItemVideoUnlock] {
		return false
	}
	s.videoEnabled = on
	s.store.Save(ctx, keyVideoEnabled, on)
	return true
}

func (s *Service) SetVideoURL(ctx context.Context, url string) {
	s.videoURL = strings.TrimSpace(url)
	s.store.Save(ctx, keyVideoURL, s.videoURL)
}
