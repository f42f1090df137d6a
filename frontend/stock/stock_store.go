package stock

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tecnoreparos/infrastructure/kvstore"
	"tecnoreparos/models"
)

// Draft carries the caller-provided fields of a stock item; the id is
// assigned by the store.
type Draft struct {
	Name     string
	SKU      string
	Quantity int
	Price    float64
}

// Store owns the in-memory stock collection, kept sorted by name, and
// mirrors every mutation to the key-value store. No timestamp bookkeeping:
// stock items carry none.
type Store struct {
	mu    sync.RWMutex
	kv    kvstore.Store
	items []models.StockItem
}

// NewStore loads the persisted collection, falling back to the seed set on
// absence or unreadable data and persisting the seed immediately.
func NewStore(ctx context.Context, kv kvstore.Store) *Store {
	s := &Store{kv: kv}
	s.items = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) []models.StockItem {
	raw, ok, err := s.kv.Get(ctx, kvstore.KeyStockItems)
	if err != nil {
		slog.Warn("read stock items from kv failed", slog.Any("err", err))
	} else if ok {
		var loaded []models.StockItem
		if err := json.Unmarshal([]byte(raw), &loaded); err == nil {
			return loaded
		}
		slog.Warn("malformed stock items in kv, reseeding", slog.Any("err", err))
	}

	seed := seedItems()
	if err := s.persistValue(ctx, seed); err != nil {
		slog.Error("persist seed stock items failed", slog.Any("err", err))
	}
	return seed
}

// List returns a snapshot copy.
func (s *Store) List() []models.StockItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StockItem, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (models.StockItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.StockItem{}, false
}

// Add assigns a fresh id, inserts the item and re-sorts the collection by
// name ascending before persisting.
func (s *Store) Add(ctx context.Context, draft Draft) models.StockItem {
	item := models.StockItem{
		ID:       uuid.NewString(),
		Name:     draft.Name,
		SKU:      draft.SKU,
		Quantity: draft.Quantity,
		Price:    draft.Price,
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	sort.SliceStable(s.items, func(i, j int) bool {
		return lessByName(s.items[i].Name, s.items[j].Name)
	})
	s.persistLocked(ctx)
	s.mu.Unlock()
	return item
}

// Update replaces the entry matching item.ID in place; no re-sort, so a
// renamed item keeps its position until the next add. Unknown ids are a
// silent no-op.
func (s *Store) Update(ctx context.Context, item models.StockItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if existing.ID == item.ID {
			s.items[i] = item
			s.persistLocked(ctx)
			return
		}
	}
}

// Delete removes the entry with the given id. Unknown ids are a silent no-op.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if existing.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

func (s *Store) persistLocked(ctx context.Context) {
	if err := s.persistValue(ctx, s.items); err != nil {
		slog.Error("persist stock items failed", slog.Any("err", err))
	}
}

func (s *Store) persistValue(ctx context.Context, items []models.StockItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, kvstore.KeyStockItems, string(raw))
}

// lessByName orders part names the way a person scanning the list expects:
// case-insensitively, with the raw comparison as tiebreak.
func lessByName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// seedItems is the fixed example inventory used when no persisted
// collection exists yet.
func seedItems() []models.StockItem {
	return []models.StockItem{
		{ID: "st1", Name: "Tela de iPhone 12", SKU: "IP12-SCR", Quantity: 15, Price: 550.00},
		{ID: "st2", Name: "Bateria Samsung S20", SKU: "SAM20-BAT", Quantity: 8, Price: 250.00},
		{ID: "st3", Name: "SSD 240GB Kingston", SKU: "KNG-SSD-240", Quantity: 22, Price: 180.50},
		{ID: "st4", Name: "Memória RAM 8GB DDR4", SKU: "CRU-DDR4-8", Quantity: 30, Price: 210.00},
	}
}
