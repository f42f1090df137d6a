package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"tecnoreparos/infrastructure/kvstore"
	"tecnoreparos/models"
)

// ErrTooManyImages is returned when an attachment would push an order past
// the image limit.
var ErrTooManyImages = errors.New("service order image limit exceeded")

// Draft carries the caller-provided fields of a service order; id and
// timestamps are assigned by the store.
type Draft struct {
	ClientName       string
	Device           string
	IssueDescription string
	Status           models.Status
	Images           []string
}

// Store owns the in-memory service order collection for the lifetime of the
// process and mirrors every mutation to the key-value store. The in-memory
// slice is authoritative; a failed persist is logged and the session
// continues on memory alone.
type Store struct {
	mu     sync.RWMutex
	kv     kvstore.Store
	orders []models.ServiceOrder
}

// NewStore loads the persisted collection, falling back to the seed set when
// the key is absent or unreadable. The seed is persisted immediately so the
// next start sees it.
func NewStore(ctx context.Context, kv kvstore.Store) *Store {
	s := &Store{kv: kv}
	s.orders = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) []models.ServiceOrder {
	raw, ok, err := s.kv.Get(ctx, kvstore.KeyServiceOrders)
	if err != nil {
		slog.Warn("read service orders from kv failed", slog.Any("err", err))
	} else if ok {
		var loaded []models.ServiceOrder
		if err := json.Unmarshal([]byte(raw), &loaded); err == nil {
			return loaded
		}
		slog.Warn("malformed service orders in kv, reseeding", slog.Any("err", err))
	}

	seed := seedOrders()
	if err := s.persistValue(ctx, seed); err != nil {
		slog.Error("persist seed service orders failed", slog.Any("err", err))
	}
	return seed
}

// List returns a snapshot copy in insertion order (newest first).
func (s *Store) List() []models.ServiceOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ServiceOrder, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get returns the order with the given id.
func (s *Store) Get(id string) (models.ServiceOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.ServiceOrder{}, false
}

// Add assigns a fresh id, stamps createdAt = updatedAt = now, prepends the
// order and persists.
func (s *Store) Add(ctx context.Context, draft Draft) models.ServiceOrder {
	now := isoNow()
	order := models.ServiceOrder{
		ID:               uuid.NewString(),
		ClientName:       draft.ClientName,
		Device:           draft.Device,
		IssueDescription: draft.IssueDescription,
		Status:           draft.Status,
		CreatedAt:        now,
		UpdatedAt:        now,
		Images:           draft.Images,
	}

	s.mu.Lock()
	s.orders = append([]models.ServiceOrder{order}, s.orders...)
	s.persistLocked(ctx)
	s.mu.Unlock()
	return order
}

// Update replaces the entry matching order.ID, keeping the stored createdAt
// and refreshing updatedAt. Unknown ids are a silent no-op.
func (s *Store) Update(ctx context.Context, order models.ServiceOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.orders {
		if existing.ID == order.ID {
			order.CreatedAt = existing.CreatedAt
			order.UpdatedAt = isoNow()
			s.orders[i] = order
			s.persistLocked(ctx)
			return
		}
	}
}

// Delete removes the entry with the given id. Unknown ids are a silent no-op.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.orders {
		if existing.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

// AttachImages appends encoded images to an order. The whole addition is
// rejected when it would push the order past models.MaxOrderImages; the
// order is left untouched in that case.
func (s *Store) AttachImages(ctx context.Context, id string, images []string) error {
	if len(images) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.orders {
		if existing.ID != id {
			continue
		}
		if len(existing.Images)+len(images) > models.MaxOrderImages {
			return ErrTooManyImages
		}
		existing.Images = append(existing.Images, images...)
		existing.UpdatedAt = isoNow()
		s.orders[i] = existing
		s.persistLocked(ctx)
		return nil
	}
	return nil
}

// RemoveImage drops the image at index from an order; out-of-range indexes
// and unknown ids are no-ops.
func (s *Store) RemoveImage(ctx context.Context, id string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.orders {
		if existing.ID != id {
			continue
		}
		if index < 0 || index >= len(existing.Images) {
			return
		}
		existing.Images = append(existing.Images[:index], existing.Images[index+1:]...)
		existing.UpdatedAt = isoNow()
		s.orders[i] = existing
		s.persistLocked(ctx)
		return
	}
}

// persistLocked mirrors the whole collection to the kv store. O(collection)
// per mutation, fine at this scale.
func (s *Store) persistLocked(ctx context.Context) {
	if err := s.persistValue(ctx, s.orders); err != nil {
		slog.Error("persist service orders failed", slog.Any("err", err))
	}
}

func (s *Store) persistValue(ctx context.Context, orders []models.ServiceOrder) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, kvstore.KeyServiceOrders, string(raw))
}

func isoNow() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// seedOrders is the fixed example set used when no persisted collection
// exists yet.
func seedOrders() []models.ServiceOrder {
	return []models.ServiceOrder{
		{
			ID:               "1",
			ClientName:       "João Silva",
			Device:           "Laptop Dell Inspiron 15",
			IssueDescription: "Não liga, sem sinal de energia.",
			Status:           models.StatusPending,
			CreatedAt:        "2023-10-26T10:00:00Z",
			UpdatedAt:        "2023-10-26T10:00:00Z",
		},
		{
			ID:               "2",
			ClientName:       "Maria Oliveira",
			Device:           "iPhone 12 Pro",
			IssueDescription: "Tela quebrada após queda.",
			Status:           models.StatusInProgress,
			CreatedAt:        "2023-10-25T14:30:00Z",
			UpdatedAt:        "2023-10-27T11:00:00Z",
		},
		{
			ID:               "3",
			ClientName:       "Carlos Pereira",
			Device:           "Samsung Galaxy S21",
			IssueDescription: "Bateria não segura carga.",
			Status:           models.StatusCompleted,
			CreatedAt:        "2023-10-20T09:00:00Z",
			UpdatedAt:        "2023-10-24T17:00:00Z",
		},
	}
}
