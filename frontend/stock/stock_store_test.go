package stock

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"

	"tecnoreparos/infrastructure/kvstore"
	"tecnoreparos/models"
)

type memKV struct {
	values  map[string]string
	failSet bool
}

func newMemKV() *memKV { return &memKV{values: make(map[string]string)} }

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	if m.failSet {
		return errors.New("kv unavailable")
	}
	m.values[key] = value
	return nil
}

func TestNewStoreSeedsWhenEmpty(t *testing.T) {
	kv := newMemKV()
	store := NewStore(context.Background(), kv)

	if got := len(store.List()); got != 4 {
		t.Fatalf("expected 4 seed items, got %d", got)
	}
	if _, ok := kv.values[kvstore.KeyStockItems]; !ok {
		t.Fatalf("seed was not persisted")
	}
}

func TestNewStoreReseedsOnMalformedData(t *testing.T) {
	kv := newMemKV()
	kv.values[kvstore.KeyStockItems] = "[{broken"

	store := NewStore(context.Background(), kv)
	if got := len(store.List()); got != 4 {
		t.Fatalf("expected seed fallback, got %d items", got)
	}
}

func TestAddAssignsIDAndResortsByName(t *testing.T) {
	store := NewStore(context.Background(), newMemKV())
	before := len(store.List())

	item := store.Add(context.Background(), Draft{Name: "Cabo Flex iPhone", SKU: "IP-FLEX", Quantity: 5, Price: 45.90})
	if item.ID == "" {
		t.Fatalf("id was not assigned")
	}

	list := store.List()
	if len(list) != before+1 {
		t.Fatalf("expected %d items, got %d", before+1, len(list))
	}
	names := make([]string, len(list))
	for i, it := range list {
		names[i] = it.Name
	}
	if !sort.SliceIsSorted(list, func(i, j int) bool { return lessByName(list[i].Name, list[j].Name) }) {
		t.Fatalf("collection not sorted by name after add: %v", names)
	}
}

func TestUpdatePreservesIDAndDoesNotResort(t *testing.T) {
	store := NewStore(context.Background(), newMemKV())
	list := store.List()
	target := list[0]

	// Rename to something that would sort last; position must not change.
	store.Update(context.Background(), models.StockItem{
		ID: target.ID, Name: "zzz renamed", SKU: target.SKU, Quantity: 99, Price: 1.50,
	})

	got := store.List()
	if got[0].ID != target.ID {
		t.Fatalf("update re-sorted the collection")
	}
	if got[0].Name != "zzz renamed" || got[0].Quantity != 99 {
		t.Fatalf("update did not apply: %+v", got[0])
	}
}

func TestUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	store := NewStore(context.Background(), newMemKV())
	before := store.List()

	store.Update(context.Background(), models.StockItem{ID: "missing", Name: "x"})
	if !reflect.DeepEqual(before, store.List()) {
		t.Fatalf("collection changed on unknown-id update")
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	store := NewStore(context.Background(), newMemKV())
	before := len(store.List())

	store.Delete(context.Background(), "st1")
	if got := len(store.List()); got != before-1 {
		t.Fatalf("expected %d items, got %d", before-1, got)
	}

	store.Delete(context.Background(), "missing")
	if got := len(store.List()); got != before-1 {
		t.Fatalf("unknown-id delete changed the collection size")
	}
}

func TestRoundTripAcrossRestart(t *testing.T) {
	kv := newMemKV()
	ctx := context.Background()

	first := NewStore(ctx, kv)
	first.Add(ctx, Draft{Name: "Conector de carga USB-C", SKU: "USBC-CON", Quantity: 12, Price: 35.00})
	want := first.List()

	second := NewStore(ctx, kv)
	if !reflect.DeepEqual(want, second.List()) {
		t.Fatalf("reloaded collection differs from persisted one")
	}
}

func TestPersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	kv := newMemKV()
	store := NewStore(context.Background(), kv)
	kv.failSet = true

	item := store.Add(context.Background(), Draft{Name: "Pasta térmica", SKU: "THERM-01", Quantity: 3, Price: 20.00})
	if _, ok := store.Get(item.ID); !ok {
		t.Fatalf("in-memory state lost after persistence failure")
	}
}

func TestLessByName(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{a: "bateria", b: "Tela", want: true},
		{a: "Tela", b: "bateria", want: false},
		{a: "tela", b: "tela", want: false},
		{a: "Tela", b: "tela", want: true},
	}
	for _, tc := range cases {
		if got := lessByName(tc.a, tc.b); got != tc.want {
			t.Fatalf("lessByName(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
