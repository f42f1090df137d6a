package orders

import (
	"testing"

	"tecnoreparos/models"
)

func sampleOrders() []models.ServiceOrder {
	return []models.ServiceOrder{
		{ID: "a1", ClientName: "João Silva", Device: "Laptop Dell", Status: models.StatusPending, CreatedAt: "2023-10-26T10:00:00Z"},
		{ID: "b2", ClientName: "Maria Oliveira", Device: "iPhone 12", Status: models.StatusCompleted, CreatedAt: "2023-10-25T14:30:00Z"},
		{ID: "c3", ClientName: "Carlos Pereira", Device: "Galaxy S21", Status: models.StatusCancelled, CreatedAt: "2023-10-20T09:00:00Z"},
		{ID: "d4", ClientName: "Ana Dias", Device: "iPhone 13", Status: models.StatusCompleted, CreatedAt: "2023-10-27T08:00:00Z"},
	}
}

func TestFilterByStatus(t *testing.T) {
	got := FilterAndSort(sampleOrders(), Query{Status: "completed"})
	if len(got) != 2 {
		t.Fatalf("expected 2 completed orders, got %d", len(got))
	}
	for _, o := range got {
		if o.Status != models.StatusCompleted {
			t.Fatalf("non-completed order %s in result", o.ID)
		}
	}
}

func TestFilterAllKeepsEverything(t *testing.T) {
	for _, status := range []string{"all", ""} {
		if got := FilterAndSort(sampleOrders(), Query{Status: status}); len(got) != 4 {
			t.Fatalf("status=%q: expected all 4 orders, got %d", status, len(got))
		}
	}
}

func TestSearchMatchesClientDeviceAndID(t *testing.T) {
	cases := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "client name, case-insensitive", search: "JOÃO", want: []string{"a1"}},
		{name: "device substring", search: "iphone", want: []string{"d4", "b2"}},
		{name: "id", search: "c3", want: []string{"c3"}},
		{name: "whitespace only means no filter", search: "   ", want: []string{"d4", "a1", "b2", "c3"}},
		{name: "no match", search: "zzz", want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterAndSort(sampleOrders(), Query{Status: "all", Search: tc.search})
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d results, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestSortNewestAndOldest(t *testing.T) {
	newest := FilterAndSort(sampleOrders(), Query{Status: "all", Sort: "newest"})
	for i := 1; i < len(newest); i++ {
		if createdAt(newest[i-1]).Before(createdAt(newest[i])) {
			t.Fatalf("newest sort violated at position %d", i)
		}
	}

	oldest := FilterAndSort(sampleOrders(), Query{Status: "all", Sort: "oldest"})
	for i := 1; i < len(oldest); i++ {
		if createdAt(oldest[i-1]).After(createdAt(oldest[i])) {
			t.Fatalf("oldest sort violated at position %d", i)
		}
	}
}

func TestSortTiesAreStable(t *testing.T) {
	in := []models.ServiceOrder{
		{ID: "first", CreatedAt: "2023-10-26T10:00:00Z", Status: models.StatusPending},
		{ID: "second", CreatedAt: "2023-10-26T10:00:00Z", Status: models.StatusPending},
	}
	got := FilterAndSort(in, Query{Status: "all", Sort: "newest"})
	if got[0].ID != "first" || got[1].ID != "second" {
		t.Fatalf("tie order not stable: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestInputSliceIsNotMutated(t *testing.T) {
	in := sampleOrders()
	FilterAndSort(in, Query{Status: "all", Sort: "oldest"})
	if in[0].ID != "a1" || in[3].ID != "d4" {
		t.Fatalf("input slice was reordered")
	}
}
