package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Status is the lifecycle state of a service order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// MaxOrderImages caps the number of image attachments per service order.
const MaxOrderImages = 5

// ServiceOrder is a repair ticket for a client's device.
//
// Serialized as JSON into the key-value store; the field names are the
// wire format and must stay stable.
type ServiceOrder struct {
	ID               string   `json:"id"`
	ClientName       string   `json:"clientName"`
	Device           string   `json:"device"`
	IssueDescription string   `json:"issueDescription"`
	Status           Status   `json:"status"`
	CreatedAt        string   `json:"createdAt"` // ISO 8601
	UpdatedAt        string   `json:"updatedAt"` // ISO 8601
	Images           []string `json:"images,omitempty"`
}

// StockItem is an inventory record for a replacement part.
type StockItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Session is the in-memory record of an authenticated user. Sessions are
// never persisted; a restart logs everyone out.
type Session struct {
	ID        string
	Username  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired returns true when the session expiry time has passed.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// AuditLog captures immutable change history for store mutations.
type AuditLog struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`

	ID         int64     `bun:"id,pk,autoincrement"`
	Username   string    `bun:"username,notnull"`
	Action     string    `bun:"action,notnull"`
	EntityType string    `bun:"entity_type,notnull"`
	EntityID   string    `bun:"entity_id,notnull"`
	BeforeJSON string    `bun:"before_json"`
	AfterJSON  string    `bun:"after_json"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// KVEntry is one persisted key-value row backing the stores and the theme
// preference.
type KVEntry struct {
	bun.BaseModel `bun:"table:kv_entries,alias:kv"`

	Key       string    `bun:"key,pk"`
	Value     string    `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
