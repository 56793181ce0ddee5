// Package memory is an in-process persistence gateway with the same
// uniqueness and atomicity guarantees as the database adapters. Each Store is
// independent; the process picks one at startup.
package memory

import (
	"sort"
	"sync"

	"solar_marketplace/internal/domain/entities"
)

// Store holds every table behind one lock so multi-row writes are atomic.
type Store struct {
	mu sync.RWMutex

	users    map[string]entities.User
	emails   map[string]string
	profiles map[string]entities.Profile

	sessions map[string]entities.Session

	requests   map[string]entities.QuotationRequest
	quotations map[string]entities.VendorQuotation
	pairs      map[string]string

	notifications []entities.Notification
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]entities.User),
		emails:     make(map[string]string),
		profiles:   make(map[string]entities.Profile),
		sessions:   make(map[string]entities.Session),
		requests:   make(map[string]entities.QuotationRequest),
		quotations: make(map[string]entities.VendorQuotation),
		pairs:      make(map[string]string),
	}
}

func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }
func (s *Store) Sessions() *SessionRepository { return &SessionRepository{s: s} }
func (s *Store) Requests() *QuotationRequestRepository { return &QuotationRequestRepository{s: s} }
func (s *Store) Quotations() *VendorQuotationRepository { return &VendorQuotationRepository{s: s} }
func (s *Store) Notifications() *NotificationRepository { return &NotificationRepository{s: s} }

func pairKey(requestID, vendorID string) string {
	return requestID + "#" + vendorID
}

func limitSlice[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func sortRequestsNewestFirst(rs []entities.QuotationRequest) {
	sort.Slice(rs, func(i, j int) bool {
		if !rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].CreatedAt.After(rs[j].CreatedAt)
		}
		return rs[i].ID > rs[j].ID
	})
}

func sortQuotationsNewestFirst(qs []entities.VendorQuotation) {
	sort.Slice(qs, func(i, j int) bool {
		if !qs[i].CreatedAt.Equal(qs[j].CreatedAt) {
			return qs[i].CreatedAt.After(qs[j].CreatedAt)
		}
		return qs[i].ID > qs[j].ID
	})
}
