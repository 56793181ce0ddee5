package entities

import "time"

type NotificationType string

const (
	NotificationNewRequest   NotificationType = "new_request"
	NotificationNewQuotation NotificationType = "new_quotation"
	NotificationSystem       NotificationType = "system"
)

// Notification is created as a side effect of request/quotation writes and
// is never deleted; the recipient may only flip Read.
type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Read        bool             `json:"read"`
	Type        NotificationType `json:"type"`
	RelatedID   string           `json:"related_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}
