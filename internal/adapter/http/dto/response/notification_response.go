package response

import (
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Type      string    `json:"type"`
	RelatedID string    `json:"related_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		Type:      string(n.Type),
		RelatedID: n.RelatedID,
		CreatedAt: n.CreatedAt,
	}
}

type FeedResponse struct {
	Items  []NotificationResponse `json:"items"`
	Unread int                    `json:"unread"`
}

func FromFeed(f usecase.Feed) FeedResponse {
	items := make([]NotificationResponse, 0, len(f.Items))
	for _, n := range f.Items {
		items = append(items, FromNotification(n))
	}
	return FeedResponse{Items: items, Unread: f.Unread}
}

type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

type DashboardResponse struct {
	Customers        int                        `json:"customers"`
	Vendors          int                        `json:"vendors"`
	Requests         int                        `json:"requests"`
	Quotations       int                        `json:"quotations"`
	RecentRequests   []QuotationRequestResponse `json:"recent_requests"`
	RecentQuotations []QuotationResponse        `json:"recent_quotations"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		Customers:        d.Customers,
		Vendors:          d.Vendors,
		Requests:         d.Requests,
		Quotations:       d.Quotations,
		RecentRequests:   FromQuotationRequests(d.RecentRequests),
		RecentQuotations: FromQuotations(d.RecentQuotations),
	}
}
