package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event subjects, relative to the publisher's prefix.
const (
	SubjectRequestCreated     = "request.created"
	SubjectQuotationSubmitted = "quotation.submitted"
	subjectQuotationPrefix    = "quotation."
)

// INotifier fans domain writes out to the notification feed and the event
// broker. Every method is best-effort: failures are logged and counted, never
// returned, so the primary write always stands.
type INotifier interface {
	RequestCreated(ctx context.Context, r entities.QuotationRequest)
	QuotationSubmitted(ctx context.Context, r entities.QuotationRequest, q entities.VendorQuotation, companyName string)
	QuotationDecided(ctx context.Context, r entities.QuotationRequest, q entities.VendorQuotation)
}

type Notifier struct {
	users         interfaces.IUserRepository
	notifications interfaces.INotificationRepository
	events        interfaces.IEventPublisher
	recorder      ActivityRecorder
	log           *zap.SugaredLogger
	now           func() time.Time
}

var _ INotifier = (*Notifier)(nil)

func NewNotifier(users interfaces.IUserRepository, notifications interfaces.INotificationRepository, events interfaces.IEventPublisher, recorder ActivityRecorder, log *zap.SugaredLogger) *Notifier {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &Notifier{
		users:         users,
		notifications: notifications,
		events:        events,
		recorder:      recorder,
		log:           log.With("component", "usecase.notifier"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (n *Notifier) RequestCreated(ctx context.Context, r entities.QuotationRequest) {
	n.publish(ctx, SubjectRequestCreated, r)

	vendors, err := n.users.ListByRole(ctx, entities.RoleVendor, true)
	if err != nil {
		n.fail("list vendors", r.ID, err)
		return
	}
	if len(vendors) == 0 {
		return
	}

	msg := fmt.Sprintf("A new quotation request has been submitted for a property with a monthly electricity bill of $%s. Click to view details and submit your quotation.",
		strconv.FormatFloat(r.MonthlyBill, 'f', -1, 64))
	batch := make([]entities.Notification, 0, len(vendors))
	for _, v := range vendors {
		batch = append(batch, n.build(v.ID, "New Quotation Request", msg, entities.NotificationNewRequest, r.ID))
	}
	if err := n.notifications.CreateMany(ctx, batch); err != nil {
		n.fail("notify vendors", r.ID, err)
		return
	}
	n.log.Infow("vendors notified", "request_id", r.ID, "count", len(batch))
}

func (n *Notifier) QuotationSubmitted(ctx context.Context, r entities.QuotationRequest, q entities.VendorQuotation, companyName string) {
	n.publish(ctx, SubjectQuotationSubmitted, q)

	if companyName == "" {
		companyName = "A vendor"
	}
	note := n.build(r.CustomerID, "New Quotation Received",
		fmt.Sprintf("%s has submitted a quotation for your request. Click to view details.", companyName),
		entities.NotificationNewQuotation, q.ID)
	if err := n.notifications.CreateMany(ctx, []entities.Notification{note}); err != nil {
		n.fail("notify customer", q.ID, err)
	}
}

func (n *Notifier) QuotationDecided(ctx context.Context, r entities.QuotationRequest, q entities.VendorQuotation) {
	n.publish(ctx, subjectQuotationPrefix+string(q.Status), q)

	var title, msg string
	switch q.Status {
	case entities.QuotationStatusAccepted:
		title = "Quotation Accepted"
		msg = fmt.Sprintf("Your quotation for the property at %s has been accepted by the customer.", r.Address)
	case entities.QuotationStatusRejected:
		title = "Quotation Rejected"
		msg = fmt.Sprintf("Your quotation for the property at %s was not selected by the customer.", r.Address)
	default:
		return
	}
	note := n.build(q.VendorID, title, msg, entities.NotificationSystem, q.ID)
	if err := n.notifications.CreateMany(ctx, []entities.Notification{note}); err != nil {
		n.fail("notify vendor", q.ID, err)
	}
}

func (n *Notifier) build(recipient, title, msg string, typ entities.NotificationType, relatedID string) entities.Notification {
	return entities.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipient,
		Title:       title,
		Message:     msg,
		Type:        typ,
		RelatedID:   relatedID,
		CreatedAt:   n.now(),
	}
}

func (n *Notifier) publish(ctx context.Context, subject string, payload any) {
	if n.events == nil {
		return
	}
	if err := n.events.Publish(ctx, subject, payload); err != nil {
		n.log.Warnw("event publish failed", "subject", subject, "error", err)
	}
}

func (n *Notifier) fail(step, relatedID string, err error) {
	n.recorder.NotificationFailed()
	n.log.Warnw("notification failed", "step", step, "related_id", relatedID, "error", err)
}
