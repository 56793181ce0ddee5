package repository

import (
	"context"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxTransactItems is the DynamoDB limit per TransactWriteItems call.
const maxTransactItems = 100

type notificationItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Title     string `dynamodbav:"title"`
	Message   string `dynamodbav:"message"`
	Read      bool   `dynamodbav:"read"`
	Type      string `dynamodbav:"type"`
	RelatedID string `dynamodbav:"related_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists the per-user notification feed.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
type NotificationDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb DynamoAPI, tables Tables) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{ddb: ddb, tables: tables}
}

func (r *NotificationDynamoRepository) CreateMany(ctx context.Context, ns []entities.Notification) error {
	for start := 0; start < len(ns); start += maxTransactItems {
		end := min(start+maxTransactItems, len(ns))
		items := make([]types.TransactWriteItem, 0, end-start)
		for _, n := range ns[start:end] {
			av, err := attributevalue.MarshalMap(toNotificationItem(n))
			if err != nil {
				return err
			}
			items = append(items, types.TransactWriteItem{Put: &types.Put{
				TableName:                aws.String(r.tables.Notifications),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}})
		}
		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
			return txError(err, nil)
		}
	}
	return nil
}

func (r *NotificationDynamoRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]entities.Notification, error) {
	in := r.userQuery(userID)
	in.ScanIndexForward = aws.Bool(false)
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}
	// One page is enough: the index is sorted newest first and Limit caps it.
	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	var its []notificationItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &its); err != nil {
		return nil, err
	}
	ns := make([]entities.Notification, 0, len(its))
	for _, it := range its {
		ns = append(ns, fromNotificationItem(it))
	}
	newestFirst(ns, func(n entities.Notification) time.Time { return n.CreatedAt }, func(n entities.Notification) string { return n.ID })
	return firstN(ns, limit), nil
}

func (r *NotificationDynamoRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	in := r.userQuery(userID)
	in.FilterExpression = aws.String("#read = :unread")
	in.ExpressionAttributeNames["#read"] = "read"
	in.ExpressionAttributeValues[":unread"] = &types.AttributeValueMemberBOOL{Value: false}
	return queryCount(ctx, r.ddb, in)
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id, userID string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Notifications),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #user_id = :user_id"),
		UpdateExpression:    aws.String("SET #read = :read"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#user_id": "user_id",
			"#read":    "read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": str(userID),
			":read":    &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *NotificationDynamoRepository) userQuery(userID string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:                 aws.String(r.tables.Notifications),
		IndexName:                 aws.String(userIDIndex),
		KeyConditionExpression:    aws.String("#user_id = :user_id"),
		ExpressionAttributeNames:  map[string]string{"#user_id": "user_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":user_id": str(userID)},
	}
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:        n.ID,
		UserID:    n.RecipientID,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		Type:      string(n.Type),
		RelatedID: n.RelatedID,
		CreatedAt: formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:          it.ID,
		RecipientID: it.UserID,
		Title:       it.Title,
		Message:     it.Message,
		Read:        it.Read,
		Type:        entities.NotificationType(it.Type),
		RelatedID:   it.RelatedID,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
