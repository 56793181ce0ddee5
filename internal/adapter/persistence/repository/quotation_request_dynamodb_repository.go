package repository

import (
	"context"
	"errors"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type requestItem struct {
	ID          string `dynamodbav:"id"`
	CustomerID  string `dynamodbav:"customer_id"`
	Address     string `dynamodbav:"address"`
	DeviceCount int    `dynamodbav:"device_count"`
	MonthlyBill string `dynamodbav:"monthly_bill"`
	Notes       string `dynamodbav:"notes,omitempty"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// QuotationRequestDynamoRepository persists customer requests.
type QuotationRequestDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IQuotationRequestRepository = (*QuotationRequestDynamoRepository)(nil)

func NewQuotationRequestDynamoRepository(ddb DynamoAPI, tables Tables) *QuotationRequestDynamoRepository {
	return &QuotationRequestDynamoRepository{ddb: ddb, tables: tables}
}

// Create checks the owning customer exists in the same transaction as the put.
func (r *QuotationRequestDynamoRepository) Create(ctx context.Context, q entities.QuotationRequest) (entities.QuotationRequest, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(q))
	if err != nil {
		return entities.QuotationRequest{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{ConditionCheck: &types.ConditionCheck{
				TableName:                aws.String(r.tables.Users),
				Key:                      stringKey("id", q.CustomerID),
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Requests),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		return entities.QuotationRequest{}, txError(err, map[int]error{0: interfaces.ErrParentNotFound, 1: interfaces.ErrDuplicate})
	}
	return q, nil
}

func (r *QuotationRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuotationRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Requests),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuotationRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuotationRequest{}, nil
	}
	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuotationRequest{}, err
	}
	return fromRequestItem(it), nil
}

func (r *QuotationRequestDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.QuotationRequest, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tables.Requests),
		IndexName:                 aws.String(customerIDIndex),
		KeyConditionExpression:    aws.String("#customer_id = :customer_id"),
		ExpressionAttributeNames:  map[string]string{"#customer_id": "customer_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":customer_id": str(customerID)},
		ScanIndexForward:          aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return requestsFromItems(items, 0)
}

func (r *QuotationRequestDynamoRepository) ListByStatuses(ctx context.Context, statuses []entities.RequestStatus) ([]entities.QuotationRequest, error) {
	var all []map[string]types.AttributeValue
	for _, s := range statuses {
		items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tables.Requests),
			IndexName:                 aws.String(statusIndex),
			KeyConditionExpression:    aws.String("#status = :status"),
			ExpressionAttributeNames:  map[string]string{"#status": "status"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":status": str(string(s))},
		})
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	return requestsFromItems(all, 0)
}

func (r *QuotationRequestDynamoRepository) ListAll(ctx context.Context, limit int) ([]entities.QuotationRequest, error) {
	items, err := scanAll(ctx, r.ddb, r.tables.Requests)
	if err != nil {
		return nil, err
	}
	return requestsFromItems(items, limit)
}

func (r *QuotationRequestDynamoRepository) Count(ctx context.Context) (int, error) {
	return scanCount(ctx, r.ddb, r.tables.Requests)
}

func (r *QuotationRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, from []entities.RequestStatus, to entities.RequestStatus) (entities.QuotationRequest, error) {
	cond, values := statusIn("from", from)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Requests),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND " + cond),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: mergeValues(values, map[string]types.AttributeValue{
			":to":         str(string(to)),
			":updated_at": str(formatTime(time.Now())),
		}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.QuotationRequest{}, nil
			}
			return entities.QuotationRequest{}, interfaces.ErrConditionFailed
		}
		return entities.QuotationRequest{}, err
	}
	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuotationRequest{}, err
	}
	return fromRequestItem(it), nil
}

func requestsFromItems(items []map[string]types.AttributeValue, n int) ([]entities.QuotationRequest, error) {
	var its []requestItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.QuotationRequest, 0, len(its))
	for _, it := range its {
		out = append(out, fromRequestItem(it))
	}
	newestFirst(out, func(q entities.QuotationRequest) time.Time { return q.CreatedAt }, func(q entities.QuotationRequest) string { return q.ID })
	return firstN(out, n), nil
}

func toRequestItem(q entities.QuotationRequest) requestItem {
	return requestItem{
		ID:          q.ID,
		CustomerID:  q.CustomerID,
		Address:     q.Address,
		DeviceCount: q.DeviceCount,
		MonthlyBill: floatToString(q.MonthlyBill),
		Notes:       q.Notes,
		Status:      string(q.Status),
		CreatedAt:   formatTime(q.CreatedAt),
		UpdatedAt:   formatTime(q.UpdatedAt),
	}
}

func fromRequestItem(it requestItem) entities.QuotationRequest {
	return entities.QuotationRequest{
		ID:          it.ID,
		CustomerID:  it.CustomerID,
		Address:     it.Address,
		DeviceCount: it.DeviceCount,
		MonthlyBill: parseFloat(it.MonthlyBill),
		Notes:       it.Notes,
		Status:      entities.RequestStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
