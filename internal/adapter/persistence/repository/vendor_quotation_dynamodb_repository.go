package repository

import (
	"context"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/domain/lifecycle"
	"solar_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type quotationItem struct {
	ID                    string `dynamodbav:"id"`
	RequestID             string `dynamodbav:"request_id"`
	VendorID              string `dynamodbav:"vendor_id"`
	Price                 string `dynamodbav:"price"`
	InstallationTimeframe string `dynamodbav:"installation_timeframe"`
	WarrantyPeriod        string `dynamodbav:"warranty_period"`
	DocumentURL           string `dynamodbav:"document_url,omitempty"`
	Notes                 string `dynamodbav:"notes,omitempty"`
	Status                string `dynamodbav:"status"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// pairItem is the uniqueness guard for one quotation per (request, vendor).
type pairItem struct {
	Pair        string `dynamodbav:"pair"`
	QuotationID string `dynamodbav:"quotation_id"`
}

// Transaction item positions used by Create.
const (
	createPairIdx = iota
	createQuotationIdx
	createRequestIdx
	createVendorIdx
)

var acceptingStatuses = []entities.RequestStatus{entities.RequestStatusOpen, entities.RequestStatusInProgress}

// VendorQuotationDynamoRepository persists vendor quotations. Every write that
// touches the parent request runs in one TransactWriteItems call.
type VendorQuotationDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IVendorQuotationRepository = (*VendorQuotationDynamoRepository)(nil)

func NewVendorQuotationDynamoRepository(ddb DynamoAPI, tables Tables) *VendorQuotationDynamoRepository {
	return &VendorQuotationDynamoRepository{ddb: ddb, tables: tables}
}

func pairKey(requestID, vendorID string) string {
	return requestID + "#" + vendorID
}

func (r *VendorQuotationDynamoRepository) Create(ctx context.Context, q entities.VendorQuotation) (entities.VendorQuotation, error) {
	qAV, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.VendorQuotation{}, err
	}
	pAV, err := attributevalue.MarshalMap(pairItem{Pair: pairKey(q.RequestID, q.VendorID), QuotationID: q.ID})
	if err != nil {
		return entities.VendorQuotation{}, err
	}
	accepting, acceptingValues := statusIn("accepting", acceptingStatuses)

	items := make([]types.TransactWriteItem, 4)
	items[createPairIdx] = types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tables.QuotationPairs),
		Item:                     pAV,
		ConditionExpression:      aws.String("attribute_not_exists(#pair)"),
		ExpressionAttributeNames: map[string]string{"#pair": "pair"},
	}}
	items[createQuotationIdx] = types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tables.Quotations),
		Item:                     qAV,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}
	// Setting in_progress again on an in_progress request is a no-op transition.
	items[createRequestIdx] = types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(r.tables.Requests),
		Key:                 stringKey("id", q.RequestID),
		ConditionExpression: aws.String("attribute_exists(#id) AND " + accepting),
		UpdateExpression:    aws.String("SET #status = :in_progress, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: mergeValues(acceptingValues, map[string]types.AttributeValue{
			":in_progress": str(string(entities.RequestStatusInProgress)),
			":updated_at":  str(formatTime(q.CreatedAt)),
		}),
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}}
	items[createVendorIdx] = types.TransactWriteItem{ConditionCheck: &types.ConditionCheck{
		TableName:                aws.String(r.tables.Users),
		Key:                      stringKey("id", q.VendorID),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return entities.VendorQuotation{}, createQuotationError(err)
	}
	return q, nil
}

// createQuotationError reports a missing parent before a closed request, and
// both before a duplicate.
func createQuotationError(err error) error {
	failed, ok := cancelledAt(err)
	if !ok {
		return err
	}
	reqReason, reqFailed := failed[createRequestIdx]
	_, vendorFailed := failed[createVendorIdx]
	_, pairFailed := failed[createPairIdx]
	_, quotationFailed := failed[createQuotationIdx]
	switch {
	case reqFailed && len(reqReason.Item) == 0, vendorFailed:
		return interfaces.ErrParentNotFound
	case reqFailed:
		return interfaces.ErrConditionFailed
	case pairFailed, quotationFailed:
		return interfaces.ErrDuplicate
	case len(failed) > 0:
		return interfaces.ErrConditionFailed
	}
	return err
}

func (r *VendorQuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.VendorQuotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Quotations),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.VendorQuotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.VendorQuotation{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.VendorQuotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *VendorQuotationDynamoRepository) GetByRequestAndVendor(ctx context.Context, requestID, vendorID string) (entities.VendorQuotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.QuotationPairs),
		Key:            stringKey("pair", pairKey(requestID, vendorID)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.VendorQuotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.VendorQuotation{}, nil
	}
	var it pairItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.VendorQuotation{}, err
	}
	return r.GetByID(ctx, it.QuotationID)
}

func (r *VendorQuotationDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.VendorQuotation, error) {
	return r.queryIndex(ctx, requestIDIndex, "request_id", requestID)
}

func (r *VendorQuotationDynamoRepository) ListByVendorID(ctx context.Context, vendorID string) ([]entities.VendorQuotation, error) {
	return r.queryIndex(ctx, vendorIDIndex, "vendor_id", vendorID)
}

func (r *VendorQuotationDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.VendorQuotation, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tables.Quotations),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#k = :v"),
		ExpressionAttributeNames:  map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": str(value)},
		ScanIndexForward:          aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return quotationsFromItems(items, 0)
}

func (r *VendorQuotationDynamoRepository) ListAll(ctx context.Context, limit int) ([]entities.VendorQuotation, error) {
	items, err := scanAll(ctx, r.ddb, r.tables.Quotations)
	if err != nil {
		return nil, err
	}
	return quotationsFromItems(items, limit)
}

func (r *VendorQuotationDynamoRepository) Count(ctx context.Context) (int, error) {
	return scanCount(ctx, r.ddb, r.tables.Quotations)
}

// UpdateStatus moves a quotation and guards its parent in one transaction:
// accepting closes the request, anything else only checks it is not closed.
func (r *VendorQuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, from []entities.QuotationStatus, to entities.QuotationStatus) (entities.VendorQuotation, error) {
	q, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.VendorQuotation{}, err
	}
	if q.ID == "" {
		return entities.VendorQuotation{}, nil
	}

	now := time.Now().UTC()
	cond, fromValues := statusIn("from", from)
	items := []types.TransactWriteItem{
		{Update: &types.Update{
			TableName:           aws.String(r.tables.Quotations),
			Key:                 stringKey("id", id),
			ConditionExpression: aws.String("attribute_exists(#id) AND " + cond),
			UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: mergeValues(fromValues, map[string]types.AttributeValue{
				":to":         str(string(to)),
				":updated_at": str(formatTime(now)),
			}),
		}},
		r.parentGuard(q.RequestID, to, now),
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return entities.VendorQuotation{}, txError(err, map[int]error{0: interfaces.ErrConditionFailed, 1: interfaces.ErrConditionFailed})
	}
	q.Status = to
	q.UpdatedAt = now
	return q, nil
}

func (r *VendorQuotationDynamoRepository) parentGuard(requestID string, to entities.QuotationStatus, now time.Time) types.TransactWriteItem {
	if lifecycle.ClosesRequest(to) {
		accepting, values := statusIn("accepting", acceptingStatuses)
		return types.TransactWriteItem{Update: &types.Update{
			TableName:           aws.String(r.tables.Requests),
			Key:                 stringKey("id", requestID),
			ConditionExpression: aws.String(accepting),
			UpdateExpression:    aws.String("SET #status = :closed, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#status":     "status",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: mergeValues(values, map[string]types.AttributeValue{
				":closed":     str(string(entities.RequestStatusClosed)),
				":updated_at": str(formatTime(now)),
			}),
		}}
	}
	return types.TransactWriteItem{ConditionCheck: &types.ConditionCheck{
		TableName:                 aws.String(r.tables.Requests),
		Key:                       stringKey("id", requestID),
		ConditionExpression:       aws.String("#status <> :closed"),
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":closed": str(string(entities.RequestStatusClosed))},
	}}
}

func quotationsFromItems(items []map[string]types.AttributeValue, n int) ([]entities.VendorQuotation, error) {
	var its []quotationItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.VendorQuotation, 0, len(its))
	for _, it := range its {
		out = append(out, fromQuotationItem(it))
	}
	newestFirst(out, func(q entities.VendorQuotation) time.Time { return q.CreatedAt }, func(q entities.VendorQuotation) string { return q.ID })
	return firstN(out, n), nil
}

func toQuotationItem(q entities.VendorQuotation) quotationItem {
	return quotationItem{
		ID:                    q.ID,
		RequestID:             q.RequestID,
		VendorID:              q.VendorID,
		Price:                 floatToString(q.Price),
		InstallationTimeframe: q.InstallationTimeframe,
		WarrantyPeriod:        q.WarrantyPeriod,
		DocumentURL:           q.DocumentURL,
		Notes:                 q.Notes,
		Status:                string(q.Status),
		CreatedAt:             formatTime(q.CreatedAt),
		UpdatedAt:             formatTime(q.UpdatedAt),
	}
}

func fromQuotationItem(it quotationItem) entities.VendorQuotation {
	return entities.VendorQuotation{
		ID:                    it.ID,
		RequestID:             it.RequestID,
		VendorID:              it.VendorID,
		Price:                 parseFloat(it.Price),
		InstallationTimeframe: it.InstallationTimeframe,
		WarrantyPeriod:        it.WarrantyPeriod,
		DocumentURL:           it.DocumentURL,
		Notes:                 it.Notes,
		Status:                entities.QuotationStatus(it.Status),
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
}
