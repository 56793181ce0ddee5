package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"solar_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// Tables names every DynamoDB table the gateway touches.
//
// Table requirements:
//   - users: PK id, GSI role-index (PK role, SK created_at)
//   - user_emails: PK email
//   - profiles: PK id
//   - sessions: PK token (TTL attribute: expires_at_epoch)
//   - quotation_requests: PK id, GSIs customer_id-index and status-index (SK created_at)
//   - vendor_quotations: PK id, GSIs request_id-index and vendor_id-index (SK created_at)
//   - quotation_pairs: PK pair (request_id#vendor_id)
//   - notifications: PK id, GSI user_id-index (SK created_at)
type Tables struct {
	Users          string
	UserEmails     string
	Profiles       string
	Sessions       string
	Requests       string
	Quotations     string
	QuotationPairs string
	Notifications  string
}

func DefaultTables() Tables {
	return Tables{
		Users:          "users",
		UserEmails:     "user_emails",
		Profiles:       "profiles",
		Sessions:       "sessions",
		Requests:       "quotation_requests",
		Quotations:     "vendor_quotations",
		QuotationPairs: "quotation_pairs",
		Notifications:  "notifications",
	}
}

const (
	roleIndex       = "role-index"
	customerIDIndex = "customer_id-index"
	statusIndex     = "status-index"
	requestIDIndex  = "request_id-index"
	vendorIDIndex   = "vendor_id-index"
	userIDIndex     = "user_id-index"

	codeConditionalCheckFailed = "ConditionalCheckFailed"
)

// timeLayout has a fixed-width fraction so created_at sort keys order lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{name: &types.AttributeValueMemberS{Value: value}}
}

func str(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func mergeValues(a, b map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// statusIn builds "#status IN (:prefix0, :prefix1, ...)" for a conditional write.
func statusIn[S ~string](prefix string, statuses []S) (string, map[string]types.AttributeValue) {
	placeholders := make([]string, 0, len(statuses))
	values := make(map[string]types.AttributeValue, len(statuses))
	for i, s := range statuses {
		ph := fmt.Sprintf(":%s%d", prefix, i)
		placeholders = append(placeholders, ph)
		values[ph] = str(string(s))
	}
	return "#status IN (" + strings.Join(placeholders, ", ") + ")", values
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// cancelledAt reports which transaction items failed their condition.
// ok is false when err is not a cancelled transaction.
func cancelledAt(err error) (failed map[int]types.CancellationReason, ok bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return nil, false
	}
	failed = make(map[int]types.CancellationReason)
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == codeConditionalCheckFailed {
			failed[i] = reason
		}
	}
	return failed, true
}

// txError maps a cancelled transaction to a port error using a per-item
// table; unmapped cancellations (throttling, conflicts) stay as is.
func txError(err error, byItem map[int]error) error {
	failed, ok := cancelledAt(err)
	if !ok {
		return err
	}
	idx := make([]int, 0, len(byItem))
	for i := range byItem {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	for _, i := range idx {
		if _, hit := failed[i]; hit {
			return byItem[i]
		}
	}
	if len(failed) > 0 {
		return interfaces.ErrConditionFailed
	}
	return err
}

func queryAll(ctx context.Context, ddb DynamoAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
	}
	return items, nil
}

func queryCount(ctx context.Context, ddb DynamoAPI, in *dynamodb.QueryInput) (int, error) {
	in.Select = types.SelectCount
	n := 0
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		n += int(out.Count)
	}
	return n, nil
}

func scanAll(ctx context.Context, ddb DynamoAPI, table string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{TableName: aws.String(table)})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
	}
	return items, nil
}

func scanCount(ctx context.Context, ddb DynamoAPI, table string) (int, error) {
	n := 0
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{TableName: aws.String(table), Select: types.SelectCount})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		n += int(out.Count)
	}
	return n, nil
}

// newestFirst sorts by created_at descending, then id descending.
func newestFirst[T any](items []T, createdAt func(T) time.Time, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		a, b := createdAt(items[i]), createdAt(items[j])
		if !a.Equal(b) {
			return a.After(b)
		}
		return id(items[i]) > id(items[j])
	})
}

func firstN[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
