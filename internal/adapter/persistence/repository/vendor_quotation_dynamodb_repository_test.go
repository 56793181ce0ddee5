package repository

import (
	"context"
	"testing"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuotation() entities.VendorQuotation {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.VendorQuotation{
		ID:                    "q-1",
		RequestID:             "r-1",
		VendorID:              "v-1",
		Price:                 12500.5,
		InstallationTimeframe: "2 weeks",
		WarrantyPeriod:        "10 years",
		Status:                entities.QuotationStatusSubmitted,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func TestVendorQuotationDynamoRepository_Create(t *testing.T) {
	ctx := context.Background()
	oldRequest := map[string]types.AttributeValue{"id": str("r-1"), "status": str("closed")}

	t.Run("writes pair guard, quotation, request promotion and vendor check", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewVendorQuotationDynamoRepository(fake, DefaultTables())

		got, err := repo.Create(ctx, sampleQuotation())
		require.NoError(t, err)
		assert.Equal(t, "q-1", got.ID)

		require.Len(t, fake.transacts, 1)
		items := fake.transacts[0].TransactItems
		require.Len(t, items, 4)
		assert.Equal(t, "quotation_pairs", aws.ToString(items[createPairIdx].Put.TableName))
		assert.Equal(t, "vendor_quotations", aws.ToString(items[createQuotationIdx].Put.TableName))
		assert.Equal(t, "quotation_requests", aws.ToString(items[createRequestIdx].Update.TableName))
		assert.Equal(t, "users", aws.ToString(items[createVendorIdx].ConditionCheck.TableName))

		var pair pairItem
		require.NoError(t, attributevalue.UnmarshalMap(items[createPairIdx].Put.Item, &pair))
		assert.Equal(t, "r-1#v-1", pair.Pair)

		var stored quotationItem
		require.NoError(t, attributevalue.UnmarshalMap(items[createQuotationIdx].Put.Item, &stored))
		assert.Equal(t, "12500.5", stored.Price)
	})

	cases := []struct {
		name   string
		failed map[int]map[string]types.AttributeValue
		want   error
	}{
		{"request missing", map[int]map[string]types.AttributeValue{createRequestIdx: nil}, interfaces.ErrParentNotFound},
		{"request closed", map[int]map[string]types.AttributeValue{createRequestIdx: oldRequest}, interfaces.ErrConditionFailed},
		{"vendor missing", map[int]map[string]types.AttributeValue{createVendorIdx: nil}, interfaces.ErrParentNotFound},
		{"already quoted", map[int]map[string]types.AttributeValue{createPairIdx: nil}, interfaces.ErrDuplicate},
		{"closed beats duplicate", map[int]map[string]types.AttributeValue{createPairIdx: nil, createRequestIdx: oldRequest}, interfaces.ErrConditionFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) error {
				return cancelled(4, tc.failed)
			}}
			repo := NewVendorQuotationDynamoRepository(fake, DefaultTables())

			_, err := repo.Create(ctx, sampleQuotation())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestVendorQuotationDynamoRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	stored, err := attributevalue.MarshalMap(toQuotationItem(sampleQuotation()))
	require.NoError(t, err)
	found := func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		return &dynamodb.GetItemOutput{Item: stored}, nil
	}

	t.Run("unknown id returns zero value", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewVendorQuotationDynamoRepository(fake, DefaultTables())

		got, err := repo.UpdateStatus(ctx, "missing", []entities.QuotationStatus{entities.QuotationStatusSubmitted}, entities.QuotationStatusViewed)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
		assert.Empty(t, fake.transacts)
	})

	t.Run("accept closes the request", func(t *testing.T) {
		fake := &fakeDynamo{getItem: found}
		repo := NewVendorQuotationDynamoRepository(fake, DefaultTables())

		got, err := repo.UpdateStatus(ctx, "q-1", []entities.QuotationStatus{entities.QuotationStatusSubmitted, entities.QuotationStatusViewed}, entities.QuotationStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, entities.QuotationStatusAccepted, got.Status)

		items := fake.transacts[0].TransactItems
		require.Len(t, items, 2)
		require.NotNil(t, items[1].Update)
		assert.Equal(t, "quotation_requests", aws.ToString(items[1].Update.TableName))
		closed := items[1].Update.ExpressionAttributeValues[":closed"].(*types.AttributeValueMemberS)
		assert.Equal(t, "closed", closed.Value)
	})

	t.Run("reject only checks the request is open", func(t *testing.T) {
		fake := &fakeDynamo{getItem: found}
		repo := NewVendorQuotationDynamoRepository(fake, DefaultTables())

		_, err := repo.UpdateStatus(ctx, "q-1", []entities.QuotationStatus{entities.QuotationStatusSubmitted}, entities.QuotationStatusRejected)
		require.NoError(t, err)

		items := fake.transacts[0].TransactItems
		require.NotNil(t, items[1].ConditionCheck)
		assert.Nil(t, items[1].Update)
	})

	t.Run("lost race", func(t *testing.T) {
		fake := &fakeDynamo{getItem: found, transact: func(*dynamodb.TransactWriteItemsInput) error {
			return cancelled(2, map[int]map[string]types.AttributeValue{1: nil})
		}}
		repo := NewVendorQuotationDynamoRepository(fake, DefaultTables())

		_, err := repo.UpdateStatus(ctx, "q-1", []entities.QuotationStatus{entities.QuotationStatusSubmitted}, entities.QuotationStatusAccepted)
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})
}
