package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"solar_marketplace/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationDynamoRepository_CreateManyChunks(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewNotificationDynamoRepository(fake, DefaultTables())

	ns := make([]entities.Notification, 150)
	for i := range ns {
		ns[i] = entities.Notification{ID: fmt.Sprintf("n-%d", i), RecipientID: "u-1", Type: entities.NotificationNewRequest, CreatedAt: time.Now()}
	}

	require.NoError(t, repo.CreateMany(context.Background(), ns))
	require.Len(t, fake.transacts, 2)
	assert.Len(t, fake.transacts[0].TransactItems, maxTransactItems)
	assert.Len(t, fake.transacts[1].TransactItems, 50)
}

func TestNotificationDynamoRepository_ListByUserID(t *testing.T) {
	fake := &fakeDynamo{query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
			{"id": str("n-1"), "user_id": str("u-1"), "title": str("t"), "message": str("m"), "read": &types.AttributeValueMemberBOOL{Value: true}, "type": str("system"), "created_at": str(formatTime(time.Now()))},
		}}, nil
	}}
	repo := NewNotificationDynamoRepository(fake, DefaultTables())

	got, err := repo.ListByUserID(context.Background(), "u-1", 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u-1", got[0].RecipientID)
	assert.True(t, got[0].Read)

	in := fake.queries[0]
	assert.Equal(t, userIDIndex, aws.ToString(in.IndexName))
	assert.Equal(t, int32(20), aws.ToInt32(in.Limit))
	assert.False(t, aws.ToBool(in.ScanIndexForward))
}

func TestNotificationDynamoRepository_MarkRead(t *testing.T) {
	t.Run("owned", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewNotificationDynamoRepository(fake, DefaultTables())

		ok, err := repo.MarkRead(context.Background(), "n-1", "u-1")
		require.NoError(t, err)
		assert.True(t, ok)
		uid := fake.updates[0].ExpressionAttributeValues[":user_id"].(*types.AttributeValueMemberS)
		assert.Equal(t, "u-1", uid.Value)
	})

	t.Run("missing or foreign", func(t *testing.T) {
		fake := &fakeDynamo{update: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("no")}
		}}
		repo := NewNotificationDynamoRepository(fake, DefaultTables())

		ok, err := repo.MarkRead(context.Background(), "n-1", "u-2")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
