package repository

import (
	"context"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type sessionItem struct {
	Token     string `dynamodbav:"token"`
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	ExpiresAt string `dynamodbav:"expires_at"`
	CreatedAt string `dynamodbav:"created_at"`
	// ExpiresAtEpoch lets the table TTL sweep stale rows; validity is still
	// decided at lookup time.
	ExpiresAtEpoch int64 `dynamodbav:"expires_at_epoch"`
}

// SessionDynamoRepository stores sessions keyed by token.
type SessionDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb DynamoAPI, tables Tables) *SessionDynamoRepository {
	return &SessionDynamoRepository{ddb: ddb, tables: tables}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return entities.Session{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.Sessions),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Session{}, interfaces.ErrDuplicate
		}
		return entities.Session{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Sessions),
		Key:            stringKey("token", token),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}
	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tables.Sessions),
		Key:       stringKey("token", token),
	})
	return err
}

func toSessionItem(s entities.Session) sessionItem {
	return sessionItem{
		Token:          s.Token,
		ID:             s.ID,
		UserID:         s.UserID,
		ExpiresAt:      formatTime(s.ExpiresAt),
		CreatedAt:      formatTime(s.CreatedAt),
		ExpiresAtEpoch: s.ExpiresAt.Unix(),
	}
}

func fromSessionItem(it sessionItem) entities.Session {
	return entities.Session{
		ID:        it.ID,
		UserID:    it.UserID,
		Token:     it.Token,
		ExpiresAt: parseTime(it.ExpiresAt),
		CreatedAt: parseTime(it.CreatedAt),
	}
}
