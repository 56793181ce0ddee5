package repository

import (
	"context"
	"strings"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type userItem struct {
	ID           string `dynamodbav:"id"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash,omitempty"`
	Role         string `dynamodbav:"role"`
	Active       bool   `dynamodbav:"active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type emailItem struct {
	Email  string `dynamodbav:"email"`
	UserID string `dynamodbav:"user_id"`
}

// profileItem flattens every role profile into one row keyed by user id.
type profileItem struct {
	ID   string `dynamodbav:"id"`
	Role string `dynamodbav:"role"`

	FirstName         string `dynamodbav:"first_name,omitempty"`
	LastName          string `dynamodbav:"last_name,omitempty"`
	Address           string `dynamodbav:"address,omitempty"`
	PhoneNumber       string `dynamodbav:"phone_number,omitempty"`
	FederatedIdentity bool   `dynamodbav:"federated_identity"`
	ProfileComplete   bool   `dynamodbav:"profile_complete"`

	CompanyName        string `dynamodbav:"company_name,omitempty"`
	OwnerName          string `dynamodbav:"owner_name,omitempty"`
	CompanyAddress     string `dynamodbav:"company_address,omitempty"`
	ContactPhone       string `dynamodbav:"contact_phone,omitempty"`
	Description        string `dynamodbav:"description,omitempty"`
	ServicesOffered    string `dynamodbav:"services_offered,omitempty"`
	VerificationStatus string `dynamodbav:"verification_status,omitempty"`

	Title string `dynamodbav:"title,omitempty"`
}

// UserDynamoRepository persists users and their role profiles.
//
// Email uniqueness is guarded by a separate user_emails row written in the
// same transaction as the user and profile.
type UserDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, tables Tables) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tables: tables}
}

func (r *UserDynamoRepository) CreateWithProfile(ctx context.Context, u entities.User, p entities.Profile) (entities.User, error) {
	u.Email = strings.ToLower(u.Email)
	p.UserID = u.ID

	userAV, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}
	emailAV, err := attributevalue.MarshalMap(emailItem{Email: u.Email, UserID: u.ID})
	if err != nil {
		return entities.User{}, err
	}
	profileAV, err := attributevalue.MarshalMap(toProfileItem(p))
	if err != nil {
		return entities.User{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tables.UserEmails),
				Item:                     emailAV,
				ConditionExpression:      aws.String("attribute_not_exists(#email)"),
				ExpressionAttributeNames: map[string]string{"#email": "email"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Users),
				Item:                     userAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName: aws.String(r.tables.Profiles),
				Item:      profileAV,
			}},
		},
	})
	if err != nil {
		return entities.User{}, txError(err, map[int]error{0: interfaces.ErrDuplicate, 1: interfaces.ErrDuplicate})
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Users),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.UserEmails),
		Key:            stringKey("email", strings.ToLower(email)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}
	var it emailItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return r.GetByID(ctx, it.UserID)
}

func (r *UserDynamoRepository) ListByRole(ctx context.Context, role entities.Role, activeOnly bool) ([]entities.User, error) {
	in := roleQuery(r.tables.Users, role)
	if activeOnly {
		in.FilterExpression = aws.String("#active = :active")
		in.ExpressionAttributeNames["#active"] = "active"
		in.ExpressionAttributeValues[":active"] = &types.AttributeValueMemberBOOL{Value: true}
	}
	items, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}

	var its []userItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.User, 0, len(its))
	for _, it := range its {
		out = append(out, fromUserItem(it))
	}
	newestFirst(out, func(u entities.User) time.Time { return u.CreatedAt }, func(u entities.User) string { return u.ID })
	return out, nil
}

func (r *UserDynamoRepository) CountByRole(ctx context.Context, role entities.Role) (int, error) {
	return queryCount(ctx, r.ddb, roleQuery(r.tables.Users, role))
}

func roleQuery(table string, role entities.Role) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(roleIndex),
		KeyConditionExpression:    aws.String("#role = :role"),
		ExpressionAttributeNames:  map[string]string{"#role": "role"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":role": str(string(role))},
	}
}

func (r *UserDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.User, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Users),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #active = :active, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#active":     "active",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":     &types.AttributeValueMemberBOOL{Value: active},
			":updated_at": str(formatTime(time.Now())),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.User{}, nil
		}
		return entities.User{}, err
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetProfile(ctx context.Context, id string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Profiles),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}
	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *UserDynamoRepository) UpdateVendorVerification(ctx context.Context, id string, status entities.VerificationStatus) (entities.Profile, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Profiles),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #role = :vendor"),
		UpdateExpression:    aws.String("SET #verification_status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":                  "id",
			"#role":                "role",
			"#verification_status": "verification_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vendor": str(string(entities.RoleVendor)),
			":status": str(string(status)),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Profile{}, nil
		}
		return entities.Profile{}, err
	}
	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Active:       u.Active,
		CreatedAt:    formatTime(u.CreatedAt),
		UpdatedAt:    formatTime(u.UpdatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		Role:         entities.Role(it.Role),
		Active:       it.Active,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}

func toProfileItem(p entities.Profile) profileItem {
	it := profileItem{ID: p.UserID, Role: string(p.Role())}
	switch {
	case p.Customer != nil:
		c := p.Customer
		it.FirstName, it.LastName = c.FirstName, c.LastName
		it.Address, it.PhoneNumber = c.Address, c.PhoneNumber
		it.FederatedIdentity = c.FederatedIdentity
		it.ProfileComplete = c.ProfileComplete
	case p.Vendor != nil:
		v := p.Vendor
		it.CompanyName, it.OwnerName = v.CompanyName, v.OwnerName
		it.CompanyAddress, it.ContactPhone = v.CompanyAddress, v.ContactPhone
		it.Description, it.ServicesOffered = v.Description, v.ServicesOffered
		it.ProfileComplete = v.ProfileComplete
		it.VerificationStatus = string(v.VerificationStatus)
	case p.Admin != nil:
		it.FirstName, it.LastName, it.Title = p.Admin.FirstName, p.Admin.LastName, p.Admin.Title
	}
	return it
}

func fromProfileItem(it profileItem) entities.Profile {
	p := entities.Profile{UserID: it.ID}
	switch entities.Role(it.Role) {
	case entities.RoleCustomer:
		p.Customer = &entities.CustomerProfile{
			FirstName:         it.FirstName,
			LastName:          it.LastName,
			Address:           it.Address,
			PhoneNumber:       it.PhoneNumber,
			FederatedIdentity: it.FederatedIdentity,
			ProfileComplete:   it.ProfileComplete,
		}
	case entities.RoleVendor:
		p.Vendor = &entities.VendorProfile{
			CompanyName:        it.CompanyName,
			OwnerName:          it.OwnerName,
			CompanyAddress:     it.CompanyAddress,
			ContactPhone:       it.ContactPhone,
			Description:        it.Description,
			ServicesOffered:    it.ServicesOffered,
			ProfileComplete:    it.ProfileComplete,
			VerificationStatus: entities.VerificationStatus(it.VerificationStatus),
		}
	case entities.RoleAdmin:
		p.Admin = &entities.AdminProfile{FirstName: it.FirstName, LastName: it.LastName, Title: it.Title}
	}
	return p
}
