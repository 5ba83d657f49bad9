package repository

import (
	"context"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email"`
	Phone        string `dynamodbav:"phone,omitempty"`
	Role         string `dynamodbav:"role"`
	WorkshopID   string `dynamodbav:"workshop_id,omitempty"`
	PasswordHash string `dynamodbav:"password_hash"`
	Active       bool   `dynamodbav:"active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index, workshop_id-index
//
// Email uniqueness is checked by the use case through the email index;
// DynamoDB cannot enforce it on a GSI.
type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: UsersTableName(),
	}
}

func UsersTableName() string {
	return getenvDefault("USERS_TABLE", defaultUsersTableName)
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toUserItem(u)); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var it userItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	items, err := queryIndex[userItem](ctx, r.ddb, r.tableName, "email", entities.NormalizeEmail(email))
	if err != nil {
		return entities.User{}, err
	}
	if len(items) == 0 {
		return entities.User{}, nil
	}
	return fromUserItem(items[0]), nil
}

func (r *UserDynamoRepository) ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.User, error) {
	items, err := queryIndex[userItem](ctx, r.ddb, r.tableName, "workshop_id", workshopID)
	if err != nil {
		return nil, err
	}
	return fromUserItems(items), nil
}

func (r *UserDynamoRepository) ListByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error) {
	items, err := scanAll[userItem](ctx, r.ddb, r.tableName, "role", string(role))
	if err != nil {
		return nil, err
	}
	return fromUserItems(items), nil
}

func (r *UserDynamoRepository) Update(ctx context.Context, u entities.User) (entities.User, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toUserItem(u))
	if err != nil || !ok {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Name:         u.Name,
		Email:        entities.NormalizeEmail(u.Email),
		Phone:        u.Phone,
		Role:         string(u.Role),
		WorkshopID:   u.WorkshopID,
		PasswordHash: u.PasswordHash,
		Active:       u.Active,
		CreatedAt:    formatTime(u.CreatedAt),
		UpdatedAt:    formatTime(u.UpdatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		Phone:        it.Phone,
		Role:         entities.UserRole(it.Role),
		WorkshopID:   it.WorkshopID,
		PasswordHash: it.PasswordHash,
		Active:       it.Active,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}

func fromUserItems(items []userItem) []entities.User {
	out := make([]entities.User, 0, len(items))
	for _, it := range items {
		out = append(out, fromUserItem(it))
	}
	return out
}
