package repository

import (
	"context"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"
)

const defaultWorkshopsTableName = "workshops"

type workshopItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Address   string `dynamodbav:"address,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	TaxID     string `dynamodbav:"tax_id,omitempty"`
	OwnerID   string `dynamodbav:"owner_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// WorkshopDynamoRepository persists Workshop entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index
type WorkshopDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWorkshopRepository = (*WorkshopDynamoRepository)(nil)

func NewWorkshopDynamoRepository(ddb DynamoAPI) *WorkshopDynamoRepository {
	return &WorkshopDynamoRepository{
		ddb:       ddb,
		tableName: WorkshopsTableName(),
	}
}

func WorkshopsTableName() string {
	return getenvDefault("WORKSHOPS_TABLE", defaultWorkshopsTableName)
}

func (r *WorkshopDynamoRepository) Create(ctx context.Context, w entities.Workshop) (entities.Workshop, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toWorkshopItem(w)); err != nil {
		return entities.Workshop{}, err
	}
	return w, nil
}

func (r *WorkshopDynamoRepository) GetByID(ctx context.Context, id string) (entities.Workshop, error) {
	var it workshopItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Workshop{}, err
	}
	return fromWorkshopItem(it), nil
}

func (r *WorkshopDynamoRepository) List(ctx context.Context) ([]entities.Workshop, error) {
	items, err := scanAll[workshopItem](ctx, r.ddb, r.tableName, "", "")
	if err != nil {
		return nil, err
	}
	return fromWorkshopItems(items), nil
}

func (r *WorkshopDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Workshop, error) {
	items, err := queryIndex[workshopItem](ctx, r.ddb, r.tableName, "owner_id", ownerID)
	if err != nil {
		return nil, err
	}
	return fromWorkshopItems(items), nil
}

func (r *WorkshopDynamoRepository) Update(ctx context.Context, w entities.Workshop) (entities.Workshop, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toWorkshopItem(w))
	if err != nil || !ok {
		return entities.Workshop{}, err
	}
	return w, nil
}

func (r *WorkshopDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toWorkshopItem(w entities.Workshop) workshopItem {
	return workshopItem{
		ID:        w.ID,
		Name:      w.Name,
		Address:   w.Address,
		Phone:     w.Phone,
		Email:     w.Email,
		TaxID:     w.TaxID,
		OwnerID:   w.OwnerID,
		CreatedAt: formatTime(w.CreatedAt),
		UpdatedAt: formatTime(w.UpdatedAt),
	}
}

func fromWorkshopItem(it workshopItem) entities.Workshop {
	return entities.Workshop{
		ID:        it.ID,
		Name:      it.Name,
		Address:   it.Address,
		Phone:     it.Phone,
		Email:     it.Email,
		TaxID:     it.TaxID,
		OwnerID:   it.OwnerID,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func fromWorkshopItems(items []workshopItem) []entities.Workshop {
	out := make([]entities.Workshop, 0, len(items))
	for _, it := range items {
		out = append(out, fromWorkshopItem(it))
	}
	return out
}
