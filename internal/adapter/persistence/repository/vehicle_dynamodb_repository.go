package repository

import (
	"context"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"
)

const defaultVehiclesTableName = "vehicles"

type vehicleItem struct {
	ID         string `dynamodbav:"id"`
	ClientID   string `dynamodbav:"client_id"`
	WorkshopID string `dynamodbav:"workshop_id,omitempty"`
	Plate      string `dynamodbav:"plate"`
	Make       string `dynamodbav:"make"`
	Model      string `dynamodbav:"model"`
	Year       int    `dynamodbav:"year"`
	VIN        string `dynamodbav:"vin,omitempty"`
	Mileage    int    `dynamodbav:"mileage"`
	Color      string `dynamodbav:"color,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index, plate-index
type VehicleDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb DynamoAPI) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: VehiclesTableName(),
	}
}

func VehiclesTableName() string {
	return getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName)
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toVehicleItem(v)); err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	var it vehicleItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) GetByPlate(ctx context.Context, plate string) (entities.Vehicle, error) {
	items, err := queryIndex[vehicleItem](ctx, r.ddb, r.tableName, "plate", entities.NormalizePlate(plate))
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(items) == 0 {
		return entities.Vehicle{}, nil
	}
	return fromVehicleItem(items[0]), nil
}

func (r *VehicleDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Vehicle, error) {
	items, err := queryIndex[vehicleItem](ctx, r.ddb, r.tableName, "client_id", clientID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Vehicle, 0, len(items))
	for _, it := range items {
		out = append(out, fromVehicleItem(it))
	}
	return out, nil
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toVehicleItem(v))
	if err != nil || !ok {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:         v.ID,
		ClientID:   v.ClientID,
		WorkshopID: v.WorkshopID,
		Plate:      entities.NormalizePlate(v.Plate),
		Make:       v.Make,
		Model:      v.Model,
		Year:       v.Year,
		VIN:        v.VIN,
		Mileage:    v.Mileage,
		Color:      v.Color,
		CreatedAt:  formatTime(v.CreatedAt),
		UpdatedAt:  formatTime(v.UpdatedAt),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:         it.ID,
		ClientID:   it.ClientID,
		WorkshopID: it.WorkshopID,
		Plate:      it.Plate,
		Make:       it.Make,
		Model:      it.Model,
		Year:       it.Year,
		VIN:        it.VIN,
		Mileage:    it.Mileage,
		Color:      it.Color,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
