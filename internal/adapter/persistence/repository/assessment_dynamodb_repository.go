package repository

import (
	"context"
	"strconv"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAssessmentsTableName = "valoraciones"

type assessmentItem struct {
	ID           string     `dynamodbav:"id"`
	VehicleID    string     `dynamodbav:"vehicle_id"`
	MechanicID   string     `dynamodbav:"mechanic_id"`
	WorkshopID   string     `dynamodbav:"workshop_id"`
	ClientID     string     `dynamodbav:"client_id,omitempty"`
	Status       string     `dynamodbav:"status"`
	ClientStatus string     `dynamodbav:"client_status"`
	Tasks        []taskItem `dynamodbav:"tasks"`
	Notes        string     `dynamodbav:"notes,omitempty"`
	WorkOrderID  string     `dynamodbav:"work_order_id,omitempty"`
	Version      int64      `dynamodbav:"version"`
	CreatedAt    string     `dynamodbav:"created_at"`
	UpdatedAt    string     `dynamodbav:"updated_at"`
}

// AssessmentDynamoRepository persists Assessment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: workshop_id-index, mechanic_id-index, vehicle_id-index, client_id-index
//
// Every write is conditioned on the stored version, which is what serialises
// concurrent client responses on the same assessment.
type AssessmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAssessmentRepository = (*AssessmentDynamoRepository)(nil)

func NewAssessmentDynamoRepository(ddb DynamoAPI) *AssessmentDynamoRepository {
	return &AssessmentDynamoRepository{
		ddb:       ddb,
		tableName: AssessmentsTableName(),
	}
}

func AssessmentsTableName() string {
	return getenvDefault("ASSESSMENTS_TABLE", defaultAssessmentsTableName)
}

func (r *AssessmentDynamoRepository) Create(ctx context.Context, a entities.Assessment) (entities.Assessment, error) {
	if a.Version == 0 {
		a.Version = 1
	}
	if err := putNew(ctx, r.ddb, r.tableName, toAssessmentItem(a)); err != nil {
		return entities.Assessment{}, err
	}
	return a, nil
}

func (r *AssessmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Assessment, error) {
	var it assessmentItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Assessment{}, err
	}
	return fromAssessmentItem(it), nil
}

func (r *AssessmentDynamoRepository) ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.Assessment, error) {
	return r.listBy(ctx, "workshop_id", workshopID)
}

func (r *AssessmentDynamoRepository) ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.Assessment, error) {
	return r.listBy(ctx, "mechanic_id", mechanicID)
}

func (r *AssessmentDynamoRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.Assessment, error) {
	return r.listBy(ctx, "vehicle_id", vehicleID)
}

func (r *AssessmentDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Assessment, error) {
	return r.listBy(ctx, "client_id", clientID)
}

// Update writes a with version a.Version+1 if the stored version is still
// a.Version.
func (r *AssessmentDynamoRepository) Update(ctx context.Context, a entities.Assessment) (entities.Assessment, error) {
	expected := a.Version
	a.Version = expected + 1
	av, err := attributevalue.MarshalMap(toAssessmentItem(a))
	if err != nil {
		return entities.Assessment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if isConditionalCheckFailed(err) {
		current, getErr := r.GetByID(ctx, a.ID)
		if getErr != nil {
			return entities.Assessment{}, getErr
		}
		if current.ID == "" {
			return entities.Assessment{}, nil
		}
		return entities.Assessment{}, interfaces.ErrConcurrentUpdate
	}
	if err != nil {
		return entities.Assessment{}, err
	}
	return a, nil
}

func (r *AssessmentDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func (r *AssessmentDynamoRepository) listBy(ctx context.Context, attr, value string) ([]entities.Assessment, error) {
	items, err := queryIndex[assessmentItem](ctx, r.ddb, r.tableName, attr, value)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Assessment, 0, len(items))
	for _, it := range items {
		out = append(out, fromAssessmentItem(it))
	}
	return out, nil
}

func toAssessmentItem(a entities.Assessment) assessmentItem {
	return assessmentItem{
		ID:           a.ID,
		VehicleID:    a.VehicleID,
		MechanicID:   a.MechanicID,
		WorkshopID:   a.WorkshopID,
		ClientID:     a.ClientID,
		Status:       string(a.Status),
		ClientStatus: string(a.ClientStatus),
		Tasks:        toTaskItems(a.Tasks),
		Notes:        a.Notes,
		WorkOrderID:  a.WorkOrderID,
		Version:      a.Version,
		CreatedAt:    formatTime(a.CreatedAt),
		UpdatedAt:    formatTime(a.UpdatedAt),
	}
}

func fromAssessmentItem(it assessmentItem) entities.Assessment {
	return entities.Assessment{
		ID:           it.ID,
		VehicleID:    it.VehicleID,
		MechanicID:   it.MechanicID,
		WorkshopID:   it.WorkshopID,
		ClientID:     it.ClientID,
		Status:       entities.AssessmentStatus(it.Status),
		ClientStatus: entities.ClientStatus(it.ClientStatus),
		Tasks:        fromTaskItems(it.Tasks),
		Notes:        it.Notes,
		WorkOrderID:  it.WorkOrderID,
		Version:      it.Version,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
