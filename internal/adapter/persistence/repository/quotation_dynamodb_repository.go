package repository

import (
	"context"
	"time"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotationsTableName = "cotizaciones"

type quotationLineItem struct {
	TaskID      string `dynamodbav:"task_id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Price       string `dynamodbav:"price"`
}

type quotationItem struct {
	ID           string              `dynamodbav:"id"`
	AssessmentID string              `dynamodbav:"assessment_id"`
	WorkshopID   string              `dynamodbav:"workshop_id"`
	ClientID     string              `dynamodbav:"client_id,omitempty"`
	Lines        []quotationLineItem `dynamodbav:"lines"`
	Subtotal     string              `dynamodbav:"subtotal"`
	TaxRate      string              `dynamodbav:"tax_rate"`
	Tax          string              `dynamodbav:"tax"`
	Total        string              `dynamodbav:"total"`
	Notes        string              `dynamodbav:"notes,omitempty"`
	Status       string              `dynamodbav:"status"`
	ValidUntil   string              `dynamodbav:"valid_until"`
	CreatedAt    string              `dynamodbav:"created_at"`
	UpdatedAt    string              `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The quotation id is the assessment id, which keeps one quotation per
// assessment and lets GetByAssessmentID resolve by PK.
type QuotationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb DynamoAPI) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: QuotationsTableName(),
	}
}

func QuotationsTableName() string {
	return getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName)
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toQuotationItem(q)); err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	var it quotationItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) GetByAssessmentID(ctx context.Context, assessmentID string) (entities.Quotation, error) {
	return r.GetByID(ctx, assessmentID)
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionalCheckFailed(err) {
		return entities.Quotation{}, nil
	}
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func toQuotationItem(q entities.Quotation) quotationItem {
	lines := make([]quotationLineItem, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, quotationLineItem{TaskID: l.TaskID, Name: l.Name, Description: l.Description, Price: floatToString(l.Price)})
	}
	return quotationItem{
		ID:           q.ID,
		AssessmentID: q.AssessmentID,
		WorkshopID:   q.WorkshopID,
		ClientID:     q.ClientID,
		Lines:        lines,
		Subtotal:     floatToString(q.Subtotal),
		TaxRate:      floatToString(q.TaxRate),
		Tax:          floatToString(q.Tax),
		Total:        floatToString(q.Total),
		Notes:        q.Notes,
		Status:       string(q.Status),
		ValidUntil:   formatTime(q.ValidUntil),
		CreatedAt:    formatTime(q.CreatedAt),
		UpdatedAt:    formatTime(q.UpdatedAt),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	lines := make([]entities.QuotationLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, entities.QuotationLine{TaskID: l.TaskID, Name: l.Name, Description: l.Description, Price: stringToFloat(l.Price)})
	}
	return entities.Quotation{
		ID:           it.ID,
		AssessmentID: it.AssessmentID,
		WorkshopID:   it.WorkshopID,
		ClientID:     it.ClientID,
		Lines:        lines,
		Subtotal:     stringToFloat(it.Subtotal),
		TaxRate:      stringToFloat(it.TaxRate),
		Tax:          stringToFloat(it.Tax),
		Total:        stringToFloat(it.Total),
		Notes:        it.Notes,
		Status:       entities.QuotationStatus(it.Status),
		ValidUntil:   parseTime(it.ValidUntil),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
