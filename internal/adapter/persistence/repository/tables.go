package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableAdminAPI is the part of *dynamodb.Client needed to provision tables.
type TableAdminAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

var _ TableAdminAPI = (*dynamodb.Client)(nil)

// TableSpec describes one table: a string "id" hash key plus one GSI per
// attribute in Indexes, named "<attr>-index".
type TableSpec struct {
	Name    string
	Indexes []string
}

// Tables lists every table the API uses, honouring the *_TABLE overrides.
func Tables() []TableSpec {
	return []TableSpec{
		{Name: UsersTableName(), Indexes: []string{"email", "workshop_id"}},
		{Name: WorkshopsTableName(), Indexes: []string{"owner_id"}},
		{Name: VehiclesTableName(), Indexes: []string{"client_id", "plate"}},
		{Name: AssessmentsTableName(), Indexes: []string{"workshop_id", "mechanic_id", "vehicle_id", "client_id"}},
		{Name: WorkOrdersTableName(), Indexes: []string{"workshop_id", "mechanic_id"}},
		{Name: QuotationsTableName()},
		{Name: InvoicesTableName(), Indexes: []string{"workshop_id", "client_id"}},
	}
}

// EnsureTables creates missing tables and waits until they are active.
// Existing tables are left untouched.
func EnsureTables(ctx context.Context, ddb TableAdminAPI, specs []TableSpec, wait time.Duration) error {
	for _, spec := range specs {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			log.Printf("[tables] exists table=%s", spec.Name)
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return fmt.Errorf("describe %s: %w", spec.Name, err)
		}

		if _, err := ddb.CreateTable(ctx, createTableInput(spec)); err != nil {
			return fmt.Errorf("create %s: %w", spec.Name, err)
		}
		log.Printf("[tables] created table=%s indexes=%v", spec.Name, spec.Indexes)

		if wait <= 0 {
			continue
		}
		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)}, wait); err != nil {
			return fmt.Errorf("wait %s: %w", spec.Name, err)
		}
	}
	return nil
}

func createTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
	}
	var gsis []types.GlobalSecondaryIndex
	for _, attr := range spec.Indexes {
		attrs = append(attrs, types.AttributeDefinition{
			AttributeName: aws.String(attr),
			AttributeType: types.ScalarAttributeTypeS,
		})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(indexName(attr)),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:            aws.String(spec.Name),
		AttributeDefinitions: attrs,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}
