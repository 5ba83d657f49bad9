package database

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAWSConfigFromEnv_Local(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	cfg, err := NewAWSConfigFromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}

func TestNewDynamoDBClient_Endpoint(t *testing.T) {
	client := NewDynamoDBClient(aws.Config{Region: "us-east-1"}, "http://localhost:8000")
	require.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000", aws.ToString(client.Options().BaseEndpoint))

	plain := NewDynamoDBClient(aws.Config{Region: "us-east-1"}, "")
	assert.Nil(t, plain.Options().BaseEndpoint)
}
