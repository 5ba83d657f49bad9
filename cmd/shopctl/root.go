package main

import (
	"context"
	"fmt"
	"time"

	"tallerhub/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spf13/cobra"
)

var flagTimeout time.Duration

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Operations tool for the TallerHub API",
	Long: `shopctl prepares a TallerHub environment.

It reads the same environment (or .env file) as the API: AWS_REGION,
DYNAMODB_ENDPOINT and the *_TABLE overrides.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 2*time.Minute, "overall timeout of the command")
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(bootstrapAdminCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), flagTimeout)
}

func connect(ctx context.Context) (*dynamodb.Client, error) {
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DynamoDB: %w", err)
	}
	return ddb, nil
}
