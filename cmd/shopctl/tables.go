package main

import (
	"fmt"
	"time"

	"tallerhub/internal/adapter/persistence/repository"

	"github.com/spf13/cobra"
)

var flagWait time.Duration

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage the DynamoDB tables",
}

var tablesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create missing tables and their indexes",
	Long: `Create every table the API uses, with its global secondary indexes.

Existing tables are left untouched, so the command can be run on every deploy.`,
	Args: cobra.NoArgs,
	RunE: runTablesCreate,
}

var tablesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the table names and indexes in use",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, spec := range repository.Tables() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", spec.Name, spec.Indexes)
		}
	},
}

func init() {
	tablesCreateCmd.Flags().DurationVar(&flagWait, "wait", 30*time.Second, "how long to wait for each new table to become active (0 to skip)")
	tablesCmd.AddCommand(tablesCreateCmd)
	tablesCmd.AddCommand(tablesListCmd)
}

func runTablesCreate(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	ddb, err := connect(ctx)
	if err != nil {
		return err
	}
	if err := repository.EnsureTables(ctx, ddb, repository.Tables(), flagWait); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "tables ready")
	return nil
}
