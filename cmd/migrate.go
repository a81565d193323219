package cmd

import (
	"fmt"
	"sort"

	"vapor-store/core/config"
	"vapor-store/core/database"
	"vapor-store/core/logger"
	"vapor-store/feature/catalog"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catalogTables = []string{"developers", "genres", "tags", "games", "game_tags", "users", "cards", "purchases"}

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog schema",
	Long:  `Auto-migrates every catalog table and prints the resulting columns. Use --json for machine-readable output.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		if err := catalog.AutoMigrate(db); err != nil {
			return err
		}
		logg.Info("Catalog schema migrated", zap.String("driver", cfg.Database.Driver))

		schema, err := database.InspectTables(db, catalogTables...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode schema: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		names := make([]string, 0, len(schema))
		for name := range schema {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintf(out, "%s\n", name)
			for _, col := range schema[name] {
				nullable := ""
				if col.Nullable {
					nullable = " NULL"
				}
				fmt.Fprintf(out, "  %-14s %s%s\n", col.Field, col.Type, nullable)
			}
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().Bool("json", false, "Print the inspected schema as JSON")
	RootCmd.AddCommand(migrateCmd)
}
