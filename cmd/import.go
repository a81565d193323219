package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"vapor-store/core/config"
	"vapor-store/core/database"
	"vapor-store/core/logger"
	"vapor-store/core/storage"
	"vapor-store/feature/catalog"
	"vapor-store/feature/games"
	"vapor-store/feature/purchases"
	"vapor-store/feature/users"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importFile   string
	importObject string
	reportObject string
)

// importFunc runs one import call and returns its report.
type importFunc func(ctx context.Context, payload string) (string, error)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a batch into the catalog",
	Long: `Imports a JSON games or users batch, or an XML purchases batch, and prints the report.
The payload is read from --file (stdin by default) or from an object in the configured bucket.`,
}

var importGamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Import games from a JSON array",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, "games", func(store catalog.Store, l *zap.Logger) importFunc {
			return games.NewService(store, l).ImportGames
		})
	},
}

var importUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Import users and their cards from a JSON array",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, "users", func(store catalog.Store, l *zap.Logger) importFunc {
			return users.NewService(store, l).ImportUsers
		})
	},
}

var importPurchasesCmd = &cobra.Command{
	Use:   "purchases",
	Short: "Import purchases from a <Purchases> XML document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, "purchases", func(store catalog.Store, l *zap.Logger) importFunc {
			return purchases.NewService(store, l).ImportPurchases
		})
	},
}

func runImport(cmd *cobra.Command, kind string, build func(catalog.Store, *zap.Logger) importFunc) error {
	ctx := cmd.Context()
	startTime := time.Now()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	var client storage.Client
	if importObject != "" || reportObject != "" {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	payload, err := readPayload(ctx, cmd.InOrStdin(), client, cfg.Storage.Bucket)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection required: %w", err)
	}
	if err := catalog.AutoMigrate(db); err != nil {
		return err
	}

	out, err := build(catalog.NewGormStore(db), logg)(ctx, payload)
	if err != nil {
		return fmt.Errorf("%s import failed: %w", kind, err)
	}

	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	if reportObject != "" {
		if err := storage.WriteObject(ctx, client, cfg.Storage.Bucket, reportObject, out); err != nil {
			return err
		}
		logg.Info("Report published", zap.String("bucket", cfg.Storage.Bucket), zap.String("object", reportObject))
	}

	logg.Debug("Import finished", zap.String("import", kind), zap.Duration("duration", time.Since(startTime)))
	return nil
}

// readPayload reads from the bucket when --object is set, otherwise from
// --file, where an empty name or "-" means stdin.
func readPayload(ctx context.Context, stdin io.Reader, client storage.Client, bucket string) (string, error) {
	if importObject != "" {
		return storage.ReadObject(ctx, client, bucket, importObject)
	}

	if importFile == "" || importFile == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(importFile)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", importFile, err)
	}
	return string(data), nil
}

func init() {
	importCmd.PersistentFlags().StringVarP(&importFile, "file", "f", "-", "Payload file, or - for stdin")
	importCmd.PersistentFlags().StringVar(&importObject, "object", "", "Read the payload from this object in the storage bucket")
	importCmd.PersistentFlags().StringVar(&reportObject, "report-object", "", "Also write the report to this object in the storage bucket")
	importCmd.MarkFlagsMutuallyExclusive("file", "object")

	importCmd.AddCommand(importGamesCmd, importUsersCmd, importPurchasesCmd)
	RootCmd.AddCommand(importCmd)
}
