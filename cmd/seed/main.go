package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gradpath/cmd/internal/logger"
	"gradpath/config"
	"gradpath/db"
	"gradpath/repositories"
)

var (
	contentPath string
	dryRun      bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert services, blog posts and events from a YAML content file",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.InitApp()
		logger.Init(config.GetConfig().Logging.Level)

		f, err := LoadContentFile(contentPath)
		if err != nil {
			return err
		}
		if dryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d services, %d blogs, %d events\n",
				contentPath, len(f.Services), len(f.Blogs), len(f.Events))
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		if err := db.Init(ctx); err != nil {
			return fmt.Errorf("failed to initialize MongoDB: %w", err)
		}
		defer db.Disconnect(context.Background())

		database := db.Database()
		seeder := NewSeeder(
			repositories.NewServiceRepository(database),
			repositories.NewBlogRepository(database),
			repositories.NewEventRepository(database),
		)
		stats, err := seeder.Apply(ctx, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %s: %d inserted, %d updated\n", contentPath, stats.Inserted, stats.Updated)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&contentPath, "file", "f", "content/seed.yaml", "Path to the YAML content file")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without writing to MongoDB")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
