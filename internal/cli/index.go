package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docsage/docsage/internal/config"
	"github.com/docsage/docsage/internal/dataset"
	"github.com/docsage/docsage/internal/retrieval"
)

var (
	indexDataset  string
	indexDatabase string
	indexForce    bool
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index the corpus retrieval documents into the vector database",
	Long: `Index loads the generated corpus, splits its retrieval documents into
overlapping chunks, embeds every chunk and persists the vectors so the ask
command can retrieve them.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringVar(&indexDataset, "dataset", "", "corpus JSON path")
	indexCmd.Flags().StringVar(&indexDatabase, "database", "", "vector database directory")
	indexCmd.Flags().BoolVar(&indexForce, "force", false, "overwrite an existing database")
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := slog.Default()

	cfg, err := config.LoadConfigFromDir(projectDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("dataset") {
		cfg.Dataset.Output = indexDataset
	}
	if cmd.Flags().Changed("database") {
		cfg.Retrieval.Database = indexDatabase
	}

	datasetPath := cfg.Dataset.Output
	if !filepath.IsAbs(datasetPath) {
		datasetPath = filepath.Join(projectDir, datasetPath)
	}
	if _, err := os.Stat(datasetPath); err != nil {
		return errors.New("Dataset file is missing, aborting.")
	}

	database := cfg.Retrieval.Database
	if !filepath.IsAbs(database) {
		database = filepath.Join(projectDir, database)
	}
	if _, err := os.Stat(database); err == nil {
		if !indexForce {
			return errors.New("Database exists already, aborting.")
		}
		logger.Warn("removing existing database", "path", database)
		if err := os.RemoveAll(database); err != nil {
			return fmt.Errorf("failed to remove existing database: %w", err)
		}
	}

	corpus, err := dataset.Load(datasetPath)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	chunks := retrieval.SplitDocuments(corpus.RetrievalDocuments,
		retrieval.DefaultChunkSize, retrieval.DefaultChunkOverlap)
	logger.Info("split retrieval documents",
		"documents", len(corpus.RetrievalDocuments), "chunks", len(chunks))

	provider := retrieval.NewHTTPProvider(cfg.Embedding.Endpoint,
		cfg.Embedding.Model, cfg.Embedding.Dimensions)
	if err := provider.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize embedding provider: %w", err)
	}
	defer provider.Close()

	store, err := retrieval.BuildIndex(ctx, database, provider, chunks)
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}
	logger.Info("indexed corpus", "vectors", store.Count())

	abs, err := filepath.Abs(database)
	if err != nil {
		abs = database
	}
	fmt.Printf("Database generation complete: '%s'.\n", abs)
	return nil
}
