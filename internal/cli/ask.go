package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docsage/docsage/internal/config"
	"github.com/docsage/docsage/internal/retrieval"
)

var (
	askSearchType string
	askTopK       int
	askFetchK     int
	askLambda     float64
	askDatabase   string
)

var askCmd = &cobra.Command{
	Use:   "ask QUESTION",
	Short: "Answer a question about the indexed package",
	Long: `Ask retrieves the corpus chunks most relevant to the question, feeds
them to the language model as context and prints the generated answer together
with the retrieved sources.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askSearchType, "search-type", "", "retrieval algorithm: similarity, mmr or keyword")
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "documents handed to the model")
	askCmd.Flags().IntVar(&askFetchK, "fetch-k", 0, "candidates fetched before mmr re-ranking")
	askCmd.Flags().Float64Var(&askLambda, "lambda", 0, "mmr relevance weight between 0 and 1")
	askCmd.Flags().StringVar(&askDatabase, "database", "", "vector database directory")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	question := args[0]

	cfg, err := config.LoadConfigFromDir(projectDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("search-type") {
		cfg.Retrieval.SearchType = askSearchType
	}
	if cmd.Flags().Changed("top-k") {
		cfg.Retrieval.TopK = askTopK
	}
	if cmd.Flags().Changed("fetch-k") {
		cfg.Retrieval.FetchK = askFetchK
	}
	if cmd.Flags().Changed("lambda") {
		cfg.Retrieval.Lambda = askLambda
	}
	if cmd.Flags().Changed("database") {
		cfg.Retrieval.Database = askDatabase
	}

	database := cfg.Retrieval.Database
	if !filepath.IsAbs(database) {
		database = filepath.Join(projectDir, database)
	}
	if _, err := os.Stat(database); err != nil {
		return errors.New("Database directory is missing, aborting.")
	}

	provider := retrieval.NewHTTPProvider(cfg.Embedding.Endpoint,
		cfg.Embedding.Model, cfg.Embedding.Dimensions)
	if err := provider.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize embedding provider: %w", err)
	}
	defer provider.Close()

	store, err := retrieval.Open(database, provider)
	if err != nil {
		if errors.Is(err, retrieval.ErrNoIndex) {
			return errors.New("Database directory is missing, aborting.")
		}
		return fmt.Errorf("failed to open database: %w", err)
	}

	options := retrieval.Options{
		Type:   retrieval.SearchType(cfg.Retrieval.SearchType),
		TopK:   cfg.Retrieval.TopK,
		FetchK: cfg.Retrieval.FetchK,
		Lambda: cfg.Retrieval.Lambda,
	}
	model := retrieval.NewHTTPModel(cfg.Generation.Endpoint,
		cfg.Generation.Model, cfg.Generation.Temperature)
	pipeline := retrieval.NewPipeline(store, model, options)

	response, err := pipeline.Ask(ctx, question)
	if err != nil {
		return fmt.Errorf("failed to answer question: %w", err)
	}

	fmt.Printf("Query: %s\n", response.Query)
	fmt.Printf("Answer: %s\n", response.Answer)
	fmt.Printf("Duration: %.2f seconds\n", response.Duration.Seconds())
	for i, source := range response.SourceDocuments {
		fmt.Printf("Source %d: %s\n", i+1, source)
	}
	return nil
}
