package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docsage/docsage/internal/config"
	"github.com/docsage/docsage/internal/dataset"
	"github.com/docsage/docsage/internal/introspect"
)

var (
	datasetPackage string
	datasetSource  string
	datasetOutput  string
	datasetSeed    int64
	datasetForce   bool
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Generate the question answering corpus for a Python package",
	Long: `Dataset introspects the configured Python package and writes the
question answering corpus as JSON: retrieval documents for indexing plus
tuning documents carrying context, question, answer and split.`,
	RunE: runDataset,
}

func init() {
	rootCmd.AddCommand(datasetCmd)

	datasetCmd.Flags().StringVar(&datasetPackage, "package", "", "dotted name of the root package")
	datasetCmd.Flags().StringVar(&datasetSource, "source", "", "directory containing the root package")
	datasetCmd.Flags().StringVar(&datasetOutput, "output", "", "corpus output path")
	datasetCmd.Flags().Int64Var(&datasetSeed, "seed", 0, "split allocator seed")
	datasetCmd.Flags().BoolVar(&datasetForce, "force", false, "overwrite an existing corpus")
}

func runDataset(cmd *cobra.Command, args []string) error {
	logger := slog.Default()

	cfg, err := config.LoadConfigFromDir(projectDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("package") {
		cfg.Introspection.Package = datasetPackage
	}
	if cmd.Flags().Changed("source") {
		cfg.Introspection.SourceRoot = datasetSource
	}
	if cmd.Flags().Changed("output") {
		cfg.Dataset.Output = datasetOutput
	}
	if cmd.Flags().Changed("seed") {
		cfg.Dataset.Seed = datasetSeed
	}
	if cfg.Introspection.Package == "" {
		return errors.New("no package configured, pass --package or set introspection.package")
	}

	output := cfg.Dataset.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(projectDir, output)
	}
	if _, err := os.Stat(output); err == nil {
		if !datasetForce {
			return errors.New("Dataset exists already, aborting.")
		}
		logger.Warn("removing existing dataset", "path", output)
		if err := os.Remove(output); err != nil {
			return fmt.Errorf("failed to remove existing dataset: %w", err)
		}
	}

	alloc, err := dataset.NewAllocator(cfg.Dataset.Seed, cfg.ToProportions())
	if err != nil {
		return fmt.Errorf("failed to create split allocator: %w", err)
	}
	intro, err := introspect.New(cfg.ToIntrospectConfig(logger))
	if err != nil {
		return fmt.Errorf("failed to create introspector: %w", err)
	}

	// Progress bars interleave badly with debug logging, so verbose runs
	// rely on the log lines instead.
	reporter := newProgressReporter(verbose)
	builder := &dataset.Builder{
		Introspector: intro,
		Generator:    dataset.NewGenerator(alloc),
		Logger:       logger,
		Progress:     reporter.Report,
	}

	datasets, err := builder.Build(cfg.Introspection.Package)
	reporter.Finish()
	if err != nil {
		return fmt.Errorf("failed to build corpus: %w", err)
	}

	corpus := dataset.Flatten(datasets)
	if err := dataset.Store(output, corpus); err != nil {
		return fmt.Errorf("failed to store corpus: %w", err)
	}

	abs, err := filepath.Abs(output)
	if err != nil {
		abs = output
	}
	fmt.Printf("Dataset generation complete: '%s'.\n", abs)
	return nil
}
