package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test Plan for the command guards:
// 1. dataset refuses to overwrite an existing corpus without --force
// 2. index aborts when the corpus file is missing
// 3. index refuses to overwrite an existing database without --force
// 4. ask aborts when the database directory is missing
//
// The commands share the package level root command, so these tests do not
// run in parallel.

func executeCommand(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestDatasetCommand_RefusesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "dataset.json")
	require.NoError(t, os.WriteFile(output, []byte("{}"), 0o644))

	err := executeCommand("dataset",
		"--project", dir,
		"--package", "demo",
		"--output", "dataset.json")
	require.Error(t, err)
	require.Equal(t, "Dataset exists already, aborting.", err.Error())
}

func TestDatasetCommand_RequiresPackage(t *testing.T) {
	dir := t.TempDir()

	err := executeCommand("dataset",
		"--project", dir,
		"--package", "",
		"--output", "dataset.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no package configured")
}

func TestIndexCommand_MissingDataset(t *testing.T) {
	dir := t.TempDir()

	err := executeCommand("index",
		"--project", dir,
		"--dataset", "dataset.json",
		"--database", "index")
	require.Error(t, err)
	require.Equal(t, "Dataset file is missing, aborting.", err.Error())
}

func TestIndexCommand_RefusesExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	dataset := filepath.Join(dir, "dataset.json")
	require.NoError(t, os.WriteFile(dataset, []byte("{}"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "index"), 0o755))

	err := executeCommand("index",
		"--project", dir,
		"--dataset", "dataset.json",
		"--database", "index")
	require.Error(t, err)
	require.Equal(t, "Database exists already, aborting.", err.Error())
}

func TestAskCommand_MissingDatabase(t *testing.T) {
	dir := t.TempDir()

	err := executeCommand("ask", "What is demo?",
		"--project", dir,
		"--database", "index")
	require.Error(t, err)
	require.Equal(t, "Database directory is missing, aborting.", err.Error())
}
