package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir     string
	configPath  string
	datasetPath string
}

const testDataset = `Unnamed: 0,Season,EpisodeTitle,About,Ratings,Votes,Duration,Date
0,1,Pilot,A documentary crew films the branch and its regional manager,7.5,4936,23,24-03-2005
1,1,The Fire,A fire in the kitchen causes panic in the office,8.4,3361,22,12-04-2005
2,2,Christmas Party,The office plans a Christmas party with secret santa,8.9,3706,22,06-12-2005
3,2,Valentine's Day,An office valentine date goes embarrassingly wrong,8.2,3,22,09-02-2006
4,2,Quiet Stretch,Nothing notable seems written here at all,6.1,100,22,01-03-2006
`

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()

	configPath := filepath.Join(base, "config.toml")
	configContent := "[paths]\ndata_dir = \"" + base + "\"\n"
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	datasetPath := filepath.Join(base, "episodes.csv")
	if err := os.WriteFile(datasetPath, []byte(testDataset), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	return &cliTestEnv{
		baseDir:     base,
		configPath:  configPath,
		datasetPath: datasetPath,
	}
}

func (env *cliTestEnv) buildCatalog(t *testing.T) {
	t.Helper()
	out, stderr, err := runCLI(t, []string{"build", env.datasetPath}, env.configPath)
	if err != nil {
		t.Fatalf("build: %v (stdout %q, stderr %q)", err, out, stderr)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
