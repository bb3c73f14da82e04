package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	perrors "github.com/scottgigante/prosstt/pkg/errors"
	pio "github.com/scottgigante/prosstt/pkg/io"
	"github.com/scottgigante/prosstt/pkg/pipeline"
)

const scenarioTOML = `
root = "A"

[[branches]]
id = "A"
duration = 25

[[branches]]
id = "B"
duration = 25

[[branches]]
id = "C"
duration = 30

[[edges]]
parent = "A"
child = "B"

[[edges]]
parent = "A"
child = "C"
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAnalyzeJSON(t *testing.T) {
	path := writeFixture(t, "tree.toml", scenarioTOML)

	out, err := runCLI(t, "analyze", path, "--json", "--no-cache")
	if err != nil {
		t.Fatalf("analyze error: %v", err)
	}
	report, err := pipeline.UnmarshalReport([]byte(out))
	if err != nil {
		t.Fatalf("analyze --json output is not a report: %v\n%s", err, out)
	}
	if report.MaxTime != 55 || len(report.Timezones) != 3 {
		t.Errorf("report = (max %d, %d zones), want (55, 3)", report.MaxTime, len(report.Timezones))
	}
}

func TestAnalyzeCached(t *testing.T) {
	path := writeFixture(t, "tree.toml", scenarioTOML)
	cacheURL := "file://" + t.TempDir()

	first, err := runCLI(t, "analyze", path, "--cache-url", cacheURL)
	if err != nil {
		t.Fatalf("analyze error: %v", err)
	}
	if !strings.Contains(first, iconFresh) {
		t.Errorf("first run should be fresh:\n%s", first)
	}

	second, err := runCLI(t, "analyze", path, "--cache-url", cacheURL)
	if err != nil {
		t.Fatalf("analyze error: %v", err)
	}
	if !strings.Contains(second, iconCached) {
		t.Errorf("second run should be cached:\n%s", second)
	}
	for _, want := range []string{"Paths", "Branch times", "Timezones", "Parallel groups", "A → C"} {
		if !strings.Contains(second, want) {
			t.Errorf("analyze output missing %q", want)
		}
	}

	refreshed, err := runCLI(t, "analyze", path, "--cache-url", cacheURL, "--refresh")
	if err != nil {
		t.Fatalf("analyze --refresh error: %v", err)
	}
	if !strings.Contains(refreshed, iconFresh) {
		t.Errorf("--refresh run should be fresh:\n%s", refreshed)
	}
}

func TestQueryCommands(t *testing.T) {
	path := writeFixture(t, "tree.toml", scenarioTOML)

	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"paths", path}, []string{"A → B", "A → C", "55"}},
		{[]string{"times", path}, []string{"Branch", "Parent", "54"}},
		{[]string{"timezones", path}, []string{"50", "B, C"}},
		{[]string{"timezones", path, "--index"}, []string{"0-24:0 25-49:1 50-54:2"}},
		{[]string{"parallel", path}, []string{"B, C"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args[:1], " "), func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("%v error: %v", tt.args, err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("%v output missing %q:\n%s", tt.args, w, out)
				}
			}
		})
	}
}

func TestParallelNoBranchPoints(t *testing.T) {
	path := writeFixture(t, "single.json", `{"time": {"only": 5}}`)
	out, err := runCLI(t, "parallel", path)
	if err != nil {
		t.Fatalf("parallel error: %v", err)
	}
	if !strings.Contains(out, "no branch points") {
		t.Errorf("parallel output = %q", out)
	}
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFixture(t, "tree.toml", scenarioTOML)
	cyclic := writeFixture(t, "cycle.json", `{"time": {"A": 1, "B": 1}, "topology": [["A", "B"], ["B", "A"]]}`)

	tests := []struct {
		name string
		args []string
		code perrors.Code
	}{
		{"missing file", []string{"analyze", filepath.Join(dir, "nope.toml")}, perrors.ErrCodeFileNotFound},
		{"bad extension", []string{"paths", filepath.Join(dir, "tree.yaml")}, perrors.ErrCodeInvalidFormat},
		{"cycle", []string{"times", cyclic}, perrors.ErrCodeInvalidTopology},
		{"bad render format", []string{"render", good, "-o", filepath.Join(dir, "out.gif")}, perrors.ErrCodeInvalidFormat},
		{"bad cache url", []string{"analyze", good, "--cache-url", "memcached://x"}, perrors.ErrCodeInvalidInput},
		{"bad duration", []string{"random", "--duration", "0"}, perrors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if !perrors.Is(err, tt.code) {
				t.Errorf("%v error = %v, want code %s", tt.args, err, tt.code)
			}
		})
	}
}

func TestRandomStdout(t *testing.T) {
	out, err := runCLI(t, "random", "--branch-points", "3", "--seed", "9", "--density")
	if err != nil {
		t.Fatalf("random error: %v", err)
	}
	top, err := pio.ReadJSON(strings.NewReader(out))
	if err != nil {
		t.Fatalf("random output is not a topology: %v\n%s", err, out)
	}
	if top.Tree.Len() != 7 {
		t.Errorf("random tree has %d branches, want 7", top.Tree.Len())
	}
	if top.Density == nil {
		t.Error("--density should include a density")
	}

	again, _ := runCLI(t, "random", "--branch-points", "3", "--seed", "9", "--density")
	if again != out {
		t.Error("same seed should produce the same description")
	}
}

func TestRandomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.toml")
	if _, err := runCLI(t, "random", "-n", "2", "-d", "10", "--seed", "1", "-o", path); err != nil {
		t.Fatalf("random error: %v", err)
	}

	out, err := runCLI(t, "analyze", path, "--json", "--no-cache")
	if err != nil {
		t.Fatalf("analyze of generated file error: %v", err)
	}
	var report struct {
		MaxTime int `json:"max_time"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatal(err)
	}
	// The second split always lands on a child of the root.
	if report.MaxTime != 30 {
		t.Errorf("max time = %d, want 30", report.MaxTime)
	}
}

func TestRenderDOT(t *testing.T) {
	path := writeFixture(t, "tree.toml", scenarioTOML)
	out := filepath.Join(t.TempDir(), "tree.dot")

	if _, err := runCLI(t, "render", path, "-o", out, "--detailed", "--no-cache"); err != nil {
		t.Fatalf("render error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "digraph G") || !strings.Contains(string(data), "duration: 30") {
		t.Errorf("rendered DOT unexpected:\n%s", data)
	}
}
