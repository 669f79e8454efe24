package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tickermatch/internal/testsupport"
)

// newEmbeddingServer serves an OpenAI-compatible embeddings endpoint backed
// by the deterministic test embedder.
func newEmbeddingServer(t *testing.T) *httptest.Server {
	t.Helper()
	embedder := testsupport.StaticEmbedder()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input []string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		vectors, err := embedder.Embed(context.Background(), req.Input)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		type datum struct {
			Index     int       `json:"index"`
			Embedding []float32 `json:"embedding"`
		}
		resp := struct {
			Data []datum `json:"data"`
		}{}
		for i, vec := range vectors {
			resp.Data = append(resp.Data, datum{Index: i, Embedding: vec})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server
}

// writeTestConfig writes a config file rooted in temp directories wired to
// the given embedding endpoint.
func writeTestConfig(t *testing.T, embeddingURL string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tickermatch.toml")
	content := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = %q

[embedding]
base_url = %q
model = "test-model"

[logging]
format = "console"
level = "error"
`, filepath.Join(dir, "data"), filepath.Join(dir, "logs"), embeddingURL)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMatchCommandEndToEnd(t *testing.T) {
	server := newEmbeddingServer(t)
	cfgPath := writeTestConfig(t, server.URL)

	sponsors := writeCSV(t, "sponsors.csv", "name\nPfizer Inc\nModerna\n")
	tickers := writeCSV(t, "tickers.csv", "symbol,name,market\nPFE,Pfizer Inc.,NYSE\nMRNA,Moderna Inc.,NASDAQ\n")

	out, err := runCommand(t, "--config", cfgPath, "match", "--sponsors", sponsors, "--tickers", tickers)
	if err != nil {
		t.Fatalf("match command: %v\n%s", err, out)
	}
	if !strings.Contains(out, "PFE") || !strings.Contains(out, "approved") {
		t.Fatalf("expected approved PFE match in output:\n%s", out)
	}
	if !strings.Contains(out, "Matches: 2") {
		t.Fatalf("expected two matches in output:\n%s", out)
	}

	// The run was persisted and is listable.
	out, err = runCommand(t, "--config", cfgPath, "runs")
	if err != nil {
		t.Fatalf("runs command: %v\n%s", err, out)
	}
	if !strings.Contains(out, "optimal") {
		t.Fatalf("expected persisted run in listing:\n%s", out)
	}
}

func TestMatchCommandStrategyOverride(t *testing.T) {
	server := newEmbeddingServer(t)
	cfgPath := writeTestConfig(t, server.URL)

	sponsors := writeCSV(t, "sponsors.csv", "name\nPfizer Inc\n")
	tickers := writeCSV(t, "tickers.csv", "symbol,name\nPFE,Pfizer Inc.\n")

	out, err := runCommand(t, "--config", cfgPath, "match", "--no-save",
		"--strategy", "greedy", "--sponsors", sponsors, "--tickers", tickers)
	if err != nil {
		t.Fatalf("match command: %v\n%s", err, out)
	}
	if !strings.Contains(out, "greedy strategy") {
		t.Fatalf("expected greedy strategy in output:\n%s", out)
	}

	if out, err := runCommand(t, "--config", cfgPath, "match", "--strategy", "simplex",
		"--sponsors", sponsors, "--tickers", tickers); err == nil {
		t.Fatalf("expected error for unknown strategy, got:\n%s", out)
	}
}

func TestMatchCommandWithoutInputs(t *testing.T) {
	server := newEmbeddingServer(t)
	cfgPath := writeTestConfig(t, server.URL)

	_, err := runCommand(t, "--config", cfgPath, "match")
	if err == nil || !strings.Contains(err.Error(), "no sponsors") {
		t.Fatalf("expected missing-sponsor error, got %v", err)
	}
}

func TestImportAndMatchFromStore(t *testing.T) {
	server := newEmbeddingServer(t)
	cfgPath := writeTestConfig(t, server.URL)

	sponsors := writeCSV(t, "sponsors.csv", "name\nPfizer Inc\n")
	tickers := writeCSV(t, "tickers.csv", "symbol,name\nPFE,Pfizer Inc.\n")

	out, err := runCommand(t, "--config", cfgPath, "import", "sponsors", sponsors)
	if err != nil {
		t.Fatalf("import sponsors: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Imported 1 sponsors") {
		t.Fatalf("unexpected import output:\n%s", out)
	}
	if out, err = runCommand(t, "--config", cfgPath, "import", "tickers", tickers); err != nil {
		t.Fatalf("import tickers: %v\n%s", err, out)
	}

	out, err = runCommand(t, "--config", cfgPath, "match")
	if err != nil {
		t.Fatalf("match from store: %v\n%s", err, out)
	}
	if !strings.Contains(out, "PFE") {
		t.Fatalf("expected match from imported data:\n%s", out)
	}
}

func TestEvaluateCommand(t *testing.T) {
	server := newEmbeddingServer(t)
	cfgPath := writeTestConfig(t, server.URL)

	sponsors := writeCSV(t, "sponsors.csv", "name\nPfizer Inc\n")
	tickers := writeCSV(t, "tickers.csv", "symbol,name\nPFE,Pfizer Inc.\n")
	labels := writeCSV(t, "labels.csv", "sponsor_name,ticker,label\nPfizer Inc,PFE,correct\n")

	if out, err := runCommand(t, "--config", cfgPath, "match", "--sponsors", sponsors, "--tickers", tickers); err != nil {
		t.Fatalf("match command: %v\n%s", err, out)
	}

	out, err := runCommand(t, "--config", cfgPath, "evaluate", "--labels", labels)
	if err != nil {
		t.Fatalf("evaluate command: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Precision: 1.000") {
		t.Fatalf("expected perfect precision:\n%s", out)
	}
	if !strings.Contains(out, "Recall:    1.000") {
		t.Fatalf("expected perfect recall:\n%s", out)
	}
}

func TestCompareCommand(t *testing.T) {
	server := newEmbeddingServer(t)
	cfgPath := writeTestConfig(t, server.URL)

	sponsors := writeCSV(t, "sponsors.csv", "name\nAurora Gene Works\nAurora Cell Works\n")
	tickers := writeCSV(t, "tickers.csv", "symbol,name\nAGW,Aurora Gene Works\nACW,Aurora Cell Works\n")

	out, err := runCommand(t, "--config", cfgPath, "compare", "--sponsors", sponsors, "--tickers", tickers)
	if err != nil {
		t.Fatalf("compare command: %v\n%s", err, out)
	}
	if !strings.Contains(out, "greedy") || !strings.Contains(out, "optimal") {
		t.Fatalf("expected both strategies in output:\n%s", out)
	}
	if !strings.Contains(out, "Optimal gain:") {
		t.Fatalf("expected gain summary:\n%s", out)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when target exists")
	}
}

func TestConfigShow(t *testing.T) {
	server := newEmbeddingServer(t)
	cfgPath := writeTestConfig(t, server.URL)

	out, err := runCommand(t, "--config", cfgPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v\n%s", err, out)
	}
	if !strings.Contains(out, "matching.assignment_strategy") || !strings.Contains(out, "optimal") {
		t.Fatalf("expected effective settings in output:\n%s", out)
	}
}

func TestTierLabelColors(t *testing.T) {
	if got := tierLabel("approved", false); got != "approved" {
		t.Fatalf("plain label = %q", got)
	}
	if got := tierLabel("approved", true); !strings.Contains(got, ansiGreen) {
		t.Fatalf("expected green approved label, got %q", got)
	}
	if got := tierLabel("rejected", true); !strings.Contains(got, ansiRed) {
		t.Fatalf("expected red rejected label, got %q", got)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]string{"A", "B"},
		[][]string{{"only-a"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	if !strings.Contains(out, "only-a") {
		t.Fatalf("row missing from table:\n%s", out)
	}
}
