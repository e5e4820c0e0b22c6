package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportMermaidFromYAML(t *testing.T) {
	content := `name: sample
directed: true
edges:
  - {from: A, to: B, weight: 4}
  - {from: B, to: C, weight: 2}
`
	tmpDir := t.TempDir()
	specPath := filepath.Join(tmpDir, "graph.yaml")
	if err := os.WriteFile(specPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	outputPath := filepath.Join(tmpDir, "graph.md")
	exportFormat = "mermaid"
	exportOutput = outputPath

	if err := runExport(exportCmd, []string{specPath}); err != nil {
		t.Fatalf("runExport() error = %v", err)
	}

	output, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !strings.Contains(string(output), "graph LR") {
		t.Error("output should contain 'graph LR'")
	}
	if !strings.Contains(string(output), "A -->|4| B") {
		t.Error("output should contain 'A -->|4| B'")
	}
}

func TestExportJSONFromEdgeList(t *testing.T) {
	tmpDir := t.TempDir()
	listPath := filepath.Join(tmpDir, "edges.txt")
	if err := os.WriteFile(listPath, []byte("A B 1\nB C 2\n"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	exportFormat = "json"
	exportOutput = ""
	exportDirected = false

	var out bytes.Buffer
	exportCmd.SetOut(&out)
	if err := runExport(exportCmd, []string{listPath}); err != nil {
		t.Fatalf("runExport() error = %v", err)
	}

	if !strings.Contains(out.String(), `"from": "A"`) {
		t.Errorf("JSON output should contain the A->B edge, got:\n%s", out.String())
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	tmpDir := t.TempDir()
	listPath := filepath.Join(tmpDir, "edges.txt")
	if err := os.WriteFile(listPath, []byte("A B 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	exportFormat = "dot"
	exportOutput = ""

	if err := runExport(exportCmd, []string{listPath}); err == nil {
		t.Error("expected error for unsupported format")
	}
}
