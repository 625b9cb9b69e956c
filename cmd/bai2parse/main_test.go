package main

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rumor-ml/commons.systems/bai2parse/internal/store"
)

const sampleStatement = `01,SENDER,RECEIVER,250101,0800,FILEID,80,10,2/
02,RECV,ORIG,1,250101,0800,USD,1/
03,ACCT1,USD,040,1000,CHK/
16,475,500,0,REF1,CREF1,Memo text/
49,1500,2/
98,1500,1,4/
99,1500,1,6/`

// mismatchedStatement states an account total of 9999 against amounts
// summing to 1500.
const mismatchedStatement = `01,SENDER,RECEIVER,250101,0800,FILEID,80,10,2/
02,RECV,ORIG,1,250101,0800,USD,1/
03,ACCT1,USD,040,1000,CHK/
16,475,500,0,REF1,CREF1,Memo text/
49,9999,2/
98,9999,1,4/
99,9999,1,6/`

func buildBinary(t *testing.T) string {
	t.Helper()
	tmpBin := filepath.Join(t.TempDir(), "bai2parse")
	buildCmd := exec.Command("go", "build", "-o", tmpBin, ".")
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\nOutput: %s", err, output)
	}
	return tmpBin
}

// TestMain_RequiredFlags tests that missing -input flag shows error and usage
func TestMain_RequiredFlags(t *testing.T) {
	tmpBin := buildBinary(t)

	cmd := exec.Command(tmpBin)
	output, err := cmd.CombinedOutput()

	if err == nil {
		t.Fatal("Expected non-zero exit code when -input flag missing")
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("Expected ExitError, got %T", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("Expected exit code 1, got %d", exitErr.ExitCode())
	}

	outputStr := string(output)
	if !strings.Contains(outputStr, "Error: -input flag is required") {
		t.Errorf("Expected error message about required -input flag, got:\n%s", outputStr)
	}
	if !strings.Contains(outputStr, "Usage:") {
		t.Errorf("Expected usage message, got:\n%s", outputStr)
	}
}

// TestMain_VersionFlag tests that -version prints version and exits 0
func TestMain_VersionFlag(t *testing.T) {
	tmpBin := buildBinary(t)

	cmd := exec.Command(tmpBin, "-version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Expected zero exit code for -version flag, got error: %v\nOutput:\n%s", err, output)
	}

	outputStr := string(output)
	if !strings.Contains(outputStr, "bai2parse version") {
		t.Errorf("Expected version output, got:\n%s", outputStr)
	}
	if !strings.Contains(outputStr, "0.1.0") {
		t.Errorf("Expected version 0.1.0 in output, got:\n%s", outputStr)
	}
}

// withFlags is a test helper that temporarily sets flag values and restores them after the test.
func withFlags(t *testing.T, input string, dryRunVal, verboseVal bool) {
	t.Helper()
	origInput := *inputPath
	origDryRun := *dryRun
	origVerbose := *verbose
	origOutput := *outputPath
	origCompact := *compact
	origConfig := *configFile
	origCurrency := *currency
	origStrict := *strict
	origStore := *storePath

	*inputPath = input
	*dryRun = dryRunVal
	*verbose = verboseVal
	*outputPath = ""
	*compact = false
	*configFile = ""
	*currency = ""
	*strict = false
	*storePath = ""

	t.Cleanup(func() {
		*inputPath = origInput
		*dryRun = origDryRun
		*verbose = origVerbose
		*outputPath = origOutput
		*compact = origCompact
		*configFile = origConfig
		*currency = origCurrency
		*strict = origStrict
		*storePath = origStore
	})
}

// writeStatementTree creates {root}/{bank}/{account}/{bank}.bai2
func writeStatementTree(t *testing.T, root, bank, account, content string) string {
	t.Helper()
	dir := filepath.Join(root, bank, account)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, bank+".bai2")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_InvalidInput(t *testing.T) {
	withFlags(t, "/nonexistent/path/that/does/not/exist", false, false)

	err := run()
	if err == nil {
		t.Fatal("Expected error for non-existent input, got nil")
	}
	if !strings.Contains(err.Error(), "failed to stat input") {
		t.Errorf("Expected error containing 'failed to stat input', got: %v", err)
	}
}

func TestRun_DryRun(t *testing.T) {
	tmpDir := t.TempDir()
	writeStatementTree(t, tmpDir, "test_bank", "1234", sampleStatement)

	withFlags(t, tmpDir, true, false)

	if err := run(); err != nil {
		t.Errorf("Expected no error in dry-run mode, got: %v", err)
	}
}

func TestRun_EmptyDirectory(t *testing.T) {
	withFlags(t, t.TempDir(), false, false)

	err := run()
	if err == nil {
		t.Fatal("Expected error for empty directory, got nil")
	}
	if !strings.Contains(err.Error(), "no statement files found") {
		t.Errorf("Expected error containing 'no statement files found', got: %v", err)
	}
}

func TestRun_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	statement := filepath.Join(tmpDir, "jan.bai2")
	if err := os.WriteFile(statement, []byte(sampleStatement), 0644); err != nil {
		t.Fatal(err)
	}
	outFile := filepath.Join(tmpDir, "out.json")

	withFlags(t, statement, false, false)
	*outputPath = outFile

	if err := run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if doc["sender"] != "SENDER" {
		t.Errorf("doc sender = %v, want SENDER", doc["sender"])
	}
	if _, ok := doc["groups"]; !ok {
		t.Error("Output document missing groups key")
	}
}

func TestRun_DirectoryOutput(t *testing.T) {
	tmpDir := t.TempDir()
	writeStatementTree(t, tmpDir, "first_platypus", "2011", sampleStatement)
	writeStatementTree(t, tmpDir, "wells_fargo", "3456", sampleStatement)

	outDir := filepath.Join(tmpDir, "parsed")

	withFlags(t, tmpDir, false, false)
	*outputPath = outDir

	if err := run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("Failed to read output directory: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Output directory holds %d documents, want 2", len(entries))
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".json" {
			t.Errorf("Unexpected output file %s, want .json", entry.Name())
		}
	}
}

func TestRun_StoreArchive(t *testing.T) {
	tmpDir := t.TempDir()
	writeStatementTree(t, tmpDir, "first_platypus", "2011", sampleStatement)

	dbPath := filepath.Join(tmpDir, "runs.db")
	outFile := filepath.Join(tmpDir, "out.json")

	withFlags(t, tmpDir, false, false)
	*storePath = dbPath
	*outputPath = outFile

	if err := run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	archive, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open run archive: %v", err)
	}
	defer archive.Close()

	runs, err := archive.ListRuns(context.Background())
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Archived %d runs, want 1", len(runs))
	}
	if runs[0].ParserName != "bai2" {
		t.Errorf("run.ParserName = %q, want bai2", runs[0].ParserName)
	}
	if runs[0].Bank != "First Platypus" {
		t.Errorf("run.Bank = %q, want First Platypus", runs[0].Bank)
	}
}

func TestRun_StrictValidation(t *testing.T) {
	tmpDir := t.TempDir()
	writeStatementTree(t, tmpDir, "test_bank", "1234", mismatchedStatement)

	withFlags(t, tmpDir, false, false)
	*strict = true

	err := run()
	if err == nil {
		t.Fatal("Expected validation error in strict mode, got nil")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("Expected error containing 'validation failed', got: %v", err)
	}
}

func TestRun_PermissiveValidation(t *testing.T) {
	tmpDir := t.TempDir()
	writeStatementTree(t, tmpDir, "test_bank", "1234", mismatchedStatement)

	outFile := filepath.Join(tmpDir, "out.json")

	withFlags(t, tmpDir, false, false)
	*outputPath = outFile

	// Mismatched totals are warnings by default and do not block output.
	if err := run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if _, err := os.Stat(outFile); err != nil {
		t.Errorf("Expected output file despite warnings: %v", err)
	}
}

func TestDocumentPath(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sourcePath string
		multi      bool
		expected   string
	}{
		{
			name:       "stdout passthrough",
			configured: "",
			sourcePath: "/statements/jan.bai2",
			multi:      true,
			expected:   "",
		},
		{
			name:       "single file keeps configured path",
			configured: "out.json",
			sourcePath: "/statements/jan.bai2",
			multi:      false,
			expected:   "out.json",
		},
		{
			name:       "multiple files go under configured directory",
			configured: "parsed",
			sourcePath: "/statements/jan.bai2",
			multi:      true,
			expected:   filepath.Join("parsed", "jan.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := documentPath(tt.configured, tt.sourcePath, tt.multi)
			if result != tt.expected {
				t.Errorf("documentPath(%q, %q, %v) = %q, want %q",
					tt.configured, tt.sourcePath, tt.multi, result, tt.expected)
			}
		})
	}
}
