package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bradleyjkemp/cupaloy/v2"
)

var binaryPath string

// TestMain builds varlint once into a temporary directory so the suite always runs
// against the current sources.
func TestMain(m *testing.M) {
	os.Exit(runWithBinary(m))
}

func runWithBinary(m *testing.M) int {
	tmpDir, err := os.MkdirTemp("", "varlint-e2e")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create build dir: %v\n", err)
		return 1
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "varlint")
	if runtime.GOOS == "windows" {
		binaryPath += ".exe"
	}
	build := exec.Command("go", "build", "-o", binaryPath, "../cmd/varlint")
	build.Stdout = os.Stderr
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build varlint: %v\n", err)
		return 1
	}

	return m.Run()
}

func fixturePath(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join("testdata", name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("Fixture not found: %s", path)
	}
	return path
}

// runVarlint runs the binary and returns stdout, stderr and the exit code
func runVarlint(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			return stdout.String(), stderr.String(), exitError.ExitCode()
		}
		t.Fatalf("varlint failed to start: %v", err)
	}
	return stdout.String(), stderr.String(), 0
}

func runReportTest(t *testing.T, fixture string) {
	stdout, stderr, code := runVarlint(t, fixturePath(t, fixture))

	if code != 0 {
		t.Fatalf("Unexpected exit code: %d\nstderr: %s", code, stderr)
	}

	// Use cupaloy for snapshot testing
	cupaloy.SnapshotT(t, stdout)
}

func TestE2E_UnusedVariable(t *testing.T) {
	runReportTest(t, "sum.c")
}

func TestE2E_CleanFile(t *testing.T) {
	runReportTest(t, "clean.c")
}

func TestE2E_EmptyFile(t *testing.T) {
	runReportTest(t, "empty.c")
}

func TestE2E_Quirks(t *testing.T) {
	// Redeclaration keeps the last line, only the first name of a list is declared,
	// unknown types are skipped and any substring occurrence counts as a use
	runReportTest(t, "quirks.c")
}

func TestE2E_Idempotent(t *testing.T) {
	first, _, _ := runVarlint(t, fixturePath(t, "quirks.c"))
	second, _, _ := runVarlint(t, fixturePath(t, "quirks.c"))
	if first != second {
		t.Errorf("Output differs between runs:\n%s\n---\n%s", first, second)
	}
}

func TestE2E_MissingArgument(t *testing.T) {
	stdout, stderr, code := runVarlint(t)

	if code != 1 {
		t.Errorf("Exit code = %d, want 1", code)
	}
	if stdout != "" {
		t.Errorf("Expected empty stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "Usage: varlint <source_file>") {
		t.Errorf("Expected usage on stderr, got %q", stderr)
	}
}

func TestE2E_MissingFile(t *testing.T) {
	_, stderr, code := runVarlint(t, filepath.Join("testdata", "does-not-exist.c"))

	if code != 1 {
		t.Errorf("Exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "does-not-exist.c") {
		t.Errorf("Error should name the path, got %q", stderr)
	}
}
