package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", []string{}},
		{"single line without newline", "int a = 1;", []string{"int a = 1;"}},
		{"trailing newline", "int a;\nint b;\n", []string{"int a;", "int b;"}},
		{"crlf terminators", "int a;\r\nint b;\r\n", []string{"int a;", "int b;"}},
		{"lone carriage return kept inside line", "int a;\rb;\n", []string{"int a;\rb;"}},
		{"crlf without final newline", "int a;\r\nint b;\r", []string{"int a;", "int b;"}},
		{"blank lines kept", "int a;\n\n\nint b;", []string{"int a;", "", "", "int b;"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if lines.Len() != len(tt.expected) {
				t.Fatalf("Expected %d lines, got %d: %q", len(tt.expected), lines.Len(), lines)
			}
			for i, want := range tt.expected {
				if got := lines.Line(i + 1); got != want {
					t.Errorf("Line(%d) = %q, want %q", i+1, got, want)
				}
			}
		})
	}
}

func TestRead_LongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	lines, err := Read(strings.NewReader("int a;\n" + long + "\n"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if lines.Len() != 2 {
		t.Fatalf("Expected 2 lines, got %d", lines.Len())
	}
	if len(lines.Line(2)) != len(long) {
		t.Errorf("Long line truncated to %d bytes", len(lines.Line(2)))
	}
}

func TestRead_LineLongerThan16MiB(t *testing.T) {
	long := strings.Repeat("a", 17*1024*1024)
	lines, err := Read(strings.NewReader("int a = 1;\n" + long))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if lines.Len() != 2 {
		t.Fatalf("Expected 2 lines, got %d", lines.Len())
	}
	if len(lines.Line(2)) != len(long) {
		t.Errorf("Long line truncated to %d bytes", len(lines.Line(2)))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestRead_ReaderError(t *testing.T) {
	_, err := Read(failingReader{})
	if !errors.Is(err, ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
}

func TestLines_LineOutOfRange(t *testing.T) {
	lines := Lines{"int a;"}
	for _, n := range []int{-1, 0, 2} {
		if got := lines.Line(n); got != "" {
			t.Errorf("Line(%d) = %q, want empty", n, got)
		}
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "main.c")

	code := "int a = 1;\nint b = 2;\nint c = a + b;\n"
	if err := os.WriteFile(filePath, []byte(code), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	lines, err := Load(filePath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if lines.Len() != 3 {
		t.Fatalf("Expected 3 lines, got %d", lines.Len())
	}
	if lines.Line(3) != "int c = a + b;" {
		t.Errorf("Unexpected line 3: %q", lines.Line(3))
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.c")

	_, err := Load(missing)
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("Error should name the path, got %q", err.Error())
	}
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("Expected error when loading a directory")
	}
	if !errors.Is(err, ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
}
