package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

var (
	// ErrFileNotFound is returned when the source file does not exist
	ErrFileNotFound = errors.New("file not found")
	// ErrIO is returned for any other failure to open or read the source file
	ErrIO = errors.New("i/o error")
)

// Lines holds the raw text of a source file, addressed by 1-based line number
type Lines []string

// Len returns the number of lines
func (l Lines) Len() int {
	return len(l)
}

// Line returns the text of line n (1-based), or "" when n is out of range
func (l Lines) Line(n int) string {
	if n < 1 || n > len(l) {
		return ""
	}
	return l[n-1]
}

// Load reads the file at path into Lines. The file is closed before Load returns.
func Load(path string) (Lines, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not open file %s: %w", path, ErrFileNotFound)
		}
		return nil, fmt.Errorf("could not open file %s: %w: %w", path, ErrIO, err)
	}
	defer file.Close()

	lines, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("could not read file %s: %w", path, err)
	}
	return lines, nil
}

// Read splits r into lines with their terminators ("\n" or "\r\n") stripped. Lines have no
// length limit.
func Read(r io.Reader) (Lines, error) {
	lines := Lines{}

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
		if line == "" && err != nil {
			break
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return lines, nil
}
