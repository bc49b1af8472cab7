package analyzer

import (
	"sort"

	"github.com/jenian/varlint/internal/config"
	"github.com/jenian/varlint/internal/languages"
	"github.com/jenian/varlint/internal/logger"
)

// Mode selects how the usage pass decides that a name occurs on a line
type Mode string

const (
	// ModeSubstring counts any substring occurrence of the name
	ModeSubstring Mode = config.ModeSubstring
	// ModeToken counts only identifier tokens equal to the name
	ModeToken Mode = config.ModeToken
)

// Options configures a single analysis run
type Options struct {
	Path     string             // Path of the analyzed file, for display
	Mode     Mode               // Usage matching mode; empty means ModeSubstring
	Language languages.Language // Grammar used by ModeToken
	Tokens   TokenSource        // Required by ModeToken
	Config   *config.Config     // Ignore rules; may be nil
	Logger   logger.Logger      // Debug output; may be nil
}

// Issue is a variable that is declared but never used
type Issue struct {
	Name string `json:"name"`
	Line int    `json:"line"`
}

// Stats summarizes the analyzed file
type Stats struct {
	Lines        int `json:"lines"`
	Conditionals int `json:"conditionals"`
	Declarations int `json:"declarations"`
}

// Report contains the complete analysis results
type Report struct {
	File      string         // Path of the analyzed file
	Mode      Mode           // Mode the usage pass actually ran in
	Unused    map[string]int // Unused variable name -> declaration line
	HasIssues bool           // True if at least one unused variable is reported
	Ignored   int            // Unused variables suppressed via config
	Stats     Stats          // File statistics
	Warnings  []string       // Non-fatal problems, e.g. token mode falling back
}

// Issues returns the unused variables ordered by declaration line, then name
func (r Report) Issues() []Issue {
	issues := make([]Issue, 0, len(r.Unused))
	for name, line := range r.Unused {
		issues = append(issues, Issue{Name: name, Line: line})
	}
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Line != issues[j].Line {
			return issues[i].Line < issues[j].Line
		}
		return issues[i].Name < issues[j].Name
	})
	return issues
}
