package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jenian/varlint/internal/logger"
	"github.com/jenian/varlint/internal/scanner"
	"github.com/jenian/varlint/internal/source"
)

var (
	conditionalPattern = regexp.MustCompile(`\bif\b`)
	// declarationStatPattern counts declaration statements for Stats. Unlike the scanner's
	// pattern it requires "=" or ";" and it may span lines.
	declarationStatPattern = regexp.MustCompile(
		`(?:` + strings.Join(scanner.TypeKeywords, "|") + `)[\s\v]+[a-zA-Z_][a-zA-Z0-9_]*[\s\v]*[=;]`,
	)
)

// Analyze runs the declaration pass and the usage pass over lines and reports every
// declared variable that has no qualifying usage. It never fails: problems with token
// mode are recorded as warnings and the run falls back to substring matching.
func Analyze(lines source.Lines, opts Options) Report {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	decls := scanner.ScanDeclarations(lines)
	log.Logf("declaration pass: %d variables declared", len(decls))

	report := Report{
		File:   opts.Path,
		Mode:   ModeSubstring,
		Unused: make(map[string]int),
		Stats:  computeStats(lines),
	}

	var matcher scanner.Matcher = scanner.SubstringMatcher{}
	if opts.Mode == ModeToken {
		tokenMatcher, err := newTokenMatcher(lines, opts)
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("token mode unavailable, using substring matching: %v", err))
			log.Logf("token mode fallback: %v", err)
		} else {
			matcher = tokenMatcher
			report.Mode = ModeToken
		}
	}

	usages := scanner.ScanUsages(lines, decls, matcher)
	log.Logf("usage pass (%s): %d of %d variables used", report.Mode, len(usages), len(decls))

	for name, line := range decls {
		if _, used := usages[name]; used {
			continue
		}
		if opts.Config != nil && opts.Config.ShouldIgnore(name) {
			report.Ignored++
			continue
		}
		report.Unused[name] = line
	}
	report.HasIssues = len(report.Unused) > 0

	return report
}

func newTokenMatcher(lines source.Lines, opts Options) (scanner.Matcher, error) {
	if opts.Tokens == nil {
		return nil, fmt.Errorf("no token source configured")
	}
	// Re-joining with "\n" keeps tree-sitter rows aligned with line numbers
	content := []byte(strings.Join(lines, "\n"))
	index, err := opts.Tokens.Identifiers(content, opts.Language)
	if err != nil {
		return nil, err
	}
	return scanner.TokenMatcher{Index: index}, nil
}

func computeStats(lines source.Lines) Stats {
	content := strings.Join(lines, "\n")
	return Stats{
		Lines:        lines.Len(),
		Conditionals: len(conditionalPattern.FindAllStringIndex(content, -1)),
		Declarations: len(declarationStatPattern.FindAllStringIndex(content, -1)),
	}
}
