package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jenian/varlint/internal/analyzer"
	"github.com/jenian/varlint/internal/config"
)

const (
	reportHeader = "--- Code Analysis Report ---"
	reportFooter = "--- End of Report ---"
	noIssuesLine = "No issues found."
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
)

// JSONOutput represents the JSON output format
type JSONOutput struct {
	File    string           `json:"file"`
	Mode    string           `json:"mode"`
	Issues  []analyzer.Issue `json:"issues"`
	Ignored int              `json:"ignored"`
	Stats   analyzer.Stats   `json:"stats"`
}

// Format writes the report to w in the given format ("text" or "json")
func Format(w io.Writer, report analyzer.Report, format string) error {
	switch format {
	case config.FormatJSON:
		return formatJSON(w, report)
	case config.FormatText, "":
		return formatText(w, report)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// formatText writes the framed human-readable report
func formatText(w io.Writer, report analyzer.Report) error {
	var err error
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("%s\n", reportHeader)
	issues := report.Issues()
	for _, issue := range issues {
		printf("Issue: Unused variable '%s' at line %d\n", issue.Name, issue.Line)
	}
	if len(issues) == 0 {
		printf("%s\n", noIssuesLine)
	}
	printf("%s\n", reportFooter)

	return err
}

// formatJSON outputs results in JSON format
func formatJSON(w io.Writer, report analyzer.Report) error {
	output := JSONOutput{
		File:    report.File,
		Mode:    string(report.Mode),
		Issues:  report.Issues(),
		Ignored: report.Ignored,
		Stats:   report.Stats,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// HasIssues returns true if the report flags at least one unused variable
func HasIssues(report analyzer.Report) bool {
	return report.HasIssues
}

// ColorEnabled reports whether w is a terminal that accepts ANSI colors
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return enableANSI(f)
}

func paint(color bool, code, text string) string {
	if !color {
		return text
	}
	return code + text + colorReset
}

// FormatError formats an error message
func FormatError(err error, color bool) string {
	return fmt.Sprintf("%s %s\n", paint(color, colorBold+colorRed, "Error:"), err)
}

// FormatWarning formats a warning message
func FormatWarning(message string, color bool) string {
	return fmt.Sprintf("%s %s\n", paint(color, colorYellow, "Warning:"), message)
}
