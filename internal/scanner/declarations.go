package scanner

import (
	"regexp"
	"strings"

	"github.com/jenian/varlint/internal/source"
)

// declarationPattern matches a recognized type keyword, whitespace, an identifier and
// then "=" (optionally preceded by whitespace), ";" or ",". Whitespace includes the
// vertical tab, which RE2's \s leaves out.
var declarationPattern = regexp.MustCompile(
	`(?:` + strings.Join(TypeKeywords, "|") + `)[\s\v]+([a-zA-Z_][a-zA-Z0-9_]*)(?:[\s\v]*=|;|,)`,
)

// ScanDeclarations runs the declaration pass. Only the first declaration on a line is
// recorded, and a name declared on several lines keeps the last line.
func ScanDeclarations(lines source.Lines) Declarations {
	decls := make(Declarations)
	for n := 1; n <= lines.Len(); n++ {
		if name, ok := MatchDeclaration(lines.Line(n)); ok {
			decls[name] = n
		}
	}
	return decls
}

// MatchDeclaration returns the variable name declared on line, if any
func MatchDeclaration(line string) (string, bool) {
	match := declarationPattern.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// DeclaresName reports whether line contains "<keyword> <name>" for any recognized keyword.
// This is a substring test: "int count" also satisfies DeclaresName(line, "co").
func DeclaresName(line, name string) bool {
	for _, keyword := range TypeKeywords {
		if strings.Contains(line, keyword+" "+name) {
			return true
		}
	}
	return false
}
