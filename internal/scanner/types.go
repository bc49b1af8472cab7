package scanner

// TypeKeywords are the type names recognized in front of a declaration
var TypeKeywords = []string{"int", "char", "long", "float", "double", "bool", "string"}

// Declarations maps a variable name to the line of its last matching declaration
type Declarations map[string]int

// UsageCounts maps a declared name to the number of lines that use it.
// Names that are never used have no entry.
type UsageCounts map[string]int

// TokenIndex lists, per 1-based line, the identifier tokens found on that line
type TokenIndex map[int]map[string]bool

// Add records that identifier name appears on line
func (ti TokenIndex) Add(line int, name string) {
	names, ok := ti[line]
	if !ok {
		names = make(map[string]bool)
		ti[line] = names
	}
	names[name] = true
}

// Has reports whether identifier name appears on line
func (ti TokenIndex) Has(line int, name string) bool {
	return ti[line][name]
}
