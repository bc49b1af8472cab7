package languages

import (
	"path/filepath"
	"strings"
)

// Language identifies the grammar used for token-aware usage matching
type Language string

const (
	LanguageC          Language = "c"
	LanguageCPP        Language = "cpp"
	LanguageJava       Language = "java"
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageGo         Language = "go"
	LanguageRust       Language = "rust"
	LanguagePython     Language = "python"
)

// CaptureName is the capture every identifier query binds its nodes to
const CaptureName = "name"

// LanguageInfo contains the identifier query for a language
type LanguageInfo struct {
	Language Language
	Query    string
}

// Detect determines the language from the file extension.
// Files with unknown extensions are treated as C.
func Detect(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".c", ".h":
		return LanguageC
	case ".cc", ".cpp", ".cxx", ".hh", ".hpp", ".hxx":
		return LanguageCPP
	case ".java":
		return LanguageJava
	case ".js", ".jsx", ".mjs":
		return LanguageJavaScript
	case ".ts", ".tsx":
		return LanguageTypeScript
	case ".go":
		return LanguageGo
	case ".rs":
		return LanguageRust
	case ".py":
		return LanguagePython
	default:
		return LanguageC
	}
}

// GetLanguageInfo returns the identifier query for a given language
func GetLanguageInfo(lang Language) *LanguageInfo {
	var query string
	switch lang {
	case LanguageC:
		query = CQuery
	case LanguageCPP:
		query = CPPQuery
	case LanguageJava:
		query = JavaQuery
	case LanguageJavaScript, LanguageTypeScript:
		query = JavaScriptQuery
	case LanguageGo:
		query = GoQuery
	case LanguageRust:
		query = RustQuery
	case LanguagePython:
		query = PythonQuery
	default:
		return nil
	}
	return &LanguageInfo{Language: lang, Query: query}
}
