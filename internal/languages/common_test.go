package languages

import (
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path     string
		expected Language
	}{
		{"main.c", LanguageC},
		{"include/util.h", LanguageC},
		{"engine.cpp", LanguageCPP},
		{"engine.CC", LanguageCPP},
		{"engine.hpp", LanguageCPP},
		{"Main.java", LanguageJava},
		{"app.js", LanguageJavaScript},
		{"app.mjs", LanguageJavaScript},
		{"app.ts", LanguageTypeScript},
		{"app.tsx", LanguageTypeScript},
		{"main.go", LanguageGo},
		{"lib.rs", LanguageRust},
		{"script.py", LanguagePython},
		{"notes.txt", LanguageC},
		{"Makefile", LanguageC},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Detect(tt.path); got != tt.expected {
				t.Errorf("Detect(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestGetLanguageInfo(t *testing.T) {
	tests := []struct {
		name     string
		lang     Language
		expected string
	}{
		{"c", LanguageC, CQuery},
		{"cpp", LanguageCPP, CPPQuery},
		{"java", LanguageJava, JavaQuery},
		{"javascript", LanguageJavaScript, JavaScriptQuery},
		{"typescript", LanguageTypeScript, JavaScriptQuery},
		{"go", LanguageGo, GoQuery},
		{"rust", LanguageRust, RustQuery},
		{"python", LanguagePython, PythonQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := GetLanguageInfo(tt.lang)
			if info == nil {
				t.Fatal("Expected LanguageInfo, got nil")
			}
			if info.Query != tt.expected {
				t.Errorf("Query mismatch for %s", tt.lang)
			}
			if info.Language != tt.lang {
				t.Errorf("Language = %v, want %v", info.Language, tt.lang)
			}
			if !strings.Contains(info.Query, "@"+CaptureName) {
				t.Errorf("Query for %s does not bind @%s", tt.lang, CaptureName)
			}
		})
	}
}

func TestGetLanguageInfo_Unknown(t *testing.T) {
	for _, lang := range []Language{"", "cobol"} {
		if info := GetLanguageInfo(lang); info != nil {
			t.Errorf("Expected nil for %q, got %v", lang, info)
		}
	}
}
