package parser

import (
	"fmt"
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/jenian/varlint/internal/languages"
	"github.com/jenian/varlint/internal/logger"
	"github.com/jenian/varlint/internal/scanner"
)

// Parser builds identifier indexes from source text with Tree-Sitter
type Parser struct {
	loader    LanguageLoader
	languages map[languages.Language]*sitter.Language
	mu        sync.RWMutex
	logger    logger.Logger
}

// NewParser creates a new parser instance
func NewParser(log logger.Logger) *Parser {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Parser{
		loader:    &DefaultLanguageLoader{},
		languages: make(map[languages.Language]*sitter.Language),
		logger:    log,
	}
}

// SetLanguageLoader replaces the grammar loader and drops cached grammars
func (p *Parser) SetLanguageLoader(loader LanguageLoader) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loader = loader
	p.languages = make(map[languages.Language]*sitter.Language)
}

// getLanguage returns a language grammar for the given language, loading it if needed
func (p *Parser) getLanguage(lang languages.Language) (*sitter.Language, error) {
	p.mu.RLock()
	if language, ok := p.languages[lang]; ok {
		p.mu.RUnlock()
		return language, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock
	if language, ok := p.languages[lang]; ok {
		return language, nil
	}

	language, err := loadLanguage(p.loader, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to load language %s: %w", lang, err)
	}

	p.languages[lang] = language
	return language, nil
}

// Identifiers parses content and returns the identifier tokens found on each line.
// Comments and string literals never contribute tokens.
func (p *Parser) Identifiers(content []byte, lang languages.Language) (scanner.TokenIndex, error) {
	langInfo := languages.GetLanguageInfo(lang)
	if langInfo == nil {
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}

	language, err := p.getLanguage(lang)
	if err != nil {
		return nil, err
	}

	// A fresh Tree-Sitter parser per call: they are not safe for concurrent use
	tsParser := sitter.NewParser()
	defer tsParser.Close()
	if err := tsParser.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language %s: %w", lang, err)
	}

	tree := tsParser.Parse(content, nil)
	if tree == nil {
		return nil, fmt.Errorf("parse returned no tree for %s source", lang)
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if rootNode == nil {
		return nil, fmt.Errorf("parse returned no root node for %s source", lang)
	}
	if rootNode.HasError() {
		p.logger.Logf("%s parse tree contains syntax errors, identifiers may be incomplete", lang)
	}

	query, queryErr := sitter.NewQuery(language, strings.TrimSpace(langInfo.Query))
	if queryErr != nil {
		return nil, fmt.Errorf("failed to create identifier query for %s: %s", lang, queryErr.Error())
	}
	defer query.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	matches := cursor.Matches(query, rootNode, content)

	captureNames := query.CaptureNames()
	index := make(scanner.TokenIndex)
	tokens := 0

	for {
		match := matches.Next()
		if match == nil {
			break
		}

		for _, capture := range match.Captures {
			if int(capture.Index) >= len(captureNames) || captureNames[capture.Index] != languages.CaptureName {
				continue
			}
			node := &capture.Node
			line := int(node.StartPosition().Row) + 1
			index.Add(line, string(content[node.StartByte():node.EndByte()]))
			tokens++
		}
	}

	p.logger.Logf("indexed %d identifier tokens on %d lines (%s)", tokens, len(index), lang)
	return index, nil
}
