package analyzer

import (
	"github.com/jenian/varlint/internal/languages"
	"github.com/jenian/varlint/internal/scanner"
)

//go:generate mockgen -source=tokens.go -destination=mocktokens.gen.go -package=analyzer

// TokenSource builds a per-line identifier index for token-aware matching
type TokenSource interface {
	Identifiers(content []byte, lang languages.Language) (scanner.TokenIndex, error)
}
