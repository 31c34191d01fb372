package token

import "tern/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment  // % to end of line
	TriviaBlockComment // /* ... */
)

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
