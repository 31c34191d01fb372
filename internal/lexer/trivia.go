package lexer

import (
	"tern/internal/diag"
	"tern/internal/token"
)

// collectLeadingTrivia gathers the trivia run before the next significant
// token into lx.hold:
//   - spaces/tabs coalesce into one TriviaSpace
//   - consecutive newlines coalesce into one TriviaNewline
//   - '%' up to end of line is a TriviaLineComment
//   - '/* ... */' is a TriviaBlockComment, nesting allowed; an unterminated
//     comment is reported and clipped at EOF
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '%' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaLineComment, start)
			continue
		}

		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '*' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth := 1
			for !lx.cursor.EOF() && depth > 0 {
				if c0, c1, ok2 := lx.cursor.Peek2(); ok2 {
					if c0 == '/' && c1 == '*' {
						lx.cursor.Bump()
						lx.cursor.Bump()
						depth++
						continue
					}
					if c0 == '*' && c1 == '/' {
						lx.cursor.Bump()
						lx.cursor.Bump()
						depth--
						continue
					}
				}
				lx.cursor.Bump()
			}
			if depth > 0 {
				lx.report(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
			}
			lx.pushTrivia(token.TriviaBlockComment, start)
			continue
		}

		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}
