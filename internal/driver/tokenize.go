package driver

import (
	"tern/internal/diag"
	"tern/internal/lexer"
	"tern/internal/source"
	"tern/internal/token"
)

// Tokenize lexes one loaded file to completion.
func Tokenize(fset *source.FileSet, id source.FileID, maxDiags int) ([]token.Token, *diag.Bag) {
	if maxDiags <= 0 {
		maxDiags = 256
	}
	bag := diag.NewBag(maxDiags)
	lx := lexer.New(fset.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	bag.Sort()
	return toks, bag
}
