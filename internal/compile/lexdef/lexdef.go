// Package lexdef exposes the sol scanner as a participle lexer definition,
// so grammars built with github.com/alecthomas/participle/v2 can consume
// sol tokens directly.
//
// Grammar symbols are the token type names (Identifier, Integer, Assign,
// Decl, ...). Token values are the lexemes, so keyword aliases such as "let"
// keep their spelling and are matched by type with @Decl.
package lexdef

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2/lexer"

	"codeberg.org/rileyq/sol/internal/compile/scanner"
	"codeberg.org/rileyq/sol/internal/compile/token"
)

type Definition struct {
	symbols map[string]lexer.TokenType
}

var (
	_ lexer.Definition       = (*Definition)(nil)
	_ lexer.StringDefinition = (*Definition)(nil)
)

func New() *Definition {
	symbols := map[string]lexer.TokenType{"EOF": lexer.EOF}
	for _, typ := range token.Types() {
		symbols[typ.Name()] = lexer.TokenType(typ)
	}
	return &Definition{symbols: symbols}
}

func (d *Definition) Symbols() map[string]lexer.TokenType {
	return d.symbols
}

func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	scn, err := scanner.NewFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("lex %s: %w", filename, err)
	}
	return &Lexer{filename: filename, scn: scn}, nil
}

func (d *Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	return &Lexer{filename: filename, scn: scanner.New(input)}, nil
}

// Lexer adapts a scanner to participle's lexer.Lexer. Once the input is
// exhausted every call to Next returns an EOF token. Position offsets count
// characters, not bytes.
type Lexer struct {
	filename string
	scn      *scanner.Scanner
}

func (l *Lexer) Next() (lexer.Token, error) {
	tok, ok := l.scn.Scan()
	if !ok {
		return lexer.EOFToken(lexer.Position{
			Filename: l.filename,
			Offset:   l.scn.Offset(),
			Line:     l.scn.Line(),
			Column:   l.scn.Column(),
		}), nil
	}
	return lexer.Token{
		Type:  lexer.TokenType(tok.Type),
		Value: tok.Text,
		Pos: lexer.Position{
			Filename: l.filename,
			Offset:   int(tok.Pos) - 1,
			Line:     tok.Line,
			Column:   tok.Column,
		},
	}, nil
}
