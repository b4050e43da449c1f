package scanner

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"unicode"

	"codeberg.org/rileyq/sol/internal/compile/token"
)

const eof rune = -1

// Scanner splits sol source text into tokens. The zero value is not usable;
// construct one with New or NewFromReader.
//
// A Scanner never fails. Characters it cannot classify, and integer literals
// that do not fit in 32 bits, are returned as token.Invalid.
type Scanner struct {
	src    []rune
	off    int
	line   int
	column int
}

func New(src string) *Scanner {
	return &Scanner{src: []rune(src), line: 1, column: 1}
}

// NewFromReader reads all of rd before scanning begins.
func NewFromReader(rd io.Reader) (*Scanner, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return New(string(data)), nil
}

// Scan returns the next token. It reports false once the input is
// exhausted, and keeps doing so on every later call.
func (s *Scanner) Scan() (token.Token, bool) {
	for {
		s.skipSpace()

		start, line, column := s.off, s.line, s.column
		r := s.next()

		var typ token.Type
		switch {
		case r == eof:
			return token.Token{}, false
		case r == '/' && s.peek() == '/':
			s.lineComment()
			continue
		case r == '/' && s.peek() == '*':
			s.blockComment()
			continue
		case isIdentifierStart(r):
			typ = s.identifier(start)
		case isDigit(r):
			s.integer()
			tok := s.token(token.Integer, start, line, column)
			v, err := strconv.ParseInt(tok.Text, 10, 32)
			if err != nil {
				tok.Type = token.Invalid
			} else {
				tok.Value = int32(v)
			}
			return tok, true
		default:
			typ = s.fixed(r)
		}

		return s.token(typ, start, line, column), true
	}
}

// All returns the remaining tokens as a sequence. The sequence shares the
// scanner's cursor, so it can be ranged over once.
func (s *Scanner) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok, ok := s.Scan()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokens scans the rest of the input.
func (s *Scanner) Tokens() []token.Token {
	return slices.Collect(s.All())
}

// Offset is the number of characters consumed so far.
func (s *Scanner) Offset() int { return s.off }

func (s *Scanner) Line() int { return s.line }

func (s *Scanner) Column() int { return s.column }

func (s *Scanner) identifier(start int) token.Type {
	for isIdentifierContinue(s.peek()) {
		s.next()
	}
	typ := token.Lookup(string(s.src[start:s.off]))
	if !typ.IsKeyword() {
		typ = token.Identifier
	}
	return typ
}

func (s *Scanner) integer() {
	for isDigit(s.peek()) {
		s.next()
	}
}

// fixed walks the operator trie from the lead character r, taking the
// longest match.
func (s *Scanner) fixed(r rune) token.Type {
	node := token.Fixed.Child(r)
	if node == nil {
		return token.Invalid
	}
	for {
		c := node.Child(s.peek())
		if c == nil {
			break
		}
		s.next()
		node = c
	}
	return node.Type
}

func (s *Scanner) lineComment() {
	for {
		r := s.next()
		if r == eof || r == '\n' {
			return
		}
	}
}

// blockComment runs to the closing "*/", or to the end of input if there is
// none. The opening '*' is consumed first, so "/*/" does not close itself.
func (s *Scanner) blockComment() {
	s.next() // *
	for {
		r := s.next()
		if r == eof {
			return
		}
		if r == '*' && s.peek() == '/' {
			s.next()
			return
		}
	}
}

func (s *Scanner) skipSpace() {
	for unicode.IsSpace(s.peek()) {
		s.next()
	}
}

func (s *Scanner) token(typ token.Type, start, line, column int) token.Token {
	return token.Token{
		Type:   typ,
		Pos:    token.Pos(start + 1),
		End:    token.Pos(s.off + 1),
		Line:   line,
		Column: column,
		Text:   string(s.src[start:s.off]),
	}
}

func (s *Scanner) next() rune {
	if s.off >= len(s.src) {
		return eof
	}
	r := s.src[s.off]
	s.off++
	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return r
}

func (s *Scanner) peek() rune {
	if s.off >= len(s.src) {
		return eof
	}
	return s.src[s.off]
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r)
}

func isIdentifierContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return unicode.IsDigit(r)
}
