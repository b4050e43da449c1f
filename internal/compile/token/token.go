package token

import "strconv"

//go:generate go run ../../../tools/generate_tokens.go tokens.json type_gen.go

// Pos is a 1-based character offset into the source text.
type Pos int

const NoPos Pos = 0

// Token is a single lexical unit. Pos and End delimit the lexeme as
// [Pos, End); Line and Column locate its first character.
type Token struct {
	Type   Type
	Pos    Pos
	End    Pos
	Line   int
	Column int
	Text   string
	Value  int32
}

func (t Token) String() string {
	switch t.Type {
	case Identifier:
		return t.Text
	case Integer:
		return strconv.FormatInt(int64(t.Value), 10)
	default:
		return t.Type.String()
	}
}

// Types lists every defined Type in declaration order.
func Types() []Type {
	types := make([]Type, 0, lastFixed+1)
	for t := Invalid; t <= lastFixed; t++ {
		types = append(types, t)
	}
	return types
}

func (t Type) IsKeyword() bool {
	return t >= firstKeyword && t <= lastKeyword
}

func (t Type) IsOperator() bool {
	return t >= firstFixed && t <= lastFixed
}

func (t Type) IsLiteral() bool {
	return t == Identifier || t == Integer
}

// Lookup returns the type of the fixed spelling text, or Invalid when text
// is not an operator, delimiter or keyword.
func Lookup(text string) Type {
	node := Fixed
	for _, r := range text {
		if node = node.Child(r); node == nil {
			return Invalid
		}
	}
	return node.Type
}

// Child returns the child of node reached by r, or nil.
func (node *TrieNode) Child(r rune) *TrieNode {
	for _, c := range node.Children {
		if c.Rune == r {
			return c
		}
	}
	return nil
}
