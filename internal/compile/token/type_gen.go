// Code generated by generate_tokens.go

package token

type Type int

const (
	Invalid Type = iota
	Identifier
	Integer
	Decl
	Else
	For
	Fun
	If
	Return
	While
	Assign
	Asterisk
	Bang
	CloseBrace
	CloseBracket
	CloseParen
	Comma
	Equal
	Greater
	GreaterEqual
	Less
	LessEqual
	Minus
	NotEqual
	OpenBrace
	OpenBracket
	OpenParen
	Plus
	Semicolon
	Slash
)

const (
	firstKeyword = Decl
	lastKeyword  = While
	firstFixed   = Assign
	lastFixed    = Slash
)

func (t Type) String() string {
	if t < 0 || t > Slash {
		t = Invalid
	}
	return names[t]
}

var names = []string{"<invalid>", "<identifier>", "<integer>", "decl", "else", "for", "fun", "if", "return", "while", "=", "*", "!", "}", "]", ")", ",", "==", ">", ">=", "<", "<=", "-", "!=", "{", "[", "(", "+", ";", "/"}

func (t Type) Name() string {
	if t < 0 || t > Slash {
		t = Invalid
	}
	return identNames[t]
}

var identNames = []string{"Invalid", "Identifier", "Integer", "Decl", "Else", "For", "Fun", "If", "Return", "While", "Assign", "Asterisk", "Bang", "CloseBrace", "CloseBracket", "CloseParen", "Comma", "Equal", "Greater", "GreaterEqual", "Less", "LessEqual", "Minus", "NotEqual", "OpenBrace", "OpenBracket", "OpenParen", "Plus", "Semicolon", "Slash"}

type TrieNode struct {
	Rune     rune
	Type     Type
	Children []*TrieNode
}

var Fixed = &TrieNode{'\x00', Invalid, []*TrieNode{{'!', Bang, []*TrieNode{{'=', NotEqual, nil}}}, {'(', OpenParen, nil}, {')', CloseParen, nil}, {'*', Asterisk, nil}, {'+', Plus, nil}, {',', Comma, nil}, {'-', Minus, nil}, {'/', Slash, nil}, {';', Semicolon, nil}, {'<', Less, []*TrieNode{{'=', LessEqual, nil}}}, {'=', Assign, []*TrieNode{{'=', Equal, nil}}}, {'>', Greater, []*TrieNode{{'=', GreaterEqual, nil}}}, {'[', OpenBracket, nil}, {']', CloseBracket, nil}, {'d', Invalid, []*TrieNode{{'e', Invalid, []*TrieNode{{'c', Invalid, []*TrieNode{{'l', Decl, nil}}}}}}}, {'e', Invalid, []*TrieNode{{'l', Invalid, []*TrieNode{{'s', Invalid, []*TrieNode{{'e', Else, nil}}}}}}}, {'f', Invalid, []*TrieNode{{'n', Fun, nil}, {'o', Invalid, []*TrieNode{{'r', For, nil}}}, {'u', Invalid, []*TrieNode{{'n', Fun, nil}}}}}, {'i', Invalid, []*TrieNode{{'f', If, nil}}}, {'l', Invalid, []*TrieNode{{'e', Invalid, []*TrieNode{{'t', Decl, nil}}}}}, {'r', Invalid, []*TrieNode{{'e', Invalid, []*TrieNode{{'t', Invalid, []*TrieNode{{'u', Invalid, []*TrieNode{{'r', Invalid, []*TrieNode{{'n', Return, nil}}}}}}}}}}}, {'w', Invalid, []*TrieNode{{'h', Invalid, []*TrieNode{{'i', Invalid, []*TrieNode{{'l', Invalid, []*TrieNode{{'e', While, nil}}}}}}}}}, {'{', OpenBrace, nil}, {'}', CloseBrace, nil}}}
