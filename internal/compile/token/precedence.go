package token

type Precedence int

const (
	PrecedenceNone Precedence = iota
	PrecedenceEquality
	PrecedenceComparison
	PrecedenceSum
	PrecedenceProduct
	PrecedenceCall
)

func (t Type) Precedence() Precedence {
	switch t {
	case Equal, NotEqual:
		return PrecedenceEquality
	case Less, LessEqual, Greater, GreaterEqual:
		return PrecedenceComparison
	case Plus, Minus:
		return PrecedenceSum
	case Asterisk, Slash:
		return PrecedenceProduct
	case OpenParen, OpenBracket:
		return PrecedenceCall
	default:
		return PrecedenceNone
	}
}
