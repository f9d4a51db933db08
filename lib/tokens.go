package lib

import (
	"strconv"
)

type TokenType int

const (
	TokenTypeParenOpen TokenType = iota
	TokenTypeParenClose
	TokenTypeTerminalID
	TokenTypeGate
)

// Token is one lexed unit of a gate expression. Only the payload field
// matching Type is meaningful: Terminal for TokenTypeTerminalID, Gate
// for TokenTypeGate.
type Token struct {
	Type     TokenType
	Terminal uint16
	Gate     Gate
}

func (t Token) String() string {
	switch t.Type {
	case TokenTypeParenOpen:
		return "("
	case TokenTypeParenClose:
		return ")"
	case TokenTypeTerminalID:
		return strconv.FormatUint(uint64(t.Terminal), 10)
	case TokenTypeGate:
		return t.Gate.String()
	}
	return "INVALID"
}
