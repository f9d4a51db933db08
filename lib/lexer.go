package lib

import (
	"strconv"
)

// Tokenize lexes a whole gate expression into its token sequence.
// The first lexical error aborts the scan and returns no partial
// result. The parenthesis balance check runs only after the entire
// input lexed cleanly, so any lexical error takes precedence over
// ErrParenCountMismatch.
func Tokenize(expr string) ([]Token, error) {
	tokens := []Token{}
	opens, closes := 0, 0

	err := lex(expr, func(tok Token) {
		switch tok.Type {
		case TokenTypeParenOpen:
			opens++
		case TokenTypeParenClose:
			closes++
		}
		tokens = append(tokens, tok)
	})
	if err != nil {
		return nil, err
	}

	if opens != closes {
		return nil, ErrParenCountMismatch
	}

	return tokens, nil
}

func lex(expr string, emit func(Token)) error {
	l := newLexer(expr, emit)
	return l.scan()
}

type lexer struct {
	expr             []rune
	length           int
	currentCharIndex int
	emitCallback     func(Token)
}

func newLexer(expr string, emit func(Token)) *lexer {
	runes := []rune(expr)
	return &lexer{
		expr:             runes,
		length:           len(runes),
		currentCharIndex: 0,
		emitCallback:     emit,
	}
}

func (l *lexer) peek() (rune, bool) {
	if l.currentCharIndex >= l.length {
		return 0, false
	}
	return l.expr[l.currentCharIndex], true
}

func (l *lexer) advance() {
	l.currentCharIndex++
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

// next consumes exactly one maximal match (or one whitespace run) and
// emits at most one token. Digit runs are tried before letter runs so
// the two classes stay unambiguous if more rules are added, even
// though no lexeme mixes them today.
func (l *lexer) next() (bool, error) {
	ch, ok := l.peek()
	if !ok {
		return false, nil
	}

	switch {
	case ch == '(':
		l.advance()
		l.emitCallback(Token{Type: TokenTypeParenOpen})
	case ch == ')':
		l.advance()
		l.emitCallback(Token{Type: TokenTypeParenClose})
	case isDigit(ch):
		return true, l.scanTerminalID()
	case isLetter(ch):
		return true, l.scanGate()
	case isSpace(ch):
		l.eatWhitespace()
	default:
		return false, ErrInvalidToken
	}

	return true, nil
}

func (l *lexer) scanTerminalID() error {
	word := l.takeWhile(isDigit)
	id, err := strconv.ParseUint(word, 10, 16)
	if err != nil {
		return &ParseIntError{Err: err}
	}
	l.emitCallback(Token{Type: TokenTypeTerminalID, Terminal: uint16(id)})
	return nil
}

func (l *lexer) scanGate() error {
	word := l.takeWhile(isLetter)
	gate, err := gateFromWord(word)
	if err != nil {
		return err
	}
	l.emitCallback(Token{Type: TokenTypeGate, Gate: gate})
	return nil
}

// takeWhile advances past the maximal run of characters matching pred
// and returns the run.
func (l *lexer) takeWhile(pred func(rune) bool) string {
	start := l.currentCharIndex
	for {
		ch, ok := l.peek()
		if !ok || !pred(ch) {
			break
		}
		l.advance()
	}
	return string(l.expr[start:l.currentCharIndex])
}

func (l *lexer) eatWhitespace() {
	for {
		ch, ok := l.peek()
		if !ok || !isSpace(ch) {
			break
		}
		l.advance()
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\f'
}
