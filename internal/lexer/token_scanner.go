package lexer

type TokenScanner interface {
	Read() *Token
	Unread()
	HasTokens() bool
}

type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) TokenScanner {
	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

// Read returns the next token. Past the end it keeps returning EOF, so a
// token slice cut short by a lexer error still parses to a diagnostic.
func (s *SimpleTokenScanner) Read() *Token {
	if s.pos >= len(s.tokens) {
		s.pos++
		line := 1
		if len(s.tokens) != 0 {
			line = s.tokens[len(s.tokens)-1].Line
		}
		return &Token{
			Kind:  EOF,
			Value: EOF.String(),
			Line:  line,
		}
	}

	token := &s.tokens[s.pos]
	s.pos++

	return token
}

func (s *SimpleTokenScanner) Unread() {
	s.pos--
}

func (s *SimpleTokenScanner) HasTokens() bool {
	return s.pos < len(s.tokens)
}
