package lexical

import "github.com/cairngraph/exact/internal/numerr"

// parts is the decomposition of a numeric token. All digit fields hold raw
// ASCII digits with signs and separators stripped.
type parts struct {
	neg     bool
	int_    string
	frac    string
	expNeg  bool
	exp     string
	hasFrac bool
	hasExp  bool
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) peek() (byte, bool) {
	if s.pos >= len(s.input) {
		return 0, false
	}
	return s.input[s.pos], true
}

func (s *scanner) accept(b byte) bool {
	if c, ok := s.peek(); ok && c == b {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) digits() string {
	start := s.pos
	for {
		c, ok := s.peek()
		if !ok || c < '0' || c > '9' {
			break
		}
		s.pos++
	}
	return s.input[start:s.pos]
}

// scan validates and decomposes a JSON-number/decimal lexical form. The
// grammar is sign? digits ('.' digits)? ([eE] sign? digits)?. A leading dot
// and a trailing dot are rejected, as JSON does.
func scan(tok string) (parts, error) {
	var p parts
	s := &scanner{input: tok}

	if s.accept('-') {
		p.neg = true
	} else {
		s.accept('+')
	}

	p.int_ = s.digits()
	if len(p.int_) == 0 {
		return parts{}, numerr.MalformedNumericError{Token: tok}
	}

	if s.accept('.') {
		p.hasFrac = true
		p.frac = s.digits()
		if len(p.frac) == 0 {
			return parts{}, numerr.MalformedNumericError{Token: tok}
		}
	}

	if s.accept('e') || s.accept('E') {
		p.hasExp = true
		if s.accept('-') {
			p.expNeg = true
		} else {
			s.accept('+')
		}
		p.exp = s.digits()
		if len(p.exp) == 0 {
			return parts{}, numerr.MalformedNumericError{Token: tok}
		}
	}

	if s.pos != len(tok) {
		return parts{}, numerr.MalformedNumericError{Token: tok}
	}
	return p, nil
}

// ScanNumber reports whether tok is a valid numeric lexical form.
func ScanNumber(tok string) error {
	_, err := scan(tok)
	return err
}
