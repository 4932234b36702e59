package strptime

import "unicode/utf8"

type optInt struct {
	v  int
	ok bool
}

func (o *optInt) set(v int) { o.v, o.ok = v, true }

// rawFields are the unchecked values scanned from one input.
type rawFields struct {
	year, month, day     optInt
	hour, minute, second optInt
	// year was last written by %y
	shortYear bool
}

func (raw *rawFields) store(k Kind, v int) {
	switch k {
	case KindYear:
		raw.year.set(v)
		raw.shortYear = false
	case KindYear2:
		raw.year.set(v)
		raw.shortYear = true
	case KindMonth:
		raw.month.set(v)
	case KindDay:
		raw.day.set(v)
	case KindHour:
		raw.hour.set(v)
	case KindMinute:
		raw.minute.set(v)
	case KindSecond:
		raw.second.set(v)
	}
}

// scan walks the program and the input in lockstep. Each token has a
// fixed width, so there is no backtracking.
func (p *Parser) scan(input string) (raw rawFields, err error) {
	pos := 0
	for _, tok := range p.prog {
		switch tok := tok.(type) {
		case Literal:
			if pos, err = acceptLiteral(input, pos, tok.Text); err != nil {
				return raw, err
			}
		case Specifier:
			if tok.Kind == KindPercent {
				if pos, err = acceptLiteral(input, pos, "%"); err != nil {
					return raw, err
				}
				continue
			}
			var v int
			if v, pos, err = atoi(input, pos, tok.Kind); err != nil {
				return raw, err
			}
			raw.store(tok.Kind, v)
		default:
			panic("strptime: invalid token in program")
		}
	}
	if pos < len(input) {
		return raw, &TrailingInput{Pos: pos}
	}
	return raw, nil
}

func acceptLiteral(input string, pos int, lit string) (int, error) {
	for i := 0; i < len(lit); {
		_, lsz := utf8.DecodeRuneInString(lit[i:])
		if pos >= len(input) {
			return pos, &LiteralMismatch{Pos: pos, Expected: lit[i:]}
		}
		_, isz := utf8.DecodeRuneInString(input[pos:])
		// bytes, not runes: invalid encodings all decode to RuneError
		if lit[i:i+lsz] != input[pos:pos+isz] {
			return pos, &LiteralMismatch{
				Pos:      pos,
				Expected: lit[i:],
				Found:    runePrefix(input[pos:], utf8.RuneCountInString(lit[i:])),
			}
		}
		i += lsz
		pos += isz
	}
	return pos, nil
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	end := 0
	for ; n > 0 && end < len(s); n-- {
		_, sz := utf8.DecodeRuneInString(s[end:])
		end += sz
	}
	return s[:end]
}

// hasRunes reports whether s has at least n runes.
func hasRunes(s string, n int) bool {
	for i := 0; n > 0; n-- {
		if i >= len(s) {
			return false
		}
		_, sz := utf8.DecodeRuneInString(s[i:])
		i += sz
	}
	return true
}

// atoi reads exactly k.Width() decimal digits starting at pos.
func atoi(input string, pos int, k Kind) (v, next int, err error) {
	w := k.Width()
	if !hasRunes(input[pos:], w) {
		return 0, pos, &InsufficientDigits{Kind: k, Pos: pos}
	}
	for i := pos; i < pos+w; i++ {
		c := input[i]
		if c < '0' || c > '9' {
			r, _ := utf8.DecodeRuneInString(input[i:])
			return 0, pos, &InvalidDigit{Pos: i, Found: r}
		}
		v = 10*v + int(c-'0')
	}
	return v, pos + w, nil
}
