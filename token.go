package strptime

import (
	"fmt"
	"strconv"
)

// Escape starts a specifier in a format string.
const Escape = '%'

// Kind identifies the field a specifier fills.
type Kind uint8

const (
	KindYear    Kind = iota + 1 // %Y, 4 digits
	KindYear2                   // %y, 2 digits, resolved by the year resolver
	KindMonth                   // %m
	KindDay                     // %d
	KindHour                    // %H
	KindMinute                  // %M
	KindSecond                  // %S
	KindPercent                 // %%, matches a literal '%'
)

var kinds = [...]struct {
	verb  byte
	name  string
	width int
}{
	KindYear:    {'Y', "year", 4},
	KindYear2:   {'y', "year", 2},
	KindMonth:   {'m', "month", 2},
	KindDay:     {'d', "day", 2},
	KindHour:    {'H', "hour", 2},
	KindMinute:  {'M', "minute", 2},
	KindSecond:  {'S', "second", 2},
	KindPercent: {'%', "percent", 1},
}

func kindOf(verb rune) (Kind, bool) {
	for k := KindYear; k <= KindPercent; k++ {
		if rune(kinds[k].verb) == verb {
			return k, true
		}
	}
	return 0, false
}

func (k Kind) valid() bool { return k >= KindYear && k <= KindPercent }

// Verb returns the character that selects k after the escape character.
func (k Kind) Verb() byte {
	if !k.valid() {
		return 0
	}
	return kinds[k].verb
}

// Width returns the exact number of input characters consumed by k.
func (k Kind) Width() int {
	if !k.valid() {
		return 0
	}
	return kinds[k].width
}

func (k Kind) String() string {
	if !k.valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k].name
}

// Token is one unit of a compiled format. The concrete types are Literal
// and Specifier.
type Token interface {
	fmt.Stringer
	token()
}

// Literal must match the input exactly, case-sensitive.
type Literal struct {
	Text string
}

func (Literal) token() {}

func (l Literal) String() string { return "lit " + strconv.Quote(l.Text) }

// Specifier consumes Kind.Width() characters of input.
type Specifier struct {
	Kind Kind
}

func (Specifier) token() {}

func (s Specifier) String() string {
	return fmt.Sprintf("spec %c%c %s/%d", Escape, s.Kind.Verb(), s.Kind, s.Kind.Width())
}
