package strptime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Compile errors
var (
	ErrUnknownSpecifier = errors.New("unknown specifier")
	ErrDanglingEscape   = errors.New("dangling escape at end of format")
	ErrIncompleteDate   = errors.New("date needs year, month and day")
)

// CompileError reports a malformed format string. Err is one of
// ErrUnknownSpecifier, ErrDanglingEscape or ErrIncompleteDate.
type CompileError struct {
	Format string
	// Byte position of the escape character; -1 for ErrIncompleteDate
	Pos int
	// The offending specifier character for ErrUnknownSpecifier
	Char rune
	Err  error
}

func (e *CompileError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownSpecifier):
		return fmt.Sprintf("format %q:%d: %s '%c%c'", e.Format, e.Pos, e.Err, Escape, e.Char)
	case e.Pos >= 0:
		return fmt.Sprintf("format %q:%d: %s", e.Format, e.Pos, e.Err)
	}
	return fmt.Sprintf("format %q: %s", e.Format, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Parse error classes, matched by the concrete errors with errors.Is.
var (
	ErrLiteralMismatch    = errors.New("literal mismatch")
	ErrInsufficientDigits = errors.New("insufficient digits")
	ErrInvalidDigit       = errors.New("invalid digit")
	ErrTrailingInput      = errors.New("trailing input")
	ErrInvalidMonth       = errors.New("invalid month")
	ErrInvalidDayOfMonth  = errors.New("invalid day of month")
	ErrInvalidHour        = errors.New("invalid hour")
	ErrInvalidMinute      = errors.New("invalid minute")
	ErrInvalidSecond      = errors.New("invalid second")
)

// ParseError reports input that does not match a compiled format. Err is
// one of the concrete types below; use errors.As to inspect it.
type ParseError struct {
	Format string
	Input  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q as %q: %s", e.Input, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Pos returns the byte position in Input where scanning failed or -1 if
// the input was scanned completely and a value is out of range.
func (e *ParseError) Pos() int {
	if p, ok := e.Err.(interface{ pos() int }); ok {
		return p.pos()
	}
	return -1
}

// Explain renders the input, a caret under the failing position (if
// any) and the error message on separate lines.
func (e *ParseError) Explain() string {
	var sb strings.Builder
	sb.WriteString(e.Input)
	sb.WriteByte('\n')
	if pos := e.Pos(); pos >= 0 {
		sb.WriteString(strings.Repeat(" ", columnOf(e.Input, pos)))
		sb.WriteString("^-----\n")
	}
	sb.WriteString(e.Err.Error())
	return sb.String()
}

// columnOf counts runes up to byte position pos
func columnOf(s string, pos int) int {
	if pos > len(s) {
		pos = len(s)
	}
	return len([]rune(s[:pos]))
}

// LiteralMismatch reports input that differs from a literal of the format.
// Expected is the rest of the literal from Pos on. Found is the input at Pos
// with as many runes as Expected, or empty when the input ended.
type LiteralMismatch struct {
	Pos      int
	Expected string
	Found    string
}

func (e *LiteralMismatch) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("%s at %d: expected %q, found end of input", ErrLiteralMismatch, e.Pos, e.Expected)
	}
	return fmt.Sprintf("%s at %d: expected %q, found %q", ErrLiteralMismatch, e.Pos, e.Expected, e.Found)
}

func (e *LiteralMismatch) Is(target error) bool { return target == ErrLiteralMismatch }

func (e *LiteralMismatch) pos() int { return e.Pos }

// InsufficientDigits reports that fewer than Kind.Width() characters were
// left at Pos.
type InsufficientDigits struct {
	Kind Kind
	Pos  int
}

func (e *InsufficientDigits) Error() string {
	return fmt.Sprintf("%s at %d: %s needs %d digits",
		ErrInsufficientDigits,
		e.Pos,
		e.Kind,
		e.Kind.Width(),
	)
}

func (e *InsufficientDigits) Is(target error) bool { return target == ErrInsufficientDigits }

func (e *InsufficientDigits) pos() int { return e.Pos }

// InvalidDigit reports a character other than ASCII 0…9 in a numeric field.
type InvalidDigit struct {
	Pos   int
	Found rune
}

func (e *InvalidDigit) Error() string {
	return fmt.Sprintf("%s at %d: %q", ErrInvalidDigit, e.Pos, e.Found)
}

func (e *InvalidDigit) Is(target error) bool { return target == ErrInvalidDigit }

func (e *InvalidDigit) pos() int { return e.Pos }

// TrailingInput reports input left over after the last token.
type TrailingInput struct {
	Pos int
}

func (e *TrailingInput) Error() string {
	return ErrTrailingInput.Error() + " at " + strconv.Itoa(e.Pos)
}

func (e *TrailingInput) Is(target error) bool { return target == ErrTrailingInput }

func (e *TrailingInput) pos() int { return e.Pos }

// InvalidMonth reports a month outside 1…12.
type InvalidMonth struct{ Value int }

func (e *InvalidMonth) Error() string { return fmt.Sprintf("%s %d", ErrInvalidMonth, e.Value) }

func (e *InvalidMonth) Is(target error) bool { return target == ErrInvalidMonth }

// InvalidDayOfMonth reports a day outside 1…DaysIn(Year, Month).
type InvalidDayOfMonth struct {
	Year, Month, Value int
}

func (e *InvalidDayOfMonth) Error() string {
	return fmt.Sprintf("%s %d in %04d-%02d", ErrInvalidDayOfMonth, e.Value, e.Year, e.Month)
}

func (e *InvalidDayOfMonth) Is(target error) bool { return target == ErrInvalidDayOfMonth }

// InvalidHour reports an hour outside 0…23.
type InvalidHour struct{ Value int }

func (e *InvalidHour) Error() string { return fmt.Sprintf("%s %d", ErrInvalidHour, e.Value) }

func (e *InvalidHour) Is(target error) bool { return target == ErrInvalidHour }

type InvalidMinute struct{ Value int }

func (e *InvalidMinute) Error() string { return fmt.Sprintf("%s %d", ErrInvalidMinute, e.Value) }

func (e *InvalidMinute) Is(target error) bool { return target == ErrInvalidMinute }

type InvalidSecond struct{ Value int }

func (e *InvalidSecond) Error() string { return fmt.Sprintf("%s %d", ErrInvalidSecond, e.Value) }

func (e *InvalidSecond) Is(target error) bool { return target == ErrInvalidSecond }
