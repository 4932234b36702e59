/*
Package strptime parses dates and times from text according to a format
string in the style of C's strptime. It does not depend on a date/time
library: the result is a plain DateTime the user converts into whatever
type is needed.

A format string is compiled once into a Parser which then parses any
number of inputs:

	p := strptime.MustCompile("%Y-%m-%dT%H:%M:%S")
	dt, err := p.Parse("2012-04-21T11:00:00")

Compiled parsers are immutable and can be shared by goroutines without
synchronization.

# Format Strings

Text in the format string that is not a specifier must appear verbatim
in the input, case-sensitive. A specifier is the escape character '%'
followed by one of the characters below. Each numeric specifier
consumes an exact number of decimal digits, there are no optional
digits, no padding modifiers and no names.

	%Y  year, 4 digits
	%y  year, 2 digits, resolved by the year resolver (see below)
	%m  month, 2 digits, 01…12
	%d  day of month, 2 digits, 01…28/29/30/31
	%H  hour, 2 digits, 00…23
	%M  minute, 2 digits, 00…59
	%S  second, 2 digits, 00…59
	%%  a literal '%'

Any other character after '%' and a '%' at the end of the format are
compile errors. A format that uses any of year, month or day must use
all of them, in any order. Time specifiers are independent of each
other.

If a field is specified more than once, the last value scanned wins:

	%Y %d %m %d

parses "2012 01 04 21" as April 21, 2012.

# Two-Digit Years

By default %y values 00…68 are years 2000…2068 and 69…99 are years
1969…1999. Use WithPivot or WithYearResolver to change this:

	p := strptime.MustCompile("%m/%d/%y", strptime.WithYearResolver(
		func(yy int) int { return 2200 + yy },
	))

# Results

Parsing consumes the complete input. DateTime.Date returns a date only
if the format specified one; the date then is valid in the proleptic
Gregorian calendar. DateTime.Time returns a time if the format had at
least one of %H, %M, %S; missing time fields are zero. A format without
time specifiers yields no time at all, which is different from midnight.

# Errors

Compile returns a *CompileError that wraps ErrUnknownSpecifier,
ErrDanglingEscape or ErrIncompleteDate. Parser.Parse returns a
*ParseError that wraps exactly one of

	*LiteralMismatch     input differs from literal text
	*InsufficientDigits  input ends within a numeric field
	*InvalidDigit        non-digit within a numeric field
	*TrailingInput       input left after the format is done
	*InvalidMonth        month not in 1…12
	*InvalidDayOfMonth   day not in the month
	*InvalidHour         hour > 23
	*InvalidMinute       minute > 59
	*InvalidSecond       second > 59

The first four carry the byte position in the input, see
ParseError.Pos and ParseError.Explain.
*/
package strptime
