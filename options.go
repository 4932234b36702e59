package strptime

// DefaultPivot splits two-digit years: values below map to 20xx, the
// others to 19xx.
const DefaultPivot = 69

// YearResolver maps the value of a two-digit year (0…99) to a full year.
type YearResolver func(yy int) int

// Option configures a Parser at compile time.
type Option func(*Parser)

// WithYearResolver sets how %y is resolved to a full year. A nil
// resolver restores the default.
func WithYearResolver(r YearResolver) Option {
	return func(p *Parser) {
		if r == nil {
			r = PivotResolver(DefaultPivot)
		}
		p.year2 = r
	}
}

// WithPivot is WithYearResolver(PivotResolver(pivot)).
func WithPivot(pivot int) Option { return WithYearResolver(PivotResolver(pivot)) }

// PivotResolver maps yy < pivot to 2000+yy and all other values to 1900+yy.
func PivotResolver(pivot int) YearResolver {
	return func(yy int) int {
		if yy < pivot {
			return 2000 + yy
		}
		return 1900 + yy
	}
}
