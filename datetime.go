package strptime

// Date is a valid date of the proleptic Gregorian calendar.
type Date struct {
	year       int
	month, day int8
}

func (d Date) Year() int { return d.year }

// Month returns the month in 1…12.
func (d Date) Month() int { return int(d.month) }

// Day returns the day of the month in 1…31.
func (d Date) Day() int { return int(d.day) }

// Time is a valid time of day without leap seconds.
type Time struct {
	hour, minute, second int8
}

// Hour returns the hour in 0…23.
func (t Time) Hour() int { return int(t.hour) }

// Minute returns the minute in 0…59.
func (t Time) Minute() int { return int(t.minute) }

// Second returns the second in 0…59.
func (t Time) Second() int { return int(t.second) }

// DateTime is the result of parsing. It has a date if the format
// specified one and a time if the format had any time specifier.
type DateTime struct {
	date    Date
	time    Time
	hasDate bool
	hasTime bool
}

// Date returns the parsed date. ok is false if the format had no date.
func (dt DateTime) Date() (d Date, ok bool) { return dt.date, dt.hasDate }

// Time returns the parsed time. Time fields missing in the format are
// zero. ok is false if the format had no time specifier at all.
func (dt DateTime) Time() (t Time, ok bool) { return dt.time, dt.hasTime }

// IsZero reports whether dt has neither date nor time.
func (dt DateTime) IsZero() bool { return !dt.hasDate && !dt.hasTime }
