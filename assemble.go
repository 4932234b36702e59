package strptime

var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeapYear uses the proleptic Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days of month in year, 0 if month is not
// in 1…12.
func DaysIn(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// assemble checks the scanned fields and builds the result. The compiler
// guarantees that year, month and day are all scanned if p.date is set.
func (p *Parser) assemble(raw *rawFields) (res DateTime, err error) {
	if p.date {
		year := raw.year.v
		if raw.shortYear {
			year = p.year2(year)
		}
		month, day := raw.month.v, raw.day.v
		if month < 1 || month > 12 {
			return res, &InvalidMonth{Value: month}
		}
		if day < 1 || day > DaysIn(year, month) {
			return res, &InvalidDayOfMonth{Year: year, Month: month, Value: day}
		}
		res.date = Date{year: year, month: int8(month), day: int8(day)}
		res.hasDate = true
	}
	if !p.HasTime() {
		return res, nil
	}
	// absent fields are unset and default to 0
	hour, minute, second := raw.hour.v, raw.minute.v, raw.second.v
	switch {
	case hour > 23:
		return res, &InvalidHour{Value: hour}
	case minute > 59:
		return res, &InvalidMinute{Value: minute}
	case second > 59:
		return res, &InvalidSecond{Value: second}
	}
	res.time = Time{hour: int8(hour), minute: int8(minute), second: int8(second)}
	res.hasTime = true
	return res, nil
}
