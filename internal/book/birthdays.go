package book

import (
	"time"
)

// GreetingLayout is the display format for congratulation dates.
const GreetingLayout = "2006.01.02"

// windowDays is the lookahead horizon for upcoming birthdays.
const windowDays = 7

// Greeting pairs a contact name with its weekend-adjusted congratulation date.
type Greeting struct {
	Name string
	Date time.Time
}

// FormattedDate renders the congratulation date as YYYY.MM.DD.
func (g Greeting) FormattedDate() string {
	return g.Date.Format(GreetingLayout)
}

// UpcomingBirthdays returns a greeting for every record whose birthday has
// its next occurrence within windowDays of today, in book iteration order.
//
// The next occurrence is the birthday's month/day projected onto today's
// year, or next year if that date has already passed. Feb 29 projected
// onto a non-leap year becomes Feb 28. The 0..7 day window is measured
// against the unshifted projection; only afterwards is a Saturday moved
// forward two days and a Sunday one day, so a shifted date may land just
// outside the window. Results are not sorted by date.
func (b *Book) UpcomingBirthdays(today time.Time) []Greeting {
	today = midnight(today)

	var upcoming []Greeting
	for _, rec := range b.Records() {
		bday, ok := rec.Birthday()
		if !ok {
			continue
		}

		next := nextOccurrence(bday.Date(), today)
		daysAhead := int(next.Sub(today) / (24 * time.Hour))
		if daysAhead < 0 || daysAhead > windowDays {
			continue
		}

		switch next.Weekday() {
		case time.Saturday:
			next = next.AddDate(0, 0, 2)
		case time.Sunday:
			next = next.AddDate(0, 0, 1)
		}

		upcoming = append(upcoming, Greeting{Name: rec.Name(), Date: next})
	}
	return upcoming
}

// nextOccurrence projects bday's month/day onto today's year, rolling to
// the following year when the projection falls before today.
func nextOccurrence(bday, today time.Time) time.Time {
	next := project(bday, today.Year())
	if next.Before(today) {
		next = project(bday, today.Year()+1)
	}
	return next
}

// project maps a birth date onto year. Feb 29 falls back to Feb 28 when
// year is not a leap year; time.Date would normalize it to Mar 1 instead.
func project(bday time.Time, year int) time.Time {
	_, month, day := bday.Date()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// midnight truncates t to its calendar date in UTC.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
