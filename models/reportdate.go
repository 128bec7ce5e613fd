package models

// ReportDate is a report target: either the wildcard covering every
// stored record, or one literal from-date matched by exact text. Keeping
// it a tagged value rather than a magic string means a stored date can
// never collide with the wildcard token.
type ReportDate struct {
	all  bool
	date string
}

func AllDates() ReportDate {
	return ReportDate{all: true}
}

func ExactDate(date string) ReportDate {
	return ReportDate{date: date}
}

func (d ReportDate) All() bool {
	return d.all
}

// Matches reports whether a record with the given from-date belongs in
// the report. Literal dates compare by exact text, no normalization.
func (d ReportDate) Matches(fromDate string) bool {
	return d.all || d.date == fromDate
}

func (d ReportDate) String() string {
	if d.all {
		return "All"
	}

	return d.date
}
