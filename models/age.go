package models

import "time"

// DateLayout is the format of every date field in the form.
const DateLayout = "2006-01-02"

// MinorAge is the age below which a nominee needs an appointee.
const MinorAge = 18

// AgeAt returns the whole years between dob and now. A blank or unparsable
// date yields 0.
func AgeAt(dob string, now time.Time) int {
	born, err := time.Parse(DateLayout, dob)
	if err != nil {
		return 0
	}

	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age
}

// IsMinorAt reports whether the nominee is younger than [MinorAge] at now.
func (n Nominee) IsMinorAt(now time.Time) bool {
	return AgeAt(n.DOB, now) < MinorAge
}
