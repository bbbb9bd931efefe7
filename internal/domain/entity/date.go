package entity

import "time"

// DateLayout formato ISO-8601 de las fechas civiles (sin hora).
const DateLayout = "2006-01-02"

// DateOf trunca t a su fecha civil, normalizada a 00:00 UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today devuelve la fecha civil actual según la zona horaria local del proceso.
func Today() time.Time {
	return DateOf(time.Now())
}

// ParseDate interpreta "YYYY-MM-DD".
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// FormatDate devuelve la fecha civil como "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
