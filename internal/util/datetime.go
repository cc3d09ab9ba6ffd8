package util

import "time"

// The sheet displays timestamps as "5/9/2025, 3:07:02 pm": day/month/year
// with no leading zeros and a 12-hour clock.
const sheetDatetimeLayout = "2/1/2006, 3:04:05 pm"

func FormatDatetime(t time.Time) string {
	return t.Format(sheetDatetimeLayout)
}

// NowDatetime is the display timestamp attached to every mutation payload.
func NowDatetime() string {
	return FormatDatetime(time.Now())
}
