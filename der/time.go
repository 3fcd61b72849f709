// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "time"

// utcTimeLen is the length of a UTCTime in the format YYMMDDhhmmssZ.
const utcTimeLen = 13

// parseUTCTime decodes the contents of a UTCTime. Only the format
// YYMMDDhhmmssZ is accepted. Years are interpreted as 2000 to 2099.
func parseUTCTime(b []byte) (time.Time, error) {
	if len(b) != utcTimeLen || b[utcTimeLen-1] != 'Z' {
		return time.Time{}, errInvalidUTCTime
	}
	s := string(b)
	year := atoiN[int](s, 2)
	month := atoiN[time.Month](s[2:], 2)
	day := atoiN[int](s[4:], 2)
	hour := atoiN[int](s[6:], 2)
	minute := atoiN[int](s[8:], 2)
	second := atoiN[int](s[10:], 2)
	if year < 0 || month < 0 || day < 0 || hour < 0 || minute < 0 || second < 0 {
		return time.Time{}, errInvalidUTCTime
	}
	year += 2000

	ret := time.Date(year, month, day, hour, minute, second, 0, time.UTC)
	if ret.Year() != year || ret.Month() != month || ret.Day() != day || ret.Hour() != hour || ret.Minute() != minute || ret.Second() != second {
		return time.Time{}, errInvalidUTCTime
	}
	return ret, nil
}

// atoiN parses exactly n decimal digits from the start of s. If s is too short
// or contains non-digits, -1 is returned.
func atoiN[T ~int | ~int64](s string, n int) (i T) {
	if len(s) < n {
		return -1
	}
	for j := 0; j < n; j++ {
		if s[j] < '0' || '9' < s[j] {
			return -1
		}
		i = i*10 + T(s[j]-'0')
	}
	return i
}
