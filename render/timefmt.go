package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateTokens lists the supported layout tokens, longest first so that
// "MMMM" wins over "MM" and "M".
var dateTokens = []string{
	"YYYY", "MMMM", "dddd",
	"SSS", "MMM", "ddd",
	"YY", "MM", "DD", "dd", "HH", "hh", "mm", "ss", "ZZ",
	"M", "D", "d", "H", "h", "m", "s", "A", "a", "Z",
}

// FormatTime formats t using day.js style layout tokens, for example
// "YYYY-MM-DD H:mm:ss". Text inside square brackets is copied verbatim and
// any character that is not part of a token passes through unchanged.
//
// Supported tokens: YYYY YY M MM MMM MMMM D DD d dd ddd dddd H HH h hh
// m mm s ss SSS A a Z ZZ.
func FormatTime(t time.Time, layout string) string {
	var b strings.Builder
	for i := 0; i < len(layout); {
		if layout[i] == '[' {
			if end := strings.IndexByte(layout[i:], ']'); end > 0 {
				b.WriteString(layout[i+1 : i+end])
				i += end + 1
				continue
			}
		}

		token := matchToken(layout[i:])
		if token == "" {
			b.WriteByte(layout[i])
			i++
			continue
		}
		b.WriteString(formatToken(t, token))
		i += len(token)
	}
	return b.String()
}

func matchToken(s string) string {
	for _, tok := range dateTokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func formatToken(t time.Time, token string) string {
	switch token {
	case "YYYY":
		return strconv.Itoa(t.Year())
	case "YY":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "MMMM":
		return t.Month().String()
	case "MMM":
		return t.Month().String()[:3]
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	case "D":
		return strconv.Itoa(t.Day())
	case "dddd":
		return t.Weekday().String()
	case "ddd":
		return t.Weekday().String()[:3]
	case "dd":
		return t.Weekday().String()[:2]
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return fmt.Sprintf("%02d", hour12(t))
	case "h":
		return strconv.Itoa(hour12(t))
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "s":
		return strconv.Itoa(t.Second())
	case "SSS":
		return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
	case "A":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	case "ZZ":
		return t.Format("-0700")
	case "Z":
		return t.Format("-07:00")
	}
	return token
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}
