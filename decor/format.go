package decor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	sizeOfUnits = [...]string{"", "k", "M", "G", "T", "P", "E", "Z"}
	bytesUnits  = [...]string{"B", "KB", "MB", "GB", "TB"}
)

// FormatSizeOf formats num with an SI-like suffix, dividing by divisor
// (1000 or 1024) until the value fits three significant digits:
// 5 -> "5.00", 45 -> "45.0", 450 -> "450", 4500 -> "4.50k".
func FormatSizeOf(num float64, divisor int) string {
	if divisor < 2 {
		divisor = 1000
	}
	for _, unit := range sizeOfUnits {
		if math.Abs(num) < 999.5 {
			switch {
			case math.Abs(num) < 9.995:
				return strconv.FormatFloat(num, 'f', 2, 64) + unit
			case math.Abs(num) < 99.95:
				return strconv.FormatFloat(num, 'f', 1, 64) + unit
			default:
				return strconv.FormatFloat(num, 'f', 0, 64) + unit
			}
		}
		num /= float64(divisor)
	}
	return strconv.FormatFloat(num, 'f', 1, 64) + "Y"
}

// FormatInterval formats d as MM:SS, or H:MM:SS when at least an hour.
func FormatInterval(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	mins, s := secs/60, secs%60
	h, m := mins/60, mins%60
	if h != 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatDuration formats d in a human-readable way: "30s", "1m 30s",
// "1h 1m 5s".
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatBytes formats n bytes with 1024 based units: "500.00 B",
// "1.00 KB", "1.00 MB".
func FormatBytes(n float64) string {
	var i int
	for n >= 1024 && i < len(bytesUnits)-1 {
		n /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %s", n, bytesUnits[i])
}

// FormatPercentage formats n of total as percentage with two decimals.
// Zero total yields "0.00%".
func FormatPercentage(n, total float64) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", n/total*100)
}

// FormatCount formats a counter value, scaled if unitScale is set.
func FormatCount(n int64, unitScale int) string {
	if unitScale > 0 {
		return FormatSizeOf(float64(n), unitScale)
	}
	return strconv.FormatInt(n, 10)
}

// FormatCounters formats "current/total" when total is known, and
// "current<unit>" otherwise.
func FormatCounters(s Statistics) string {
	if s.HasTotal() {
		return FormatCount(s.Current, s.UnitScale) + "/" + FormatCount(s.Total, s.UnitScale)
	}
	return FormatCount(s.Current, s.UnitScale) + s.Unit
}

// FormatRate formats rate in units per second, or seconds per unit
// when slower than one unit per second. Unknown rate renders as
// "?<unit>/s".
func FormatRate(rate float64, unit string, unitScale int) string {
	switch {
	case rate <= 0:
		return "?" + unit + "/s"
	case rate < 1:
		inv := 1 / rate
		if unitScale > 0 {
			return FormatSizeOf(inv, unitScale) + "s/" + unit
		}
		return strconv.FormatFloat(inv, 'f', 2, 64) + "s/" + unit
	case unitScale > 0:
		return FormatSizeOf(rate, unitScale) + unit + "/s"
	default:
		return strconv.FormatFloat(rate, 'f', 2, 64) + unit + "/s"
	}
}

// FormatMetrics joins metrics as "key=value" pairs separated by ", ".
// Floating point values are printed with four decimals.
func FormatMetrics(metrics ...Metric) string {
	var b strings.Builder
	for i, m := range metrics {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.Key)
		b.WriteByte('=')
		switch v := m.Value.(type) {
		case float64:
			b.WriteString(strconv.FormatFloat(v, 'f', 4, 64))
		case float32:
			b.WriteString(strconv.FormatFloat(float64(v), 'f', 4, 32))
		default:
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}
