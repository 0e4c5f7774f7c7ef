package decor

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	cases := map[float64]string{
		500:                "500.00 B",
		1024:               "1.00 KB",
		1024 * 1024:        "1.00 MB",
		1024 * 1024 * 1024: "1.00 GB",
		1 << 50:            "1024.00 TB",
	}
	for n, want := range cases {
		if got := FormatBytes(n); got != want {
			t.Errorf("FormatBytes(%v): want %q, got %q", n, want, got)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	cases := []struct {
		n, total float64
		want     string
	}{
		{50, 100, "50.00%"},
		{75, 100, "75.00%"},
		{0, 100, "0.00%"},
		{100, 100, "100.00%"},
		{0, 0, "0.00%"},
	}
	for _, tc := range cases {
		if got := FormatPercentage(tc.n, tc.total); got != tc.want {
			t.Errorf("FormatPercentage(%v, %v): want %q, got %q", tc.n, tc.total, tc.want, got)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		30 * time.Second:   "30s",
		90 * time.Second:   "1m 30s",
		3665 * time.Second: "1h 1m 5s",
		7200 * time.Second: "2h 0m 0s",
	}
	for d, want := range cases {
		if got := FormatDuration(d); got != want {
			t.Errorf("FormatDuration(%v): want %q, got %q", d, want, got)
		}
	}
}

func TestFormatInterval(t *testing.T) {
	cases := map[time.Duration]string{
		0:                          "00:00",
		1500 * time.Millisecond:    "00:01",
		65 * time.Second:           "01:05",
		3665 * time.Second:         "1:01:05",
		-5 * time.Second:           "00:00",
		26*time.Hour + time.Minute: "26:01:00",
	}
	for d, want := range cases {
		if got := FormatInterval(d); got != want {
			t.Errorf("FormatInterval(%v): want %q, got %q", d, want, got)
		}
	}
}

func TestFormatSizeOf(t *testing.T) {
	cases := []struct {
		num     float64
		divisor int
		want    string
	}{
		{0, 1000, "0.00"},
		{5, 1000, "5.00"},
		{45, 1000, "45.0"},
		{450, 1000, "450"},
		{4500, 1000, "4.50k"},
		{1000000, 1000, "1.00M"},
		{1024, 1024, "1.00k"},
		{1536, 1024, "1.50k"},
		{1024 * 1024 * 3, 1024, "3.00M"},
		{45, 0, "45.0"},
	}
	for _, tc := range cases {
		if got := FormatSizeOf(tc.num, tc.divisor); got != tc.want {
			t.Errorf("FormatSizeOf(%v, %d): want %q, got %q", tc.num, tc.divisor, tc.want, got)
		}
	}
}

func TestFormatRate(t *testing.T) {
	cases := map[string]struct {
		rate      float64
		unit      string
		unitScale int
		want      string
	}{
		"unknown":     {0, "it", 0, "?it/s"},
		"fast":        {12.346, "it", 0, "12.35it/s"},
		"slow":        {0.5, "it", 0, "2.00s/it"},
		"scaled":      {2048, "B", 1024, "2.00kB/s"},
		"scaled slow": {0.25, "B", 1000, "4.00s/B"},
		"custom unit": {3, "req", 0, "3.00req/s"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := FormatRate(tc.rate, tc.unit, tc.unitScale); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFormatMetrics(t *testing.T) {
	got := FormatMetrics(M("loss", 0.1234), M("accuracy", 0.9567), M("epoch", 5))
	want := "loss=0.1234, accuracy=0.9567, epoch=5"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if got := FormatMetrics(); got != "" {
		t.Fatalf("want empty string, got %q", got)
	}
	if got := FormatMetrics(M("acc", "95.00%"), M("f", float32(0.5))); got != "acc=95.00%, f=0.5000" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestFormatCounters(t *testing.T) {
	cases := map[string]struct {
		st   Statistics
		want string
	}{
		"known":          {Statistics{Total: 100, Current: 45, Unit: "it"}, "45/100"},
		"unknown":        {Statistics{Current: 45, Unit: "it"}, "45it"},
		"scaled known":   {Statistics{Total: 2048, Current: 1024, Unit: "B", UnitScale: 1024}, "1.00k/2.00k"},
		"scaled unknown": {Statistics{Current: 4500, Unit: "B", UnitScale: 1000}, "4.50kB"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := FormatCounters(tc.st); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}
