package decor

import (
	"testing"
	"time"
)

func TestWCFormat(t *testing.T) {
	cases := map[string]struct {
		wc        WC
		str       string
		want      string
		wantWidth int
	}{
		"no width":     {WC{}, "foo", "foo", 3},
		"pad left":     {WC{W: 6}, "foo", "   foo", 6},
		"pad right":    {WC{W: 6, C: DindentRight}, "foo", "foo   ", 6},
		"extra space":  {WC{C: DextraSpace}, "foo", " foo", 4},
		"extra spaceR": {WC{C: DSpaceR}, "foo", "foo ", 4},
		"too wide":     {WC{W: 2}, "foo", "foo", 3},
		"ansi":         {WC{W: 5}, "\x1b[91mfoo\x1b[0m", "  \x1b[91mfoo\x1b[0m", 5},
		"wide runes":   {WC{W: 6}, "日本", "  日本", 6},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, width := tc.wc.Format(tc.str)
			if got != tc.want {
				t.Errorf("want %q, got %q", tc.want, got)
			}
			if width != tc.wantWidth {
				t.Errorf("want width %d, got %d", tc.wantWidth, width)
			}
		})
	}
}

func TestPercentageDecor(t *testing.T) {
	cases := []struct {
		name     string
		total    int64
		current  int64
		expected string
	}{
		{"unknown", 0, 5, ""},
		{"zero", 100, 0, "  0%"},
		{"five", 100, 5, "  5%"},
		{"half", 100, 50, " 50%"},
		{"full", 100, 100, "100%"},
		{"overshoot", 100, 110, "110%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := Percentage().Decor(Statistics{Total: tc.total, Current: tc.current})
			if got != tc.expected {
				t.Fatalf("expected: %q, got: %q\n", tc.expected, got)
			}
		})
	}
}

func TestRemaining(t *testing.T) {
	cases := map[string]struct {
		st   Statistics
		want string
	}{
		"unknown total": {Statistics{Current: 10, Rate: 5}, "?"},
		"unknown rate":  {Statistics{Total: 100, Current: 10}, "?"},
		"estimate":      {Statistics{Total: 100, Current: 40, Rate: 2}, "00:30"},
		"done":          {Statistics{Total: 100, Current: 100, Rate: 2}, "00:00"},
		"overshoot":     {Statistics{Total: 100, Current: 120, Rate: 2}, "00:00"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got, _ := Remaining().Decor(tc.st); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestStatisticsRemaining(t *testing.T) {
	st := Statistics{Total: 10, Current: 4, Rate: 3}
	d, ok := st.Remaining()
	if !ok {
		t.Fatal("expected known remaining")
	}
	if d != 2*time.Second {
		t.Fatalf("want %v, got %v", 2*time.Second, d)
	}
}

func TestDescription(t *testing.T) {
	if got, w := Description().Decor(Statistics{}); got != "" || w != 0 {
		t.Fatalf("want empty, got %q width %d", got, w)
	}
	if got, w := Description().Decor(Statistics{Description: "Loading"}); got != "Loading: " || w != 9 {
		t.Fatalf("unexpected %q width %d", got, w)
	}
}

func TestOnCompleteOnAbort(t *testing.T) {
	d := OnAbort(OnComplete(Name("working"), "done"), "failed")
	cases := map[string]struct {
		st   Statistics
		want string
	}{
		"running":   {Statistics{}, "working"},
		"completed": {Statistics{Completed: true}, "done"},
		"aborted":   {Statistics{Aborted: true}, "failed"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got, _ := d.Decor(tc.st); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
	if OnComplete(nil, "x") != nil {
		t.Fatal("expected nil for nil decorator")
	}
	if u, ok := d.(Wrapper); !ok || u.Unwrap() == nil {
		t.Fatal("expected Wrapper implementation")
	}
}

func TestMedian(t *testing.T) {
	m := NewMedian()
	for _, v := range []float64{5, 100, 7} {
		m.Add(v)
	}
	if got := m.Value(); got != 7 {
		t.Fatalf("want 7, got %v", got)
	}
	m.Set(3)
	if got := m.Value(); got != 3 {
		t.Fatalf("want 3, got %v", got)
	}
}

func TestNewEwma(t *testing.T) {
	ma := NewEwma(0)
	ma.Add(10)
	if got := ma.Value(); got != 10 {
		t.Fatalf("want first sample to seed average, got %v", got)
	}
}
