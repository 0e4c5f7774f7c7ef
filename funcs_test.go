package iterbar_test

import (
	"bytes"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/vbauerster/iterbar"
)

func TestMap(t *testing.T) {
	var buf bytes.Buffer
	got := iterbar.Map([]int{1, 2, 3}, strconv.Itoa, iterbar.WithOutput(&buf))
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	if !strings.Contains(buf.String(), "Processing: ") {
		t.Fatalf("default description missing: %q", buf.String())
	}
}

func TestFilter(t *testing.T) {
	var buf bytes.Buffer
	even := func(n int) bool { return n%2 == 0 }
	got := iterbar.Filter([]int{1, 2, 3, 4, 5, 6}, even,
		iterbar.WithOutput(&buf),
		iterbar.WithDescription("Evens"),
	)
	if want := []int{2, 4, 6}; !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	out := buf.String()
	if !strings.Contains(out, "Evens: ") || strings.Contains(out, "Filtering") {
		t.Fatalf("description not overridden: %q", out)
	}
}

func TestReduce(t *testing.T) {
	add := func(a, b int) int { return a + b }
	got, err := iterbar.Reduce([]int{1, 2, 3, 4}, add, quiet())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10 {
		t.Fatalf("want 10, got %d", got)
	}

	_, err = iterbar.Reduce(nil, add, quiet())
	if !errors.Is(err, iterbar.ErrEmptyReduce) {
		t.Fatalf("want %v, got %v", iterbar.ErrEmptyReduce, err)
	}
}

func TestFold(t *testing.T) {
	var buf bytes.Buffer
	got := iterbar.Fold([]string{"a", "b", "c"}, 0, func(n int, s string) int {
		return n + len(s)
	}, iterbar.WithOutput(&buf))
	if got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	if !strings.Contains(buf.String(), "Reducing: ") {
		t.Fatalf("default description missing: %q", buf.String())
	}
}

func TestEnumerate(t *testing.T) {
	var idx []int
	var vals []string
	for i, v := range iterbar.Enumerate([]string{"a", "b", "c"}, 1, quiet()) {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	if !reflect.DeepEqual(idx, []int{1, 2, 3}) || !reflect.DeepEqual(vals, []string{"a", "b", "c"}) {
		t.Fatalf("got %v %v", idx, vals)
	}
}

func TestZip(t *testing.T) {
	var buf bytes.Buffer
	var got []string
	for a, b := range iterbar.Zip([]int{1, 2, 3}, []string{"x", "y"}, iterbar.WithOutput(&buf)) {
		got = append(got, strconv.Itoa(a)+b)
	}
	if want := []string{"1x", "2y"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	if !strings.Contains(buf.String(), "Zipping: ") || !strings.Contains(buf.String(), "2/2") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
