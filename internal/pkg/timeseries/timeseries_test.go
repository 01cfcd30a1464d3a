package timeseries

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 12, 25, 15, 4, 5, 0, time.UTC)

func TestParseRange(t *testing.T) {
	cases := map[string]int{
		"7days":   7,
		"30days":  30,
		"3months": 3,
		"6months": 6,
		"year":    12,
	}
	for keyword, want := range cases {
		r, err := ParseRange(keyword)
		if err != nil {
			t.Fatalf("ParseRange(%q): %v", keyword, err)
		}
		if r.Buckets != want {
			t.Errorf("ParseRange(%q).Buckets = %d, want %d", keyword, r.Buckets, want)
		}
	}

	if _, err := ParseRange("fortnight"); err == nil {
		t.Error("ParseRange should reject unknown keywords instead of defaulting")
	}
	if _, err := ParseRange(""); err == nil {
		t.Error("ParseRange should reject the empty keyword")
	}
}

func TestWindowDaily(t *testing.T) {
	r, _ := ParseRange("7days")
	start, end := r.Window(testNow)

	wantStart := time.Date(2025, 12, 19, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(testNow) {
		t.Errorf("end = %v, want now", end)
	}
}

func TestWindowYearMonotonic(t *testing.T) {
	// 无论当前是月内哪一天，year 窗口都从 11 个月前的 1 号开始
	r, _ := ParseRange("year")
	for day := 1; day <= 28; day++ {
		now := time.Date(2025, 12, day, 10, 0, 0, 0, time.UTC)
		start, _ := r.Window(now)
		wantStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		if !start.Equal(wantStart) {
			t.Fatalf("day %d: start = %v, want %v", day, start, wantStart)
		}
	}
}

func TestWindowMonthlyAcrossYearBoundary(t *testing.T) {
	r, _ := ParseRange("3months")
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	start, _ := r.Window(now)
	wantStart := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
}

func TestLabels(t *testing.T) {
	t.Run("daily format without zero padding", func(t *testing.T) {
		r, _ := ParseRange("7days")
		now := time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)
		labels := r.Labels(now)
		want := []string{"11/27", "11/28", "11/29", "11/30", "12/1", "12/2", "12/3"}
		if len(labels) != len(want) {
			t.Fatalf("got %d labels, want %d", len(labels), len(want))
		}
		for i := range want {
			if labels[i] != want[i] {
				t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
			}
		}
	})

	t.Run("monthly fixed table", func(t *testing.T) {
		r, _ := ParseRange("6months")
		labels := r.Labels(testNow)
		want := []string{"JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}
		for i := range want {
			if labels[i] != want[i] {
				t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
			}
		}
	})

	t.Run("every range emits the documented count exactly once", func(t *testing.T) {
		for keyword, count := range map[string]int{"7days": 7, "30days": 30, "3months": 3, "6months": 6, "year": 12} {
			r, _ := ParseRange(keyword)
			labels := r.Labels(testNow)
			if len(labels) != count {
				t.Errorf("%s: got %d labels, want %d", keyword, len(labels), count)
			}
			seen := make(map[string]bool, len(labels))
			for _, l := range labels {
				if seen[l] {
					t.Errorf("%s: duplicate label %q", keyword, l)
				}
				seen[l] = true
			}
		}
	})
}

func TestBucketizeZeroFill(t *testing.T) {
	r, _ := ParseRange("30days")
	buckets := r.Bucketize(testNow, nil)
	if len(buckets) != 30 {
		t.Fatalf("got %d buckets, want 30", len(buckets))
	}
	for _, b := range buckets {
		if b.Value != 0 {
			t.Errorf("bucket %q = %d, want 0", b.Label, b.Value)
		}
	}
}

func TestBucketizeDailySums(t *testing.T) {
	// 12/1 有 100，12/3 有 50，12/2 无数据必须补零
	r, _ := ParseRange("30days")
	points := []Point{
		{Date: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), Value: 100},
		{Date: time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC), Value: 50},
	}
	buckets := r.Bucketize(testNow, points)

	byLabel := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		byLabel[b.Label] = b.Value
	}
	if byLabel["12/1"] != 100 {
		t.Errorf("12/1 = %d, want 100", byLabel["12/1"])
	}
	if byLabel["12/2"] != 0 {
		t.Errorf("12/2 = %d, want 0", byLabel["12/2"])
	}
	if byLabel["12/3"] != 50 {
		t.Errorf("12/3 = %d, want 50", byLabel["12/3"])
	}

	var total int64
	for _, b := range buckets {
		total += b.Value
	}
	if total != 150 {
		t.Errorf("total = %d, want 150", total)
	}
}

func TestBucketizeMonthlySums(t *testing.T) {
	r, _ := ParseRange("3months")
	points := []Point{
		{Date: time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC), Value: 10},
		{Date: time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC), Value: 15},
		{Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), Value: 7},
	}
	buckets := r.Bucketize(testNow, points)

	want := []Bucket{{Label: "OCT", Value: 25}, {Label: "NOV", Value: 0}, {Label: "DEC", Value: 7}}
	for i := range want {
		if buckets[i] != want[i] {
			t.Errorf("buckets[%d] = %+v, want %+v", i, buckets[i], want[i])
		}
	}
}

func TestBucketizeIgnoresOutOfWindowPoints(t *testing.T) {
	r, _ := ParseRange("7days")
	points := []Point{
		{Date: testNow.AddDate(0, 0, -10), Value: 999},
		{Date: testNow.AddDate(0, 0, 1), Value: 999},
	}
	for _, b := range r.Bucketize(testNow, points) {
		if b.Value != 0 {
			t.Errorf("bucket %q picked up an out-of-window point", b.Label)
		}
	}
}

func TestGrowth(t *testing.T) {
	t.Run("previous zero yields zero", func(t *testing.T) {
		if got := Growth(100, 0); got != 0 {
			t.Errorf("Growth(100, 0) = %v, want 0", got)
		}
		if got := GrowthRate(3.5, 0); got != 0 {
			t.Errorf("GrowthRate(3.5, 0) = %v, want 0", got)
		}
	})

	t.Run("rounding", func(t *testing.T) {
		if got := Growth(110, 100); got != 10.0 {
			t.Errorf("Growth(110, 100) = %v, want 10", got)
		}
		if got := Growth(100, 300); got != -66.7 {
			t.Errorf("Growth(100, 300) = %v, want -66.7", got)
		}
		if got := GrowthRate(100, 300); got != -66.67 {
			t.Errorf("GrowthRate(100, 300) = %v, want -66.67", got)
		}
	})
}
