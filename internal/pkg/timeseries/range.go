package timeseries

import (
	"fmt"
	"time"
)

// Granularity 桶粒度
type Granularity int

const (
	GranularityDaily Granularity = iota
	GranularityMonthly
)

// Range 时间范围定义：关键字 + 粒度 + 桶数量
type Range struct {
	Keyword     string
	Granularity Granularity
	Buckets     int
}

var ranges = map[string]Range{
	"7days":   {Keyword: "7days", Granularity: GranularityDaily, Buckets: 7},
	"30days":  {Keyword: "30days", Granularity: GranularityDaily, Buckets: 30},
	"3months": {Keyword: "3months", Granularity: GranularityMonthly, Buckets: 3},
	"6months": {Keyword: "6months", Granularity: GranularityMonthly, Buckets: 6},
	"year":    {Keyword: "year", Granularity: GranularityMonthly, Buckets: 12},
}

// ParseRange 解析时间范围关键字，未知关键字直接报错，不做兜底
func ParseRange(keyword string) (Range, error) {
	r, ok := ranges[keyword]
	if !ok {
		return Range{}, fmt.Errorf("unknown time range %q", keyword)
	}
	return r, nil
}

// Window 根据当前时间推导查询窗口 [start, end]，end 恒为 now
func (r Range) Window(now time.Time) (time.Time, time.Time) {
	switch r.Granularity {
	case GranularityMonthly:
		// 当月 1 号往前推 Buckets-1 个月
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
			AddDate(0, -(r.Buckets - 1), 0)
		return start, now
	default:
		// 含今天在内的最近 Buckets 个自然日
		start := Midnight(now).AddDate(0, 0, -(r.Buckets - 1))
		return start, now
	}
}

// Midnight 截断到当日零点
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
