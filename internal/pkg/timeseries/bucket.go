package timeseries

import "time"

// Point 单条原始数据点
type Point struct {
	Date  time.Time
	Value int64
}

// Bucket 聚合后的单个桶
type Bucket struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// Bucketize 把原始数据点按窗口折叠成有序补零序列。
// 日粒度按自然日求和，月粒度按自然月求和；窗口外的点被忽略。
func (r Range) Bucketize(now time.Time, points []Point) []Bucket {
	start, end := r.Window(now)

	sums := make(map[string]int64, r.Buckets)
	for _, p := range points {
		if p.Date.Before(start) || p.Date.After(end) {
			continue
		}
		var key string
		if r.Granularity == GranularityMonthly {
			key = MonthLabel(p.Date.Month())
		} else {
			key = DayLabel(p.Date)
		}
		sums[key] += p.Value
	}

	labels := r.Labels(now)
	buckets := make([]Bucket, 0, len(labels))
	for _, label := range labels {
		buckets = append(buckets, Bucket{Label: label, Value: sums[label]})
	}
	return buckets
}
