package timeseries

import (
	"strconv"
	"time"
)

// monthAbbrev 固定月份缩写表，避免依赖 locale 导致标签不稳定
var monthAbbrev = [...]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// MonthLabel 月份标签，如 JAN
func MonthLabel(m time.Month) string {
	return monthAbbrev[int(m)-1]
}

// DayLabel 日标签，格式 月/日 不补零，如 12/25、12/1
func DayLabel(t time.Time) string {
	return strconv.Itoa(int(t.Month())) + "/" + strconv.Itoa(t.Day())
}

// Labels 生成窗口内完整有序的桶标签列表，与实际数据无关，保证空桶不丢
func (r Range) Labels(now time.Time) []string {
	labels := make([]string, 0, r.Buckets)
	start, _ := r.Window(now)

	switch r.Granularity {
	case GranularityMonthly:
		for i := 0; i < r.Buckets; i++ {
			labels = append(labels, MonthLabel(start.AddDate(0, i, 0).Month()))
		}
	default:
		for i := 0; i < r.Buckets; i++ {
			labels = append(labels, DayLabel(start.AddDate(0, 0, i)))
		}
	}
	return labels
}
