package timeseries

import "math"

// Growth 环比增长率（%），保留 1 位小数。
// 上一周期为 0 视为无基准，返回 0 而不是无穷大。
func Growth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return Round1((current - previous) / previous * 100)
}

// GrowthRate 百分比类指标（如互动率）的环比增长，保留 2 位小数
func GrowthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return Round2((current - previous) / previous * 100)
}

// Round1 四舍五入保留 1 位小数
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 四舍五入保留 2 位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
