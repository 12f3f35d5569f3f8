package utils

import "math"

// Round 按小数位数四舍五入(0.5 远离 0 进位)
func Round(value float64, precision int) float64 {
	p := math.Pow(10, float64(precision))

	return math.Round(value*p) / p
}

// Percent 比例转百分比，保留 4 位小数
func Percent(ratio float64) float64 {
	return Round(ratio*100, 4)
}

// RoundPixel 取整到像素，0.5 一律向正方向进位(-2.5 -> -2)
// 不用 Floor(v+0.5)：0.49999999999999994 加 0.5 会进位成 1
func RoundPixel(value float64) float64 {
	if floor := math.Floor(value); value-floor == 0.5 {
		return floor + 1
	}

	return math.Round(value)
}
