package utils

import "math"

// NormalizeAngle 将角度归一化到 [0, 360)，NaN 视为 0
func NormalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}

	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -0 和 -1e-14+360 这类边界
	if deg >= 360 || deg == 0 {
		return 0
	}

	return deg
}

// ToRadians 角度转弧度
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Sin 只取大小，用于计算包围盒尺寸
func Sin(deg float64) float64 {
	return math.Abs(math.Sin(ToRadians(deg)))
}

// Cos 只取大小，用于计算包围盒尺寸
func Cos(deg float64) float64 {
	return math.Abs(math.Cos(ToRadians(deg)))
}
