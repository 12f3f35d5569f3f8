package utils

import (
	"math"

	"github.com/zooyer/canvas/core"
)

// RotatePoint 将 p 绕 center 旋转 deg 度(屏幕坐标下正角度为顺时针)
func RotatePoint(p, center core.Point, deg float64) core.Point {
	if deg == 0 {
		return p
	}

	rad := ToRadians(deg)
	cos, sin := math.Cos(rad), math.Sin(rad)

	// 1. 平移到原点
	dx, dy := p.X-center.X, p.Y-center.Y

	// 2. 旋转后平移回去
	return core.Point{
		X: dx*cos - dy*sin + center.X,
		Y: dx*sin + dy*cos + center.Y,
	}
}

// CenterPoint 两点之间的中点
func CenterPoint(p1, p2 core.Point) core.Point {
	return core.Point{
		X: p1.X + (p2.X-p1.X)/2,
		Y: p1.Y + (p2.Y-p1.Y)/2,
	}
}
