package utils

import (
	"fmt"
	"math"

	"github.com/zooyer/canvas/core"
)

// RotatedExtent 计算矩形绕自身中心旋转后占用的包围盒，中心点保持不变
func RotatedExtent(rect core.Rect) core.Extent {
	ext := core.Extent{Rect: rect}

	// 不旋转时直接返回，避免三角函数误差
	if rect.Rotate == 0 {
		ext.Right = rect.Left + rect.Width
		ext.Bottom = rect.Top + rect.Height
		return ext
	}

	newWidth := rect.Width*Cos(rect.Rotate) + rect.Height*Sin(rect.Rotate)
	newHeight := rect.Height*Cos(rect.Rotate) + rect.Width*Sin(rect.Rotate)

	// 变窄时为正，变宽时为负
	diffX := (rect.Width - newWidth) / 2
	diffY := (newHeight - rect.Height) / 2

	ext.Left = rect.Left + diffX
	ext.Right = ext.Left + newWidth
	ext.Top = rect.Top - diffY
	ext.Bottom = ext.Top + newHeight
	ext.Width = newWidth
	ext.Height = newHeight

	return ext
}

// GroupRect 计算能包住所有子组件的最小矩形
// def.Width 不为 0 时表示调用方已经指定了位置，直接返回
func GroupRect(def core.Rect, children []core.Rect) (core.Rect, error) {
	if def.Width != 0 {
		return def, nil
	}

	if len(children) == 0 {
		return core.Rect{}, fmt.Errorf("group rect: no children to bound: %w", core.ErrInvalidInput)
	}

	miX, miY := math.MaxFloat64, math.MaxFloat64
	maX, maY := -math.MaxFloat64, -math.MaxFloat64

	for i, c := range children {
		if !c.Valid() {
			return core.Rect{}, fmt.Errorf("group rect: child %d has invalid rect %+v: %w", i, c, core.ErrInvalidInput)
		}
		miX = math.Min(miX, c.Left)
		miY = math.Min(miY, c.Top)
		maX = math.Max(maX, c.Left+c.Width)
		maY = math.Max(maY, c.Top+c.Height)
	}

	return core.Rect{
		Left:   miX,
		Top:    miY,
		Width:  maX - miX,
		Height: maY - miY,
	}, nil
}

// IsSeparate 判断两个包围盒是否完全分离
func IsSeparate(a, b core.Extent, gap float64) bool {
	return a.Right+gap < b.Left || a.Left-gap > b.Right ||
		a.Bottom+gap < b.Top || a.Top-gap > b.Bottom
}

// InBox 判断点是否落在包围盒内(含边界)
func InBox(box core.Extent, point core.Point) bool {
	if point.X >= box.Left && point.X <= box.Right && point.Y >= box.Top && point.Y <= box.Bottom {
		return true
	}

	return false
}
