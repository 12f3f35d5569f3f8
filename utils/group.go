package utils

import (
	"fmt"

	"github.com/zooyer/canvas/core"
	"github.com/zooyer/canvas/entities"
)

// EncodeRelative 将子组件的绝对位置换算成相对群组 parent 的百分比
func EncodeRelative(parent, child core.Rect) (core.RelativeStyle, error) {
	if parent.Width == 0 || parent.Height == 0 {
		return core.RelativeStyle{}, fmt.Errorf("encode: group rect %+v has zero area: %w", parent, core.ErrInvalidState)
	}

	return core.RelativeStyle{
		GLeft:   Percent((child.Left - parent.Left) / parent.Width),
		GTop:    Percent((child.Top - parent.Top) / parent.Height),
		GWidth:  Percent(child.Width / parent.Width),
		GHeight: Percent(child.Height / parent.Height),
		GRotate: child.Rotate,
	}, nil
}

// DecodeAbsolute 根据群组当前的位置还原子组件的绝对位置
// 相对位置按群组未旋转保存，这里把子组件中心绕群组中心旋转 parent.Rotate
func DecodeAbsolute(parent core.Rect, style core.RelativeStyle) core.Rect {
	center := parent.Center()

	var (
		height = parent.Height * style.GHeight / 100
		width  = parent.Width * style.GWidth / 100
		top    = parent.Top + parent.Height*style.GTop/100
		left   = parent.Left + parent.Width*style.GLeft/100
		rotate = NormalizeAngle(parent.Rotate + style.GRotate)
	)

	// 旋转前的中心点
	point := core.Point{X: left + width/2, Y: top + height/2}
	point = RotatePoint(point, center, parent.Rotate)

	return core.Rect{
		Top:    RoundPixel(point.Y - height/2),
		Left:   RoundPixel(point.X - width/2),
		Height: RoundPixel(height),
		Width:  RoundPixel(width),
		Rotate: rotate,
	}
}

// Compose 计算群组内每个子组件的相对位置
// 先校验全部子组件再写入，失败时群组保持不变
func Compose(group *entities.Group) error {
	parent, ok := entities.Style(group)
	if !ok {
		return fmt.Errorf("compose %q: group is not in absolute form: %w", group.ID(), core.ErrProtocol)
	}

	if parent.Width == 0 || parent.Height == 0 {
		return fmt.Errorf("compose %q: group rect %+v has zero area: %w", group.ID(), parent, core.ErrInvalidState)
	}

	styles := make([]core.RelativeStyle, 0, len(group.Children))
	for _, child := range group.Children {
		rect, ok := entities.Style(child)
		if !ok {
			// 已经计算过一次，不能再次计算
			return fmt.Errorf("compose %q: child %q already encoded: %w", group.ID(), child.ID(), core.ErrProtocol)
		}

		style, err := EncodeRelative(parent, rect)
		if err != nil {
			return err
		}
		styles = append(styles, style)
	}

	for i, child := range group.Children {
		child.SetPosition(styles[i])
	}

	return nil
}

// Decompose 把子组件还原为绝对位置，相对位置随即失效
func Decompose(child entities.Component, parent core.Rect) error {
	style, ok := entities.GroupStyle(child)
	if !ok {
		return fmt.Errorf("decompose %q: component is not in relative form: %w", child.ID(), core.ErrProtocol)
	}

	child.SetPosition(DecodeAbsolute(parent, style))

	return nil
}

// Resolve 还原群组全部直接子组件的绝对位置(解散群组前调用)
func Resolve(group *entities.Group) error {
	parent, ok := entities.Style(group)
	if !ok {
		return fmt.Errorf("resolve %q: group is not in absolute form: %w", group.ID(), core.ErrProtocol)
	}

	for _, child := range group.Children {
		if _, ok = entities.GroupStyle(child); !ok {
			return fmt.Errorf("resolve %q: child %q is not in relative form: %w", group.ID(), child.ID(), core.ErrProtocol)
		}
	}

	for _, child := range group.Children {
		if err := Decompose(child, parent); err != nil {
			return err
		}
	}

	return nil
}
