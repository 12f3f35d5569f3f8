package core

import (
	"math"

	"github.com/zooyer/golib/xmath"
)

// Point 代表画布上的一个点(像素坐标，Y 轴向下)
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Rect 组件的绝对位置：未旋转时的左上角、宽高，以及绕自身中心的旋转角度
type Rect struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Rotate float64 `yaml:"rotate"`
}

// Center 返回矩形中心点
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Equal 在 epsilon 误差内比较两个矩形
func (r Rect) Equal(o Rect, epsilon float64) bool {
	return xmath.Equal(r.Left, o.Left, epsilon) &&
		xmath.Equal(r.Top, o.Top, epsilon) &&
		xmath.Equal(r.Width, o.Width, epsilon) &&
		xmath.Equal(r.Height, o.Height, epsilon) &&
		xmath.Equal(r.Rotate, o.Rotate, epsilon)
}

// Valid 宽高必须是非负的有限数
func (r Rect) Valid() bool {
	for _, v := range []float64{r.Left, r.Top, r.Width, r.Height, r.Rotate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Width >= 0 && r.Height >= 0
}

// Extent 旋转后实际占用的包围盒
// Right-Left == Width, Bottom-Top == Height
type Extent struct {
	Rect
	Right  float64
	Bottom float64
}

// RelativeStyle 子组件相对于所属群组的位置(百分比，保留 4 位小数)
// GRotate 是子组件自身的绝对角度，不是相对群组的角度
type RelativeStyle struct {
	GLeft   float64 `yaml:"gleft"`
	GTop    float64 `yaml:"gtop"`
	GWidth  float64 `yaml:"gwidth"`
	GHeight float64 `yaml:"gheight"`
	GRotate float64 `yaml:"grotate"`
}

// Valid 所有值必须是有限数，宽高百分比非负
func (s RelativeStyle) Valid() bool {
	for _, v := range []float64{s.GLeft, s.GTop, s.GWidth, s.GHeight, s.GRotate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return s.GWidth >= 0 && s.GHeight >= 0
}

// Position 组件当前生效的位置：Rect(绝对) 或 RelativeStyle(相对群组)
type Position interface {
	position()
}

func (Rect) position()          {}
func (RelativeStyle) position() {}
