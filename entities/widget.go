package entities

import "github.com/zooyer/canvas/core"

// Widget 叶子组件(文字、图片、图形)，Props 为展示属性，几何计算不关心
type Widget struct {
	BaseComponent
	Props map[string]string
}

func init() {
	for _, name := range []string{"Text", "Picture", "Rect", "Circle", "Line"} {
		Register(name, func() Component {
			return &Widget{
				BaseComponent: BaseComponent{TypeName: name, Pos: core.Rect{}},
				Props:         map[string]string{},
			}
		})
	}
}

// Prop 读取展示属性
func (w *Widget) Prop(key string) string {
	return w.Props[key]
}
