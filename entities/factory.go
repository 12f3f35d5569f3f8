package entities

import (
	"github.com/zooyer/canvas/core"
)

// Component 是画布上一切组件的接口
type Component interface {
	Type() string
	ID() string
	Label() string
	Position() core.Position
	SetPosition(pos core.Position)
}

// BaseComponent 存放所有组件通用的属性
type BaseComponent struct {
	TypeName  string
	Handle    string
	LabelName string
	Pos       core.Position
}

func (b *BaseComponent) Type() string { return b.TypeName }

func (b *BaseComponent) ID() string { return b.Handle }

func (b *BaseComponent) Label() string { return b.LabelName }

func (b *BaseComponent) Position() core.Position { return b.Pos }

func (b *BaseComponent) SetPosition(pos core.Position) { b.Pos = pos }

// Style 返回绝对位置，组件处于相对形式时 ok 为 false
func Style(c Component) (rect core.Rect, ok bool) {
	rect, ok = c.Position().(core.Rect)
	return
}

// GroupStyle 返回相对群组的位置，组件处于绝对形式时 ok 为 false
func GroupStyle(c Component) (style core.RelativeStyle, ok bool) {
	style, ok = c.Position().(core.RelativeStyle)
	return
}

// ComponentFactory 定义了如何创建一个组件
type ComponentFactory func() Component

var registry = map[string]ComponentFactory{}

// Register 允许以后动态扩展新的组件类型
func Register(typeName string, factory ComponentFactory) {
	registry[typeName] = factory
}

// CreateComponent 根据组件名称生产对应的结构体
func CreateComponent(typeName string) Component {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return nil
}
