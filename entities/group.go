package entities

import "github.com/zooyer/canvas/core"

const GroupType = "Group"

// Group 群组：位置是所有子组件的包围矩形，子组件以相对形式保存
type Group struct {
	BaseComponent
	Children []Component
}

func init() {
	Register(GroupType, func() Component {
		return NewGroup("")
	})
}

// NewGroup 创建一个尚未计算位置的群组(宽度为 0)
func NewGroup(id string) *Group {
	return &Group{
		BaseComponent: BaseComponent{TypeName: GroupType, Handle: id, LabelName: "分组", Pos: core.Rect{}},
	}
}

// Find 深度优先查找子组件，返回组件及其直接父群组
func (g *Group) Find(id string) (Component, *Group) {
	for _, child := range g.Children {
		if child.ID() == id {
			return child, g
		}
		if sub, ok := child.(*Group); ok {
			if c, parent := sub.Find(id); c != nil {
				return c, parent
			}
		}
	}
	return nil, nil
}
