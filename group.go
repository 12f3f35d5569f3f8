package canvas

import (
	"fmt"
	"slices"

	"github.com/zooyer/canvas/core"
	"github.com/zooyer/canvas/entities"
	"github.com/zooyer/canvas/utils"
)

// Find 查找组件，返回组件及其直接父群组(顶层组件的父群组为 nil)
func (d *Document) Find(id string) (entities.Component, *entities.Group) {
	for _, comp := range d.Components {
		if comp.ID() == id {
			return comp, nil
		}
		if g, ok := comp.(*entities.Group); ok {
			if c, parent := g.Find(id); c != nil {
				return c, parent
			}
		}
	}
	return nil, nil
}

func (d *Document) index(id string) int {
	return slices.IndexFunc(d.Components, func(c entities.Component) bool {
		return c.ID() == id
	})
}

// Group 把若干顶层组件合并成一个新群组，群组放在最下层被选组件的位置
func (d *Document) Group(id string, ids ...string) (*entities.Group, error) {
	if id == "" {
		return nil, fmt.Errorf("group: missing id: %w", core.ErrInvalidInput)
	}
	if c, _ := d.Find(id); c != nil {
		return nil, fmt.Errorf("group %q: id already in use: %w", id, core.ErrInvalidInput)
	}

	var (
		selected = make(map[string]bool, len(ids))
		indexes  []int
	)
	for _, cid := range ids {
		if selected[cid] {
			return nil, fmt.Errorf("group %q: component %q selected twice: %w", id, cid, core.ErrInvalidInput)
		}
		selected[cid] = true

		i := d.index(cid)
		if i < 0 {
			return nil, fmt.Errorf("group %q: component %q is not a top level component: %w", id, cid, core.ErrInvalidInput)
		}
		indexes = append(indexes, i)
	}
	slices.Sort(indexes)

	// 保持原有层级顺序
	var (
		children = make([]entities.Component, 0, len(indexes))
		rects    = make([]core.Rect, 0, len(indexes))
	)
	for _, i := range indexes {
		rect, ok := entities.Style(d.Components[i])
		if !ok {
			return nil, fmt.Errorf("group %q: component %q is not in absolute form: %w", id, d.Components[i].ID(), core.ErrProtocol)
		}
		children = append(children, d.Components[i])
		rects = append(rects, rect)
	}

	rect, err := utils.GroupRect(core.Rect{}, rects)
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", id, err)
	}

	group := entities.NewGroup(id)
	group.SetPosition(rect)
	group.Children = children

	if err = utils.Compose(group); err != nil {
		return nil, err
	}

	var components = make([]entities.Component, 0, len(d.Components)-len(children)+1)
	for i, comp := range d.Components {
		if i == indexes[0] {
			components = append(components, group)
		}
		if !selected[comp.ID()] {
			components = append(components, comp)
		}
	}
	d.Components = components

	return group, nil
}

// Ungroup 解散顶层群组，子组件按群组当前位置还原为绝对位置
func (d *Document) Ungroup(id string) ([]entities.Component, error) {
	i := d.index(id)
	if i < 0 {
		return nil, fmt.Errorf("ungroup %q: not a top level component: %w", id, core.ErrInvalidInput)
	}

	group, ok := d.Components[i].(*entities.Group)
	if !ok {
		return nil, fmt.Errorf("ungroup %q: %s is not a group: %w", id, d.Components[i].Type(), core.ErrInvalidInput)
	}

	if err := utils.Resolve(group); err != nil {
		return nil, err
	}

	children := group.Children
	group.Children = nil
	d.Components = slices.Replace(d.Components, i, i+1, children...)

	return children, nil
}

// SetStyle 移动、缩放或旋转一个顶层组件，群组内的组件跟随群组变化
func (d *Document) SetStyle(id string, rect core.Rect) error {
	if !rect.Valid() {
		return fmt.Errorf("set style %q: invalid rect %+v: %w", id, rect, core.ErrInvalidInput)
	}

	comp, parent := d.Find(id)
	if comp == nil {
		return fmt.Errorf("set style %q: not found: %w", id, core.ErrInvalidInput)
	}
	if parent != nil {
		return fmt.Errorf("set style %q: component belongs to group %q: %w", id, parent.ID(), core.ErrProtocol)
	}

	if g, ok := comp.(*entities.Group); ok && len(g.Children) > 0 && (rect.Width == 0 || rect.Height == 0) {
		return fmt.Errorf("set style %q: group cannot have zero area: %w", id, core.ErrInvalidState)
	}

	comp.SetPosition(rect)

	return nil
}

// Absolute 计算任意组件当前的绝对位置，不修改文档
func (d *Document) Absolute(id string) (core.Rect, error) {
	path := d.path(id)
	if len(path) == 0 {
		return core.Rect{}, fmt.Errorf("absolute %q: not found: %w", id, core.ErrInvalidInput)
	}

	rect, ok := entities.Style(path[0])
	if !ok {
		return core.Rect{}, fmt.Errorf("absolute %q: top level component %q is not in absolute form: %w", id, path[0].ID(), core.ErrInvalidState)
	}

	// 逐层向下还原
	for _, comp := range path[1:] {
		style, ok := entities.GroupStyle(comp)
		if !ok {
			return core.Rect{}, fmt.Errorf("absolute %q: component %q is not in relative form: %w", id, comp.ID(), core.ErrInvalidState)
		}
		rect = utils.DecodeAbsolute(rect, style)
	}

	return rect, nil
}

// Bounds 组件旋转后在画布上实际占用的范围
func (d *Document) Bounds(id string) (core.Extent, error) {
	rect, err := d.Absolute(id)
	if err != nil {
		return core.Extent{}, err
	}

	return utils.RotatedExtent(rect), nil
}

// HitTest 返回包含该点的最上层顶层组件
func (d *Document) HitTest(point core.Point) entities.Component {
	for i := len(d.Components) - 1; i >= 0; i-- {
		ext, err := d.Bounds(d.Components[i].ID())
		if err != nil {
			continue
		}
		if utils.InBox(ext, point) {
			return d.Components[i]
		}
	}
	return nil
}

// Swap 交换两个顶层组件的层级
func (d *Document) Swap(i, j int) error {
	if i < 0 || j < 0 || i >= len(d.Components) || j >= len(d.Components) {
		return fmt.Errorf("swap %d, %d: index out of range [0, %d): %w", i, j, len(d.Components), core.ErrInvalidInput)
	}

	d.Components[i], d.Components[j] = d.Components[j], d.Components[i]

	return nil
}

// path 从顶层组件到目标组件的链路
func (d *Document) path(id string) []entities.Component {
	var walk func(comps []entities.Component) []entities.Component
	walk = func(comps []entities.Component) []entities.Component {
		for _, comp := range comps {
			if comp.ID() == id {
				return []entities.Component{comp}
			}
			if g, ok := comp.(*entities.Group); ok {
				if sub := walk(g.Children); sub != nil {
					return append([]entities.Component{comp}, sub...)
				}
			}
		}
		return nil
	}

	return walk(d.Components)
}

// Overlaps 判断两个组件旋转后的范围是否相交(gap 为容差)
func (d *Document) Overlaps(a, b string, gap float64) (bool, error) {
	ea, err := d.Bounds(a)
	if err != nil {
		return false, err
	}

	eb, err := d.Bounds(b)
	if err != nil {
		return false, err
	}

	return !utils.IsSeparate(ea, eb, gap), nil
}
