package canvas

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zooyer/canvas/core"
	"github.com/zooyer/canvas/entities"
)

// CanvasStyle 画布尺寸与缩放比例(百分比)
type CanvasStyle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Scale  float64 `yaml:"scale,omitempty"`
}

// Document 画布文档，Components 按层级从下到上排列
type Document struct {
	Canvas     CanvasStyle
	Components []entities.Component
}

// record 文件中的组件，style 和 groupStyle 有且只有一个
type record struct {
	Component  string              `yaml:"component"`
	ID         string              `yaml:"id"`
	Label      string              `yaml:"label,omitempty"`
	Style      *core.Rect          `yaml:"style,omitempty"`
	GroupStyle *core.RelativeStyle `yaml:"groupStyle,omitempty"`
	Props      map[string]string   `yaml:"props,omitempty"`
	Children   []record            `yaml:"children,omitempty"`
}

type layout struct {
	Canvas     CanvasStyle `yaml:"canvas"`
	Components []record    `yaml:"components"`
}

func (d *Document) decode(rec record, ids map[string]bool) (entities.Component, error) {
	if rec.ID == "" {
		return nil, fmt.Errorf("component %q: missing id: %w", rec.Component, core.ErrInvalidInput)
	}
	if ids[rec.ID] {
		return nil, fmt.Errorf("component %q: duplicate id: %w", rec.ID, core.ErrInvalidInput)
	}
	ids[rec.ID] = true

	comp := entities.CreateComponent(rec.Component)
	if comp == nil {
		return nil, fmt.Errorf("component %q: unknown type %q: %w", rec.ID, rec.Component, core.ErrInvalidInput)
	}

	switch {
	case rec.Style != nil && rec.GroupStyle != nil:
		return nil, fmt.Errorf("component %q: both style and groupStyle set: %w", rec.ID, core.ErrInvalidInput)
	case rec.Style != nil:
		if !rec.Style.Valid() {
			return nil, fmt.Errorf("component %q: invalid style %+v: %w", rec.ID, *rec.Style, core.ErrInvalidInput)
		}
		comp.SetPosition(*rec.Style)
	case rec.GroupStyle != nil:
		if !rec.GroupStyle.Valid() {
			return nil, fmt.Errorf("component %q: invalid groupStyle %+v: %w", rec.ID, *rec.GroupStyle, core.ErrInvalidInput)
		}
		comp.SetPosition(*rec.GroupStyle)
	default:
		return nil, fmt.Errorf("component %q: missing style: %w", rec.ID, core.ErrInvalidInput)
	}

	switch c := comp.(type) {
	case *entities.Group:
		c.Handle, c.LabelName = rec.ID, rec.Label
		if len(rec.Children) > 0 && zeroArea(comp.Position()) {
			return nil, fmt.Errorf("component %q: group with children cannot have zero area: %w", rec.ID, core.ErrInvalidState)
		}
		for _, sub := range rec.Children {
			child, err := d.decode(sub, ids)
			if err != nil {
				return nil, err
			}
			if _, ok := entities.GroupStyle(child); !ok {
				return nil, fmt.Errorf("component %q: child of group %q must use groupStyle: %w", sub.ID, rec.ID, core.ErrInvalidState)
			}
			c.Children = append(c.Children, child)
		}
	case *entities.Widget:
		c.Handle, c.LabelName = rec.ID, rec.Label
		for k, v := range rec.Props {
			c.Props[k] = v
		}
		if len(rec.Children) > 0 {
			return nil, fmt.Errorf("component %q: %s cannot have children: %w", rec.ID, rec.Component, core.ErrInvalidInput)
		}
	}

	return comp, nil
}

// zeroArea 群组宽或高为 0 时无法换算子组件的百分比
func zeroArea(pos core.Position) bool {
	switch p := pos.(type) {
	case core.Rect:
		return p.Width == 0 || p.Height == 0
	case core.RelativeStyle:
		return p.GWidth == 0 || p.GHeight == 0
	}
	return true
}

// Scaled 按画布缩放比例换算尺寸，Scale 为 0 时视为 100%
func (d *Document) Scaled(value float64) float64 {
	if d.Canvas.Scale == 0 {
		return value
	}

	return value * d.Canvas.Scale / 100
}

func encode(comp entities.Component) record {
	rec := record{
		Component: comp.Type(),
		ID:        comp.ID(),
		Label:     comp.Label(),
	}

	switch pos := comp.Position().(type) {
	case core.Rect:
		rec.Style = &pos
	case core.RelativeStyle:
		rec.GroupStyle = &pos
	}

	switch c := comp.(type) {
	case *entities.Group:
		for _, child := range c.Children {
			rec.Children = append(rec.Children, encode(child))
		}
	case *entities.Widget:
		if len(c.Props) > 0 {
			rec.Props = c.Props
		}
	}

	return rec
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

// Load 读取 YAML 布局，JSON 是 YAML 的子集，同样可以读取
func Load(reader io.Reader) (doc *Document, err error) {
	var (
		data     layout
		document = &Document{
			Components: make([]entities.Component, 0, 64),
		}
	)

	if err = yaml.NewDecoder(reader).Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return document, nil
		}
		return nil, err
	}

	document.Canvas = data.Canvas

	var ids = make(map[string]bool)
	for _, rec := range data.Components {
		comp, err := document.decode(rec, ids)
		if err != nil {
			return nil, err
		}
		if _, ok := entities.Style(comp); !ok {
			return nil, fmt.Errorf("component %q: top level component must use style: %w", rec.ID, core.ErrInvalidState)
		}
		document.Components = append(document.Components, comp)
	}

	return document, nil
}

// Save 以 YAML 格式写出文档
func (d *Document) Save(writer io.Writer) error {
	var data = layout{
		Canvas:     d.Canvas,
		Components: make([]record, 0, len(d.Components)),
	}
	for _, comp := range d.Components {
		data.Components = append(data.Components, encode(comp))
	}

	enc := yaml.NewEncoder(writer)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}

	return enc.Close()
}

func (d *Document) WriteFile(filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return d.Save(file)
}
