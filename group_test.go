package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/canvas/core"
	"github.com/zooyer/canvas/entities"
)

func newDocument(t *testing.T, rects map[string]core.Rect, order ...string) *Document {
	t.Helper()

	doc := &Document{Canvas: CanvasStyle{Width: 1920, Height: 1080}}
	for _, id := range order {
		w := entities.CreateComponent("Rect").(*entities.Widget)
		w.Handle = id
		w.SetPosition(rects[id])
		doc.Components = append(doc.Components, w)
	}
	return doc
}

func ids(comps []entities.Component) []string {
	var out []string
	for _, c := range comps {
		out = append(out, c.ID())
	}
	return out
}

func style(t *testing.T, doc *Document, id string) core.Rect {
	t.Helper()

	comp, _ := doc.Find(id)
	require.NotNil(t, comp, id)
	rect, ok := entities.Style(comp)
	require.True(t, ok, "%s is not absolute", id)
	return rect
}

var twoRects = map[string]core.Rect{
	"a": {Left: 0, Top: 0, Width: 10, Height: 10},
	"b": {Left: 20, Top: 5, Width: 10, Height: 10},
	"c": {Left: 100, Top: 100, Width: 50, Height: 50},
}

func TestDocument_Group(t *testing.T) {
	doc := newDocument(t, twoRects, "a", "c", "b")

	group, err := doc.Group("g", "b", "a")
	require.NoError(t, err)

	assert.Equal(t, []string{"g", "c"}, ids(doc.Components))
	assert.Equal(t, []string{"a", "b"}, ids(group.Children))
	assert.Equal(t, core.Rect{Left: 0, Top: 0, Width: 30, Height: 15}, style(t, doc, "g"))

	for _, child := range group.Children {
		_, ok := entities.GroupStyle(child)
		assert.True(t, ok, child.ID())
	}

	_, parent := doc.Find("a")
	assert.Same(t, group, parent)
}

func TestDocument_GroupUngroup_RoundTrip(t *testing.T) {
	doc := newDocument(t, twoRects, "a", "c", "b")

	_, err := doc.Group("g", "a", "b")
	require.NoError(t, err)

	children, err := doc.Ungroup("g")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, ids(children))
	assert.Equal(t, []string{"a", "b", "c"}, ids(doc.Components))
	for _, id := range []string{"a", "b", "c"} {
		assert.Equal(t, twoRects[id], style(t, doc, id), id)
	}

	// 再次组合得到相同的群组
	group, err := doc.Group("g", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, core.Rect{Left: 0, Top: 0, Width: 30, Height: 15}, style(t, doc, group.ID()))
}

func TestDocument_UngroupRotated(t *testing.T) {
	doc := newDocument(t, twoRects, "a", "b")

	_, err := doc.Group("g", "a", "b")
	require.NoError(t, err)
	require.NoError(t, doc.SetStyle("g", core.Rect{Left: 0, Top: 0, Width: 30, Height: 15, Rotate: 180}))

	_, err = doc.Ungroup("g")
	require.NoError(t, err)

	// 绕群组中心 (15, 7.5) 旋转半圈，两个组件互换位置
	assert.Equal(t, core.Rect{Left: 20, Top: 5, Width: 10, Height: 10, Rotate: 180}, style(t, doc, "a"))
	assert.Equal(t, core.Rect{Left: 0, Top: 0, Width: 10, Height: 10, Rotate: 180}, style(t, doc, "b"))
}

func TestDocument_UngroupMovedResized(t *testing.T) {
	doc := newDocument(t, twoRects, "a", "b")

	_, err := doc.Group("g", "a", "b")
	require.NoError(t, err)
	require.NoError(t, doc.SetStyle("g", core.Rect{Left: 100, Top: 200, Width: 60, Height: 30}))

	_, err = doc.Ungroup("g")
	require.NoError(t, err)

	assert.Equal(t, core.Rect{Left: 100, Top: 200, Width: 20, Height: 20}, style(t, doc, "a"))
	assert.Equal(t, core.Rect{Left: 140, Top: 210, Width: 20, Height: 20}, style(t, doc, "b"))
}

func TestDocument_Group_Invalid(t *testing.T) {
	doc := newDocument(t, twoRects, "a", "b", "c")

	_, err := doc.Group("g")
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = doc.Group("", "a")
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = doc.Group("a", "b")
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = doc.Group("g", "a", "a")
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = doc.Group("g", "a", "missing")
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	// 失败时文档保持不变
	assert.Equal(t, []string{"a", "b", "c"}, ids(doc.Components))
	assert.Equal(t, twoRects["a"], style(t, doc, "a"))
}

func TestDocument_Group_ZeroArea(t *testing.T) {
	doc := newDocument(t, map[string]core.Rect{
		"l1": {Left: 0, Top: 10, Width: 50, Height: 0},
		"l2": {Left: 60, Top: 10, Width: 50, Height: 0},
	}, "l1", "l2")

	_, err := doc.Group("g", "l1", "l2")
	assert.ErrorIs(t, err, core.ErrInvalidState)
	assert.Equal(t, []string{"l1", "l2"}, ids(doc.Components))
	_ = style(t, doc, "l1")
}

func TestDocument_NestedGroups(t *testing.T) {
	doc := newDocument(t, twoRects, "a", "b", "c")

	_, err := doc.Group("inner", "a", "b")
	require.NoError(t, err)
	_, err = doc.Group("outer", "inner", "c")
	require.NoError(t, err)

	assert.Equal(t, []string{"outer"}, ids(doc.Components))
	assert.Equal(t, core.Rect{Left: 0, Top: 0, Width: 150, Height: 150}, style(t, doc, "outer"))

	// 嵌套组件的绝对位置可以直接计算，文档不变
	for _, id := range []string{"a", "b", "c"} {
		rect, err := doc.Absolute(id)
		require.NoError(t, err)
		assert.Equal(t, twoRects[id], rect, id)

		comp, _ := doc.Find(id)
		_, ok := entities.GroupStyle(comp)
		assert.True(t, ok, id)
	}

	_, err = doc.Ungroup("inner")
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = doc.Ungroup("outer")
	require.NoError(t, err)
	assert.Equal(t, []string{"inner", "c"}, ids(doc.Components))

	_, err = doc.Ungroup("inner")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(doc.Components))
	for id, want := range twoRects {
		assert.Equal(t, want, style(t, doc, id), id)
	}
}

func TestDocument_Ungroup_Invalid(t *testing.T) {
	doc := newDocument(t, twoRects, "a", "b")

	_, err := doc.Ungroup("missing")
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = doc.Ungroup("a")
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestDocument_SetStyle(t *testing.T) {
	doc := newDocument(t, twoRects, "a", "b")
	_, err := doc.Group("g", "a")
	require.NoError(t, err)

	assert.ErrorIs(t, doc.SetStyle("a", core.Rect{Width: 1, Height: 1}), core.ErrProtocol)
	assert.ErrorIs(t, doc.SetStyle("missing", core.Rect{Width: 1, Height: 1}), core.ErrInvalidInput)
	assert.ErrorIs(t, doc.SetStyle("b", core.Rect{Width: -1, Height: 1}), core.ErrInvalidInput)
	assert.ErrorIs(t, doc.SetStyle("g", core.Rect{Width: 0, Height: 10}), core.ErrInvalidState)

	require.NoError(t, doc.SetStyle("b", core.Rect{Left: 1, Top: 2, Width: 3, Height: 4, Rotate: 5}))
	assert.Equal(t, core.Rect{Left: 1, Top: 2, Width: 3, Height: 4, Rotate: 5}, style(t, doc, "b"))
}

func TestDocument_Bounds(t *testing.T) {
	doc := newDocument(t, map[string]core.Rect{
		"a": {Left: 0, Top: 0, Width: 100, Height: 50, Rotate: 90},
	}, "a")

	ext, err := doc.Bounds("a")
	require.NoError(t, err)
	assert.InDelta(t, 25, ext.Left, 1e-9)
	assert.InDelta(t, -25, ext.Top, 1e-9)
	assert.InDelta(t, 75, ext.Right, 1e-9)
	assert.InDelta(t, 75, ext.Bottom, 1e-9)

	_, err = doc.Bounds("missing")
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestDocument_HitTest_Overlaps(t *testing.T) {
	doc := newDocument(t, twoRects, "a", "b", "c")

	assert.Equal(t, "c", doc.HitTest(core.Point{X: 120, Y: 120}).ID())
	assert.Nil(t, doc.HitTest(core.Point{X: 15, Y: 2}))

	_, err := doc.Group("g", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "g", doc.HitTest(core.Point{X: 15, Y: 2}).ID())

	overlap, err := doc.Overlaps("a", "b", 0)
	require.NoError(t, err)
	assert.False(t, overlap)

	overlap, err = doc.Overlaps("a", "b", 10)
	require.NoError(t, err)
	assert.True(t, overlap)

	_, err = doc.Overlaps("a", "missing", 0)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestDocument_Swap(t *testing.T) {
	doc := newDocument(t, twoRects, "a", "b", "c")

	require.NoError(t, doc.Swap(0, 2))
	assert.Equal(t, []string{"c", "b", "a"}, ids(doc.Components))

	assert.ErrorIs(t, doc.Swap(0, 3), core.ErrInvalidInput)
	assert.ErrorIs(t, doc.Swap(-1, 0), core.ErrInvalidInput)
}
