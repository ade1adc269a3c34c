package widgets_test

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/dom"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/widgets"
)

func TestInputArea_BorderAndPadding(t *testing.T) {
	in := widgets.NewTextInput(widgets.InputOptions{Value: "42"})
	area, err := widgets.NewInputArea(widgets.InputAreaOptions{
		ID:          "field",
		Border:      1,
		BorderColor: "#000000",
		Padding:     2,
		InsideColor: "#FFFFFF",
		Child:       in,
	})
	if err != nil {
		t.Fatalf("NewInputArea: %v", err)
	}

	el := dom.New("host", layout.Rect{Width: 20, Height: 8})
	if err := area.Render(el); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if el.Fill() != "#000000" {
		t.Errorf("border fill = %q", el.Fill())
	}

	input := in.Mounted().(*dom.Element)
	if got := input.Absolute(); got != (layout.Rect{X: 3, Y: 3, Width: 14, Height: 2}) {
		t.Errorf("input rect = %v, want inset by border and padding", got)
	}
	if input.Text().Value != "42" {
		t.Errorf("input text = %q", input.Text().Value)
	}
	if input.Fill() != "#FFFFFF" {
		t.Errorf("input fill = %q, want inside colour", input.Fill())
	}
	if area.Mounted() != layout.Container(el) {
		t.Error("Mounted should be the host element")
	}

	area.SetText("43")
	if in.Value() != "43" || input.Text().Value != "43" {
		t.Errorf("SetText did not reach the child: %q", in.Value())
	}

	area.SetBgColor("#FFFF00")
	padded := el.Find("field-0-0")
	if padded == nil || padded.Fill() != "#FFFF00" {
		t.Errorf("padding fill = %+v", padded)
	}
	if input.Fill() != "#FFFF00" {
		t.Errorf("input fill = %q after SetBgColor", input.Fill())
	}
}

func TestInputArea_NoPadding(t *testing.T) {
	label := widgets.NewCaption(widgets.CaptionOptions{Text: "total"})
	clicked := false
	area, err := widgets.NewInputArea(widgets.InputAreaOptions{
		ID:          "plain",
		Border:      1,
		BorderColor: "#000000",
		InsideColor: "#DDDDDD",
		Child:       label,
		OnClick:     func() { clicked = true },
	})
	if err != nil {
		t.Fatalf("NewInputArea: %v", err)
	}
	doc := dom.NewDocument(10, 5)
	if err := doc.Render(area); err != nil {
		t.Fatalf("Render: %v", err)
	}

	inner := label.Mounted().(*dom.Element)
	if inner.Bounds() != (layout.Rect{X: 1, Y: 1, Width: 8, Height: 3}) {
		t.Errorf("caption rect = %v", inner.Bounds())
	}
	if inner.Fill() != "#DDDDDD" {
		t.Errorf("inside fill = %q", inner.Fill())
	}

	area.SetBgColor("#ABCDEF")
	if inner.Fill() != "#ABCDEF" {
		t.Errorf("inside fill = %q after SetBgColor", inner.Fill())
	}

	doc.Click(5, 2)
	if !clicked {
		t.Error("click inside the area should reach its handler")
	}
}

func TestInputArea_Invalid(t *testing.T) {
	if _, err := widgets.NewInputArea(widgets.InputAreaOptions{}); err == nil {
		t.Error("missing child should fail")
	}
	_, err := widgets.NewInputArea(widgets.InputAreaOptions{
		Border: -1,
		Child:  widgets.NewCaption(widgets.CaptionOptions{}),
	})
	if err == nil {
		t.Error("negative border should fail")
	}
}
