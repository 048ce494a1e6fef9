// Package layout builds the region tree of a calendar widget from a
// DimensionSpec and serializes it to Android layout XML.
package layout

import (
	"fmt"
	"strconv"

	"widgetgen/internal/model"
	"widgetgen/internal/render"
)

const (
	androidNS = "http://schemas.android.com/apk/res/android"
	toolsNS   = "http://schemas.android.com/tools"

	accentColor = "#3B82F6"
	mutedColor  = "#9CA3AF"
	textColor   = "#FFFFFF"
	selectable  = "?android:selectableItemBackground"
)

// Option adjusts a single Build call.
type Option func(*builder)

// WithPreview attaches editor-only sample text (tools:text) to the title, day
// numbers and task slots. Runtime attributes are unchanged.
func WithPreview(p *model.Preview) Option {
	return func(b *builder) {
		b.preview = p
	}
}

type builder struct {
	spec    model.DimensionSpec
	preview *model.Preview
}

// Generate validates spec, builds its region tree and returns the serialized
// layout. Nothing is returned on error.
func Generate(spec model.DimensionSpec, opts ...Option) ([]byte, error) {
	root, err := Build(spec, opts...)
	if err != nil {
		return nil, err
	}
	out, err := render.XML(root)
	if err != nil {
		return nil, fmt.Errorf("layout: render %q: %w", spec.Name, err)
	}
	return out, nil
}

// Build validates spec and returns the root of its region tree.
func Build(spec model.DimensionSpec, opts ...Option) (*model.Region, error) {
	if err := Validate(spec); err != nil {
		return nil, err
	}

	b := &builder{spec: spec}
	for _, opt := range opts {
		opt(b)
	}

	root := b.root()
	if err := checkUniqueIDs(spec, root); err != nil {
		return nil, err
	}
	return root, nil
}

func (b *builder) root() *model.Region {
	s := b.spec
	root := &model.Region{
		Kind:    model.KindRoot,
		Element: "LinearLayout",
		ID:      s.Header.RootID,
		Comment: fmt.Sprintf("%s widget: %d x %d cells, %d task slots per cell", s.Name, s.Rows, s.Cols, s.SlotsPerCell),
		Namespaces: []model.Attr{
			{Name: "xmlns:android", Value: androidNS},
		},
	}
	if b.preview != nil {
		root.Namespaces = append(root.Namespaces, model.Attr{Name: "xmlns:tools", Value: toolsNS})
	}
	root.Set("android:layout_width", "match_parent").
		Set("android:layout_height", "match_parent").
		Set("android:orientation", "vertical").
		Set("android:background", "@drawable/widget_background").
		Set("android:padding", "8dp")

	root.Add(b.header())

	// With a detail list below, the calendar shares the height 2:3 with it.
	calendar := root
	if s.DetailSection {
		calendar = linear(model.KindCalendar, "", "match_parent", "0dp").
			Set("android:layout_weight", "2").
			Set("android:orientation", "vertical")
		root.Add(calendar)
	}

	if s.LabelStrip {
		calendar.Add(b.labelStrip())
	}
	for row := 0; row < s.Rows; row++ {
		calendar.Add(b.row(row))
	}

	if s.DetailSection {
		root.Add(b.detail())
	}
	return root
}

func (b *builder) header() *model.Region {
	h := b.spec.Header

	title := text(model.KindTitle, h.TitleID, "wrap_content", "wrap_content").
		Set("android:text", h.Title).
		Set("android:textColor", accentColor).
		Set("android:textSize", "14sp").
		Set("android:textStyle", "bold")
	if b.preview != nil && b.preview.Title != "" {
		title.Set("tools:text", b.preview.Title)
	}

	nav := linear(model.KindNav, "", "0dp", "wrap_content").
		Set("android:layout_weight", "1").
		Set("android:orientation", "horizontal").
		Set("android:gravity", "center").
		Add(
			navButton(h.PrevID, "◀", "android:layout_marginEnd"),
			title,
			navButton(h.NextID, "▶", "android:layout_marginStart"),
		)

	add := text(model.KindButton, h.AddID, "wrap_content", "wrap_content").
		Set("android:text", "+").
		Set("android:textColor", textColor).
		Set("android:textSize", "20sp").
		Set("android:textStyle", "bold").
		Set("android:gravity", "center").
		Set("android:paddingHorizontal", "8dp")

	header := linear(model.KindHeader, "", "match_parent", "wrap_content").
		Set("android:orientation", "horizontal").
		Set("android:gravity", "center_vertical").
		Set("android:paddingBottom", "4dp").
		Add(nav, add)
	header.Comment = "header: navigation + add button"
	return header
}

func navButton(id, glyph, marginAttr string) *model.Region {
	return text(model.KindButton, id, "22dp", "22dp").
		Set("android:text", glyph).
		Set("android:textColor", accentColor).
		Set("android:textSize", "11sp").
		Set("android:gravity", "center").
		Set(marginAttr, "16dp").
		Set("android:background", selectable)
}

func (b *builder) labelStrip() *model.Region {
	s := b.spec
	strip := linear(model.KindLabelStrip, "", "match_parent", "wrap_content").
		Set("android:orientation", "horizontal").
		Set("android:paddingBottom", "2dp")
	strip.Comment = "day labels"

	for col, label := range s.Labels {
		if s.DayNumbers != model.DayNumbersInStrip {
			strip.Add(text(model.KindDayLabel, "", "0dp", "wrap_content").
				Set("android:layout_weight", "1").
				Set("android:text", label.Text).
				Set("android:textColor", label.Color).
				Set("android:textSize", "12sp").
				Set("android:gravity", "center"))
			continue
		}

		// Strip placement implies the column axis, so col is the cell key.
		day := text(model.KindDayNumber, "day_"+strconv.Itoa(col), "24dp", "24dp").
			Set("android:textColor", s.Style.DayNumberColor).
			Set("android:textSize", "12sp").
			Set("android:gravity", "center")
		b.previewDayNumber(day, col)

		column := linear(model.KindDayColumn, "day_col_"+strconv.Itoa(col), "0dp", "wrap_content").
			Set("android:layout_weight", "1").
			Set("android:orientation", "vertical").
			Set("android:gravity", "center").
			Set("android:background", selectable).
			Add(
				text(model.KindDayLabel, "", "wrap_content", "wrap_content").
					Set("android:text", label.Text).
					Set("android:textColor", label.Color).
					Set("android:textSize", "12sp").
					Set("android:gravity", "center"),
				day,
			)
		strip.Add(column)
	}
	return strip
}

func (b *builder) row(row int) *model.Region {
	s := b.spec
	r := linear(model.KindRow, "", "match_parent", "0dp").
		Set("android:layout_weight", "1").
		Set("android:orientation", "horizontal")
	if s.Axis == model.AxisColumn {
		r.Set("android:paddingTop", "2dp")
		r.Comment = fmt.Sprintf("%d columns, %d tasks each + more", s.Cols, s.SlotsPerCell)
	}
	for col := 0; col < s.Cols; col++ {
		r.Add(b.cell(s.CellKey(row, col)))
	}
	return r
}

// CellID returns the identifier of the cell with key k.
func CellID(spec model.DimensionSpec, k int) string {
	if spec.Axis == model.AxisColumn {
		return "col_" + strconv.Itoa(k)
	}
	return "cell_" + strconv.Itoa(k)
}

// SlotID returns the identifier of slot t inside the cell with key k.
func SlotID(k, t int) string {
	return "task_" + strconv.Itoa(k) + "_" + strconv.Itoa(t)
}

// OverflowID returns the identifier of the overflow indicator of cell k.
func OverflowID(k int) string {
	return "task_" + strconv.Itoa(k) + "_more"
}

func (b *builder) cell(k int) *model.Region {
	s := b.spec
	cell := linear(model.KindCell, CellID(s, k), "0dp", "match_parent").
		Set("android:layout_weight", "1").
		Set("android:orientation", "vertical")
	if s.Style.SelectableCells {
		cell.Set("android:paddingEnd", "1dp").
			Set("android:background", selectable)
	} else {
		cell.Set("android:padding", "1dp")
	}

	if s.DayNumbers == model.DayNumbersInCell {
		day := text(model.KindDayNumber, "day_"+strconv.Itoa(k), "match_parent", "wrap_content").
			Set("android:textColor", s.Style.DayNumberColor).
			Set("android:textSize", "12sp").
			Set("android:gravity", "center")
		b.previewDayNumber(day, k)
		cell.Add(day)
	}

	pd := b.preview.Day(k)
	for t := 0; t < s.SlotsPerCell; t++ {
		slot := text(model.KindSlot, SlotID(k, t), "match_parent", "wrap_content").
			Set("android:textColor", textColor).
			Set("android:textSize", s.Style.SlotTextSize).
			Set("android:maxLines", "1").
			Set("android:ellipsize", "end").
			Set("android:visibility", "gone")
		if pd != nil && t < len(pd.Items) {
			slot.Set("tools:text", pd.Items[t]).
				Set("tools:visibility", "visible")
		}
		cell.Add(slot)
	}

	more := text(model.KindOverflow, OverflowID(k), "match_parent", "wrap_content").
		Set("android:textColor", accentColor).
		Set("android:textSize", s.Style.OverflowTextSize).
		Set("android:visibility", "gone")
	if pd != nil && len(pd.Items) > s.SlotsPerCell {
		more.Set("tools:text", "+"+strconv.Itoa(len(pd.Items)-s.SlotsPerCell)).
			Set("tools:visibility", "visible")
	}
	cell.Add(more)
	return cell
}

func (b *builder) previewDayNumber(day *model.Region, k int) {
	if pd := b.preview.Day(k); pd != nil && pd.Number != "" {
		day.Set("tools:text", pd.Number)
	}
}

func (b *builder) detail() *model.Region {
	d := b.spec.Detail
	section := linear(model.KindDetail, "", "match_parent", "0dp").
		Set("android:layout_weight", "3").
		Set("android:orientation", "vertical").
		Set("android:paddingTop", "4dp")
	section.Comment = "selected day task list"

	if d.Label != "" {
		section.Add(text(model.KindDetailLabel, d.LabelID, "wrap_content", "wrap_content").
			Set("android:text", d.Label).
			Set("android:textColor", mutedColor).
			Set("android:textSize", "12sp").
			Set("android:paddingBottom", "4dp"))
	}

	section.Add(&model.Region{
		Kind:    model.KindDetailList,
		Element: "ListView",
		ID:      d.ListID,
		Attrs: []model.Attr{
			{Name: "android:layout_width", Value: "match_parent"},
			{Name: "android:layout_height", Value: "match_parent"},
			{Name: "android:divider", Value: "@android:color/transparent"},
			{Name: "android:dividerHeight", Value: "2dp"},
			{Name: "android:scrollbars", Value: "none"},
		},
	})
	return section
}

func linear(kind model.Kind, id, width, height string) *model.Region {
	return sized(kind, "LinearLayout", id, width, height)
}

func text(kind model.Kind, id, width, height string) *model.Region {
	return sized(kind, "TextView", id, width, height)
}

func sized(kind model.Kind, element, id, width, height string) *model.Region {
	r := &model.Region{Kind: kind, Element: element, ID: id}
	return r.Set("android:layout_width", width).
		Set("android:layout_height", height)
}
