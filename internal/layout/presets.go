package layout

import "widgetgen/internal/model"

// DefaultLabels is the Sunday-first day-label set shared by both variants.
func DefaultLabels() []model.DayLabel {
	return []model.DayLabel{
		{Text: "일", Color: "#EF4444"},
		{Text: "월", Color: "#9CA3AF"},
		{Text: "화", Color: "#9CA3AF"},
		{Text: "수", Color: "#9CA3AF"},
		{Text: "목", Color: "#9CA3AF"},
		{Text: "금", Color: "#9CA3AF"},
		{Text: "토", Color: "#3B82F6"},
	}
}

// Weekly returns the one-week widget: seven day columns with 12 task slots
// each, day numbers under the labels, and the selected-day list below.
func Weekly() model.DimensionSpec {
	return model.DimensionSpec{
		Name:          "weekly",
		Rows:          1,
		Cols:          7,
		SlotsPerCell:  12,
		Axis:          model.AxisColumn,
		Labels:        DefaultLabels(),
		LabelStrip:    true,
		DayNumbers:    model.DayNumbersInStrip,
		DetailSection: true,
		Header: model.Header{
			RootID:  "widget_weekly_root",
			TitleID: "widget_weekly_title",
			Title:   "2024년 12월 1주",
			PrevID:  "btn_prev_week",
			NextID:  "btn_next_week",
			AddID:   "btn_add_todo",
		},
		Detail: model.Detail{
			LabelID: "selected_date_label",
			Label:   "오늘의 할일",
			ListID:  "weekly_task_list",
		},
		Style: model.Style{
			SlotTextSize:     "12sp",
			OverflowTextSize: "10sp",
			DayNumberColor:   "#FFFFFF",
			SelectableCells:  true,
		},
	}
}

// Monthly returns the full-month widget: five week rows of seven cells with
// 10 task slots each.
func Monthly() model.DimensionSpec {
	return model.DimensionSpec{
		Name:         "monthly",
		Rows:         5,
		Cols:         7,
		SlotsPerCell: 10,
		Axis:         model.AxisGrid,
		Labels:       DefaultLabels(),
		LabelStrip:   true,
		DayNumbers:   model.DayNumbersInCell,
		Header: model.Header{
			RootID:  "widget_full_calendar_root",
			TitleID: "widget_month_title",
			Title:   "2024년 12월",
			PrevID:  "btn_prev_month",
			NextID:  "btn_next_month",
			AddID:   "btn_add_todo",
		},
		Style: model.Style{
			SlotTextSize:     "10sp",
			OverflowTextSize: "9sp",
			DayNumberColor:   "#6B7280",
		},
	}
}

// Preset returns the built-in spec with the given name.
func Preset(name string) (model.DimensionSpec, bool) {
	switch name {
	case "weekly":
		return Weekly(), true
	case "monthly":
		return Monthly(), true
	default:
		return model.DimensionSpec{}, false
	}
}
