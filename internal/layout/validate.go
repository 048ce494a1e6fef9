package layout

import (
	"widgetgen/internal/model"
)

// Validate checks spec against the generator's input constraints. The first
// violation found is returned as an *InvalidSpecError.
func Validate(spec model.DimensionSpec) error {
	name := spec.Name

	if spec.Rows < 1 {
		return invalid(name, "rows", "must be >= 1, got %d", spec.Rows)
	}
	if spec.Cols < 1 {
		return invalid(name, "cols", "must be >= 1, got %d", spec.Cols)
	}
	if spec.SlotsPerCell < 0 {
		return invalid(name, "slots_per_cell", "must be >= 0, got %d", spec.SlotsPerCell)
	}

	switch spec.Axis {
	case model.AxisColumn:
		// Column keys ignore the row index, so a second row would repeat ids.
		if spec.Rows != 1 {
			return invalid(name, "axis", "column axis requires exactly 1 row, got %d", spec.Rows)
		}
	case model.AxisGrid:
	default:
		return invalid(name, "axis", "unknown axis %q (want column or grid)", spec.Axis)
	}

	switch spec.DayNumbers {
	case model.DayNumbersInCell:
	case model.DayNumbersInStrip:
		if !spec.LabelStrip {
			return invalid(name, "day_numbers", "strip placement requires the label strip")
		}
		if spec.Axis != model.AxisColumn {
			return invalid(name, "day_numbers", "strip placement requires the column axis")
		}
	default:
		return invalid(name, "day_numbers", "unknown placement %q (want cell or strip)", spec.DayNumbers)
	}

	if spec.LabelStrip && len(spec.Labels) != spec.Cols {
		return invalid(name, "labels", "label strip needs %d labels (one per column), got %d", spec.Cols, len(spec.Labels))
	}

	if spec.Header.RootID == "" {
		return invalid(name, "header.root_id", "must not be empty")
	}

	switch {
	case spec.Style.SlotTextSize == "":
		return invalid(name, "style.slot_text_size", "must not be empty")
	case spec.Style.OverflowTextSize == "":
		return invalid(name, "style.overflow_text_size", "must not be empty")
	case spec.Style.DayNumberColor == "":
		return invalid(name, "style.day_number_color", "must not be empty")
	}

	if spec.DetailSection && spec.Detail.ListID == "" {
		return invalid(name, "detail.list_id", "must not be empty when the detail section is on")
	}

	return nil
}

// checkUniqueIDs walks the built tree and rejects repeated identifiers.
func checkUniqueIDs(spec model.DimensionSpec, root *model.Region) error {
	seen := make(map[string]model.Kind)
	var dup error
	root.Walk(func(r *model.Region) bool {
		if dup != nil {
			return false
		}
		if r.ID == "" {
			return true
		}
		if prev, ok := seen[r.ID]; ok {
			dup = invalid(spec.Name, "identifiers", "%q used by both %s and %s regions", r.ID, prev, r.Kind)
			return false
		}
		seen[r.ID] = r.Kind
		return true
	})
	return dup
}
