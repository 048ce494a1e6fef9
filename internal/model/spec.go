package model

// Axis selects how cell identifiers are derived from grid coordinates.
type Axis string

const (
	// AxisColumn is the single-axis layout (one row of day columns). The cell
	// key is the column index.
	AxisColumn Axis = "column"
	// AxisGrid is the two-axis layout (weeks x days). The cell key is the
	// row-major index row*Cols+col.
	AxisGrid Axis = "grid"
)

// DayNumberPlacement selects where the per-day number region lives.
type DayNumberPlacement string

const (
	// DayNumbersInCell puts day_{k} at the top of every cell.
	DayNumbersInCell DayNumberPlacement = "cell"
	// DayNumbersInStrip puts day_{c} under each label of the day-label strip.
	DayNumbersInStrip DayNumberPlacement = "strip"
)

// DayLabel is one entry of the day-label strip.
type DayLabel struct {
	Text  string `yaml:"text"`
	Color string `yaml:"color"`
}

// Header names the identifiers and static text of the header bar.
type Header struct {
	RootID  string `yaml:"root_id"`
	TitleID string `yaml:"title_id"`
	Title   string `yaml:"title"`
	PrevID  string `yaml:"prev_id"`
	NextID  string `yaml:"next_id"`
	AddID   string `yaml:"add_id"`
}

// Detail names the selected-day list appended below the grid.
type Detail struct {
	LabelID string `yaml:"label_id"`
	Label   string `yaml:"label"`
	ListID  string `yaml:"list_id"`
}

// Style holds the few presentation values that differ between variants.
type Style struct {
	SlotTextSize     string `yaml:"slot_text_size"`
	OverflowTextSize string `yaml:"overflow_text_size"`
	DayNumberColor   string `yaml:"day_number_color"`
	SelectableCells  bool   `yaml:"selectable_cells"`
}

// DimensionSpec is the immutable input of one generation run.
type DimensionSpec struct {
	Name         string
	Rows         int
	Cols         int
	SlotsPerCell int
	Axis         Axis

	Labels     []DayLabel
	LabelStrip bool
	DayNumbers DayNumberPlacement

	// DetailSection appends the selected-day list below the grid.
	DetailSection bool
	Detail        Detail

	Header Header
	Style  Style
}

// CellKey returns the positional key of the cell at (row, col).
func (s DimensionSpec) CellKey(row, col int) int {
	if s.Axis == AxisColumn {
		return col
	}
	return row*s.Cols + col
}

// CellCount is the number of cells the dimensions produce.
func (s DimensionSpec) CellCount() int {
	return s.Rows * s.Cols
}
