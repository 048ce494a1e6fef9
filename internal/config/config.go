package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"widgetgen/internal/layout"
	appLog "widgetgen/internal/log"
	"widgetgen/internal/model"
)

// NOTE: This file provides the configuration model and full YAML-based
// load/save behavior, including first-run config creation and 0600
// permissions.

const (
	defaultOutputDir = "./layout"
	defaultTimezone  = "Asia/Seoul"
)

// PreviewConfig controls the design-time sample data (tools:text).
type PreviewConfig struct {
	// Enabled turns the preview on for every variant.
	Enabled bool `yaml:"enabled"`

	// ReferenceDate (YYYY-MM-DD) picks the week/month shown in the preview.
	ReferenceDate string `yaml:"reference_date"`

	// ICS is an optional local path or http(s) URL of a sample calendar.
	ICS string `yaml:"ics,omitempty"`
}

// VariantConfig describes one generated layout. Zero values are filled from
// the built-in preset of the same name by Normalize.
type VariantConfig struct {
	Name   string `yaml:"name"`
	Output string `yaml:"output"`

	// Dimensions are pointers so that an explicit 0 survives Normalize and
	// reaches layout.Validate.
	Rows         *int   `yaml:"rows"`
	Cols         *int   `yaml:"cols"`
	SlotsPerCell *int   `yaml:"slots_per_cell"`
	Axis         string `yaml:"axis"`

	LabelStrip *bool            `yaml:"label_strip"`
	DayNumbers string           `yaml:"day_numbers"`
	Labels     []model.DayLabel `yaml:"labels"`

	DetailSection bool         `yaml:"detail_section"`
	Detail        model.Detail `yaml:"detail,omitempty"`

	Header model.Header `yaml:"header"`
	Style  StyleConfig  `yaml:"style"`
}

// StyleConfig is the YAML form of model.Style.
type StyleConfig struct {
	SlotTextSize     string `yaml:"slot_text_size"`
	OverflowTextSize string `yaml:"overflow_text_size"`
	DayNumberColor   string `yaml:"day_number_color"`
	SelectableCells  *bool  `yaml:"selectable_cells"`
}

// Config is the top-level generator configuration.
type Config struct {
	// OutputDir is where relative variant outputs are written
	// (typically app/src/main/res/layout).
	OutputDir string `yaml:"output_dir"`

	// Timezone is the IANA timezone used for preview dates (e.g. "Asia/Seoul").
	Timezone string `yaml:"timezone"`

	// LogLevel is one of DEBUG, INFO, ERROR.
	LogLevel string `yaml:"log_level"`

	Variants []VariantConfig `yaml:"variants"`

	Preview PreviewConfig `yaml:"preview"`
}

// DefaultConfig returns an in-memory default configuration with both
// built-in variants.
func DefaultConfig() *Config {
	cfg := &Config{
		OutputDir: defaultOutputDir,
		Timezone:  defaultTimezone,
		LogLevel:  string(appLog.LevelInfo),
		Variants: []VariantConfig{
			FromSpec(layout.Weekly(), defaultOutput("weekly")),
			FromSpec(layout.Monthly(), defaultOutput("monthly")),
		},
		Preview: PreviewConfig{
			Enabled:       false,
			ReferenceDate: "2024-12-01",
		},
	}
	return cfg
}

// presetOutputs are the file names the widget's Android code inflates.
var presetOutputs = map[string]string{
	"weekly":  "widget_weekly_layout.xml",
	"monthly": "widget_full_calendar_layout.xml",
}

func defaultOutput(name string) string {
	if out, ok := presetOutputs[name]; ok {
		return out
	}
	return "widget_" + name + "_layout.xml"
}

// FromSpec converts a DimensionSpec into its config form.
func FromSpec(spec model.DimensionSpec, output string) VariantConfig {
	rows, cols, slots := spec.Rows, spec.Cols, spec.SlotsPerCell
	strip := spec.LabelStrip
	selectable := spec.Style.SelectableCells
	return VariantConfig{
		Name:          spec.Name,
		Output:        output,
		Rows:          &rows,
		Cols:          &cols,
		SlotsPerCell:  &slots,
		Axis:          string(spec.Axis),
		LabelStrip:    &strip,
		DayNumbers:    string(spec.DayNumbers),
		Labels:        append([]model.DayLabel(nil), spec.Labels...),
		DetailSection: spec.DetailSection,
		Detail:        spec.Detail,
		Header:        spec.Header,
		Style: StyleConfig{
			SlotTextSize:     spec.Style.SlotTextSize,
			OverflowTextSize: spec.Style.OverflowTextSize,
			DayNumberColor:   spec.Style.DayNumberColor,
			SelectableCells:  &selectable,
		},
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly. Values that are present
// but invalid are left alone for layout.Validate to report.
func (c *Config) Normalize() {
	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}
	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}
	c.LogLevel = string(appLog.ParseLevel(c.LogLevel))
	if c.Variants == nil {
		c.Variants = DefaultConfig().Variants
	}
	for i := range c.Variants {
		c.Variants[i].normalize()
	}
	if c.Preview.ReferenceDate == "" {
		c.Preview.ReferenceDate = "2024-12-01"
	}
}

func (v *VariantConfig) normalize() {
	base, ok := layout.Preset(v.Name)
	if !ok {
		// Custom variants start from the monthly grid with a header of their own.
		base = layout.Monthly()
		base.Name = v.Name
		base.Header = model.Header{RootID: "widget_" + v.Name + "_root"}
	}

	if v.Output == "" {
		v.Output = defaultOutput(v.Name)
	}
	v.Rows = orInt(v.Rows, base.Rows)
	v.Cols = orInt(v.Cols, base.Cols)
	v.SlotsPerCell = orInt(v.SlotsPerCell, base.SlotsPerCell)
	if v.Axis == "" {
		v.Axis = string(base.Axis)
	}
	v.LabelStrip = orBool(v.LabelStrip, base.LabelStrip)
	if v.DayNumbers == "" {
		v.DayNumbers = string(base.DayNumbers)
	}
	if v.Labels == nil && *v.LabelStrip {
		v.Labels = layout.DefaultLabels()
	}

	if v.DetailSection {
		d := layout.Weekly().Detail
		fill(&v.Detail.LabelID, d.LabelID)
		fill(&v.Detail.Label, d.Label)
		fill(&v.Detail.ListID, d.ListID)
	}

	h := base.Header
	fill(&v.Header.RootID, h.RootID)
	fill(&v.Header.TitleID, h.TitleID)
	fill(&v.Header.Title, h.Title)
	fill(&v.Header.PrevID, h.PrevID)
	fill(&v.Header.NextID, h.NextID)
	fill(&v.Header.AddID, h.AddID)

	st := base.Style
	fill(&v.Style.SlotTextSize, st.SlotTextSize)
	fill(&v.Style.OverflowTextSize, st.OverflowTextSize)
	fill(&v.Style.DayNumberColor, st.DayNumberColor)
	v.Style.SelectableCells = orBool(v.Style.SelectableCells, st.SelectableCells)
}

func fill(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func orInt(p *int, def int) *int {
	if p != nil {
		return p
	}
	return &def
}

func orBool(p *bool, def bool) *bool {
	if p != nil {
		return p
	}
	return &def
}

// Spec converts the variant into the generator's input.
func (v VariantConfig) Spec() model.DimensionSpec {
	spec := model.DimensionSpec{
		Name:          v.Name,
		Axis:          model.Axis(v.Axis),
		Labels:        append([]model.DayLabel(nil), v.Labels...),
		DayNumbers:    model.DayNumberPlacement(v.DayNumbers),
		DetailSection: v.DetailSection,
		Detail:        v.Detail,
		Header:        v.Header,
		Style: model.Style{
			SlotTextSize:     v.Style.SlotTextSize,
			OverflowTextSize: v.Style.OverflowTextSize,
			DayNumberColor:   v.Style.DayNumberColor,
		},
	}
	if v.Rows != nil {
		spec.Rows = *v.Rows
	}
	if v.Cols != nil {
		spec.Cols = *v.Cols
	}
	if v.Style.SelectableCells != nil {
		spec.Style.SelectableCells = *v.Style.SelectableCells
	}
	if v.SlotsPerCell != nil {
		spec.SlotsPerCell = *v.SlotsPerCell
	}
	if v.LabelStrip != nil {
		spec.LabelStrip = *v.LabelStrip
	}
	return spec
}

// Variant returns the variant with the given name.
func (c *Config) Variant(name string) (VariantConfig, bool) {
	for _, v := range c.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return VariantConfig{}, false
}

// Location resolves Timezone, falling back to time.Local when it is unknown.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		appLog.Error("failed to load timezone; falling back to local", err, "name", c.Timezone)
		return time.Local
	}
	return loc
}

// ReferenceDate parses Preview.ReferenceDate in the configured timezone.
func (c *Config) ReferenceDate() (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", c.Preview.ReferenceDate, c.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("config: preview.reference_date: %w", err)
	}
	return t, nil
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist:
//   - create parent directory if needed
//   - write a default config with 0600 perms
//   - return the default config
//   - If the file exists:
//   - read YAML and unmarshal into Config
//   - normalize defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			appLog.Info("wrote default config", "path", path)
			return cfg, nil
		}
		return nil, err
	}

	return parse(path, data)
}

// Read is Load without the first-run write: a missing file yields the
// default configuration and nothing is created.
func Read(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		appLog.Debug("config not found; using defaults", "path", path)
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the given configuration to the specified path.
//
// Implementation details:
//   - Ensures parent directory exists (0700).
//   - Marshals cfg to YAML.
//   - Writes atomically via a temp file + rename.
//   - Ensures final file permissions are 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".widgetgen-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Ensure we clean up temp file on error.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save is a convenience method on Config that delegates to the package-level
// Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
