package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widgetgen/internal/layout"
	"widgetgen/internal/model"
)

func TestLoadFirstRunWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "widgetgen.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Variants, 2)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	again, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, again); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestDefaultVariantsMatchPresets(t *testing.T) {
	cfg := DefaultConfig()

	weekly, ok := cfg.Variant("weekly")
	require.True(t, ok)
	if diff := cmp.Diff(layout.Weekly(), weekly.Spec()); diff != "" {
		t.Errorf("weekly spec mismatch (-want +got):\n%s", diff)
	}

	monthly, ok := cfg.Variant("monthly")
	require.True(t, ok)
	if diff := cmp.Diff(layout.Monthly(), monthly.Spec()); diff != "" {
		t.Errorf("monthly spec mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "widget_full_calendar_layout.xml", monthly.Output)
}

func TestLoadPartialVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgetgen.yaml")
	yml := `
output_dir: out
variants:
  - name: monthly
    rows: 6
    slots_per_cell: 0
  - name: agenda
    cols: 3
    label_strip: false
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "Asia/Seoul", cfg.Timezone)
	assert.Equal(t, "INFO", cfg.LogLevel)

	monthly, ok := cfg.Variant("monthly")
	require.True(t, ok)
	spec := monthly.Spec()
	assert.Equal(t, 6, spec.Rows)
	assert.Equal(t, 7, spec.Cols)
	assert.Equal(t, 0, spec.SlotsPerCell, "explicit zero survives normalize")
	assert.Equal(t, model.AxisGrid, spec.Axis)
	assert.Equal(t, "widget_full_calendar_root", spec.Header.RootID)
	assert.Equal(t, "widget_full_calendar_layout.xml", monthly.Output, "preset names keep the preset file name")
	assert.NoError(t, layout.Validate(spec))

	agenda, ok := cfg.Variant("agenda")
	require.True(t, ok)
	spec = agenda.Spec()
	assert.False(t, spec.LabelStrip)
	assert.Empty(t, spec.Labels)
	assert.Equal(t, "widget_agenda_root", spec.Header.RootID)
	assert.Equal(t, 10, spec.SlotsPerCell)
	assert.Equal(t, "widget_agenda_layout.xml", agenda.Output)
	assert.NoError(t, layout.Validate(spec))
}

func TestLoadPartialStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgetgen.yaml")
	yml := `
variants:
  - name: monthly
    style:
      slot_text_size: 14sp
  - name: weekly
    style:
      day_number_color: "#000000"
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	monthly, _ := cfg.Variant("monthly")
	want := layout.Monthly().Style
	want.SlotTextSize = "14sp"
	if diff := cmp.Diff(want, monthly.Spec().Style); diff != "" {
		t.Errorf("monthly style mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, layout.Validate(monthly.Spec()))

	weekly, _ := cfg.Variant("weekly")
	want = layout.Weekly().Style
	want.DayNumberColor = "#000000"
	if diff := cmp.Diff(want, weekly.Spec().Style); diff != "" {
		t.Errorf("weekly style mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, weekly.Spec().Style.SelectableCells)
}

func TestLoadPartialHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgetgen.yaml")
	yml := `
variants:
  - name: weekly
    header:
      title: "12월 첫째 주"
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	weekly, _ := cfg.Variant("weekly")
	want := layout.Weekly().Header
	want.Title = "12월 첫째 주"
	if diff := cmp.Diff(want, weekly.Spec().Header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, layout.Validate(weekly.Spec()))
}

func TestLoadExplicitZeroDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgetgen.yaml")
	yml := `
variants:
  - name: monthly
    rows: 0
  - name: weekly
    cols: 0
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	monthly, _ := cfg.Variant("monthly")
	var ise *layout.InvalidSpecError
	require.ErrorAs(t, layout.Validate(monthly.Spec()), &ise)
	assert.Equal(t, "rows", ise.Field)

	weekly, _ := cfg.Variant("weekly")
	require.ErrorAs(t, layout.Validate(weekly.Spec()), &ise)
	assert.Equal(t, "cols", ise.Field)
}

func TestReadDoesNotWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgetgen.yaml")

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Variants, 2)
	assert.NoFileExists(t, path)

	_, err = Read("")
	assert.Error(t, err)
}

func TestLoadKeepsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgetgen.yaml")
	yml := `
variants:
  - name: weekly
    cols: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	weekly, _ := cfg.Variant("weekly")

	err = layout.Validate(weekly.Spec())
	var ise *layout.InvalidSpecError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, "labels", ise.Field)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgetgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variants: [:"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "config: parse")
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
	assert.Error(t, Save("", DefaultConfig()))
	assert.Error(t, Save("x.yaml", nil))
}

func TestReferenceDate(t *testing.T) {
	cfg := DefaultConfig()
	ref, err := cfg.ReferenceDate()
	require.NoError(t, err)
	assert.Equal(t, time.December, ref.Month())
	assert.Equal(t, 1, ref.Day())

	cfg.Preview.ReferenceDate = "12/01/2024"
	_, err = cfg.ReferenceDate()
	assert.ErrorContains(t, err, "preview.reference_date")
}

func TestLocationFallback(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus_Mons"}
	assert.Equal(t, time.Local, cfg.Location())
}
