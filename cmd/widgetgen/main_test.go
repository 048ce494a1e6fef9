package main

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widgetgen/internal/layout"
	"widgetgen/internal/sink"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, yml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "widgetgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	return path
}

// elementAttrs returns the attributes of the element whose android:id is
// @+id/<id>, keyed "android:name" / "tools:name".
func elementAttrs(t *testing.T, markup, id string) map[string]string {
	t.Helper()
	prefixes := map[string]string{
		"http://schemas.android.com/apk/res/android": "android",
		"http://schemas.android.com/tools":           "tools",
	}
	dec := xml.NewDecoder(strings.NewReader(markup))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		attrs := make(map[string]string, len(start.Attr))
		for _, a := range start.Attr {
			attrs[prefixes[a.Name.Space]+":"+a.Name.Local] = a.Value
		}
		if attrs["android:id"] == "@+id/"+id {
			return attrs
		}
	}
	t.Fatalf("no element with id %q", id)
	return nil
}

func TestGenerateDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "widgetgen.yaml")
	outDir := filepath.Join(dir, "out")

	stdout, _, err := execute(t, "--config", cfgPath, "--out-dir", outDir)
	require.NoError(t, err)

	assert.FileExists(t, cfgPath, "first run writes the default config")
	assert.Contains(t, stdout, "generated weekly (1x7, 12 slots) -> "+filepath.Join(outDir, "widget_weekly_layout.xml"))
	assert.Contains(t, stdout, "generated monthly (5x7, 10 slots) -> "+filepath.Join(outDir, "widget_full_calendar_layout.xml"))

	weekly, err := os.ReadFile(filepath.Join(outDir, "widget_weekly_layout.xml"))
	require.NoError(t, err)
	want, err := layout.Generate(layout.Weekly())
	require.NoError(t, err)
	assert.Equal(t, string(want), string(weekly))

	monthly, err := os.ReadFile(filepath.Join(outDir, "widget_full_calendar_layout.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(monthly), `android:id="@+id/task_34_9"`)
}

func TestGenerateSubcommandStdout(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "widgetgen.yaml")

	stdout, stderr, err := execute(t, "generate", "--config", cfgPath, "--variant", "monthly", "--stdout")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, `<?xml version="1.0" encoding="utf-8"?>`))
	assert.Contains(t, stdout, "widget_full_calendar_root")
	assert.NotContains(t, stdout, "widget_weekly_root")
	assert.Contains(t, stderr, "generated monthly (5x7, 10 slots) -> widget_full_calendar_layout.xml")
}

func TestGenerateDimensionOverrides(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "widgetgen.yaml")

	stdout, stderr, err := execute(t, "--config", cfgPath, "--variant", "monthly", "--rows", "6", "--slots", "3", "--stdout")
	require.NoError(t, err)
	assert.Contains(t, stdout, `android:id="@+id/cell_41"`)
	assert.Contains(t, stdout, `android:id="@+id/task_41_2"`)
	assert.NotContains(t, stdout, `android:id="@+id/task_41_3"`)
	assert.Contains(t, stderr, "(6x7, 3 slots)")
}

func TestGenerateInvalidSpecWritesNothing(t *testing.T) {
	cfgPath := writeConfig(t, `
variants:
  - name: monthly
  - name: weekly
    cols: 5
`)
	outDir := filepath.Join(t.TempDir(), "out")

	_, _, err := execute(t, "--config", cfgPath, "--out-dir", outDir)

	var ise *layout.InvalidSpecError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, "weekly", ise.Variant)
	assert.NoDirExists(t, outDir)
}

func TestGenerateWriteFailure(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "widgetgen.yaml")
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, _, err := execute(t, "--config", cfgPath, "--out-dir", blocker)

	var we *sink.WriteError
	require.ErrorAs(t, err, &we)
}

func TestGenerateUnknownVariant(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "widgetgen.yaml")
	_, _, err := execute(t, "--config", cfgPath, "--variant", "yearly")
	assert.ErrorContains(t, err, `unknown variant "yearly"`)
}

func TestGeneratePreview(t *testing.T) {
	dir := t.TempDir()
	icsPath := filepath.Join(dir, "sample.ics")
	ics := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//widgetgen//test//EN",
		"BEGIN:VEVENT",
		"UID:dentist",
		"DTSTAMP:20241101T000000Z",
		"DTSTART:20241203T020000Z",
		"DTEND:20241203T030000Z",
		"SUMMARY:Dentist",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")
	require.NoError(t, os.WriteFile(icsPath, []byte(ics), 0o600))
	cfgPath := writeConfig(t, `
timezone: UTC
preview:
  enabled: true
  reference_date: "2024-12-01"
`)

	stdout, _, err := execute(t, "--config", cfgPath, "--variant", "weekly", "--preview-ics", icsPath, "--stdout")
	require.NoError(t, err)
	assert.Contains(t, stdout, `xmlns:tools="http://schemas.android.com/tools"`)
	assert.Contains(t, stdout, `tools:text="2024년 12월 1주"`)
	assert.Equal(t, "Dentist", elementAttrs(t, stdout, "task_2_0")["tools:text"])
	assert.Equal(t, "3", elementAttrs(t, stdout, "day_2")["tools:text"])
	assert.Empty(t, elementAttrs(t, stdout, "task_1_0")["tools:text"])
}

func TestGeneratePartialStyle(t *testing.T) {
	cfgPath := writeConfig(t, `
variants:
  - name: monthly
    style:
      slot_text_size: 14sp
`)

	stdout, _, err := execute(t, "--config", cfgPath, "--stdout")
	require.NoError(t, err)
	assert.NotContains(t, stdout, `android:textSize=""`)
	assert.NotContains(t, stdout, `android:textColor=""`)
	assert.Equal(t, "14sp", elementAttrs(t, stdout, "task_0_0")["android:textSize"])
	assert.Equal(t, "9sp", elementAttrs(t, stdout, "task_0_more")["android:textSize"])
	assert.Equal(t, "#6B7280", elementAttrs(t, stdout, "day_0")["android:textColor"])
}

func TestValidate(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "widgetgen.yaml")
	stdout, _, err := execute(t, "validate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "ok weekly (1x7, 12 slots)\nok monthly (5x7, 10 slots)\n", stdout)
	assert.NoFileExists(t, cfgPath, "validate writes nothing")

	zero := writeConfig(t, `
variants:
  - name: monthly
    rows: 0
`)
	_, _, err = execute(t, "validate", "--config", zero)
	var ise *layout.InvalidSpecError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, "rows", ise.Field)

	bad := writeConfig(t, `
variants:
  - name: monthly
    labels:
      - text: "일"
        color: "#EF4444"
`)
	_, _, err = execute(t, "validate", "--config", bad)
	assert.ErrorIs(t, err, layout.ErrInvalidSpec)
}
