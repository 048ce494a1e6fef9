package ics

import (
	"fmt"
	"strconv"
	"time"

	"widgetgen/internal/model"
)

// GridStart returns the date of cell key 0 for the week or month containing
// ref. Weeks start on Sunday, matching the day-label order.
func GridStart(spec model.DimensionSpec, ref time.Time) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	if spec.Axis == model.AxisGrid {
		day = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	}
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// Window returns the half-open range [start, end) covered by spec's cells.
func Window(spec model.DimensionSpec, ref time.Time) (time.Time, time.Time) {
	start := GridStart(spec, ref)
	return start, start.AddDate(0, 0, spec.CellCount())
}

// Title formats the header preview text for ref.
func Title(spec model.DimensionSpec, ref time.Time) string {
	if spec.Axis == model.AxisGrid {
		return fmt.Sprintf("%d년 %d월", ref.Year(), int(ref.Month()))
	}
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	week := (ref.Day()+int(first.Weekday())-1)/7 + 1
	return fmt.Sprintf("%d년 %d월 %d주", ref.Year(), int(ref.Month()), week)
}

// BuildPreview lays occurrences out over spec's cells. Every occurrence is
// listed under each day it overlaps, in the order given; the layout decides
// how many fit.
func BuildPreview(spec model.DimensionSpec, ref time.Time, occs []model.Occurrence) *model.Preview {
	start := GridStart(spec, ref)
	p := &model.Preview{
		Title: Title(spec, ref),
		Days:  make([]model.PreviewDay, spec.CellCount()),
	}

	for k := range p.Days {
		dayStart := start.AddDate(0, 0, k)
		dayEnd := start.AddDate(0, 0, k+1)
		pd := model.PreviewDay{Number: strconv.Itoa(dayStart.Day())}
		for _, o := range occs {
			if timeRangesOverlap(o.Start.In(ref.Location()), o.End.In(ref.Location()), dayStart, dayEnd) {
				pd.Items = append(pd.Items, o.Summary)
			}
		}
		p.Days[k] = pd
	}
	return p
}

// PreviewFor expands events over spec's window and builds its preview.
// ref carries the display timezone.
func PreviewFor(spec model.DimensionSpec, ref time.Time, events []ParsedEvent) (*model.Preview, error) {
	start, end := Window(spec, ref)
	res, err := ExpandOccurrences(events, ExpandConfig{
		DisplayLocation: ref.Location(),
		RangeStart:      start,
		RangeEnd:        end,
	})
	if err != nil {
		return nil, err
	}
	return BuildPreview(spec, ref, res.Occurrences), nil
}
