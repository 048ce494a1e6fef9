package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"widgetgen/internal/config"
	"widgetgen/internal/ics"
	"widgetgen/internal/layout"
	appLog "widgetgen/internal/log"
	"widgetgen/internal/model"
	"widgetgen/internal/sink"
)

// generated is one rendered variant waiting to be written.
type generated struct {
	variant config.VariantConfig
	spec    model.DimensionSpec
	text    []byte
}

// runGenerate renders every selected variant, then writes them one by one.
// Rendering finishes for all variants before the first write, so an invalid
// spec leaves every destination untouched.
func runGenerate(cmd *cobra.Command, opts *cliOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, selected, err := loadConfig(cmd, opts, true)
	if err != nil {
		return err
	}

	appLog.Info("effective config",
		"config_path", opts.configPath,
		"output_dir", cfg.OutputDir,
		"variant_count", len(selected),
		"preview", opts.preview || cfg.Preview.Enabled,
		"stdout", opts.stdout,
	)

	previewFor, err := previewBuilder(ctx, cfg, opts)
	if err != nil {
		return err
	}

	results := make([]generated, len(selected))
	g, _ := errgroup.WithContext(ctx)
	for i, v := range selected {
		g.Go(func() error {
			spec := v.Spec()
			if err := layout.Validate(spec); err != nil {
				return err
			}
			var layoutOpts []layout.Option
			if previewFor != nil {
				p, err := previewFor(spec)
				if err != nil {
					return fmt.Errorf("preview %q: %w", spec.Name, err)
				}
				layoutOpts = append(layoutOpts, layout.WithPreview(p))
			}

			text, err := layout.Generate(spec, layoutOpts...)
			if err != nil {
				return err
			}
			results[i] = generated{variant: v, spec: spec, text: text}
			appLog.Debug("variant rendered", "variant", spec.Name, "bytes", len(text))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var out sink.Sink
	var files *sink.FileSink
	if opts.stdout {
		out = &sink.WriterSink{W: cmd.OutOrStdout()}
	} else {
		dir := cfg.OutputDir
		if opts.outDir != "" {
			dir = opts.outDir
		}
		files = sink.NewFileSink(dir)
		out = files
	}

	for _, r := range results {
		if err := out.Write(r.variant.Output, r.text); err != nil {
			return err
		}

		dest := r.variant.Output
		if files != nil {
			dest = files.Path(dest)
		}
		appLog.Info("layout generated",
			"variant", r.spec.Name,
			"rows", r.spec.Rows,
			"cols", r.spec.Cols,
			"slots_per_cell", r.spec.SlotsPerCell,
			"dest", dest,
		)
		// With --stdout the markup owns stdout; confirmations go to stderr.
		confirm := cmd.OutOrStdout()
		if opts.stdout {
			confirm = cmd.ErrOrStderr()
		}
		fmt.Fprintf(confirm, "generated %s (%dx%d, %d slots) -> %s\n",
			r.spec.Name, r.spec.Rows, r.spec.Cols, r.spec.SlotsPerCell, dest)
	}
	return nil
}

// previewBuilder returns nil when the preview is off. The sample calendar is
// loaded and parsed once and shared by every variant.
func previewBuilder(ctx context.Context, cfg *config.Config, opts *cliOptions) (func(model.DimensionSpec) (*model.Preview, error), error) {
	icsLocation := cfg.Preview.ICS
	if opts.previewICS != "" {
		icsLocation = opts.previewICS
	}
	if !opts.preview && !cfg.Preview.Enabled && opts.previewICS == "" {
		return nil, nil
	}

	ref, err := cfg.ReferenceDate()
	if err != nil {
		return nil, err
	}

	var events []ics.ParsedEvent
	if icsLocation != "" {
		src := ics.Source{ID: "preview", Location: icsLocation}
		loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		body, err := ics.NewLoader().Load(loadCtx, src)
		if err != nil {
			return nil, fmt.Errorf("preview calendar: %w", err)
		}
		events, err = ics.ParseICS(src, body)
		if err != nil {
			return nil, fmt.Errorf("preview calendar: %w", err)
		}
	}

	return func(spec model.DimensionSpec) (*model.Preview, error) {
		return ics.PreviewFor(spec, ref, events)
	}, nil
}
