package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"widgetgen/internal/config"
	"widgetgen/internal/layout"
	appLog "widgetgen/internal/log"
)

// cliOptions holds flag values shared by the subcommands.
type cliOptions struct {
	configPath string
	variants   []string
	outDir     string
	stdout     bool
	rows       int
	cols       int
	slots      int
	preview    bool
	previewICS string
	debug      bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "widgetgen",
		Short: "Generate calendar widget layout XML",
		Long: `widgetgen builds the weekly and monthly home-screen widget layouts
(header, day labels, day cells with task slots) from a YAML config and
writes them as Android layout XML.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "./widgetgen.yaml", "Path to config file (created with defaults if missing)")
	root.PersistentFlags().StringSliceVar(&opts.variants, "variant", nil, "Variant(s) to process (default: all in config)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().IntVar(&opts.rows, "rows", 0, "Override row count of the selected variants")
	root.PersistentFlags().IntVar(&opts.cols, "cols", 0, "Override column count of the selected variants")
	root.PersistentFlags().IntVar(&opts.slots, "slots", 0, "Override task slots per cell of the selected variants")
	addGenerateFlags(root, opts)

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate layouts (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}
	addGenerateFlags(generate, opts)

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Check every selected variant without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}

	root.AddCommand(generate, validate)
	return root
}

func addGenerateFlags(cmd *cobra.Command, opts *cliOptions) {
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "Output directory (overrides config output_dir)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Write layouts to stdout instead of files")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Add tools:text sample data (overrides config preview.enabled)")
	cmd.Flags().StringVar(&opts.previewICS, "preview-ics", "", "Sample calendar path or URL for the preview")
}

// loadConfig loads the config and applies logging and dimension overrides.
// The default config is written on first run only when write is set.
func loadConfig(cmd *cobra.Command, opts *cliOptions, write bool) (*config.Config, []config.VariantConfig, error) {
	load := config.Read
	if write {
		load = config.Load
	}
	cfg, err := load(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config %s: %w", opts.configPath, err)
	}

	level := appLog.ParseLevel(cfg.LogLevel)
	if opts.debug {
		level = appLog.LevelDebug
	}
	appLog.SetLevel(level)

	selected, err := selectVariants(cfg, opts.variants)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	for i := range selected {
		if flags.Changed("rows") {
			n := opts.rows
			selected[i].Rows = &n
		}
		if flags.Changed("cols") {
			n := opts.cols
			selected[i].Cols = &n
		}
		if flags.Changed("slots") {
			n := opts.slots
			selected[i].SlotsPerCell = &n
		}
	}
	return cfg, selected, nil
}

func selectVariants(cfg *config.Config, names []string) ([]config.VariantConfig, error) {
	if len(names) == 0 {
		return append([]config.VariantConfig(nil), cfg.Variants...), nil
	}
	out := make([]config.VariantConfig, 0, len(names))
	for _, name := range names {
		v, ok := cfg.Variant(name)
		if !ok {
			return nil, fmt.Errorf("unknown variant %q", name)
		}
		out = append(out, v)
	}
	return out, nil
}

func runValidate(cmd *cobra.Command, opts *cliOptions) error {
	_, selected, err := loadConfig(cmd, opts, false)
	if err != nil {
		return err
	}

	var errs []error
	for _, v := range selected {
		spec := v.Spec()
		if _, err := layout.Build(spec); err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok %s (%dx%d, %d slots)\n", spec.Name, spec.Rows, spec.Cols, spec.SlotsPerCell)
	}
	return errors.Join(errs...)
}
