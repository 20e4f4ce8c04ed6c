package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsvensson/colorkit"
	"github.com/jsvensson/colorkit/internal/config"
	"github.com/jsvensson/colorkit/internal/engine"
	"github.com/jsvensson/colorkit/internal/format"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagDocument  string
	flagOut       string
	flagTemplates string
	flagApp       []string
	flagAlpha     bool
	flagCheck     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render templates against a palette document",
	Long: `Render every .tmpl file in the templates directory against a palette document.
Defaults come from colorkit.hcl when it exists; flags override it.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format .ckpal files",
	Long:  "Format one or more .ckpal files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	generateCmd.Flags().StringVar(&flagConfig, "config", config.FileName, "path to the project file")
	generateCmd.Flags().StringVar(&flagDocument, "document", "", "path to the palette document")
	generateCmd.Flags().StringVar(&flagOut, "out", "", "output directory")
	generateCmd.Flags().StringVar(&flagTemplates, "templates", "", "templates directory")
	generateCmd.Flags().StringArrayVar(&flagApp, "app", nil, "generate only for specific apps (can be repeated)")
	generateCmd.Flags().BoolVar(&flagAlpha, "alpha", false, "keep alpha digits for translucent colors")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(fmtCmd)
}

// applyGenerateFlags overlays explicitly set flags on the project file.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("document") {
		cfg.Generate.Document = flagDocument
	}
	if flags.Changed("out") {
		cfg.Generate.Output = flagOut
	}
	if flags.Changed("templates") {
		cfg.Generate.Templates = flagTemplates
	}
	if flags.Changed("app") {
		cfg.Generate.Apps = flagApp
	}
	if flags.Changed("alpha") {
		cfg.Defaults.IncludeAlpha = flagAlpha
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyGenerateFlags(cmd, cfg)

	doc, err := colorkit.LoadWithOptions(cfg.Generate.Document, colorkit.Options{
		Steps:         cfg.Defaults.Steps,
		Interpolation: cfg.Defaults.Interpolation,
		FPS:           cfg.Defaults.FPS,
	})
	if err != nil {
		return err
	}

	e := &engine.Engine{
		TemplatesDir: cfg.Generate.Templates,
		OutputDir:    cfg.Generate.Output,
		Apps:         cfg.Generate.Apps,
		IncludeAlpha: cfg.Defaults.IncludeAlpha,
	}

	written, err := e.Run(doc)
	if err != nil {
		return fmt.Errorf("generating: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d files in %s\n", len(written), cfg.Generate.Output)
	return nil
}

var errNeedsFormatting = errors.New("some files are not formatted")

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	switch {
	case hasErrors:
		return errors.New("formatting failed")
	case flagCheck && needsFormatting:
		return errNeedsFormatting
	}
	return nil
}
