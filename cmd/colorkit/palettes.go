package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/gradient"
	"github.com/jsvensson/colorkit/internal/harmony"
	"github.com/jsvensson/colorkit/internal/palette"
	"github.com/spf13/cobra"
)

var (
	flagGradientSteps   int
	flagScaleSteps      int
	flagSequentialSteps int
	flagDivergingSteps  int
	flagInterpolation   string
	flagHarmonyType     string
	flagDuration        time.Duration
	flagFPS             int
	flagPerSide         int
	flagSpread          float64
	flagDark            string
)

var gradientCmd = &cobra.Command{
	Use:   "gradient COLOR COLOR [COLOR...]",
	Short: "Interpolate between two or more colors",
	Long: `Interpolate between colors. Two colors give a simple gradient; more colors are
treated as evenly spaced stops.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := gradient.ParseInterpolation(flagInterpolation)
		if err != nil {
			return err
		}
		stops, err := parseColors(args)
		if err != nil {
			return err
		}
		if len(stops) == 2 {
			printColors(cmd.OutOrStdout(), gradient.GenerateRGBA(stops[0], stops[1], flagGradientSteps, mode))
			return nil
		}
		printColors(cmd.OutOrStdout(), gradient.MultiStopRGBA(stops, flagGradientSteps, mode))
		return nil
	},
}

var scaleCmd = &cobra.Command{
	Use:   "scale NAME",
	Short: "Print a data visualization scheme, palette table or gradient preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		colors, err := resolveScale(args[0], flagScaleSteps)
		if err != nil {
			return err
		}
		printColors(cmd.OutOrStdout(), colors)
		return nil
	},
}

// resolveScale looks name up as a scheme, then a palette table, then a
// gradient preset. steps 0 prints a table in full.
func resolveScale(name string, steps int) ([]color.RGBA, error) {
	if s, err := gradient.ParseScheme(name); err == nil {
		if steps == 0 {
			steps = 9
		}
		return gradient.DataVisualizationRGBA(s, steps), nil
	}
	if t, ok := palette.Lookup(name); ok {
		if steps == 0 {
			return t.RGBA(), nil
		}
		return parseColors(palette.Subset(t.Colors, steps))
	}
	if p, ok := gradient.Presets[name]; ok {
		if steps == 0 {
			steps = 10
		}
		stops, err := parseColors(p.Stops)
		if err != nil {
			return nil, err
		}
		return gradient.MultiStopRGBA(stops, steps, gradient.Perceptual), nil
	}
	return nil, fmt.Errorf("unknown scale %q", name)
}

var animateCmd = &cobra.Command{
	Use:   "animate FROM TO",
	Short: "Print one color per animation frame",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDuration <= 0 {
			return fmt.Errorf("duration must be positive, got %s", flagDuration)
		}
		if flagFPS <= 0 {
			return fmt.Errorf("fps must be positive, got %d", flagFPS)
		}
		ends, err := parseColors(args)
		if err != nil {
			return err
		}
		printColors(cmd.OutOrStdout(), gradient.AnimationRGBA(ends[0], ends[1], flagDuration, flagFPS))
		return nil
	},
}

var harmonyCmd = &cobra.Command{
	Use:   "harmony COLOR",
	Short: "Derive a color harmony from a base color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := harmony.ParseType(flagHarmonyType)
		if err != nil {
			return err
		}
		base, err := color.ParseHex(args[0])
		if err != nil {
			return err
		}
		printColors(cmd.OutOrStdout(), harmony.Generate(base, t))
		return nil
	},
}

var sequentialCmd = &cobra.Command{
	Use:   "sequential COLOR",
	Short: "Print a light-to-dark ramp of one hue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := color.ParseHex(args[0])
		if err != nil {
			return err
		}
		printColors(cmd.OutOrStdout(), harmony.Sequential(base, flagSequentialSteps))
		return nil
	},
}

var divergingCmd = &cobra.Command{
	Use:   "diverging START END",
	Short: "Print a diverging scale through a light midpoint",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ends, err := parseColors(args)
		if err != nil {
			return err
		}
		printColors(cmd.OutOrStdout(), harmony.Diverging(ends[0], ends[1], flagDivergingSteps))
		return nil
	},
}

var shadesCmd = &cobra.Command{
	Use:   "shades COLOR",
	Short: "Print darker shades, the color, and lighter tints",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := color.ParseHex(args[0])
		if err != nil {
			return err
		}
		printColors(cmd.OutOrStdout(), palette.TintsAndShades(base, flagPerSide, flagSpread))
		return nil
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme [NAME] [TOKEN...]",
	Short: "List built-in themes or resolve theme tokens",
	Args:  cobra.ArbitraryArgs,
	RunE:  runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, t := range palette.Themes() {
			fmt.Fprintln(out, t.Name)
		}
		return nil
	}

	t, err := palette.ThemeByName(args[0])
	if err != nil {
		return err
	}
	ctx := palette.NewContext(t)
	if flagDark != "" {
		d, err := palette.ThemeByName(flagDark)
		if err != nil {
			return err
		}
		ctx.SetDark(&d)
	}

	tokens := args[1:]
	if len(tokens) == 0 {
		tokens = t.Keys()
	}
	for _, key := range tokens {
		c, ok := ctx.Resolve(key, flagDark != "")
		if !ok {
			return fmt.Errorf("theme %q has no token %q", t.Name, key)
		}
		fmt.Fprintf(out, "%s\t%s\n", key, color.Format(c, c.A < 1))
	}
	return nil
}

func init() {
	names := func(items []string) string { return strings.Join(items, ", ") }

	var interpolations []string
	for _, m := range gradient.Interpolations() {
		interpolations = append(interpolations, m.String())
	}
	var types []string
	for _, t := range harmony.Types() {
		types = append(types, t.String())
	}

	gradientCmd.Flags().IntVarP(&flagGradientSteps, "steps", "n", 10, "number of colors")
	gradientCmd.Flags().StringVarP(&flagInterpolation, "interpolation", "i", gradient.Perceptual.String(),
		"interpolation mode ("+names(interpolations)+")")
	scaleCmd.Flags().IntVarP(&flagScaleSteps, "steps", "n", 0, "number of colors (0 for the default)")
	animateCmd.Flags().DurationVarP(&flagDuration, "duration", "d", time.Second, "animation length")
	animateCmd.Flags().IntVar(&flagFPS, "fps", 30, "frames per second")
	harmonyCmd.Flags().StringVarP(&flagHarmonyType, "type", "t", harmony.Complementary.String(),
		"harmony type ("+names(types)+")")
	sequentialCmd.Flags().IntVarP(&flagSequentialSteps, "steps", "n", 9, "number of colors")
	divergingCmd.Flags().IntVarP(&flagDivergingSteps, "steps", "n", 11, "number of colors")
	shadesCmd.Flags().IntVar(&flagPerSide, "per-side", 2, "shades and tints on each side of the color")
	shadesCmd.Flags().Float64Var(&flagSpread, "spread", 0.3, "brightness offset at each end")
	themeCmd.Flags().StringVar(&flagDark, "dark", "", "resolve tokens against this dark variant first")

	rootCmd.AddCommand(gradientCmd, scaleCmd, animateCmd, harmonyCmd, sequentialCmd, divergingCmd, shadesCmd, themeCmd)
}
