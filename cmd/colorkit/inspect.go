package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsvensson/colorkit/internal/access"
	"github.com/jsvensson/colorkit/internal/blend"
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/colorspace"
	"github.com/jsvensson/colorkit/internal/perceptual"
	"github.com/jsvensson/colorkit/internal/psychology"
	"github.com/jsvensson/colorkit/internal/temperature"
	"github.com/jsvensson/colorkit/internal/vision"
	"github.com/spf13/cobra"
)

var (
	flagDeficiency  string
	flagBlendMode   string
	flagEmotions    []string
	flagCount       int
	flagWarmth      float64
	flagTint        float64
	flagWhitePreset string
	flagStrength    float64
	flagKelvin      float64
)

var convertCmd = &cobra.Command{
	Use:   "convert COLOR...",
	Short: "Show colors in RGB, HSL, XYZ, L*a*b*, L*u*v* and OKLCH",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	colors, err := parseColors(args)
	if err != nil {
		return err
	}
	xyzs, err := colorspace.XYZs(colors)
	if err != nil {
		return err
	}
	labs, err := colorspace.LABs(colors)
	if err != nil {
		return err
	}
	luvs, err := colorspace.LUVs(colors)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, c := range colors {
		if i > 0 {
			fmt.Fprintln(out)
		}
		hsl := color.ToHSL(c)
		lch := colorspace.RGBAToOKLCH(c)
		fmt.Fprintf(out, "hex    %s\n", color.Format(c, c.A < 1))
		fmt.Fprintf(out, "rgb    %s\n", c.RGB())
		fmt.Fprintf(out, "hsl    %.1f %.1f%% %.1f%%\n", hsl.H, hsl.S*100, hsl.L*100)
		fmt.Fprintf(out, "xyz    %.3f %.3f %.3f\n", xyzs[i].X, xyzs[i].Y, xyzs[i].Z)
		fmt.Fprintf(out, "lab    %.2f %.2f %.2f\n", labs[i].L, labs[i].A, labs[i].B)
		fmt.Fprintf(out, "luv    %.2f %.2f %.2f\n", luvs[i].L, luvs[i].U, luvs[i].V)
		fmt.Fprintf(out, "oklch  %.4f %.4f %.1f\n", lch.L, lch.C, lch.H)
	}
	return nil
}

var deltaCmd = &cobra.Command{
	Use:   "delta TARGET CANDIDATE...",
	Short: "Perceptual distance from a target to each candidate",
	Long: `Print the perceptual distance (Delta E) from TARGET to every candidate and
mark the closest one.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		colors, err := parseColors(args)
		if err != nil {
			return err
		}
		target, candidates := colors[0], colors[1:]
		closest := perceptual.Closest(target, candidates)

		out := cmd.OutOrStdout()
		for i, c := range candidates {
			mark := ""
			if i == closest {
				mark = "  *"
			}
			fmt.Fprintf(out, "%s\t%.4f%s\n", color.Format(c, c.A < 1), perceptual.DeltaE2000(target, c), mark)
		}
		return nil
	},
}

var contrastCmd = &cobra.Command{
	Use:   "contrast FOREGROUND BACKGROUND",
	Short: "WCAG contrast ratio and AA/AAA compliance",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		colors, err := parseColors(args)
		if err != nil {
			return err
		}
		r := access.Check(colors[0], colors[1])
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ratio  %.2f:1\n", r.Ratio)
		fmt.Fprintf(out, "AA     %s\n", passFail(r.AA))
		fmt.Fprintf(out, "AAA    %s\n", passFail(r.AAA))
		return nil
	},
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

var simulateCmd = &cobra.Command{
	Use:   "simulate COLOR",
	Short: "Simulate how a color looks with color vision deficiencies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := color.ParseHex(args[0])
		if err != nil {
			return err
		}
		kinds := vision.Deficiencies()
		if flagDeficiency != "" {
			d, err := vision.ParseDeficiency(flagDeficiency)
			if err != nil {
				return err
			}
			kinds = []vision.Deficiency{d}
		}
		out := cmd.OutOrStdout()
		for _, d := range kinds {
			s := vision.Simulate(d, c)
			fmt.Fprintf(out, "%s\t%s\n", d, color.Format(s, s.A < 1))
		}
		return nil
	},
}

var emotionCmd = &cobra.Command{
	Use:   "emotion [COLOR]",
	Short: "Score a color's emotional associations, or build a palette for emotions",
	Long: `With a color, print the emotions it is associated with, strongest first.
With --for, print a palette of colors associated with the given emotions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEmotion,
}

func runEmotion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(flagEmotions) > 0 {
		if len(args) > 0 {
			return errors.New("give either a color or --for, not both")
		}
		emotions := make([]psychology.Emotion, 0, len(flagEmotions))
		for _, name := range flagEmotions {
			e, err := psychology.ParseEmotion(name)
			if err != nil {
				return err
			}
			emotions = append(emotions, e)
		}
		for _, h := range psychology.Palette(emotions, flagCount) {
			fmt.Fprintln(out, h)
		}
		return nil
	}

	if len(args) == 0 {
		return errors.New("a color or --for is required")
	}
	c, err := color.ParseHex(args[0])
	if err != nil {
		return err
	}
	for _, s := range psychology.Profile(c) {
		fmt.Fprintf(out, "%-14s %.2f\n", s.Emotion.DisplayName(), s.Confidence)
	}
	return nil
}

var temperatureCmd = &cobra.Command{
	Use:   "temperature [COLOR]",
	Short: "Estimate or adjust color temperature",
	Long: `Without adjustment flags, estimate the color temperature of COLOR in Kelvin.
--warmth and --tint shift the color; --preset tints it toward a white balance
preset. --kelvin prints the color of a black body instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemperature,
}

func runTemperature(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if cmd.Flags().Changed("kelvin") {
		printColors(out, []color.RGBA{temperature.KelvinToRGBA(flagKelvin)})
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("a color is required (presets: %s)", strings.Join(temperature.PresetNames(), ", "))
	}

	c, err := color.ParseHex(args[0])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	switch {
	case flagWhitePreset != "":
		adjusted, err := temperature.ApplyPreset(c, flagWhitePreset, flagStrength)
		if err != nil {
			return err
		}
		printColors(out, []color.RGBA{adjusted})
	case flags.Changed("warmth") || flags.Changed("tint"):
		printColors(out, []color.RGBA{temperature.Adjust(c, flagWarmth, flagTint)})
	default:
		fmt.Fprintf(out, "%.0fK\n", temperature.Estimate(c))
	}
	return nil
}

var blendCmd = &cobra.Command{
	Use:   "blend TOP BOTTOM",
	Short: "Composite two colors with a blend mode",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := blend.ParseMode(flagBlendMode)
		if err != nil {
			return err
		}
		colors, err := parseColors(args)
		if err != nil {
			return err
		}
		printColors(cmd.OutOrStdout(), []color.RGBA{blend.Apply(colors[0], colors[1], m)})
		return nil
	},
}

func init() {
	var modes []string
	for _, m := range blend.Modes() {
		modes = append(modes, m.String())
	}
	var kinds []string
	for _, d := range vision.Deficiencies() {
		kinds = append(kinds, d.String())
	}

	simulateCmd.Flags().StringVarP(&flagDeficiency, "type", "t", "", "only this deficiency ("+strings.Join(kinds, ", ")+")")
	emotionCmd.Flags().StringSliceVar(&flagEmotions, "for", nil, "emotions to build a palette for")
	emotionCmd.Flags().IntVarP(&flagCount, "count", "n", 5, "palette size for --for")
	temperatureCmd.Flags().Float64Var(&flagWarmth, "warmth", 0, "warm (positive) or cool (negative) shift, -100 to 100")
	temperatureCmd.Flags().Float64Var(&flagTint, "tint", 0, "magenta (positive) or green (negative) shift, -100 to 100")
	temperatureCmd.Flags().StringVar(&flagWhitePreset, "preset", "", "white balance preset")
	temperatureCmd.Flags().Float64Var(&flagStrength, "strength", 1, "preset strength, 0 to 1")
	temperatureCmd.Flags().Float64Var(&flagKelvin, "kelvin", 6500, "print the black body color at this temperature")
	blendCmd.Flags().StringVarP(&flagBlendMode, "mode", "m", blend.Normal.String(), "blend mode ("+strings.Join(modes, ", ")+")")

	rootCmd.AddCommand(convertCmd, deltaCmd, contrastCmd, simulateCmd, emotionCmd, temperatureCmd, blendCmd)
}
