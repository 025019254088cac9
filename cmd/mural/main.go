// Command mural is a developer tool for inspecting the styling engine:
// it parses CSS color strings and dumps the resolved default styles,
// optionally after applying a yaml theme file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/math/fixed"

	"github.com/go-mural/mural/pkg/errors"
	"github.com/go-mural/mural/pkg/graphics"
	"github.com/go-mural/mural/pkg/style"
)

func main() {
	root := rootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "mural",
		Short: "Inspect mural styles and colors",
		Long: `mural is a developer tool for the mural styling engine.

It parses CSS-like color strings and prints the property sets that the
engine resolves for its default widget styles, optionally after applying
a yaml theme file.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			errors.SetHandler(&errors.LogHandler{Verbose: verbose})
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose error output")
	cmd.AddCommand(colorCmd())
	cmd.AddCommand(inspectCmd())
	return cmd
}

func colorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <value>",
		Short: "Parse a CSS color string and print its ARGB value",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c := graphics.ParseColor(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", c)
		},
	}
}

func inspectCmd() *cobra.Command {
	var themePath string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the resolved properties of the default styles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts style.Options
			if themePath != "" {
				var err error
				opts, err = style.LoadOptions(themePath)
				if err != nil {
					errors.Report(&errors.MuralError{
						Op:   "mural.inspect",
						Kind: errors.KindConfig,
						Err:  err,
					})
					return err
				}
			}
			reg, err := style.NewRegistryWithOptions(opts)
			if err != nil {
				return err
			}
			defer reg.Close()

			out := cmd.OutOrStdout()
			printStyle(out, "default", reg.Default)
			printStyle(out, "button", reg.ButtonDefault)
			printStyle(out, "button:hover", reg.ButtonHover)

			face := reg.CachedFace(reg.ButtonHover, nil)
			m := face.Metrics()
			fmt.Fprintf(out, "\nbutton font: ascent %.1f descent %.1f height %.1f\n",
				points(m.Ascent), points(m.Descent), points(m.Height))
			return nil
		},
	}
	cmd.Flags().StringVar(&themePath, "theme", "", "yaml theme file applied over the built-in defaults")
	return cmd
}

// printStyle resolves every known kind from the style's chain and prints
// the winners.
func printStyle(out io.Writer, name string, s *style.Style) {
	fmt.Fprintf(out, "%s:\n", name)
	for kind := style.KindFontFamily; kind <= style.KindBorderLeftColor; kind++ {
		if p := style.FindProp(s, nil, kind); p != nil {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}
}

func points(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
