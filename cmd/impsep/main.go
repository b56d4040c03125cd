// Command impsep solves one instance of the grid separator problem: it
// reads an obstacle grid, enumerates every important separator between
// the grid's source and its synthetic boundary sink up to a budget k,
// and prints the grid back out with the best one (the one leaving the
// largest source-side component) drawn in.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mattn/go-colorable"

	"github.com/pgdr/important/gridgraph"
	"github.com/pgdr/important/separators"
)

var log zerolog.Logger

func newRootCommand() *cobra.Command {
	var (
		gridPath string
		k        int
		verbose  bool
	)

	root := &cobra.Command{
		Use:           "impsep",
		Short:         "Enumerate important separators on an obstacle grid",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return run(gridPath, k)
		},
	}

	root.Flags().StringVar(&gridPath, "grid", "", "path to a grid file (defaults to stdin)")
	root.Flags().IntVarP(&k, "k", "k", 3, "maximum separator size to search for")
	root.Flags().BoolVar(&verbose, "verbose", false, "enable debug-level tracing of branch decisions and flow augmentations")

	cobra.OnInitialize(func() { bindConfig(root) })

	return root
}

// bindConfig overlays impsep.yaml / environment variables (IMPSEP_*)
// onto any flag the user didn't set explicitly on the command line.
func bindConfig(cmd *cobra.Command) {
	viper.SetEnvPrefix("IMPSEP")
	viper.AutomaticEnv()
	viper.SetConfigName("impsep")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("file", viper.ConfigFileUsed()).Msg("loaded configuration overlay")
	}

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			f.Value.Set(viper.GetString(f.Name))
		}
	})
}

func run(gridPath string, k int) error {
	var in *os.File
	if gridPath == "" {
		in = os.Stdin
	} else {
		f, err := os.Open(gridPath)
		if err != nil {
			return fmt.Errorf("impsep: opening grid file: %w", err)
		}
		defer f.Close()
		in = f
	}

	g, err := gridgraph.ReadGrid(in)
	if err != nil {
		return fmt.Errorf("impsep: parsing grid: %w", err)
	}

	log.Info().
		Int("k", k).
		Int("rows", g.R).
		Int("cols", g.C).
		Msg("solving important separators")

	family, err := separators.ImportantSeparators(g.Graph, g.Source, g.Sink, k, separators.WithLogger(log))
	if err != nil {
		return fmt.Errorf("impsep: enumerating separators: %w", err)
	}

	if len(family) == 0 {
		log.Info().Int("k", k).Msg("no important separators found within budget")
		fmt.Println(g.Render(nil))
		return nil
	}

	best, size, ok, err := g.BestSeparator(family)
	if err != nil {
		return fmt.Errorf("impsep: selecting best separator: %w", err)
	}
	if !ok {
		best = nil
	}

	log.Info().
		Int("important_separators", len(family)).
		Int("optimal_component_size", size).
		Msg("solved")

	fmt.Println(g.Render(best))

	return nil
}

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: colorable.NewColorableStdout()}).
		With().Timestamp().Logger()

	if err := newRootCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("impsep failed")
	}
}
