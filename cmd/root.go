/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/palettize/colorize"
	"github.com/mmuldo/palettize/theme"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "palettize",
	Short: "Recolors images toward a palette",
	Long: `Recolors images toward a palette while keeping each pixel's lightness.

Palettes come from --palette or from a theme in the config file:

  theme: nord
  themes:
    nord:
      palette: ["#2e3440", "#5e81ac", "#eceff4"]
      options:
        strength: 0.8
        preserveEdges: true`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.palettize.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().StringSliceP("palette", "p", nil, "palette colors as #rrggbb, overrides the theme's palette")
	rootCmd.PersistentFlags().StringP("theme", "t", "", "theme to use from the config file")

	viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if verbose {
		colorize.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal(err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".palettize")
	}

	viper.SetEnvPrefix("palettize")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		colorize.Logger().Debug("using config file", slog.String("path", viper.ConfigFileUsed()))
	} else if cfgFile != "" {
		log.Fatal(err)
	}
}

// loadTheme resolves the palette and options for a command. A named theme
// reads themes.<name>.palette and themes.<name>.options; otherwise the
// top-level palette and options keys are used. --palette replaces the
// palette in either case.
func loadTheme(cmd *cobra.Command) (*theme.Theme, error) {
	name := viper.GetString("theme")
	prefix := ""
	if name != "" {
		prefix = "themes." + name + "."
		if !viper.IsSet("themes." + name) {
			return nil, fmt.Errorf("theme %q is not defined in %s", name, configName())
		}
	}

	hexes := viper.GetStringSlice(prefix + "palette")
	if cmd.Flags().Changed("palette") {
		p, err := cmd.Flags().GetStringSlice("palette")
		if err != nil {
			return nil, err
		}
		hexes = p
	}

	return theme.Create(name, hexes, viper.GetStringMap(prefix+"options"))
}

func configName() string {
	if f := viper.ConfigFileUsed(); f != "" {
		return f
	}
	return "the config file"
}
