/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/mmuldo/huepick/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "huepick",
	Short: "Picks representative colors out of images",
	Long: `huepick extracts a small set of salient, perceptually distinct colors
from an image and can turn them into terminal themes.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := palette.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.huepick.yaml)")
	flags.Bool("cache", defaults.UseCache, "cache RGB to Lab conversions")
	flags.Int("max-cache-size", defaults.MaxCacheSize, "conversions cached before the cache is flushed")
	flags.Int("batch-size", defaults.BatchSize, "colors ranked between scheduler yields (0 never yields)")
	flags.String("background", "", "hex color transparent pixels are blended over (default: skip them)")
	flags.Int("quantize", 0, "reduce the image to this many colors before extracting (0 disables)")
	flags.Int("max-dimension", 0, "downscale images so no side exceeds this many pixels (0 disables)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	for _, name := range []string{"cache", "max-cache-size", "batch-size", "background", "quantize", "max-dimension", "log-level"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".huepick")
	}

	viper.SetEnvPrefix("huepick")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		newLogger().Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

func newLogger() *slog.Logger {
	var level slog.Level
	if e := level.UnmarshalText([]byte(viper.GetString("log-level"))); e != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func extractorConfig() (palette.Config, error) {
	var cfg palette.Config
	if e := viper.Unmarshal(&cfg); e != nil {
		return cfg, fmt.Errorf("reading extractor config: %w", e)
	}
	return cfg, nil
}

func background() (*palette.Color, error) {
	s := viper.GetString("background")
	if s == "" {
		return nil, nil
	}
	c, e := palette.ParseHex(s)
	if e != nil {
		return nil, e
	}
	return &c, nil
}
