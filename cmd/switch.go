/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/mmuldo/huepick/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	terminal     string
	templatePath string
	outPath      string
	themeColors  int
)

// config file of each supported terminal, relative to $HOME
var terminals = map[string]string{
	"termite":   filepath.Join(".config", "termite", "config"),
	"alacritty": filepath.Join(".config", "alacritty", "alacritty.yml"),
	"kitty":     filepath.Join(".config", "kitty", "theme.conf"),
}

// switchCmd represents the switch command
var switchCmd = &cobra.Command{
	Use:   "switch IMAGE",
	Short: "Themes a terminal after an image",
	Long: `Extracts colors from IMAGE, assigns them to color0..colorN (darks first)
and renders the terminal's config template with them.

Templates are pongo2 templates looked up under templates-dir by the
terminal's config path, e.g. templates/.config/termite/config.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaults()

		rel, ok := terminals[terminal]
		if !ok {
			return fmt.Errorf("'%s' is not a supported app", terminal)
		}

		tpl := templatePath
		if tpl == "" {
			tpl = filepath.Join(viper.GetString("templates-dir"), rel)
		}
		dest := outPath
		if dest == "" {
			home, e := homedir.Dir()
			if e != nil {
				return e
			}
			dest = filepath.Join(home, rel)
		}

		t, e := themeFromImage(context.Background(), args[0], themeColors)
		if e != nil {
			return e
		}

		if e := theme.RenderFile(t, tpl, dest); e != nil {
			return e
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(switchCmd)

	switchCmd.Flags().StringVarP(&terminal, "terminal", "t", "", "user terminal")
	switchCmd.Flags().StringVar(&templatePath, "template", "", "template to render (default: templates-dir/<terminal config>)")
	switchCmd.Flags().StringVarP(&outPath, "out", "o", "", "file to write (default: the terminal's config in $HOME)")
	switchCmd.Flags().IntVarP(&themeColors, "count", "n", 16, "number of theme colors")
	switchCmd.Flags().String("templates-dir", "templates", "directory holding the terminal templates")
	if err := viper.BindPFlag("templates-dir", switchCmd.Flags().Lookup("templates-dir")); err != nil {
		panic(err)
	}
}

func setDefaults() {
	if terminal == "" {
		terminal = viper.GetString("terminal")
	}
}

func themeFromImage(ctx context.Context, path string, n int) (theme.Theme, error) {
	p, colors, e := extractFile(ctx, path, n, newLogger().With("path", path))
	if e != nil {
		return nil, e
	}

	tp, e := theme.Delegate(theme.NewVols(p, colors))
	if e != nil {
		return nil, fmt.Errorf("%s: %w", path, e)
	}

	opts := make(map[string]interface{})
	if viper.IsSet("transparency") {
		opts["transparency"] = viper.GetFloat64("transparency")
	}
	return theme.Create(tp, opts), nil
}
