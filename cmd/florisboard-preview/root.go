package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	themeFile    string
	prefsFile    string
	keyboardName string
	iconPackDir  string
	hardKeysDev  string
	localeCode   string
	fontPath     string
	symbolFont   string
)

var rootCmd = &cobra.Command{
	Use:   "florisboard-preview",
	Short: "Render FlorisBoard keyboard layouts in an SDL window",
	Long: `florisboard-preview renders a keyboard layout with a chosen theme and
preference set, so layouts and themes can be checked on a desktop without
flashing a device. Pointer presses highlight keys and a hardware keyboard
can drive the caps state.`,
	PersistentPreRun: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
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

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.florisboard-preview.toml)")
	rootCmd.Flags().StringVar(&themeFile, "theme", "", "TOML theme file layered over the built-in night theme, or a built-in name (floris_day, floris_night)")
	rootCmd.Flags().StringVar(&prefsFile, "prefs", "", "TOML preferences file")
	rootCmd.Flags().StringVar(&keyboardName, "keyboard", "characters", "layout to show: characters, numeric, phone or smartbar")
	rootCmd.Flags().StringVar(&iconPackDir, "icon-pack", "", "directory of SVG/PNG icons overriding the font glyphs")
	rootCmd.Flags().StringVar(&hardKeysDev, "hardkeys", "", "evdev device mirroring shift and caps lock, e.g. /dev/input/event3")
	rootCmd.Flags().StringVar(&localeCode, "locale", "en", "input locale shown on the space bar")
	rootCmd.Flags().StringVar(&fontPath, "font", "", "TTF font for key labels")
	rootCmd.Flags().StringVar(&symbolFont, "symbol-font", "", "TTF font for icon glyphs (defaults to --font)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".florisboard-preview")
	}

	viper.SetEnvPrefix("florisboard")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			cobra.CheckErr(fmt.Errorf("failed to read config file: %w", err))
		}
	}
}

// bindFlags overlays config values onto flags the user did not set
// explicitly, so CLI flags keep priority.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		configName := strings.ReplaceAll(f.Name, "-", "")

		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				cobra.CheckErr(err)
			}
		}
	})
}
