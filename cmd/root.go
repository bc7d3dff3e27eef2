package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/travisdwitt/oakview/internal/config"
	"github.com/travisdwitt/oakview/internal/logging"
	"github.com/travisdwitt/oakview/internal/tui"
)

var (
	cfgFile    string
	noAutoplay bool
)

var rootCmd = &cobra.Command{
	Use:   "oakview",
	Short: "Oakland data explorer in your terminal",
	Long: `Oakview is a scrollable landing page for the terminal: a demo video, an
interactive map, data charts and the team, with a navigation bar that follows
the section you are reading.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, closer, err := logging.OpenFile(cfg.Logging)
		if err != nil {
			return err
		}
		defer closer.Close()

		log.Info("starting oakview", "config", viper.ConfigFileUsed(), "section", cfg.Section)
		return tui.Run(cfg, log)
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	config.SetDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ~/.oakview/settings.yaml)")

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().String("save-dir", "", "directory for exported text snapshots and chart images")
	viper.BindPFlag("save_directory", rootCmd.PersistentFlags().Lookup("save-dir"))

	rootCmd.PersistentFlags().BoolVar(&noAutoplay, "no-autoplay", false, "do not start the demo video automatically")

	rootCmd.PersistentFlags().StringP("section", "s", "", "section to open at start (demo, map, charts, about)")
	viper.BindPFlag("section", rootCmd.PersistentFlags().Lookup("section"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadConfig reads the config file and environment on top of the flag values.
func loadConfig() (*config.Config, error) {
	v := viper.GetViper()
	if err := config.ReadFile(v, cfgFile); err != nil {
		return nil, err
	}
	if noAutoplay {
		v.Set("autoplay", false)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
