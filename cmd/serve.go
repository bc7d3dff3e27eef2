package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/travisdwitt/oakview/internal/logging"
	"github.com/travisdwitt/oakview/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page to a browser",
	Long: `Serve the landing page over HTTP with its sections, inline charts and team
bios, plus JSON and PNG endpoints for the chart geometry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := logging.JSON(os.Stdout, cfg.Logging.Level)

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := site.ListenAndServe(ctx, cfg, log); err != nil {
			log.Error("server error", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8090", "port to listen on")
	viper.BindPFlag("serve.port", serveCmd.Flags().Lookup("port"))
}
