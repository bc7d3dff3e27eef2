package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/travisdwitt/oakview/internal/chart"
	"github.com/travisdwitt/oakview/internal/logging"
)

var (
	exportWidth  int
	exportHeight int
	exportOnly   []string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the chart cards as PNG images and exit",
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

		cards, err := selectCards(exportOnly)
		if err != nil {
			return err
		}

		for _, card := range cards {
			filename, err := cfg.SavePath(card.Name + ".png")
			if err != nil {
				return err
			}
			if err := chart.SavePNG(card, filename, exportWidth, exportHeight); err != nil {
				log.Error("chart export failed", "chart", card.Name, "error", err)
				return fmt.Errorf("export %s: %w", card.Name, err)
			}
			log.Info("chart exported", "chart", card.Name, "file", filename)
			fmt.Fprintln(cmd.OutOrStdout(), filename)
		}
		return nil
	},
}

// selectCards returns the named cards in the order given, or all cards.
func selectCards(names []string) ([]chart.Card, error) {
	if len(names) == 0 {
		return chart.Cards(), nil
	}
	cards := make([]chart.Card, 0, len(names))
	for _, name := range names {
		card, ok := chart.CardByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown chart %q", name)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func init() {
	exportCmd.Flags().IntVar(&exportWidth, "width", chart.DefaultPNGWidth, "image width in pixels")
	exportCmd.Flags().IntVar(&exportHeight, "height", chart.DefaultPNGHeight, "image height in pixels")
	exportCmd.Flags().StringSliceVar(&exportOnly, "chart", nil, "chart to export (population, demographics, housing); repeatable")
}
