package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Print current conditions for the configured locations",
	RunE:  runWeather,
}

func init() {
	rootCmd.AddCommand(weatherCmd)
}

func runWeather(cmd *cobra.Command, _ []string) error {
	if weatherService == nil {
		return errors.New("weather service not configured")
	}

	ctx := context.Background()
	for _, loc := range weatherService.Locations() {
		reading := weatherService.Current(ctx, loc)
		line := fmt.Sprintf("%-12s %s", reading.Location, reading.Temperature)
		if reading.Description != "" {
			line += "  " + reading.Description
		}
		cmd.Println(line)
	}

	return nil
}
