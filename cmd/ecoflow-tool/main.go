package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ecoflow-tools/ecoflow-tool/internal/client"
	"github.com/ecoflow-tools/ecoflow-tool/internal/tool"
	"github.com/ecoflow-tools/ecoflow-tool/internal/utils"
	"github.com/ecoflow-tools/ecoflow-tool/pkg/file"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ecoflow-tool",
	Short: "Query EcoFlow devices through the EcoFlow open API",
	Long: `ecoflow-tool lists the EcoFlow devices bound to an account and fetches
per-device telemetry, rendered as plain text blocks. Credentials come from
a YAML config file; get your keys at https://developer.ecoflow.com.`,
	SilenceUsage: true,
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List all devices in the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildTool()
		if err != nil {
			return err
		}
		out, err := t.ListDevices(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var quotaCmd = &cobra.Command{
	Use:   "quota <serial-number>",
	Short: "Show current telemetry for one device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildTool()
		if err != nil {
			return err
		}
		out, err := t.GetDeviceQuota(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

// buildTool loads the configuration and wires the logger, client, and tool.
func buildTool() (*tool.Tool, error) {
	fileClient := file.NewFileService()

	config, err := utils.LoadConfig(configPath, fileClient)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(config.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	apiClient, err := client.New(client.Config{
		APIHost:   config.API.Host,
		AccessKey: config.API.AccessKey,
		SecretKey: config.API.SecretKey,
		Timeout:   config.API.Timeout * time.Second,
	}, logger)
	if err != nil {
		return nil, err
	}

	return tool.New(apiClient, logger), nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "path to the configuration file")
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(quotaCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
