package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jsonzip/jsonzip/pkg/service"
)

var cfgFile string

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "jsonzip")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("JSONZIP")

	// Set defaults
	viper.SetDefault("max_depth", 64)
	viper.SetDefault("max_input_bytes", service.DefaultMaxInputBytes)
	viper.SetDefault("item_prefix", "item_")
	viper.SetDefault("compression_level", 0)

	_ = viper.ReadInConfig() // missing config file means defaults
}

func InitService() *service.Service {
	config := &service.Config{
		MaxDepth:         viper.GetInt("max_depth"),
		MaxInputBytes:    viper.GetInt("max_input_bytes"),
		ItemPrefix:       viper.GetString("item_prefix"),
		CompressionLevel: viper.GetInt("compression_level"),
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel) // Keep it quiet unless there are issues.
	if viper.GetBool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}

	return service.New(config, logger)
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/jsonzip/config.yaml)")
}
