package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type S3InputConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
}

type InputConfig struct {
	Compression string        `mapstructure:"compression"`
	BufferSize  int           `mapstructure:"bufferSize"`
	S3          S3InputConfig `mapstructure:"s3"`
}

type OutputFormat string

const (
	OutputFormatCSV     OutputFormat = "csv"
	OutputFormatParquet OutputFormat = "parquet"
)

type OutputConfig struct {
	Format OutputFormat `mapstructure:"format"`
}

type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

var Cfg Config

func setDefaults() {
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.prettify", false)
	viper.SetDefault("input.compression", "auto")
	viper.SetDefault("input.bufferSize", 65536)
	viper.SetDefault("input.s3.region", "")
	viper.SetDefault("input.s3.endpoint", "")
	viper.SetDefault("input.s3.accessKeyId", "")
	viper.SetDefault("input.s3.secretAccessKey", "")
	viper.SetDefault("output.format", string(OutputFormatCSV))
	viper.SetDefault("metrics.textfile", "")
}

func LoadConfig(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		// the config file is optional for a one-shot run
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("error reading config file, %s", err)
			}
		}
	}

	// sets e.g. INPUT_COMPRESSION to input.compression
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	return Cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.Output.Format {
	case OutputFormatCSV, OutputFormatParquet:
	default:
		return fmt.Errorf("unsupported output format %q", c.Output.Format)
	}
	if c.Input.BufferSize <= 0 {
		return fmt.Errorf("input buffer size must be positive, got %d", c.Input.BufferSize)
	}
	return nil
}
