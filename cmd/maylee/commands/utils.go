/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Maylee commands. Provides common
configuration loading, logging setup, and helpers used across all command
implementations.
*/

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/kleascm/maylee-nlp/pkg/logging"
	"github.com/kleascm/maylee-nlp/pkg/model"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("MAYLEE")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system
func SetupLogging() error {
	logLevel := viper.GetString("log_level")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(level)

	switch viper.GetString("log_format") {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "custom":
		logrus.SetFormatter(&logging.ToolkitFormatter{
			CustomFormatter: logging.CustomFormatter{Timestamp: true, Colors: true},
		})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return nil
}

// loadDictionaries parses repeated "key=path" flags into feature generator
// resources, reading each path as a dictionary file.
func loadDictionaries(specs []string) (map[string]interface{}, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	resources := make(map[string]interface{}, len(specs))
	for _, spec := range specs {
		key, path, found := strings.Cut(spec, "=")
		if !found {
			return nil, fmt.Errorf("invalid dictionary spec %q, want key=path", spec)
		}

		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
		}
		dict, err := model.ReadDictionary(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
		}
		resources[key] = dict
	}
	return resources, nil
}
