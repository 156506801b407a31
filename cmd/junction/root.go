package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anggasct/junction"
	"github.com/anggasct/junction/pkg/publishers"
	"github.com/anggasct/junction/pkg/stores"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "junction",
	Short: "Traffic intersection controller demo",
	Long: `Junction models a single road intersection: four directional lights,
one controller serializing every change, and a conflict table that keeps
crossing directions from holding green at the same time.

Quick Start:
  junction demo                   Run the demonstration flow
  junction graph                  Emit the conflict graph as Graphviz DOT
  junction history                Dump the persisted change history

Configuration can come from flags, JUNCTION_* environment variables, or a
.junction.yml file in the current directory.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .junction.yml)")
	rootCmd.PersistentFlags().String("store", "memory", "state store backend (memory, badger)")
	rootCmd.PersistentFlags().String("db-path", ".junction-db", "directory for the badger store")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("db-path", rootCmd.PersistentFlags().Lookup("db-path"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes viper from the config file and environment
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".junction")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("JUNCTION")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds an slog logger honoring the configured level
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(viper.GetString("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openStore builds the configured state store. The returned close function
// is a no-op for the memory backend.
func openStore(logger *slog.Logger) (junction.StateStore, func() error, error) {
	switch viper.GetString("store") {
	case "memory":
		return stores.NewMemoryStore(), func() error { return nil }, nil
	case "badger":
		cfg := stores.DefaultBadgerConfig(viper.GetString("db-path"))
		cfg.Logger = logger
		store, err := stores.OpenBadger(cfg)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", viper.GetString("store"))
	}
}

// newController wires a controller with the configured store and a logging
// publisher
func newController() (*junction.Controller, func() error, error) {
	logger := newLogger()

	store, closeStore, err := openStore(logger)
	if err != nil {
		return nil, nil, err
	}

	publisher := junction.NewMultiPublisher(publishers.NewLoggingPublisher(logger))
	controller, err := junction.NewController(store, publisher)
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	return controller, closeStore, nil
}
