package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ventkeeper/ventkeeper/internal/app"
	"github.com/ventkeeper/ventkeeper/internal/bot"
	"github.com/ventkeeper/ventkeeper/internal/config"
	"github.com/ventkeeper/ventkeeper/internal/discord"
	"github.com/ventkeeper/ventkeeper/internal/sqlstore"
)

// version is injected at build time.
var version = "DEV"

const confirmationTimeout = time.Minute

var (
	configPath string
	debug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ventkeeper",
	Short: "Scheduled vent channel purge bot",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ventkeeper " + version)
	},
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "config.toml", "path to the configuration file")
	runCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(runCmd, versionCmd)
}

func run() error {
	logger, err := bot.NewLogger(debug)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	logger.Infof("ventkeeper %s starting", version)
	logger.Infof("loading config from %s", configPath)

	cfg, err := config.ReadFromFile(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	clock := app.RealClock{}

	client, err := discord.New(cfg.Bot.Token, cfg.Bot.Activity, cfg.Bot.Status, logger, clock)
	if err != nil {
		return err
	}

	var runs app.RunStore = app.NopRunStore{}
	if cfg.Database.Path != "" {
		store, err := sqlstore.New(cfg.Database.Path, logger)
		if err != nil {
			return err
		}
		defer store.Close()
		runs = store
		logger.Infof("run history database: %s", cfg.Database.Path)
	}

	service := app.NewPurgeService(client, runs, logger,
		app.PolicyFromConfig(cfg.Filters),
		app.Targets{
			Vent:            cfg.Channels.Vent,
			VentLog:         cfg.Channels.VentLog,
			VentAttachments: cfg.Channels.VentAttachments,
		},
		cfg.Location(), clock)

	client.BindService(service, app.NewConfirmer(confirmationTimeout))

	if err := client.Open(); err != nil {
		return err
	}
	defer client.Close()

	scheduler := app.NewScheduler(logger, clock, service, app.Schedule{
		DaysAhead:   cfg.Bot.DaysAhead,
		Interval:    time.Duration(cfg.Bot.ResetInterval) * time.Hour,
		ResetHour:   cfg.Bot.ResetHour,
		ResetMinute: cfg.Bot.ResetMinute,
		Location:    cfg.Location(),
	})
	scheduler.Start()
	defer scheduler.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Infof("shutting down")
	return nil
}
