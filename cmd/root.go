package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/gulipalli123/DesignPatterns/core"
	"github.com/gulipalli123/DesignPatterns/global"
	"github.com/gulipalli123/DesignPatterns/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// App is what every demo command runs with. It is built once per
// invocation in the root command's pre-run and passed down explicitly.
type App struct {
	Config *global.Config
	Viper  *viper.Viper
	Log    *zap.Logger
	Level  zap.AtomicLevel
	Out    util.Sink
}

var (
	cfgFile  string
	logLevel string
	app      *App
)

var rootCmd = &cobra.Command{
	Use:          "patterns",
	Short:        "Design pattern demonstrations",
	Long:         "patterns runs small scenarios showing object-oriented design patterns at work.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.OutOrStdout(), cmd.Flags().Changed("log-level"))
		if err != nil {
			return err
		}
		app = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			_ = app.Log.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", global.DefaultLogLevel, "set log-level: debug, info, warn, error")

	rootCmd.AddCommand(
		observerCmd,
		remoteCmd,
		decoratorCmd,
		strategyCmd,
		factoryCmd,
		singletonCmd,
		adapterCmd,
		openClosedCmd,
		allCmd,
	)
}

func newApp(stdout io.Writer, levelFlag bool) (*App, error) {
	v, cfg, err := core.Viper(cfgFile)
	if err != nil {
		return nil, err
	}
	if levelFlag {
		cfg.Log.Level = logLevel
	}
	log, level, err := core.Zap(cfg.Log)
	if err != nil {
		return nil, err
	}
	core.WatchConfig(v, level, log)
	log.Debug("config loaded", zap.String("file", v.ConfigFileUsed()), zap.Int("slots", cfg.Remote.Slots))

	return &App{
		Config: cfg,
		Viper:  v,
		Log:    log,
		Level:  level,
		Out:    util.Tee(util.NewConsole(stdout), util.NewZapSink(log)),
	}, nil
}

// demo wraps a scenario as a cobra command.
func demo(use, short string, run func(a *App) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(app)
		},
	}
}
