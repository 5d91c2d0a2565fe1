package cmd

import (
	_ "embed"

	"github.com/gulipalli123/DesignPatterns/command_mode"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//go:embed remote.yaml
var defaultProgram []byte

var programFile string

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Remote control with undo, driven by a YAML program",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemote(app)
	},
}

func init() {
	remoteCmd.Flags().StringVar(&programFile, "program", "", "remote control program (default: built-in scenario)")
}

func runRemote(a *App) error {
	var (
		p   *command_mode.Program
		err error
	)
	if programFile != "" {
		p, err = command_mode.LoadProgram(programFile)
	} else {
		p, err = command_mode.ParseProgram(defaultProgram)
	}
	if err != nil {
		return err
	}

	rc, err := p.Build(a.Out, a.Config.Remote.Slots, a.Log)
	if err != nil {
		return err
	}
	a.Log.Debug("remote built", zap.Int("slots", rc.Slots()), zap.Int("steps", len(p.Steps)))
	if err := p.Run(rc); err != nil {
		return err
	}
	a.Log.Debug("remote state", zap.String("remote", rc.String()))
	return nil
}
