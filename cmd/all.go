package cmd

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var allCmd = demo("all", "Run every demonstration in turn", runAll)

var scenarios = []struct {
	name string
	run  func(*App) error
}{
	{"strategy", runStrategy},
	{"observer", runObserver},
	{"decorator", runDecorator},
	{"factory", runFactory},
	{"singleton", runSingleton},
	{"command", runRemote},
	{"adapter", runAdapter},
	{"open/closed", runOpenClosed},
}

func runAll(a *App) error {
	for _, s := range scenarios {
		a.Out.WriteLine("==== " + s.name + " ====")
		a.Log.Debug("scenario start", zap.String("scenario", s.name))
		if err := s.run(a); err != nil {
			return errors.Wrapf(err, "%s scenario", s.name)
		}
	}
	return nil
}
