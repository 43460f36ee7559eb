package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/nevisdale/mos6502/internal/machine"
	"github.com/nevisdale/mos6502/internal/ui"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

func main() {
	var (
		romPath      = flag.String("rom", "", "raw program image, loaded at $0600")
		withUI       = flag.Bool("ui", false, "open the debugger window")
		maxSteps     = flag.Uint64("steps", 0, "stop after n instructions, 0 means no limit")
		verbose      = flag.Bool("v", false, "log every executed instruction")
		stopOnBRK    = flag.Bool("stop-on-brk", true, "halt when BRK is reached")
		withProfile  = flag.Bool("profile", false, "write a cpu profile to the working directory")
		ticsPerFrame = flag.Int("ipf", 1, "instructions per frame in the debugger window")
	)
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   term.IsTerminal(int(os.Stderr.Fd())),
		DisableColors: !term.IsTerminal(int(os.Stderr.Fd())),
		FullTimestamp: true,
	})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *romPath == "" {
		flag.Usage()
		log.Fatal("-rom is required")
	}

	if *withProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	opts := []machine.Option{machine.WithStopOnBRK(*stopOnBRK)}
	if *verbose {
		opts = append(opts, machine.WithTracer(machine.NewLogTracer(log)))
	}
	m := machine.New(opts...)
	if err := m.LoadFile(*romPath); err != nil {
		log.WithField("rom", *romPath).Fatal(err)
	}

	if *withUI {
		if err := ui.RunUI(ui.New(m, *ticsPerFrame)); err != nil {
			log.Fatalf("ui stopped: %s", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := m.Run(ctx, *maxSteps)
	info := m.DebugInfo()
	fields := logrus.Fields{
		"pc":     info.PC,
		"a":      info.A,
		"x":      info.X,
		"y":      info.Y,
		"sp":     info.SP,
		"p":      info.StatusString(),
		"cycles": info.Cycles,
		"steps":  info.Steps,
	}
	switch {
	case errors.Is(err, context.Canceled):
		log.WithFields(fields).Warn("interrupted")
	case err != nil:
		log.WithFields(fields).Fatal(err)
	default:
		log.WithFields(fields).Info("done")
	}
}
