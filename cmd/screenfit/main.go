package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/screenfit"
	"github.com/akyairhashvil/screenfit/internal/inspector"
	"github.com/akyairhashvil/screenfit/internal/util"
	"github.com/akyairhashvil/screenfit/teabind"
)

func main() {
	profilePath := flag.String("profile", "", "path to a YAML layout profile (SCREENFIT_PROFILE is honored when unset)")
	watch := flag.Bool("watch", false, "reload the profile file when it changes")
	plain := flag.Bool("plain", false, "stream state changes as log lines instead of running the TUI")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("screenfit " + inspector.AppVersion)
		os.Exit(0)
	}

	path := resolveProfilePath(*profilePath)
	prof := screenfit.TerminalProfile()
	if path != "" {
		loaded, err := screenfit.LoadProfile(path)
		util.MustSucceed("load profile", err)
		prof = loaded
	}

	om := screenfit.NewOrientationManager(screenfit.WithProfile(prof))
	lm := screenfit.NewLayoutManager(om, screenfit.WithLayoutProfile(prof))
	defer func() {
		util.LogError("close layout manager", lm.Close())
		util.LogError("close orientation manager", om.Close())
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *watch && path != "" {
		go watchProfile(ctx, path, lm)
	}

	if *plain {
		runPlain(ctx, om, lm)
		return
	}

	p := tea.NewProgram(inspector.New(om, lm), tea.WithAltScreen())
	detach := teabind.Listen(p.Send, om, lm)
	defer detach()

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running inspector: %v\n", err)
		os.Exit(1)
	}
}

// watchProfile applies clean reloads and logs everything else.
func watchProfile(ctx context.Context, path string, lm *screenfit.LayoutManager) {
	err := screenfit.WatchProfile(ctx, path, func(p screenfit.Profile, err error) {
		if err != nil {
			util.LogError("reload profile", err)
			return
		}
		if err := lm.SetProfile(p); err != nil {
			util.LogError("apply profile", err)
			return
		}
		log.Printf("profile %q reloaded", p.Name)
	})
	util.LogError("watch profile", err)
}

// runPlain pumps the terminal source through the managers and logs one line
// per layout change. Output goes to stderr via the default logger so it can
// be redirected away from the tty being measured.
func runPlain(ctx context.Context, om *screenfit.OrientationManager, lm *screenfit.LayoutManager) {
	src, err := screenfit.NewTerminalSource(os.Stdout)
	util.MustSucceed("open terminal", err)
	defer func() {
		util.LogError("close terminal source", src.Close())
	}()

	cancelSub := lm.Subscribe(func(cfg screenfit.LayoutConfig) {
		s := om.State()
		log.Println(plainLine(s, cfg))
	})
	defer cancelSub()

	if err := om.Watch(ctx, src); err != nil && !errors.Is(err, context.Canceled) {
		util.LogError("watch terminal", err)
	}
}

func plainLine(s screenfit.OrientationState, cfg screenfit.LayoutConfig) string {
	return fmt.Sprintf("%s %s strategy=%s columns=%d density=%s device=%s transitioning=%t",
		s.Dimensions, s.Current, cfg.Strategy, cfg.Columns, cfg.ContentDensity, cfg.DeviceClass, s.IsTransitioning)
}

// resolveProfilePath prefers the flag, then the environment.
func resolveProfilePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return strings.TrimSpace(os.Getenv("SCREENFIT_PROFILE"))
}
