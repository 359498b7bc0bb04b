package cli

import (
	"context"
	"fmt"
	"log"

	"focustimer/internal/audio"
	"focustimer/internal/core/clock"
	"focustimer/internal/core/session"
	"focustimer/internal/core/tasks"
	"focustimer/internal/platform"
	"focustimer/internal/ui/preferences"
	"focustimer/internal/ui/timerview"
	"focustimer/internal/ui/tray"
	"focustimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appID = "com.focustimer.app"

func launchDesktop(settings preferences.Settings) error {
	lock, err := platform.LockInstance(AppName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = lock.Release()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fyneApp := app.NewWithID(appID)
	idleIcon := resources.MustIcon(resources.IconIdle)
	runningIcon := resources.MustIcon(resources.IconRunning)
	fyneApp.SetIcon(idleIcon)

	config := settings.SessionConfig()
	engine := session.New(config)
	engine.SetScheduler(session.NewTicker(config.TickInterval, fyne.Do))

	player := platform.NewExecPlayer(settings.SoundsDir)
	if !player.Available() {
		log.Printf("no audio player found, sounds are disabled")
	}
	music := audio.NewMusic(ctx, player)

	view := timerview.New(fyneApp, timerview.Config{
		FocusMinutes: settings.FocusMinutes,
		DefaultTrack: settings.DefaultTrack,
		Size:         fyne.NewSize(settings.WindowWidth, settings.WindowHeight),
	}, engine, tasks.NewList(), music)
	engine.Subscribe(view.Handle)
	engine.Subscribe(audio.NewDispatcher(ctx, player, view.Notifier()).Handle)

	quit := func() {
		engine.Close()
		music.Stop()
		fyneApp.Quit()
	}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow:  view.Show,
			OnStart: engine.Start,
			OnPause: engine.Pause,
			OnReset: engine.Reset,
			OnQuit:  quit,
		})
		desktopApp.SetSystemTrayIcon(idleIcon)
		engine.Subscribe(trayListener(trayManager, func(running bool) {
			if running {
				desktopApp.SetSystemTrayIcon(runningIcon)
				return
			}
			desktopApp.SetSystemTrayIcon(idleIcon)
		}))
		view.Window().SetCloseIntercept(view.Window().Hide)
	} else {
		log.Printf("system tray unsupported on this platform")
		view.Window().SetOnClosed(quit)
	}

	view.Show()
	fyneApp.Run()
	return nil
}

// trayListener mirrors engine state into the tray menu. setRunning is
// called only when the running flag changes.
func trayListener(manager *tray.Manager, setRunning func(bool)) session.Listener {
	running := false
	return func(event session.Event) {
		switch event.Type {
		case session.EventTimeUpdated, session.EventStarted, session.EventPaused:
			manager.SetStatus(fmt.Sprintf("%s %s", event.State, clock.FormatTime(event.Seconds())))
		case session.EventSessionCompleted:
			manager.SetStatus(string(event.State))
		}

		if isRunning := event.State == session.StateRunning; isRunning != running {
			running = isRunning
			manager.SetRunning(running)
			if setRunning != nil {
				setRunning(running)
			}
		}
	}
}
