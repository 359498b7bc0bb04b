package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow  func()
	OnStart func()
	OnPause func()
	OnReset func()
	OnQuit  func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	running     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "idle",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", func() { call(manager.callbacks.OnStart) })
	manager.pauseItem = fyne.NewMenuItem("Pause", func() { call(manager.callbacks.OnPause) })
	manager.pauseItem.Disabled = true

	manager.refreshStatus()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetRunning toggles the start and pause items.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	manager.startItem.Disabled = running
	manager.pauseItem.Disabled = !running
	manager.refreshMenu()
}

// Status returns the text shown in the status item.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = fmt.Sprintf("Focus: %s", manager.statusLabel)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("FocusTimer",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() { call(manager.callbacks.OnShow) }),
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.pauseItem,
		fyne.NewMenuItem("Reset", func() { call(manager.callbacks.OnReset) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { call(manager.callbacks.OnQuit) }),
	))
}

func call(callback func()) {
	if callback != nil {
		callback()
	}
}
