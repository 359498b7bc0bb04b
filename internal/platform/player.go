package platform

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// ErrNoPlayer indicates no supported command-line audio player was found.
var ErrNoPlayer = errors.New("no audio player available")

type playerCommand struct {
	name string
	args []string
}

var playerCommands = []playerCommand{
	{name: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{name: "afplay"},
	{name: "paplay"},
	{name: "aplay", args: []string{"-q"}},
}

// ExecPlayer plays sound files from a directory through a system player command.
type ExecPlayer struct {
	mu         sync.Mutex
	dir        string
	path       string
	args       []string
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewExecPlayer returns a player for dir using the first player command on PATH.
func NewExecPlayer(dir string) *ExecPlayer {
	for _, candidate := range playerCommands {
		path, err := exec.LookPath(candidate.name)
		if err == nil {
			return newExecPlayer(dir, path, candidate.args)
		}
	}
	return newExecPlayer(dir, "", nil)
}

func newExecPlayer(dir, path string, args []string) *ExecPlayer {
	return &ExecPlayer{dir: dir, path: path, args: args}
}

// Available reports whether a player command was found.
func (player *ExecPlayer) Available() bool {
	return player.path != ""
}

// Play starts a one-shot playback and returns without waiting for it.
func (player *ExecPlayer) Play(ctx context.Context, fileName string) error {
	soundPath, err := player.resolve(fileName)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, player.path, append(player.args, soundPath)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", filepath.Base(player.path), err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// PlayLooping replaces any looping playback with fileName, restarted until Stop.
func (player *ExecPlayer) PlayLooping(ctx context.Context, fileName string) error {
	soundPath, err := player.resolve(fileName)
	if err != nil {
		return err
	}

	player.Stop()

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	player.mu.Lock()
	player.cancelLoop = cancel
	player.loopDone = done
	player.mu.Unlock()

	go player.loop(loopCtx, soundPath, done)
	return nil
}

// Stop halts looping playback and waits for the player process to exit.
func (player *ExecPlayer) Stop() {
	player.mu.Lock()
	cancel := player.cancelLoop
	done := player.loopDone
	player.cancelLoop = nil
	player.loopDone = nil
	player.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Looping reports whether a looping playback is active.
func (player *ExecPlayer) Looping() bool {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.cancelLoop != nil
}

func (player *ExecPlayer) loop(ctx context.Context, soundPath string, done chan<- struct{}) {
	defer close(done)
	for {
		cmd := exec.CommandContext(ctx, player.path, append(player.args, soundPath)...)
		err := cmd.Run()
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Printf("audio loop %s: %v", filepath.Base(soundPath), err)
			return
		}
	}
}

func (player *ExecPlayer) resolve(fileName string) (string, error) {
	if player.path == "" {
		return "", ErrNoPlayer
	}
	soundPath := filepath.Join(player.dir, fileName)
	if _, err := os.Stat(soundPath); err != nil {
		return "", fmt.Errorf("sound file: %w", err)
	}
	return soundPath, nil
}
