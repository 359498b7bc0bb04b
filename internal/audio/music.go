package audio

import (
	"context"
	"fmt"
	"log"
)

// Music controls the looping background track.
type Music struct {
	ctx     context.Context
	player  Player
	current Track
}

// NewMusic creates a stopped music controller.
func NewMusic(ctx context.Context, player Player) *Music {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Music{ctx: ctx, player: player}
}

// Play stops the current track and loops the chosen one.
func (music *Music) Play(track Track) error {
	if !ValidTrack(string(track)) {
		return fmt.Errorf("unknown track %q", track)
	}
	music.Stop()
	if music.player == nil {
		return nil
	}
	if err := music.player.PlayLooping(music.ctx, string(track)); err != nil {
		log.Printf("audio music %s: %v", track, err)
		return nil
	}
	music.current = track
	return nil
}

// Stop halts background music. Stopping when nothing plays is fine.
func (music *Music) Stop() {
	if music.player != nil {
		music.player.Stop()
	}
	music.current = ""
}

// Current returns the track that is playing, or "".
func (music *Music) Current() Track {
	return music.current
}
