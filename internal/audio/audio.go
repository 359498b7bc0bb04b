// Package audio routes session events to sound cues and user notifications.
package audio

import "context"

// Cue identifies a short clip played on a session transition.
type Cue string

const (
	CueSessionStart Cue = "session_start"
)

// FileName returns the clip file for the cue.
func (cue Cue) FileName() string {
	return string(cue) + ".wav"
}

// Track is a background music file name.
type Track string

// Tracks is the fixed set of background tracks offered to the user.
var Tracks = []Track{"lofi1.mp3", "lofi2.mp3", "lofi3.mp3"}

// DefaultTrack is selected before the user picks one.
const DefaultTrack Track = "lofi1.mp3"

// ValidTrack reports whether name is one of Tracks.
func ValidTrack(name string) bool {
	for _, track := range Tracks {
		if string(track) == name {
			return true
		}
	}
	return false
}

// TrackNames returns Tracks as plain strings.
func TrackNames() []string {
	names := make([]string, 0, len(Tracks))
	for _, track := range Tracks {
		names = append(names, string(track))
	}
	return names
}

// Player plays files by name. Play and PlayLooping return once playback is
// dispatched, not when it ends. Stop halts looping playback only; cues
// already started run to their end.
type Player interface {
	Play(ctx context.Context, fileName string) error
	PlayLooping(ctx context.Context, fileName string) error
	Stop()
}

// Notifier shows messages to the user.
type Notifier interface {
	Notify(message string)
	Alert(message string)
}
