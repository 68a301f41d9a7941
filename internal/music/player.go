// Package music plays a local library through the default output device.
// It backs the offline "play/pause/next" commands, so it must work with
// no network at all.
package music

import (
	"io/fs"
	log "log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// Player cycles through every mp3/wav/ogg file found under the library
// directory. Tracks auto-advance when one finishes.
type Player struct {
	mu     sync.Mutex
	tracks []string
	idx    int
	ctrl   *beep.Ctrl
	stream beep.StreamSeekCloser
}

func NewPlayer(dir string) *Player {
	p := &Player{}
	p.tracks = scanLibrary(dir)
	if len(p.tracks) == 0 {
		log.Warn("No playable tracks in music library", "dir", dir)
	}
	return p
}

func scanLibrary(dir string) []string {
	var tracks []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".mp3", ".wav", ".ogg":
			tracks = append(tracks, path)
		}
		return nil
	})
	sort.Strings(tracks)
	return tracks
}

func title(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Current names the track the player is positioned on.
func (p *Player) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.tracks) == 0 {
		return ""
	}
	return title(p.tracks[p.idx])
}

// Play starts the current track, or resumes it when paused.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
		return
	}
	p.startLocked()
}

// Pause halts playback without losing the position.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

// Next skips to the following track and returns its title.
func (p *Player) Next() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.tracks) == 0 {
		return ""
	}
	p.stopLocked()
	p.idx = (p.idx + 1) % len(p.tracks)
	p.startLocked()
	return title(p.tracks[p.idx])
}

func (p *Player) startLocked() {
	if len(p.tracks) == 0 {
		return
	}

	path := p.tracks[p.idx]
	stream, format, err := decode(path)
	if err != nil {
		log.Error("Failed to decode track", "path", path, "err", err)
		return
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		log.Error("Failed to init output device", "err", err)
		stream.Close()
		return
	}

	p.stream = stream
	p.ctrl = &beep.Ctrl{Streamer: stream}
	// the callback fires on the mixer goroutine, which holds the
	// speaker lock; advancing must happen elsewhere
	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() { go p.advance() })))
	log.Info("Playing track", "title", title(path))
}

func (p *Player) stopLocked() {
	if p.ctrl == nil {
		return
	}
	speaker.Clear()
	if p.stream != nil {
		p.stream.Close()
		p.stream = nil
	}
	p.ctrl = nil
}

// advance moves to the next track when the current one ends on its own.
func (p *Player) advance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil || len(p.tracks) == 0 {
		return
	}
	if p.stream != nil {
		p.stream.Close()
		p.stream = nil
	}
	p.ctrl = nil
	p.idx = (p.idx + 1) % len(p.tracks)
	p.startLocked()
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.Decode(f)
	case ".ogg":
		return vorbis.Decode(f)
	default:
		return mp3.Decode(f)
	}
}
