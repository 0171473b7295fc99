package audio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

// resampleQuality is the beep resampler quality used when a track's rate
// differs from the speaker's.
const resampleQuality = 4

// BeepPlayer plays mp3 tracks through the system speaker.
// The speaker is initialized lazily with the rate of the first track.
type BeepPlayer struct {
	mu          sync.Mutex
	logger      *log.Logger
	volume      float64 // beep volume exponent, 0 is unchanged
	sampleRate  beep.SampleRate
	initialized bool

	current *beep.Ctrl
	closer  io.Closer
}

// NewBeepPlayer creates a player. Volume is a base-2 exponent: 0 keeps the
// track level, -1 halves it. A nil logger discards output.
func NewBeepPlayer(volume float64, logger *log.Logger) *BeepPlayer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BeepPlayer{
		volume: volume,
		logger: logger,
	}
}

// PlayLoop decodes the mp3 at path and loops it forever.
func (p *BeepPlayer) PlayLoop(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.logger.Debug("track not found, playing silence", "path", path)
			return nil
		}
		return fmt.Errorf("audio: open %s: %w", path, err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("audio: decode %s: %w", path, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		return err
	}

	p.stopLocked()

	var looped beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != p.sampleRate {
		looped = beep.Resample(resampleQuality, format.SampleRate, p.sampleRate, looped)
	}
	ctrl := &beep.Ctrl{Streamer: looped, Paused: false}
	volume := &effects.Volume{Streamer: ctrl, Base: 2, Volume: p.volume}

	p.current = ctrl
	p.closer = streamer
	speaker.Play(volume)

	p.logger.Info("music started", "path", path, "rate", int(format.SampleRate))
	return nil
}

// Stop pauses the current track and releases its file.
func (p *BeepPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *BeepPlayer) stopLocked() {
	if p.current == nil {
		return
	}

	speaker.Lock()
	p.current.Paused = true
	speaker.Unlock()
	speaker.Clear()

	if p.closer != nil {
		p.closer.Close()
	}
	p.current = nil
	p.closer = nil
}

// initSpeaker sets up the speaker once with the given rate and a 100ms buffer.
func (p *BeepPlayer) initSpeaker(sr beep.SampleRate) error {
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	p.sampleRate = sr
	p.initialized = true
	return nil
}
