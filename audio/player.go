// Package audio plays short sound effects triggered by animations.
//
// Producers (animation listeners on the game loop) call Player.Play, which
// never blocks; a single consumer goroutine started with Player.Run hands
// each effect to a Sink.
package audio

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	// SampleRate is the rate every generated effect is rendered at.
	SampleRate = beep.SampleRate(48000)

	// DefaultQueueSize is the queue length used when NewPlayer gets 0.
	DefaultQueueSize = 16
)

// Effect is a named sound. New returns a fresh streamer for each playback.
type Effect struct {
	Name string
	New  func() beep.Streamer
}

// Sink receives effect streamers from the player's consumer goroutine.
type Sink interface {
	Play(s beep.Streamer)
}

// Player queues effects from the game loop and plays them on a Sink.
type Player struct {
	sink    Sink
	queue   chan Effect
	done    chan struct{}
	once    sync.Once
	played  atomic.Int64
	dropped atomic.Int64
}

// NewPlayer creates a player for sink with room for size pending effects.
func NewPlayer(sink Sink, size int) *Player {
	if sink == nil {
		panic("audio: nil sink")
	}
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Player{
		sink:  sink,
		queue: make(chan Effect, size),
		done:  make(chan struct{}),
	}
}

// Play queues e. It reports false, dropping the effect, when the queue is
// full or the player is closed.
func (p *Player) Play(e Effect) bool {
	if e.New == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
	}
	select {
	case p.queue <- e:
		return true
	default:
		p.dropped.Add(1)
		return false
	}
}

// Run consumes queued effects until ctx is cancelled or Close is called.
// It returns ctx.Err() on cancellation and nil after Close.
func (p *Player) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.done:
			return nil
		case e := <-p.queue:
			p.sink.Play(e.New())
			p.played.Add(1)
		}
	}
}

// Close stops Run and rejects further effects. Safe to call more than once.
func (p *Player) Close() {
	p.once.Do(func() { close(p.done) })
}

// Played returns how many effects reached the sink.
func (p *Player) Played() int64 { return p.played.Load() }

// Dropped returns how many effects were dropped on a full queue.
func (p *Player) Dropped() int64 { return p.dropped.Load() }

// SpeakerSink mixes effects onto the system speaker.
type SpeakerSink struct {
	mixer *beep.Mixer
}

// NewSpeakerSink initializes the speaker at SampleRate with a 100ms buffer
// and starts playing an empty mixer. It fails on machines without an audio
// device; callers usually carry on silently.
func NewSpeakerSink() (*SpeakerSink, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &SpeakerSink{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play adds st to the mixer.
func (s *SpeakerSink) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing.
func (s *SpeakerSink) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}
