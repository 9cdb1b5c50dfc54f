package speech

import (
	"context"
	"os"
	"sync"
	"time"

	pkgLog "github.com/pkparthk/Buddy-AI/pkg/log"
)

// playbackTimeout bounds synthesis plus playback for one utterance.
const playbackTimeout = 60 * time.Second

// Speaker speaks replies in the background. Say never blocks the caller;
// the mutex guarantees at most one playback touches the audio device, so
// rapid consecutive replies queue instead of garbling each other.
// There is no cancellation: a playback that has started runs to completion.
type Speaker struct {
	l        pkgLog.Logger
	provider Provider
	enabled  bool

	mu sync.Mutex // owns the audio output device
}

// NewSpeaker creates a Speaker. A nil provider or enabled=false makes Say a
// no-op, which is how headless deployments run.
func NewSpeaker(l pkgLog.Logger, provider Provider, enabled bool) *Speaker {
	return &Speaker{
		l:        l,
		provider: provider,
		enabled:  enabled && provider != nil,
	}
}

// Say schedules text for playback and returns immediately.
func (s *Speaker) Say(text string) {
	if !s.enabled || text == "" {
		return
	}

	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), playbackTimeout)
		defer cancel()

		path, err := s.provider.Synthesize(ctx, text)
		if err != nil {
			s.l.Warnf(ctx, "speech: synthesis failed: %v", err)
			return
		}
		defer os.Remove(path)

		if err := play(ctx, path); err != nil {
			s.l.Warnf(ctx, "speech: %v", err)
		}
	}()
}
