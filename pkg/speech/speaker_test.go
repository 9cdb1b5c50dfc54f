package speech

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeProvider fails synthesis so playback is never attempted, while
// tracking that calls never overlap.
type fakeProvider struct {
	active  int32
	overlap int32
	calls   int32
	done    chan struct{}
}

func (f *fakeProvider) Synthesize(ctx context.Context, text string) (string, error) {
	if atomic.AddInt32(&f.active, 1) > 1 {
		atomic.StoreInt32(&f.overlap, 1)
	}
	time.Sleep(5 * time.Millisecond)
	atomic.AddInt32(&f.active, -1)
	if atomic.AddInt32(&f.calls, 1) == 3 {
		close(f.done)
	}
	return "", errors.New("no audio in tests")
}

func TestSpeaker(t *testing.T) {
	t.Run("Disabled speaker is a no-op", func(t *testing.T) {
		p := &fakeProvider{done: make(chan struct{})}
		s := NewSpeaker(nopLogger{}, p, false)
		s.Say("hello")

		time.Sleep(20 * time.Millisecond)
		if atomic.LoadInt32(&p.calls) != 0 {
			t.Error("disabled speaker must not synthesize")
		}
	})

	t.Run("Say does not block and playback is serialized", func(t *testing.T) {
		p := &fakeProvider{done: make(chan struct{})}
		s := NewSpeaker(nopLogger{}, p, true)

		start := time.Now()
		s.Say("one")
		s.Say("two")
		s.Say("three")
		if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
			t.Errorf("Say blocked the caller for %v", elapsed)
		}

		select {
		case <-p.done:
		case <-time.After(2 * time.Second):
			t.Fatal("background playback never ran")
		}
		if atomic.LoadInt32(&p.overlap) != 0 {
			t.Error("two playbacks held the audio device at once")
		}
	})

	t.Run("Empty text ignored", func(t *testing.T) {
		p := &fakeProvider{done: make(chan struct{})}
		s := NewSpeaker(nopLogger{}, p, true)
		s.Say("")

		time.Sleep(20 * time.Millisecond)
		if atomic.LoadInt32(&p.calls) != 0 {
			t.Error("empty text must not synthesize")
		}
	})
}
