package usecase

import (
	"context"
	"errors"

	"github.com/pkparthk/Buddy-AI/pkg/newsapi"
	"github.com/pkparthk/Buddy-AI/pkg/openweather"
	"github.com/pkparthk/Buddy-AI/pkg/sysinfo"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock generative backend. Records prompts so transcript framing can be
// asserted.
type mockGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (m *mockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.err
}

// Mock weather client
type mockWeather struct {
	result    openweather.Result
	locations []string
}

func (m *mockWeather) Current(ctx context.Context, location string) openweather.Result {
	m.locations = append(m.locations, location)
	return m.result
}

// Mock news client
type mockNews struct {
	result newsapi.Result
	topics []string
}

func (m *mockNews) Headlines(ctx context.Context, topic string, count int) newsapi.Result {
	m.topics = append(m.topics, topic)
	return m.result
}

// Mock system info provider
type mockSystem struct {
	battery    sysinfo.BatteryStatus
	batteryErr error
	memory     sysinfo.MemoryStatus
	memoryErr  error
	cpu        sysinfo.CPUStatus
	cpuErr     error
	disk       sysinfo.DiskStatus
	diskErr    error
}

func (m mockSystem) Battery() (sysinfo.BatteryStatus, error) { return m.battery, m.batteryErr }
func (m mockSystem) Memory() (sysinfo.MemoryStatus, error)   { return m.memory, m.memoryErr }
func (m mockSystem) CPU() (sysinfo.CPUStatus, error)         { return m.cpu, m.cpuErr }
func (m mockSystem) Disk() (sysinfo.DiskStatus, error)       { return m.disk, m.diskErr }

// Mock URL opener
type mockOpener struct {
	err  error
	urls []string
}

func (m *mockOpener) Open(url string) error {
	m.urls = append(m.urls, url)
	return m.err
}

// Mock application launcher
type mockLauncher struct {
	err     error
	started []string
}

func (m *mockLauncher) Start(name, executable string) error {
	m.started = append(m.started, executable)
	return m.err
}

// Mock speaker
type mockSpeaker struct {
	spoken []string
}

func (m *mockSpeaker) Say(text string) {
	m.spoken = append(m.spoken, text)
}

var errBackendDown = errors.New("backend unavailable")

// newTestUseCase wires an engine out of the given fakes, substituting inert
// defaults for any nil collaborator.
func newTestUseCase(gen *mockGenerator, weather *mockWeather, news *mockNews, system *mockSystem, opener *mockOpener, launcher *mockLauncher) *implUseCase {
	if gen == nil {
		gen = &mockGenerator{reply: "mock reply"}
	}
	if weather == nil {
		weather = &mockWeather{result: openweather.Result{Success: true, Message: "sunny"}}
	}
	if news == nil {
		news = &mockNews{result: newsapi.Result{Success: true, Message: "headlines"}}
	}
	if system == nil {
		system = &mockSystem{}
	}
	if opener == nil {
		opener = &mockOpener{}
	}
	if launcher == nil {
		launcher = &mockLauncher{}
	}
	return New(&mockLogger{}, gen, weather, news, system, opener, launcher, &mockSpeaker{})
}
