package usecase

import (
	"context"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
	pkgLog "github.com/pkparthk/Buddy-AI/pkg/log"
	"github.com/pkparthk/Buddy-AI/pkg/newsapi"
	"github.com/pkparthk/Buddy-AI/pkg/openweather"
	"github.com/pkparthk/Buddy-AI/pkg/sysinfo"
)

// Collaborator contracts are declared here, on the consumer side, so the
// dispatch engine can be exercised with fakes. The pkg clients satisfy them.

type generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type weatherClient interface {
	Current(ctx context.Context, location string) openweather.Result
}

type newsClient interface {
	Headlines(ctx context.Context, topic string, count int) newsapi.Result
}

type urlOpener interface {
	Open(url string) error
}

type appLauncher interface {
	Start(name, executable string) error
}

type speaker interface {
	Say(text string)
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      generator
	weather  weatherClient
	news     newsClient
	system   sysinfo.Provider
	opener   urlOpener
	launcher appLauncher
	voice    speaker
	sessions *sessionStore
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the assistant UseCase.
func New(
	l pkgLog.Logger,
	llm generator,
	weather weatherClient,
	news newsClient,
	system sysinfo.Provider,
	opener urlOpener,
	launcher appLauncher,
	voice speaker,
) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		weather:  weather,
		news:     news,
		system:   system,
		opener:   opener,
		launcher: launcher,
		voice:    voice,
		sessions: newSessionStore(),
	}
}
