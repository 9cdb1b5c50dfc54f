package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// Provider synthesizes text into an audio file and returns its path.
// The caller owns (and removes) the file.
type Provider interface {
	Synthesize(ctx context.Context, text string) (string, error)
}

// EdgeProvider synthesizes via the `edge-tts` CLI (free, no API key).
type EdgeProvider struct {
	voice string
	rate  string
}

// EdgeConfig configures the Edge TTS provider.
type EdgeConfig struct {
	Voice string // default "en-US-MichelleNeural"
	Rate  string // e.g. "+0%"
}

// NewEdgeProvider creates an Edge TTS provider.
func NewEdgeProvider(cfg EdgeConfig) *EdgeProvider {
	p := &EdgeProvider{voice: cfg.Voice, rate: cfg.Rate}
	if p.voice == "" {
		p.voice = "en-US-MichelleNeural"
	}
	return p
}

// Synthesize runs edge-tts and writes an mp3 into the temp dir.
func (p *EdgeProvider) Synthesize(ctx context.Context, text string) (string, error) {
	outPath := filepath.Join(os.TempDir(), fmt.Sprintf("buddy-tts-%d.mp3", time.Now().UnixNano()))

	args := []string{
		"--voice", p.voice,
		"--text", text,
		"--write-media", outPath,
	}
	if p.rate != "" {
		args = append(args, "--rate", p.rate)
	}

	cmd := exec.CommandContext(ctx, "edge-tts", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		os.Remove(outPath)
		return "", fmt.Errorf("speech: edge-tts failed: %w (output: %s)", err, string(output))
	}

	return outPath, nil
}

// play blocks until the OS audio player finishes with the file.
func play(ctx context.Context, path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.CommandContext(ctx, "powershell", "-c",
			fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", path))
	case "darwin":
		cmd = exec.CommandContext(ctx, "afplay", path)
	default:
		cmd = exec.CommandContext(ctx, "mpg123", "-q", path)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("speech: playback failed: %w", err)
	}
	return nil
}
