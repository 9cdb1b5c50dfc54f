package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
	"github.com/pkparthk/Buddy-AI/internal/assistant/pattern"
)

// domainSuffixes mark a target as a literal domain even without a scheme.
var domainSuffixes = []string{".com", ".org", ".net", ".io", ".dev", ".co"}

// handleDirectOpen resolves an open-target through tiers of strictly
// increasing cost: website registry, abbreviation table, application table,
// literal domain, AI classification, and finally a plain web search. The
// tier order is load-bearing; each step is cheaper and more deterministic
// than the next.
func (uc *implUseCase) handleDirectOpen(ctx context.Context, target, query string) assistant.CommandResult {
	target = strings.ToLower(strings.TrimSpace(target))

	if url, ok := pattern.Websites[target]; ok {
		return uc.openSite(target, url)
	}

	if full, ok := pattern.Abbreviations[target]; ok {
		return uc.openSite(full, pattern.Websites[full])
	}

	if _, ok := pattern.Applications[target]; ok {
		return uc.handleSystemControl(ctx, target)
	}

	if looksLikeDomain(target) {
		url := target
		if !strings.HasPrefix(url, "http") {
			url = "https://" + url
		}
		if err := uc.opener.Open(url); err != nil {
			uc.l.Warnf(ctx, "handleDirectOpen: open %s: %v", url, err)
		}
		return assistant.CommandResult{
			Success: true,
			Message: fmt.Sprintf("Opening %s", target),
			Action:  actionDirectOpen,
			URL:     url,
		}
	}

	return uc.aiOpenDecision(ctx, target, query)
}

func (uc *implUseCase) openSite(name, url string) assistant.CommandResult {
	if err := uc.opener.Open(url); err != nil {
		uc.l.Warnf(context.Background(), "openSite: open %s: %v", url, err)
	}
	return assistant.CommandResult{
		Success: true,
		Message: fmt.Sprintf("Opening %s", titleCase(name)),
		Action:  actionDirectOpen,
		URL:     url,
	}
}

func looksLikeDomain(target string) bool {
	if strings.Contains(target, " ") {
		return false
	}
	if strings.Contains(target, ".") {
		return true
	}
	for _, suffix := range domainSuffixes {
		if strings.HasSuffix(target, suffix) {
			return true
		}
	}
	return false
}

// aiOpenDecision asks the generative backend to classify an unknown target.
// The reply is untrusted text; a missing or malformed ACTION/URL/MESSAGE
// triple, or any backend failure, degrades to a web search on the target.
func (uc *implUseCase) aiOpenDecision(ctx context.Context, target, query string) assistant.CommandResult {
	reply, err := uc.llm.GenerateText(ctx, fmt.Sprintf(websiteDecisionPrompt, query, target))
	if err != nil {
		uc.l.Warnf(ctx, "aiOpenDecision: %v", err)
		return uc.handleWebSearch(ctx, query, target)
	}

	action, urlOrApp, message, ok := parseDecision(reply)
	if !ok {
		return uc.handleWebSearch(ctx, query, target)
	}

	switch action {
	case "website":
		if err := uc.opener.Open(urlOrApp); err != nil {
			uc.l.Warnf(ctx, "aiOpenDecision: open %s: %v", urlOrApp, err)
		}
		return assistant.CommandResult{
			Success: true,
			Message: message,
			Action:  actionAIDirectOpen,
			URL:     urlOrApp,
		}
	case "application":
		return uc.handleSystemControl(ctx, strings.TrimSuffix(urlOrApp, ".exe"))
	default:
		return uc.handleWebSearch(ctx, query, target)
	}
}

// parseDecision pulls the three labeled lines out of a free-text reply.
func parseDecision(reply string) (action, urlOrApp, message string, ok bool) {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "ACTION:"):
			action = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "ACTION:")))
		case strings.HasPrefix(line, "URL:"):
			urlOrApp = strings.TrimSpace(strings.TrimPrefix(line, "URL:"))
		case strings.HasPrefix(line, "MESSAGE:"):
			message = strings.TrimSpace(strings.TrimPrefix(line, "MESSAGE:"))
		}
	}
	return action, urlOrApp, message, action != "" && urlOrApp != "" && message != ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
