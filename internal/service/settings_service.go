package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"

	"compliance-ai/backend/internal/assistant"
	app_errors "compliance-ai/backend/internal/errors"
	"compliance-ai/backend/internal/repository"
)

const (
	// SystemPromptOverrideKey is the single preference key holding the
	// user's custom instructions for the document chatbot.
	SystemPromptOverrideKey = "chatbot_system_prompt_override"

	// MaxSystemPromptLength caps the override, in characters.
	MaxSystemPromptLength = 12000

	statusPromptSaved    = "Prompt di sistema salvato."
	statusPromptRestored = "Prompt di sistema predefinito ripristinato."
	statusPromptNotSaved = "Prompt di sistema non salvato: archiviazione non disponibile."
)

// PromptSettings describes the instructions used by the document chatbot.
type PromptSettings struct {
	Default          string `json:"default_system_prompt"`
	DefaultAvailable bool   `json:"default_available"`
	Override         string `json:"override,omitempty"`
	Effective        string `json:"effective_system_prompt"`
	Customized       bool   `json:"customized"`
}

// SaveResult is the outcome of saving an override. Storage failures are
// reported through Saved and Status rather than as an error.
type SaveResult struct {
	PromptSettings
	Saved  bool   `json:"saved"`
	Status string `json:"status"`
}

// SettingsService manages the system prompt override of the document chatbot.
type SettingsService struct {
	repo     repository.PreferenceRepository
	answerer assistant.Answerer

	group         singleflight.Group
	mu            sync.RWMutex
	defaultPrompt *string
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo repository.PreferenceRepository, answerer assistant.Answerer) *SettingsService {
	return &SettingsService{repo: repo, answerer: answerer}
}

// DefaultSystemPrompt returns the answering service's default instructions.
// Concurrent callers share one request and a successful result is cached.
func (s *SettingsService) DefaultSystemPrompt(ctx context.Context) (string, error) {
	s.mu.RLock()
	cached := s.defaultPrompt
	s.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	v, err, _ := s.group.Do("default", func() (any, error) {
		prompt, err := s.answerer.DefaultSystemPrompt(ctx)
		if err != nil {
			return "", err
		}
		s.mu.Lock()
		s.defaultPrompt = &prompt
		s.mu.Unlock()
		return prompt, nil
	})
	if err != nil {
		return "", fmt.Errorf("could not fetch default system prompt: %w", err)
	}
	return v.(string), nil
}

// Override returns the stored override, or "" when there is none or the
// storage cannot be read.
func (s *SettingsService) Override(ctx context.Context) string {
	value, err := s.repo.GetPreference(ctx, SystemPromptOverrideKey)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Warn("Could not read system prompt override, using default", "error", err)
		}
		return ""
	}
	return value
}

// SystemPrompt returns the default, the override and the prompt in effect.
func (s *SettingsService) SystemPrompt(ctx context.Context) (*PromptSettings, error) {
	settings := s.buildSettings(ctx, s.Override(ctx))
	return &settings, nil
}

// SaveSystemPrompt stores text as the override. An empty text, or one equal
// to the default once trimmed, removes the override instead.
func (s *SettingsService) SaveSystemPrompt(ctx context.Context, text string) (*SaveResult, error) {
	if utf8.RuneCountInString(text) > MaxSystemPromptLength {
		return nil, fmt.Errorf("%w: system prompt exceeds %d characters", app_errors.ErrValidation, MaxSystemPromptLength)
	}

	trimmed := strings.TrimSpace(text)
	def, defErr := s.DefaultSystemPrompt(ctx)
	if defErr != nil {
		slog.Warn("Saving system prompt without comparing to the default", "error", defErr)
	}
	matchesDefault := defErr == nil && trimmed == strings.TrimSpace(def)

	if trimmed == "" || matchesDefault {
		if err := s.repo.DeletePreference(ctx, SystemPromptOverrideKey); err != nil {
			slog.Warn("Could not clear system prompt override", "error", err)
			return s.notSaved(ctx), nil
		}
		return &SaveResult{PromptSettings: s.buildSettings(ctx, ""), Saved: true, Status: statusPromptRestored}, nil
	}

	if err := s.repo.SetPreference(ctx, SystemPromptOverrideKey, trimmed); err != nil {
		slog.Warn("Could not store system prompt override", "error", err)
		return s.notSaved(ctx), nil
	}
	slog.Info("System prompt override saved", "length", utf8.RuneCountInString(trimmed))
	return &SaveResult{PromptSettings: s.buildSettings(ctx, trimmed), Saved: true, Status: statusPromptSaved}, nil
}

// ResetSystemPrompt removes the override.
func (s *SettingsService) ResetSystemPrompt(ctx context.Context) (*SaveResult, error) {
	return s.SaveSystemPrompt(ctx, "")
}

func (s *SettingsService) notSaved(ctx context.Context) *SaveResult {
	return &SaveResult{PromptSettings: s.buildSettings(ctx, s.Override(ctx)), Saved: false, Status: statusPromptNotSaved}
}

func (s *SettingsService) buildSettings(ctx context.Context, override string) PromptSettings {
	settings := PromptSettings{Override: override}
	if def, err := s.DefaultSystemPrompt(ctx); err == nil {
		settings.Default = def
		settings.DefaultAvailable = true
	}
	settings.Customized = override != ""
	settings.Effective = settings.Default
	if settings.Customized {
		settings.Effective = override
	}
	return settings
}
