package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mock_assistant "compliance-ai/backend/internal/assistant/mocks"
	app_errors "compliance-ai/backend/internal/errors"
	"compliance-ai/backend/internal/repository"
	mock_repo "compliance-ai/backend/internal/repository/mocks"
	"compliance-ai/backend/internal/service"
)

const defaultPrompt = "Sei un assistente esperto di normative tecniche."

func setupSettingsService(t *testing.T) (*service.SettingsService, *mock_repo.MockPreferenceRepository, *mock_assistant.MockAnswerer) {
	repo := mock_repo.NewMockPreferenceRepository(t)
	answerer := mock_assistant.NewMockAnswerer(t)
	return service.NewSettingsService(repo, answerer), repo, answerer
}

func TestSettingsService_SystemPrompt(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - No override", func(t *testing.T) {
		settingsService, repo, answerer := setupSettingsService(t)
		repo.On("GetPreference", ctx, service.SystemPromptOverrideKey).Return("", repository.ErrNotFound).Once()
		answerer.On("DefaultSystemPrompt", mock.Anything).Return(defaultPrompt, nil).Once()

		settings, err := settingsService.SystemPrompt(ctx)
		require.NoError(t, err)
		assert.Equal(t, defaultPrompt, settings.Default)
		assert.True(t, settings.DefaultAvailable)
		assert.Equal(t, defaultPrompt, settings.Effective)
		assert.False(t, settings.Customized)
		assert.Empty(t, settings.Override)
	})

	t.Run("Success - Override in effect", func(t *testing.T) {
		settingsService, repo, answerer := setupSettingsService(t)
		repo.On("GetPreference", ctx, service.SystemPromptOverrideKey).Return("Rispondi in inglese.", nil).Once()
		answerer.On("DefaultSystemPrompt", mock.Anything).Return(defaultPrompt, nil).Once()

		settings, err := settingsService.SystemPrompt(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Rispondi in inglese.", settings.Effective)
		assert.Equal(t, defaultPrompt, settings.Default)
		assert.True(t, settings.Customized)
	})

	t.Run("Success - Default unavailable", func(t *testing.T) {
		settingsService, repo, answerer := setupSettingsService(t)
		repo.On("GetPreference", ctx, service.SystemPromptOverrideKey).Return("", repository.ErrNotFound).Once()
		answerer.On("DefaultSystemPrompt", mock.Anything).Return("", errors.New("connection refused"))

		settings, err := settingsService.SystemPrompt(ctx)
		require.NoError(t, err)
		assert.False(t, settings.DefaultAvailable)
		assert.Empty(t, settings.Effective)
	})
}

func TestSettingsService_Override(t *testing.T) {
	ctx := context.Background()

	t.Run("Stored value", func(t *testing.T) {
		settingsService, repo, _ := setupSettingsService(t)
		repo.On("GetPreference", ctx, service.SystemPromptOverrideKey).Return("Sii conciso.", nil).Once()
		assert.Equal(t, "Sii conciso.", settingsService.Override(ctx))
	})

	t.Run("Storage failure degrades to no override", func(t *testing.T) {
		settingsService, repo, _ := setupSettingsService(t)
		repo.On("GetPreference", ctx, service.SystemPromptOverrideKey).Return("", errors.New("database is locked")).Once()
		assert.Empty(t, settingsService.Override(ctx))
	})
}

func TestSettingsService_DefaultSystemPrompt_Cached(t *testing.T) {
	ctx := context.Background()
	settingsService, _, answerer := setupSettingsService(t)
	answerer.On("DefaultSystemPrompt", mock.Anything).Return(defaultPrompt, nil).Once()

	for i := 0; i < 3; i++ {
		prompt, err := settingsService.DefaultSystemPrompt(ctx)
		require.NoError(t, err)
		assert.Equal(t, defaultPrompt, prompt)
	}
	answerer.AssertNumberOfCalls(t, "DefaultSystemPrompt", 1)
}

func TestSettingsService_SaveSystemPrompt(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Custom prompt is trimmed and stored", func(t *testing.T) {
		settingsService, repo, answerer := setupSettingsService(t)
		answerer.On("DefaultSystemPrompt", mock.Anything).Return(defaultPrompt, nil).Once()
		repo.On("SetPreference", ctx, service.SystemPromptOverrideKey, "Rispondi in inglese.").Return(nil).Once()

		result, err := settingsService.SaveSystemPrompt(ctx, "  Rispondi in inglese.\n")
		require.NoError(t, err)
		assert.True(t, result.Saved)
		assert.True(t, result.Customized)
		assert.Equal(t, "Rispondi in inglese.", result.Effective)
		assert.Equal(t, "Prompt di sistema salvato.", result.Status)
	})

	t.Run("Success - Prompt equal to default removes override", func(t *testing.T) {
		settingsService, repo, answerer := setupSettingsService(t)
		answerer.On("DefaultSystemPrompt", mock.Anything).Return(defaultPrompt, nil).Once()
		repo.On("DeletePreference", ctx, service.SystemPromptOverrideKey).Return(nil).Once()

		result, err := settingsService.SaveSystemPrompt(ctx, "\t"+defaultPrompt+"  ")
		require.NoError(t, err)
		assert.True(t, result.Saved)
		assert.False(t, result.Customized)
		assert.Equal(t, defaultPrompt, result.Effective)
		assert.Equal(t, "Prompt di sistema predefinito ripristinato.", result.Status)
	})

	t.Run("Success - Blank prompt removes override", func(t *testing.T) {
		settingsService, repo, answerer := setupSettingsService(t)
		answerer.On("DefaultSystemPrompt", mock.Anything).Return(defaultPrompt, nil).Once()
		repo.On("DeletePreference", ctx, service.SystemPromptOverrideKey).Return(nil).Once()

		result, err := settingsService.ResetSystemPrompt(ctx)
		require.NoError(t, err)
		assert.True(t, result.Saved)
		assert.False(t, result.Customized)
	})

	t.Run("Failure - Prompt too long", func(t *testing.T) {
		settingsService, _, _ := setupSettingsService(t)

		result, err := settingsService.SaveSystemPrompt(ctx, strings.Repeat("à", service.MaxSystemPromptLength+1))
		assert.Nil(t, result)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Storage failure is reported, not returned", func(t *testing.T) {
		settingsService, repo, answerer := setupSettingsService(t)
		answerer.On("DefaultSystemPrompt", mock.Anything).Return(defaultPrompt, nil).Once()
		repo.On("SetPreference", ctx, service.SystemPromptOverrideKey, "Sii conciso.").Return(errors.New("disk full")).Once()
		repo.On("GetPreference", ctx, service.SystemPromptOverrideKey).Return("", repository.ErrNotFound).Once()

		result, err := settingsService.SaveSystemPrompt(ctx, "Sii conciso.")
		require.NoError(t, err)
		assert.False(t, result.Saved)
		assert.Contains(t, result.Status, "non salvato")
		assert.Equal(t, defaultPrompt, result.Effective)
	})

	t.Run("Default unavailable still saves", func(t *testing.T) {
		settingsService, repo, answerer := setupSettingsService(t)
		answerer.On("DefaultSystemPrompt", mock.Anything).Return("", errors.New("timeout"))
		repo.On("SetPreference", ctx, service.SystemPromptOverrideKey, "Sii conciso.").Return(nil).Once()

		result, err := settingsService.SaveSystemPrompt(ctx, "Sii conciso.")
		require.NoError(t, err)
		assert.True(t, result.Saved)
		assert.False(t, result.DefaultAvailable)
		assert.Equal(t, "Sii conciso.", result.Effective)
	})
}
