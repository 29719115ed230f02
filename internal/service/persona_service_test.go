package service

import (
	"testing"

	"rag-chat-be/internal/constant"

	"github.com/stretchr/testify/assert"
)

func TestPersonaDefaultsWhenBlank(t *testing.T) {
	s := NewPersonaService("")

	preset, ok := constant.FindPersonaPreset(constant.DefaultPersonaId)
	assert.True(t, ok)
	assert.Equal(t, preset.Prompt, s.Current())
}

func TestPersonaInitialFromConfig(t *testing.T) {
	s := NewPersonaService("  You are a pirate.  ")

	assert.Equal(t, "You are a pirate.", s.Current())
}

func TestPersonaSetCustom(t *testing.T) {
	s := NewPersonaService("")

	err := s.SetCustom("Answer in French only.")

	assert.NoError(t, err)
	assert.Equal(t, "Answer in French only.", s.Current())
}

func TestPersonaRejectsBlankCustom(t *testing.T) {
	s := NewPersonaService("Keep me.")

	err := s.SetCustom("   \n\t ")

	assert.ErrorIs(t, err, ErrEmptyPersona)
	assert.Equal(t, "Keep me.", s.Current())
}

func TestPersonaSetPreset(t *testing.T) {
	s := NewPersonaService("")

	preset, err := s.SetPreset("legal")

	assert.NoError(t, err)
	assert.Equal(t, "legal", preset.Id)
	assert.Equal(t, preset.Prompt, s.Current())
}

func TestPersonaRejectsUnknownPreset(t *testing.T) {
	s := NewPersonaService("Keep me.")

	_, err := s.SetPreset("astronaut")

	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Equal(t, "Keep me.", s.Current())
}

func TestPersonaPresetsCatalog(t *testing.T) {
	s := NewPersonaService("")

	presets := s.Presets()

	assert.Len(t, presets, len(constant.PersonaPresets))
	assert.Equal(t, constant.DefaultPersonaId, presets[0].Id)

	// The returned slice is a copy; callers cannot corrupt the catalog.
	presets[0].Prompt = "mutated"
	assert.NotEqual(t, "mutated", s.Presets()[0].Prompt)
}
