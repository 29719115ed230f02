package service

import (
	"errors"
	"strings"
	"sync"

	"rag-chat-be/internal/constant"
)

var (
	ErrEmptyPersona  = errors.New("persona prompt must not be empty")
	ErrUnknownPreset = errors.New("unknown persona preset")
)

type IPersonaService interface {
	Current() string
	SetCustom(prompt string) error
	SetPreset(presetId string) (constant.PersonaPreset, error)
	Presets() []constant.PersonaPreset
}

// personaService holds the single active system persona. A rejected
// update never disturbs the current value.
type personaService struct {
	mu      sync.RWMutex
	current string
}

// NewPersonaService starts from the given prompt, or the default preset
// when the prompt is blank.
func NewPersonaService(initialPrompt string) IPersonaService {
	current := strings.TrimSpace(initialPrompt)
	if current == "" {
		preset, _ := constant.FindPersonaPreset(constant.DefaultPersonaId)
		current = preset.Prompt
	}
	return &personaService{
		current: current,
	}
}

func (s *personaService) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *personaService) SetCustom(prompt string) error {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return ErrEmptyPersona
	}

	s.mu.Lock()
	s.current = trimmed
	s.mu.Unlock()
	return nil
}

func (s *personaService) SetPreset(presetId string) (constant.PersonaPreset, error) {
	preset, ok := constant.FindPersonaPreset(presetId)
	if !ok {
		return constant.PersonaPreset{}, ErrUnknownPreset
	}

	s.mu.Lock()
	s.current = preset.Prompt
	s.mu.Unlock()
	return preset, nil
}

func (s *personaService) Presets() []constant.PersonaPreset {
	presets := make([]constant.PersonaPreset, len(constant.PersonaPresets))
	copy(presets, constant.PersonaPresets)
	return presets
}
