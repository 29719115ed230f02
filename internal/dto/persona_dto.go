package dto

type SetPersonaRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type SetPresetRequest struct {
	Preset string `json:"preset" validate:"required"`
}

type CurrentPersonaResponse struct {
	Prompt string `json:"prompt"`
}

type PersonaPresetResponse struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}
