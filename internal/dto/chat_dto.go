package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type UsageDTO struct {
	TokensUsed  int   `json:"tokensUsed"`
	TotalTokens int64 `json:"totalTokens"`
	ChatCount   int   `json:"chatCount"`
}

type ChatResponse struct {
	Answer       string   `json:"answer"`
	Sources      int      `json:"sources"`
	HistoryCount int      `json:"historyCount"`
	Usage        UsageDTO `json:"usage"`
}
