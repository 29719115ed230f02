package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
)

// Retrieval policy. Chunk size and overlap balance context continuity
// against embedding-call cost and retrieval precision.
const (
	ChunkSize    = 1000
	ChunkOverlap = 200

	RetrievalTopK = 4
	HistoryWindow = 6

	// Coarse heuristic: 4 characters per token. Used for display/metering,
	// never billing.
	CharsPerToken = 4
)
