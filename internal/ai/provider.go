package ai

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Options struct {
	MaxTokens   int
	Temperature float64
}

type Provider interface {
	Generate(messages []Message, opts Options) (string, error)
}
