// /internal/roast/roast.go
package roast

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"

	"soberaninha/internal/ai"
	"soberaninha/internal/version"
)

const (
	maxTokens   = 512
	temperature = 0.7

	// Anything shorter after cleaning is treated as a failed generation.
	minReplyLen = 3
)

// labelPatterns strip a leading "Assistant:"-style prefix when the model
// echoes one back. Tried in order; first match wins.
var labelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^.*?:\s*(.+)$`),
	regexp.MustCompile(`(?i)^.*?resposta:?\s*(.+)$`),
	regexp.MustCompile(`(?i)^.*?` + version.AppName + `:?\s*(.+)$`),
}

var ErrEmptyReply = errors.New("cleaned reply is empty or too short")

// Generator produces one-line roasts from a trigger context, via the
// inference provider when it cooperates and a canned pool when it does not.
type Generator struct {
	provider ai.Provider
}

func New(provider ai.Provider) *Generator {
	return &Generator{provider: provider}
}

func prompt(trigger string) string {
	return fmt.Sprintf(`Você é a %s, uma adolescente sarcástica, debochada e gamer hardcore.
Alguém disse: "%s" no Discord.
Responda com uma frase engraçada, provocativa, em português. Apenas uma frase.`, version.AppName, trigger)
}

// Generate is the strict entry point: it returns an error on any failure
// (network, credentials, empty or too-short reply) and never substitutes
// fallback text. Callers that must cancel a whole command flow on failure
// use this.
func (g *Generator) Generate(trigger string) (string, error) {
	p := prompt(trigger)

	raw, err := g.provider.Generate(
		[]ai.Message{{Role: "user", Content: p}},
		ai.Options{MaxTokens: maxTokens, Temperature: temperature},
	)
	if err != nil {
		if errors.Is(err, ai.ErrMissingCredentials) {
			log.Println("[WARN] Roast generation skipped: inference token not configured")
		}
		return "", err
	}

	cleaned := cleanReply(raw, p)
	if len(cleaned) < minReplyLen {
		return "", ErrEmptyReply
	}
	return cleaned, nil
}

// Reliable never fails: on any generation error it returns a random entry
// from the fallback pool. The returned string is never empty.
func (g *Generator) Reliable(trigger string) string {
	reply, err := g.Generate(trigger)
	if err != nil {
		log.Println("[WARN] Falling back to canned roast:", err)
		return FallbackRoasts[rand.Intn(len(FallbackRoasts))]
	}
	return reply
}

// cleanReply strips an echoed prompt and any assistant-style label prefix,
// then trims whitespace.
func cleanReply(reply, sentPrompt string) string {
	reply = strings.TrimSpace(reply)

	if strings.HasPrefix(reply, sentPrompt) {
		return strings.TrimSpace(strings.TrimPrefix(reply, sentPrompt))
	}

	for _, pattern := range labelPatterns {
		if m := pattern.FindStringSubmatch(reply); m != nil && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
	}

	return reply
}
