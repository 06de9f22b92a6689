package roast

import (
	"errors"
	"strings"
	"testing"

	"soberaninha/internal/ai"
)

type mockProvider struct {
	reply string
	err   error
	calls int
}

func (m *mockProvider) Generate(messages []ai.Message, opts ai.Options) (string, error) {
	m.calls++
	return m.reply, m.err
}

func TestGenerate_CleansLabelPrefix(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  string
	}{
		{"assistant label", "Assistant: Vai treinar mira primeiro.", "Vai treinar mira primeiro."},
		{"resposta label", "Resposta: Nem o tutorial te aguenta.", "Nem o tutorial te aguenta."},
		{"bot name label", "Soberaninha: Seu KDA é um número de telefone.", "Seu KDA é um número de telefone."},
		{"no label", "Seu time já te mutou de novo?", "Seu time já te mutou de novo?"},
		{"surrounding whitespace", "   Vai jogar assim mesmo?   ", "Vai jogar assim mesmo?"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := New(&mockProvider{reply: tc.reply})
			got, err := g.Generate("algum gatilho")
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGenerate_PromptEchoStripped(t *testing.T) {
	p := &mockProvider{}
	g := New(p)

	// The provider echoes the prompt followed by the actual line.
	p.reply = prompt("oi") + " Tá achando que eu tenho tempo pra você?"

	got, err := g.Generate("oi")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "Tá achando que eu tenho tempo pra você?" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerate_TooShortIsFailure(t *testing.T) {
	g := New(&mockProvider{reply: "ok"})
	if _, err := g.Generate("oi"); !errors.Is(err, ErrEmptyReply) {
		t.Fatalf("err = %v, want ErrEmptyReply", err)
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	wantErr := errors.New("boom")
	g := New(&mockProvider{err: wantErr})
	if _, err := g.Generate("oi"); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want provider error", err)
	}
}

func TestReliable_FallsBackAndNeverFails(t *testing.T) {
	g := New(&mockProvider{err: errors.New("network down")})

	pool := make(map[string]bool, len(FallbackRoasts))
	for _, phrase := range FallbackRoasts {
		pool[phrase] = true
	}

	for i := 0; i < 50; i++ {
		got := g.Reliable("oi")
		if got == "" {
			t.Fatal("Reliable returned empty string")
		}
		if !pool[got] {
			t.Fatalf("Reliable returned %q, not from fallback pool", got)
		}
	}
}

func TestReliable_UsesGeneratedReplyWhenAvailable(t *testing.T) {
	g := New(&mockProvider{reply: "Assistant: Até a IA desistiu de você."})
	if got := g.Reliable("oi"); got != "Até a IA desistiu de você." {
		t.Fatalf("got %q", got)
	}
}

func TestForGame(t *testing.T) {
	got := ForGame("  MineCraft ")
	found := false
	for _, phrase := range GameRoasts["minecraft"] {
		if got == phrase {
			found = true
		}
	}
	if !found {
		t.Fatalf("ForGame(minecraft) = %q, not from the minecraft pool", got)
	}

	if ForGame("some obscure title") == "" {
		t.Fatal("generic fallback returned empty string")
	}
}

func TestPhrasePoolsNonEmpty(t *testing.T) {
	for name, pool := range map[string][]string{
		"fallback":    FallbackRoasts,
		"humiliation": HumiliationPhrases,
		"random":      RandomPhrases,
	} {
		if len(pool) == 0 {
			t.Fatalf("pool %s is empty", name)
		}
		for _, phrase := range pool {
			if strings.TrimSpace(phrase) == "" {
				t.Fatalf("pool %s contains an empty phrase", name)
			}
		}
	}
}
