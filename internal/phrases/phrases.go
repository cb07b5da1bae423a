package phrases

import (
	_ "embed"
	"math/rand"
	"strings"
)

const DefaultGreeting = "Привет! Я бот для отслеживания книг 📚"

const separator = "---"

//go:embed welcome_messages.txt
var welcomeMessages string

type Provider struct {
	phrases []string
}

// NewWelcomeProvider uses the bundled welcome messages.
func NewWelcomeProvider() *Provider {
	return NewProvider(welcomeMessages)
}

// NewProvider splits raw into phrases separated by lines consisting of "---".
func NewProvider(raw string) *Provider {
	phrases := make([]string, 0)
	current := strings.Builder{}

	flush := func() {
		if phrase := strings.TrimSpace(current.String()); phrase != "" {
			phrases = append(phrases, phrase)
		}
		current.Reset()
	}

	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == separator {
			flush()
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	flush()

	return &Provider{phrases: phrases}
}

// Next returns a random phrase, or DefaultGreeting when there are none.
func (p *Provider) Next() string {
	if len(p.phrases) == 0 {
		return DefaultGreeting
	}
	return p.phrases[rand.Intn(len(p.phrases))]
}

func (p *Provider) Len() int {
	return len(p.phrases)
}
