package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultNarratorModel = "gemini-1.5-pro"

// Narrator rewrites rule-engine answers into conversational prose
// with Gemini. The numbers always come from the rule engine; the
// model only rephrases them.
type Narrator struct {
	apiKey string
	model  string
}

// NewNarrator configures a narrator. An empty model name selects the
// default Gemini model.
func NewNarrator(apiKey, model string) *Narrator {
	if model == "" {
		model = defaultNarratorModel
	}
	return &Narrator{apiKey: apiKey, model: model}
}

// Rephrase asks the model to restate the answer in a friendly tone
// without changing its figures.
func (n *Narrator) Rephrase(ctx context.Context, question, answer string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(n.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(n.model)
	prompt := fmt.Sprintf(
		"You are an assistant for a business analytics service. The user asked: %q. "+
			"The analytics engine answered: %q. "+
			"Rewrite that answer in one or two friendly sentences without changing any numbers.",
		question, answer)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate narrative: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty narrative response")
	}
	return strings.TrimSpace(fmt.Sprint(resp.Candidates[0].Content.Parts[0])), nil
}
