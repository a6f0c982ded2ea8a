package meal

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"smart-grocery-api/domain"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const DefaultSuggestionModel = "gpt-3.5-turbo"

const suggestionSystemPrompt = "You are a creative chef assistant. Always respond with valid JSON only, no markdown or extra text."

type (
	// SuggestionGenerator produces meal suggestions for a set of pantry
	// ingredients. Implementations may call an external model.
	SuggestionGenerator interface {
		Generate(ctx context.Context, ingredients []string, dietaryTags string, allergies string, additionalPreferences string) ([]domain.MealSuggestion, error)
	}

	openAIGenerator struct {
		client openai.Client
		model  string
	}
)

// NewOpenAIGenerator returns a generator backed by the OpenAI chat API.
// Pass an empty model to use DefaultSuggestionModel.
func NewOpenAIGenerator(apiKey string, model string) SuggestionGenerator {
	if model == "" {
		model = DefaultSuggestionModel
	}
	return &openAIGenerator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (g *openAIGenerator) Generate(ctx context.Context, ingredients []string, dietaryTags string, allergies string, additionalPreferences string) ([]domain.MealSuggestion, error) {
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(suggestionSystemPrompt),
			openai.UserMessage(buildSuggestionPrompt(ingredients, dietaryTags, allergies, additionalPreferences)),
		},
		MaxTokens:   openai.Int(1000),
		Temperature: openai.Float(0.8),
	})
	if err != nil {
		return nil, err
	}

	if len(completion.Choices) == 0 {
		return nil, domain.ErrSuggestionFailed
	}

	suggestions, err := parseSuggestionPayload(completion.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

func buildSuggestionPrompt(ingredients []string, dietaryTags string, allergies string, additionalPreferences string) string {
	if len(ingredients) > 15 {
		ingredients = ingredients[:15]
	}
	ingredientList := strings.Join(ingredients, ", ")

	var constraints []string
	if dietaryTags != "" {
		constraints = append(constraints, fmt.Sprintf("Dietary preferences: %s", dietaryTags))
	}
	if allergies != "" {
		constraints = append(constraints, fmt.Sprintf("Allergies to AVOID: %s", allergies))
	}
	if additionalPreferences != "" {
		constraints = append(constraints, fmt.Sprintf("Additional preferences: %s", additionalPreferences))
	}

	constraintsText := ""
	if len(constraints) > 0 {
		constraintsText = fmt.Sprintf("\n\nIMPORTANT CONSTRAINTS:\n%s", strings.Join(constraints, "\n"))
	}

	return fmt.Sprintf(`You are a helpful meal planning assistant. Based on these available ingredients, suggest 3 delicious meal ideas.

Available ingredients: %s
%s

For each meal, provide:
1. A creative, appetizing title
2. List of ingredients with SPECIFIC AMOUNTS and UNITS (e.g., "2 cups rice", "1 lb chicken", "3 cloves garlic")
3. Brief cooking instructions (3-4 sentences) - keep this SHORT for the preview
4. Detailed step-by-step instructions (numbered list, 5-8 steps) - for the full recipe
5. Estimated cook time
6. Difficulty level (Easy/Medium/Hard)
7. Number of servings (be specific, e.g., "2 servings" or "4 servings")
8. Optional cooking tips
9. Optional nutrition info (calories, protein, carbs, fat per serving)

IMPORTANT: For ingredients, provide an array of objects with "name", "amount", and "unit" fields. Amounts should be specific and measurable.

Respond ONLY with valid JSON in this exact format:
[
  {
    "title": "Meal Name",
    "ingredients": [
      {"name": "chicken breast", "amount": "1", "unit": "lb"},
      {"name": "rice", "amount": "2", "unit": "cups"},
      {"name": "garlic", "amount": "3", "unit": "cloves"}
    ],
    "instructions": "Brief 3-4 sentence summary for preview...",
    "detailed_steps": ["Step 1: ...", "Step 2: ...", "Step 3: ..."],
    "cook_time": "30 minutes",
    "difficulty": "Easy",
    "servings": "2 servings",
    "tips": "Optional cooking tip or variation",
    "nutrition": {
      "calories": "~350",
      "protein": "~25g",
      "carbs": "~40g",
      "fat": "~12g"
    }
  }
]`, ingredientList, constraintsText)
}

// parseSuggestionPayload decodes the model output, tolerating markdown code
// fences around the JSON body.
func parseSuggestionPayload(content string) ([]domain.MealSuggestion, error) {
	payload := strings.TrimSpace(content)
	if strings.HasPrefix(payload, "```") {
		payload = strings.ReplaceAll(payload, "```json", "")
		payload = strings.ReplaceAll(payload, "```", "")
		payload = strings.TrimSpace(payload)
	}

	var suggestions []domain.MealSuggestion
	if err := json.Unmarshal([]byte(payload), &suggestions); err != nil {
		return nil, domain.ErrMalformedAIPayload
	}
	if len(suggestions) == 0 {
		return nil, domain.ErrSuggestionFailed
	}
	return suggestions, nil
}
