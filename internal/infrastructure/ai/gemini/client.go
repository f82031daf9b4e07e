package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/domain/path"
	"career-compass/internal/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// pathsPerCategory is fixed by the prompt; the response is rejected
// only when it contains no parseable paths at all, since the model
// occasionally miscounts.
const pathsPerCategory = 5

// Generator produces career-path suggestions via the Gemini API.
type Generator struct {
	client    *genai.Client
	modelName string
	logger    logger.Logger
}

func NewGenerator(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) (*Generator, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if log == nil {
		log = logger.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	return &Generator{client: client, modelName: model, logger: log}, nil
}

func (g *Generator) GenerateCareerPaths(ctx context.Context, in path.GenerationInput) ([]path.CareerPath, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("gemini generator is not initialized")
	}
	if strings.TrimSpace(in.CurrentRole) == "" {
		return nil, errors.New("current role is required")
	}

	prompt := buildPrompt(in)

	g.logger.Debug("gemini career path request",
		zap.String("model", g.modelName),
		zap.String("role", in.CurrentRole),
		zap.Int("prompt_length", len(prompt)))

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := collectText(resp)
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("gemini returned an empty response")
	}

	paths, err := parseCareerPaths(raw)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("gemini career path response", zap.Int("count", len(paths)))
	return paths, nil
}

func buildPrompt(in path.GenerationInput) string {
	var b strings.Builder
	b.WriteString("You are a career exploration expert. Combine the person's professional skills with their personal interests.\n\n")
	b.WriteString("Professional background:\n")
	b.WriteString("- Current role: " + in.CurrentRole + "\n")
	b.WriteString("- Skills: " + listOrNotSpecified(in.Skills) + "\n")
	b.WriteString("- Tasks: " + listOrNotSpecified(in.Tasks) + "\n")
	b.WriteString("- Interests: " + listOrNotSpecified(in.Interests) + "\n\n")
	fmt.Fprintf(&b, "Generate exactly %d career paths as a JSON array: %d \"related\", %d \"stretch\" and %d \"unexpected\". ",
		3*pathsPerCategory, pathsPerCategory, pathsPerCategory, pathsPerCategory)
	b.WriteString("Never suggest founder or entrepreneur roles. ")
	b.WriteString("Each element must have the fields: role, category, matchScore (70-100), reasoning, overview, salaryRange, typicalDegree, sweetSpots (array of {skill, explanation}), timeToTransition, difficulty (easy|moderate|challenging), icon. ")
	b.WriteString("Return ONLY valid JSON.")
	return b.String()
}

func listOrNotSpecified(items []string) string {
	cleaned := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return "Not specified"
	}
	return strings.Join(cleaned, ", ")
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" {
				b.WriteString(part.Text)
			}
		}
	}
	return b.String()
}

func parseCareerPaths(raw string) ([]path.CareerPath, error) {
	cleaned := extractJSON(raw)

	var paths []path.CareerPath
	if err := json.Unmarshal([]byte(cleaned), &paths); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("gemini response contained no career paths")
	}
	return paths, nil
}

// extractJSON strips markdown code fences the model tends to wrap the
// payload in.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
