package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/dmitrijs2005/lumina/internal/client/client"
	"github.com/dmitrijs2005/lumina/internal/client/metrics"
	"github.com/dmitrijs2005/lumina/internal/client/models"
	"github.com/dmitrijs2005/lumina/internal/logging"
)

var errMissingMessage = errors.New("response has no message")

// InsightService produces a short personalised insight for a user.
// Generate never fails: any provider or decoding problem yields
// models.FallbackInsight.
type InsightService interface {
	Generate(ctx context.Context, user *models.User, category models.Category) models.Insight
}

type insightService struct {
	gen     client.Generator
	model   string
	log     logging.Logger
	metrics *metrics.Metrics
}

func NewInsightService(gen client.Generator, model string, log logging.Logger, m *metrics.Metrics) InsightService {
	if model == "" {
		model = client.DefaultModel
	}
	return &insightService{
		gen:     gen,
		model:   model,
		log:     log.With("component", "insight"),
		metrics: m,
	}
}

// insightSchema is the structured-output contract sent with every request.
var insightSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"message": {Type: genai.TypeString},
		"author": {
			Type:        genai.TypeString,
			Description: "If it is a quote, provide the author, otherwise leave empty or put 'AI Assistant'",
		},
	},
	Required: []string{"message"},
}

func (s *insightService) Generate(ctx context.Context, user *models.User, category models.Category) (insight models.Insight) {
	defer func() {
		if r := recover(); r != nil {
			insight = s.fallback(ctx, category, fmt.Errorf("generator panicked: %v", r))
		}
	}()

	text, err := s.gen.Generate(ctx, client.GenerateRequest{
		Model:  s.model,
		Prompt: BuildPrompt(user, category),
		Schema: insightSchema,
	})
	if err != nil {
		return s.fallback(ctx, category, err)
	}

	insight, err = parseInsight(text)
	if err != nil {
		return s.fallback(ctx, category, err)
	}

	s.metrics.ObserveInsight(string(category), metrics.OutcomeSuccess)
	return insight
}

func (s *insightService) fallback(ctx context.Context, category models.Category, err error) models.Insight {
	s.log.Warn(ctx, "insight generation failed, using fallback", "category", string(category), "error", err)
	s.metrics.ObserveInsight(string(category), metrics.OutcomeFallback)
	return models.FallbackInsight()
}

// BuildPrompt renders the generation prompt for user and category. A nil
// user renders with an empty name and no interests.
func BuildPrompt(user *models.User, category models.Category) string {
	var name string
	var interests []string
	if user != nil {
		name = user.Name
		interests = user.Interests
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a short, single-sentence personalized %s message for a user named %s.\n",
		strings.ToLower(string(category)), name)
	fmt.Fprintf(&b, "Their interests are: %s.\n", strings.Join(interests, ", "))
	b.WriteString("Be concise, inspiring, and professional.")
	return b.String()
}

func parseInsight(text string) (models.Insight, error) {
	var raw struct {
		Message *string `json:"message"`
		Author  *string `json:"author"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return models.Insight{}, fmt.Errorf("failed to decode insight: %w", err)
	}
	if raw.Message == nil || strings.TrimSpace(*raw.Message) == "" {
		return models.Insight{}, errMissingMessage
	}

	insight := models.Insight{Message: *raw.Message}
	if raw.Author != nil {
		insight.Author = *raw.Author
	}
	return insight, nil
}
