package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var (
	ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
	ErrEmptyModelResponse  = errors.New("gemini returned empty text")
)

const defaultModelName = "gemini-2.5-flash"

// Config carries the analyzer settings resolved from the environment.
// MockMode swaps the network client for deterministic canned responses,
// useful for local runs without credentials.
type Config struct {
	APIKey   string
	Model    string
	MockMode bool
}

// GeminiAnalyzer implements the AI collaborator against the Gemini
// generateContent API with a JSON response schema. It only reports
// failures; fallback substitution happens in the use cases.

type GeminiAnalyzer struct {
	client   *genai.Client
	model    string
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IAgreementAnalyzer = (*GeminiAnalyzer)(nil)

func NewGeminiAnalyzer(ctx context.Context, cfg Config, log *zap.Logger) (*GeminiAnalyzer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	model := cfg.Model
	if model == "" {
		model = defaultModelName
	}

	if cfg.MockMode {
		log.Info("gemini analyzer mock mode enabled")
		return &GeminiAnalyzer{model: model, mockMode: true, log: log}, nil
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	log.Info("gemini analyzer initialized", zap.String("model", model))

	return &GeminiAnalyzer{client: client, model: model, log: log}, nil
}

func (g *GeminiAnalyzer) AnalyzeAgreement(ctx context.Context, notes string) (entities.AgreementAnalysis, error) {
	if g.mockMode {
		return mockAnalysis(notes), nil
	}

	prompt := fmt.Sprintf(
		"Analiza estas notas de una reunión con un cliente y extrae los acuerdos clave para trazabilidad: %q", notes)

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary":     {Type: genai.TypeString},
			"keyPoints":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"actionItems": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"summary", "keyPoints"},
	}

	var analysis entities.AgreementAnalysis
	if err := g.generateJSON(ctx, prompt, schema, &analysis); err != nil {
		return entities.AgreementAnalysis{}, err
	}
	return analysis, nil
}

func (g *GeminiAnalyzer) FetchDailyInfo(ctx context.Context) (entities.DailyInfo, error) {
	if g.mockMode {
		return mockDailyInfo(), nil
	}

	prompt := "Genera la información del día para Chile: 1. El Evangelio del día (breve). " +
		"2. Tres efemérides importantes de Chile y el mundo. 3. El Santoral del día."

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"evangelio":  {Type: genai.TypeString},
			"efemerides": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"santoral":   {Type: genai.TypeString},
		},
	}

	var info entities.DailyInfo
	if err := g.generateJSON(ctx, prompt, schema, &info); err != nil {
		return entities.DailyInfo{}, err
	}
	return info, nil
}

// generateJSON runs one schema-constrained generateContent call and decodes
// the text response into out. Any response that does not parse as the
// schema is a failure; there are no retries here.
func (g *GeminiAnalyzer) generateJSON(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return fmt.Errorf("gemini generate content: %w", err)
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		return ErrEmptyModelResponse
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("gemini response does not match schema: %w", err)
	}
	return nil
}

func mockAnalysis(notes string) entities.AgreementAnalysis {
	summary := strings.TrimSpace(notes)
	if len(summary) > 120 {
		summary = summary[:120] + "…"
	}
	return entities.AgreementAnalysis{
		Summary:   "Resumen (mock): " + summary,
		KeyPoints: []string{"acuerdo registrado en modo local"},
	}
}

func mockDailyInfo() entities.DailyInfo {
	return entities.DailyInfo{
		Evangelio:  "Evangelio del día (mock).",
		Efemerides: []string{"Efeméride local de prueba."},
		Santoral:   "Santoral (mock)",
	}
}
