package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"viralclip-ads/internal/config/configs"
	"viralclip-ads/internal/core/domain"
)

var (
	// ErrMissingAPIKey is returned when no Gemini API key is configured.
	ErrMissingAPIKey = errors.New("gemini api key not configured")
	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("empty response from gemini")
)

const adPrompt = `You are an affiliate marketing copywriter for a tool used by YouTube Shorts and TikTok creators.
Invent one sponsored ad for a real, currently sold product that short-form video creators would buy
(microphones, cameras, lights, gimbals, editing software, storage).

Return:
- sponsorName: the product name.
- sponsorTagline: a short marketing hook, at most 6 words.
- description: 1-2 persuasive sentences aimed at creators.
- ctaText: a call-to-action button label, at most 4 words.
- themeColor: a dark hex color like #1e293b that suits the brand, used as a background gradient.`

// contentModel is the part of *genai.GenerativeModel the generator uses.
type contentModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Generator implements port.AdGenerator with a Gemini model constrained to
// a JSON response schema.
type Generator struct {
	client *genai.Client
	model  contentModel
}

// NewGenerator creates a Gemini client for the configured model. The
// caller must Close the generator.
func NewGenerator(ctx context.Context, cfg configs.Gemini) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.Model)
	configureModel(model, cfg)
	return &Generator{client: client, model: model}, nil
}

// configureModel constrains the model to the ad JSON schema and applies the
// configured temperature.
func configureModel(model *genai.GenerativeModel, cfg configs.Gemini) {
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = adSchema()
	if cfg.Temperature != nil {
		model.SetTemperature(*cfg.Temperature)
	}
}

// Generate asks the model for a new ad creative.
func (g *Generator) Generate(ctx context.Context) (domain.GeneratedAd, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(adPrompt))
	if err != nil {
		return domain.GeneratedAd{}, fmt.Errorf("gemini generate: %w", err)
	}
	text, err := responseText(resp)
	if err != nil {
		return domain.GeneratedAd{}, err
	}
	return decodeAd(text)
}

// Close releases the underlying client.
func (g *Generator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func adSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"sponsorName":    {Type: genai.TypeString, Description: "Name of the sponsored product"},
			"sponsorTagline": {Type: genai.TypeString, Description: "Short marketing hook"},
			"description":    {Type: genai.TypeString, Description: "1-2 persuasive sentences"},
			"ctaText":        {Type: genai.TypeString, Description: "Call-to-action label"},
			"themeColor":     {Type: genai.TypeString, Description: "Hex color such as #1e293b"},
		},
		Required: []string{"sponsorName", "sponsorTagline", "description", "ctaText", "themeColor"},
	}
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

// decodeAd parses the model output. Markdown code fences are tolerated.
func decodeAd(text string) (domain.GeneratedAd, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var ad domain.GeneratedAd
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &ad); err != nil {
		return domain.GeneratedAd{}, fmt.Errorf("decode gemini ad: %w", err)
	}
	ad.SponsorName = strings.TrimSpace(ad.SponsorName)
	ad.SponsorTagline = strings.TrimSpace(ad.SponsorTagline)
	ad.Description = strings.TrimSpace(ad.Description)
	ad.CTAText = strings.TrimSpace(ad.CTAText)
	ad.ThemeColor = strings.TrimSpace(ad.ThemeColor)
	if err := ad.Validate(); err != nil {
		return domain.GeneratedAd{}, err
	}
	return ad, nil
}
