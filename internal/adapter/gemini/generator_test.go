package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viralclip-ads/internal/config/configs"
	"viralclip-ads/internal/core/domain"
)

type fakeModel struct {
	resp   *genai.GenerateContentResponse
	err    error
	prompt string
}

func (f *fakeModel) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		if txt, ok := parts[0].(genai.Text); ok {
			f.prompt = string(txt)
		}
	}
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, genai.Text(p))
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

const djiJSON = `{"sponsorName":"DJI Mic 2","sponsorTagline":"Pro audio in your pocket","description":"Wireless sound for every take.","ctaText":"Shop Now","themeColor":"#111827"}`

func TestGenerate(t *testing.T) {
	model := &fakeModel{resp: textResponse(djiJSON[:40], djiJSON[40:])}
	g := &Generator{model: model}

	ad, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.GeneratedAd{
		SponsorName:    "DJI Mic 2",
		SponsorTagline: "Pro audio in your pocket",
		Description:    "Wireless sound for every take.",
		CTAText:        "Shop Now",
		ThemeColor:     "#111827",
	}, ad)
	assert.Equal(t, adPrompt, model.prompt)
}

func TestGenerateErrors(t *testing.T) {
	boom := errors.New("429 resource exhausted")

	cases := map[string]struct {
		model  *fakeModel
		target error
	}{
		"transport error": {model: &fakeModel{err: boom}, target: boom},
		"nil response":    {model: &fakeModel{}, target: ErrEmptyResponse},
		"no candidates":   {model: &fakeModel{resp: &genai.GenerateContentResponse{}}, target: ErrEmptyResponse},
		"blank text":      {model: &fakeModel{resp: textResponse("  ")}, target: ErrEmptyResponse},
		"missing field": {
			model:  &fakeModel{resp: textResponse(`{"sponsorName":"X","sponsorTagline":"Y","description":"Z","ctaText":"","themeColor":"#000000"}`)},
			target: domain.ErrInvalidAd,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := (&Generator{model: tc.model}).Generate(context.Background())
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestDecodeAd(t *testing.T) {
	ad, err := decodeAd("```json\n" + djiJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "DJI Mic 2", ad.SponsorName)

	_, err = decodeAd("Sure! Here is your ad.")
	assert.Error(t, err)
}

func TestNewGeneratorRequiresKey(t *testing.T) {
	_, err := NewGenerator(context.Background(), configs.Gemini{Model: "gemini-2.5-flash"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{Err: ErrMissingAPIKey}.Generate(context.Background())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestConfigureModelTemperature(t *testing.T) {
	zero := float32(0)
	model := &genai.GenerativeModel{}
	configureModel(model, configs.Gemini{Temperature: &zero})

	require.NotNil(t, model.Temperature)
	assert.Equal(t, float32(0), *model.Temperature)
	assert.Equal(t, "application/json", model.ResponseMIMEType)
	assert.NotNil(t, model.ResponseSchema)

	model = &genai.GenerativeModel{}
	configureModel(model, configs.Gemini{})
	assert.Nil(t, model.Temperature)
}

func TestAdSchemaRequiresAllFields(t *testing.T) {
	s := adSchema()
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, []string{"sponsorName", "sponsorTagline", "description", "ctaText", "themeColor"}, s.Required)
	for _, name := range s.Required {
		assert.Contains(t, s.Properties, name)
	}
}
