package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/S3b4sten/ShellOs-Sellers-2/internal/inventory"
)

const geminiModel = "gemini-3-flash-preview"

// Gemini pricing (per million tokens)
const (
	geminiInputPricePerMillion  = 0.50
	geminiOutputPricePerMillion = 3.00
)

const systemDirective = "You are a helpful, concise, and intelligent AI assistant embedded in a futuristic, organic-tech dashboard. Keep responses brief, insightful, and professional."

var extractionPrompt = strings.TrimSpace(dedent.Dedent(`
	Analyze this product image for an inventory system.

	MANDATORY FIELDS:
	1. Title: A clear, catchy name.
	2. Description: A persuasive description of the item.
	3. Condition: The physical state of the item (e.g., "New", "Like New", "Good", "Fair", "Vintage").
	4. Category: The general classification.
	5. Price: Estimated value in USD.

	DYNAMIC ATTRIBUTES:
	Based on the category, generate 3 to 6 specific technical attributes (key-value pairs) EXCLUDING condition.
	- If Clothing: Material, Size, Color, Brand.
	- If Electronics: Model, Specs, Battery, Ports.
	- If Furniture: Dimensions, Material, Style.
`))

// listingDraftSchema constrains the vision response so the reply is
// machine-parseable rather than conversational.
var listingDraftSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":       {Type: genai.TypeString},
		"description": {Type: genai.TypeString},
		"condition":   {Type: genai.TypeString, Description: "Physical state of the item (New, Used, etc.)"},
		"price":       {Type: genai.TypeNumber},
		"category":    {Type: genai.TypeString},
		"attributes": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"key":   {Type: genai.TypeString},
					"value": {Type: genai.TypeString},
				},
			},
		},
	},
	Required: []string{"title", "description", "condition", "price", "category", "attributes"},
}

// GeminiGateway implements Gateway against Google's Gemini API.
type GeminiGateway struct {
	client *genai.Client
}

// NewGeminiGateway creates a Gemini-backed gateway. It uses the
// GEMINI_API_KEY environment variable for authentication.
func NewGeminiGateway(ctx context.Context) (*GeminiGateway, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGateway{client: client}, nil
}

// Converse sends the prompt with the fixed assistant persona and returns the
// model's reply. It never fails: any error degrades to a fallback string.
func (g *GeminiGateway) Converse(ctx context.Context, prompt string) string {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromParts(
			[]*genai.Part{genai.NewPartFromText(systemDirective)}, genai.RoleUser,
		),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, config)
	if err != nil {
		log.Error().Err(err).Msg("chat llm call failed")
		return ErrorReply
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		log.Error().Msg("chat llm call returned no candidates")
		return ErrorReply
	}

	logUsage(result, "chat llm call")

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return EmptyReply
	}
	return text
}

// ExtractListing sends the image with the extraction instruction and a
// structured-output schema, and parses the typed draft. Unlike Converse,
// failures propagate so the workflow can abandon the scan.
func (g *GeminiGateway) ExtractListing(ctx context.Context, image []byte, mimeType string) (*ListingDraft, error) {
	parts := []*genai.Part{
		{InlineData: &genai.Blob{Data: image, MIMEType: mimeType}},
		genai.NewPartFromText(extractionPrompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   listingDraftSchema,
	}

	result, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from Gemini")
	}

	logUsage(result, "vision llm call")

	return ParseListingDraft(result.Text())
}

// listingDraftWire mirrors ListingDraft for decoding. Price is a pointer so
// an absent field is distinguishable from an explicit 0: 0 is a valid
// estimate, a missing price is an extraction failure.
type listingDraftWire struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Condition   string                `json:"condition"`
	Price       *float64              `json:"price"`
	Category    string                `json:"category"`
	Attributes  []inventory.Attribute `json:"attributes"`
}

// ParseListingDraft parses and validates a structured extraction payload.
// A payload missing any required field is a failure, not a partial draft.
func ParseListingDraft(text string) (*ListingDraft, error) {
	jsonStr, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var wire listingDraftWire
	if err := json.Unmarshal([]byte(jsonStr), &wire); err != nil {
		return nil, fmt.Errorf("failed to parse listing JSON: %w (response: %s)", err, jsonStr)
	}
	if wire.Price == nil {
		return nil, fmt.Errorf("listing draft missing price")
	}

	draft := ListingDraft{
		Title:       wire.Title,
		Description: wire.Description,
		Condition:   wire.Condition,
		Price:       *wire.Price,
		Category:    wire.Category,
		Attributes:  wire.Attributes,
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return &draft, nil
}

// extractJSONObject extracts a JSON object from text that may contain
// markdown code blocks or other formatting.
func extractJSONObject(text string) (string, error) {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response: %s", text)
	}
	return text[start : end+1], nil
}

func logUsage(result *genai.GenerateContentResponse, msg string) {
	if result.UsageMetadata == nil {
		return
	}
	inputTokens := int64(result.UsageMetadata.PromptTokenCount)
	outputTokens := int64(result.UsageMetadata.CandidatesTokenCount)
	cost := float64(inputTokens)/1_000_000*geminiInputPricePerMillion +
		float64(outputTokens)/1_000_000*geminiOutputPricePerMillion
	log.Info().
		Str("model", geminiModel).
		Int64("inputTokens", inputTokens).
		Int64("outputTokens", outputTokens).
		Float64("costUSD", cost).
		Msg(msg)
}
