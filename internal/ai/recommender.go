package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"bluegold-store/internal/core"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
	"github.com/rs/zerolog/log"
)

// RecommenderService turns a free-text shopper query plus the catalog into a
// Recommendation. It is total: every call yields a result, never an error.
// Failures degrade into an empty id list with a localized explanation.
type RecommenderService interface {
	Recommend(ctx context.Context, query string, inventory []core.Product, locale core.Locale) core.Recommendation
}

// responder performs the single request/response exchange with the model
// endpoint. Split out so tests can stub the transport.
type responder interface {
	respond(ctx context.Context, params responses.ResponseNewParams) (string, error)
}

type openaiResponder struct {
	client *openai.Client
}

func (o openaiResponder) respond(ctx context.Context, params responses.ResponseNewParams) (string, error) {
	resp, err := o.client.Responses.New(ctx, params)
	if err != nil {
		return "", err
	}
	return resp.OutputText(), nil
}

// Recommender grounds each query on the full inventory and constrains the
// model's reply to a strict JSON schema. Each call is an independent
// request/response exchange: no streaming, no retries, no conversation memory.
type Recommender struct {
	responder responder
	model     string
}

// NewRecommender builds a Recommender. An empty apiKey leaves the client
// unconfigured: Recommend then degrades locally without attempting a call.
func NewRecommender(apiKey, model string) *Recommender {
	if apiKey == "" {
		return &Recommender{model: model}
	}
	client := openai.NewClient(option.WithAPIKey(apiKey), option.WithMaxRetries(0))
	return &Recommender{responder: openaiResponder{client: &client}, model: model}
}

// groundingItem is one inventory entry as shown to the model: the localized
// projection of a Product, with its grounding tags.
type groundingItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
}

func (a *Recommender) Recommend(ctx context.Context, query string, inventory []core.Product, locale core.Locale) core.Recommendation {
	if a.responder == nil {
		log.Warn().Msg("recommendation requested without a configured model credential")
		return core.Recommendation{ProductIDs: []int{}, Reasoning: core.Resolve("ai_unavailable", locale)}
	}

	prompt, err := buildPrompt(query, inventory, locale)
	if err != nil {
		log.Error().Err(err).Msg("failed to build recommendation prompt")
		return degraded(locale)
	}

	schemaMap, err := recommendationSchema()
	if err != nil {
		log.Error().Err(err).Msg("failed to build recommendation schema")
		return degraded(locale)
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(a.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        "product_recommendation",
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt("Recommended product ids with a short localized explanation"),
				},
			},
		},
	}

	content, err := a.responder.respond(ctx, params)
	if err != nil {
		log.Error().Err(err).Str("locale", string(locale)).Msg("recommendation exchange failed")
		return degraded(locale)
	}
	if content == "" {
		log.Error().Str("locale", string(locale)).Msg("recommendation model returned an empty body")
		return degraded(locale)
	}

	var rec core.Recommendation
	if err := json.Unmarshal([]byte(content), &rec); err != nil {
		log.Error().Err(err).Msg("recommendation model returned malformed output")
		return degraded(locale)
	}

	rec.Normalize()
	return rec
}

// degraded is the generic apology result for failed exchanges.
func degraded(locale core.Locale) core.Recommendation {
	return core.Recommendation{ProductIDs: []int{}, Reasoning: core.Resolve("ai_error", locale)}
}

// buildPrompt serializes the grounding document and the shopper's query into a
// single natural-language instruction.
func buildPrompt(query string, inventory []core.Product, locale core.Locale) (string, error) {
	items := make([]groundingItem, 0, len(inventory))
	for _, p := range inventory {
		items = append(items, groundingItem{
			ID:          p.ID,
			Name:        p.Name(locale),
			Description: p.Description(locale),
			Tags:        p.Tags(),
		})
	}
	doc, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to marshal grounding document: %w", err)
	}

	languageName := "English"
	if locale == core.LocaleHebrew {
		languageName = "Hebrew"
	}

	return fmt.Sprintf(`You are a helpful sales assistant for an Israeli goods store named "Blue & Gold".

User Query: %q

Current Inventory:
%s

Task:
1. Analyze the user's query.
2. Select suitable products from the inventory. Use only ids that appear in it.
3. Provide a short, friendly explanation in %s of why these fit.`, query, doc, languageName), nil
}

// recommendationSchema reflects core.Recommendation into the JSON schema sent
// with each request.
func recommendationSchema() (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schemaJSON, err := json.Marshal(reflector.Reflect(core.Recommendation{}))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}
	return schemaMap, nil
}
