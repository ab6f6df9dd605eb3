// Package scoring talks to the hosted lead-scoring gateway. The gateway speaks
// the OpenAI chat-completions dialect and returns scores through a forced tool
// call; everything it sends back is treated as untrusted and validated before
// use.
package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	scoringDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "studio",
		Subsystem: "scoring",
		Name:      "request_duration_seconds",
		Help:      "Duration of lead scoring requests",
	}, []string{"model"})

	scoringFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studio",
		Subsystem: "scoring",
		Name:      "failures_total",
		Help:      "Number of failed lead scoring requests",
	}, []string{"model", "reason"})
)

// The tool-call arguments are produced by a nondeterministic model, so they
// are schema-checked before anything is parsed out of them.
var scoresSchema = jsonschema.MustCompileString("scores.json", `{
	"type": "object",
	"required": ["scores"],
	"properties": {
		"scores": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "score"],
				"properties": {
					"id": {"type": "string"},
					"score": {"type": "number"},
					"reason": {"type": "string"}
				}
			}
		}
	}
}`)

// GatewayConfig defines configuration options for the gateway scorer.
type GatewayConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Gateway implements LeadScorer against the hosted scoring gateway.
type Gateway struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	tracer  trace.Tracer
	logger  zerolog.Logger
}

// NewGateway builds a gateway scorer using the provided configuration.
func NewGateway(cfg GatewayConfig) (*Gateway, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("scoring api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "google/gemini-3-flash-preview"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Gateway{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		tracer:  otel.Tracer("github.com/artneelam/studio-api/pkg/scoring"),
		logger:  cfg.Logger.With().Str("component", "scoring_gateway").Logger(),
	}, nil
}

// Score sends lead summaries to the gateway and returns the validated subset
// of scores. Results may omit input leads but never reference unknown ones.
func (g *Gateway) Score(parent context.Context, leads []LeadSummary) ([]LeadScore, error) {
	if len(leads) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(parent, g.timeout)
	defer cancel()

	ctx, span := g.tracer.Start(ctx, "scoring.score", trace.WithAttributes(
		attribute.String("model", g.model),
		attribute.Int("lead_count", len(leads)),
	))
	defer span.End()

	request := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: buildPrompt(leads),
		}},
		Tools: []openai.Tool{{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "return_scores",
				Description: "Return lead scores",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"scores": map[string]interface{}{
							"type": "array",
							"items": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"id":     map[string]interface{}{"type": "string"},
									"score":  map[string]interface{}{"type": "number"},
									"reason": map[string]interface{}{"type": "string"},
								},
								"required": []string{"id", "score", "reason"},
							},
						},
					},
					"required": []string{"scores"},
				},
			},
		}},
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: "return_scores"},
		},
	}

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, request)
	scoringDuration.WithLabelValues(g.model).Observe(time.Since(start).Seconds())
	if err != nil {
		mapped := mapAPIError(err)
		scoringFailures.WithLabelValues(g.model, failureReason(mapped)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, mapped
	}

	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.ToolCalls) == 0 {
		scoringFailures.WithLabelValues(g.model, "malformed").Inc()
		span.SetStatus(codes.Error, "no tool call returned")
		return nil, fmt.Errorf("%w: no tool call in reply", ErrUnavailable)
	}

	arguments := resp.Choices[0].Message.ToolCalls[0].Function.Arguments
	scores, err := parseScores(arguments, leads)
	if err != nil {
		scoringFailures.WithLabelValues(g.model, "malformed").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	g.logger.Info().Int("scored", len(scores)).Int("leads", len(leads)).Msg("lead scoring completed")

	return scores, nil
}

func buildPrompt(leads []LeadSummary) string {
	payload, _ := json.Marshal(leads)

	builder := strings.Builder{}
	builder.WriteString("You are a lead scoring AI for an art studio. Score each lead from 0-100 based on conversion likelihood.\n\n")
	builder.WriteString("Consider:\n")
	builder.WriteString("- Status: \"new\" = moderate, \"contacted\" = high interest, \"demo\" = very high, \"converted\" = 100, \"not-interested\" = 0\n")
	builder.WriteString("- Course: \"Professional\" = higher value, \"Advanced\" = medium, \"Basic\" = standard\n")
	builder.WriteString("- Source: \"Referral\" = highest quality, \"Walk-in\" = good, \"Website\"/\"Instagram\" = moderate\n")
	builder.WriteString("- Notes: Look for urgency signals, objections, interest level\n")
	builder.WriteString("- Follow-up date proximity: closer = more urgent\n\n")
	builder.WriteString("Leads data:\n")
	builder.Write(payload)
	return builder.String()
}

// parseScores validates the tool-call payload and keeps only scores that
// reference leads from the request, with values clamped to [0, 100].
func parseScores(arguments string, leads []LeadSummary) ([]LeadScore, error) {
	var raw interface{}
	if err := json.Unmarshal([]byte(arguments), &raw); err != nil {
		return nil, fmt.Errorf("%w: decode tool arguments: %v", ErrUnavailable, err)
	}
	if err := scoresSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: invalid scores payload: %v", ErrUnavailable, err)
	}

	var payload struct {
		Scores []struct {
			ID     string  `json:"id"`
			Score  float64 `json:"score"`
			Reason string  `json:"reason"`
		} `json:"scores"`
	}
	if err := json.Unmarshal([]byte(arguments), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode scores: %v", ErrUnavailable, err)
	}

	known := make(map[string]struct{}, len(leads))
	for _, lead := range leads {
		known[lead.ID] = struct{}{}
	}

	scores := make([]LeadScore, 0, len(payload.Scores))
	for _, item := range payload.Scores {
		if _, ok := known[item.ID]; !ok {
			continue
		}
		scores = append(scores, LeadScore{
			ID:     item.ID,
			Score:  clampScore(item.Score),
			Reason: item.Reason,
		})
	}
	return scores, nil
}

func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(math.Round(score))
}

func mapAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 429:
			return ErrRateLimited
		case 402:
			return ErrQuotaExhausted
		}
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrQuotaExhausted):
		return "quota"
	default:
		return "transport"
	}
}
