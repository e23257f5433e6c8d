// Package enrich fetches and normalizes phone records from the Gemini API.
// Every operation fails soft: a missing credential, transport error or
// malformed reply yields an empty or absent result, never an error the UI
// flow has to handle.
package enrich

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"phonedex/internal/catalog"
)

// Generator is the narrow surface the client needs from the remote model.
// Tests substitute a canned implementation.
type Generator interface {
	// GenerateJSON asks for a JSON-typed reply to the prompt.
	GenerateJSON(ctx context.Context, model, prompt string) (string, error)
	// GenerateText asks for a free-text reply.
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// NoKeyAdvice is shown instead of calling out when no credential is set.
const NoKeyAdvice = "API key not configured. Set GEMINI_API_KEY to use the assistant."

const (
	adviceUnavailable = "Sorry, I'm having trouble connecting to the server."
	adviceEmpty       = "I couldn't generate an answer at this time."
)

// Options tunes the client. Zero values fall back to the defaults below.
type Options struct {
	Model       string        // list/detail fetches
	AdviceModel string        // assistant answers
	ListTarget  int           // records asked for per list fetch
	ExcludeCap  int           // max names carried in the exclusion prompt
	Timeout     time.Duration // per-call ceiling when the ctx has no deadline
}

func (o Options) withDefaults() Options {
	if o.Model == "" {
		o.Model = "gemini-2.5-flash"
	}
	if o.AdviceModel == "" {
		o.AdviceModel = "gemini-3-flash-preview"
	}
	if o.ListTarget <= 0 {
		o.ListTarget = 12
	}
	if o.ExcludeCap <= 0 {
		o.ExcludeCap = 20
	}
	if o.Timeout <= 0 {
		o.Timeout = 90 * time.Second
	}
	return o
}

// Client resolves phone records and assistant answers from the remote
// generative source. A Client with no Generator (no credential) is valid
// and degrades to empty results.
type Client struct {
	gen  Generator
	opts Options
	log  *zap.Logger
}

// NewClient builds a client over the Gemini API. An empty apiKey yields a
// degraded client rather than an error; the caller keeps working offline.
func NewClient(ctx context.Context, apiKey string, opts Options, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Client{opts: opts.withDefaults(), log: log}
	if apiKey == "" {
		log.Info("no API key configured, enrichment disabled")
		return c
	}
	gen, err := newGenAIGenerator(ctx, apiKey)
	if err != nil {
		log.Warn("failed to create genai client, enrichment disabled", zap.Error(err))
		return c
	}
	c.gen = gen
	return c
}

// NewClientWithGenerator wires an explicit Generator. Used by tests and by
// callers that manage the genai client themselves.
func NewClientWithGenerator(gen Generator, opts Options, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{gen: gen, opts: opts.withDefaults(), log: log}
}

// Enabled reports whether a remote generator is configured.
func (c *Client) Enabled() bool { return c.gen != nil }

func (c *Client) scoped(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, has := ctx.Deadline(); has {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.opts.Timeout)
}

// FetchByQuery resolves one fully-detailed record for a free-text query.
// Returns nil on any failure or when no generator is configured.
func (c *Client) FetchByQuery(ctx context.Context, query string) *catalog.Phone {
	if c.gen == nil {
		return nil
	}
	ctx, cancel := c.scoped(ctx)
	defer cancel()

	start := time.Now()
	text, err := c.gen.GenerateJSON(ctx, c.opts.Model, detailPrompt(query))
	if err != nil {
		c.log.Warn("detail fetch failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	raw, ok := decodeOne(text)
	if !ok {
		c.log.Warn("detail fetch returned malformed payload", zap.String("query", query))
		return nil
	}
	phone, ok := raw.Normalize()
	if !ok {
		return nil
	}
	c.log.Debug("detail fetched",
		zap.String("query", query),
		zap.String("id", phone.ID),
		zap.Duration("took", time.Since(start)))
	return &phone
}

// FetchByBrandOrTopic resolves a bounded list of records for a brand name
// or a canned category phrase. Empty on any failure.
func (c *Client) FetchByBrandOrTopic(ctx context.Context, topic string) []catalog.Phone {
	if c.gen == nil {
		return nil
	}
	ctx, cancel := c.scoped(ctx)
	defer cancel()

	text, err := c.gen.GenerateJSON(ctx, c.opts.Model, brandPrompt(topic, c.opts.ListTarget))
	if err != nil {
		c.log.Warn("brand fetch failed", zap.String("topic", topic), zap.Error(err))
		return nil
	}
	return c.decodeList(text, topic)
}

// FetchMorePopular resolves records disjoint from the exclusion list, which
// is capped to its first ExcludeCap names. Empty on any failure.
func (c *Client) FetchMorePopular(ctx context.Context, excludeNames []string) []catalog.Phone {
	if c.gen == nil {
		return nil
	}
	ctx, cancel := c.scoped(ctx)
	defer cancel()

	if len(excludeNames) > c.opts.ExcludeCap {
		excludeNames = excludeNames[:c.opts.ExcludeCap]
	}
	text, err := c.gen.GenerateJSON(ctx, c.opts.Model, morePopularPrompt(excludeNames, c.opts.ListTarget))
	if err != nil {
		c.log.Warn("popular fetch failed", zap.Error(err))
		return nil
	}
	return c.decodeList(text, "popular")
}

// Advice answers a free-text question. The reply is displayed as-is; all
// failure modes collapse to a fixed message.
func (c *Client) Advice(ctx context.Context, question string) string {
	if c.gen == nil {
		return NoKeyAdvice
	}
	ctx, cancel := c.scoped(ctx)
	defer cancel()

	text, err := c.gen.GenerateText(ctx, c.opts.AdviceModel, advicePrompt(question))
	if err != nil {
		c.log.Warn("advice call failed", zap.Error(err))
		return adviceUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return adviceEmpty
	}
	return text
}

func (c *Client) decodeList(text, topic string) []catalog.Phone {
	raws, ok := decodeMany(text)
	if !ok {
		c.log.Warn("list fetch returned malformed payload", zap.String("topic", topic))
		return nil
	}
	phones := make([]catalog.Phone, 0, len(raws))
	for _, raw := range raws {
		if p, ok := raw.Normalize(); ok {
			phones = append(phones, p)
		}
	}
	if len(phones) > c.opts.ListTarget {
		phones = phones[:c.opts.ListTarget]
	}
	return phones
}

// stripFences removes a markdown code fence wrapper some replies carry even
// with a JSON response mime type requested.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func decodeOne(text string) (remotePhone, bool) {
	text = stripFences(text)
	var raw remotePhone
	if err := json.Unmarshal([]byte(text), &raw); err == nil {
		return raw, true
	}
	// Some models answer a single-record request with a one-element array.
	var raws []remotePhone
	if err := json.Unmarshal([]byte(text), &raws); err == nil && len(raws) > 0 {
		return raws[0], true
	}
	return remotePhone{}, false
}

func decodeMany(text string) ([]remotePhone, bool) {
	text = stripFences(text)
	var raws []remotePhone
	if err := json.Unmarshal([]byte(text), &raws); err == nil {
		return raws, true
	}
	var raw remotePhone
	if err := json.Unmarshal([]byte(text), &raw); err == nil {
		return []remotePhone{raw}, true
	}
	return nil, false
}

// genaiGenerator backs Generator with google.golang.org/genai.
type genaiGenerator struct {
	client *genai.Client
}

func newGenAIGenerator(ctx context.Context, apiKey string) (*genaiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &genaiGenerator{client: client}, nil
}

func (g *genaiGenerator) GenerateJSON(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func (g *genaiGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
