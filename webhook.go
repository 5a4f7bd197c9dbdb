package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// ToxicityScorer rates a message via an external scoring service.
// Scores map attribute names to values in [0,1].
type ToxicityScorer interface {
	Analyze(ctx context.Context, message string) (map[string]float64, error)
}

type webhookEntry struct {
	player  string
	message string
}

// WebhookLogger posts rejected messages and their toxicity scores to a
// Discord-compatible webhook. Posting is fully decoupled from the
// pipeline: enqueueing never blocks, overflow drops the entry and HTTP
// failures are logged and swallowed.
type WebhookLogger struct {
	url     string
	scorer  ToxicityScorer
	client  *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger

	ch   chan webhookEntry
	done chan struct{}
}

// NewWebhookLogger starts the posting worker. The scorer may be nil,
// in which case entries are posted without scores.
func NewWebhookLogger(url string, scorer ToxicityScorer, log zerolog.Logger) *WebhookLogger {
	w := &WebhookLogger{
		url:     url,
		scorer:  scorer,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 5),
		log:     log.With().Str("component", "webhook").Logger(),
		ch:      make(chan webhookEntry, 128),
		done:    make(chan struct{}),
	}

	go w.run()
	return w
}

// Log queues one rejected message for scoring and posting.
func (w *WebhookLogger) Log(player, message string) {
	select {
	case w.ch <- webhookEntry{player: player, message: message}:
	default:
		w.log.Warn().Msg("webhook queue full, entry dropped")
	}
}

// Stop drains the queue and stops the worker.
func (w *WebhookLogger) Stop() {
	close(w.ch)
	<-w.done
}

func (w *WebhookLogger) run() {
	defer close(w.done)

	for e := range w.ch {
		if err := w.post(e); err != nil {
			w.log.Warn().Err(err).Msg("webhook post failed")
		}
	}
}

func (w *WebhookLogger) post(e webhookEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := w.limiter.Wait(ctx); err != nil {
		return err
	}

	var scores map[string]float64
	if w.scorer != nil {
		var err error
		scores, err = w.scorer.Analyze(ctx, e.message)
		if err != nil {
			w.log.Warn().Err(err).Msg("toxicity scoring failed")
		}
	}

	payload, err := json.Marshal(webhookPayload(e, scores))
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook status %s", resp.Status)
	}

	return nil
}

func webhookPayload(e webhookEntry, scores map[string]float64) map[string]any {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	var scoreText strings.Builder
	for _, name := range names {
		fmt.Fprintf(&scoreText, "• %s: %.3f\n", strings.ToUpper(name), scores[name])
	}

	color := 0x43A047
	switch tox := scores["toxicity"]; {
	case tox >= 0.80:
		color = 0xE53935
	case tox >= 0.50:
		color = 0xFB8C00
	}

	return map[string]any{
		"embeds": []map[string]any{{
			"title":       "Toxicity Analysis",
			"description": "**Player:** " + e.player + "\n\n" + truncate(e.message, 1800),
			"color":       color,
			"fields": []map[string]any{{
				"name":   "Scores",
				"value":  strings.TrimSpace(scoreText.String()),
				"inline": false,
			}},
		}},
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}
