// Package events publishes analysis lifecycle notifications over NATS for
// downstream consumers (card renderer, notifier).
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// SubjectAnalysisCompleted announces a finished battle analysis.
const SubjectAnalysisCompleted = "duelo.analysis.completed"

// CategoryOutcome is the per-category slice of an AnalysisCompleted event.
type CategoryOutcome struct {
	Category   string `json:"category"`
	Winner     string `json:"winner"`
	Confidence int    `json:"confidence"`
}

// AnalysisCompleted is the payload for SubjectAnalysisCompleted.
type AnalysisCompleted struct {
	AnalysisID   string            `json:"analysis_id"`
	Participants []string          `json:"participants"`
	Outcomes     []CategoryOutcome `json:"outcomes"`
	CompletedAt  string            `json:"completed_at"`
}

type Client struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewClient(url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

func (c *Client) Close() {
	c.conn.Close()
}
