package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingProvider logs every request with its purpose, latency, token
// usage and estimated cost.
type LoggingProvider struct {
	inner    Provider
	provider string
	log      logrus.FieldLogger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, provider string, log logrus.FieldLogger) Provider {
	return &LoggingProvider{inner: p, provider: provider, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := logrus.Fields{
		"provider":   l.provider,
		"model":      l.inner.ModelID(),
		"purpose":    string(PurposeOf(ctx)),
		"latency_ms": time.Since(start).Milliseconds(),
	}
	if req.Schema != nil {
		fields["schema"] = req.Schema.Name
	}
	if resp != nil {
		fields["model"] = resp.Model
		fields["input_tokens"] = resp.Usage.InputTokens
		fields["output_tokens"] = resp.Usage.OutputTokens
		if c := LookupCost(resp.Model); c != nil {
			fields["cost_usd"] = c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}

	entry := l.log.WithFields(fields)
	if err != nil {
		entry.WithError(err).Warn("llm request failed")
	} else {
		entry.Info("llm request")
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
