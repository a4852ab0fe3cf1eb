package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-scripture-lens/internal/config"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
)

// NewGenerator builds the [Generator] selected by cfg.Provider.
func NewGenerator(ctx context.Context, cfg config.Analyzer, logger *logger.Logger) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		return NewGeminiAdapter(ctx, cfg, nil, logger)
	case config.ProviderOpenAI:
		return NewOpenAIAdapter(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
