package shortcode

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// Service replaces [portfolio] shortcodes with rendered galleries.
type Service struct {
	gallery interfaces.GalleryService
	parser  *Parser
	logger  interfaces.Logger
}

// ServiceOption customises service behaviour.
type ServiceOption func(*Service)

// WithLogger attaches a logger used for structured diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs a shortcode service over the gallery renderer.
func NewService(gallery interfaces.GalleryService, opts ...ServiceOption) *Service {
	s := &Service{
		gallery: gallery,
		parser:  NewParser(),
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process renders every [portfolio] occurrence in the content and returns the
// expanded document plus the union of client capabilities the galleries
// declared. Content without shortcodes passes through untouched. A render
// failure aborts the whole pass; partial expansion is worse than an error.
func (s *Service) Process(ctx context.Context, content string) (string, []interfaces.ClientCapability, error) {
	invocations := s.parser.Parse(content)
	if len(invocations) == 0 {
		return content, nil, nil
	}

	logger := logging.WithFields(s.logger, map[string]any{
		"operation": "shortcode.process",
	})

	seen := map[interfaces.ClientCapability]bool{}
	var capabilities []interfaces.ClientCapability

	output := content
	for idx, invocation := range invocations {
		start := time.Now()
		result, err := s.gallery.Render(ctx, invocation.Params)
		if err != nil {
			logger.Error("shortcode.render_failed", "index", idx, "error", err)
			return "", nil, err
		}
		logger.Debug("shortcode.render_succeeded",
			"index", idx,
			"duration_ms", time.Since(start).Milliseconds(),
		)

		output = strings.Replace(output, invocation.Raw, string(result.HTML), 1)
		for _, capability := range result.Capabilities {
			if !seen[capability] {
				seen[capability] = true
				capabilities = append(capabilities, capability)
			}
		}
	}

	return output, capabilities, nil
}

// Ensure Service implements interfaces.ShortcodeService.
var _ interfaces.ShortcodeService = (*Service)(nil)
