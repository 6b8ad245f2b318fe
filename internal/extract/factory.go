package extract

import (
	"fmt"

	"rentintel/internal/config"
	"rentintel/internal/port"
)

// ProviderFactory creates an EvidenceExtractor from a provider config.
type ProviderFactory func(cfg *config.ExtractorProviderConfig) (port.EvidenceExtractor, error)

// registry of extractor provider factories, populated via RegisterProvider
// in each provider package's wiring.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an extractor provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewExtractor creates an EvidenceExtractor from a provider config using the
// registered factory.
func NewExtractor(cfg *config.ExtractorProviderConfig) (port.EvidenceExtractor, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown extractor provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
