package connector

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownProvider is returned when no connector handles a provider name.
var ErrUnknownProvider = errors.New("unknown datasource provider")

// Connector represents a database connector.
type Connector interface {
	Name() string
	ProviderName() string
	IsProvider(name string) bool
	HasCapability(capability Capability) bool
	Capabilities() Capabilities
	ConstraintViolationScopes() []ConstraintScope
	MaxIdentifierLength() int
}

// BaseConnector is a table-driven Connector.
type BaseConnector struct {
	name                string
	providers           []string
	capabilities        Capabilities
	scopes              []ConstraintScope
	maxIdentifierLength int
}

// NewBaseConnector creates a connector. The first provider is the canonical one.
func NewBaseConnector(name string, providers []string, caps Capabilities, scopes []ConstraintScope, maxIdentifierLength int) *BaseConnector {
	return &BaseConnector{
		name:                name,
		providers:           providers,
		capabilities:        caps,
		scopes:              scopes,
		maxIdentifierLength: maxIdentifierLength,
	}
}

// Name returns the display name.
func (c *BaseConnector) Name() string { return c.name }

// ProviderName returns the canonical provider name.
func (c *BaseConnector) ProviderName() string { return c.providers[0] }

// IsProvider reports whether name selects this connector.
func (c *BaseConnector) IsProvider(name string) bool {
	for _, p := range c.providers {
		if strings.EqualFold(p, name) {
			return true
		}
	}
	return false
}

// HasCapability checks if the connector has a specific capability.
func (c *BaseConnector) HasCapability(capability Capability) bool {
	return c.capabilities.Has(capability)
}

// Capabilities returns the full capability set.
func (c *BaseConnector) Capabilities() Capabilities { return c.capabilities }

// ConstraintViolationScopes returns the naming namespaces of this connector.
func (c *BaseConnector) ConstraintViolationScopes() []ConstraintScope { return c.scopes }

// MaxIdentifierLength returns the longest identifier the database accepts.
func (c *BaseConnector) MaxIdentifierLength() int { return c.maxIdentifierLength }

type overridden struct {
	Connector
	caps Capabilities
}

// WithCapabilities wraps c so that it reports caps instead of its own capabilities.
func WithCapabilities(c Connector, caps Capabilities) Connector {
	if o, ok := c.(overridden); ok {
		c = o.Connector
	}
	return overridden{Connector: c, caps: caps}
}

func (o overridden) HasCapability(capability Capability) bool { return o.caps.Has(capability) }

func (o overridden) Capabilities() Capabilities { return o.caps }

// Registry resolves provider names to connectors.
type Registry struct {
	connectors []Connector
}

// NewRegistry creates a registry holding the given connectors.
func NewRegistry(connectors ...Connector) *Registry {
	return &Registry{connectors: connectors}
}

// Register adds a connector. Later registrations do not shadow earlier ones.
func (r *Registry) Register(c Connector) {
	r.connectors = append(r.connectors, c)
}

// Lookup returns the connector for a provider name.
func (r *Registry) Lookup(provider string) (Connector, error) {
	for _, c := range r.connectors {
		if c.IsProvider(provider) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
}

// All returns the registered connectors in registration order.
func (r *Registry) All() []Connector {
	return r.connectors
}

// Providers returns the canonical provider names in registration order.
func (r *Registry) Providers() []string {
	out := make([]string, len(r.connectors))
	for i, c := range r.connectors {
		out[i] = c.ProviderName()
	}
	return out
}
