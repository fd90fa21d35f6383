package gridmap

import (
	"errors"
	"fmt"
)

// ErrNotRegistered is returned when a translator is looked up by an
// identity that was never associated with a host.
var ErrNotRegistered = errors.New("record translator not registered")

// Host is what the registry needs from a grid instance: the hook boundary
// plus a stable identifier. Identity is a host-assigned string rather than
// an object address so associations survive wrapping and can be torn down
// explicitly when the host is disposed.
type Host interface {
	HookRunner

	// TranslatorID returns the host's unique identity. It must not change
	// over the host's lifetime.
	TranslatorID() string
}

// Registry associates at most one RecordTranslator with each host identity.
type Registry struct {
	opts        *Options
	hosts       map[string]Host
	translators map[string]*RecordTranslator
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Registry{
		opts:        o,
		hosts:       make(map[string]Host),
		translators: make(map[string]*RecordTranslator),
	}
}

// Get returns the translator for the host, creating it on first access.
// Repeated calls with the same host identity return the same instance.
func (r *Registry) Get(host Host) *RecordTranslator {
	id := host.TranslatorID()
	if t, ok := r.translators[id]; ok {
		return t
	}
	t := NewRecordTranslator(host, r.opts.rowCount, r.opts.colCount)
	r.hosts[id] = host
	r.translators[id] = t
	r.opts.logger.Debug().Str("host", id).Msg("record translator created")
	return t
}

// Register pre-associates an arbitrary key with a host, so the translator
// can later be resolved by key alone.
func (r *Registry) Register(key string, host Host) {
	r.hosts[key] = host
	r.opts.logger.Debug().Str("key", key).Str("host", host.TranslatorID()).Msg("host registered")
}

// Lookup resolves a translator by identity. The identity must have been
// seen by Get or Register; unknown identities fail with ErrNotRegistered,
// since they indicate an integration error rather than expected data
// variation.
func (r *Registry) Lookup(key string) (*RecordTranslator, error) {
	if t, ok := r.translators[key]; ok {
		return t, nil
	}
	if host, ok := r.hosts[key]; ok {
		return r.Get(host), nil
	}
	return nil, fmt.Errorf("identity %q: %w", key, ErrNotRegistered)
}

// Remove tears down the association for an identity. Hosts must call this
// when they are disposed; there is no implicit reclamation.
func (r *Registry) Remove(key string) {
	delete(r.hosts, key)
	delete(r.translators, key)
	r.opts.logger.Debug().Str("key", key).Msg("record translator removed")
}

// DefaultRegistry backs the package-level registry functions.
var DefaultRegistry = NewRegistry()

// Get returns the translator for the host from the default registry.
func Get(host Host) *RecordTranslator { return DefaultRegistry.Get(host) }

// Register pre-associates a key with a host in the default registry.
func Register(key string, host Host) { DefaultRegistry.Register(key, host) }

// Lookup resolves a translator by identity in the default registry.
func Lookup(key string) (*RecordTranslator, error) { return DefaultRegistry.Lookup(key) }

// Remove tears down an association in the default registry.
func Remove(key string) { DefaultRegistry.Remove(key) }
