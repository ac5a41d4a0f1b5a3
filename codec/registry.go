package codec

import "sync"

// Registry maps codec names and UIDs to a registered Codec. The package
// level defaultRegistry is what Register/Get/List operate on; it exists as
// a type mainly so tests can construct an isolated instance.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
}

var defaultRegistry = &Registry{
	codecs: make(map[string]Codec),
}

// Register adds codec to the default registry, reachable by both its name
// and its UID.
func Register(c Codec) {
	defaultRegistry.Register(c)
}

// Get looks up a codec in the default registry by name or UID.
func Get(nameOrUID string) (Codec, error) {
	return defaultRegistry.Get(nameOrUID)
}

// List returns every codec registered in the default registry, deduplicated.
func List() []Codec {
	return defaultRegistry.List()
}

// Register adds c to the registry under both its Name() and UID().
func (r *Registry) Register(c Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[c.Name()] = c
	r.codecs[c.UID()] = c
}

// Get retrieves the codec registered under nameOrUID, or ErrCodecNotFound.
func (r *Registry) Get(nameOrUID string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.codecs[nameOrUID]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return c, nil
}

// List returns the distinct codecs registered, since each is stored under
// two keys (name and UID).
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[Codec]bool, len(r.codecs))
	out := make([]Codec, 0, len(r.codecs))
	for _, c := range r.codecs {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
