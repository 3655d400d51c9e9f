package domain

import "sort"

// Source is one named configuration document, already parsed into a
// key/value mapping. Values may be scalars or nested structures; the
// domain never interprets nesting during the merge.
type Source struct {
	Name   string
	Values map[string]any
}

// Config is the flat lookup produced by merging an ordered list of
// sources. It is built once and read-only afterwards.
type Config struct {
	values map[string]any
	origin map[string]string
}

// MergeSources flattens sources into a single Config. Later sources win
// on key collision, and the merge is not recursive: a later top-level
// key fully replaces an earlier value of the same key even when both
// are mappings.
func MergeSources(sources ...Source) Config {
	cfg := Config{
		values: make(map[string]any),
		origin: make(map[string]string),
	}
	for _, src := range sources {
		for k, v := range src.Values {
			cfg.values[k] = v
			cfg.origin[k] = src.Name
		}
	}
	return cfg
}

// Get returns the merged value for key. Absence is reported through the
// second return so callers can tell a missing key from a falsy value.
func (c Config) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Origin reports which source supplied the merged value for key.
func (c Config) Origin(key string) (string, bool) {
	src, ok := c.origin[key]
	return src, ok
}

// Keys returns all merged keys in lexical order.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports how many keys survived the merge.
func (c Config) Len() int {
	return len(c.values)
}
