package validation

type Catalog interface {
	Lookup(key string) (string, bool)
}

// MapCatalog is a flat key to template catalog. It must not be modified once
// it is handed to a MessageResolver.
type MapCatalog map[string]string

var _ Catalog = MapCatalog(nil)

func (c MapCatalog) Lookup(key string) (string, bool) {
	template, ok := c[key]
	return template, ok
}

func (c MapCatalog) Len() int {
	return len(c)
}

// Merge returns a new catalog holding the entries of c overridden by other.
func (c MapCatalog) Merge(other MapCatalog) MapCatalog {
	merged := make(MapCatalog, len(c)+len(other))
	for key, template := range c {
		merged[key] = template
	}
	for key, template := range other {
		merged[key] = template
	}
	return merged
}
