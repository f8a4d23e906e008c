package validation

// ResolvedMessage is the display text of a violation. Key is empty when no
// catalog entry matched.
type ResolvedMessage struct {
	Key  string `json:"key,omitempty"`
	Text string `json:"text"`
}

func (m ResolvedMessage) FromCatalog() bool {
	return m.Key != ""
}

type MessageResolver struct {
	catalog Catalog
	codes   CodesResolver
}

func NewMessageResolver(catalog Catalog, codes CodesResolver) *MessageResolver {
	if catalog == nil {
		panic("validation: nil catalog")
	}
	if codes == nil {
		codes = DefaultCodesResolver{}
	}
	return &MessageResolver{
		catalog: catalog,
		codes:   codes,
	}
}

func (r *MessageResolver) Codes() CodesResolver {
	return r.codes
}

func (r *MessageResolver) Resolve(violation Violation) ResolvedMessage {
	keys := violation.Keys(r.codes)
	for _, key := range keys {
		if template, ok := r.catalog.Lookup(key); ok {
			return ResolvedMessage{
				Key:  key,
				Text: Format(template, violation.Arguments()),
			}
		}
	}

	if msg := violation.DefaultMessage(); msg != "" {
		return ResolvedMessage{Text: msg}
	}

	return ResolvedMessage{Text: placeholder(violation, keys)}
}

func (r *MessageResolver) ResolveAll(violations *Violations) []ResolvedMessage {
	if violations == nil {
		return nil
	}
	all := violations.All()
	out := make([]ResolvedMessage, len(all))
	for i, violation := range all {
		out[i] = r.Resolve(violation)
	}
	return out
}

// Resolve resolves violation against catalog with the default key order.
func Resolve(violation Violation, catalog Catalog) ResolvedMessage {
	return NewMessageResolver(catalog, DefaultCodesResolver{}).Resolve(violation)
}

func placeholder(violation Violation, keys []string) string {
	if len(keys) > 0 && keys[0] != "" {
		return "??" + keys[0] + "??"
	}
	return "??" + violation.Code() + "." + violation.ObjectName() + "??"
}
