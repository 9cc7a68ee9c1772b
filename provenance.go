package cec

// Provenance records which source supplied each top-level key.
type Provenance struct {
	Keys []KeyProvenance // Sorted by Key
}

// KeyProvenance describes where a top-level key's value came from.
type KeyProvenance struct {
	Key        string   // Top-level key (e.g., "database")
	SourceName string   // Winning source (e.g., "env:nemo")
	Overridden []string // Earlier sources whose value was replaced, oldest first
}

// SourceOf returns the winning source for key.
func (p *Provenance) SourceOf(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	for _, k := range p.Keys {
		if k.Key == key {
			return k.SourceName, true
		}
	}
	return "", false
}
