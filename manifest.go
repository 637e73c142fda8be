package docload

// ManifestEntry names one document to load in a batch.
type ManifestEntry struct {
	// URL is the location to download from.
	URL string `json:"url" yaml:"url"`

	// Name is the destination filename relative to the repository base
	// directory. When empty, a name is derived from the URL path.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *ManifestEntry) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "manifest entry URL required")
	}
	return nil
}
