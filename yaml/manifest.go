// Package yaml reads batch manifests written in YAML.
//
// A manifest is either a list of entries or a mapping with a documents key:
//
//	documents:
//	  - url: https://example.com/guide.pdf
//	    name: guide.pdf
//	  - url: https://example.com/docs/
package yaml

import (
	"errors"
	"io"

	"github.com/fwojciec/docload"
	"gopkg.in/yaml.v3"
)

type manifest struct {
	Documents []docload.ManifestEntry `yaml:"documents"`
}

// ParseManifest decodes the manifest in r. Unknown keys and entries without
// a url are rejected with EINVALID. An empty manifest yields no entries.
func ParseManifest(r io.Reader) ([]docload.ManifestEntry, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return []docload.ManifestEntry{}, nil
		}
		return nil, docload.Errorf(docload.EINVALID, "invalid manifest: %v", err)
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}

	var entries []docload.ManifestEntry
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := checkEntries(doc); err != nil {
			return nil, err
		}
		if err := doc.Decode(&entries); err != nil {
			return nil, docload.Errorf(docload.EINVALID, "invalid manifest: %v", err)
		}
	case yaml.MappingNode:
		if err := checkKeys(doc); err != nil {
			return nil, err
		}
		var m manifest
		if err := doc.Decode(&m); err != nil {
			return nil, docload.Errorf(docload.EINVALID, "invalid manifest: %v", err)
		}
		entries = m.Documents
	case yaml.DocumentNode:
		return []docload.ManifestEntry{}, nil
	case yaml.ScalarNode:
		if doc.Tag == "!!null" {
			return []docload.ManifestEntry{}, nil
		}
		return nil, docload.Errorf(docload.EINVALID, "invalid manifest: expected a list or a documents mapping")
	default:
		return nil, docload.Errorf(docload.EINVALID, "invalid manifest: expected a list or a documents mapping")
	}

	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, docload.Errorf(docload.EINVALID, "manifest entry %d: %s", i+1, docload.ErrorMessage(err))
		}
	}
	if entries == nil {
		entries = []docload.ManifestEntry{}
	}
	return entries, nil
}

// checkKeys rejects unknown top-level keys and unknown entry fields.
func checkKeys(m *yaml.Node) error {
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]
		if key.Value != "documents" {
			return docload.Errorf(docload.EINVALID, "invalid manifest: line %d: unknown key %q", key.Line, key.Value)
		}
		if value.Kind == yaml.SequenceNode {
			if err := checkEntries(value); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkEntries rejects entry fields other than url and name.
func checkEntries(seq *yaml.Node) error {
	for _, entry := range seq.Content {
		if entry.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(entry.Content); j += 2 {
			switch k := entry.Content[j]; k.Value {
			case "url", "name":
			default:
				return docload.Errorf(docload.EINVALID, "invalid manifest: line %d: unknown field %q", k.Line, k.Value)
			}
		}
	}
	return nil
}
