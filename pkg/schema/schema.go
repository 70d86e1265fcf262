// Package schema maps TLV type tags to human-readable names. Schemas are
// small YAML documents loaded alongside the toolkit's CLI and decode
// service so that output can say "router-address" instead of "tag-3":
//
//	name: dhcp-lite
//	tags:
//	  1: subnet-mask
//	  3: router-address
//	  53: message-type
//
// A schema never affects decoding; it only annotates results.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema is a named dictionary of tag names.
type Schema struct {
	Name string          `yaml:"name"`
	Tags map[byte]string `yaml:"tags"`
}

// Parse decodes a YAML schema document.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if s.Name == "" {
		s.Name = "unnamed"
	}
	if s.Tags == nil {
		s.Tags = map[byte]string{}
	}
	return &s, nil
}

// Load reads and parses a YAML schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}
	return s, nil
}

// Builtin returns the fallback schema used when no schema file is given.
// It names nothing beyond the conventional terminator/padding tags, so
// most records fall through to the numeric form.
func Builtin() *Schema {
	return &Schema{
		Name: "generic",
		Tags: map[byte]string{
			0: "end",
			1: "nop",
		},
	}
}

// TagName returns the configured name for a tag, falling back to "tag-N"
// for tags the schema does not cover.
func (s *Schema) TagName(tag byte) string {
	if name, ok := s.Tags[tag]; ok {
		return name
	}
	return fmt.Sprintf("tag-%d", tag)
}
