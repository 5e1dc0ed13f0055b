package entities

import (
	"fmt"
	"strings"
	"unicode"
)

// PrefixFileName is the name of the prefix file written into the output directory.
const PrefixFileName = "prefixes.properties"

// PrefixEntry maps a Java package prefix to an Objective-C class prefix.
type PrefixEntry struct {
	Source string `yaml:"java" hcl:"java"`
	Target string `yaml:"objc" hcl:"objc"`
}

// PrefixMap is an ordered list of prefix entries. Order is declaration order
// and is kept on serialization because the tool applies the first match.
type PrefixMap []PrefixEntry

// Validate rejects empty prefixes and prefixes containing whitespace, either of
// which would break the `source: target` line format.
func (e PrefixEntry) Validate() error {
	if e.Source == "" || e.Target == "" {
		return &ConfigurationError{
			Field:  "prefixes",
			Reason: fmt.Sprintf("entry %q -> %q must have both sides set", e.Source, e.Target),
		}
	}
	if strings.IndexFunc(e.Source, unicode.IsSpace) >= 0 || strings.IndexFunc(e.Target, unicode.IsSpace) >= 0 {
		return &ConfigurationError{
			Field:  "prefixes",
			Reason: fmt.Sprintf("entry %q -> %q must not contain whitespace", e.Source, e.Target),
		}
	}
	return nil
}

// ParsePrefixEntry parses the `source=target` form used on the command line.
func ParsePrefixEntry(raw string) (PrefixEntry, error) {
	source, target, found := strings.Cut(raw, "=")
	if !found {
		return PrefixEntry{}, &ConfigurationError{
			Field:  "prefixes",
			Reason: fmt.Sprintf("%q must have the form <java-prefix>=<objc-prefix>", raw),
		}
	}
	entry := PrefixEntry{Source: strings.TrimSpace(source), Target: strings.TrimSpace(target)}
	return entry, entry.Validate()
}

// Line renders the entry in the prefix file format, without the trailing newline.
func (e PrefixEntry) Line() string {
	return e.Source + ": " + e.Target
}

// Validate checks every entry of the map.
func (m PrefixMap) Validate() error {
	for _, entry := range m {
		if err := entry.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsEmpty reports whether no prefixes are configured.
func (m PrefixMap) IsEmpty() bool { return len(m) == 0 }
