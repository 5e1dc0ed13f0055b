package entities

import (
	"fmt"
	"path"
	"strings"
)

const (
	// SourcesClassifier selects the source attachment of a dependency.
	SourcesClassifier = "sources"

	defaultArtifactType = "jar"
)

// Dependency identifies an artifact by its Maven coordinates.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    string
	Classifier string // optional, e.g. "sources"
	Type       string // packaging extension, "jar" when empty
}

// RepositoryLocation tells an artifact repository where to look for artifacts.
type RepositoryLocation struct {
	Local   string // local repository root
	Remote  string // base URL used on a local miss; empty disables downloads
	Offline bool
}

// ParseDependency parses `groupId:artifactId:version[:classifier][@type]`.
func ParseDependency(coordinates string) (Dependency, error) {
	raw := strings.TrimSpace(coordinates)
	artifactType := ""
	if before, after, found := strings.Cut(raw, "@"); found {
		raw = before
		artifactType = after
	}

	parts := strings.Split(raw, ":")
	if len(parts) < 3 || len(parts) > 4 { //nolint:mnd // group:artifact:version[:classifier]
		return Dependency{}, &ConfigurationError{
			Field:  "dependencies",
			Reason: fmt.Sprintf("%q must be groupId:artifactId:version[:classifier][@type]", coordinates),
		}
	}
	for _, part := range parts {
		if part == "" {
			return Dependency{}, &ConfigurationError{
				Field:  "dependencies",
				Reason: fmt.Sprintf("%q has an empty coordinate", coordinates),
			}
		}
	}

	dep := Dependency{
		GroupID:    parts[0],
		ArtifactID: parts[1],
		Version:    parts[2],
		Type:       artifactType,
	}
	if len(parts) == 4 { //nolint:mnd // classifier present
		dep.Classifier = parts[3]
	}
	return dep, nil
}

// ParseDependencies parses every coordinate string, failing on the first bad one.
func ParseDependencies(coordinates []string) ([]Dependency, error) {
	deps := make([]Dependency, 0, len(coordinates))
	for _, c := range coordinates {
		dep, err := ParseDependency(c)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

// WithClassifier returns a copy of the dependency pointing at another attachment.
func (d Dependency) WithClassifier(classifier string) Dependency {
	d.Classifier = classifier
	return d
}

// Extension returns the packaging extension of the artifact file.
func (d Dependency) Extension() string {
	if d.Type == "" {
		return defaultArtifactType
	}
	return d.Type
}

// FileName returns `<artifactId>-<version>[-<classifier>].<type>`.
func (d Dependency) FileName() string {
	name := d.ArtifactID + "-" + d.Version
	if d.Classifier != "" {
		name += "-" + d.Classifier
	}
	return name + "." + d.Extension()
}

// RepositoryPath returns the slash-separated path of the artifact inside a
// Maven repository layout.
func (d Dependency) RepositoryPath() string {
	return path.Join(strings.ReplaceAll(d.GroupID, ".", "/"), d.ArtifactID, d.Version, d.FileName())
}

func (d Dependency) String() string {
	s := d.GroupID + ":" + d.ArtifactID + ":" + d.Version
	if d.Classifier != "" {
		s += ":" + d.Classifier
	}
	if d.Type != "" {
		s += "@" + d.Type
	}
	return s
}
