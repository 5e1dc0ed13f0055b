package maven

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
	"github.com/rios0rios0/j2objcrun/internal/domain/repositories"
)

const downloadTimeout = 5 * time.Minute

// ErrArtifactNotFound is returned when an artifact is neither in the local
// repository nor downloadable from the remote one.
var ErrArtifactNotFound = errors.New("artifact not found")

// ArtifactRepository resolves artifacts from a Maven repository layout and
// extracts them. Missing artifacts are downloaded into the local repository
// unless the location is offline.
type ArtifactRepository struct {
	client *http.Client
}

var _ repositories.ArtifactRepository = (*ArtifactRepository)(nil)

// NewArtifactRepository creates a new ArtifactRepository.
func NewArtifactRepository() *ArtifactRepository {
	return NewArtifactRepositoryWithClient(&http.Client{Timeout: downloadTimeout})
}

// NewArtifactRepositoryWithClient creates an ArtifactRepository using the given HTTP client.
func NewArtifactRepositoryWithClient(client *http.Client) *ArtifactRepository {
	return &ArtifactRepository{client: client}
}

// UnpackSources extracts the classifier attachment of every dependency.
func (r *ArtifactRepository) UnpackSources(ctx context.Context, req repositories.SourcesUnpackRequest) error {
	if err := os.MkdirAll(req.OutputDir, dirMode); err != nil {
		return fmt.Errorf("failed to create %s: %w", req.OutputDir, err)
	}

	for _, dep := range req.Dependencies {
		attachment := dep.WithClassifier(req.Classifier)

		archive, err := r.resolve(ctx, req.Location, attachment)
		if errors.Is(err, ErrArtifactNotFound) && !req.FailOnMissing {
			logger.Warnf("No %s artifact for %s, skipping", req.Classifier, dep)
			continue
		}
		if err != nil {
			return err
		}

		logger.Debugf("Extracting %s into %s", archive, req.OutputDir)
		if err = Extract(archive, req.OutputDir); err != nil {
			return fmt.Errorf("failed to unpack %s: %w", attachment, err)
		}
	}
	return nil
}

// UnpackArtifact extracts a single artifact.
func (r *ArtifactRepository) UnpackArtifact(ctx context.Context, req repositories.ArtifactUnpackRequest) error {
	archive, err := r.resolve(ctx, req.Location, req.Artifact)
	if err != nil {
		return err
	}

	logger.Debugf("Extracting %s into %s", archive, req.OutputDir)
	if err = Extract(archive, req.OutputDir); err != nil {
		return fmt.Errorf("failed to unpack %s: %w", req.Artifact, err)
	}
	return nil
}

// resolve returns the local path of the artifact, downloading it on a miss.
func (r *ArtifactRepository) resolve(
	ctx context.Context,
	location entities.RepositoryLocation,
	dep entities.Dependency,
) (string, error) {
	localPath := filepath.Join(location.Local, filepath.FromSlash(dep.RepositoryPath()))
	if _, err := os.Stat(localPath); err == nil {
		return localPath, nil
	}

	if location.Offline || location.Remote == "" {
		return "", fmt.Errorf("%w: %s in %s", ErrArtifactNotFound, dep, location.Local)
	}

	url := strings.TrimSuffix(location.Remote, "/") + "/" + dep.RepositoryPath()
	logger.Infof("Downloading %s", url)
	if err := r.download(ctx, url, localPath); err != nil {
		return "", err
	}
	return localPath, nil
}

// download saves url to dest through a temporary file in the same directory.
func (r *ArtifactRepository) download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrArtifactNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed with status: %s", url, resp.Status)
	}

	if err = os.MkdirAll(filepath.Dir(dest), dirMode); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err = io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to save downloaded file: %w", err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to save downloaded file: %w", err)
	}

	return os.Rename(tmpFile.Name(), dest)
}
