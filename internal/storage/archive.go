// backend-go/internal/storage/archive.go
package storage

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chartmuseum/storage"
)

// ArchiveConfig encapsulates the label archive backend selection.
// Backend "s3" targets any S3-compatible service; "local" writes under
// Directory and is the default for development.
type ArchiveConfig struct {
	Backend   string
	Directory string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// ArchiveClient implements ObjectStorage on a chartmuseum backend.
type ArchiveClient struct {
	backend storage.Backend
}

var _ ObjectStorage = (*ArchiveClient)(nil)

// NewArchiveClient selects and configures the archive backend.
func NewArchiveClient(cfg ArchiveConfig) (*ArchiveClient, error) {
	switch cfg.Backend {
	case "", "local":
		dir := cfg.Directory
		if dir == "" {
			dir = "./labels"
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create label directory: %w", err)
		}
		return &ArchiveClient{backend: storage.NewLocalFilesystemBackend(dir)}, nil
	case "s3":
		return newS3Archive(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func newS3Archive(cfg ArchiveConfig) (*ArchiveClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("storage endpoint must be provided")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("storage credentials must be provided")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket must be provided")
	}

	endpoint := cfg.Endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		scheme := "https"
		if !cfg.UseSSL {
			scheme = "http"
		}
		endpoint = fmt.Sprintf("%s://%s", scheme, strings.TrimPrefix(cfg.Endpoint, "//"))
	}

	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	os.Setenv("AWS_ACCESS_KEY_ID", cfg.AccessKey)
	os.Setenv("AWS_SECRET_ACCESS_KEY", cfg.SecretKey)
	os.Setenv("AWS_REGION", region)
	os.Setenv("AWS_DEFAULT_REGION", region)

	backend := storage.NewAmazonS3BackendWithOptions(
		cfg.Bucket,
		"", // no prefix
		region,
		endpoint,
		"",
		&storage.AmazonS3Options{
			S3ForcePathStyle: awsBool(true),
		},
	)

	return &ArchiveClient{backend: backend}, nil
}

// PutObject stores the object under key.
func (c *ArchiveClient) PutObject(ctx context.Context, key string, data []byte) error {
	if err := c.backend.PutObject(key, data); err != nil {
		return fmt.Errorf("archive put failed: %w", err)
	}
	return nil
}

// GetObject retrieves a stored object.
func (c *ArchiveClient) GetObject(ctx context.Context, key string) ([]byte, error) {
	object, err := c.backend.GetObject(key)
	if err != nil {
		return nil, fmt.Errorf("archive get failed: %w", err)
	}
	return object.Content, nil
}

// ListObjects lists all objects under a prefix.
func (c *ArchiveClient) ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	files, err := c.backend.ListObjects(prefix)
	if err != nil {
		return nil, fmt.Errorf("archive list failed: %w", err)
	}
	results := make([]ObjectInfo, 0)
	for _, object := range files {
		results = append(results, ObjectInfo{
			Key:  object.Path,
			Size: int64(len(object.Content)),
		})
	}
	return results, nil
}

func awsBool(v bool) *bool {
	return &v
}
