package storage

import (
	"context"
)

// ServiceConfig holds the configuration required to connect to the storage service.
type ServiceConfig struct {
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string

	// PublicBaseURL is the base under which uploaded objects are publicly
	// reachable; Upload returns PublicBaseURL + "/" + key.
	PublicBaseURL string
}

// StorageService defines the public interface of the asset host. Images are
// uploaded server-side before the owning record is persisted, and the returned
// public URL is what gets stored.
type StorageService interface {
	// Upload stores the object under key and returns its public URL.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the object specified by the given key.
	Delete(ctx context.Context, key string) error
}

// NewStorageService is the factory function for StorageService.
// It initializes and returns a concrete implementation based on the provided configuration.
func NewStorageService(cfg ServiceConfig) (StorageService, error) {
	// Currently, only S3 compatible implementations are supported.
	return newS3Client(cfg)
}
