package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Uploader is the blob-storage collaborator used by the upload endpoints.
type Uploader interface {
	Upload(ctx context.Context, data []byte, name, container string) (string, error)
}

// BlobClient talks to an HTTP blob store (Azurite/Azure-style flat
// container/object layout with shared-key header auth).
type BlobClient struct {
	client    *resty.Client
	account   string
	accessKey string
}

func NewBlobClient(endpoint, account, accessKey string) *BlobClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(endpoint, "/")).
		SetTimeout(30 * time.Second).
		SetRetryCount(2)

	return &BlobClient{
		client:    client,
		account:   account,
		accessKey: accessKey,
	}
}

// Upload stores the blob and returns its public URL. A uuid suffix keeps
// repeated uploads of the same logical name from clobbering each other.
func (b *BlobClient) Upload(ctx context.Context, data []byte, name, container string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("blob data is empty")
	}

	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	object := fmt.Sprintf("%s_%s%s", base, uuid.NewString()[:8], ext)
	blobPath := fmt.Sprintf("/%s/%s/%s", b.account, container, object)

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader("x-ms-blob-type", "BlockBlob").
		SetHeader("Authorization", "SharedKey "+b.account+":"+b.accessKey).
		SetBody(data).
		Put(blobPath)
	if err != nil {
		return "", fmt.Errorf("blob upload failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("blob upload failed: status %d", resp.StatusCode())
	}

	return b.client.BaseURL + blobPath, nil
}
