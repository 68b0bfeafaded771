package restock

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"warehouse-counter/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/shopspring/decimal"
)

// LineItem is one invoice line to add to the stock.
type LineItem struct {
	Name     string          `json:"name"`
	Code     string          `json:"code,omitempty"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Source yields line items.
type Source interface {
	LineItems(ctx context.Context) ([]LineItem, error)
}

// StaticSource serves items already in memory.
type StaticSource []LineItem

// LineItems returns the items.
func (s StaticSource) LineItems(ctx context.Context) ([]LineItem, error) {
	return s, nil
}

// BucketSource reads a JSON line item file from object storage.
type BucketSource struct {
	client storage.Client
	bucket string
	object string
}

// NewBucketSource creates a source for bucket/object. A bare file name is
// looked up under prefix.
func NewBucketSource(client storage.Client, bucket, prefix, object string) *BucketSource {
	if prefix != "" && !strings.Contains(object, "/") {
		object = path.Join(prefix, object)
	}
	return &BucketSource{client: client, bucket: bucket, object: object}
}

// Object returns the object key read.
func (s *BucketSource) Object() string {
	return s.object
}

// LineItems downloads and decodes the object.
func (s *BucketSource) LineItems(ctx context.Context) ([]LineItem, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.object, err)
	}
	defer obj.Close()

	items, err := ReadLineItems(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.object, err)
	}
	return items, nil
}

// ReadLineItems decodes either a bare JSON array of items or an object with
// an "items" array, the shape invoice extraction produces.
func ReadLineItems(r io.Reader) ([]LineItem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var wrapped struct {
		Items []LineItem `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("invalid line items: %w", err)
	}
	return wrapped.Items, nil
}
