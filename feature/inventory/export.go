package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// exportStamp is fixed width so export names sort chronologically.
const exportStamp = "20060102T150405.000000000Z"

// ExportInfo describes a written snapshot.
type ExportInfo struct {
	Object   string          `json:"object"`
	Products int             `json:"products"`
	Size     int64           `json:"size"`
	Summary  catalog.Summary `json:"summary"`
	At       time.Time       `json:"at"`
}

// Exporter writes catalog snapshots to the bucket.
type Exporter struct {
	client storage.Client
	bucket string
	prefix string
	keep   int
	logger *zap.Logger
	now    func() time.Time
	suffix func() string
}

// NewExporter creates an exporter from the storage settings.
func NewExporter(client storage.Client, cfg storage.Config, logger *zap.Logger) *Exporter {
	prefix := cfg.ExportPrefix
	if prefix == "" {
		prefix = "exports"
	}
	return &Exporter{
		client: client,
		bucket: cfg.Bucket,
		prefix: prefix,
		keep:   cfg.KeepExports,
		logger: logger,
		now:    time.Now,
		suffix: func() string { return uuid.NewString()[:8] },
	}
}

type exportDocument struct {
	ExportedAt time.Time         `json:"exported_at"`
	Summary    catalog.Summary   `json:"summary"`
	Products   []catalog.Product `json:"products"`
}

// Export writes cat as exports/catalog-<timestamp>-<suffix>.json and prunes
// old exports beyond the retention count. The random suffix keeps exports
// from different processes in the same instant apart.
func (e *Exporter) Export(ctx context.Context, cat *catalog.Catalog) (ExportInfo, error) {
	at := e.now().UTC()
	doc := exportDocument{ExportedAt: at, Summary: cat.Summary(), Products: cat.All()}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return ExportInfo{}, fmt.Errorf("failed to encode export: %w", err)
	}

	object := path.Join(e.prefix, "catalog-"+at.Format(exportStamp)+"-"+e.suffix()+".json")
	_, err = e.client.PutObject(ctx, e.bucket, object, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return ExportInfo{}, fmt.Errorf("failed to upload %s: %w", object, err)
	}

	info := ExportInfo{Object: object, Products: len(doc.Products), Size: int64(len(data)), Summary: doc.Summary, At: at}
	e.logger.Info("Catalog exported", zap.String("object", object), zap.Int("products", info.Products))

	if err := e.prune(ctx); err != nil {
		e.logger.Warn("Failed to prune old exports", zap.Error(err))
	}
	return info, nil
}

// prune removes the oldest exports beyond the retention count. Export names
// sort chronologically.
func (e *Exporter) prune(ctx context.Context) error {
	if e.keep <= 0 {
		return nil
	}

	var names []string
	for obj := range e.client.ListObjects(ctx, e.bucket, minio.ListObjectsOptions{Prefix: e.prefix + "/catalog-"}) {
		if obj.Err != nil {
			return obj.Err
		}
		if strings.HasSuffix(obj.Key, ".json") {
			names = append(names, obj.Key)
		}
	}
	if len(names) <= e.keep {
		return nil
	}
	sort.Strings(names)
	stale := names[:len(names)-e.keep]

	objectsCh := make(chan minio.ObjectInfo, len(stale))
	for _, name := range stale {
		objectsCh <- minio.ObjectInfo{Key: name}
	}
	close(objectsCh)

	var firstErr error
	for rerr := range e.client.RemoveObjects(ctx, e.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if firstErr == nil {
			firstErr = fmt.Errorf("failed to remove %s: %w", rerr.ObjectName, rerr.Err)
		}
	}
	if firstErr != nil {
		return firstErr
	}
	e.logger.Debug("Old exports pruned", zap.Int("removed", len(stale)))
	return nil
}
