package web

import (
	"context"
	"errors"
	"mime"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var ErrPageNotFound = errors.New("page not found")

const notFoundKey = "404.html"

// Service reads the CMS-generated static website out of object storage.
type Service struct {
	minioClient *minio.Client
	bucket      string
	logger      *zap.Logger
}

func New(minioClient *minio.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		minioClient: minioClient,
		bucket:      bucket,
		logger:      logger,
	}
}

// GetPage resolves a request path to an object in the web bucket. Directory
// paths are served from their index.html.
func (s *Service) GetPage(ctx context.Context, path string) (*Page, error) {
	return s.getObject(ctx, objectKey(path))
}

// NotFoundPage returns the bucket's own 404 page when the CMS published one.
func (s *Service) NotFoundPage(ctx context.Context) (*Page, error) {
	return s.getObject(ctx, notFoundKey)
}

func (s *Service) getObject(ctx context.Context, key string) (*Page, error) {
	obj, err := s.minioClient.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	stat, err := obj.Stat()
	if err != nil {
		obj.Close()

		response := minio.ToErrorResponse(err)
		if response.Code == "NoSuchKey" || response.Code == "NoSuchBucket" {
			return nil, ErrPageNotFound
		}

		s.logger.Error("unexpected error when reading web object", zap.String("key", key), zap.Error(err))

		return nil, err
	}

	contentType := stat.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		if byExtension := mime.TypeByExtension(filepath.Ext(key)); byExtension != "" {
			contentType = byExtension
		}
	}

	return &Page{
		Body:         obj,
		ETag:         stat.ETag,
		LastModified: stat.LastModified,
		ContentType:  contentType,
		Size:         stat.Size,
	}, nil
}

func objectKey(path string) string {
	key := strings.TrimPrefix(path, "/")

	if key == "" || strings.HasSuffix(key, "/") {
		key += "index.html"
	}

	return key
}
