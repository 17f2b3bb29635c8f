package assets

import (
	"fmt"
	"strings"
)

type Config struct {
	Endpoint string
	Bucket   string
	UseSSL   bool
}

// Service derives publicly fetchable URLs for objects in the public bucket,
// such as company logotypes.
type Service struct {
	endpoint string
	bucket   string
	useSSL   bool
}

func New(cfg Config) *Service {
	return &Service{
		endpoint: cfg.Endpoint,
		bucket:   cfg.Bucket,
		useSSL:   cfg.UseSSL,
	}
}

func (s *Service) PublicURL(key string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, strings.TrimLeft(key, "/"))
}
