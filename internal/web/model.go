package web

import (
	"io"
	"time"
)

// Page is a single object served from the CMS web bucket.
type Page struct {
	Body         io.ReadCloser
	ETag         string
	LastModified time.Time
	ContentType  string
	Size         int64
}
