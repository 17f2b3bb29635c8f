package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nanokm/pola-backend/internal/handlers"
	"github.com/nanokm/pola-backend/internal/web"
	"go.uber.org/zap"
)

const notFoundHTML = `<!DOCTYPE html>
<html lang="pl">
<head>
<meta charset="utf-8">
<title>Nie ma takiej strony</title>
</head>
<body>
<h1>Nie ma takiej strony</h1>
<p>Strona, której szukasz, nie istnieje lub została przeniesiona.</p>
</body>
</html>
`

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockwebhandler

type Service interface {
	GetPage(ctx context.Context, path string) (*web.Page, error)
	NotFoundPage(ctx context.Context) (*web.Page, error)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/*", h.servePageHandler)
	router.Head("/*", h.servePageHandler)
}

func (h *handler) servePageHandler(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.GetPage(r.Context(), r.URL.Path)
	if err != nil {
		if errors.Is(err, web.ErrPageNotFound) {
			h.serveNotFound(w, r)

			return
		}

		h.logger.Error("failed to fetch page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}
	defer page.Body.Close()

	etag := `"` + strings.Trim(page.ETag, `"`) + `"`

	w.Header().Set("ETag", etag)
	w.Header().Set("Last-Modified", page.LastModified.UTC().Format(http.TimeFormat))
	if page.ContentType != "" {
		w.Header().Set("Content-Type", page.ContentType)
	}

	if notModified(r, etag, page.LastModified) {
		w.WriteHeader(http.StatusNotModified)

		return
	}

	w.Header().Set("Content-Length", strconv.FormatInt(page.Size, 10))

	if r.Method == http.MethodHead {
		return
	}

	if _, err := io.Copy(w, page.Body); err != nil {
		h.logger.Error("failed to stream page", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func (h *handler) serveNotFound(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.NotFoundPage(r.Context())
	if err == nil {
		defer page.Body.Close()

		if page.ContentType != "" {
			w.Header().Set("Content-Type", page.ContentType)
		}
		w.WriteHeader(http.StatusNotFound)

		if r.Method != http.MethodHead {
			io.Copy(w, page.Body)
		}

		return
	}

	if !errors.Is(err, web.ErrPageNotFound) {
		h.logger.Error("failed to fetch 404 page", zap.Error(err))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)

	if r.Method != http.MethodHead {
		w.Write([]byte(notFoundHTML))
	}
}

// notModified implements the conditional request semantics for cached
// pages: If-None-Match takes precedence over If-Modified-Since. If-Match is
// deliberately not honored.
func notModified(r *http.Request, etag string, lastModified time.Time) bool {
	if ifNoneMatch := r.Header.Get("If-None-Match"); ifNoneMatch != "" {
		return etagMatch(ifNoneMatch, etag)
	}

	if ifModifiedSince := r.Header.Get("If-Modified-Since"); ifModifiedSince != "" {
		since, err := http.ParseTime(ifModifiedSince)
		if err == nil && !lastModified.Truncate(time.Second).After(since) {
			return true
		}
	}

	return false
}

func etagMatch(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")

		if candidate == "*" || candidate == etag {
			return true
		}
	}

	return false
}
