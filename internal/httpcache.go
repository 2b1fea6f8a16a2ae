/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"

	"github.com/mikeb26/pinochle-scorebot/store"
)

// NewCachedHttpClient returns an http.Client that caches responses in the
// S3-backed web cache bucket. If cache initialization fails, it falls back
// to uncached http. It also enforces a client-side TTL by rewriting origin
// cache headers.
func NewCachedHttpClient(ctx context.Context, maxAge time.Duration) *http.Client {
	backend := store.NewS3Backend(WebCacheBucket)
	if err := backend.Init(ctx); err != nil {
		log.Printf("httpcache: warning failed to init S3 cache: %v; falling back to uncached http", err)
		return http.DefaultClient
	}

	hc := httpcache.NewTransport(&backendHttpCache{ctx: ctx, backend: backend})
	// we have to inject our own header overrides here in order to override
	// server responses that might indicate caching shouldn't be done
	hc.Transport = &HeaderOverrideTransport{
		wrappedRT: http.DefaultTransport,
		Response: func(resp *http.Response) error {
			// Strip any cache-busting headers from origin
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Del("Cache-Control")
			// Enforce the provided TTL
			resp.Header.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}

	return &http.Client{Transport: hc}
}

// backendHttpCache adapts a store backend to httpcache.Cache. httpcache
// keys are request URLs, so they are hashed into fixed-form object keys.
// httpcache's interface has no error returns; failures are logged and
// reported as cache misses.
type backendHttpCache struct {
	ctx     context.Context
	backend store.Backend
}

func (c *backendHttpCache) cacheKey(key string) string {
	h := md5.New()
	io.WriteString(h, key)
	return "webcache-" + hex.EncodeToString(h.Sum(nil))
}

func (c *backendHttpCache) Get(key string) ([]byte, bool) {
	data, ok, err := c.backend.Get(c.ctx, c.cacheKey(key))
	if err != nil {
		log.Printf("httpcache.get: %v", err)
		return nil, false
	}
	return data, ok
}

func (c *backendHttpCache) Set(key string, data []byte) {
	if err := c.backend.Put(c.ctx, c.cacheKey(key), data); err != nil {
		log.Printf("httpcache.set: %v", err)
	}
}

func (c *backendHttpCache) Delete(key string) {
	if err := c.backend.Delete(c.ctx, c.cacheKey(key)); err != nil {
		log.Printf("httpcache.delete: %v", err)
	}
}

type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	// Underlying RoundTripper (e.g. default transport or another decorator)
	wrappedRT http.RoundTripper
}

// RoundTrip applies Request and Response hooks around the underlying transport.
func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so we don’t stomp on the caller’s original
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
