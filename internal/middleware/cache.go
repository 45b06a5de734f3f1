package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/achrafgam07/realnest/internal/config"
)

// captureWriter tees the response body while forwarding to the client,
// so a successful response can be stored after the handler ran.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int64
	limit  int64
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.limit <= 0 || cw.size+int64(len(b)) <= cw.limit {
		cw.buf.Write(b)
	}
	cw.size += int64(len(b))
	return cw.ResponseWriter.Write(b)
}

// cacheKeyFrom builds a stable key honoring the configured strategy.
// Browse responses vary by route and query string, so "route_query" is
// the default.
func cacheKeyFrom(cfg config.CacheConfig, c echo.Context) string {
	r := c.Request()
	var tail string
	switch strings.ToLower(cfg.KeyStrategy) {
	case "route":
		tail = "route:" + c.Path()
	case "method_route":
		tail = "method:" + r.Method + ":route:" + c.Path()
	case "method_route_query":
		tail = "method:" + r.Method + ":route:" + c.Path() + ":q:" + r.URL.RawQuery
	default: // "route_query"
		tail = "route:" + c.Path() + ":q:" + r.URL.RawQuery
	}
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// Cached entries pack [4 bytes status][2 bytes ctypeLen][ctype][body].
func encodePayload(status int, ctype string, body []byte) []byte {
	out := make([]byte, 6+len(ctype)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint16(out[4:6], uint16(len(ctype)))
	copy(out[6:], ctype)
	copy(out[6+len(ctype):], body)
	return out
}

func decodePayload(bs []byte) (status int, ctype string, body []byte, ok bool) {
	if len(bs) < 6 {
		return 0, "", nil, false
	}
	status = int(binary.BigEndian.Uint32(bs[0:4]))
	clen := int(binary.BigEndian.Uint16(bs[4:6]))
	if 6+clen > len(bs) {
		return 0, "", nil, false
	}
	return status, string(bs[6 : 6+clen]), bs[6+clen:], true
}

// NewRedisCache serves repeated browse requests straight from Redis.
// Only 200 responses to the configured methods are stored; everything
// else passes through. Hits and misses are marked via the X-Cache
// header. With caching disabled or no Redis client the middleware is a
// pass-through.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	maxBody := int64(cfg.MaxBodyBytes)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKeyFrom(cfg, c)

			if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
				if status, ctype, body, ok := decodePayload(bs); ok {
					if ctype != "" {
						c.Response().Header().Set(echo.HeaderContentType, ctype)
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(status)
					_, _ = c.Response().Write(body)
					return nil
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK && (maxBody <= 0 || cw.size <= maxBody) {
				ctype := c.Response().Header().Get(echo.HeaderContentType)
				payload := encodePayload(cw.status, ctype, cw.buf.Bytes())
				_ = rdb.SetEx(context.Background(), key, payload, ttl).Err()
			}
			return nil
		}
	}
}
