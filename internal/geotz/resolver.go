package geotz

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/2beens/freqtracker/internal/telemetry/tracing"
	"github.com/2beens/freqtracker/pkg"

	"github.com/coocood/freecache"
	"github.com/ipinfo/go/v2/ipinfo"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	cacheExpireSeconds = 60 * 60
	megabyte           = 1024 * 1024
)

// Resolver guesses a timezone from where a request comes from.
type Resolver struct {
	client *ipinfo.Client
	cache  *freecache.Cache
}

func NewResolver(token string, httpClient *http.Client, cacheSizeMB int) *Resolver {
	return newResolver(ipinfo.NewClient(httpClient, nil, token), cacheSizeMB)
}

func newResolver(client *ipinfo.Client, cacheSizeMB int) *Resolver {
	return &Resolver{
		client: client,
		cache:  freecache.NewCache(cacheSizeMB * megabyte),
	}
}

// RequestTimezone returns the IANA timezone of the request's client IP, or "" if it cannot be
// determined (local addresses, lookup failures, unknown results). Callers fall back to UTC.
func (r *Resolver) RequestTimezone(ctx context.Context, req *http.Request) string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "geotz.requestTimezone")
	defer span.End()

	userIP, err := pkg.ReadUserIP(req)
	if err != nil {
		log.Debugf("geotz: read user ip: %s", err)
		return ""
	}
	if userIP == pkg.LocalhostIP {
		return ""
	}

	tz, err := r.Timezone(ctx, userIP)
	if err != nil {
		log.Warnf("geotz: timezone for %s: %s", userIP, err)
		return ""
	}
	return tz
}

func (r *Resolver) Timezone(ctx context.Context, ip string) (tz string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "geotz.timezone")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.ip", ip))

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", fmt.Errorf("invalid ip [%s]", ip)
	}
	if parsed.IsLoopback() || parsed.IsPrivate() {
		return "", nil
	}

	cacheKey := []byte("tz::" + parsed.String())
	if cached, err := r.cache.Get(cacheKey); err == nil {
		span.SetAttributes(attribute.Bool("from-cache", true))
		return string(cached), nil
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Errorf("geotz: get cached timezone for %s: %s", ip, err)
	}

	info, err := r.client.GetIPInfo(parsed)
	if err != nil {
		return "", fmt.Errorf("ipinfo lookup: %w", err)
	}

	tz = info.Timezone
	if tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			log.Warnf("geotz: ipinfo returned unknown timezone [%s] for %s", tz, ip)
			tz = ""
		}
	}

	// empty results are cached too, ipinfo quota is small
	if err := r.cache.Set(cacheKey, []byte(tz), cacheExpireSeconds); err != nil {
		log.Errorf("geotz: cache timezone for %s: %s", ip, err)
	}
	return tz, nil
}
