// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterIdleAfter is how long a client limiter may stay unused before it
// is dropped.
const limiterIdleAfter = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter keeps one token bucket per client IP.
type ipRateLimiter struct {
	mu          sync.Mutex
	clients     map[string]*clientLimiter
	limit       rate.Limit
	burst       int
	lastCleanup time.Time
	now         func() time.Time
}

func newIPRateLimiter(perMinute, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		clients:     make(map[string]*clientLimiter),
		limit:       rate.Limit(float64(perMinute) / time.Minute.Seconds()),
		burst:       max(burst, 1),
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (l *ipRateLimiter) allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.cleanup(now)

	client, ok := l.clients[key]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = client
	}
	client.lastSeen = now

	if client.limiter.AllowN(now, 1) {
		return true, 0
	}

	reservation := client.limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	reservation.CancelAt(now)

	return false, delay
}

func (l *ipRateLimiter) cleanup(now time.Time) {
	if now.Sub(l.lastCleanup) < limiterIdleAfter {
		return
	}
	l.lastCleanup = now

	for key, client := range l.clients {
		if now.Sub(client.lastSeen) > limiterIdleAfter {
			delete(l.clients, key)
		}
	}
}

// withRateLimit throttles unauthenticated endpoints per client IP. A
// non-positive limit disables it.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	if h.server.AuthRateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := newIPRateLimiter(h.server.AuthRateLimit, h.server.AuthRateBurst)

	trusted, err := h.server.TrustedProxyPrefixes()
	if err != nil {
		h.logger.Err(err).Msg("ignoring trusted proxies, forwarding headers will not be honoured")
		trusted = nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, retryAfter := limiter.allow(clientIP(r, trusted))
			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(max(int(retryAfter.Seconds()), 1)))
				h.writeError(w, r, ErrTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the address a request is keyed by. Forwarding headers
// are honoured only when the connection comes from a trusted proxy: the
// X-Forwarded-For chain is walked from the right and the first hop that is
// not itself a trusted proxy wins, falling back to X-Real-IP.
func clientIP(r *http.Request, trusted []netip.Prefix) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}

	if !isTrustedProxy(remote, trusted) {
		return remote
	}

	if xff := r.Header.Values("X-Forwarded-For"); len(xff) > 0 {
		hops := strings.Split(strings.Join(xff, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop == "" {
				continue
			}
			if !isTrustedProxy(hop, trusted) || i == 0 {
				return hop
			}
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	return remote
}

func isTrustedProxy(ip string, trusted []netip.Prefix) bool {
	if len(trusted) == 0 {
		return false
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, prefix := range trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
