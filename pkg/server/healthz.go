package server

import (
	"fmt"
	"maps"
	"net/http"
	"strings"
	"sync"

	"github.com/mandelsoft/goutils/maputils"
)

// Check reports whether a component is healthy together with
// a short status info.
type Check func() (bool, string)

// Health is a HTTP handler for the /healthz endpoint. It responds with
// 200 OK if all registered checks are healthy and with 500 Internal
// Server Error otherwise.
type Health struct {
	lock   sync.Mutex
	checks map[string]Check
}

var _ http.Handler = (*Health)(nil)

func NewHealth() *Health {
	return &Health{checks: map[string]Check{}}
}

func (h *Health) Register(key string, check Check) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.checks[key] = check
}

func (h *Health) Remove(key string) {
	h.lock.Lock()
	defer h.lock.Unlock()
	delete(h.checks, key)
}

// HealthInfo evaluates all checks in key order.
func (h *Health) HealthInfo() (bool, string) {
	h.lock.Lock()
	checks := maps.Clone(h.checks)
	h.lock.Unlock()

	ok := true
	var info strings.Builder
	for _, k := range maputils.OrderedKeys(checks) {
		healthy, status := checks[k]()
		if !healthy {
			log.Warn("unhealthy component {{key}}: {{status}}", "key", k, "status", status)
			ok = false
		}
		fmt.Fprintf(&info, "%s: %s\n", k, status)
	}
	return ok, info.String()
}

func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ok, info := h.HealthInfo()
	if ok {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}
	fmt.Fprint(w, info)
}
