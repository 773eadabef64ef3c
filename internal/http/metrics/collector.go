package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"careerassign/internal/common"
)

// Collector keeps plain in-process counters and renders them as text.
type Collector struct {
	mu        sync.Mutex
	requests  map[string]int64
	statuses  map[int]int64
	errors    map[common.Code]int64
	inFlight  int64
	totalSeen int64
}

func NewCollector() *Collector {
	return &Collector{
		requests: make(map[string]int64),
		statuses: make(map[int]int64),
		errors:   make(map[common.Code]int64),
	}
}

func (c *Collector) ObserveRequest(method, path string, status int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests[method+" "+path]++
	c.statuses[status]++
	c.totalSeen++
}

func (c *Collector) ObserveError(code common.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors[code]++
}

func (c *Collector) IncInFlight() {
	c.mu.Lock()
	c.inFlight++
	c.mu.Unlock()
}

func (c *Collector) DecInFlight() {
	c.mu.Lock()
	c.inFlight--
	c.mu.Unlock()
}

func (c *Collector) Render() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "http_requests_total %d\n", c.totalSeen)
	fmt.Fprintf(&b, "http_requests_in_flight %d\n", c.inFlight)
	for _, key := range sortedKeys(c.requests) {
		fmt.Fprintf(&b, "http_request{route=%q} %d\n", key, c.requests[key])
	}
	statuses := make([]int, 0, len(c.statuses))
	for status := range c.statuses {
		statuses = append(statuses, status)
	}
	sort.Ints(statuses)
	for _, status := range statuses {
		fmt.Fprintf(&b, "http_response{status=\"%d\"} %d\n", status, c.statuses[status])
	}
	codes := make([]string, 0, len(c.errors))
	for code := range c.errors {
		codes = append(codes, string(code))
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Fprintf(&b, "app_error{code=%q} %d\n", code, c.errors[common.Code(code)])
	}
	return b.String()
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
