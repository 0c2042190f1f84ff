// Package registry keeps per-company model training state in memory.
// Entries carry a TTL so state left over from an old process or a
// stale training run reads as untrained and forces a retrain.
package registry

import (
	"sort"
	"time"
)

// Model identifiers tracked by the registry.
const (
	ModelDemand   = "demand"
	ModelPayment  = "payment"
	ModelBusiness = "business"
)

// Status records one model's training state for one company.
type Status struct {
	Trained     bool
	LastTrained time.Time
	Accuracy    *float64
}

type key struct {
	company int
	model   string
}

// Registry tracks training state per company and model.
type Registry struct {
	cache *Cache[key, Status]
}

// New builds a registry whose entries live for ttl.
func New(ttl time.Duration) *Registry {
	return &Registry{cache: NewCache[key, Status](ttl)}
}

// Get returns the recorded status for a company's model. A missing or
// expired entry reads as untrained.
func (r *Registry) Get(companyID int, model string) (Status, bool) {
	return r.cache.Get(key{company: companyID, model: model})
}

// Set records a training result.
func (r *Registry) Set(companyID int, model string, status Status) {
	r.cache.Set(key{company: companyID, model: model}, status)
}

// Companies lists the distinct companies with live entries, sorted
// ascending. The scheduled retrain sweep iterates this list.
func (r *Registry) Companies() []int {
	seen := make(map[int]struct{})
	for _, k := range r.cache.Keys() {
		seen[k.company] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for company := range seen {
		out = append(out, company)
	}
	sort.Ints(out)
	return out
}

// Stop ends the registry's background cleanup.
func (r *Registry) Stop() {
	r.cache.Stop()
}
