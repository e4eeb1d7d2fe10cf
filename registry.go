// Copyright 2026 The grpckit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nameresolve

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Registry dispatches target strings to resolution strategies by scheme.
// Strategies claiming the same scheme are tried in descending priority
// order. All methods are safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	strategies []Strategy
}

// NewRegistry creates a registry holding the given strategies.
func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{}
	for _, s := range strategies {
		r.Register(s)
	}
	return r
}

// Register adds a strategy. Strategies registered later with equal
// priority are tried after earlier ones.
func (r *Registry) Register(s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies = append(r.strategies, s)
	sort.SliceStable(r.strategies, func(i, j int) bool {
		return r.strategies[i].Priority() > r.strategies[j].Priority()
	})
}

// Schemes returns the distinct schemes with at least one available
// strategy, in registration priority order.
func (r *Registry) Schemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool, len(r.strategies))
	var schemes []string
	for _, s := range r.strategies {
		if !s.Available() || seen[s.Scheme()] {
			continue
		}
		seen[s.Scheme()] = true
		schemes = append(schemes, s.Scheme())
	}
	return schemes
}

// Resolve splits target into scheme://authority and hands the authority
// to the highest-priority available strategy claiming the scheme.
//
// It returns ErrNotApplicable when no strategy claims the scheme, and the
// strategy's *InvalidTargetError when the claiming strategy rejects the
// authority. The latter is never swallowed by falling through to another
// strategy: a claimed scheme with a bad authority is a configuration
// error.
func (r *Registry) Resolve(target string, params Params) (Resolver, error) {
	scheme, authority, ok := splitTarget(target)
	if !ok {
		return nil, &InvalidTargetError{Target: target, Err: errors.New("missing scheme")}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.strategies {
		if s.Scheme() != scheme || !s.Available() {
			continue
		}
		res, err := s.New(authority, params)
		if err != nil {
			resolutionFailuresTotal.WithLabelValues(scheme).Inc()
			lg.Warn("target resolution failed",
				zap.String("target", target),
				zap.Error(err))
			return nil, err
		}
		resolutionsTotal.WithLabelValues(scheme).Inc()
		lg.Debug("target resolved",
			zap.String("target", target),
			zap.String("authority", res.ServiceAuthority()))
		return res, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotApplicable, scheme)
}

func splitTarget(target string) (scheme, authority string, ok bool) {
	i := strings.Index(target, "://")
	if i <= 0 {
		return "", "", false
	}
	// Canonical grpc targets carry the authority in the path,
	// scheme:///a,b. Strip the separating slash so both forms yield
	// the same authority.
	authority = strings.TrimPrefix(target[i+len("://"):], "/")
	return target[:i], authority, true
}

var defaultRegistry = NewRegistry(StaticStrategy{})

// DefaultRegistry returns the process-wide registry, seeded with the
// built-in strategies.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds a strategy to the process-wide registry.
func Register(s Strategy) { defaultRegistry.Register(s) }

// Resolve resolves target against the process-wide registry.
func Resolve(target string, params Params) (Resolver, error) {
	return defaultRegistry.Resolve(target, params)
}
