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
	"go.uber.org/zap"

	"github.com/grpckit/nameresolve/internal/endpoint"
)

// StaticScheme is the target scheme claimed by the static strategy.
const StaticScheme = "static"

// StaticStrategy resolves static:// targets to the fixed address list
// carried in the authority. It performs no lookups and never updates, so
// it has zero operational overhead but cannot adapt to address changes.
type StaticStrategy struct{}

func (StaticStrategy) Scheme() string { return StaticScheme }

// Priority is mid-range among the built-in strategies. Dispatch is by
// exact scheme, so it only matters when another strategy also claims
// "static".
func (StaticStrategy) Priority() int { return 5 }

// Available always reports true, static resolution has no external
// runtime dependency.
func (StaticStrategy) Available() bool { return true }

// New parses the authority into one endpoint group per address.
func (StaticStrategy) New(authority string, params Params) (Resolver, error) {
	eps, err := endpoint.ParseAuthority(authority, params.port())
	if err != nil {
		return nil, &InvalidTargetError{Target: StaticScheme + "://" + authority, Err: err}
	}
	groups := make([]endpoint.Group, len(eps))
	for i, ep := range eps {
		groups[i] = endpoint.Group{ep}
	}
	return &staticResolver{authority: authority, groups: groups}, nil
}

// staticResolver delivers its fixed endpoint set once on Start and stays
// silent afterwards. The owning channel drives the lifecycle from a
// single goroutine, so plain fields suffice for the state flags.
type staticResolver struct {
	authority string
	groups    []endpoint.Group

	started  bool
	shutdown bool
}

func (r *staticResolver) ServiceAuthority() string { return r.authority }

// Start delivers the full endpoint set synchronously. Repeating it, or
// calling it after Shutdown, violates the resolver contract and does
// nothing.
func (r *staticResolver) Start(l Listener) {
	if r.started || r.shutdown {
		return
	}
	r.started = true
	lg.Debug("delivering static addresses",
		zap.String("authority", r.authority),
		zap.Int("groups", len(r.groups)))
	l(r.groups, Attributes{})
}

// Refresh does nothing, the address set cannot change.
func (r *staticResolver) Refresh() {}

// Shutdown is idempotent. There are no resources to release.
func (r *staticResolver) Shutdown() {
	r.shutdown = true
}
