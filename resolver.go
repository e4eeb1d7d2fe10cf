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
	"github.com/grpckit/nameresolve/internal/endpoint"
)

// DefaultPort is the fallback applied to addresses without an explicit
// port when the resolution parameters carry none. It matches the port
// gRPC servers in this ecosystem listen on by default.
const DefaultPort = 9090

// Params carries caller supplied resolution parameters. The zero value
// selects all defaults.
type Params struct {
	// DefaultPort is applied to addresses without an explicit port.
	// Zero means DefaultPort.
	DefaultPort int
}

func (p Params) port() int {
	if p.DefaultPort != 0 {
		return p.DefaultPort
	}
	return DefaultPort
}

// Attributes is an opaque bag of metadata delivered alongside resolved
// endpoint groups. The static strategy always delivers an empty set.
type Attributes map[string]any

// Listener receives resolved endpoint groups. A Resolver invokes it from
// Start and again whenever the resolved set changes, never concurrently.
// The groups snapshot is immutable, listeners must not modify it.
type Listener func(groups []endpoint.Group, attrs Attributes)

// Resolver is one name-resolution session for a single target.
//
// The owning channel drives it sequentially: Start exactly once, Refresh
// zero or more times afterwards, Shutdown last. Shutdown is safe to call
// in any state and repeatedly.
type Resolver interface {
	// ServiceAuthority returns the authority of the target, verbatim,
	// valid in any state. Channels use it as a stable identity label.
	ServiceAuthority() string

	// Start registers the listener and begins resolution. Delivery may
	// happen synchronously before Start returns.
	Start(l Listener)

	// Refresh hints that the resolved set may be stale. Implementations
	// are free to ignore it.
	Refresh()

	// Shutdown ends the session. No listener invocation happens after
	// it returns.
	Shutdown()
}

// Strategy resolves targets for one URI scheme. Implementations must be
// side-effect free and safe for concurrent use, New is called from
// whatever goroutine builds the channel.
type Strategy interface {
	// Scheme returns the target scheme this strategy claims. Matching
	// is exact and case-sensitive.
	Scheme() string

	// Priority orders strategies claiming the same scheme, higher wins.
	Priority() int

	// Available reports whether the strategy can currently resolve,
	// letting strategies with an external dependency excuse themselves
	// from dispatch.
	Available() bool

	// New builds a resolver for the given authority. A rejected
	// authority yields an *InvalidTargetError.
	New(authority string, params Params) (Resolver, error)
}
