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
	"google.golang.org/grpc/codes"
	gresolver "google.golang.org/grpc/resolver"
	"google.golang.org/grpc/status"

	"github.com/grpckit/nameresolve/internal/endpoint"
)

type builder struct {
	reg    *Registry
	scheme string
	params Params
}

// NewGRPCBuilder adapts the strategies registered for scheme in reg to a
// grpc resolver.Builder, for use with grpc.WithResolvers. A nil reg
// selects the process-wide registry. Both "scheme://authority" and
// "scheme:///authority" target forms are accepted.
func NewGRPCBuilder(reg *Registry, scheme string, params Params) gresolver.Builder {
	if reg == nil {
		reg = defaultRegistry
	}
	return builder{reg: reg, scheme: scheme, params: params}
}

// Builders returns one grpc resolver.Builder per scheme with an available
// strategy in reg.
func Builders(reg *Registry, params Params) []gresolver.Builder {
	if reg == nil {
		reg = defaultRegistry
	}
	schemes := reg.Schemes()
	bs := make([]gresolver.Builder, 0, len(schemes))
	for _, scheme := range schemes {
		bs = append(bs, NewGRPCBuilder(reg, scheme, params))
	}
	return bs
}

func (b builder) Build(target gresolver.Target, cc gresolver.ClientConn, opts gresolver.BuildOptions) (gresolver.Resolver, error) {
	r, err := b.reg.Resolve(b.scheme+"://"+targetAuthority(target), b.params)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "resolver: %s", err)
	}

	var updateErr error
	r.Start(func(groups []endpoint.Group, _ Attributes) {
		updateErr = cc.UpdateState(gresolver.State{Addresses: convertToGRPCAddress(groups)})
	})
	if updateErr != nil {
		r.Shutdown()
		return nil, updateErr
	}
	return grpcResolver{r: r}, nil
}

func (b builder) Scheme() string { return b.scheme }

// targetAuthority recovers the raw authority from either target form:
// grpc parses "static://a,b" into the URL host and "static:///a,b" into
// the endpoint path.
func targetAuthority(target gresolver.Target) string {
	if target.URL.Host != "" {
		return target.URL.Host
	}
	return target.Endpoint()
}

func convertToGRPCAddress(groups []endpoint.Group) []gresolver.Address {
	var addrs []gresolver.Address
	for _, g := range groups {
		for _, ep := range g {
			addrs = append(addrs, gresolver.Address{Addr: ep.String()})
		}
	}
	return addrs
}

// grpcResolver maps the grpc resolver protocol onto the Resolver
// lifecycle: ResolveNow is Refresh, Close is Shutdown.
type grpcResolver struct {
	r Resolver
}

// ResolveNow is just a hint, resolvers are free to ignore it.
func (w grpcResolver) ResolveNow(gresolver.ResolveNowOptions) { w.r.Refresh() }

func (w grpcResolver) Close() { w.r.Shutdown() }
