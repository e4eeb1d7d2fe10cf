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
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

const roundRobinServiceConfig = `{"loadBalancingConfig": [{"round_robin":{}}]}`

// Dial builds a client connection for cfg using the process-wide
// registry. See DialContext.
func Dial(cfg Config, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	return DialContext(context.Background(), cfg, opts...)
}

// DialContext builds a client connection for cfg. The configured target
// is resolved through the registered strategies, requests are spread
// round-robin over the resolved endpoints, and client metrics are
// recorded per method. Additional opts are appended last and may
// override the defaults. Transport security is left to the caller, the
// default is insecure.
func DialContext(ctx context.Context, cfg Config, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	target := cfg.Target()
	scheme, authority, ok := splitTarget(target)
	if !ok {
		return nil, &InvalidTargetError{Target: target, Err: errors.New("no address configured")}
	}

	// Fail fast on misconfigured targets instead of at the first RPC. A
	// scheme no strategy claims may still be served by grpc's own
	// resolver registry (dns, passthrough), so NotApplicable passes.
	if r, err := defaultRegistry.Resolve(target, cfg.params()); err == nil {
		r.Shutdown()
	} else if !errors.Is(err, ErrNotApplicable) {
		return nil, err
	}

	dopts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultServiceConfig(roundRobinServiceConfig),
		grpc.WithResolvers(Builders(defaultRegistry, cfg.params())...),
		grpc.WithChainUnaryInterceptor(clientMetrics.UnaryClientInterceptor()),
		grpc.WithChainStreamInterceptor(clientMetrics.StreamClientInterceptor()),
	}
	if cfg.DialKeepAliveTime > 0 {
		dopts = append(dopts, grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                cfg.DialKeepAliveTime,
			Timeout:             cfg.DialKeepAliveTimeout,
			PermitWithoutStream: true,
		}))
	}
	dopts = append(dopts, opts...)

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}

	// The scheme:///authority form keeps authorities with commas or
	// multiple ports intact through grpc's URL target parsing.
	return grpc.DialContext(ctx, scheme+":///"+authority, dopts...)
}
