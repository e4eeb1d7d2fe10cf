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

// Package nameresolve provides pluggable client-side name resolution for
// gRPC channel targets.
//
// A target string such as
//
//	static://host1:port1,host2:port2
//
// is dispatched by scheme to a registered Strategy, which turns the
// authority into endpoint groups and exposes them through the Resolver
// lifecycle. The built-in "static" strategy resolves a fixed,
// comma-separated address list with no lookups and no updates at runtime.
// Further strategies can be added with Register.
//
// Use NewGRPCBuilder to plug a strategy into a grpc.ClientConn via
// grpc.WithResolvers, or Dial to build a connection directly from a
// channel Config.
package nameresolve
