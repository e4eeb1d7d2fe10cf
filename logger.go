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
	"os"

	"go.uber.org/zap"
)

// lg is the package logger. Silent unless the host application installs
// one via SetLogger or the debug env switch is set.
var lg = zap.NewNop()

func init() {
	if os.Getenv("GRPC_NAMERESOLVE_DEBUG") != "" {
		if l, err := zap.NewDevelopment(); err == nil {
			lg = l
		}
	}
}

// SetLogger sets the package logger. Passing nil restores the no-op
// logger. Call it before building channels, the logger is not guarded
// against concurrent replacement.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	lg = l
}
