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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialStaticTarget(t *testing.T) {
	// No server involved, connecting is lazy.
	conn, err := Dial(Config{Address: "127.0.0.1:9090,127.0.0.2:9090"})
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, "static:///127.0.0.1:9090,127.0.0.2:9090", conn.Target())
}

func TestDialTripleSlashAddress(t *testing.T) {
	// An address already written in the canonical grpc form must pass
	// through unchanged, not grow an extra slash.
	conn, err := Dial(Config{Address: "static:///127.0.0.1:9090"})
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, "static:///127.0.0.1:9090", conn.Target())
}

func TestDialFailsFastOnInvalidTarget(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no address", Config{}},
		{"empty authority", Config{Address: "static://"}},
		{"malformed port", Config{Address: "static://a:bad"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Dial(tt.cfg)
			var ite *InvalidTargetError
			require.ErrorAs(t, err, &ite)
		})
	}
}
