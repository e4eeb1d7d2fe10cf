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

package endpoint

import (
	"testing"
)

func TestParseAuthority(t *testing.T) {
	tests := []struct {
		authority string
		want      []Endpoint
	}{
		{"127.0.0.1:2379", []Endpoint{{"127.0.0.1", 2379}}},
		{"localhost:8080", []Endpoint{{"localhost", 8080}}},
		{"localhost", []Endpoint{{"localhost", 9090}}},
		{"svc.example.com:50051", []Endpoint{{"svc.example.com", 50051}}},

		{"192.168.1.1:8080,10.0.0.1:1337", []Endpoint{{"192.168.1.1", 8080}, {"10.0.0.1", 1337}}},
		{"a:1,b:2,c:3", []Endpoint{{"a", 1}, {"b", 2}, {"c", 3}}},
		{"a,b:2", []Endpoint{{"a", 9090}, {"b", 2}}},

		{"[::1]:443", []Endpoint{{"::1", 443}}},
		{"[::1]", []Endpoint{{"::1", 9090}}},
		{"::1", []Endpoint{{"::1", 9090}}},
		{"[2001:db8::1]:8080,10.0.0.1", []Endpoint{{"2001:db8::1", 8080}, {"10.0.0.1", 9090}}},
	}
	for _, tt := range tests {
		t.Run(tt.authority, func(t *testing.T) {
			got, err := ParseAuthority(tt.authority, 9090)
			if err != nil {
				t.Fatalf("ParseAuthority() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseAuthority() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseAuthority()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseAuthorityDefaultPort(t *testing.T) {
	got, err := ParseAuthority("example.com", 50051)
	if err != nil {
		t.Fatalf("ParseAuthority() unexpected error: %v", err)
	}
	if want := (Endpoint{"example.com", 50051}); got[0] != want {
		t.Errorf("ParseAuthority() = %v, want %v", got[0], want)
	}
}

func TestParseAuthorityRejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		",",
		"a:1,",
		",a:1",
		"a:1,,b:2",
		"a:notaport",
		"a:0",
		"a:65536",
		"a:-1",
		":8080",
		"[::1:8080",
		"[::1]8080",
		" a:1",
		"/a:1",
		"a:+80",
		"a:8_0",
	}
	for _, authority := range tests {
		t.Run(authority, func(t *testing.T) {
			eps, err := ParseAuthority(authority, 9090)
			if err == nil {
				t.Fatalf("ParseAuthority(%q) = %v, want error", authority, eps)
			}
		})
	}
}

func TestEndpointString(t *testing.T) {
	tests := []struct {
		ep   Endpoint
		want string
	}{
		{Endpoint{"127.0.0.1", 2379}, "127.0.0.1:2379"},
		{Endpoint{"::1", 443}, "[::1]:443"},
		{Endpoint{"localhost", 9090}, "localhost:9090"},
	}
	for _, tt := range tests {
		if got := tt.ep.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
