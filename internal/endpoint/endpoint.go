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

// Package endpoint turns textual authority strings into structured network
// endpoints. It performs no lookups: hostnames are carried as written and
// left to the connection layer to resolve.
package endpoint

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Endpoint is a single network address. Immutable once constructed.
type Endpoint struct {
	Host string
	Port int
}

func (e Endpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// Group is a set of interchangeable endpoints treated as one logical
// destination by the connection layer. A well-formed group is never empty.
type Group []Endpoint

// ParseAuthority splits a comma separated authority into endpoints, in
// input order. Each token is host[:port]; tokens without a port get
// defaultPort. Hosts may be IPv4 literals, bracketed IPv6 literals or
// hostnames. Tokens are not trimmed, so stray whitespace makes a token
// malformed.
func ParseAuthority(authority string, defaultPort int) ([]Endpoint, error) {
	if authority == "" {
		return nil, errors.New("empty authority")
	}
	tokens := strings.Split(authority, ",")
	eps := make([]Endpoint, 0, len(tokens))
	for _, tok := range tokens {
		ep, err := parseHostPort(tok, defaultPort)
		if err != nil {
			return nil, fmt.Errorf("address %q: %w", tok, err)
		}
		eps = append(eps, ep)
	}
	return eps, nil
}

func parseHostPort(tok string, defaultPort int) (Endpoint, error) {
	if tok == "" {
		return Endpoint{}, errors.New("empty address")
	}
	host := tok
	port := defaultPort

	switch {
	case strings.HasPrefix(tok, "["):
		end := strings.Index(tok, "]")
		if end < 0 {
			return Endpoint{}, errors.New("unclosed bracket in IPv6 literal")
		}
		host = tok[1:end]
		if rest := tok[end+1:]; rest != "" {
			if !strings.HasPrefix(rest, ":") {
				return Endpoint{}, errors.New("garbage after IPv6 literal")
			}
			p, err := parsePort(rest[1:])
			if err != nil {
				return Endpoint{}, err
			}
			port = p
		}
	case strings.Count(tok, ":") == 1:
		i := strings.IndexByte(tok, ':')
		host = tok[:i]
		p, err := parsePort(tok[i+1:])
		if err != nil {
			return Endpoint{}, err
		}
		port = p
	default:
		// Zero colons: a bare host. More than one: an unbracketed IPv6
		// literal, which cannot carry a port segment.
	}

	if host == "" {
		return Endpoint{}, errors.New("empty host")
	}
	if strings.ContainsAny(host, " \t/") {
		return Endpoint{}, errors.New("invalid character in host")
	}
	if port < 1 || port > 65535 {
		return Endpoint{}, fmt.Errorf("port %d out of range", port)
	}
	return Endpoint{Host: host, Port: port}, nil
}

func parsePort(s string) (int, error) {
	// Digits only. Atoi alone would also take signed forms like "+80".
	if s == "" {
		return 0, fmt.Errorf("malformed port %q", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("malformed port %q", s)
		}
	}
	p, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("malformed port %q", s)
	}
	return p, nil
}
