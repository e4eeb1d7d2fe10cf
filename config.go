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
	"fmt"
	"os"
	"strings"
	"time"

	"sigs.k8s.io/yaml"
)

// GlobalName keys the properties entry whose values apply to every client
// unless the client's own entry sets the field itself.
const GlobalName = "GLOBAL"

// DefaultScheme is applied to configured addresses that carry no scheme.
const DefaultScheme = StaticScheme

// Config configures the channel for one named client.
type Config struct {
	// Address is the channel target, either scheme://authority or a
	// bare authority completed by DefaultScheme.
	Address string `json:"address"`

	// DefaultScheme is prefixed to Address when it has no scheme of its
	// own. Empty means "static".
	DefaultScheme string `json:"default-scheme"`

	// DefaultPort is applied to addresses without an explicit port.
	// Zero means 9090.
	DefaultPort int `json:"default-port"`

	// DialTimeout is the timeout for failing to establish a connection.
	DialTimeout time.Duration `json:"dial-timeout"`

	// DialKeepAliveTime is the time after which client pings the server to see if
	// transport is alive.
	DialKeepAliveTime time.Duration `json:"dial-keep-alive-time"`

	// DialKeepAliveTimeout is the time that the client waits for a response for the
	// keep-alive probe. If the response is not received in this time, the connection is closed.
	DialKeepAliveTimeout time.Duration `json:"dial-keep-alive-timeout"`
}

// Target returns the address with the default scheme applied when the
// address itself carries none.
func (c Config) Target() string {
	if c.Address == "" || strings.Contains(c.Address, "://") {
		return c.Address
	}
	scheme := c.DefaultScheme
	if scheme == "" {
		scheme = DefaultScheme
	}
	return scheme + "://" + c.Address
}

func (c Config) params() Params {
	return Params{DefaultPort: c.DefaultPort}
}

// Properties holds the channel configurations of an application, keyed by
// client name. The GLOBAL entry supplies defaults for every client.
type Properties struct {
	Channels map[string]Config `json:"channels"`
}

// Channel returns the effective configuration for the named client: the
// client's own entry with unset fields filled from the GLOBAL entry.
func (p *Properties) Channel(name string) Config {
	global := p.Channels[GlobalName]
	cfg, ok := p.Channels[name]
	if !ok {
		return global
	}
	if cfg.Address == "" {
		cfg.Address = global.Address
	}
	if cfg.DefaultScheme == "" {
		cfg.DefaultScheme = global.DefaultScheme
	}
	if cfg.DefaultPort == 0 {
		cfg.DefaultPort = global.DefaultPort
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = global.DialTimeout
	}
	if cfg.DialKeepAliveTime == 0 {
		cfg.DialKeepAliveTime = global.DialKeepAliveTime
	}
	if cfg.DialKeepAliveTimeout == 0 {
		cfg.DialKeepAliveTimeout = global.DialKeepAliveTimeout
	}
	return cfg
}

// LoadFile reads channel properties from a YAML or JSON file.
func LoadFile(path string) (*Properties, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read properties: %w", err)
	}
	p := &Properties{}
	if err := yaml.Unmarshal(b, p); err != nil {
		return nil, fmt.Errorf("parse properties %q: %w", path, err)
	}
	return p, nil
}
