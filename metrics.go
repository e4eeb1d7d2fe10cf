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
	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	resolutionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grpckit",
		Subsystem: "nameresolve",
		Name:      "resolutions_total",
		Help:      "Total number of successful target resolution attempts.",
	}, []string{"scheme"})

	resolutionFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grpckit",
		Subsystem: "nameresolve",
		Name:      "resolution_failures_total",
		Help:      "Total number of targets rejected as invalid.",
	}, []string{"scheme"})

	// clientMetrics records per-method RPC metrics on connections built
	// by Dial.
	clientMetrics = grpcprom.NewClientMetrics()
)

func init() {
	prometheus.MustRegister(resolutionsTotal)
	prometheus.MustRegister(resolutionFailuresTotal)
	prometheus.MustRegister(clientMetrics)
}
