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
	"errors"
	"fmt"
)

// ErrNotApplicable reports that no registered strategy claims the scheme
// of a target. It is a dispatch signal, not a resolution failure, and is
// deliberately distinct from *InvalidTargetError so that a malformed
// authority under a claimed scheme is never masked.
var ErrNotApplicable = errors.New("no strategy for scheme")

// InvalidTargetError reports a target whose scheme matched a strategy but
// whose authority could not be turned into at least one endpoint. It is
// fatal for that target, a channel built from it can never connect.
type InvalidTargetError struct {
	Target string
	Err    error
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid target %q: %v", e.Target, e.Err)
}

func (e *InvalidTargetError) Unwrap() error { return e.Err }
