// Copyright 2025 walteh LLC
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

package operation

import (
	"context"

	"github.com/rs/zerolog"
)

// 🏃 Runner executes pipeline operations strictly in order: each stage runs
// to completion before the next begins, and a stage failure stops the
// pipeline where it stands.
type Runner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// 🏃 Run executes the operations one after another. Stage errors are
// returned as-is so their guidance reaches the console verbatim; the stage
// name is recorded at debug level instead of wrapped into the error.
func (r *Runner) Run(ctx context.Context, ops ...Operation) error {
	for _, op := range ops {
		r.logger.Debug().Str("operation", op.Name()).Msg("executing operation")
		if err := op.Execute(ctx); err != nil {
			r.logger.Debug().Str("operation", op.Name()).Err(err).Msg("operation failed")
			return err
		}
		r.logger.Debug().Str("operation", op.Name()).Msg("operation complete")
	}
	return nil
}
