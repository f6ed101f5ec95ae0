/*
Copyright © 2026 the Raven authors.
This file is part of Raven.

Raven is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Raven is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Raven.  If not, see <http://www.gnu.org/licenses/>.
*/

package raven

import "fmt"

// ConfigError reports an invalid model configuration: a process
// connection that resolves to a compartment of the wrong semantic type,
// a required destination compartment that was never specified, or an
// undefined sub-model selector in a participation query. It is detected
// during model construction or Initialize and aborts the run; it is
// never a retryable runtime condition.
type ConfigError struct {
	Process string // name of the offending process
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("raven: %s: invalid configuration: %s", e.Process, e.Reason)
}

func configErrorf(process, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Process: process, Reason: fmt.Sprintf(format, args...)}
}

// StubError reports that a selector value reached a branch whose
// physical formula is not coded. It is reported distinctly from
// ConfigError so that bad input can be told apart from an unfinished
// feature.
type StubError struct {
	Process string
	Feature string
}

func (e *StubError) Error() string {
	return fmt.Sprintf("raven: %s: %s is not implemented", e.Process, e.Feature)
}
