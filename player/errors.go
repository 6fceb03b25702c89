// SPDX-License-Identifier: EPL-2.0

package player

import "errors"

var (
	// ErrInvalidConfig is wrapped by every Config validation failure.
	ErrInvalidConfig = errors.New("invalid player config")
	// ErrRunning is returned by Run when the worker is already running.
	ErrRunning = errors.New("engine already running")
	// ErrNoSource is reported when a trigger fires before SetSource.
	ErrNoSource = errors.New("no source configured")
)
