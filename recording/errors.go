// SPDX-License-Identifier: MIT

package recording

import "errors"

var (
	// ErrDataFormat indicates a bundle with a missing, malformed or
	// inconsistent field. The message names the field.
	ErrDataFormat = errors.New("recording: data format error")

	// ErrUnknownChannel indicates a channel name or index that is not part
	// of the recording.
	ErrUnknownChannel = errors.New("recording: unknown channel")
)
