// SPDX-License-Identifier: MIT

package noise

import "errors"

// ErrEmptyChannel is returned when a channel has no Kraus operators.
var ErrEmptyChannel = errors.New("noise: channel has no kraus operators")
