// SPDX-License-Identifier: MIT

package input

import "errors"

// ErrBadNumber indicates a token that is not a base-10 integer.
var ErrBadNumber = errors.New("input: not an integer")
