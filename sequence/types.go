// SPDX-License-Identifier: MIT

package sequence

import "golang.org/x/exp/constraints"

// Number is the element constraint for Sequence: every type that supports
// +, -, * and == with a meaningful zero value.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}
