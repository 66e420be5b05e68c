// SPDX-License-Identifier: MIT

package triangular

// MaxMatrixSize bounds the dimension accepted by New.
const MaxMatrixSize = 10000
