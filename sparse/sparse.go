/*
Package sparse implements a simple type for sparse integer matrices.
It is used for the memo tables of the CYK recognizer, where rows stand for
input spans and columns stand for grammar rules. Only a small fraction of all
(span, rule) combinations will ever be visited during recognition, so storing
the full m x n matrix would waste a lot of space for longer inputs.

Entries are kept in a hash map keyed by position.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     cnt := M.ValueCount()          // returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Setting the null-value deletes an entry.
type IntMatrix struct {
	values  map[int]int32
	rowcnt  int
	colcnt  int
	nullval int32
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  make(map[int]int32),
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	if v, ok := m.values[m.index(i, j)]; ok {
		return v
	}
	return m.nullval
}

// Set a value in the matrix at position (i,j). Will panic if (i,j) is out of
// range.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	k := m.index(i, j)
	if value == m.nullval {
		delete(m.values, k)
	} else {
		m.values[k] = value
	}
	return m
}

func (m *IntMatrix) index(i, j int) int {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse: index (%d,%d) out of range for %d x %d matrix", i, j, m.rowcnt, m.colcnt))
	}
	return i*m.colcnt + j
}

func (m *IntMatrix) String() string {
	return fmt.Sprintf("IntMatrix(%d x %d, %d values)", m.rowcnt, m.colcnt, len(m.values))
}
