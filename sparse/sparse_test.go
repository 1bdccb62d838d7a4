package sparse

import "testing"

func TestMatrixSetGet(t *testing.T) {
	M := NewIntMatrix(10, 10, -1)
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected value at (2,3) to be 4711, is %d", v)
	}
	if v := M.Value(3, 2); v != -1 {
		t.Errorf("expected value at (3,2) to be the null value, is %d", v)
	}
	M.Set(2, 3, 42).Set(9, 9, 0)
	if M.Value(2, 3) != 42 || M.Value(9, 9) != 0 {
		t.Errorf("expected overwritten values 42 and 0, are %d and %d", M.Value(2, 3), M.Value(9, 9))
	}
	if M.ValueCount() != 2 {
		t.Errorf("expected 2 values, have %d", M.ValueCount())
	}
	M.Set(9, 9, M.NullValue())
	if M.ValueCount() != 1 {
		t.Errorf("expected null value to delete entry, have %d values", M.ValueCount())
	}
}

func TestMatrixRange(t *testing.T) {
	M := NewIntMatrix(2, 3, DefaultNullValue)
	if M.M() != 2 || M.N() != 3 {
		t.Errorf("expected 2 x 3 matrix, is %d x %d", M.M(), M.N())
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected out of range access to panic")
		}
	}()
	M.Set(2, 0, 1)
}
