package payment

import "testing"

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{4800, 480000},
		{600.50, 60050},
		// 682.11*3 is 2046.3299… in binary floats; truncation would lose a poisha.
		{682.11 * 3, 204633},
		{0.01, 1},
		{0, 0},
	}
	for _, c := range cases {
		if got := minorUnits(c.amount); got != c.want {
			t.Errorf("minorUnits(%v) = %d, want %d", c.amount, got, c.want)
		}
	}
}
