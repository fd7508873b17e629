// SPDX-License-Identifier: MIT

package layout

import "sort"

// sparse is a row-major sparse matrix: rows[i][j] = a_ij for non-zero entries.
type sparse map[int]map[int]float64

func (a sparse) set(i, j int, v float64) {
	row := a[i]
	if row == nil {
		row = map[int]float64{}
		a[i] = row
	}
	row[j] = v
}

func (a sparse) at(i, j int) (float64, bool) {
	v, ok := a[i][j]
	return v, ok
}

func (a sparse) transpose() sparse {
	t := sparse{}
	for i, row := range a {
		for j, v := range row {
			t.set(j, i, v)
		}
	}
	return t
}

// mul returns a·b, keeping only non-zero entries.
func (a sparse) mul(b sparse) sparse {
	p := sparse{}
	for i, row := range a {
		acc := map[int]float64{}
		for k, av := range row {
			for j, bv := range b[k] {
				acc[j] += av * bv
			}
		}
		for j, v := range acc {
			if v != 0 {
				p.set(i, j, v)
			}
		}
	}
	return p
}

// sortedCols returns the column indices of row i in ascending order.
func (a sparse) sortedCols(i int) []int {
	cols := make([]int, 0, len(a[i]))
	for j := range a[i] {
		cols = append(cols, j)
	}
	sort.Ints(cols)
	return cols
}

// lift returns x = P·y for an n-row prolongation matrix P.
func (a sparse) lift(y Layout, n, dim int) Layout {
	x := make(Layout, n)
	for i := range x {
		p := make(Point, dim)
		for _, j := range a.sortedCols(i) {
			addScaled(p, y[j], a[i][j])
		}
		x[i] = p
	}
	return x
}
