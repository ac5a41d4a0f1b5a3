// Package zigzag implements the fixed 64-entry JPEG scan order mapping
// between (row,col) coordinates in an 8x8 block and a linear index.
package zigzag

// Size is the number of entries in the scan (8x8).
const Size = 64

// rc is a (row, col) coordinate pair.
type rc struct{ row, col int }

// order[k] gives the (row,col) visited at zig-zag position k. Index 0 is
// the DC coefficient; indices 1..63 are AC in increasing-frequency
// zig-zag order.
var order = [Size]rc{
	{0, 0}, {0, 1}, {1, 0}, {2, 0}, {1, 1}, {0, 2}, {0, 3}, {1, 2},
	{2, 1}, {3, 0}, {4, 0}, {3, 1}, {2, 2}, {1, 3}, {0, 4}, {0, 5},
	{1, 4}, {2, 3}, {3, 2}, {4, 1}, {5, 0}, {6, 0}, {5, 1}, {4, 2},
	{3, 3}, {2, 4}, {1, 5}, {0, 6}, {0, 7}, {1, 6}, {2, 5}, {3, 4},
	{4, 3}, {5, 2}, {6, 1}, {7, 0}, {7, 1}, {6, 2}, {5, 3}, {4, 4},
	{3, 5}, {2, 6}, {1, 7}, {2, 7}, {3, 6}, {4, 5}, {5, 4}, {6, 3},
	{7, 2}, {7, 3}, {6, 4}, {5, 5}, {4, 6}, {3, 7}, {4, 7}, {5, 6},
	{6, 5}, {7, 4}, {7, 5}, {6, 6}, {5, 7}, {6, 7}, {7, 6}, {7, 7},
}

// Scan reorders an 8x8 row-major matrix (flattened, stride 8) into its
// 64-entry zig-zag vector.
func Scan(m *[64]float64) [Size]float64 {
	var out [Size]float64
	for k, pos := range order {
		out[k] = m[pos.row*8+pos.col]
	}
	return out
}

// Inverse places each element of a zig-zag vector back at its (row,col)
// position in a row-major 8x8 matrix.
func Inverse(v *[Size]float64) [64]float64 {
	var out [64]float64
	for k, pos := range order {
		out[pos.row*8+pos.col] = v[k]
	}
	return out
}

// ScanInt and InverseInt are the integer-coefficient counterparts used
// after quantization, where values are already integral.
func ScanInt(m *[64]int) [Size]int {
	var out [Size]int
	for k, pos := range order {
		out[k] = m[pos.row*8+pos.col]
	}
	return out
}

func InverseInt(v *[Size]int) [64]int {
	var out [64]int
	for k, pos := range order {
		out[pos.row*8+pos.col] = v[k]
	}
	return out
}
