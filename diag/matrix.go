// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: render the subgraph-dependency graph built during Phase E stratum
// assignment (partition package) as a dense 0/1 adjacency matrix, for
// debugging, the same way the teacher's own
// examples/matrix_spectral_analysis.go renders a graph's matrix form for
// inspection — but as a hand-rolled grid rather than a dependency on the
// teacher's general-purpose matrix package, since nothing else here needs
// eigenvalues, LU/QR decomposition, or incidence matrices.

package diag

import (
	"fmt"
	"strings"
)

// RenderSubgraphMatrix builds an n×n dense 0/1 grid where cell (i, j) is 1
// if edges contains the pair (i, j) — a subgraph-to-subgraph handoff — and
// renders it as a human-readable grid. n is the number of subgraphs; edges
// are (predecessor, successor) subgraph-index pairs.
//
// This is purely a diagnostic aid: nothing in the partition builder reads
// the result back. Complexity: O(n^2 + len(edges)).
func RenderSubgraphMatrix(n int, edges [][2]int) (string, error) {
	if n == 0 {
		return "(empty)", nil
	}
	grid := make([][]byte, n)
	for row := range grid {
		grid[row] = make([]byte, n)
	}
	for _, e := range edges {
		row, col := e[0], e[1]
		if row < 0 || row >= n || col < 0 || col >= n {
			return "", fmt.Errorf("diag: subgraph edge (%d,%d) out of range [0,%d)", row, col, n)
		}
		grid[row][col] = 1
	}

	var sb strings.Builder
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if grid[row][col] != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
