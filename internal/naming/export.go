package naming

import (
	"bufio"
	"fmt"
	"io"

	"github.com/halvorsen/trapmap/internal/arrangement"
)

// Matrix is the dense 0/1 adjacency matrix: dimension p+q+n+t (Names.Order's
// length), entry (row, col) = 1 iff the node named by col has a child named
// by row. A plain int grid with a name index, no weights, no metric
// closure, no round trip back to a graph type.
type Matrix struct {
	Names *Names
	Data  [][]int
}

// BuildMatrix walks m's DAG a second time (Names is already built) and fills
// in one edge per parent/child pair it finds. A y-node or x-node column
// always ends up with exactly two set rows; a leaf column ends up with
// none, since leaves have no children.
func BuildMatrix(m *arrangement.Map, names *Names) *Matrix {
	n := len(names.Order)
	data := make([][]int, n)
	for i := range data {
		data[i] = make([]int, n)
	}
	mat := &Matrix{Names: names, Data: data}

	walkOrdered(m.Nodes(), m.Root(), func(h arrangement.NodeHandle, node *arrangement.Node) {
		col, ok := names.index[names.NodeName[h]]
		if !ok {
			return
		}
		for _, child := range node.Children() {
			childName, ok := names.NodeName[child]
			if !ok {
				continue
			}
			row, ok := names.index[childName]
			if !ok {
				continue
			}
			data[row][col] = 1
		}
	})
	return mat
}

// RowSum and ColSum are the trailing bookkeeping the dump appends: row sums
// as each row's final entry, column sums as output.txt's final line.
func (mat *Matrix) RowSum(row int) int {
	sum := 0
	for _, v := range mat.Data[row] {
		sum += v
	}
	return sum
}

func (mat *Matrix) ColSum(col int) int {
	sum := 0
	for _, row := range mat.Data {
		sum += row[col]
	}
	return sum
}

// Write emits the output.txt format: one row per matrix row (entries
// space-separated, followed by the row sum), then a final line of column
// sums.
func (mat *Matrix) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n := len(mat.Data)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if _, err := fmt.Fprintf(bw, "%d ", mat.Data[i][j]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "%d\n", mat.RowSum(i)); err != nil {
			return err
		}
	}
	for j := 0; j < n; j++ {
		sep := " "
		if j == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(bw, "%s%d", sep, mat.ColSum(j)); err != nil {
			return err
		}
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}

// Export is the one-shot convenience for building names, building the
// matrix, and writing it.
func Export(m *arrangement.Map, w io.Writer) error {
	names, err := Build(m)
	if err != nil {
		return err
	}
	return BuildMatrix(m, names).Write(w)
}
