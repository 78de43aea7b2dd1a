package dataset

import (
	"github.com/arloliu/linfit/format"
)

// Sample is one (x, y) observation.
type Sample struct {
	X float64
	Y float64
}

// Dataset is the ordered list of samples read from one file.
type Dataset struct {
	// Samples holds the observations in file order.
	Samples []Sample
	// Checksum is the xxHash64 of the decoded text the samples were parsed from.
	Checksum uint64
	// Compression is the codec the file was stored with.
	Compression format.CompressionType
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Samples)
}

// Columns splits the samples into independent x and y slices of equal length.
func (d *Dataset) Columns() (x, y []float64) {
	x = make([]float64, len(d.Samples))
	y = make([]float64, len(d.Samples))
	for i, s := range d.Samples {
		x[i] = s.X
		y[i] = s.Y
	}

	return x, y
}
