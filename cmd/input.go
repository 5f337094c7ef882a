package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/lehigh-university-libraries/scholarsim/dataset"
)

// readTable loads a dataset table from path, or from stdin when path is
// empty.
func readTable(path string) (t *dataset.Table, err error) {
	var input io.Reader
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
	} else {
		input = os.Stdin
	}

	return dataset.Parse(input)
}
