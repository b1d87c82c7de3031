package compression

import (
	"compress/flate"
	"io"
)

func newStdlibEngine() *flateEngine {
	return &flateEngine{
		et: StdlibEngine,
		newWriter: func(w io.Writer, level int) (flateWriter, error) {
			fw, err := flate.NewWriter(w, level)
			if err != nil {
				return nil, err
			}
			return fw, nil
		},
		newReader: flate.NewReader,
	}
}
