package compression

import (
	"io"

	"github.com/klauspost/compress/flate"
)

func newKlauspostEngine() *flateEngine {
	return &flateEngine{
		et: KlauspostEngine,
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
