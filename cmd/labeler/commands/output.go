package commands

import (
	"io"
	"os"

	"github.com/perkrifj/adif-tools/internal/domain/errors"
)

// writeFile creates path and hands it to write. A failed close is reported
// when write itself succeeded, since buffered data may not have been flushed.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	return writeAndClose(f, write)
}

func writeAndClose(w io.WriteCloser, write func(io.Writer) error) error {
	err := write(w)
	if cerr := w.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "closing output")
	}
	return err
}
