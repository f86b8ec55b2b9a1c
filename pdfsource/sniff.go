package pdfsource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotPDF is returned by Open for files without a PDF header
var ErrNotPDF = errors.New("not a PDF file")

// headerWindow is how far into the file the %PDF- marker may appear.
// Some producers prepend junk before it.
const headerWindow = 1024

var pdfMagic = []byte("%PDF-")

// IsPDF reports whether data starts (within headerWindow bytes) with a
// PDF header
func IsPDF(data []byte) bool {
	if len(data) > headerWindow {
		data = data[:headerWindow]
	}
	return bytes.Contains(data, pdfMagic)
}

// sniff checks the file header before handing it to the parser
func sniff(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, headerWindow)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return err
	}
	if !IsPDF(buf[:n]) {
		return fmt.Errorf("%s: %w", path, ErrNotPDF)
	}
	return nil
}
