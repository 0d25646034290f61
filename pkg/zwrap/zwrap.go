// Package zwrap takes a file pointer and optionally wraps it so that
// reads go through a gzip decompressor. On Close, the decompressor is
// closed, followed by the underlying file.
// Script and data files are often shipped as .gz. We do not look at the
// name, only at the first bytes.
package zwrap

import (
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"
)

// FpGzip is what we return. If zrdr is nil, the stream was not
// compressed and reads go straight to fp.
type FpGzip struct {
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Compressed says if reads are going through the decompressor.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Close closes the decompressor, then the underlying readCloser.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and not the
// underlying file.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// Wrap puts a decompressor in front of fp. If fp does not hold gzip
// data, the error from the gzip reader is passed back.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, zrdr: zrdr}, nil
}

// WrapMaybe decides if the stream is compressed and wraps it if
// necessary. You lose the ability to seek.
func WrapMaybe(fpIn io.ReadSeekCloser) (*FpGzip, error) {
	if out, err := Wrap(fpIn); err == nil {
		return out, nil
	}
	if _, err := fpIn.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return &FpGzip{fp: fpIn}, nil
}
