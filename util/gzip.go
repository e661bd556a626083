package util

import (
	"compress/gzip"
	"io"
	"strings"
)

const GzipExt = ".gz"

func IsGzipFile(f string) bool {
	return strings.HasSuffix(strings.ToLower(f), GzipExt)
}

// GzipReadCloser decompresses r; Close closes the underlying reader too.
type GzipReadCloser struct {
	*gzip.Reader
	r io.Reader
}

func NewGzipReadCloser(r io.Reader) (*GzipReadCloser, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &GzipReadCloser{Reader: gr, r: r}, nil
}

func (rc *GzipReadCloser) Close() error {
	if err := rc.Reader.Close(); err != nil {
		return err
	}

	if j, ok := rc.r.(io.Closer); ok {
		return j.Close()
	}

	return nil
}

// GzipWriteCloser compresses into w; Close flushes and closes the underlying
// writer too.
type GzipWriteCloser struct {
	*gzip.Writer
	w io.Writer
}

func NewGzipWriteCloser(w io.Writer) *GzipWriteCloser {
	return &GzipWriteCloser{Writer: gzip.NewWriter(w), w: w}
}

func (wc *GzipWriteCloser) Close() error {
	if err := wc.Writer.Close(); err != nil {
		return err
	}

	if j, ok := wc.w.(io.Closer); ok {
		return j.Close()
	}

	return nil
}
