// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffpack

import (
	"bytes"
	"io"
)

// Writer buffers everything written to it and writes a single artifact to
// the underlying io.Writer upon Close.
type Writer struct {
	InputOffset  int64 // Total number of bytes issued to Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer

	wr   io.Writer
	conf WriterConfig
	buf  bytes.Buffer
	err  error // Persistent error
}

// NewWriter returns a new Writer that compresses data written to it into w.
func NewWriter(w io.Writer, conf *WriterConfig) (*Writer, error) {
	zw := new(Writer)
	if conf != nil {
		zw.conf = *conf
	}
	zw.Reset(w)
	return zw, nil
}

func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	if zw.InputOffset+int64(len(buf)) > MaxSize {
		zw.err = ErrTooLarge
		return 0, zw.err
	}
	cnt, _ := zw.buf.Write(buf)
	zw.InputOffset += int64(cnt)
	return cnt, nil
}

// Close compresses all buffered data and writes the artifact. It does not
// close the underlying io.Writer.
func (zw *Writer) Close() error {
	if zw.err == errClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}

	out, err := Compress(zw.buf.Bytes(), &zw.conf)
	if err != nil {
		zw.err = err
		return err
	}
	cnt, err := zw.wr.Write(out)
	zw.OutputOffset += int64(cnt)
	if err != nil {
		zw.err = err
		return err
	}
	zw.buf.Reset()
	zw.err = errClosed
	return nil
}

// Reset discards the Writer's state and makes it equivalent to the result
// of NewWriter with the same config, but writing to w instead.
func (zw *Writer) Reset(w io.Writer) error {
	*zw = Writer{wr: w, conf: zw.conf}
	return nil
}
