// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffpack

import "io"

// Reader decompresses a single artifact. The whole artifact is read from the
// underlying io.Reader on the first call to Read.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd     io.Reader
	conf   ReaderConfig
	toRead []byte // Uncompressed data ready to be emitted from Read
	loaded bool   // The artifact has been decoded
	err    error  // Persistent error
}

// NewReader returns a new Reader that decompresses the artifact from r.
func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	zr := new(Reader)
	if conf != nil {
		zr.conf = *conf
	}
	zr.Reset(r)
	return zr, nil
}

func (zr *Reader) Read(buf []byte) (int, error) {
	for {
		if len(zr.toRead) > 0 {
			cnt := copy(buf, zr.toRead)
			zr.toRead = zr.toRead[cnt:]
			zr.OutputOffset += int64(cnt)
			return cnt, nil
		}
		if zr.err != nil {
			return 0, zr.err
		}
		if zr.loaded {
			zr.err = io.EOF
			continue
		}
		zr.load()
	}
}

func (zr *Reader) load() {
	zr.loaded = true
	data, err := io.ReadAll(zr.rd)
	zr.InputOffset += int64(len(data))
	if err != nil {
		zr.err = err
		return
	}
	zr.toRead, zr.err = Decompress(data, &zr.conf)
}

// Close ends the stream. It does not close the underlying io.Reader.
func (zr *Reader) Close() error {
	if zr.err == io.EOF || zr.err == errClosed {
		zr.toRead = nil // Make sure future reads fail
		zr.err = errClosed
		return nil
	}
	return zr.err // Return the persistent error
}

// Reset discards the Reader's state and makes it equivalent to the result
// of NewReader with the same config, but reading from r instead.
func (zr *Reader) Reset(r io.Reader) error {
	*zr = Reader{rd: r, conf: zr.conf}
	return nil
}
