package savefile

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"

	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

var gzipMagic = []byte{0x1f, 0x8b}
var lz4Magic = []byte{0x04, 0x22, 0x4d, 0x18}

// saveReader wraps the opened file together with whatever decompression
// layer the probe selected.
type saveReader struct {
	io.Reader
	file *os.File
	gz   *gzip.Reader
}

func (r *saveReader) Close() error {
	if r.gz != nil {
		r.gz.Close()
	}
	return r.file.Close()
}

// openSave opens a save file and probes its first bytes for a compression
// signature. Vanilla saves are gzip (.xml.gz); lz4 shows up in modded and
// repacked saves; anything else is treated as plain XML. A file that is
// neither compressed nor XML fails the probe entirely.
func openSave(path string) (*saveReader, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, empire.NewSaveNotFoundError(path)
		}
		return nil, err
	}

	br := bufio.NewReaderSize(f, 1<<20)
	head, err := br.Peek(4)
	if err != nil && err != io.EOF {
		f.Close()
		return nil, err
	}

	switch {
	case hasPrefix(head, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, empire.NewUnsupportedCompressionError(path)
		}
		return &saveReader{Reader: gz, file: f, gz: gz}, nil
	case hasPrefix(head, lz4Magic):
		return &saveReader{Reader: lz4.NewReader(br), file: f}, nil
	case looksLikeXML(head):
		return &saveReader{Reader: br, file: f}, nil
	default:
		f.Close()
		return nil, empire.NewUnsupportedCompressionError(path)
	}
}

func hasPrefix(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}

// looksLikeXML accepts a leading '<', optionally behind a UTF-8 BOM or
// whitespace.
func looksLikeXML(head []byte) bool {
	i := 0
	if len(head) >= 3 && head[0] == 0xef && head[1] == 0xbb && head[2] == 0xbf {
		i = 3
	}
	for ; i < len(head); i++ {
		switch head[i] {
		case ' ', '\t', '\r', '\n':
			continue
		case '<':
			return true
		default:
			return false
		}
	}
	return false
}
