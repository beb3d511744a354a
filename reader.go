package nawa

import "io"

// Reader returns a reader for the bytes of a rope.
func Reader(r Rope[byte]) io.Reader {
	return &ropeReader{rope: r}
}

type ropeReader struct {
	rope   Rope[byte]
	cursor uint64
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	for n < len(p) && rr.cursor < rr.rope.Len() {
		items, j := locate(rr.rope.root, rr.cursor)
		k := copy(p[n:], items[j:])
		n += k
		rr.cursor += uint64(k)
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}
