package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/azdavis/nawa"
	"github.com/guiguan/caster"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// fragment is a piece of a file's content, loaded by the loader goroutine.
type fragment struct {
	index int    // sequence number of the fragment
	data  []byte // content, nil if err != nil
	err   error
}

// textFile represents an OS file which will be loaded as a rope.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file and loads it as a rope of bytes. Clients may indicate a
// recommended fragment length. If it is 0, Load will use sensible defaults.
//
// Fragments are loaded asynchronously, but Load returns only after all of
// them are in place. Opening of the file is always done synchronously.
func Load(name string, fragSize int64) (nawa.Rope[byte], error) {
	return LoadContext(context.Background(), name, fragSize)
}

// LoadContext is like Load, but stops loading as soon as ctx is done.
func LoadContext(ctx context.Context, name string, fragSize int64) (nawa.Rope[byte], error) {
	tf, err := openFile(ctx, name)
	if err != nil {
		return nawa.Rope[byte]{}, err
	}
	defer tf.file.Close()
	defer tf.cast.Close()
	size := tf.info.Size()
	if size == 0 {
		return nawa.Rope[byte]{}, nil
	}
	fragSize = fragmentSize(size, fragSize)
	count := int((size + fragSize - 1) / fragSize)
	sub, ok := tf.cast.Sub(ctx, uint(count))
	if !ok {
		return nawa.Rope[byte]{}, fmt.Errorf("cannot subscribe to fragments of %s", name)
	}
	go loadAllFragments(tf, fragSize, count)
	parts := make([][]byte, count)
	received := 0
	for received < count {
		m, ok := <-sub
		if !ok {
			break
		}
		frag := m.(fragment)
		if frag.err != nil {
			tracer().Errorf("loading %s: %v", name, frag.err)
			return nawa.Rope[byte]{}, frag.err
		}
		parts[frag.index] = frag.data
		received++
	}
	if received < count {
		if err := ctx.Err(); err != nil {
			return nawa.Rope[byte]{}, err
		}
		return nawa.Rope[byte]{}, fmt.Errorf("loading %s: got %d of %d fragments", name, received, count)
	}
	b := nawa.NewBuilder[byte]()
	for _, p := range parts {
		if err := b.Append(p); err != nil {
			return nawa.Rope[byte]{}, err
		}
	}
	tracer().Debugf("loaded %s: %d bytes in %d fragments", name, size, count)
	return b.Rope(), nil
}

// fragmentSize returns a fragment size for a file of the given size,
// preferring the client's suggestion if it is reasonable.
func fragmentSize(size int64, suggested int64) int64 {
	if suggested > 0 && suggested <= tenKb {
		return suggested
	}
	switch {
	case size < 64:
		return size
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file: %s", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments reads count fragments of tf and publishes each of them.
// It stops after the first error or if nobody listens anymore.
func loadAllFragments(tf *textFile, fragSize int64, count int) {
	size := tf.info.Size()
	for i := 0; i < count; i++ {
		pos := int64(i) * fragSize
		buf := make([]byte, min(fragSize, size-pos))
		cnt, err := tf.file.ReadAt(buf, pos)
		var frag fragment
		switch {
		case err != nil && !errors.Is(err, io.EOF):
			frag = fragment{index: i, err: fmt.Errorf("error loading text fragment: %w", err)}
		case cnt < len(buf):
			frag = fragment{index: i, err: fmt.Errorf("not all bytes loaded for text fragment at %d", pos)}
		default:
			frag = fragment{index: i, data: buf}
		}
		if !tf.cast.Pub(frag) || frag.err != nil {
			return
		}
	}
}
