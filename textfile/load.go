// Package textfile loads OS text files into text sequences, fragment by
// fragment. Large files may be loaded asynchronously; clients can observe
// per-fragment progress through a broadcast subscription.
package textfile

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/schuko/tracing"

	"github.com/ArtiomTr/lapce/text"
)

// tracer writes to trace with key 'lapce.textfile'.
func tracer() tracing.Trace {
	return tracing.Select("lapce.textfile")
}

// Some constants for fragment size defaults.
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// Fragment describes one loaded fragment of a file. Values of this type
// are broadcast to progress subscribers while a load is in flight.
type Fragment struct {
	Pos int64 // byte position of the fragment within the file
	Len int64 // fragment length in bytes
}

// textFile represents an OS file which will be loaded as a text sequence.
type textFile struct {
	path string
	info os.FileInfo
	file *os.File
	cast *caster.Caster // broadcaster for fragment-load progress
}

// Load reads a file, which must be a UTF-8 text file, and assembles its
// content as a text sequence. fragSize is a recommended fragment length in
// bytes; 0 lets Load pick a sensible default from the file size.
func Load(name string, fragSize int64) (text.Text, error) {
	loading, err := LoadAsync(name, fragSize)
	if err != nil {
		return text.Text{}, err
	}
	return loading.Wait()
}

// subCapacity bounds the per-fragment event backlog a slow subscriber can
// accumulate before further events are dropped.
const subCapacity = 256

// Loading is an in-flight asynchronous file load.
type Loading struct {
	cast  *caster.Caster
	frags chan interface{}
	done  chan struct{}
	text  text.Text
	err   error
}

// LoadAsync starts loading a file in the background. Opening the file and
// subscribing to progress events is done synchronously, so no fragment
// event is ever missed; reading proceeds fragment-wise in a goroutine.
func LoadAsync(name string, fragSize int64) (*Loading, error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	fragSize = fragSizeFor(tf.info.Size(), fragSize)
	tracer().Infof("loading %q: %d bytes in fragments of %d", name, tf.info.Size(), fragSize)
	loading := &Loading{
		cast: tf.cast,
		done: make(chan struct{}),
	}
	loading.frags, _ = tf.cast.Sub(context.Background(), subCapacity)
	go loading.run(tf, fragSize)
	return loading, nil
}

// Fragments returns the channel of per-fragment progress events. The
// channel carries Fragment values and is closed when the load finishes.
func (loading *Loading) Fragments() <-chan interface{} {
	return loading.frags
}

// Wait blocks until the load has finished and returns the assembled text.
func (loading *Loading) Wait() (text.Text, error) {
	<-loading.done
	return loading.text, loading.err
}

func (loading *Loading) run(tf *textFile, fragSize int64) {
	defer close(loading.done)
	defer tf.cast.Close()
	defer func() { _ = tf.file.Close() }()

	content := make([]byte, 0, tf.info.Size())
	buf := make([]byte, fragSize)
	var pos int64
	for {
		n, err := tf.file.Read(buf)
		if n > 0 {
			content = append(content, buf[:n]...)
			tf.cast.TryPub(Fragment{Pos: pos, Len: int64(n)})
			pos += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			loading.err = fmt.Errorf("textfile: reading %q failed: %w", tf.path, err)
			return
		}
	}
	t, err := text.FromBytes(content)
	if err != nil {
		loading.err = fmt.Errorf("textfile: %q: %w", tf.path, err)
		return
	}
	tracer().Debugf("loaded %q: %d codepoints", tf.path, t.Len())
	loading.text = t
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %q is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // broadcasts messages when fragments are loaded
	}
	return tf, nil
}

// fragSizeFor picks a fragment size from the file size whenever the client
// recommendation is absent or out of range.
func fragSizeFor(size int64, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return fragSize
	}
	switch {
	case size < 64:
		fragSize = size
	case size < 1024:
		fragSize = 64
	case size < tenKb:
		fragSize = 256
	case size < hundredKb:
		fragSize = 512
	case size < oneMb:
		fragSize = twoKb
	default:
		fragSize = sixKb
	}
	if fragSize <= 0 {
		fragSize = 1
	}
	return fragSize
}
