package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Some constants for fragment size defaults.
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// ErrInvalidUTF8 is returned when a script file is not valid UTF-8.
type ErrInvalidUTF8 string

func (e ErrInvalidUTF8) Error() string { return string(e) }

const errInvalidUTF8 ErrInvalidUTF8 = "script file is not valid UTF-8"

// textFile represents an OS file to be loaded as a script.
type textFile struct {
	path string
	info os.FileInfo
	file *os.File
}

// Load reads a UTF-8 script file in full, for a host's `--script` flag to
// feed line by line into the tokenizer/parser/executor. fragSize controls
// the read buffer size; if it is out of range a default based on file size
// is chosen.
func Load(name string, fragSize int64) (string, error) {
	tf, err := openFile(name)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = tf.file.Close()
	}()

	tracer().Infof("opened script file %s", tf.info.Name())
	fragSize = normalizeFragSize(fragSize, tf.info.Size())

	if tf.info.Size() == 0 {
		return "", nil
	}

	var b strings.Builder
	if err := loadWithPrefetch(tf.file, fragSize, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// openFile opens an OS file and checks basic preconditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return &textFile{
		path: name,
		info: fi,
		file: file,
	}, nil
}

func normalizeFragSize(fragSize, fileSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return fragSize
	}
	switch {
	case fileSize <= 0:
		return twoKb
	case fileSize < 64:
		return fileSize
	case fileSize < 1024:
		return 64
	case fileSize < tenKb:
		return 1024
	case fileSize < hundredKb:
		return 512
	case fileSize < oneMb:
		return twoKb
	default:
		return sixKb
	}
}

func loadWithPrefetch(file *os.File, fragSize int64, b *strings.Builder) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chunks := make(chan []byte, 8)
	errCh := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(chunks)
		readFileChunks(ctx, file, fragSize, chunks, errCh)
	}()

	for frag := range chunks {
		b.Write(frag)
	}
	<-done
	return consumeErr(errCh)
}

func readFileChunks(ctx context.Context, file *os.File, fragSize int64, out chan<- []byte, errCh chan<- error) {
	reader := io.Reader(file)
	buf := make([]byte, fragSize)
	pending := make([]byte, 0, 3)
	for {
		n, readErr := reader.Read(buf)
		if n > 0 {
			data := append(pending, buf[:n]...)
			prefix, tail, splitErr := splitValidUTF8Prefix(data)
			if splitErr != nil {
				publishErr(errCh, splitErr)
				return
			}
			if len(prefix) > 0 {
				frag := append([]byte(nil), prefix...)
				select {
				case out <- frag:
				case <-ctx.Done():
					return
				}
			}
			pending = pending[:0]
			pending = append(pending, tail...)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			publishErr(errCh, fmt.Errorf("script load failed: %w", readErr))
			return
		}
	}
	if len(pending) > 0 {
		if !utf8.Valid(pending) {
			publishErr(errCh, errInvalidUTF8)
			return
		}
		frag := append([]byte(nil), pending...)
		select {
		case out <- frag:
		case <-ctx.Done():
		}
	}
}

func publishErr(errCh chan<- error, err error) {
	select {
	case errCh <- err:
	default:
	}
}

func consumeErr(errCh <-chan error) error {
	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

func splitValidUTF8Prefix(data []byte) (prefix []byte, tail []byte, err error) {
	if len(data) == 0 {
		return nil, nil, nil
	}
	if utf8.Valid(data) {
		return data, nil, nil
	}
	maxTail := 3
	if len(data) < maxTail {
		maxTail = len(data)
	}
	for tailLen := 1; tailLen <= maxTail; tailLen++ {
		cut := len(data) - tailLen
		if utf8.Valid(data[:cut]) && !utf8.FullRune(data[cut:]) {
			return data[:cut], data[cut:], nil
		}
	}
	return nil, nil, errInvalidUTF8
}
