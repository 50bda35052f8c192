package binary

import (
	"fmt"
	"io"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/exp/mmap"
)

// Source reads fixed-size records of type T from a memory-mapped file.
// Records are addressed by index; the on-disk layout must match the
// in-memory layout of T.
type Source[T any] struct {
	path       string
	recordSize int64
	reader     *mmap.ReaderAt
	scratch    *sync.Pool
}

func NewSource[T any](path string) *Source[T] {
	recordSize := int64(unsafe.Sizeof(*new(T)))
	return &Source[T]{
		path:       path,
		recordSize: recordSize,
		scratch: &sync.Pool{
			New: func() interface{} {
				b := make([]byte, recordSize)
				return &b
			},
		},
	}
}

func (s *Source[T]) Open() error {
	r, err := mmap.Open(s.path)
	if err != nil {
		return fmt.Errorf("unable to open data source %q: %w", s.path, err)
	}
	s.reader = r
	return nil
}

func (s *Source[T]) Close() {
	_ = s.reader.Close()
}

// Read decodes the record at index into out. io.EOF is returned once the
// index points past the last complete record.
func (s *Source[T]) Read(index int64, out *T) error {
	b := s.scratch.Get().(*[]byte)
	defer s.scratch.Put(b)

	n, err := s.reader.ReadAt(*b, index*s.recordSize)
	if err != nil && err != io.EOF {
		return fmt.Errorf("unable to read record %d: %w", index, err)
	}
	if int64(n) < s.recordSize {
		return io.EOF
	}

	*out = *(*T)(unsafe.Pointer(&(*b)[0])) // #nosec G103
	return nil
}

// ReadRange decodes up to len(out) consecutive records starting at start.
// It returns the number of records decoded; a short count means the file
// ended first.
func (s *Source[T]) ReadRange(start int64, out []T) (int, error) {
	for i := range out {
		if err := s.Read(start+int64(i), &out[i]); err != nil {
			if err == io.EOF {
				return i, nil
			}
			return i, err
		}
	}
	return len(out), nil
}

func (s *Source[T]) EntryCount() (int64, error) {
	if s.recordSize == 0 {
		return 0, fmt.Errorf("size of T is zero")
	}

	fileInfo, err := os.Stat(s.path)
	if err != nil {
		return 0, fmt.Errorf("unable to get data source %q stats: %w", s.path, err)
	}

	totalSize := fileInfo.Size()
	if totalSize%s.recordSize != 0 {
		return 0, fmt.Errorf("file size %d is not a multiple of record size %d", totalSize, s.recordSize)
	}

	return totalSize / s.recordSize, nil
}
