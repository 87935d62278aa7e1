package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrInvalidMode indicates a Mode and Access pair that cannot be combined.
var ErrInvalidMode = errors.New("invalid open mode")

// Mode describes how a stream is opened relative to an existing file.
type Mode uint8

const (
	// CreateNew creates a file and fails if it already exists.
	CreateNew Mode = iota + 1
	// Create creates a file, truncating any existing one.
	Create
	// Open opens an existing file.
	Open
	// OpenOrCreate opens a file, creating it if missing.
	OpenOrCreate
	// Truncate opens an existing file and empties it.
	Truncate
	// Append opens or creates a file positioned at its end.
	Append
)

func (m Mode) String() string {
	switch m {
	case CreateNew:
		return "CreateNew"
	case Create:
		return "Create"
	case Open:
		return "Open"
	case OpenOrCreate:
		return "OpenOrCreate"
	case Truncate:
		return "Truncate"
	case Append:
		return "Append"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Access describes the operations permitted on a stream.
type Access uint8

const (
	Read Access = 1 << iota
	Write
	ReadWrite = Read | Write
)

func (a Access) String() string {
	switch a {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case ReadWrite:
		return "ReadWrite"
	}
	return fmt.Sprintf("Access(%d)", uint8(a))
}

// Stream is a byte stream handed out by Operations.
type Stream interface {
	io.ReadWriteSeeker
	io.Closer
}

// Operations supplies byte streams on hosts where the client cannot reach
// the file system directly.
type Operations interface {
	// OpenStream opens the stream stored at path.
	OpenStream(path string, mode Mode, access Access) (Stream, error)
}

// Flags translates a Mode and Access pair into os.OpenFile flags. Read-only
// access is only valid with Open and OpenOrCreate, and Append additionally
// requires write-only access.
func Flags(mode Mode, access Access) (int, error) {
	var flags int
	switch access {
	case Read:
		flags = os.O_RDONLY
	case Write:
		flags = os.O_WRONLY
	case ReadWrite:
		flags = os.O_RDWR
	default:
		return 0, fmt.Errorf("%w: unknown access %s", ErrInvalidMode, access)
	}

	switch mode {
	case Open, OpenOrCreate:
	case Append:
		if access != Write {
			return 0, fmt.Errorf("%w: %s requires %s access", ErrInvalidMode, mode, Write)
		}
	case CreateNew, Create, Truncate:
		if access == Read {
			return 0, fmt.Errorf("%w: %s cannot be combined with %s access", ErrInvalidMode, mode, access)
		}
	default:
		return 0, fmt.Errorf("%w: unknown mode %s", ErrInvalidMode, mode)
	}

	switch mode {
	case CreateNew:
		flags |= os.O_CREATE | os.O_EXCL
	case Create:
		flags |= os.O_CREATE | os.O_TRUNC
	case OpenOrCreate:
		flags |= os.O_CREATE
	case Truncate:
		flags |= os.O_TRUNC
	case Append:
		flags |= os.O_CREATE | os.O_APPEND
	}
	return flags, nil
}

// creates reports whether mode may create a missing file.
func creates(mode Mode) bool {
	switch mode {
	case CreateNew, Create, OpenOrCreate, Append:
		return true
	}
	return false
}

// FsOperations implements Operations on an afero file system rooted at the
// local application data directory.
type FsOperations struct {
	fs   afero.Fs
	root string
}

// NewFsOperations creates Operations whose paths resolve beneath root on
// fs. Paths escaping root are rejected by the underlying afero.BasePathFs.
func NewFsOperations(fs afero.Fs, root string) *FsOperations {
	return &FsOperations{
		fs:   afero.NewBasePathFs(fs, root),
		root: root,
	}
}

// Root returns the directory the operations are confined to.
func (o *FsOperations) Root() string {
	return o.root
}

// OpenStream implements Operations.OpenStream.
func (o *FsOperations) OpenStream(path string, mode Mode, access Access) (Stream, error) {
	flags, err := Flags(mode, access)
	if err != nil {
		return nil, err
	}
	if creates(mode) {
		if err := o.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("unable to create parent directory for %s: %w", path, err)
		}
	}
	f, err := o.fs.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s (%s, %s): %w", path, mode, access, err)
	}
	return f, nil
}
