package storage

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		access  Access
		want    int
		wantErr bool
	}{
		{name: "open read", mode: Open, access: Read, want: os.O_RDONLY},
		{name: "open read write", mode: Open, access: ReadWrite, want: os.O_RDWR},
		{name: "open or create read", mode: OpenOrCreate, access: Read, want: os.O_RDONLY | os.O_CREATE},
		{name: "create new write", mode: CreateNew, access: Write, want: os.O_WRONLY | os.O_CREATE | os.O_EXCL},
		{name: "create read write", mode: Create, access: ReadWrite, want: os.O_RDWR | os.O_CREATE | os.O_TRUNC},
		{name: "truncate write", mode: Truncate, access: Write, want: os.O_WRONLY | os.O_TRUNC},
		{name: "append write", mode: Append, access: Write, want: os.O_WRONLY | os.O_CREATE | os.O_APPEND},
		{name: "append read write", mode: Append, access: ReadWrite, wantErr: true},
		{name: "append read", mode: Append, access: Read, wantErr: true},
		{name: "create read", mode: Create, access: Read, wantErr: true},
		{name: "create new read", mode: CreateNew, access: Read, wantErr: true},
		{name: "truncate read", mode: Truncate, access: Read, wantErr: true},
		{name: "unknown mode", mode: Mode(42), access: Read, wantErr: true},
		{name: "unknown access", mode: Open, access: Access(0), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Flags(tt.mode, tt.access)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func newMemOperations(t *testing.T) (*FsOperations, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/appdata", 0o755))
	return NewFsOperations(fs, "/appdata"), fs
}

func TestOpenStreamWritesBeneathRoot(t *testing.T) {
	ops, fs := newMemOperations(t)
	require.Equal(t, "/appdata", ops.Root())

	s, err := ops.OpenStream("cache/tables.db", Create, ReadWrite)
	require.NoError(t, err)
	_, err = s.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	data, err := afero.ReadFile(fs, "/appdata/cache/tables.db")
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))
}

func TestOpenStreamCreateNewExisting(t *testing.T) {
	ops, fs := newMemOperations(t)
	require.NoError(t, afero.WriteFile(fs, "/appdata/existing", []byte("x"), 0o644))

	_, err := ops.OpenStream("existing", CreateNew, Write)
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrExist))
}

func TestOpenStreamOpenMissing(t *testing.T) {
	ops, _ := newMemOperations(t)
	_, err := ops.OpenStream("missing", Open, Read)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenStreamAppend(t *testing.T) {
	ops, fs := newMemOperations(t)
	require.NoError(t, afero.WriteFile(fs, "/appdata/log", []byte("one "), 0o644))

	s, err := ops.OpenStream("log", Append, Write)
	require.NoError(t, err)
	_, err = s.Write([]byte("two"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	data, err := afero.ReadFile(fs, "/appdata/log")
	require.NoError(t, err)
	require.Equal(t, "one two", string(data))
}

func TestOpenStreamTruncate(t *testing.T) {
	ops, fs := newMemOperations(t)
	require.NoError(t, afero.WriteFile(fs, "/appdata/state", []byte("stale"), 0o644))

	s, err := ops.OpenStream("state", Truncate, Write)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	data, err := afero.ReadFile(fs, "/appdata/state")
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestOpenStreamReadBack(t *testing.T) {
	ops, fs := newMemOperations(t)
	require.NoError(t, afero.WriteFile(fs, "/appdata/settings", []byte("abc"), 0o644))

	s, err := ops.OpenStream("settings", OpenOrCreate, Read)
	require.NoError(t, err)
	defer s.Close()
	data, err := io.ReadAll(s)
	require.NoError(t, err)
	require.Equal(t, "abc", string(data))
}

func TestOpenStreamEscapingRoot(t *testing.T) {
	ops, _ := newMemOperations(t)
	_, err := ops.OpenStream("../../etc/passwd", Open, Read)
	require.Error(t, err)
}

func TestOpenStreamInvalidMode(t *testing.T) {
	ops, _ := newMemOperations(t)
	_, err := ops.OpenStream("file", Append, Read)
	require.ErrorIs(t, err, ErrInvalidMode)
}
