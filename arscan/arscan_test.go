package arscan

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
	"time"

	"github.com/midbel/elfit"
	"github.com/midbel/tape"
	"github.com/midbel/tape/ar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// object builds a minimal 64-bit little endian relocatable object with
// empty header tables.
func object(t *testing.T) []byte {
	t.Helper()
	var (
		buf   []byte
		order = binary.LittleEndian
	)
	buf = append(buf, elfit.Magic...)
	buf = append(buf, 2, 1, 1, 0, 0)
	buf = append(buf, make([]byte, 7)...)
	buf = order.AppendUint16(buf, 1)
	buf = order.AppendUint16(buf, 62)
	buf = order.AppendUint32(buf, 1)
	buf = order.AppendUint64(buf, 0)
	buf = order.AppendUint64(buf, 0)
	buf = order.AppendUint64(buf, 0)
	buf = order.AppendUint32(buf, 0)
	for i := 0; i < 6; i++ {
		buf = order.AppendUint16(buf, 0)
	}
	return buf
}

func archive(t *testing.T, members map[string][]byte, order []string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	aw, err := ar.NewWriter(&buf)
	require.NoError(t, err)
	for _, name := range order {
		h := tape.Header{
			Filename: name,
			Uid:      0,
			Gid:      0,
			ModTime:  time.Now().Truncate(time.Minute),
			Mode:     0644,
			Size:     int64(len(members[name])),
		}
		require.NoError(t, aw.WriteHeader(&h))
		_, err := io.Copy(aw, bytes.NewReader(members[name]))
		require.NoError(t, err)
	}
	require.NoError(t, aw.Close())
	return &buf
}

func TestScan(t *testing.T) {
	members := map[string][]byte{
		"demo.o":   object(t),
		"note.txt": []byte("not an object\n"),
	}
	buf := archive(t, members, []string{"demo.o", "note.txt"})

	es, err := Scan(buf)
	require.NoError(t, err)
	require.Len(t, es, 2)

	assert.True(t, es[0].IsELF())
	require.NotNil(t, es[0].Image)
	assert.Equal(t, elfit.TypeRelocatable, es[0].Image.Header().Type)
	assert.Equal(t, elfit.MachineX86_64, es[0].Image.Header().Machine)

	assert.False(t, es[1].IsELF())
	assert.Nil(t, es[1].Image)
	assert.Equal(t, int64(len(members["note.txt"])), es[1].Size)
}

func TestScanBrokenMember(t *testing.T) {
	broken := object(t)
	broken[4] = 9 // class byte
	members := map[string][]byte{
		"broken.o": broken,
		"demo.o":   object(t),
	}
	buf := archive(t, members, []string{"broken.o", "demo.o"})

	es, err := Scan(buf)
	require.NoError(t, err, "a broken member must not abort the scan")
	require.Len(t, es, 2)

	assert.True(t, es[0].IsELF())
	assert.Nil(t, es[0].Image)
	assert.ErrorIs(t, es[0].Err, elfit.ErrClass)

	require.NotNil(t, es[1].Image)
}

func TestScanNotAnArchive(t *testing.T) {
	_, err := Scan(bytes.NewReader([]byte("garbage")))
	assert.Error(t, err)
}
