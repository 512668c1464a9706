// Package arscan walks ar archives, such as static libraries and deb
// packages, and decodes the members that are ELF objects.
package arscan

import (
	"bytes"
	"io"
	"os"

	"github.com/midbel/elfit"
	"github.com/midbel/tape/ar"
	"github.com/pkg/errors"
)

// Entry describes one archive member. Image is nil when the member does
// not carry the ELF magic; Err holds the decode failure for members
// that look like ELF objects but can not be parsed.
type Entry struct {
	Name  string
	Size  int64
	Image *elfit.Image
	Err   error
}

func (e Entry) IsELF() bool {
	return e.Image != nil || e.Err != nil
}

// Scan reads every member of the archive in order. A member that fails
// to decode does not stop the scan: the failure is kept in its entry so
// a caller can report on the rest of the archive.
func Scan(r io.Reader) ([]Entry, error) {
	rs, err := ar.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "arscan: open archive")
	}
	var list []Entry
	for {
		h, err := rs.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Wrap(err, "arscan: read member header")
		}
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, io.LimitReader(rs, h.Size)); err != nil {
			return nil, errors.Wrapf(err, "arscan: read member %s", h.Filename)
		}
		e := Entry{
			Name: h.Filename,
			Size: h.Size,
		}
		if data := buf.Bytes(); elfit.IsELF(data) {
			img, err := elfit.Parse(data)
			if err != nil {
				e.Err = errors.Wrapf(err, "arscan: member %s", h.Filename)
			} else {
				e.Image = img
			}
		}
		list = append(list, e)
	}
	return list, nil
}

// ScanFile opens the archive at file and scans it.
func ScanFile(file string) ([]Entry, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Scan(r)
}
