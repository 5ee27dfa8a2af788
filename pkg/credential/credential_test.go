package credential

import (
	"errors"
	"testing"

	"github.com/esportlab/elab/pkg/proto"
	"github.com/matryer/is"
)

func TestFileStore(t *testing.T) {
	is := is.New(t)
	s := NewFileStore(t.TempDir())

	_, err := s.Token()
	is.True(errors.Is(err, proto.ErrNoCredentials))

	is.NoErr(s.Write("abc.def.ghi"))
	token, err := s.Token()
	is.NoErr(err)
	is.Equal(token, "abc.def.ghi")

	is.NoErr(s.Clear())
	_, err = s.Token()
	is.True(errors.Is(err, proto.ErrNoCredentials))

	// Clearing twice is fine.
	is.NoErr(s.Clear())
}
