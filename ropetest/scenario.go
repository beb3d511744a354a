package ropetest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Breakfast runs a fixed sequence of edits on a rope of bytes created by from,
// checking content and length after every step.
func Breakfast[S Sequence[byte, S]](t testing.TB, from func([]byte) S) {
	t.Helper()
	r := from([]byte("break"))
	expect(t, r, "break")

	steps := []struct {
		name  string
		edit  func(S) (S, error)
		after string
	}{
		{"insert fast", func(r S) (S, error) { return r.Insert(5, []byte("fast")) }, "breakfast"},
		{"delete [3,8)", func(r S) (S, error) { return r.Delete(3, 8) }, "bret"},
		{"delete [1,2)", func(r S) (S, error) { return r.Delete(1, 2) }, "bet"},
		{"insert nothing", func(r S) (S, error) { return r.Insert(3, []byte("")) }, "bet"},
		{"insert ter", func(r S) (S, error) { return r.Insert(3, []byte("ter")) }, "better"},
		{"delete all", func(r S) (S, error) { return r.Delete(0, 6) }, ""},
	}
	for _, step := range steps {
		var err error
		r, err = step.edit(r)
		require.NoError(t, err, step.name)
		expect(t, r, step.after)
	}
}

// OutOfBounds tries to insert behind the end of a rope of length 3 and
// returns the error, which must not be nil.
func OutOfBounds[S Sequence[byte, S]](t testing.TB, from func([]byte) S) error {
	t.Helper()
	r := from([]byte("hey"))
	_, err := r.Insert(123, []byte("nope"))
	require.Error(t, err)
	return err
}

func expect[S Sequence[byte, S]](t testing.TB, r S, content string) {
	t.Helper()
	require.Equal(t, content, string(r.Items()))
	require.Equal(t, uint64(len(content)), r.Len())
	require.Equal(t, len(content) == 0, r.IsEmpty())
}
