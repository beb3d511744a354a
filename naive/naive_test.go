package naive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertDelete(t *testing.T) {
	r := From([]int{2, 4})
	r, err := r.Insert(1, []int{3, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 4}, r.Items())

	r, err = r.Delete(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, r.Items())
	assert.Equal(t, uint64(2), r.Len())
}

func TestCopyOnWrite(t *testing.T) {
	base := From([]int{1, 2, 3})
	changed, err := base.Insert(3, []int{4})
	require.NoError(t, err)
	_, err = base.Delete(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, base.Items())
	assert.Equal(t, []int{1, 2, 3, 4}, changed.Items())
}

func TestErrors(t *testing.T) {
	r := From([]byte("hey"))
	_, err := r.Insert(123, []byte("nope"))
	assert.True(t, errors.Is(err, ErrIndexOutOfBounds))
	assert.Contains(t, err.Error(), "split index (is 123) should be <= len (is 3)")

	_, err = r.Delete(2, 1)
	assert.True(t, errors.Is(err, ErrInvalidRange))
	_, err = r.Delete(4, 4)
	assert.True(t, errors.Is(err, ErrIndexOutOfBounds))
	assert.True(t, New[int]().IsEmpty())
}
