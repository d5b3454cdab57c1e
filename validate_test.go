package twist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireID(t *testing.T) {
	t.Parallel()

	assert.NoError(t, requireID(1, "thread"))

	for _, id := range []int64{0, -1} {
		err := requireID(id, "thread")
		assert.ErrorIs(t, err, ErrInvalidID)
		assert.EqualError(t, err, "invalid thread id")
	}
}

func TestRequireIDs(t *testing.T) {
	t.Parallel()

	assert.NoError(t, requireIDs([]int64{1, 2}, "user"))
	assert.ErrorIs(t, requireIDs(nil, "user"), ErrEmptyField)
	assert.EqualError(t, requireIDs([]int64{}, "user"), "user list cannot be empty")
	assert.ErrorIs(t, requireIDs([]int64{1, 0}, "user"), ErrInvalidID)
}

func TestRequireText(t *testing.T) {
	t.Parallel()

	assert.NoError(t, requireText("x", "title"))
	assert.NoError(t, optionalText(nil, "title"))

	err := requireText(" \n\t", "title")
	assert.ErrorIs(t, err, ErrEmptyField)
	assert.EqualError(t, err, "title cannot be empty")

	blank := ""
	assert.ErrorIs(t, optionalText(&blank, "title"), ErrEmptyField)
	assert.NoError(t, nonBlankIfSet("", "email"))
	assert.ErrorIs(t, nonBlankIfSet("  ", "email"), ErrEmptyField)
}

func TestRequireOneOf(t *testing.T) {
	t.Parallel()

	assert.NoError(t, requireOneOf(PlatformDesktop, "platform", PlatformMobile, PlatformDesktop))

	err := requireOneOf(Platform("tv"), "platform", PlatformMobile, PlatformDesktop)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "invalid platform")

	assert.ErrorIs(t, requireOneOf(Platform(""), "platform", PlatformMobile), ErrInvalidValue)
}

func TestOptionalIDs(t *testing.T) {
	t.Parallel()

	assert.NoError(t, optionalID(nil, "channel"))
	assert.ErrorIs(t, optionalID(ptr(int64(0)), "channel"), ErrInvalidID)
	assert.NoError(t, idIfSet(0, "channel"))
	assert.ErrorIs(t, idIfSet(-1, "channel"), ErrInvalidID)
}

func TestRequireAnyAndNonNegative(t *testing.T) {
	t.Parallel()

	assert.NoError(t, requireAny("a or b", false, true))
	assert.ErrorIs(t, requireAny("a or b", false, false), ErrNothingToUpdate)
	assert.ErrorIs(t, requireAny("a or b"), ErrNothingToUpdate)

	assert.NoError(t, requireNonNegative(0, "limit"))
	assert.ErrorIs(t, requireNonNegative(-1, "limit"), ErrInvalidValue)
}

func TestFirstError(t *testing.T) {
	t.Parallel()

	first := errors.New("first")

	assert.NoError(t, firstError(nil, nil))
	assert.Equal(t, first, firstError(nil, first, errors.New("second")))
}
