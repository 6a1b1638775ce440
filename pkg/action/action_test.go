package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a, err := FromString("raise")
	assert.NoError(t, err)
	assert.Equal(t, Raise, a)

	a, err = FromString("discard")
	assert.EqualError(t, err, "unknown action for identifier: discard")
	assert.Equal(t, Action(""), a)
}

func TestAction_LogMessage(t *testing.T) {
	assert.Equal(t, "folded", Fold.LogMessage(0))
	assert.Equal(t, "checked", Check.LogMessage(0))
	assert.Equal(t, "called 20", Call.LogMessage(20))
	assert.Equal(t, "raised to 60", Raise.LogMessage(60))
}

func TestAction_IsValid(t *testing.T) {
	assert.True(t, Call.IsValid())
	assert.False(t, Action("bet").IsValid())
}
