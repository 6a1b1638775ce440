package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	assert.Equal(t, "fallback", Getenv("POKER_TEST_MISSING_KEY", "fallback"))

	_ = os.Setenv("POKER_TEST_KEY", "value")
	defer func() { _ = os.Unsetenv("POKER_TEST_KEY") }()
	assert.Equal(t, "value", Getenv("POKER_TEST_KEY", "fallback"))
}
