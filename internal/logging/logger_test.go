package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	l, err := Parse("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	_, err = Parse("loud")
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() { l.WithField("k", "v").Info("dropped") })
}
