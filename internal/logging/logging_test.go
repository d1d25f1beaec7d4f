package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	defer root.SetLevel(logrus.InfoLevel)

	SetLevel("debug")
	assert.Equal(t, logrus.DebugLevel, root.GetLevel())

	SetLevel("WARN")
	assert.Equal(t, logrus.WarnLevel, root.GetLevel())

	SetLevel(" error ")
	assert.Equal(t, logrus.ErrorLevel, root.GetLevel())

	// Unknown names fall back to info.
	SetLevel("chatty")
	assert.Equal(t, logrus.InfoLevel, root.GetLevel())
}

func TestWithFieldsCarriesFields(t *testing.T) {
	logger := WithFields(Fields{"component": "test"})
	l, ok := logger.(*logrusLogger)
	require.True(t, ok)
	assert.Equal(t, "test", l.entry.Data["component"])

	chained, ok := logger.WithFields(Fields{"stage": "setup"}).(*logrusLogger)
	require.True(t, ok)
	assert.Equal(t, "test", chained.entry.Data["component"])
	assert.Equal(t, "setup", chained.entry.Data["stage"])
}

func TestErrorWithNilError(t *testing.T) {
	logger := NewDefaultLogger()

	assert.NotPanics(t, func() {
		logger.Error(nil, "no underlying error")
		logger.Error(errors.New("boom"), "with underlying error", Fields{"k": "v"})
	})
}
