package stacks

import (
	"testing"

	"stack-manager/core/photos/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestNewScheduler(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	svc := NewService(new(mocks.Client), zap.NewNop(), nil)

	c, err := NewScheduler(svc, "0 3 * * *", zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)

	c.Start()
	<-c.Stop().Done()
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	svc := NewService(new(mocks.Client), zap.NewNop(), nil)

	c, err := NewScheduler(svc, "every night", zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "invalid schedule")
}
