package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegenerator struct {
	calls   []int
	affects int64
	err     error
}

func (f *fakeRegenerator) RegenerateStamina(_ context.Context, amount int) (int64, error) {
	f.calls = append(f.calls, amount)
	return f.affects, f.err
}

func TestStaminaRegenJob_Process(t *testing.T) {
	regen := &fakeRegenerator{affects: 3}
	job := NewStaminaRegenJob(regen, 5)

	require.NoError(t, job.Process(context.Background()))
	assert.Equal(t, []int{5}, regen.calls)
}

func TestStaminaRegenJob_ZeroAmountSkips(t *testing.T) {
	regen := &fakeRegenerator{}
	job := NewStaminaRegenJob(regen, 0)

	require.NoError(t, job.Process(context.Background()))
	assert.Empty(t, regen.calls)
}

func TestStaminaRegenJob_PropagatesError(t *testing.T) {
	regen := &fakeRegenerator{err: errors.New("db down")}
	job := NewStaminaRegenJob(regen, 5)

	err := job.Process(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
