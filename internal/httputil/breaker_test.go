// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/findthatbook/pkg/types"
)

var errRemote = errors.New("remote down")

func TestBreakerDisabledIsNil(t *testing.T) {
	b := NewBreaker("catalog", types.BreakerConfig{}, nil)
	assert.Nil(t, b)
	assert.Equal(t, "disabled", b.State())

	calls := 0
	for i := 0; i < 10; i++ {
		_ = b.Do(func() error { calls++; return errRemote })
	}
	assert.Equal(t, 10, calls)
}

func TestBreakerTripsOnFailureRatio(t *testing.T) {
	b := NewBreaker("catalog", types.BreakerConfig{
		Enabled:      true,
		MinRequests:  2,
		FailureRatio: 0.5,
		Timeout:      time.Minute,
	}, nil)

	calls := 0
	fail := func() error { calls++; return errRemote }

	assert.ErrorIs(t, b.Do(fail), errRemote)
	assert.ErrorIs(t, b.Do(fail), errRemote)
	assert.Equal(t, "open", b.State())

	err := b.Do(fail)
	assert.ErrorIs(t, err, ErrBreakerOpen)
	assert.Equal(t, 2, calls)
}

func TestBreakerIgnoresCancellation(t *testing.T) {
	b := NewBreaker("intent", types.BreakerConfig{
		Enabled:      true,
		MinRequests:  1,
		FailureRatio: 0.1,
		Timeout:      time.Minute,
	}, nil)

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, b.Do(func() error { return context.Canceled }), context.Canceled)
	}
	assert.Equal(t, "closed", b.State())
	assert.NoError(t, b.Do(func() error { return nil }))
}
