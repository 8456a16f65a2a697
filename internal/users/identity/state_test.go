// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package identity_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhyeonp/daylist/internal/users/identity"
)

/*
TestMemoryStateStore_SingleUse verifies a nonce can be consumed exactly once.
*/
func TestMemoryStateStore_SingleUse(t *testing.T) {
	store := identity.NewMemoryStateStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "nonce-1", time.Minute))

	// 1. First consume succeeds
	consumed, err := store.Consume(ctx, "nonce-1")
	require.NoError(t, err)
	assert.True(t, consumed)

	// 2. Second consume fails (nonce is burned)
	consumed, err = store.Consume(ctx, "nonce-1")
	require.NoError(t, err)
	assert.False(t, consumed)
}

/*
TestMemoryStateStore_UnknownNonce verifies consuming a never-issued nonce fails.
*/
func TestMemoryStateStore_UnknownNonce(t *testing.T) {
	store := identity.NewMemoryStateStore()

	consumed, err := store.Consume(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.False(t, consumed)
}

/*
TestMemoryStateStore_Expiry verifies a nonce disappears after its TTL.
*/
func TestMemoryStateStore_Expiry(t *testing.T) {
	store := identity.NewMemoryStateStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "nonce-2", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	consumed, err := store.Consume(ctx, "nonce-2")
	require.NoError(t, err)
	assert.False(t, consumed)
}
