// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package lld_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/osdic/lldlink/internal/lld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkAll(t *testing.T) {
	var elfCalls, wasmCalls [][]string

	restoreElf := lld.SwapDriver(
		lld.FlavorElf,
		recordDriver(&elfCalls, lld.DriverOutput{Ok: true}),
	)
	t.Cleanup(restoreElf)

	restoreWasm := lld.SwapDriver(
		lld.FlavorWasm,
		recordDriver(&wasmCalls, lld.DriverOutput{Ok: true}),
	)
	t.Cleanup(restoreWasm)

	jobs := []lld.Job{
		{Flavor: lld.FlavorElf, Args: []string{"-o", "a", "a.o"}},
		{Flavor: lld.FlavorWasm, Args: []string{"-o", "b.wasm", "b.o"}},
		{Flavor: lld.FlavorElf, Args: []string{"-o", "c", "c.o"}},
	}

	err := lld.LinkAll(context.Background(), jobs, 0)
	require.NoError(t, err)

	assert.Len(t, elfCalls, 2)
	assert.Len(t, wasmCalls, 1)
}

func TestLinkAllFailedJob(t *testing.T) {
	var elfCalls, wasmCalls [][]string

	restoreElf := lld.SwapDriver(
		lld.FlavorElf,
		recordDriver(&elfCalls, lld.DriverOutput{Ok: true}),
	)
	t.Cleanup(restoreElf)

	restoreWasm := lld.SwapDriver(
		lld.FlavorWasm,
		recordDriver(&wasmCalls, lld.DriverOutput{
			ErrText: "no input files\n",
		}),
	)
	t.Cleanup(restoreWasm)

	jobs := []lld.Job{
		{Flavor: lld.FlavorElf, Args: []string{"-o", "a", "a.o"}},
		{Flavor: lld.FlavorWasm},
	}

	err := lld.LinkAll(context.Background(), jobs, 0)
	require.Error(t, err)

	assert.ErrorIs(t, err, &lld.LinkError{})
	assert.Contains(t, err.Error(), "job 1")
	assert.NotContains(t, err.Error(), "job 0")
}

func TestLinkAllCanceled(t *testing.T) {
	var calls [][]string

	restore := lld.SwapDriver(
		lld.FlavorElf,
		recordDriver(&calls, lld.DriverOutput{Ok: true}),
	)
	t.Cleanup(restore)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []lld.Job{
		{Flavor: lld.FlavorElf, Args: []string{"a.o"}},
		{Flavor: lld.FlavorElf, Args: []string{"b.o"}},
	}

	err := lld.LinkAll(ctx, jobs, 0)
	require.ErrorIs(t, err, context.Canceled)

	assert.Empty(t, calls, "canceled jobs must not start")
}

func TestLinkAllLimit(t *testing.T) {
	var (
		running  atomic.Int32
		overlaps atomic.Int32
	)

	gaugeDriver := func([]string) (lld.DriverOutput, error) {
		if running.Add(1) > 1 {
			overlaps.Add(1)
		}

		time.Sleep(time.Millisecond)
		running.Add(-1)

		return lld.DriverOutput{Ok: true}, nil
	}

	// Different flavors would be allowed to overlap, the limit must
	// prevent it anyway.
	for _, flavor := range []lld.Flavor{
		lld.FlavorElf,
		lld.FlavorWasm,
		lld.FlavorMachO,
		lld.FlavorCoff,
	} {
		restore := lld.SwapDriver(flavor, gaugeDriver)
		t.Cleanup(restore)
	}

	jobs := []lld.Job{
		{Flavor: lld.FlavorElf},
		{Flavor: lld.FlavorWasm},
		{Flavor: lld.FlavorMachO},
		{Flavor: lld.FlavorCoff},
	}

	err := lld.LinkAll(context.Background(), jobs, 1)
	require.NoError(t, err)

	assert.Zero(t, overlaps.Load())
}

func TestLinkAllUnknownFlavor(t *testing.T) {
	jobs := []lld.Job{
		{Flavor: lld.Flavor(42)},
	}

	err := lld.LinkAll(context.Background(), jobs, 0)
	require.ErrorIs(t, err, lld.ErrUnknownFlavor)
}
