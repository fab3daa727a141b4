// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package panel

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/nodeclient"
	"github.com/luxfi/chaindash/pkg/notify"
	"github.com/luxfi/chaindash/pkg/prompts"
	"github.com/luxfi/chaindash/pkg/prompts/mocks"
	"github.com/luxfi/chaindash/pkg/store"
	"github.com/luxfi/chaindash/pkg/units"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func promptReturning(prompt string, res prompts.Result) *mocks.Prompter {
	p := &mocks.Prompter{}
	p.On("CaptureString", prompt).Return(res, nil)
	return p
}

func TestStakeRejectsNonNumericInput(t *testing.T) {
	inputs := []string{"abc", "", "   ", "1..2", "Infinity", "NaN", "0x10", "1,5", "0.0000000000000000001"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			node := newFakeNode(t)
			rec := &notify.Recorder{}
			p := promptReturning(PromptStake, prompts.Confirmed(in))
			sc := NewStakeControl(node.options(p, rec, nil))

			err := sc.Stake(context.Background())

			require.ErrorIs(t, err, ErrInvalidInput)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, in, verr.Input)
			require.Equal(t, []string{MsgInvalidInput}, rec.Messages())
			require.Empty(t, node.Posts())
			p.AssertExpectations(t)
		})
	}
}

func TestNonPositiveAmounts(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		action  func(*StakeControl, context.Context) error
		message string
	}{
		{name: "stake", prompt: PromptStake, action: (*StakeControl).Stake, message: MsgStakeNotPositive},
		{name: "unstake", prompt: PromptUnstake, action: (*StakeControl).Unstake, message: MsgUnstakeNotPositive},
	}
	for _, tt := range tests {
		for _, in := range []string{"0", "-0", "0.000", "-1", "-0.5"} {
			t.Run(tt.name+"/"+in, func(t *testing.T) {
				node := newFakeNode(t)
				rec := &notify.Recorder{}
				p := promptReturning(tt.prompt, prompts.Confirmed(in))
				sc := NewStakeControl(node.options(p, rec, nil))

				err := tt.action(sc, context.Background())

				require.ErrorIs(t, err, ErrNonPositiveAmount)
				require.Equal(t, []string{tt.message}, rec.Messages())
				require.Empty(t, node.Posts())
			})
		}
	}
}

func TestValidAmountPostsHex(t *testing.T) {
	tests := []struct {
		input string
		hex   string
	}{
		{"1", "0xde0b6b3a7640000"},
		{"0.5", "0x6f05b59d3b20000"},
		{" 2e3 ", "0x6c6b935b8bbd400000"},
		{"1.500000000000000000", "0x14d1120d7b160000"},
		{"0.000000000000000001", "0x1"},
		{"+3", "0x29a2241af62c0000"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := newFakeNode(t)
			rec := &notify.Recorder{}
			p := &mocks.Prompter{}
			p.On("CaptureString", PromptStake).Return(prompts.Confirmed(tt.input), nil)
			p.On("CaptureString", PromptUnstake).Return(prompts.Confirmed(tt.input), nil)
			sc := NewStakeControl(node.options(p, rec, nil))

			require.NoError(t, sc.Stake(context.Background()))
			require.NoError(t, sc.Unstake(context.Background()))

			require.Equal(t, []post{
				{Path: constants.PathStake, Body: map[string]any{"amount": tt.hex}},
				{Path: constants.PathUnstake, Body: map[string]any{"amount": tt.hex}},
			}, node.Posts())
			require.Empty(t, rec.Messages())
		})
	}
}

func TestCancelledPromptSendsNothing(t *testing.T) {
	node := newFakeNode(t)
	rec := &notify.Recorder{}
	p := &mocks.Prompter{}
	p.On("CaptureString", PromptStake).Return(prompts.Cancelled(), nil)
	p.On("CaptureString", PromptUnstake).Return(prompts.Cancelled(), nil)
	sc := NewStakeControl(node.options(p, rec, nil))

	require.NoError(t, sc.Stake(context.Background()))
	require.NoError(t, sc.Unstake(context.Background()))

	require.Empty(t, node.Posts())
	require.Empty(t, rec.Messages())
	p.AssertNumberOfCalls(t, "CaptureString", 2)
}

func TestPromptErrorIsReturned(t *testing.T) {
	node := newFakeNode(t)
	rec := &notify.Recorder{}
	sc := NewStakeControl(node.options(prompts.NewNonInteractivePrompter(), rec, nil))

	err := sc.Stake(context.Background())

	require.ErrorIs(t, err, prompts.ErrNonInteractive)
	require.Empty(t, node.Posts())
	require.Empty(t, rec.Messages())
}

func TestStakeAmountWithoutPrompt(t *testing.T) {
	node := newFakeNode(t)
	rec := &notify.Recorder{}
	p := &mocks.Prompter{}
	sc := NewStakeControl(node.options(p, rec, nil))

	require.NoError(t, sc.StakeAmount(context.Background(), "2"))
	require.NoError(t, sc.UnstakeAmount(context.Background(), "1"))
	require.ErrorIs(t, sc.UnstakeAmount(context.Background(), "x"), ErrInvalidInput)

	require.Equal(t, []post{
		{Path: constants.PathStake, Body: map[string]any{"amount": "0x1bc16d674ec80000"}},
		{Path: constants.PathUnstake, Body: map[string]any{"amount": "0xde0b6b3a7640000"}},
	}, node.Posts())
	require.Equal(t, []string{MsgInvalidInput}, rec.Messages())
	p.AssertNotCalled(t, "CaptureString", PromptStake)
}

func TestStakeServerErrorToastsStatus(t *testing.T) {
	node := newFakeNode(t)
	node.set(constants.PathStake, http.StatusInternalServerError, `"boom"`)
	rec := &notify.Recorder{}
	sc := NewStakeControl(node.options(nil, rec, nil))

	err := sc.StakeAmount(context.Background(), "1")

	var uerr *UnknownError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, http.StatusInternalServerError, uerr.StatusCode)
	var netErr *nodeclient.NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Equal(t, []string{"unknown error: 500"}, rec.Messages())
}

func TestStakeUnreachableNodeToastsZero(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	rec := &notify.Recorder{}
	sc := NewStakeControl(Options{
		Client:   nodeclient.New(srv.URL, time.Second, zap.NewNop()),
		Notifier: rec,
	})

	err := sc.StakeAmount(context.Background(), "1")

	var uerr *UnknownError
	require.ErrorAs(t, err, &uerr)
	require.Zero(t, uerr.StatusCode)
	require.Equal(t, []string{"unknown error: 0"}, rec.Messages())
}

func TestStakeSnapshotRate(t *testing.T) {
	node := newFakeNode(t)
	node.ok(constants.PathTotalStaking, `"4000000000000000000"`)
	staking := store.NewValue(tokens(1))
	sc := NewStakeControl(node.options(nil, nil, staking))

	sc.Mount(context.Background())
	defer sc.Unmount()

	require.Eventually(t, func() bool {
		return sc.Snapshot().Rate == "25.000%"
	}, 2*time.Second, 5*time.Millisecond)

	staking.Set(tokens(2))
	require.Eventually(t, func() bool {
		return sc.Snapshot().Rate == "50.000%"
	}, 2*time.Second, 5*time.Millisecond)
	require.True(t, sc.Snapshot().Staking.Equal(tokens(2)))
}

func TestZeroTotalStakingRendersPlaceholder(t *testing.T) {
	node := newFakeNode(t)
	node.ok(constants.PathTotalStaking, `"0"`)
	sc := NewStakeControl(node.options(nil, nil, store.NewValue(tokens(1))))

	sc.Mount(context.Background())
	defer sc.Unmount()

	require.Eventually(t, func() bool {
		return node.Hits(constants.PathTotalStaking) > 0
	}, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, constants.RatePlaceholder, sc.Snapshot().Rate)
}

func TestUnmountStopsPollingAndSubscription(t *testing.T) {
	node := newFakeNode(t)
	node.ok(constants.PathTotalStaking, `"8"`)
	staking := store.NewValue(units.Zero)
	sc := NewStakeControl(node.options(nil, nil, staking))

	sc.Mount(context.Background())
	sc.Mount(context.Background())
	require.Eventually(t, func() bool {
		return sc.Snapshot().TotalStaking.Equal(units.FromInt64(8))
	}, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, 1, staking.Subscribers())

	sc.Unmount()
	sc.Unmount()
	require.Zero(t, staking.Subscribers())

	hits := node.Hits(constants.PathTotalStaking)
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, hits, node.Hits(constants.PathTotalStaking))

	staking.Set(tokens(3))
	require.True(t, sc.Snapshot().Staking.IsZero())
}

func TestUnmountMidFlightDiscardsResponse(t *testing.T) {
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case arrived <- struct{}{}:
		default:
		}
		select {
		case <-release:
		case <-r.Context().Done():
			return
		}
		_, _ = w.Write([]byte(`"5"`))
	}))
	defer srv.Close()
	defer close(release)

	sc := NewStakeControl(Options{
		Client:   nodeclient.New(srv.URL, 5*time.Second, zap.NewNop()),
		Interval: time.Hour,
	})
	sc.Mount(context.Background())

	select {
	case <-arrived:
	case <-time.After(2 * time.Second):
		t.Fatal("poll never reached the node")
	}
	sc.Unmount()
	require.True(t, sc.Snapshot().TotalStaking.IsZero())
}

func TestLateResponseAfterUnmountIsDiscarded(t *testing.T) {
	node := newFakeNode(t)
	node.ok(constants.PathTotalStaking, `"9"`)
	sc := NewStakeControl(Options{Client: node.client(), Interval: time.Hour})

	sc.Mount(context.Background())
	require.Eventually(t, func() bool {
		return node.Hits(constants.PathTotalStaking) == 1
	}, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		return sc.Snapshot().TotalStaking.Equal(units.FromInt64(9))
	}, 2*time.Second, 5*time.Millisecond)
	staleEpoch := sc.lc.epoch
	sc.Unmount()

	// remount resets state; a response from the old mount must not land
	node.ok(constants.PathTotalStaking, `"7"`)
	sc.Mount(context.Background())
	defer sc.Unmount()
	require.Eventually(t, func() bool {
		return sc.Snapshot().TotalStaking.Equal(units.FromInt64(7))
	}, 2*time.Second, 5*time.Millisecond)

	node.ok(constants.PathTotalStaking, `"1"`)
	sc.refresh(context.Background(), staleEpoch)
	require.True(t, sc.Snapshot().TotalStaking.Equal(units.FromInt64(7)))
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Input: "abc", Err: ErrInvalidInput}
	require.Equal(t, `invalid input: "abc"`, err.Error())
	require.True(t, errors.Is(err, ErrInvalidInput))
}
