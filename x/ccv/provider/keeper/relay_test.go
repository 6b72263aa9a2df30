package keeper_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/cosmos/interchain-security-model/testutil/keeper"
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// TestOnReceiveDoubleSignSlash tests that double-sign slash requests are
// dropped with an event.
func TestOnReceiveDoubleSignSlash(t *testing.T) {
	params := testkeeper.NewInMemKeeperParams(t)
	providerKeeper, ctx, ctrl, _ := testkeeper.GetProviderKeeperAndCtx(t, params)
	defer ctrl.Finish()

	providerKeeper.OnReceive(ctx, types.NewSlashPacketData(0, 0, false))

	require.Empty(t, providerKeeper.GetPendingPackets())
	require.Equal(t, []types.Event{types.EventReceiveDoubleSignSlashRequest}, params.Events.Events())
}

// TestOnReceiveQueueing tests that a maturity packet skips the queue only
// when the queue is empty.
func TestOnReceiveQueueing(t *testing.T) {
	params := testkeeper.NewInMemKeeperParams(t)
	providerKeeper, ctx, ctrl, _ := testkeeper.GetProviderKeeperAndCtx(t, params)
	defer ctrl.Finish()

	providerKeeper.AfterUnbondingInitiated(ctx, 7)

	// handled at once
	providerKeeper.OnReceive(ctx, types.NewVSCMaturedPacketData(0))
	require.Empty(t, providerKeeper.GetPendingPackets())
	require.Equal(t, []uint64{7}, providerKeeper.GetMatureUnbondingOps())
	_, found := providerKeeper.GetUnbondingOpIndex(0)
	require.False(t, found)

	// a downtime slash is queued, and so is the maturity packet behind it
	providerKeeper.OnReceive(ctx, types.NewSlashPacketData(1, 0, true))
	providerKeeper.OnReceive(ctx, types.NewVSCMaturedPacketData(1))
	require.Equal(t, []types.PacketData{
		types.NewSlashPacketData(1, 0, true),
		types.NewVSCMaturedPacketData(1),
	}, providerKeeper.GetPendingPackets())
}

func TestOnReceiveUnknownPacketPanics(t *testing.T) {
	params := testkeeper.NewInMemKeeperParams(t)
	providerKeeper, ctx, ctrl, _ := testkeeper.GetProviderKeeperAndCtx(t, params)
	defer ctrl.Finish()

	require.Panics(t, func() {
		providerKeeper.OnReceive(ctx, types.NewValidatorSetChangePacketData(nil, 0, nil))
	})
}

// TestOnReceiveSlash tests the handling of downtime slash requests.
func TestOnReceiveSlash(t *testing.T) {
	tokens := []int64{5000, 4000, 3000, 2000}

	testCases := []struct {
		name          string
		tombstoned    bool
		expectedCalls func(types.Context, testkeeper.MockedKeepers, types.Params) []*gomock.Call
		expectedEvent []types.Event
		expectedAcks  []types.Validator
	}{
		{
			"unbonded validator",
			false,
			func(ctx types.Context, mocks testkeeper.MockedKeepers, params types.Params) []*gomock.Call {
				return []*gomock.Call{
					mocks.MockStakingKeeper.EXPECT().GetStatus(1).Return(types.Unbonded).Times(1),
				}
			},
			[]types.Event{types.EventReceiveSlashRequestUnbonded},
			[]types.Validator{},
		},
		{
			"tombstoned validator",
			true,
			func(ctx types.Context, mocks testkeeper.MockedKeepers, params types.Params) []*gomock.Call {
				return []*gomock.Call{
					mocks.MockStakingKeeper.EXPECT().GetStatus(1).Return(types.Unbonding).Times(1),
					mocks.MockStakingKeeper.EXPECT().GetTokens(1).Return(tokens[1]).Times(1),
				}
			},
			[]types.Event{types.EventReceiveDowntimeSlashRequest},
			[]types.Validator{},
		},
		{
			"jailed validator",
			false,
			func(ctx types.Context, mocks testkeeper.MockedKeepers, params types.Params) []*gomock.Call {
				return testkeeper.GetMocksForOnReceiveSlash(ctx, mocks, params, 1, tokens)
			},
			[]types.Event{types.EventReceiveDowntimeSlashRequest},
			[]types.Validator{1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := testkeeper.NewInMemKeeperParams(t)
			providerKeeper, ctx, ctrl, mocks := testkeeper.GetProviderKeeperAndCtx(t, params)
			defer ctrl.Finish()
			if tc.tombstoned {
				providerKeeper.SetTombstoned(1)
			}

			gomock.InOrder(tc.expectedCalls(ctx, mocks, params.Params)...)
			providerKeeper.OnReceiveSlash(ctx, types.NewSlashPacketData(1, 0, true))

			require.Equal(t, tc.expectedEvent, params.Events.Events())
			require.Equal(t, tc.expectedAcks, providerKeeper.GetSlashAcks())
		})
	}
}

// TestOnReceiveSlashTwice tests that two downtime slash requests for the same
// validator jail it on both and ack it twice.
func TestOnReceiveSlashTwice(t *testing.T) {
	params := testkeeper.NewInMemKeeperParams(t)
	providerKeeper, ctx, ctrl, mocks := testkeeper.GetProviderKeeperAndCtx(t, params)
	defer ctrl.Finish()

	tokens := []int64{5000, 4000, 3000, 2000}
	calls := testkeeper.GetMocksForOnReceiveSlash(ctx, mocks, params.Params, 0, tokens)
	calls = append(calls, testkeeper.GetMocksForOnReceiveSlash(ctx, mocks, params.Params, 0, tokens)...)
	gomock.InOrder(calls...)

	providerKeeper.OnReceive(ctx, types.NewSlashPacketData(0, 0, true))
	providerKeeper.OnReceive(ctx, types.NewSlashPacketData(0, 0, true))
	providerKeeper.ProcessPackets(ctx)

	require.Equal(t, []types.Validator{0, 0}, providerKeeper.GetSlashAcks())
	require.Equal(t, 2, params.Events.Count(types.EventReceiveDowntimeSlashRequest))
	require.Empty(t, providerKeeper.GetPendingPackets())
}

// TestSoftOptOut tests that validators below the smallest non opt out power
// ignore downtime slash requests.
func TestSoftOptOut(t *testing.T) {
	params := testkeeper.NewInMemKeeperParams(t)
	params.Params.SoftOptOutThreshold = "0.1"
	providerKeeper, ctx, ctrl, mocks := testkeeper.GetProviderKeeperAndCtx(t, params)
	defer ctrl.Finish()

	// 500/10000 <= 0.1 < 1500/10000, so the smallest non opt out power is 1000
	tokens := []int64{6000, 2500, 1000, 500}
	calls := []*gomock.Call{
		mocks.MockStakingKeeper.EXPECT().GetStatus(3).Return(types.Bonded).Times(1),
	}
	calls = append(calls, testkeeper.GetMocksForSoftOptOut(mocks, params.Params.SoftOptOutThreshold, tokens)...)
	calls = append(calls, mocks.MockStakingKeeper.EXPECT().GetTokens(3).Return(tokens[3]).Times(1))
	gomock.InOrder(calls...)

	providerKeeper.OnReceiveSlash(ctx, types.NewSlashPacketData(3, 0, true))
	require.Zero(t, params.Events.Len())
	require.Empty(t, providerKeeper.GetSlashAcks())

	gomock.InOrder(testkeeper.GetMocksForOnReceiveSlash(ctx, mocks, params.Params, 2, tokens)...)
	providerKeeper.OnReceiveSlash(ctx, types.NewSlashPacketData(2, 0, true))
	require.Equal(t, []types.Validator{2}, providerKeeper.GetSlashAcks())
}

func TestSmallestNonOptOutPower(t *testing.T) {
	testCases := []struct {
		threshold string
		tokens    []int64
		expected  int64
	}{
		{"0", nil, 0},
		{"0.05", []int64{1000, 1000, 1000, 1000}, 1000},
		{"0.19", []int64{100, 100, 9800}, 9800},
		{"0.1", []int64{0, 300, 800, 8900}, 800},
	}
	for _, tc := range testCases {
		params := testkeeper.NewInMemKeeperParams(t)
		params.Params.SoftOptOutThreshold = tc.threshold
		providerKeeper, ctx, ctrl, mocks := testkeeper.GetProviderKeeperAndCtx(t, params)
		testkeeper.GetMocksForSoftOptOut(mocks, tc.threshold, tc.tokens)
		require.Equal(t, tc.expected, providerKeeper.SmallestNonOptOutPower(ctx), tc.threshold)
		ctrl.Finish()
	}
}

func TestSmallestNonOptOutPowerUnreachable(t *testing.T) {
	params := testkeeper.NewInMemKeeperParams(t)
	params.Params.SoftOptOutThreshold = "0.1"
	providerKeeper, ctx, ctrl, mocks := testkeeper.GetProviderKeeperAndCtx(t, params)
	defer ctrl.Finish()

	mocks.MockStakingKeeper.EXPECT().GetAllTokens().Return([]int64{0, 0}).Times(1)
	require.Panics(t, func() { providerKeeper.SmallestNonOptOutPower(ctx) })
}

// TestTombstonedRejectsUnknownValidator tests that tombstone lookups are
// bounds checked.
func TestTombstonedRejectsUnknownValidator(t *testing.T) {
	params := testkeeper.NewInMemKeeperParams(t)
	providerKeeper, _, ctrl, _ := testkeeper.GetProviderKeeperAndCtx(t, params)
	defer ctrl.Finish()

	n := params.Params.NumValidators
	providerKeeper.SetTombstoned(n - 1)
	require.True(t, providerKeeper.IsTombstoned(n-1))

	require.Panics(t, func() { providerKeeper.IsTombstoned(n) })
	require.Panics(t, func() { providerKeeper.SetTombstoned(-1) })
}
