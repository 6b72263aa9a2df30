package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/interchain-security-model/x/ccv/history"
	"github.com/cosmos/interchain-security-model/x/ccv/model"
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

type testEnv struct {
	params  types.Params
	m       *model.Model
	history *history.BlockHistory
	events  *types.EventLog
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	params := types.DefaultParams()
	hist := history.NewInMemBlockHistory()
	events := types.NewEventLog()
	m, err := model.NewModel(nil, params, types.DefaultInitState(params), hist, events)
	require.NoError(t, err)
	return &testEnv{params: params, m: m, history: hist, events: events}
}

// blocks ends and begins n blocks on chain.
func (e *testEnv) blocks(t *testing.T, chain types.Chain, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, e.m.EndAndBeginBlock(chain))
	}
}

// relay ends two blocks on chain so that its packets become deliverable,
// then delivers all of them to the counterparty.
func (e *testEnv) relay(t *testing.T, chain types.Chain) {
	t.Helper()
	e.blocks(t, chain, 2)
	e.m.Deliver(chain.Other(), 100)
}

func TestNewModel(t *testing.T) {
	env := newTestEnv(t)

	for _, chain := range []types.Chain{types.P, types.C} {
		require.Equal(t, int64(1), env.m.Height(chain))
		require.Equal(t, env.params.BlockSeconds, env.m.Time(chain))
		b, err := env.history.Block(chain, 0)
		require.NoError(t, err)
		require.Equal(t, int64(0), b.T)
	}
	hp, found := env.history.PartialOrder().GreatestPred(types.C, 0)
	require.True(t, found)
	require.Equal(t, int64(0), hp)
	require.Zero(t, env.events.Len())
	require.NoError(t, env.history.CheckProperties())
}

func TestNewModelWithNilEventLog(t *testing.T) {
	params := types.DefaultParams()
	var events *types.EventLog
	m, err := model.NewModel(nil, params, types.DefaultInitState(params), nil, events)
	require.NoError(t, err)

	// undelegating more than delegated emits insufficientShares
	require.NotPanics(t, func() { m.Undelegate(0, params.InitialDelegatorTokens) })
	require.NoError(t, m.EndAndBeginBlock(types.P))
}

func TestNewModelRejectsInvalidInput(t *testing.T) {
	params := types.DefaultParams()
	params.MaxValidators = params.NumValidators + 1
	_, err := model.NewModel(nil, params, types.DefaultInitState(types.DefaultParams()), nil, nil)
	require.ErrorIs(t, err, types.ErrInvalidParams)

	params = types.DefaultParams()
	init := types.DefaultInitState(params)
	init.Staking.Tokens = init.Staking.Tokens[:1]
	_, err = model.NewModel(nil, params, init, nil, nil)
	require.ErrorIs(t, err, types.ErrInvalidInitState)
}

func TestEndBlockRejectsUnknownChain(t *testing.T) {
	env := newTestEnv(t)
	require.ErrorIs(t, env.m.EndAndBeginBlock(types.Chain("other")), types.ErrInvalidChain)
	require.Panics(t, func() { env.m.Deliver(types.Chain("other"), 1) })
}

// TestValidatorSetChangeReachesConsumer tests that a change of the provider
// validator set is replicated on the consumer once the VSC is delivered.
func TestValidatorSetChangeReachesConsumer(t *testing.T) {
	env := newTestEnv(t)

	// validator 2 overtakes validator 1
	env.m.Delegate(2, 2000)
	env.relay(t, types.P)
	require.NoError(t, env.m.EndAndBeginBlock(types.C))

	power, found := env.m.ConsumerKeeper.GetConsumerPower(2)
	require.True(t, found)
	require.Equal(t, env.m.StakingKeeper.GetTokens(2), power)
	_, found = env.m.ConsumerKeeper.GetConsumerPower(1)
	require.False(t, found)

	require.Equal(t, 1, env.events.Count(types.EventConsumerAddVal))
	require.Equal(t, 1, env.events.Count(types.EventConsumerDelVal))
	require.Equal(t, 1, env.events.Count(types.EventSendVscWithoutDowntimeAck))
	require.NoError(t, env.history.CheckProperties())
}

// TestUndelegationCompletesAfterMaturity tests the full round trip of an
// undelegation: it only completes once the consumer has matured the VSC
// that was current when it started.
func TestUndelegationCompletesAfterMaturity(t *testing.T) {
	env := newTestEnv(t)
	initial := env.m.StakingKeeper.DelegatorTokens()

	// validator 3 is not active, so the undelegation changes no power
	env.m.Undelegate(3, 500)
	require.Equal(t, initial, env.m.StakingKeeper.DelegatorTokens())

	// the VSC is sent without a power change
	env.relay(t, types.P)
	require.Equal(t, 1, env.events.Count(types.EventSendVscNotBecauseChange))
	require.NoError(t, env.m.EndAndBeginBlock(types.C))

	// the provider unbonding period elapses, but the undelegation is held
	env.blocks(t, types.P, int(env.params.UnbondingSecondsP/env.params.BlockSeconds)+1)
	require.Len(t, env.m.StakingKeeper.UndelegationQueue(), 1)
	require.Equal(t, 1, env.events.Count(types.EventSomeUndelsExpiredButNotComplete))

	// the consumer matures the VSC and tells the provider
	env.blocks(t, types.C, int(env.params.UnbondingSecondsC/env.params.BlockSeconds)+1)
	require.Equal(t, 1, env.events.Count(types.EventConsumerSendMaturation))
	env.relay(t, types.C)
	require.Len(t, env.m.ProviderKeeper.GetMatureUnbondingOps(), 1)

	require.NoError(t, env.m.EndAndBeginBlock(types.P))
	require.Equal(t, 1, env.events.Count(types.EventCompleteUndelImmediate))
	require.Empty(t, env.m.StakingKeeper.UndelegationQueue())
	require.Equal(t, initial+500, env.m.StakingKeeper.DelegatorTokens())
	require.NoError(t, env.history.CheckProperties())
}

// TestDowntimeSlashRoundTrip tests that a downtime slash request jails the
// validator on the provider, which acks it back to the consumer.
func TestDowntimeSlashRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	env.m.ConsumerInitiatedSlash(1, 1, true)
	env.m.ConsumerInitiatedSlash(1, 1, true)
	require.Equal(t, 1, env.events.Count(types.EventDowntimeSlashRequestOutstanding))
	require.True(t, env.m.ConsumerKeeper.OutstandingDowntime(1))

	env.relay(t, types.C)
	require.Len(t, env.m.ProviderKeeper.GetPendingPackets(), 1)

	// the slash is processed in EndBlock, after the validator set is computed
	require.NoError(t, env.m.EndAndBeginBlock(types.P))
	require.NotNil(t, env.m.StakingKeeper.GetJailed(1))
	require.Equal(t, types.Bonded, env.m.StakingKeeper.GetStatus(1))
	require.Equal(t, []types.Validator{1}, env.m.ProviderKeeper.GetSlashAcks())

	// the next block removes the validator and sends the ack
	env.relay(t, types.P)
	require.Equal(t, types.Unbonding, env.m.StakingKeeper.GetStatus(1))
	require.NoError(t, env.m.EndAndBeginBlock(types.C))
	require.False(t, env.m.ConsumerKeeper.OutstandingDowntime(1))
	require.Equal(t, 1, env.events.Count(types.EventReceiveDowntimeSlashAck))
	require.Equal(t, 1, env.events.Count(types.EventSendVscWithDowntimeAck))
	require.NoError(t, env.history.CheckProperties())
}

func TestDoubleSignSlashIsDropped(t *testing.T) {
	env := newTestEnv(t)

	env.m.ConsumerInitiatedSlash(0, 1, false)
	env.relay(t, types.C)
	require.NoError(t, env.m.EndAndBeginBlock(types.P))

	require.Nil(t, env.m.StakingKeeper.GetJailed(0))
	require.Equal(t, 1, env.events.Count(types.EventSendDoubleSignSlashRequest))
	require.Equal(t, 1, env.events.Count(types.EventReceiveDoubleSignSlashRequest))
}

func TestProviderSlash(t *testing.T) {
	env := newTestEnv(t)

	env.m.Undelegate(0, 10)
	require.NoError(t, env.m.EndAndBeginBlock(types.P))
	env.m.ProviderSlash(0, 0)
	require.Equal(t, 1, env.events.Count(types.EventSlashUndel))
	require.NoError(t, env.history.CheckProperties())
}

func TestUpdateClientDoesNothing(t *testing.T) {
	env := newTestEnv(t)
	before := env.m.PropertiesSystemState()
	env.m.UpdateClient(types.P)
	env.m.UpdateClient(types.C)
	require.Equal(t, before, env.m.PropertiesSystemState())
	require.Zero(t, env.events.Len())
}

func TestPropertiesSystemStateIsACopy(t *testing.T) {
	env := newTestEnv(t)
	s := env.m.PropertiesSystemState()
	s.H[types.P] = 100
	*s.ConsumerPower[0] = 1
	s.Tokens[0] = 1

	require.Equal(t, int64(1), env.m.Height(types.P))
	power, _ := env.m.ConsumerKeeper.GetConsumerPower(0)
	require.NotEqual(t, int64(1), power)
	require.NotEqual(t, int64(1), env.m.StakingKeeper.GetTokens(0))
}
