package model

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/tendermint/tendermint/libs/log"

	consumerkeeper "github.com/cosmos/interchain-security-model/x/ccv/consumer/keeper"
	"github.com/cosmos/interchain-security-model/x/ccv/history"
	"github.com/cosmos/interchain-security-model/x/ccv/outbox"
	providerkeeper "github.com/cosmos/interchain-security-model/x/ccv/provider/keeper"
	stakingkeeper "github.com/cosmos/interchain-security-model/x/ccv/staking/keeper"
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// Model is an executable model of a provider and a single consumer chain
// connected by CCV. Actions are applied one at a time and every transition
// is synchronous.
type Model struct {
	logger  log.Logger
	params  types.Params
	history History
	events  types.EventSink

	h map[types.Chain]int64
	t map[types.Chain]int64

	// The network outboxes for each chain
	outbox map[types.Chain]*outbox.Outbox

	StakingKeeper  *stakingkeeper.Keeper
	ProviderKeeper *providerkeeper.Keeper
	ConsumerKeeper *consumerkeeper.Keeper
}

// NewModel creates a model in state init. The initial blocks of both chains
// are committed and the next ones begun. A nil hist is replaced by an
// in-memory BlockHistory.
func NewModel(
	logger log.Logger, params types.Params, init types.InitState, hist History, events types.EventSink,
) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := init.Validate(params); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if hist == nil {
		hist = history.NewInMemBlockHistory()
	}
	if l, ok := events.(*types.EventLog); ok && l == nil {
		events = types.NewEventLog()
	}

	m := &Model{
		logger:  logger.With("module", "x/ccv-model"),
		params:  params,
		history: hist,
		events:  events,
		h:       map[types.Chain]int64{types.P: init.H[types.P], types.C: init.H[types.C]},
		t:       map[types.Chain]int64{types.P: init.T[types.P], types.C: init.T[types.C]},
		outbox: map[types.Chain]*outbox.Outbox{
			types.P: outbox.NewOutbox(types.P),
			types.C: outbox.NewOutbox(types.C),
		},
	}
	m.StakingKeeper = stakingkeeper.NewKeeper(params, init.Staking)
	m.ProviderKeeper = providerkeeper.NewKeeper(params, m.StakingKeeper, m.outbox[types.P], init.Provider)
	m.StakingKeeper.SetHooks(m.ProviderKeeper.Hooks())
	m.ConsumerKeeper = consumerkeeper.NewKeeper(params, m.outbox[types.C], init.Consumer)

	// The consumer starts with the validator set of the provider, so it has
	// implicitly received a packet from the initial provider block.
	m.history.Deliver(types.C, 0, 0)
	for _, chain := range []types.Chain{types.P, types.C} {
		if err := m.history.CommitBlock(chain, m.PropertiesSystemState()); err != nil {
			return nil, err
		}
	}
	m.BeginBlock(types.P, params.BlockSeconds)
	m.BeginBlock(types.C, params.BlockSeconds)
	return m, nil
}

// ctx returns the context of the block chain is building.
func (m *Model) ctx(chain types.Chain) types.Context {
	return types.NewContext(chain, m.h[chain], m.t[chain], m.logger, m.events)
}

// History returns the collaborator recording committed blocks.
func (m *Model) History() History {
	return m.history
}

func (m *Model) Params() types.Params {
	return m.params
}

// Height returns the height of the block chain is building.
func (m *Model) Height(chain types.Chain) int64 {
	return m.h[chain]
}

// Time returns the time of the block chain is building.
func (m *Model) Time(chain types.Chain) int64 {
	return m.t[chain]
}

// Outbox returns the outbox of packets sent by chain.
func (m *Model) Outbox(chain types.Chain) *outbox.Outbox {
	return m.outbox[chain]
}

// PropertiesSystemState returns a deep copy of the state used to check
// properties.
func (m *Model) PropertiesSystemState() types.SystemState {
	return types.SystemState{
		H:               m.h,
		T:               m.t,
		Tokens:          m.StakingKeeper.GetAllTokens(),
		Status:          m.StakingKeeper.GetAllStatuses(),
		UndelegationQ:   m.StakingKeeper.UndelegationQueue(),
		DelegatorTokens: m.StakingKeeper.DelegatorTokens(),
		ConsumerPower:   m.ConsumerKeeper.GetAllConsumerPowers(),
		VscIDtoH:        m.ProviderKeeper.GetAllValsetUpdateBlockHeights(),
		HToVscID:        m.ConsumerKeeper.GetAllHeightToValsetUpdateIDs(),
	}.Clone()
}

// EndBlock ends the current block of chain, commits the packets it sent and
// records the committed state.
func (m *Model) EndBlock(chain types.Chain) error {
	if err := chain.Validate(); err != nil {
		return err
	}
	ctx := m.ctx(chain)
	if chain == types.P {
		// Mimic real provider app behavior
		m.StakingKeeper.EndBlock(ctx)
		m.ProviderKeeper.EndBlock(ctx)
	}
	if chain == types.C {
		m.ConsumerKeeper.EndBlock(ctx)
	}
	// Commit all packets sent by the chain
	m.outbox[chain].Commit()
	if err := m.history.CommitBlock(chain, m.PropertiesSystemState()); err != nil {
		return errorsmod.Wrapf(err, "commit %s block %d", chain, m.h[chain])
	}
	m.logger.Info("committed block", "chain", chain, "height", m.h[chain], "time", m.t[chain])
	return nil
}

// BeginBlock begins the next block of chain, dt seconds after the last one.
func (m *Model) BeginBlock(chain types.Chain, dt int64) {
	m.h[chain]++
	m.t[chain] += dt
	// There is nothing to do at the beginning of a block on the provider.
	if chain == types.C {
		m.ConsumerKeeper.BeginBlock(m.ctx(chain))
	}
}
