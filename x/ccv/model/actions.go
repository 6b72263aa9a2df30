package model

import (
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// Delegate delegates amt tokens from the delegator account to val.
func (m *Model) Delegate(val types.Validator, amt int64) {
	m.StakingKeeper.Delegate(m.ctx(types.P), val, amt)
}

// Undelegate undelegates amt tokens from val.
func (m *Model) Undelegate(val types.Validator, amt int64) {
	m.StakingKeeper.Undelegate(m.ctx(types.P), val, amt)
}

// ConsumerInitiatedSlash has the consumer request a slash of val for an
// infraction at consumer height infractionHeight.
func (m *Model) ConsumerInitiatedSlash(val types.Validator, infractionHeight int64, isDowntime bool) {
	m.ConsumerKeeper.SendSlashRequest(m.ctx(types.C), val, infractionHeight, isDowntime)
}

// ProviderSlash slashes val on the provider for an infraction at provider
// height infractionHeight.
func (m *Model) ProviderSlash(val types.Validator, infractionHeight int64) {
	m.StakingKeeper.Slash(m.ctx(types.P), val, infractionHeight)
}

// UpdateClient does not change the model. Client updates are not modeled,
// but the system under test must receive them often enough for its light
// clients not to expire, so traces contain them.
func (m *Model) UpdateClient(types.Chain) {}

// Deliver delivers up to num packets sent by the counterparty of chain to
// chain.
func (m *Model) Deliver(chain types.Chain, num int) {
	if err := chain.Validate(); err != nil {
		panic(err)
	}
	ctx := m.ctx(chain)
	for _, p := range m.outbox[chain.Other()].Consume(num) {
		m.history.Deliver(chain, p.SendHeight, m.h[chain])
		switch chain {
		case types.P:
			m.ProviderKeeper.OnReceive(ctx, p.Data)
		case types.C:
			m.ConsumerKeeper.OnReceive(ctx, p.Data)
		}
	}
}

// EndAndBeginBlock ends the current block of chain and begins the next.
func (m *Model) EndAndBeginBlock(chain types.Chain) error {
	if err := m.EndBlock(chain); err != nil {
		return err
	}
	m.BeginBlock(chain, m.params.BlockSeconds)
	return nil
}
