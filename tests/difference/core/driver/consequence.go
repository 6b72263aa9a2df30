package core

import (
	"github.com/cosmos/interchain-security-model/x/ccv/model"
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// ConsequenceOf reads the observable state of m.
func ConsequenceOf(m *model.Model) Consequence {
	n := m.Params().NumValidators
	status := make([]string, 0, n)
	for _, s := range m.StakingKeeper.GetAllStatuses() {
		status = append(status, s.String())
	}
	outstanding := make([]bool, n)
	for i := range outstanding {
		outstanding[i] = m.ConsumerKeeper.OutstandingDowntime(i)
	}
	return Consequence{
		Delegation:          m.StakingKeeper.GetAllDelegations(),
		DelegatorTokens:     m.StakingKeeper.DelegatorTokens(),
		Jailed:              m.StakingKeeper.GetAllJailed(),
		OutstandingDowntime: outstanding,
		ConsumerPower:       m.ConsumerKeeper.GetAllConsumerPowers(),
		Status:              status,
		Tokens:              m.StakingKeeper.GetAllTokens(),
		H:                   map[types.Chain]int64{P: m.Height(P), C: m.Height(C)},
		T:                   map[types.Chain]int64{P: m.Time(P), C: m.Time(C)},
	}
}
