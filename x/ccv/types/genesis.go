package types

import (
	errorsmod "cosmossdk.io/errors"
)

// StakingState is the initial state of the provider staking module.
type StakingState struct {
	// Delegation from the sole delegator account to each validator.
	Delegation []int64
	// Tokens are equal to power. They exceed Delegation because other
	// delegators are assumed to have delegated too.
	Tokens          []int64
	Status          []Status
	UndelegationQ   []Undelegation
	ValidatorQ      []Unval
	Jailed          []*int64
	DelegatorTokens int64
	OpID            uint64
	Changes         map[Validator]int64
	LastVals        []Validator
	LastTokens      []int64
}

// ProviderState is the initial state of the provider CCV module.
type ProviderState struct {
	InitialHeight      int64
	VscID              uint64
	VscIDtoH           map[uint64]int64
	VscIDtoOpIDs       map[uint64][]uint64
	DowntimeSlashAcks  []Validator
	Tombstoned         []bool
	MatureUnbondingOps []uint64
	Queue              []PacketData
}

// ConsumerState is the initial state of the consumer CCV module.
type ConsumerState struct {
	HToVscID            map[int64]uint64
	PendingChanges      []map[Validator]int64
	MaturingVscs        []MaturingVSC
	OutstandingDowntime []bool
	ConsumerPower       []*int64
}

// MaturingVSC records the earliest time a received VSC may mature.
type MaturingVSC struct {
	VscID        uint64
	MaturityTime int64
}

// InitState is the state a model run starts from. The system under test is
// set up to match it.
type InitState struct {
	H        map[Chain]int64
	T        map[Chain]int64
	Staking  StakingState
	Provider ProviderState
	Consumer ConsumerState
}

// DefaultInitState returns the zero state of the difference tests: the first
// MaxValidators validators are bonded, token amounts are strictly descending
// and the consumer already shares the provider validator set.
func DefaultInitState(p Params) InitState {
	n := p.NumValidators
	delegation := make([]int64, n)
	tokens := make([]int64, n)
	status := make([]Status, n)
	power := make([]*int64, n)
	lastVals := []Validator{}
	for i := 0; i < n; i++ {
		delegation[i] = int64(n-i) * 1000
		// another delegator adds 1000 to every validator
		tokens[i] = delegation[i] + 1000
		status[i] = Unbonded
		if i < p.MaxValidators {
			status[i] = Bonded
			lastVals = append(lastVals, i)
			pw := tokens[i]
			power[i] = &pw
		}
	}
	return InitState{
		H: map[Chain]int64{P: 0, C: 0},
		T: map[Chain]int64{P: 0, C: 0},
		Staking: StakingState{
			Delegation:      delegation,
			Tokens:          tokens,
			Status:          status,
			UndelegationQ:   []Undelegation{},
			ValidatorQ:      []Unval{},
			Jailed:          make([]*int64, n),
			DelegatorTokens: p.InitialDelegatorTokens,
			OpID:            0,
			Changes:         map[Validator]int64{},
			LastVals:        lastVals,
			LastTokens:      append([]int64(nil), tokens...),
		},
		Provider: ProviderState{
			InitialHeight:      0,
			VscID:              0,
			VscIDtoH:           map[uint64]int64{},
			VscIDtoOpIDs:       map[uint64][]uint64{},
			DowntimeSlashAcks:  []Validator{},
			Tombstoned:         make([]bool, n),
			MatureUnbondingOps: []uint64{},
			Queue:              []PacketData{},
		},
		Consumer: ConsumerState{
			HToVscID:            map[int64]uint64{0: 0, 1: 0},
			PendingChanges:      []map[Validator]int64{},
			MaturingVscs:        []MaturingVSC{},
			OutstandingDowntime: make([]bool, n),
			ConsumerPower:       power,
		},
	}
}

// Validate checks that every per-validator slice has one entry per validator.
func (s InitState) Validate(p Params) error {
	n := p.NumValidators
	lens := map[string]int{
		"delegation":           len(s.Staking.Delegation),
		"tokens":               len(s.Staking.Tokens),
		"status":               len(s.Staking.Status),
		"jailed":               len(s.Staking.Jailed),
		"last tokens":          len(s.Staking.LastTokens),
		"tombstoned":           len(s.Provider.Tombstoned),
		"outstanding downtime": len(s.Consumer.OutstandingDowntime),
		"consumer power":       len(s.Consumer.ConsumerPower),
	}
	for name, l := range lens {
		if l != n {
			return errorsmod.Wrapf(ErrInvalidInitState, "%s has %d entries, expected %d", name, l, n)
		}
	}
	if len(s.Staking.LastVals) == 0 || p.MaxValidators < len(s.Staking.LastVals) {
		return errorsmod.Wrapf(ErrInvalidInitState, "initial validator set size %d not in [1, %d]", len(s.Staking.LastVals), p.MaxValidators)
	}
	for _, v := range s.Staking.LastVals {
		if v < 0 || n <= v {
			return errorsmod.Wrapf(ErrInvalidValidator, "initial validator %d", v)
		}
	}
	if s.Staking.DelegatorTokens < 0 {
		return errorsmod.Wrapf(ErrInvalidInitState, "negative delegator tokens %d", s.Staking.DelegatorTokens)
	}
	for _, c := range []Chain{P, C} {
		if _, ok := s.H[c]; !ok {
			return errorsmod.Wrapf(ErrInvalidInitState, "missing height for %s", c)
		}
		if _, ok := s.T[c]; !ok {
			return errorsmod.Wrapf(ErrInvalidInitState, "missing time for %s", c)
		}
	}
	return nil
}
