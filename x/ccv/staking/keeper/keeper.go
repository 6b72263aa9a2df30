package keeper

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// Keeper models the provider staking module for a single delegator account.
type Keeper struct {
	params types.Params
	hooks  types.StakingHooks

	// Validator delegations from the sole delegator account.
	delegation []int64
	// Validator tokens. Tokens are equivalent to power, with a ratio 1:1.
	// Tokens are not equal to delegation because other delegators are
	// assumed to have delegated too.
	tokens []int64
	status []types.Status
	// Undelegation queue
	undelegationQ []types.Undelegation
	// Unbonding validator queue
	validatorQ []types.Unval
	// Jail timestamp, nil if the validator is not jailed.
	jailed          []*int64
	delegatorTokens int64
	// Unique ID shared by undelegations and unbonding validators.
	opID uint64
	// validator -> power changes of the last EndBlock
	changes map[types.Validator]int64
	// the validators and tokens of the last block
	lastVals   []types.Validator
	lastTokens []int64
}

var _ types.StakingKeeper = (*Keeper)(nil)

// NewKeeper creates a staking keeper from the staking section of the initial
// state. The state is copied.
func NewKeeper(params types.Params, state types.StakingState) *Keeper {
	k := &Keeper{
		params:          params,
		delegation:      append([]int64(nil), state.Delegation...),
		tokens:          append([]int64(nil), state.Tokens...),
		status:          append([]types.Status(nil), state.Status...),
		undelegationQ:   append([]types.Undelegation{}, state.UndelegationQ...),
		validatorQ:      append([]types.Unval{}, state.ValidatorQ...),
		jailed:          types.CopyPowers(state.Jailed),
		delegatorTokens: state.DelegatorTokens,
		opID:            state.OpID,
		changes:         map[types.Validator]int64{},
		lastVals:        append([]types.Validator(nil), state.LastVals...),
		lastTokens:      append([]int64(nil), state.LastTokens...),
	}
	for val, power := range state.Changes {
		k.changes[val] = power
	}
	return k
}

// SetHooks sets the hooks called when an unbonding operation starts.
func (k *Keeper) SetHooks(h types.StakingHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set staking hooks twice")
	}
	k.hooks = h
	return k
}

// Logger returns a module-specific logger.
func (k *Keeper) Logger(ctx types.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.StakingModuleName)
}

func (k *Keeper) mustValidator(val types.Validator) {
	if val < 0 || len(k.tokens) <= val {
		panic(fmt.Errorf("%w: %d", types.ErrInvalidValidator, val))
	}
}

func (k *Keeper) GetTokens(val types.Validator) int64 {
	k.mustValidator(val)
	return k.tokens[val]
}

// GetAllTokens returns a copy of the tokens of every validator.
func (k *Keeper) GetAllTokens() []int64 {
	return append([]int64(nil), k.tokens...)
}

func (k *Keeper) GetDelegation(val types.Validator) int64 {
	k.mustValidator(val)
	return k.delegation[val]
}

func (k *Keeper) GetAllDelegations() []int64 {
	return append([]int64(nil), k.delegation...)
}

func (k *Keeper) GetStatus(val types.Validator) types.Status {
	k.mustValidator(val)
	return k.status[val]
}

func (k *Keeper) GetAllStatuses() []types.Status {
	return append([]types.Status(nil), k.status...)
}

// GetJailed returns the jail timestamp of val, or nil if it is not jailed.
func (k *Keeper) GetJailed(val types.Validator) *int64 {
	k.mustValidator(val)
	if k.jailed[val] == nil {
		return nil
	}
	ts := *k.jailed[val]
	return &ts
}

func (k *Keeper) GetAllJailed() []*int64 {
	return types.CopyPowers(k.jailed)
}

// DelegatorTokens returns the free balance of the delegator account.
func (k *Keeper) DelegatorTokens() int64 {
	return k.delegatorTokens
}

// UndelegationQueue returns a copy of the undelegation queue.
func (k *Keeper) UndelegationQueue() []types.Undelegation {
	return append([]types.Undelegation{}, k.undelegationQ...)
}

// ValidatorQueue returns a copy of the unbonding validator queue.
func (k *Keeper) ValidatorQueue() []types.Unval {
	return append([]types.Unval{}, k.validatorQ...)
}

// NextOpID returns the id the next unbonding operation will get.
func (k *Keeper) NextOpID() uint64 {
	return k.opID
}

// LastValidators returns the active set computed by the last EndBlock.
func (k *Keeper) LastValidators() []types.Validator {
	return append([]types.Validator(nil), k.lastVals...)
}

// ValUpdates returns a copy of the power changes computed by the last EndBlock.
func (k *Keeper) ValUpdates() map[types.Validator]int64 {
	ret := make(map[types.Validator]int64, len(k.changes))
	for val, power := range k.changes {
		ret[val] = power
	}
	return ret
}

// nextOpID returns a fresh unbonding op id and notifies the hooks.
func (k *Keeper) nextOpID(ctx types.Context) uint64 {
	id := k.opID
	if k.hooks != nil {
		k.hooks.AfterUnbondingInitiated(ctx, id)
	}
	k.opID++
	return id
}
