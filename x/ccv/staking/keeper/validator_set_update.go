package keeper

import (
	"fmt"
	"sort"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// NewVals computes the new set of active validators, ordered by descending
// tokens. Ties are broken by ascending validator index, as the staking module
// orders equal-power validators by address.
func (k *Keeper) NewVals(ctx types.Context) []types.Validator {
	vals := make([]types.Validator, 0, len(k.tokens))
	for i := range k.tokens {
		if 1 <= k.tokens[i] && k.jailed[i] == nil {
			vals = append(vals, i)
		}
	}
	sort.SliceStable(vals, func(a, b int) bool {
		return k.tokens[vals[a]] > k.tokens[vals[b]]
	})
	if k.params.MaxValidators < len(vals) {
		vals = vals[:k.params.MaxValidators]
	}

	if len(vals) == 0 {
		panic(errorsmod.Wrap(types.ErrEmptyValidatorSet, "not supposed to happen, model or action generation is wrong"))
	}

	// Is at least 2/3 of new active voting power held by old validators?
	inNew := toSet(vals)
	inOld := toSet(k.lastVals)
	newActivePowerOldVals, newActivePowerTotal := int64(0), int64(0)
	for i, x := range k.tokens {
		if !inNew[i] {
			continue
		}
		newActivePowerTotal += x
		if inOld[i] {
			newActivePowerOldVals += x
		}
	}
	if 3*newActivePowerOldVals < 2*newActivePowerTotal {
		ctx.EmitEvent(types.EventMoreThanOneThirdValPowerChange)
	}
	return vals
}

// EndBlockComputeValUpdates bonds new validators, starts unbonding the ones
// that left the active set and records the power changes for the provider.
func (k *Keeper) EndBlockComputeValUpdates(ctx types.Context) {
	oldVals := k.lastVals
	newVals := k.NewVals(ctx)

	// Bond new validators
	for _, i := range newVals {
		k.status[i] = types.Bonded
		before := len(k.validatorQ)
		k.validatorQ = filterUnvals(k.validatorQ, func(e types.Unval) bool { return e.Val != i })
		if len(k.validatorQ) != before {
			ctx.EmitEvent(types.EventRebondUnval)
		}
	}

	// Start unbonding old validators. Ascending order fixes the mapping of
	// opIDs to validators, which must match the staking module.
	left := difference(oldVals, newVals)
	sort.Ints(left)
	for _, i := range left {
		unval := types.Unval{
			Val:             i,
			UnbondingHeight: ctx.BlockHeight(),
			UnbondingTime:   ctx.BlockTime() + k.params.UnbondingSecondsP,
			OnHold:          true,
			OpID:            k.opID,
		}
		k.validatorQ = append(k.validatorQ, unval)
		k.nextOpID(ctx)
		k.status[i] = types.Unbonding
		k.Logger(ctx).Debug("validator unbonding", "val", i, "opID", unval.OpID)
	}

	// Compute updates
	k.changes = map[types.Validator]int64{}
	for _, i := range newVals {
		if k.tokens[i] != k.lastTokens[i] {
			k.changes[i] = k.tokens[i]
		}
	}
	for _, i := range difference(newVals, oldVals) {
		k.changes[i] = k.tokens[i]
	}
	for _, i := range left {
		k.changes[i] = 0
	}

	// Save the valset and their tokens (mimics block commit)
	k.lastVals = newVals
	k.lastTokens = append([]int64(nil), k.tokens...)

	if 0 < len(k.changes) {
		k.Logger(ctx).Debug("validator power changes", "changes", fmt.Sprint(k.changes))
	}
}

func toSet(vals []types.Validator) map[types.Validator]bool {
	ret := make(map[types.Validator]bool, len(vals))
	for _, v := range vals {
		ret[v] = true
	}
	return ret
}

// difference returns the elements of a not in b, in the order of a.
func difference(a, b []types.Validator) []types.Validator {
	inB := toSet(b)
	ret := []types.Validator{}
	for _, v := range a {
		if !inB[v] {
			ret = append(ret, v)
		}
	}
	return ret
}

func filterUnvals(q []types.Unval, keep func(types.Unval) bool) []types.Unval {
	ret := make([]types.Unval, 0, len(q))
	for _, e := range q {
		if keep(e) {
			ret = append(ret, e)
		}
	}
	return ret
}
