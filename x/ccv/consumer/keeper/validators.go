package keeper

import (
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// aggregateChanges folds the pending changes into one update per validator
// and clears them. A later update for a validator overwrites an earlier one.
// The order is the order in which validators first appear, walking each
// update set by ascending validator.
func (k *Keeper) aggregateChanges() ([]types.Validator, map[types.Validator]int64) {
	order := []types.Validator{}
	changes := map[types.Validator]int64{}
	for _, updates := range k.pendingChanges {
		for _, val := range types.SortedKeys(updates) {
			if _, seen := changes[val]; !seen {
				order = append(order, val)
			}
			changes[val] = updates[val]
		}
	}
	k.pendingChanges = []map[types.Validator]int64{}
	return order, changes
}
