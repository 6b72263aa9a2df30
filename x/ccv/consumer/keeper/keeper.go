package keeper

import (
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// Keeper defines the Cross-Chain Validation Consumer Keeper
type Keeper struct {
	params types.Params
	outbox types.PacketSender

	// maps consumer height h to the id of the last vscid
	// received at height h-1
	hToVscID map[int64]uint64
	// validator power changes pending aggregation
	pendingChanges []map[types.Validator]int64
	// vscids with their earliest maturity time, in receive order
	maturingVscs []types.MaturingVSC
	// is there an outstanding downtime operation for a validator?
	outstandingDowntime []bool
	// validator powers, nil if the validator is not known to the consumer
	consumerPower []*int64
}

// NewKeeper creates a new Consumer Keeper instance. The state is copied.
func NewKeeper(params types.Params, outbox types.PacketSender, state types.ConsumerState) *Keeper {
	k := &Keeper{
		params:              params,
		outbox:              outbox,
		hToVscID:            map[int64]uint64{},
		pendingChanges:      []map[types.Validator]int64{},
		maturingVscs:        append([]types.MaturingVSC{}, state.MaturingVscs...),
		outstandingDowntime: append([]bool(nil), state.OutstandingDowntime...),
		consumerPower:       types.CopyPowers(state.ConsumerPower),
	}
	for h, id := range state.HToVscID {
		k.hToVscID[h] = id
	}
	for _, changes := range state.PendingChanges {
		k.pendingChanges = append(k.pendingChanges, copyUpdates(changes))
	}
	return k
}

// Logger returns a module-specific logger.
func (k *Keeper) Logger(ctx types.Context) log.Logger {
	return ctx.Logger().With("module", "x/ccv-"+types.ConsumerModuleName)
}

// GetHeightValsetUpdateID returns the vscID mapped to height. Heights
// without an entry map to 0.
func (k *Keeper) GetHeightValsetUpdateID(height int64) uint64 {
	return k.hToVscID[height]
}

// GetAllHeightToValsetUpdateIDs returns a copy of the height to vscID map.
func (k *Keeper) GetAllHeightToValsetUpdateIDs() map[int64]uint64 {
	ret := make(map[int64]uint64, len(k.hToVscID))
	for h, id := range k.hToVscID {
		ret[h] = id
	}
	return ret
}

func (k *Keeper) GetPendingChanges() []map[types.Validator]int64 {
	ret := make([]map[types.Validator]int64, 0, len(k.pendingChanges))
	for _, changes := range k.pendingChanges {
		ret = append(ret, copyUpdates(changes))
	}
	return ret
}

// GetMaturingVSCs returns the VSCs waiting to mature, in receive order.
func (k *Keeper) GetMaturingVSCs() []types.MaturingVSC {
	return append([]types.MaturingVSC{}, k.maturingVscs...)
}

func (k *Keeper) OutstandingDowntime(val types.Validator) bool {
	return k.outstandingDowntime[val]
}

// GetConsumerPower returns the power of val and whether the consumer knows
// it.
func (k *Keeper) GetConsumerPower(val types.Validator) (int64, bool) {
	if k.consumerPower[val] == nil {
		return 0, false
	}
	return *k.consumerPower[val], true
}

func (k *Keeper) GetAllConsumerPowers() []*int64 {
	return types.CopyPowers(k.consumerPower)
}

func copyUpdates(m map[types.Validator]int64) map[types.Validator]int64 {
	ret := make(map[types.Validator]int64, len(m))
	for val, power := range m {
		ret[val] = power
	}
	return ret
}
