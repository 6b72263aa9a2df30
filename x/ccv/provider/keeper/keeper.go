package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// Keeper defines the Cross-Chain Validation Provider Keeper
type Keeper struct {
	params        types.Params
	stakingKeeper types.StakingKeeper
	outbox        types.PacketSender

	// height of onChanOpenConfirm event
	initialHeight int64
	// next id to use
	vscID uint64
	// maps ids to the height of sending, used to compute the infraction
	// height of consumer initiated slashing
	vscIDtoH map[uint64]int64
	// maps ids to unbonding operation ids, used to mature unbonding
	// operations when receiving maturity packets
	vscIDtoOpIDs map[uint64][]uint64
	// validators slashed since the last VSC
	downtimeSlashAcks []types.Validator
	tombstoned        []bool
	// unbonding operations to be completed in EndBlock
	matureUnbondingOps []uint64
	// packets waiting to be processed in EndBlock. There is only one
	// consumer, so a single global queue is enough.
	queue []types.PacketData
}

// NewKeeper creates a new provider Keeper instance. The state is copied.
func NewKeeper(
	params types.Params, stakingKeeper types.StakingKeeper, outbox types.PacketSender,
	state types.ProviderState,
) *Keeper {
	k := &Keeper{
		params:             params,
		stakingKeeper:      stakingKeeper,
		outbox:             outbox,
		initialHeight:      state.InitialHeight,
		vscID:              state.VscID,
		vscIDtoH:           map[uint64]int64{},
		vscIDtoOpIDs:       map[uint64][]uint64{},
		downtimeSlashAcks:  append([]types.Validator{}, state.DowntimeSlashAcks...),
		tombstoned:         append([]bool(nil), state.Tombstoned...),
		matureUnbondingOps: append([]uint64{}, state.MatureUnbondingOps...),
		queue:              append([]types.PacketData{}, state.Queue...),
	}
	for id, h := range state.VscIDtoH {
		k.vscIDtoH[id] = h
	}
	for id, ops := range state.VscIDtoOpIDs {
		k.vscIDtoOpIDs[id] = append([]uint64(nil), ops...)
	}
	return k
}

// Logger returns a module-specific logger.
func (k *Keeper) Logger(ctx types.Context) log.Logger {
	return ctx.Logger().With("module", "x/ccv-"+types.ProviderModuleName)
}

func (k *Keeper) GetInitialHeight() int64 {
	return k.initialHeight
}

// GetValidatorSetUpdateID returns the id of the VSC sent at the end of the
// current block.
func (k *Keeper) GetValidatorSetUpdateID() uint64 {
	return k.vscID
}

// GetValsetUpdateBlockHeight returns the provider height mapped to vscID.
func (k *Keeper) GetValsetUpdateBlockHeight(vscID uint64) (int64, bool) {
	h, found := k.vscIDtoH[vscID]
	return h, found
}

// GetAllValsetUpdateBlockHeights returns a copy of the vscID to height map.
func (k *Keeper) GetAllValsetUpdateBlockHeights() map[uint64]int64 {
	ret := make(map[uint64]int64, len(k.vscIDtoH))
	for id, h := range k.vscIDtoH {
		ret[id] = h
	}
	return ret
}

// GetUnbondingOpIndex returns the unbonding operations waiting on vscID.
func (k *Keeper) GetUnbondingOpIndex(vscID uint64) ([]uint64, bool) {
	ops, found := k.vscIDtoOpIDs[vscID]
	return append([]uint64(nil), ops...), found
}

func (k *Keeper) GetSlashAcks() []types.Validator {
	return append([]types.Validator{}, k.downtimeSlashAcks...)
}

func (k *Keeper) GetMatureUnbondingOps() []uint64 {
	return append([]uint64{}, k.matureUnbondingOps...)
}

// GetPendingPackets returns the packets waiting for EndBlock.
func (k *Keeper) GetPendingPackets() []types.PacketData {
	return append([]types.PacketData{}, k.queue...)
}

func (k *Keeper) mustValidator(val types.Validator) {
	if val < 0 || len(k.tombstoned) <= val {
		panic(errorsmod.Wrapf(types.ErrInvalidValidator, "%d", val))
	}
}

func (k *Keeper) IsTombstoned(val types.Validator) bool {
	k.mustValidator(val)
	return k.tombstoned[val]
}

// SetTombstoned marks val as tombstoned: it is never jailed again for
// downtime.
func (k *Keeper) SetTombstoned(val types.Validator) {
	k.mustValidator(val)
	k.tombstoned[val] = true
}
