package history

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	tmdb "github.com/tendermint/tm-db"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// CommittedBlock is the state of the system when a block of a chain was
// committed.
type CommittedBlock struct {
	H     int64             `json:"h"`
	T     int64             `json:"t"`
	State types.SystemState `json:"state"`
}

// BlockHistory stores the committed blocks of both chains together with the
// partial order between them. Properties are checked over it.
type BlockHistory struct {
	db           tmdb.DB
	partialOrder *PartialOrder
}

// NewBlockHistory returns a BlockHistory backed by db.
func NewBlockHistory(db tmdb.DB) *BlockHistory {
	return &BlockHistory{
		db:           db,
		partialOrder: NewPartialOrder(),
	}
}

// NewInMemBlockHistory returns a BlockHistory backed by a MemDB.
func NewInMemBlockHistory() *BlockHistory {
	return NewBlockHistory(tmdb.NewMemDB())
}

func (bh *BlockHistory) PartialOrder() *PartialOrder {
	return bh.partialOrder
}

// Deliver records a causal delivery edge.
func (bh *BlockHistory) Deliver(receiver types.Chain, sendHeight, recvHeight int64) {
	bh.partialOrder.Deliver(receiver, sendHeight, recvHeight)
}

// CommitBlock stores the snapshot of the system taken when chain committed
// its current block.
func (bh *BlockHistory) CommitBlock(chain types.Chain, state types.SystemState) error {
	if err := chain.Validate(); err != nil {
		return err
	}
	b := CommittedBlock{
		H:     state.H[chain],
		T:     state.T[chain],
		State: state.Clone(),
	}
	bz, err := json.Marshal(b)
	if err != nil {
		return errorsmod.Wrapf(err, "marshal %s block %d", chain, b.H)
	}
	return bh.db.Set(BlockKey(chain, b.H), bz)
}

// Block returns the committed block of chain at height.
func (bh *BlockHistory) Block(chain types.Chain, height int64) (CommittedBlock, error) {
	bz, err := bh.db.Get(BlockKey(chain, height))
	if err != nil {
		return CommittedBlock{}, err
	}
	if bz == nil {
		return CommittedBlock{}, errorsmod.Wrapf(types.ErrBlockNotFound, "%s height %d", chain, height)
	}
	var b CommittedBlock
	if err := json.Unmarshal(bz, &b); err != nil {
		return CommittedBlock{}, errorsmod.Wrap(types.ErrStoreUnmarshal, err.Error())
	}
	return b, nil
}

// Blocks returns the committed blocks of chain by ascending height.
func (bh *BlockHistory) Blocks(chain types.Chain) ([]CommittedBlock, error) {
	iterator, err := tmdb.IteratePrefix(bh.db, ChainPrefix(chain))
	if err != nil {
		return nil, err
	}
	defer iterator.Close()

	ret := []CommittedBlock{}
	for ; iterator.Valid(); iterator.Next() {
		var b CommittedBlock
		if err := json.Unmarshal(iterator.Value(), &b); err != nil {
			return nil, errorsmod.Wrap(types.ErrStoreUnmarshal, err.Error())
		}
		ret = append(ret, b)
	}
	return ret, iterator.Error()
}
