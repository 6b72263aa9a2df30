package model

import (
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// History records committed blocks and the causal order created by packet
// delivery, for property checking.
type History interface {
	CommitBlock(chain types.Chain, state types.SystemState) error
	Deliver(receiver types.Chain, sendHeight, recvHeight int64)
}
