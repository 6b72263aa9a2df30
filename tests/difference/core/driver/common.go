package core

import (
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

const (
	P = types.P
	C = types.C
)

// Action kinds
const (
	KindDelegate         = "Delegate"
	KindUndelegate       = "Undelegate"
	KindConsumerSlash    = "ConsumerSlash"
	KindProviderSlash    = "ProviderSlash"
	KindUpdateClient     = "UpdateClient"
	KindDeliver          = "Deliver"
	KindEndAndBeginBlock = "EndAndBeginBlock"
)

// AllKinds lists every action kind, in the order used for reporting.
func AllKinds() []string {
	return []string{
		KindDelegate,
		KindUndelegate,
		KindConsumerSlash,
		KindProviderSlash,
		KindUpdateClient,
		KindDeliver,
		KindEndAndBeginBlock,
	}
}
