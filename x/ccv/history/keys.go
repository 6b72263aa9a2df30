package history

import (
	"encoding/binary"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

const (
	// ProviderBlockBytePrefix is the byte prefix for committed provider blocks
	ProviderBlockBytePrefix byte = iota

	// ConsumerBlockBytePrefix is the byte prefix for committed consumer blocks
	ConsumerBlockBytePrefix
)

// ChainPrefix returns the key prefix of the committed blocks of chain.
func ChainPrefix(chain types.Chain) []byte {
	if chain == types.P {
		return []byte{ProviderBlockBytePrefix}
	}
	return []byte{ConsumerBlockBytePrefix}
}

// BlockKey returns the key under which the block of chain at height is stored
func BlockKey(chain types.Chain, height int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(height))
	return append(ChainPrefix(chain), bz...)
}
