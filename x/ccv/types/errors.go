package types

import (
	errorsmod "cosmossdk.io/errors"
)

// CCV model sentinel errors
var (
	ErrInvalidPacketData     = errorsmod.Register(ModuleName, 1, "invalid CCV packet data")
	ErrInvalidChain          = errorsmod.Register(ModuleName, 2, "invalid chain")
	ErrInvalidParams         = errorsmod.Register(ModuleName, 3, "invalid model params")
	ErrInvalidInitState      = errorsmod.Register(ModuleName, 4, "invalid model initial state")
	ErrEmptyValidatorSet     = errorsmod.Register(ModuleName, 5, "empty validator set")
	ErrUnreachableSoftOptOut = errorsmod.Register(ModuleName, 6, "soft opt-out power not found")
	ErrUnknownPacketData     = errorsmod.Register(ModuleName, 7, "unknown packet data variant")
	ErrInvalidValidator      = errorsmod.Register(ModuleName, 8, "invalid validator")
	ErrBlockNotFound         = errorsmod.Register(ModuleName, 9, "committed block not found")
	ErrStoreUnmarshal        = errorsmod.Register(ModuleName, 10, "cannot unmarshal value from store")
	ErrPropertyViolated      = errorsmod.Register(ModuleName, 11, "model property violated")
	ErrTraceMismatch         = errorsmod.Register(ModuleName, 12, "trace mismatch")
	ErrInvalidAction         = errorsmod.Register(ModuleName, 13, "invalid action")
)
