package types

import (
	"fmt"
	"sort"

	errorsmod "cosmossdk.io/errors"
)

const (
	VSCPacket        = "vsc"
	VSCMaturedPacket = "vscMatured"
	SlashPacket      = "slash"
)

// PacketData is the payload of a CCV packet. The set of implementations is
// closed: only the types in this file satisfy it.
type PacketData interface {
	Type() string
	Validate() error

	isPacketData()
}

var (
	_ PacketData = ValidatorSetChangePacketData{}
	_ PacketData = VSCMaturedPacketData{}
	_ PacketData = SlashPacketData{}
)

// Packet is a packet staged in an outbox, stamped with the height of the
// block that sent it.
type Packet struct {
	Data       PacketData
	SendHeight int64
}

// ValidatorSetChangePacketData is sent provider -> consumer.
type ValidatorSetChangePacketData struct {
	ValsetUpdateID    uint64
	ValidatorUpdates  map[Validator]int64
	DowntimeSlashAcks []Validator
}

func NewValidatorSetChangePacketData(valUpdates map[Validator]int64, valUpdateID uint64, slashAcks []Validator) ValidatorSetChangePacketData {
	if valUpdates == nil {
		valUpdates = map[Validator]int64{}
	}
	return ValidatorSetChangePacketData{
		ValsetUpdateID:    valUpdateID,
		ValidatorUpdates:  valUpdates,
		DowntimeSlashAcks: slashAcks,
	}
}

func (ValidatorSetChangePacketData) isPacketData() {}

func (ValidatorSetChangePacketData) Type() string { return VSCPacket }

// Validate is used for validating the CCV packet data.
func (vsc ValidatorSetChangePacketData) Validate() error {
	// Note that vsc.ValidatorUpdates can be empty in the case of unbonding
	// operations w/o changes in the voting power of the validators in the validator set
	if vsc.ValidatorUpdates == nil {
		return errorsmod.Wrap(ErrInvalidPacketData, "validator updates cannot be nil")
	}
	for val, power := range vsc.ValidatorUpdates {
		if val < 0 {
			return errorsmod.Wrapf(ErrInvalidPacketData, "negative validator %d", val)
		}
		if power < 0 {
			return errorsmod.Wrapf(ErrInvalidPacketData, "negative power %d for validator %d", power, val)
		}
	}
	for _, val := range vsc.DowntimeSlashAcks {
		if val < 0 {
			return errorsmod.Wrapf(ErrInvalidPacketData, "negative validator %d in slash acks", val)
		}
	}
	return nil
}

// SortedValidators returns the validators with an update, ascending.
func (vsc ValidatorSetChangePacketData) SortedValidators() []Validator {
	return SortedKeys(vsc.ValidatorUpdates)
}

// VSCMaturedPacketData is sent consumer -> provider once the consumer
// unbonding period has elapsed for a VSC.
type VSCMaturedPacketData struct {
	ValsetUpdateID uint64
}

func NewVSCMaturedPacketData(valUpdateID uint64) VSCMaturedPacketData {
	return VSCMaturedPacketData{ValsetUpdateID: valUpdateID}
}

func (VSCMaturedPacketData) isPacketData() {}

func (VSCMaturedPacketData) Type() string { return VSCMaturedPacket }

// Validate is used for validating the VSCMatured packet data.
func (mat VSCMaturedPacketData) Validate() error {
	return nil
}

// SlashPacketData is sent consumer -> provider to request a slash.
type SlashPacketData struct {
	Validator Validator
	// Note that ValsetUpdateID can be zero due to the vscID mapping
	ValsetUpdateID uint64
	IsDowntime     bool
}

func NewSlashPacketData(val Validator, valUpdateID uint64, isDowntime bool) SlashPacketData {
	return SlashPacketData{
		Validator:      val,
		ValsetUpdateID: valUpdateID,
		IsDowntime:     isDowntime,
	}
}

func (SlashPacketData) isPacketData() {}

func (SlashPacketData) Type() string { return SlashPacket }

func (vdt SlashPacketData) Validate() error {
	if vdt.Validator < 0 {
		return errorsmod.Wrap(ErrInvalidPacketData, fmt.Sprintf("invalid validator: %d", vdt.Validator))
	}
	return nil
}

// SortedKeys returns the keys of a validator-indexed map in ascending order.
func SortedKeys[V any](m map[Validator]V) []Validator {
	keys := make([]Validator, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
