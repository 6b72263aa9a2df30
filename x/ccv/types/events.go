package types

// Event is a tag pushed by a model state transition. The sequence of events
// is compared against the events observed on the system under test.
type Event string

// CCV model events
const (
	EventRebondUnval                     Event = "rebondUnval"
	EventCompleteUnvalInEndBlock         Event = "completeUnvalInEndBlock"
	EventSetUnvalHoldFalse               Event = "setUnvalHoldFalse"
	EventSetUndelHoldFalse               Event = "setUndelHoldFalse"
	EventInsufficientShares              Event = "insufficientShares"
	EventSlashUndel                      Event = "slashUndel"
	EventJail                            Event = "jail"
	EventCompleteUndelInEndBlock         Event = "completeUndelInEndBlock"
	EventCompleteUndelImmediate          Event = "completeUndelImmediate"
	EventReceiveDowntimeSlashRequest     Event = "receiveDowntimeSlashRequest"
	EventReceiveDoubleSignSlashRequest   Event = "receiveDoubleSignSlashRequest"
	EventReceiveSlashRequestUnbonded     Event = "receiveSlashRequestUnbonded"
	EventReceiveDowntimeSlashAck         Event = "receiveDowntimeSlashAck"
	EventDowntimeSlashRequestOutstanding Event = "downtimeSlashRequestOutstanding"
	EventSendDowntimeSlashRequest        Event = "sendDowntimeSlashRequest"
	EventSendDoubleSignSlashRequest      Event = "sendDoubleSignSlashRequest"
	EventSendVscNotBecauseChange         Event = "sendVscNotBecauseChange"
	EventSendVscWithDowntimeAck          Event = "sendVscWithDowntimeAck"
	EventSendVscWithoutDowntimeAck       Event = "sendVscWithoutDowntimeAck"
	EventSomeUndelsExpiredButNotComplete Event = "someUndelsExpiredButNotCompleted"
	EventConsumerUpdateVal               Event = "consumerUpdateVal"
	EventConsumerDelVal                  Event = "consumerDelVal"
	EventConsumerAddVal                  Event = "consumerAddVal"
	EventConsumerSendMaturation          Event = "consumerSendMaturation"
	EventMoreThanOneThirdValPowerChange  Event = "moreThanOneThirdValPowerChange"
)

// AllEvents lists every event the model can emit.
func AllEvents() []Event {
	return []Event{
		EventRebondUnval,
		EventCompleteUnvalInEndBlock,
		EventSetUnvalHoldFalse,
		EventSetUndelHoldFalse,
		EventInsufficientShares,
		EventSlashUndel,
		EventJail,
		EventCompleteUndelInEndBlock,
		EventCompleteUndelImmediate,
		EventReceiveDowntimeSlashRequest,
		EventReceiveDoubleSignSlashRequest,
		EventReceiveSlashRequestUnbonded,
		EventReceiveDowntimeSlashAck,
		EventDowntimeSlashRequestOutstanding,
		EventSendDowntimeSlashRequest,
		EventSendDoubleSignSlashRequest,
		EventSendVscNotBecauseChange,
		EventSendVscWithDowntimeAck,
		EventSendVscWithoutDowntimeAck,
		EventSomeUndelsExpiredButNotComplete,
		EventConsumerUpdateVal,
		EventConsumerDelVal,
		EventConsumerAddVal,
		EventConsumerSendMaturation,
		EventMoreThanOneThirdValPowerChange,
	}
}

// EventSink receives the events emitted by the keepers.
type EventSink interface {
	Emit(Event)
}

// EventLog is an append-only EventSink.
type EventLog struct {
	events []Event
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) Emit(e Event) {
	l.events = append(l.events, e)
}

// Events returns a copy of the events emitted so far.
func (l *EventLog) Events() []Event {
	return append([]Event(nil), l.events...)
}

func (l *EventLog) Len() int {
	return len(l.events)
}

// Count returns how many times e was emitted.
func (l *EventLog) Count(e Event) int {
	n := 0
	for _, x := range l.events {
		if x == e {
			n++
		}
	}
	return n
}

// MultiSink fans events out to several sinks, in order.
type MultiSink []EventSink

func (m MultiSink) Emit(e Event) {
	for _, s := range m {
		s.Emit(e)
	}
}
