package runtime

// Clock is the ledger time supplied by the host for one instruction
// invocation. The program must never consult wall-clock time; every
// validator replaying the instruction sees the same Clock.
type Clock struct {
	Slot          uint64
	UnixTimestamp int64
}
