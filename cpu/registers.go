package cpu

const (
	NUMBER_LIMIT = 22 // Number of number registers. r0 is the constant 0.
)

// Registers is the register file: the number bank and the history ring.
type Registers struct {
	Number  [NUMBER_LIMIT]int
	History History

	next int // Next number register to store to.
}

// Reset zeros both banks and rewinds the cursors.
func (rf *Registers) Reset() {
	clear(rf.Number[:])
	rf.History.Reset()
	rf.next = 1
}

// NextNumber returns the slot the next StoreNumber will write.
func (rf *Registers) NextNumber() int {
	if rf.next == 0 {
		return 1
	}
	return rf.next
}

// StoreNumber writes a value to the next number register, returning the slot.
// The cursor wraps from the last register back to r1.
func (rf *Registers) StoreNumber(value uint32) (slot int) {
	slot = rf.NextNumber()
	rf.Number[slot] = int(value)

	rf.next = slot + 1
	if rf.next == NUMBER_LIMIT {
		rf.next = 1
	}

	return
}

// LoadNumber reads a number register.
func (rf *Registers) LoadNumber(address uint32) (value int, err error) {
	if address >= NUMBER_LIMIT {
		err = ErrRegister(address)
		return
	}

	value = rf.Number[address]
	return
}

// StoreHistory records a result, returning the history slot written.
func (rf *Registers) StoreHistory(value int) (slot int) {
	return rf.History.Push(value)
}

// RecallLast returns the most recent result not yet recalled.
func (rf *Registers) RecallLast() (value int, err error) {
	if rf.History.Empty() {
		err = ErrNoHistory
		return
	}

	value, ok := rf.History.Recall()
	if !ok {
		err = ErrNoHistory
	}
	return
}
