// decode_primary.go - the 64-entry primary opcode dispatch table

package ppc32

// initPrimaryTable fills every slot, defaulting to invalidEntry so that any
// primary opcode with no assigned semantic is a defined decode failure
// rather than a silently ignored word (§4.2's decoder invariant).
func (e *Emulator) initPrimaryTable() {
	for i := range e.primary {
		e.primary[i] = invalidEntry
	}

	e.primary[0x03] = twiEntry
	e.primary[0x07] = mulliEntry
	e.primary[0x08] = subficEntry
	e.primary[0x0A] = cmpliEntry
	e.primary[0x0B] = cmpiEntry
	e.primary[0x0C] = addicEntry(false)
	e.primary[0x0D] = addicEntry(true)
	e.primary[0x0E] = addiEntry
	e.primary[0x0F] = addisEntry
	e.primary[0x10] = bcEntry
	e.primary[0x11] = scEntry
	e.primary[0x12] = bEntry
	// 0x13 dispatches further through group13.

	e.primary[0x14] = rlwimiEntry
	e.primary[0x15] = rlwinmEntry
	e.primary[0x17] = rlwnmEntry

	e.primary[0x18] = oriEntry
	e.primary[0x19] = orisEntry
	e.primary[0x1A] = xoriEntry
	e.primary[0x1B] = xorisEntry
	e.primary[0x1C] = andiRecEntry
	e.primary[0x1D] = andisRecEntry
	// 0x1F dispatches further through group1F.

	e.primary[0x20] = loadStoreEntry("lwz", 4, false, false, false)
	e.primary[0x21] = loadStoreEntry("lwzu", 4, false, true, false)
	e.primary[0x22] = loadStoreEntry("lbz", 1, false, false, false)
	e.primary[0x23] = loadStoreEntry("lbzu", 1, false, true, false)
	e.primary[0x24] = loadStoreEntry("stw", 4, true, false, false)
	e.primary[0x25] = loadStoreEntry("stwu", 4, true, true, false)
	e.primary[0x26] = loadStoreEntry("stb", 1, true, false, false)
	e.primary[0x27] = loadStoreEntry("stbu", 1, true, true, false)
	e.primary[0x28] = loadStoreEntry("lhz", 2, false, false, false)
	e.primary[0x29] = loadStoreEntry("lhzu", 2, false, true, false)
	e.primary[0x2A] = loadStoreEntry("lha", 2, false, false, true)
	e.primary[0x2B] = loadStoreEntry("lhau", 2, false, true, true)
	e.primary[0x2C] = loadStoreEntry("sth", 2, true, false, false)
	e.primary[0x2D] = loadStoreEntry("sthu", 2, true, true, false)
	e.primary[0x2E] = lmwEntry
	e.primary[0x2F] = stmwEntry

	e.primary[0x30] = fpLoadStoreEntry("lfs", 4, false, false)
	e.primary[0x31] = fpLoadStoreEntry("lfsu", 4, false, true)
	e.primary[0x32] = fpLoadStoreEntry("lfd", 8, false, false)
	e.primary[0x33] = fpLoadStoreEntry("lfdu", 8, false, true)
	e.primary[0x34] = fpLoadStoreEntry("stfs", 4, true, false)
	e.primary[0x35] = fpLoadStoreEntry("stfsu", 4, true, true)
	e.primary[0x36] = fpLoadStoreEntry("stfd", 8, true, false)
	e.primary[0x37] = fpLoadStoreEntry("stfdu", 8, true, true)
	// 0x3B and 0x3F dispatch further through group3B/group3F/group3Fs.
}
