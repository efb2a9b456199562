package raymg

// ApplyMove moves the piece on (fromFile, fromRank) to (toFile, toRank) if dst
// marks the destination. dst must have been computed for the origin on the
// current board; nothing else is re-checked.
//
// The previous occupant of the destination is returned. It is simply
// overwritten; no capture bookkeeping happens here.
func ApplyMove(b *Board, dst Destinations, fromFile, fromRank, toFile, toRank int) (Square, error) {
	if !OnBoard(fromFile, fromRank) || !OnBoard(toFile, toRank) {
		return Empty, ErrOffBoard
	}
	p := b.Get(fromFile, fromRank)
	if p.IsEmpty() {
		return Empty, ErrEmptyOrigin
	}
	if !dst.Has(toFile, toRank) {
		return Empty, ErrIllegalDestination
	}
	b.Set(fromFile, fromRank, Empty)
	return b.Set(toFile, toRank, p), nil
}
