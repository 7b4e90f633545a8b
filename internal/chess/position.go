package chess

// Position is the board state after one ply. A Position is fully determined
// by its parent Position plus one applied move; it is never mutated after the
// state machine that creates it has finished.
type Position struct {
	// The board squares, indexed [col][rank] with 0 = a-file / first rank.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The number of the last completed White move. The standard starting
	// position holds 0, so applying White's first move yields 1.
	MoveNumber uint

	// The four castling permissions.
	Castling CastlingRights

	// Keep track of where the two kings are for check detection.
	WKingCol  Col
	WKingRank Rank
	BKingCol  Col
	BKingRank Rank

	// Is an en passant capture possible? If so EPCol and EPRank hold the
	// target square.
	EnPassant bool
	EPCol     Col
	EPRank    Rank

	// Plies since the last capture or pawn move.
	HalfmoveClock uint
}

// NewPosition creates an empty position with White to move.
func NewPosition() *Position {
	return &Position{ToMove: White}
}

// Get returns the piece at the given coordinates ('a'-'h', '1'-'8'),
// or Empty for coordinates off the board.
func (p *Position) Get(col Col, rank Rank) Piece {
	c := ColIndex(col)
	r := RankIndex(rank)
	if c < 0 || r < 0 {
		return Empty
	}
	return p.Squares[c][r]
}

// Set places a piece at the given coordinates. Out-of-range coordinates
// are ignored.
func (p *Position) Set(col Col, rank Rank, piece Piece) {
	c := ColIndex(col)
	r := RankIndex(rank)
	if c >= 0 && r >= 0 {
		p.Squares[c][r] = piece
	}
}

// Occupied reports whether the square holds a piece.
func (p *Position) Occupied(col Col, rank Rank) bool {
	return p.Get(col, rank) != Empty
}

// Copy creates an independent field-by-field copy of the position.
func (p *Position) Copy() *Position {
	next := &Position{}
	*next = *p
	return next
}

// SetupInitial places the standard starting position.
func (p *Position) SetupInitial() {
	for c := 0; c < BoardSize; c++ {
		for r := 0; r < BoardSize; r++ {
			p.Squares[c][r] = Empty
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for c := 0; c < BoardSize; c++ {
		p.Squares[c][0] = W(backRank[c])
		p.Squares[c][1] = W(Pawn)
		p.Squares[c][6] = B(Pawn)
		p.Squares[c][7] = B(backRank[c])
	}

	p.WKingCol, p.WKingRank = 'e', '1'
	p.BKingCol, p.BKingRank = 'e', '8'

	p.ToMove = White
	p.MoveNumber = 0
	p.Castling = AllCastlingRights()
	p.EnPassant = false
	p.EPCol, p.EPRank = 0, 0
	p.HalfmoveClock = 0
}

// KingSquare returns the tracked king square for the given colour.
func (p *Position) KingSquare(colour Colour) (Col, Rank) {
	if colour == White {
		return p.WKingCol, p.WKingRank
	}
	return p.BKingCol, p.BKingRank
}

// SetKingSquare updates the tracked king square for the given colour.
func (p *Position) SetKingSquare(colour Colour, col Col, rank Rank) {
	if colour == White {
		p.WKingCol, p.WKingRank = col, rank
	} else {
		p.BKingCol, p.BKingRank = col, rank
	}
}
