package board

// Zobrist keys for position hashing.
// Uses PRNG with fixed seed so hashes are stable across runs and can be stored.
var (
	zobristPiece      [12][64]uint64 // indexed like the occupancy bitboards
	zobristCastling   [64]uint64     // only the four rook home squares are used
	zobristSideToMove uint64         // XOR when black to move
)

func init() {
	initZobrist()
}

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for i := range zobristPiece {
		for sq := range zobristPiece[i] {
			zobristPiece[i][sq] = rng.next()
		}
	}

	for _, sq := range (whiteCastlingHome | blackCastlingHome).Squares() {
		zobristCastling[sq] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// Hash returns the Zobrist hash of placement, side to move and castling rights.
// History is not part of the hash, so two boards reaching the same position by
// different move orders hash alike even when only one of them allows en passant.
func (b *Board) Hash() uint64 {
	var h uint64
	for i, bb := range b.pieces {
		for _, sq := range bb.Squares() {
			h ^= zobristPiece[i][sq]
		}
	}
	for _, sq := range (b.castling[0] | b.castling[1]).Squares() {
		h ^= zobristCastling[sq]
	}
	if b.turn == Black {
		h ^= zobristSideToMove
	}
	return h
}
