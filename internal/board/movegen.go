package board

// GenerateMoves recomputes the pseudo-legal moves of both sides and the control
// bitboards. It must run after LoadPosition and after every MakeMove before moves
// are queried again. Side to move does not influence the result.
func (b *Board) GenerateMoves() (white, black []Move) {
	var lists [2][]Move

	for i := 0; i < 64; i++ {
		sq := Square(i)
		p := b.PieceAt(sq)
		if p.IsNone() {
			continue
		}
		ci := p.Color.index()
		switch p.Type {
		case Pawn:
			lists[ci] = b.generatePawnMoves(lists[ci], sq, p)
		case Knight:
			lists[ci] = b.generateJumps(lists[ci], sq, p, knightJumps[:], KnightMove())
		case Bishop:
			lists[ci] = b.generateRays(lists[ci], sq, p, diagonalDirs[:], BishopMove())
		case Rook:
			lists[ci] = b.generateRays(lists[ci], sq, p, straightDirs[:], RookMove())
		case Queen:
			lists[ci] = b.generateRays(lists[ci], sq, p, queenDirs[:], QueenMove())
		case King:
			lists[ci] = b.generateJumps(lists[ci], sq, p, queenDirs[:], KingMove())
		}
	}

	// Control comes from the non-castling moves only, so castling below sees the
	// current position and a second call reproduces the same result.
	b.control[0].Zero()
	b.control[1].Zero()
	for ci := range lists {
		for _, m := range lists[ci] {
			b.markControl(ci, m)
		}
	}

	for _, c := range []Color{White, Black} {
		lists[c.index()] = b.generateCastlingMoves(lists[c.index()], c)
	}

	b.moves = lists
	return b.MovesFor(White), b.MovesFor(Black)
}

// markControl records a move's destination in the mover's control bitboard.
// Pawn pushes and king moves cannot attack the squares castling passes through.
func (b *Board) markControl(ci int, m Move) {
	switch m.Type.Kind {
	case PawnPushKind, PawnDoublePushKind, KingMoveKind:
		return
	}
	b.control[ci].Set(m.To)
}

// generateRays casts rays for sliding pieces.
func (b *Board) generateRays(ml []Move, from Square, p Piece, dirs []SafeCoordinate, mt MoveType) []Move {
	origin := from.Safe()
	for _, dir := range dirs {
		for cur := origin.Step(dir); !cur.OutOfBounds(); cur = cur.Step(dir) {
			to := cur.Square()
			target := b.PieceAt(to)
			if !target.IsNone() {
				if target.Color != p.Color {
					ml = append(ml, Move{From: from, To: to, Type: mt})
				}
				break
			}
			ml = append(ml, Move{From: from, To: to, Type: mt})
		}
	}
	return ml
}

// generateJumps handles knights and the king's single steps.
func (b *Board) generateJumps(ml []Move, from Square, p Piece, offsets []SafeCoordinate, mt MoveType) []Move {
	origin := from.Safe()
	for _, off := range offsets {
		cur := origin.Step(off)
		if cur.OutOfBounds() {
			continue
		}
		to := cur.Square()
		target := b.PieceAt(to)
		if !target.IsNone() && target.Color == p.Color {
			continue
		}
		ml = append(ml, Move{From: from, To: to, Type: mt})
	}
	return ml
}

// castlePlan describes one castling option for one color.
type castlePlan struct {
	king     Square
	rook     Square
	path     []Square
	kingTo   Square
	rookTo   Square
	moveType MoveType
}

var castlePlans = map[Color][2]castlePlan{
	White: {
		{king: E1, rook: H1, path: []Square{G1, F1}, kingTo: G1, rookTo: F1, moveType: CastleKingSide()},
		{king: E1, rook: A1, path: []Square{D1, C1, B1}, kingTo: C1, rookTo: D1, moveType: CastleQueenSide()},
	},
	Black: {
		{king: E8, rook: H8, path: []Square{G8, F8}, kingTo: G8, rookTo: F8, moveType: CastleKingSide()},
		{king: E8, rook: A8, path: []Square{D8, C8, B8}, kingTo: C8, rookTo: D8, moveType: CastleQueenSide()},
	},
}

// castlePlanFor returns the plan matching a castling move type.
func castlePlanFor(c Color, mt MoveType) castlePlan {
	plans := castlePlans[c]
	if mt.Kind == CastleKingSideKind {
		return plans[0]
	}
	return plans[1]
}

// generateCastlingMoves adds castling for c. The king's own square is not tested
// against the opponent's control.
func (b *Board) generateCastlingMoves(ml []Move, c Color) []Move {
	king := NewPiece(c, King)
	rook := NewPiece(c, Rook)
	opponent := b.control[c.Other().index()]

	for _, plan := range castlePlans[c] {
		if b.PieceAt(plan.king) != king {
			return ml
		}
		if b.PieceAt(plan.rook) != rook || !b.castling[c.index()].IsSet(plan.rook) {
			continue
		}
		if !b.pathClear(plan.path, opponent) {
			continue
		}
		ml = append(ml, Move{From: plan.king, To: plan.kingTo, Type: plan.moveType})
	}
	return ml
}

// pathClear reports whether every path square is empty and uncontrolled.
func (b *Board) pathClear(path []Square, opponent Bitboard) bool {
	for _, sq := range path {
		if !b.IsEmpty(sq) || opponent.IsSet(sq) {
			return false
		}
	}
	return true
}

// generatePawnMoves adds pushes, double pushes, captures and en passant.
func (b *Board) generatePawnMoves(ml []Move, from Square, p Piece) []Move {
	co := from.Safe()
	forward, home := 1, 1
	if p.Color == Black {
		forward, home = -1, 6
	}

	front := co.Step(SafeCoordinate{0, forward})
	if !front.OutOfBounds() && b.IsEmpty(front.Square()) {
		ml = append(ml, Move{From: from, To: front.Square(), Type: PawnPush(NoPieceType)})

		if co.Y == home {
			double := front.Step(SafeCoordinate{0, forward})
			if b.IsEmpty(double.Square()) {
				ml = append(ml, Move{From: from, To: double.Square(), Type: PawnDoublePush()})
			}
		}
	}

	for _, side := range []int{1, -1} {
		diag := co.Step(SafeCoordinate{side, forward})
		if diag.OutOfBounds() {
			continue
		}
		target := b.PieceAt(diag.Square())
		if target.IsNone() || target.Color == p.Color {
			continue
		}
		ml = append(ml, Move{From: from, To: diag.Square(), Type: PawnCapture(NoPieceType)})
	}

	if m, ok := b.enPassantCapture(from, p); ok {
		ml = append(ml, m)
	}
	return ml
}

// enPassantCapture finds the en passant capture available to the pawn on from, if any.
// Only the immediately preceding move can enable it.
func (b *Board) enPassantCapture(from Square, p Piece) (Move, bool) {
	last, ok := b.LastMove()
	if !ok || last.Type.Kind != PawnDoublePushKind {
		return Move{}, false
	}

	co := from.Safe()
	forward := 1
	if p.Color == Black {
		forward = -1
	}

	for _, side := range []int{1, -1} {
		adj := co.Step(SafeCoordinate{side, 0})
		if adj.OutOfBounds() || adj.Square() != last.To {
			continue
		}
		victim := b.PieceAt(adj.Square())
		if victim.Type != Pawn || victim.Color == p.Color {
			continue
		}
		land := adj.Step(SafeCoordinate{0, forward})
		if land.OutOfBounds() || !b.IsEmpty(land.Square()) {
			continue
		}
		return Move{From: from, To: land.Square(), Type: PawnEnPassant(adj.Coordinate())}, true
	}
	return Move{}, false
}
