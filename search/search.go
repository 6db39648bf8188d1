package search

import "github.com/shintakezou/gargantua/board"

// Mate and Infinity bound the search's integer score range widely enough
// that no evaluator value can collide with a mate score, matching the
// reference engine's convention of encoding "mate in N" as a score near a
// fixed ceiling.
const (
	Infinity = 50000
	Mate     = 49000
)

// AlphaBeta performs a fail-hard negamax search to depth plies from pos,
// using ctx's killer/history tables for move ordering and recording the
// best line into ctx.PV. It is scaffolding, not a production search: no
// transposition table, no null-move or late-move reductions, no
// quiescence-search pruning beyond captures-only generation at depth 0.
// A driver wanting those adds them around this function; the contract here
// is "correct minimax over legal moves, well ordered, PV-tracked,
// interruptible."
func AlphaBeta(ctx *Context, pos *board.Position, depth, alpha, beta int) int {
	ctx.PV.Init(ctx.Ply)

	if ctx.Stopped {
		return ctx.Eval.Evaluate(pos)
	}
	ctx.Nodes++

	if depth <= 0 {
		return Quiescence(ctx, pos, alpha, beta)
	}
	if ctx.Ply >= MaxPly-1 {
		return ctx.Eval.Evaluate(pos)
	}

	var list board.MoveList
	board.GenerateMoves(pos, &list, board.AllMoves)
	moves := list.Slice()

	if ctx.followPV {
		ctx.EnablePVScoring(moves)
	}
	pvMove := ctx.pvMoveAt()
	orderMoveList(ctx, pos, moves, pvMove)

	legalMoves := 0
	for _, m := range moves {
		if !pos.Make(m) {
			continue
		}
		legalMoves++
		ctx.Ply++
		score := -AlphaBeta(ctx, pos, depth-1, -beta, -alpha)
		ctx.Ply--
		pos.Unmake(m)

		if ctx.Stopped {
			return alpha
		}

		if score >= beta {
			if m.IsQuiet() {
				ctx.Killers.Insert(ctx.Ply, m)
				ctx.History.Add(m.Piece(), m.To(), depth)
			}
			return beta
		}
		if score > alpha {
			alpha = score
			ctx.PV.Store(ctx.Ply, m)
		}
	}

	if legalMoves == 0 {
		if pos.InCheck(pos.Side) {
			return -Mate + ctx.Ply
		}
		return 0 // stalemate
	}

	return alpha
}

// Quiescence extends the search along capturing lines only, avoiding the
// horizon effect where a favorable-looking capture sequence is cut off
// mid-exchange.
func Quiescence(ctx *Context, pos *board.Position, alpha, beta int) int {
	ctx.Nodes++

	standPat := ctx.Eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ctx.Stopped || ctx.Ply >= MaxPly-1 {
		return alpha
	}

	var list board.MoveList
	board.GenerateMoves(pos, &list, board.CapturesOnly)
	moves := list.Slice()
	orderMoveList(ctx, pos, moves, 0)

	for _, m := range moves {
		if !pos.Make(m) {
			continue
		}
		ctx.Ply++
		score := -Quiescence(ctx, pos, -beta, -alpha)
		ctx.Ply--
		pos.Unmake(m)

		if ctx.Stopped {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// orderMoveList scores and sorts moves in place ahead of a node's search,
// using whatever capture victim is actually on the target square.
func orderMoveList(ctx *Context, pos *board.Position, moves []board.Move, pvMove board.Move) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		victim := board.NoPiece
		if m.IsCapture() {
			if m.IsEnPassant() {
				victim = board.MakePiece(pos.Side.Other(), board.Pawn)
			} else {
				victim = pos.PieceAt(m.To())
			}
		}
		scores[i] = ScoreMove(m, ctx.Ply, pvMove, &ctx.Killers, &ctx.History, victim)
	}
	OrderMoves(moves, scores)
}

// IterativeDeepen runs AlphaBeta at increasing depths from 1 up to
// limits.Depth (or MaxPly-1 when unset), stopping early if stop returns
// true between iterations. It returns the best score and principal
// variation found at the deepest completed iteration.
func IterativeDeepen(ctx *Context, pos *board.Position, limits Limits, stop func() bool) (int, []board.Move) {
	ctx.Limits = limits
	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth >= MaxPly {
		maxDepth = MaxPly - 1
	}

	var bestScore int
	var bestLine []board.Move

	for depth := 1; depth <= maxDepth; depth++ {
		ctx.Ply = 0
		ctx.followPV = true
		score := AlphaBeta(ctx, pos, depth, -Infinity, Infinity)
		if ctx.Stopped {
			break
		}
		bestScore = score
		bestLine = append(bestLine[:0], ctx.PV.Line()...)

		if stop != nil && stop() {
			break
		}
	}
	return bestScore, bestLine
}
