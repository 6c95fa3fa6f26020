package search

import "github.com/seekerror/chass/pkg/chess"

// MoveEnumerator lists the candidate moves a MeeterInTheMiddle frontier can
// take from position; MovePerformer applies one of them in place. The front
// frontier passes chess.Advancer's pair, the back frontier chess.Retractor's.
type MoveEnumerator func(*chess.Position) []chess.Move
type MovePerformer func(*chess.Position, chess.Move)

// MeeterInTheMiddle proves reachability by growing two frontiers toward each
// other — one advancing forward from the starting array, one retracting
// backward from the target position — and, once they have grown the requested
// number of levels between them, joining every front position and back position
// that describe the same placement. This
// scales far better than Backtracker for deep searches: a pure backward
// search's branching factor compounds for the whole depth, while meeting in
// the middle only needs each frontier to cover half of it.
type MeeterInTheMiddle struct {
	OnPosition PositionFound
	Reporter   *ProgressReporter

	depth int
}

// NewMeeterInTheMiddle returns a MeeterInTheMiddle reporting every found
// sequence to onPosition and its progress (if non-nil) to reporter.
func NewMeeterInTheMiddle(onPosition PositionFound, reporter *ProgressReporter) *MeeterInTheMiddle {
	if reporter == nil {
		reporter = NewProgressReporter(nil)
	}
	return &MeeterInTheMiddle{OnPosition: onPosition, Reporter: reporter}
}

// Search runs depth iterations, each growing by one level whichever frontier is
// predicted cheaper, and reports every sequence found where the two meet.
func (m *MeeterInTheMiddle) Search(position *chess.Position, depth int) {
	m.depth = depth
	m.Reporter.Start()
	defer m.Reporter.End()
	frontChain := NewPositionChain()
	backChain := NewPositionChain()
	frontChain.Add((chess.Analyzer{}).GetStartingPosition().Pack(), chess.Move{}, -1)
	if (chess.Validator{}).Validate(position) {
		backChain.Add(position.Pack(), chess.Move{}, -1)
	}

	totalStages := depth + 1 // +1 is the consolidation
	for iteration := 0; iteration < depth; iteration++ {
		if backChain.LastLevel().Length == 0 {
			return
		}
		if predictNextLevelSize(backChain) < predictNextLevelSize(frontChain) {
			m.iterate(backChain, (chess.Retractor{}).EnumerateMoves, (chess.Retractor{}).Retract, true, iteration, totalStages, nil)
		} else {
			m.iterate(frontChain, (chess.Advancer{}).EnumerateMoves, (chess.Advancer{}).Advance, false, iteration, totalStages, position)
		}
	}
	m.consolidate(frontChain, backChain, totalStages-1, totalStages)
}

func (m *MeeterInTheMiddle) iterate(chain *PositionChain, enumerate MoveEnumerator, perform MovePerformer, validate bool, currentStage, totalStages int, finalPosition *chess.Position) {
	chain.StartNextLevel()
	last := chain.SecondLastLevel()
	for i := 0; i < last.Length; i++ {
		index := i + last.StartingIndex
		m.Reporter.Report([]Frame{{currentStage, totalStages}, {i, last.Length}}, false)

		position := chess.Unpack(chain.Get(index).Position)
		for _, move := range enumerate(position) {
			if finalPosition != nil && move.Kind == chess.Pawn &&
				((move.Side == chess.White && move.From.Rank == chess.Rank2) ||
					(move.Side == chess.Black && move.From.Rank == chess.Rank7)) &&
				finalPosition.IsPieceInSquare(move.From, move.Side, move.Kind) {
				continue
			}

			next := position.Clone()
			perform(next, move)

			ok := (chess.Validator{}).ValidateChecks(next)
			if validate {
				ok = (chess.Validator{}).Validate(next)
			}
			if ok {
				chain.Add(next.Pack(), move, index)
			}
		}
	}
}

func traverse(chain *PositionChain, index int) []chess.Move {
	moves := make([]chess.Move, 0, chain.LevelCount())
	for level := chain.LevelCount() - 1; level > 0; level-- {
		node := chain.Get(index)
		moves = append(moves, node.Move)
		index = node.Parent
	}
	return moves
}

func reverseMoves(moves []chess.Move) {
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
}

func (m *MeeterInTheMiddle) merge(frontChain, backChain *PositionChain, frontIndex, backIndex int) {
	reportedMoves := make([]chess.Move, 0, m.depth)
	backMoves := traverse(backChain, backIndex)
	reverseMoves(backMoves)
	reportedMoves = append(reportedMoves, backMoves...)
	reportedMoves = append(reportedMoves, traverse(frontChain, frontIndex)...)

	if m.OnPosition != nil {
		m.OnPosition((chess.Analyzer{}).GetStartingPosition(), reportedMoves, m.depth)
	}
}

func (m *MeeterInTheMiddle) consolidate(frontChain, backChain *PositionChain, currentStage, totalStages int) {
	frontLevel := frontChain.LastLevel()
	backLevel := backChain.LastLevel()
	totalSteps := frontLevel.Length + backLevel.Length
	currentStep := 0

	positionMap := map[string][]int{}
	type stage struct {
		chain *PositionChain
		level Level
	}
	frontThenBack := frontLevel.Length < backLevel.Length
	stages := [2]stage{{frontChain, frontLevel}, {backChain, backLevel}}
	if !frontThenBack {
		stages = [2]stage{{backChain, backLevel}, {frontChain, frontLevel}}
	}

	for s := 0; s < 2; s++ {
		maxIndex := stages[s].level.StartingIndex + stages[s].level.Length
		for index := stages[s].level.StartingIndex; index < maxIndex; index++ {
			m.Reporter.Report([]Frame{{currentStage, totalStages}, {currentStep, totalSteps}}, false)
			placement := chess.Unpack(stages[s].chain.Get(index).Position).ToFENPlacement(false)

			if s == 0 {
				positionMap[placement] = append(positionMap[placement], index)
			} else if occurrences, ok := positionMap[placement]; ok {
				for _, another := range occurrences {
					frontIndex, backIndex := another, index
					if !frontThenBack {
						frontIndex, backIndex = index, another
					}
					frontPosition := chess.Unpack(frontChain.Get(frontIndex).Position)
					backPosition := chess.Unpack(backChain.Get(backIndex).Position)
					if frontPosition.CanBeSpecializationOf(backPosition) {
						m.merge(frontChain, backChain, frontIndex, backIndex)
					}
				}
			}
			currentStep++
		}
	}
}

func predictNextLevelSize(chain *PositionChain) float64 {
	if chain.LevelCount() < 2 {
		return 1.0
	}
	lastLength := float64(chain.LastLevel().Length)
	return lastLength * lastLength / float64(chain.SecondLastLevel().Length)
}
