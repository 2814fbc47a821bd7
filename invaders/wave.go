package invaders

import "math"

// Shape is the silhouette every enemy of a wave is drawn with.
type Shape int

const (
	ShapeHexagon Shape = iota
	ShapeTriangle
	ShapeSquare
	ShapeCircle
	ShapeStar
)

// Shapes is the cycle waves step through.
var Shapes = []Shape{ShapeHexagon, ShapeTriangle, ShapeSquare, ShapeCircle, ShapeStar}

func (s Shape) String() string {
	switch s {
	case ShapeHexagon:
		return "hexagon"
	case ShapeTriangle:
		return "triangle"
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	case ShapeStar:
		return "star"
	default:
		return "unknown"
	}
}

// WaveParams is everything that changes from one wave to the next.
type WaveParams struct {
	Speed         float64
	RotationSpeed float64
	Shape         Shape
}

// ParamsForWave returns the parameters of wave w (w >= 1).
func ParamsForWave(w int) WaveParams {
	idx := (w - 1) % len(Shapes)
	if idx < 0 {
		idx += len(Shapes)
	}
	return WaveParams{
		Speed:         math.Min(1+float64(w)*0.2, MaxEnemySpeed),
		RotationSpeed: 0.02 + float64(w)*0.005,
		Shape:         Shapes[idx],
	}
}

func (s *State) enterWave(w int) {
	params := ParamsForWave(w)
	s.Wave = w
	s.EnemySpeed = params.Speed
	s.RotationSpeed = params.RotationSpeed
	s.Shape = params.Shape
}

// GridCell returns the top-left corner of the enemy at (row, col) of a fresh formation.
func GridCell(field *Playfield, row, col int) Position {
	return Position{
		X: float64(col)*(field.EnemyWidth+field.EnemyPadding) + GridOrigin,
		Y: float64(row)*(field.EnemyHeight+field.EnemyPadding) + GridOrigin,
	}
}

// spawnFormation lays out a full EnemyRows x EnemyCols grid moving right.
func spawnFormation(spawn func(components ...any), field *Playfield, speed float64) {
	for row := range EnemyRows {
		for col := range EnemyCols {
			spawn(
				GridCell(field, row, col),
				Size{W: field.EnemyWidth, H: field.EnemyHeight},
				Enemy{Direction: 1, Speed: speed},
			)
		}
	}
}
