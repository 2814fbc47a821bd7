package ebitenhost

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/shapeinvaders/invaders"
)

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Surface draws filled shapes on an ebiten image. Polygons are triangulated
// as a fan around their vertex centroid, which covers the convex shapes and
// the star outline alike.
type Surface struct {
	target   *ebiten.Image
	points   []invaders.Vec
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewSurface() *Surface {
	return &Surface{}
}

// Target sets the image later fills draw on.
func (s *Surface) Target(img *ebiten.Image) {
	s.target = img
}

func (s *Surface) Clear(c color.Color) {
	s.target.Fill(c)
}

func (s *Surface) FillRect(xf invaders.Transform, x, y, w, h float64, c color.Color) {
	s.points = append(s.points[:0],
		invaders.Vec{X: x, Y: y},
		invaders.Vec{X: x + w, Y: y},
		invaders.Vec{X: x + w, Y: y + h},
		invaders.Vec{X: x, Y: y + h},
	)
	s.FillPolygon(xf, s.points, c)
}

func (s *Surface) FillPolygon(xf invaders.Transform, pts []invaders.Vec, c color.Color) {
	if len(pts) < 3 {
		return
	}
	s.vertices, s.indices = appendFan(s.vertices[:0], s.indices[:0], xf, pts, c)
	s.target.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (s *Surface) FillCircle(xf invaders.Transform, cx, cy, r float64, c color.Color) {
	center := xf.Apply(invaders.Vec{X: cx, Y: cy})
	vector.DrawFilledCircle(s.target, float32(center.X), float32(center.Y), float32(r), c, true)
}

// appendFan appends a centroid vertex followed by the transformed outline and
// one triangle per edge.
func appendFan(vs []ebiten.Vertex, is []uint16, xf invaders.Transform, pts []invaders.Vec, c color.Color) ([]ebiten.Vertex, []uint16) {
	r, g, b, a := c.RGBA()
	vertex := func(p invaders.Vec) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		}
	}

	var centroid invaders.Vec
	for _, p := range pts {
		centroid.X += p.X
		centroid.Y += p.Y
	}
	centroid.X /= float64(len(pts))
	centroid.Y /= float64(len(pts))

	base := uint16(len(vs))
	vs = append(vs, vertex(xf.Apply(centroid)))
	for _, p := range pts {
		vs = append(vs, vertex(xf.Apply(p)))
	}

	n := uint16(len(pts))
	for i := range n {
		is = append(is, base, base+1+i, base+1+(i+1)%n)
	}
	return vs, is
}
