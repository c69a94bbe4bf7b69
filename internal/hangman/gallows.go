package hangman

import "strconv"

// Canvas dimensions the gallows coordinates are laid out on.
const (
	CanvasWidth  = 200
	CanvasHeight = 200
)

// PrimitiveKind selects how a Primitive is drawn.
type PrimitiveKind string

const (
	KindPath   PrimitiveKind = "path"   // connected line segments through Points
	KindCircle PrimitiveKind = "circle" // full arc around Center
)

// Point is a canvas coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Primitive is one stroke of the gallows drawing.
type Primitive struct {
	Part      string        `json:"part"`
	Kind      PrimitiveKind `json:"kind"`
	Points    []Point       `json:"points,omitempty"`
	Center    Point         `json:"center"`
	Radius    int           `json:"radius,omitempty"`
	Threshold int           `json:"threshold"`
	Visible   bool          `json:"visible"`
}

var gallowsParts = [MaxIncorrectGuesses]Primitive{
	{Part: "base", Kind: KindPath, Points: []Point{{10, 190}, {190, 190}}},
	{Part: "post", Kind: KindPath, Points: []Point{{50, 190}, {50, 10}, {150, 10}, {150, 30}}},
	{Part: "head", Kind: KindCircle, Center: Point{150, 50}, Radius: 20},
	{Part: "torso", Kind: KindPath, Points: []Point{{150, 70}, {150, 130}}},
	{Part: "left-arm", Kind: KindPath, Points: []Point{{150, 80}, {120, 110}}},
	{Part: "right-arm", Kind: KindPath, Points: []Point{{150, 80}, {180, 110}}},
	{Part: "left-leg", Kind: KindPath, Points: []Point{{150, 130}, {120, 160}}},
	{Part: "right-leg", Kind: KindPath, Points: []Point{{150, 130}, {180, 160}}},
}

// Gallows returns the full drawing for the given number of wrong guesses.
// The result always has one entry per part; part i is visible once
// incorrect exceeds i.
func Gallows(incorrect int) []Primitive {
	out := make([]Primitive, len(gallowsParts))
	for i, p := range gallowsParts {
		p.Points = append([]Point(nil), p.Points...)
		p.Threshold = i
		p.Visible = incorrect > i
		out[i] = p
	}
	return out
}

// SVGPoints formats a path primitive's points for an SVG polyline.
func (p Primitive) SVGPoints() string {
	var b []byte
	for i, pt := range p.Points {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(pt.X), 10)
		b = append(b, ',')
		b = strconv.AppendInt(b, int64(pt.Y), 10)
	}
	return string(b)
}
