package ocr

// Point is the centre of a token's bounding box.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is a token's bounding box as left, top, width and height.
type Bounds struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Centre returns (left + width/2, top + height/2).
func (t Token) Centre() Point {
	return Point{
		X: float64(t.Left) + float64(t.Width)/2,
		Y: float64(t.Top) + float64(t.Height)/2,
	}
}

// Bounds returns the token's bounding box.
func (t Token) Bounds() Bounds {
	return Bounds{Left: t.Left, Top: t.Top, Width: t.Width, Height: t.Height}
}

// LocateText returns the centre of the first token whose text equals text.
// Matching is exact and case-sensitive, and only single words can match.
func LocateText(tokens []Token, text string) (Point, bool) {
	for _, tok := range tokens {
		if tok.Text == text {
			return tok.Centre(), true
		}
	}
	return Point{}, false
}

// LocateAllText returns the centres of every token whose text equals text,
// in token order. It returns nil when nothing matches.
func LocateAllText(tokens []Token, text string) []Point {
	var pts []Point
	for _, tok := range tokens {
		if tok.Text == text {
			pts = append(pts, tok.Centre())
		}
	}
	return pts
}

// LocateBounds returns the bounds of the first token whose text equals text.
func LocateBounds(tokens []Token, text string) (Bounds, bool) {
	for _, tok := range tokens {
		if tok.Text == text {
			return tok.Bounds(), true
		}
	}
	return Bounds{}, false
}

// LocateAllBounds returns the bounds of every matching token in token order,
// or nil when nothing matches.
func LocateAllBounds(tokens []Token, text string) []Bounds {
	var out []Bounds
	for _, tok := range tokens {
		if tok.Text == text {
			out = append(out, tok.Bounds())
		}
	}
	return out
}
