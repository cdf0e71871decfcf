package style

// Box names the eleven border glyphs a box style provides.
type Box struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
	LeftT       string
	RightT      string
	TopT        string
	BottomT     string
	Cross       string
}

// BoxStyle selects one of the fixed box-drawing character sets.
type BoxStyle int

const (
	BoxSquare BoxStyle = iota
	BoxRound
	BoxDouble
	BoxMinimal
	BoxMinimalHeavyHead
	BoxSimple
	BoxSimpleHead
	BoxASCII
)

var squareBox = Box{
	TopLeft: "┌", TopRight: "┐",
	BottomLeft: "└", BottomRight: "┘",
	Horizontal: "─", Vertical: "│",
	LeftT: "├", RightT: "┤",
	TopT: "┬", BottomT: "┴",
	Cross: "┼",
}

var roundBox = Box{
	TopLeft: "╭", TopRight: "╮",
	BottomLeft: "╰", BottomRight: "╯",
	Horizontal: "─", Vertical: "│",
	LeftT: "├", RightT: "┤",
	TopT: "┬", BottomT: "┴",
	Cross: "┼",
}

var doubleBox = Box{
	TopLeft: "╔", TopRight: "╗",
	BottomLeft: "╚", BottomRight: "╝",
	Horizontal: "═", Vertical: "║",
	LeftT: "╠", RightT: "╣",
	TopT: "╦", BottomT: "╩",
	Cross: "╬",
}

var minimalBox = Box{
	TopLeft: " ", TopRight: " ",
	BottomLeft: " ", BottomRight: " ",
	Horizontal: "─", Vertical: " ",
	LeftT: " ", RightT: " ",
	TopT: "─", BottomT: "─",
	Cross: "─",
}

var asciiBox = Box{
	TopLeft: "+", TopRight: "+",
	BottomLeft: "+", BottomRight: "+",
	Horizontal: "-", Vertical: "|",
	LeftT: "+", RightT: "+",
	TopT: "+", BottomT: "+",
	Cross: "+",
}

// Chars returns the glyph set for the style. Unknown values and the
// simple variants fall back to the square set.
func (b BoxStyle) Chars() Box {
	switch b {
	case BoxRound:
		return roundBox
	case BoxDouble:
		return doubleBox
	case BoxMinimal, BoxMinimalHeavyHead:
		return minimalBox
	case BoxASCII:
		return asciiBox
	default:
		return squareBox
	}
}
