package imagedata

import "fmt"

// Color holds the three channel values of a record in the order they appear in the file.
type Color struct {
	C0 uint8
	C1 uint8
	C2 uint8
}

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.C0, c.C1, c.C2)
}

type Pixel struct {
	Color  Color
	Column int
	Line   int
	Row    int
}

func (p Pixel) String() string {
	output := "{Pixel "
	output += fmt.Sprintf("Color: %v ", p.Color)
	output += fmt.Sprintf("Column: %d ", p.Column)
	output += fmt.Sprintf("Line: %d ", p.Line)
	output += fmt.Sprintf("Row: %d}", p.Row)
	return output
}
