package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color style.
type Color uint8

// Interface colors.
const (
	ColorDefault Color = iota
	ColorGray
	ColorBrightWhite
	ColorBrightRed
	ColorCyan
)

// Tile colors, one per value from 2 to 2048, then a shared color beyond.
const (
	ColorTile2 Color = iota + 32
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper
)

// TileColor returns the color used to draw a tile value.
// Empty cells are gray.
func TileColor(value int) Color {
	switch value {
	case 0:
		return ColorGray
	case 2:
		return ColorTile2
	case 4:
		return ColorTile4
	case 8:
		return ColorTile8
	case 16:
		return ColorTile16
	case 32:
		return ColorTile32
	case 64:
		return ColorTile64
	case 128:
		return ColorTile128
	case 256:
		return ColorTile256
	case 512:
		return ColorTile512
	case 1024:
		return ColorTile1024
	case 2048:
		return ColorTile2048
	default:
		return ColorTileSuper
	}
}
