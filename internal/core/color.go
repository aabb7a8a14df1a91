package core

// Color is the foreground color of a screen cell. Front-ends map it to
// ANSI 256-color codes.
type Color uint8

// Palette used by the terminal renderer.
const (
	ColorDefault     Color = iota
	ColorWhite             // Rocket body, button labels
	ColorBrightWhite       // HUD and title
	ColorGray              // Jet, dimmed menu text
	ColorRed               // Rocket nose
	ColorBrightRed         // Hitbox overlay, GAME OVER
	ColorGreen             // Barrier body
	ColorBrightGreen       // Barrier caps
	ColorOrange            // Exhaust flame
	ColorYellow            // PAUSED caption
	ColorBrightYellow      // Title
	ColorBrightBlue        // Menu button frames
)
