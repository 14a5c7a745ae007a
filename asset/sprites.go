package asset

// DefaultSpriteSheet is the built-in TOML sprite sheet
// Rows are drawn top-down, centered inside the tile or overlay box
const DefaultSpriteSheet = `
# === Targets ===

[sprites.trafficlight1]
fg = "#D00000"
rows = [
    "  .---.  ",
    "  | @ |  ",
    "  | o |  ",
    "  | o |  ",
    "  '-+-'  ",
]

[sprites.trafficlight2]
fg = "#B07000"
rows = [
    "  .---.  ",
    "  | o |  ",
    "  | @ |  ",
    "  | o |  ",
    "  '-+-'  ",
]

[sprites.trafficlight3]
fg = "#006000"
rows = [
    "  .---.  ",
    "  | o |  ",
    "  | o |  ",
    "  | @ |  ",
    "  '-+-'  ",
]

# === Distractors ===

[sprites.bicycle]
fg = "#000080"
rows = [
    "           ",
    "      __o  ",
    "    _ \\<_  ",
    "   (_)/(_) ",
    "           ",
]

[sprites.stopsign]
fg = "#A00000"
rows = [
    "  _____  ",
    " /     \\ ",
    "| STOP  |",
    " \\_____/ ",
    "    |    ",
]

[sprites.tree]
fg = "#004000"
rows = [
    "    /\\    ",
    "   /  \\   ",
    "  /    \\  ",
    " /______\\ ",
    "    ||    ",
]

# === Overlays ===

[sprites.ad]
fg = "#FFFF00"
bg = "#C00060"
rows = [
    "*** CONGRATULATIONS ***",
    "",
    "You are our 1,000,000th visitor!",
    "Click HERE to claim your FREE prize",
]

[sprites.restartButton]
fg = "#39FF14"
bg = "#000000"
rows = [
    "[ Restart ]",
]
`
