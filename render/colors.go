package render

import "github.com/gdamore/tcell/v2"

var (
	styleBackground = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 40))
	stylePeg        = styleBackground.Foreground(tcell.ColorWhite)
	styleBall       = styleBackground.Foreground(tcell.ColorRed).Bold(true)
	styleBin        = styleBackground.Foreground(tcell.NewRGBColor(200, 200, 255))
	styleBinLabel   = styleBackground.Foreground(tcell.ColorYellow)
	styleBinHit     = styleBinLabel.Reverse(true)
	styleHUD        = styleBackground.Foreground(tcell.ColorWhite)
	styleWinnings   = styleBackground.Foreground(tcell.ColorYellow)
	styleEditing    = styleHUD.Reverse(true)
	styleError      = styleBackground.Foreground(tcell.ColorRed)
	styleHelp       = styleBackground.Foreground(tcell.ColorGray)
)
