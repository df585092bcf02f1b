package layout

// Layout holds calculated dimensions for the dice screen.
type Layout struct {
	Width  int
	Height int

	FormWidth   int // dice/sides inputs and roll button
	ResultWidth int // current roll and history

	ContentHeight int // height minus title bar and status bar

	SingleColumn bool
}

const (
	titleBarHeight  = 1
	statusBarHeight = 1
	singleColumnMax = 72
	minFormWidth    = 28
	maxFormWidth    = 44
)

// Calculate computes the layout from terminal dimensions.
func Calculate(width, height int) Layout {
	l := Layout{
		Width:         width,
		Height:        height,
		ContentHeight: height - titleBarHeight - statusBarHeight,
	}

	if l.ContentHeight < 1 {
		l.ContentHeight = 1
	}

	if width < singleColumnMax {
		l.SingleColumn = true
		l.FormWidth = width
		l.ResultWidth = width
		return l
	}

	l.FormWidth = clamp(width*2/5, minFormWidth, maxFormWidth)
	l.ResultWidth = width - l.FormWidth
	return l
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
