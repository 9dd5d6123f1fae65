package game

import "github.com/iburimskiy/heart-curve/internal/config"

// viewport converts between screen pixels, normalized figure coordinates
// (origin bottom-left, [0,1] on both axes) and curve data coordinates.
type viewport struct {
	width, height float64
}

func newViewport(width, height int) viewport {
	return viewport{width: float64(width), height: float64(height)}
}

func (v viewport) figureToScreen(fx, fy float64) (float64, float64) {
	return fx * v.width, (1 - fy) * v.height
}

func (v viewport) screenToFigure(px, py float64) (float64, float64) {
	return px / v.width, 1 - py/v.height
}

func (v viewport) dataToFigure(x, y float64) (float64, float64) {
	fx := config.AxesLeft + (x-config.ViewXMin)/(config.ViewXMax-config.ViewXMin)*(config.AxesRight-config.AxesLeft)
	fy := config.AxesBottom + (y-config.ViewYMin)/(config.ViewYMax-config.ViewYMin)*(config.AxesTop-config.AxesBottom)
	return fx, fy
}

func (v viewport) dataToScreen(x, y float64) (float64, float64) {
	return v.figureToScreen(v.dataToFigure(x, y))
}
