package game

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/heart-curve/internal/config"
)

// curveLayers are drawn back to front: outer glow, inner glow, core line.
var curveLayers = []struct {
	width float64
	alpha float64
	glow  bool
}{
	{config.GlowOuterWidth, config.GlowOuterAlpha, true},
	{config.GlowInnerWidth, config.GlowInnerAlpha, true},
	{config.CoreWidth, config.CoreAlpha, false},
}

type stroke struct {
	vs []ebiten.Vertex
	is []uint16
}

// artwork holds GPU resources. It is created on the first Draw so that the
// game can be built without a graphics context.
type artwork struct {
	white   *ebiten.Image
	layer   *ebiten.Image
	face    *text.GoXFace
	version int
	strokes []stroke
}

func newArtwork() *artwork {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &artwork{
		white:   img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		layer:   ebiten.NewImage(config.WindowWidth, config.WindowHeight),
		face:    text.NewGoXFace(basicfont.Face7x13),
		version: -1,
		strokes: make([]stroke, len(curveLayers)),
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.art == nil {
		g.art = newArtwork()
	}

	screen.Fill(withAlpha(g.palette.background, 1))
	g.drawAxes(screen)
	g.drawCurve(screen)
	g.drawLabels(screen)
	if !g.state.Started() {
		g.drawSplash(screen)
	}
}

func (g *game) axesRect() image.Rectangle {
	x0, y0 := g.view.figureToScreen(config.AxesLeft, config.AxesTop)
	x1, y1 := g.view.figureToScreen(config.AxesRight, config.AxesBottom)
	return image.Rect(int(x0), int(y0), int(x1+0.5), int(y1+0.5))
}

func (g *game) drawAxes(screen *ebiten.Image) {
	gridColor := withAlpha(g.palette.grid, 0.6)
	axisColor := withAlpha(g.palette.axis, 1)
	r := g.axesRect()
	left, top, right, bottom := float32(r.Min.X), float32(r.Min.Y), float32(r.Max.X), float32(r.Max.Y)

	for x := -2; x <= 2; x++ {
		px, _ := g.view.dataToScreen(float64(x), 0)
		vector.StrokeLine(screen, float32(px), top, float32(px), bottom, 0.5, gridColor, true)
		vector.StrokeLine(screen, float32(px), bottom, float32(px), bottom+4, 0.8, axisColor, true)
		g.drawText(screen, strconv.Itoa(x), px, float64(bottom)+14, 1, g.palette.axis, 1, text.AlignCenter)
	}
	for y := -1; y <= 2; y++ {
		_, py := g.view.dataToScreen(0, float64(y))
		vector.StrokeLine(screen, left, float32(py), right, float32(py), 0.5, gridColor, true)
		vector.StrokeLine(screen, left-4, float32(py), left, float32(py), 0.8, axisColor, true)
		g.drawText(screen, strconv.Itoa(y), float64(left)-8, py, 1, g.palette.axis, 1, text.AlignEnd)
	}

	vector.StrokeLine(screen, left, bottom, right, bottom, 0.8, axisColor, true)
	vector.StrokeLine(screen, left, top, left, bottom, 0.8, axisColor, true)
}

func (g *game) drawCurve(screen *ebiten.Image) {
	if !g.hasCurve || len(g.ys) == 0 {
		return
	}
	if g.art.version != g.version {
		g.rebuildStrokes()
	}

	boost := 1.0
	if g.chime != nil {
		boost += 0.6 * g.chime.Level()
	}

	clip := g.axesRect()
	for i, l := range curveLayers {
		s := &g.art.strokes[i]
		g.art.layer.Clear()
		g.art.layer.DrawTriangles(s.vs, s.is, g.art.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})

		// layers are drawn opaque offscreen so overlapping triangles do not
		// stack their alpha
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(clip.Min.X), float64(clip.Min.Y))
		op.ColorScale.ScaleAlpha(float32(clamp01(l.alpha * g.frame.AlphaScale * boost)))
		screen.DrawImage(g.art.layer.SubImage(clip).(*ebiten.Image), op)
	}
}

func (g *game) rebuildStrokes() {
	var path vector.Path
	for i, x := range g.xs {
		px, py := g.view.dataToScreen(x, g.ys[i])
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
			continue
		}
		path.LineTo(float32(px), float32(py))
	}

	for i, l := range curveLayers {
		clr := g.palette.heart
		if l.glow {
			clr = g.palette.heartGlow
		}
		s := &g.art.strokes[i]
		s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
			Width:    float32(l.width),
			LineJoin: vector.LineJoinBevel,
			LineCap:  vector.LineCapRound,
		})
		paintVertices(s.vs, clr, 1)
	}
	g.art.version = g.version
}

// paintVertices sets a flat straight-alpha colour on vertices sampling the
// white image.
func paintVertices(vs []ebiten.Vertex, c colorful.Color, alpha float64) {
	c = c.Clamped()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R)
		vs[i].ColorG = float32(c.G)
		vs[i].ColorB = float32(c.B)
		vs[i].ColorA = float32(alpha)
	}
}

func (g *game) fillPath(dst *ebiten.Image, p *vector.Path, c colorful.Color, alpha float64) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	paintVertices(vs, c, clamp01(alpha))
	dst.DrawTriangles(vs, is, g.art.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *game) strokePath(dst *ebiten.Image, p *vector.Path, width float64, c colorful.Color, alpha float64) {
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})
	paintVertices(vs, c, clamp01(alpha))
	dst.DrawTriangles(vs, is, g.art.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *game) drawLabels(screen *ebiten.Image) {
	pal := g.palette

	tx, ty := g.view.figureToScreen(0.5, 0.92)
	for _, d := range [][2]float64{{-2, 0}, {2, 0}, {0, -2}, {0, 2}, {-2, -2}, {2, 2}, {-2, 2}, {2, -2}} {
		g.drawText(screen, "Happy Valentine's!", tx+d[0], ty+d[1], 4, pal.titleShadow, 1, text.AlignCenter)
	}
	g.drawText(screen, "Happy Valentine's!", tx, ty, 4, pal.title, 1, text.AlignCenter)

	g.drawFigureText(screen, "y = x^(2/3) + 0.9 sin(kx) sqrt(3 - x^2)", 0.5, 0.065, 2, pal.formula, 1, text.AlignCenter)
	g.drawFigureText(screen, g.kText, 0.5, 0.022, 2, pal.kValue, 1, text.AlignCenter)

	if g.message != "" {
		g.drawFigureText(screen, g.message, 0.5, 0.86, 1.5, pal.message, g.msgPos, text.AlignCenter)
	}

	g.drawFigureText(screen, "[SPACE] Pause   [R] Restart   [UP/DOWN] Speed   [Q] Quit", 0.97, 0.01, 1, pal.info, 1, text.AlignEnd)
	g.drawFigureText(screen, "heart curve: |x|^(2/3) + a sin(kx) sqrt(3 - x^2)", 0.03, 0.01, 1, pal.credit, 1, text.AlignStart)
}

func (g *game) drawSplash(screen *ebiten.Image) {
	pal := g.palette

	g.drawFigureText(screen, "A Mathematical Love Letter", 0.5, 0.87, 2, pal.splashSub, 0.85, text.AlignCenter)

	hx, hy := config.ButtonHalfWidth, config.ButtonHalfHeight
	pad := config.ButtonGlowPad

	glow := g.figureRoundedRect(hx+pad, hy+pad, 0.5)
	g.fillPath(screen, glow, pal.buttonGlow, g.splashGlow)

	body := g.figureRoundedRect(hx, hy, 0.5)
	face := pal.buttonFace.BlendLab(pal.buttonHover, clamp01(g.hoverPos))
	g.fillPath(screen, body, face, 0.95+0.05*clamp01(g.hoverPos))
	g.strokePath(screen, body, 2+0.5*clamp01(g.hoverPos), pal.buttonEdge, 1)

	g.drawFigureText(screen, "<3  S t a r t", config.ButtonCenterX, config.ButtonCenterY, 2.5, pal.buttonText, 1, text.AlignCenter)
	g.drawFigureText(screen, "click the button to begin the magic", 0.5, 0.39, 1.3, pal.splashHint, 1, text.AlignCenter)
}

// figureRoundedRect builds a rounded rectangle around the button center from
// half extents in figure coordinates. roundness is the corner radius as a
// fraction of the half height.
func (g *game) figureRoundedRect(halfW, halfH, roundness float64) *vector.Path {
	x0, y0 := g.view.figureToScreen(config.ButtonCenterX-halfW, config.ButtonCenterY+halfH)
	x1, y1 := g.view.figureToScreen(config.ButtonCenterX+halfW, config.ButtonCenterY-halfH)
	return roundedRect(float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), float32((y1-y0)/2*roundness))
}

func roundedRect(x, y, w, h, r float32) *vector.Path {
	var p vector.Path
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(x+w, y, x+w, y+r, r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(x+w, y+h, x+w-r, y+h, r)
	p.LineTo(x+r, y+h)
	p.ArcTo(x, y+h, x, y+h-r, r)
	p.LineTo(x, y+r)
	p.ArcTo(x, y, x+r, y, r)
	p.Close()
	return &p
}

func (g *game) drawFigureText(dst *ebiten.Image, s string, fx, fy, scale float64, c colorful.Color, alpha float64, align text.Align) {
	x, y := g.view.figureToScreen(fx, fy)
	g.drawText(dst, s, x, y, scale, c, alpha, align)
}

// drawText draws s vertically centered on y, with align applied horizontally at x.
func (g *game) drawText(dst *ebiten.Image, s string, x, y, scale float64, c colorful.Color, alpha float64, align text.Align) {
	if alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(withAlpha(c, alpha))
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, g.art.face, op)
}
