package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Default output size in pixels
const (
	DefaultWidth  = 1000
	DefaultHeight = 500
)

const (
	marginLeft   = 70
	marginRight  = 70
	marginTop    = 50
	marginBottom = 60
	titleSize    = 18
	labelSize    = 12
	yTicks       = 5
)

var (
	barColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	lineColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	axisColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	gridColor = color.RGBA{R: 225, G: 225, B: 225, A: 255}
)

var (
	fontOnce sync.Once
	goFont   *truetype.Font
	fontErr  error
)

func face(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		goFont, fontErr = truetype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("failed to parse font: %w", fontErr)
	}
	return truetype.NewFace(goFont, &truetype.Options{Size: size}), nil
}

// Image draws the meteogram onto a width x height canvas
func (m *Meteogram) Image(width, height int) (image.Image, error) {
	if len(m.Points) == 0 {
		return nil, fmt.Errorf("meteogram has no points")
	}

	titleFace, err := face(titleSize)
	if err != nil {
		return nil, err
	}
	labelFace, err := face(labelSize)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	left := float64(marginLeft)
	right := float64(width - marginRight)
	top := float64(marginTop)
	bottom := float64(height - marginBottom)
	plotW := right - left
	plotH := bottom - top
	slot := plotW / float64(len(m.Points))

	pLo, pHi := m.PrecipitationRange()
	tLo, tHi := m.TemperatureRange()
	precipY := func(v float64) float64 { return bottom - (v-pLo)/(pHi-pLo)*plotH }
	tempY := func(v float64) float64 { return bottom - (v-tLo)/(tHi-tLo)*plotH }

	// grid and y tick labels for both axes
	dc.SetFontFace(labelFace)
	dc.SetLineWidth(1)
	for i := 0; i <= yTicks; i++ {
		frac := float64(i) / yTicks
		y := bottom - frac*plotH

		dc.SetColor(gridColor)
		dc.DrawLine(left, y, right, y)
		dc.Stroke()

		dc.SetColor(barColor)
		dc.DrawStringAnchored(formatTick(pLo+frac*(pHi-pLo)), left-8, y, 1, 0.5)
		dc.SetColor(lineColor)
		dc.DrawStringAnchored(formatTick(tLo+frac*(tHi-tLo)), right+8, y, 0, 0.5)
	}

	// precipitation bars
	dc.SetColor(barColor)
	for i, p := range m.Points {
		if p.Precipitation <= 0 {
			continue
		}
		x := left + float64(i)*slot + slot*0.15
		y := precipY(p.Precipitation)
		dc.DrawRectangle(x, y, slot*0.7, bottom-y)
		dc.Fill()
	}

	// temperature line
	dc.SetColor(lineColor)
	dc.SetLineWidth(2)
	for i, p := range m.Points {
		x := left + (float64(i)+0.5)*slot
		y := tempY(p.Temperature)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()

	// axes
	dc.SetColor(axisColor)
	dc.SetLineWidth(1)
	dc.DrawLine(left, bottom, right, bottom)
	dc.DrawLine(left, top, left, bottom)
	dc.DrawLine(right, top, right, bottom)
	dc.Stroke()

	// hour ticks; hidden labels keep their tick mark
	for i, p := range m.Points {
		x := left + (float64(i)+0.5)*slot
		dc.DrawLine(x, bottom, x, bottom+4)
		dc.Stroke()
		if p.Visible {
			dc.DrawStringAnchored(p.Label, x, bottom+8, 0.5, 1)
		}
	}

	dc.DrawStringAnchored("Hour (UTC)", left+plotW/2, float64(height)-14, 0.5, 0)

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 18, top+plotH/2)
	dc.SetColor(barColor)
	dc.DrawStringAnchored("Precipitation (mm)", 18, top+plotH/2, 0.5, 0.5)
	dc.Pop()

	dc.Push()
	dc.RotateAbout(gg.Radians(90), float64(width)-18, top+plotH/2)
	dc.SetColor(lineColor)
	dc.DrawStringAnchored("Temperature (°C)", float64(width)-18, top+plotH/2, 0.5, 0.5)
	dc.Pop()

	dc.SetFontFace(titleFace)
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(m.Title, float64(width)/2, top/2, 0.5, 0.5)

	return dc.Image(), nil
}

// Render writes the meteogram to w as a PNG of the default size
func (m *Meteogram) Render(w io.Writer) error {
	img, err := m.Image(DefaultWidth, DefaultHeight)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SaveFile writes the meteogram to path as a PNG
func (m *Meteogram) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	if err := m.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return f.Close()
}

func formatTick(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
