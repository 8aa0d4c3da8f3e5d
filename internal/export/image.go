package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	scale    = 2
	fontSize = 16
	padding  = 24 * scale
	gutter   = 40 * scale
	lineGap  = 8 * scale
)

var (
	colorBackground = color.RGBA{0x1e, 0x1e, 0x2e, 0xff}
	colorText       = color.RGBA{0xcd, 0xd6, 0xf4, 0xff}
	colorAccent     = color.RGBA{0xf5, 0xc2, 0xe7, 0xff}
	colorMuted      = color.RGBA{0xa6, 0xad, 0xc8, 0xff}
)

// Faces are not safe for concurrent use.
var renderMu sync.Mutex

type faceSet struct {
	regular font.Face
	bold    font.Face
}

var loadFaces = sync.OnceValues(func() (faceSet, error) {
	regular, err := newFace(goregular.TTF)
	if err != nil {
		return faceSet{}, fmt.Errorf("regular face: %w", err)
	}
	bold, err := newFace(gobold.TTF)
	if err != nil {
		return faceSet{}, fmt.Errorf("bold face: %w", err)
	}
	return faceSet{regular: regular, bold: bold}, nil
})

func newFace(ttf []byte) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72 * scale,
		Hinting: font.HintingFull,
	})
}

type cell struct {
	x    int
	text string
	bold bool
	col  color.Color
}

// Render draws the snapshot at twice the nominal resolution.
func Render(s Snapshot) (*image.RGBA, error) {
	if s.empty() {
		return nil, ErrEmpty
	}
	faces, err := loadFaces()
	if err != nil {
		return nil, err
	}
	renderMu.Lock()
	defer renderMu.Unlock()

	var rows [][]cell
	if s.Title != "" {
		rows = append(rows, []cell{{x: 0, text: s.Title, bold: true, col: colorAccent}}, nil)
	}
	width := 0
	if s.Teams != nil {
		colA := measure(faces.bold, s.TeamA)
		colB := measure(faces.bold, s.TeamB)
		for i := range s.Teams.A {
			colA = max(colA, measure(faces.regular, s.Teams.A[i]))
			colB = max(colB, measure(faces.regular, s.Teams.B[i]))
		}
		right := colA + gutter
		rows = append(rows, []cell{
			{x: 0, text: s.TeamA, bold: true, col: colorAccent},
			{x: right, text: s.TeamB, bold: true, col: colorAccent},
		})
		for i := range s.Teams.A {
			rows = append(rows, []cell{
				{x: 0, text: s.Teams.A[i], col: colorText},
				{x: right, text: s.Teams.B[i], col: colorText},
			})
		}
		width = right + colB
	} else {
		numW := measure(faces.regular, strconv.Itoa(len(s.Order))+".")
		nameX := numW + 8*scale
		for i, n := range s.Order {
			rows = append(rows, []cell{
				{x: 0, text: strconv.Itoa(i+1) + ".", col: colorMuted},
				{x: nameX, text: n, col: colorText},
			})
			width = max(width, nameX+measure(faces.regular, n))
		}
	}
	if s.Title != "" {
		width = max(width, measure(faces.bold, s.Title))
	}

	metrics := faces.regular.Metrics()
	lineHeight := metrics.Height.Ceil() + lineGap
	ascent := metrics.Ascent.Ceil()

	bounds := image.Rect(0, 0, width+2*padding, len(rows)*lineHeight+2*padding-lineGap)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(colorBackground), image.Point{}, draw.Src)

	for i, row := range rows {
		baseline := padding + i*lineHeight + ascent
		for _, c := range row {
			face := faces.regular
			if c.bold {
				face = faces.bold
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(c.col),
				Face: face,
				Dot:  fixed.P(padding+c.x, baseline),
			}
			d.DrawString(c.text)
		}
	}
	return img, nil
}

// EncodePNG renders the snapshot and writes it as PNG.
func EncodePNG(w io.Writer, s Snapshot) error {
	img, err := Render(s)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func measure(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
