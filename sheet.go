package tilekit

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// TextureRegion describes a sub-rectangle within a sprite sheet image.
type TextureRegion struct {
	X, Y          uint16 // top-left corner of the frame within the sheet
	Width, Height uint16 // frame size
}

// Rectangle returns the region as an image.Rectangle.
func (r TextureRegion) Rectangle() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X)+int(r.Width), int(r.Y)+int(r.Height))
}

// SpriteSheet is an image cut into equally sized frames, numbered left to
// right then top to bottom starting at 0.
type SpriteSheet struct {
	Name        string
	Image       *ebiten.Image
	FrameWidth  int
	FrameHeight int
	Columns     int
	Rows        int

	frames map[int]*ebiten.Image // sub-images keyed by frame index
}

// NewSpriteSheet slices img into frameWidth×frameHeight frames. Partial
// frames at the right and bottom edges are ignored. A SpriteSheet may also be
// built as a literal with Columns and Rows set by hand.
func NewSpriteSheet(name string, img *ebiten.Image, frameWidth, frameHeight int) (*SpriteSheet, error) {
	if img == nil {
		return nil, fmt.Errorf("tilekit: sprite sheet %q: nil image", name)
	}
	if frameWidth <= 0 || frameHeight <= 0 {
		return nil, fmt.Errorf("tilekit: sprite sheet %q: invalid frame size %dx%d", name, frameWidth, frameHeight)
	}
	b := img.Bounds()
	return &SpriteSheet{
		Name:        name,
		Image:       img,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		Columns:     b.Dx() / frameWidth,
		Rows:        b.Dy() / frameHeight,
		frames:      make(map[int]*ebiten.Image),
	}, nil
}

// FrameCount returns the number of whole frames in the sheet.
func (s *SpriteSheet) FrameCount() int {
	return s.Columns * s.Rows
}

// Region returns the sheet rectangle of frame index. ok is false when the
// index is outside the sheet.
func (s *SpriteSheet) Region(index int) (TextureRegion, bool) {
	if index < 0 || index >= s.FrameCount() {
		return TextureRegion{}, false
	}
	col := index % s.Columns
	row := index / s.Columns
	return TextureRegion{
		X:      uint16(col * s.FrameWidth),
		Y:      uint16(row * s.FrameHeight),
		Width:  uint16(s.FrameWidth),
		Height: uint16(s.FrameHeight),
	}, true
}

// FrameImage returns the sub-image for frame index, cutting it on first use.
// An index outside the sheet logs a warning when debug is enabled and
// returns a 1×1 magenta placeholder.
func (s *SpriteSheet) FrameImage(index int) *ebiten.Image {
	if img, ok := s.frames[index]; ok {
		return img
	}
	region, ok := s.Region(index)
	if !ok {
		if globalDebug {
			logger.Warn("sprite sheet frame out of range, using magenta placeholder",
				zap.String("sheet", s.Name),
				zap.Int("index", index))
		}
		return ensureMagentaImage()
	}
	img := s.Image.SubImage(region.Rectangle()).(*ebiten.Image)
	if s.frames == nil {
		s.frames = make(map[int]*ebiten.Image)
	}
	s.frames[index] = img
	return img
}

// magenta placeholder singleton, created on first use from the game loop
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// ImageRef identifies one frame of a sprite sheet.
type ImageRef struct {
	Sheet *SpriteSheet
	Index int
}

// NoImage is returned when there is no frame to show.
var NoImage = ImageRef{Index: -1}

// Valid reports whether r refers to a frame.
func (r ImageRef) Valid() bool {
	return r.Index >= 0
}

// Region returns the frame rectangle within the sheet.
func (r ImageRef) Region() (TextureRegion, bool) {
	if r.Sheet == nil || !r.Valid() {
		return TextureRegion{}, false
	}
	return r.Sheet.Region(r.Index)
}

// Image returns the frame's sub-image, or nil when r has no sheet or is
// NoImage.
func (r ImageRef) Image() *ebiten.Image {
	if r.Sheet == nil || !r.Valid() {
		return nil
	}
	return r.Sheet.FrameImage(r.Index)
}
