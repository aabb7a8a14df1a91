package gui

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/raket/internal/assets"
)

// Font sizes in world units.
const (
	hudFontSize    = 32
	buttonFontSize = 24
	titleFontSize  = 56
)

// artwork holds the decoded images and font faces. Nil images are drawn as
// flat shapes.
type artwork struct {
	rocket         *ebiten.Image
	pipe           *ebiten.Image
	background     *ebiten.Image
	menuBackground *ebiten.Image
	jet            *ebiten.Image

	hudFace    text.Face
	buttonFace text.Face
	titleFace  text.Face
}

// builtinArtwork uses the arcade font shipped with Ebitengine and no images.
func builtinArtwork() (*artwork, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("gui: builtin font: %w", err)
	}
	return &artwork{
		hudFace:    &text.GoTextFace{Source: src, Size: hudFontSize * 0.75},
		buttonFace: &text.GoTextFace{Source: src, Size: buttonFontSize * 0.75},
		titleFace:  &text.GoTextFace{Source: src, Size: titleFontSize * 0.75},
	}, nil
}

// loadArtwork decodes every image and the font from bundle.
func loadArtwork(bundle assets.Bundle) (*artwork, error) {
	var art artwork
	images := []struct {
		name assets.Name
		dst  **ebiten.Image
	}{
		{assets.Rocket, &art.rocket},
		{assets.Pipe, &art.pipe},
		{assets.Background, &art.background},
		{assets.MenuBackground, &art.menuBackground},
		{assets.Jet, &art.jet},
	}
	for _, img := range images {
		decoded, err := decodeImage(img.name, bundle[img.name])
		if err != nil {
			return nil, err
		}
		*img.dst = ebiten.NewImageFromImage(decoded)
	}

	faces, err := loadFaces(bundle[assets.Font], hudFontSize, buttonFontSize, titleFontSize)
	if err != nil {
		return nil, err
	}
	art.hudFace, art.buttonFace, art.titleFace = faces[0], faces[1], faces[2]

	return &art, nil
}

func decodeImage(name assets.Name, data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gui: decode %s: %w", name, err)
	}
	return img, nil
}

// loadFaces parses a TrueType font and returns one face per size.
func loadFaces(ttf []byte, sizes ...float64) ([]text.Face, error) {
	tt, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("gui: parse %s: %w", assets.Font, err)
	}

	const dpi = 72
	faces := make([]text.Face, 0, len(sizes))
	for _, size := range sizes {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("gui: font face %.0fpt: %w", size, err)
		}
		faces = append(faces, text.NewGoXFace(face))
	}
	return faces, nil
}
