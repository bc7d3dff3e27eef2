package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePNG(t *testing.T) {
	for _, card := range Cards() {
		t.Run(card.Name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WritePNG(&buf, card, 320, 200))

			img, err := png.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, 320, img.Bounds().Dx())
			assert.Equal(t, 200, img.Bounds().Dy())
		})
	}
}

func TestWritePNGDefaultsSize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, PopulationCard(), 0, 0))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultPNGWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultPNGHeight, img.Bounds().Dy())
}

func TestWritePNGErrors(t *testing.T) {
	t.Run("empty card", func(t *testing.T) {
		err := WritePNG(&bytes.Buffer{}, Card{Name: "empty", Kind: KindBar}, 100, 100)
		assert.ErrorIs(t, err, ErrNothingToExport)
	})

	t.Run("invalid bar domain", func(t *testing.T) {
		card := PopulationCard()
		card.MaxValue = 0
		err := WritePNG(&bytes.Buffer{}, card, 100, 100)
		assert.ErrorIs(t, err, ErrInvalidDomain)
	})
}

func hexRGB(t *testing.T, hex string) [3]uint8 {
	t.Helper()
	var rgb [3]uint8
	_, err := fmt.Sscanf(hex, "#%02x%02x%02x", &rgb[0], &rgb[1], &rgb[2])
	require.NoError(t, err)
	return rgb
}

func pixelRGB(img image.Image, x, y float64) [3]uint8 {
	c := color.NRGBAModel.Convert(img.At(int(math.Round(x)), int(math.Round(y)))).(color.NRGBA)
	return [3]uint8{c.R, c.G, c.B}
}

func TestWritePNGPieStopsAtOneTurn(t *testing.T) {
	const width, height = 640, 400
	card := DemographicsCard()

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, card, width, height))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	cx, cy, radius := pieLayout(plotRect(width, height))
	at := func(angle float64) [3]uint8 {
		rad := angle * math.Pi / 180
		r := radius * 0.6
		return pixelRGB(img, cx+r*math.Sin(rad), cy-r*math.Cos(rad))
	}

	white := hexRGB(t, card.Segments[0].Color)
	for angle := 2.0; angle <= 34; angle += 4 {
		assert.Equal(t, white, at(angle), "angle %g", angle)
	}
	// Asian runs to the top of the circle; Other is not drawn at all.
	asian := hexRGB(t, card.Segments[3].Color)
	assert.Equal(t, asian, at(340))
	assert.Equal(t, asian, at(356))
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demographics.png")
	require.NoError(t, SavePNG(DemographicsCard(), path, 200, 120))
	assert.FileExists(t, path)
}

func TestCardGeometry(t *testing.T) {
	g, err := PopulationCard().Geometry()
	require.NoError(t, err)
	assert.Equal(t, "bar", g.Kind)
	assert.Len(t, g.Heights, 6)

	g, err = DemographicsCard().Geometry()
	require.NoError(t, err)
	assert.Len(t, g.Arcs, 5)
	assert.InDelta(t, 396.0, g.Arcs[4].EndAngle, 1e-9)

	g, err = HousingCard().Geometry()
	require.NoError(t, err)
	assert.Len(t, g.Lines, 2)

	bad := HousingCard()
	bad.XDomain = 1
	_, err = bad.Geometry()
	assert.ErrorIs(t, err, ErrInvalidDomain)

	card, ok := CardByName("housing")
	assert.True(t, ok)
	assert.Equal(t, KindLine, card.Kind)
	_, ok = CardByName("weather")
	assert.False(t, ok)
}
