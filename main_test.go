package main

import (
	"bytes"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geofpwhite/asciiray/internal/config"
	"github.com/geofpwhite/asciiray/internal/scene"
	"github.com/geofpwhite/asciiray/internal/tracer"
)

func newAnimation() *animation {
	cfg := config.Default()
	return &animation{cfg: cfg, renderer: cfg.Renderer(), scene: cfg.Scene()}
}

func TestHandleKeys(t *testing.T) {
	a := newAnimation()
	assert.True(t, a.handleKeys(nil))
	assert.True(t, a.handleKeys([]byte("b")))
	assert.Equal(t, scene.Box, a.scene.Selected)
	assert.True(t, a.handleKeys([]byte(" ")))
	assert.Equal(t, scene.Sphere, a.scene.Selected)
	assert.True(t, a.handleKeys([]byte("\tS")))
	assert.Equal(t, scene.Sphere, a.scene.Selected)
	assert.False(t, a.handleKeys([]byte("bq")))
	assert.False(t, a.handleKeys([]byte{3}))
}

func TestRenderFramesAdvancesRotation(t *testing.T) {
	a := newAnimation()
	frames := a.renderFrames(20, 8, 3)
	require.Len(t, frames, 3)
	assert.Equal(t, 3, a.frame)
	assert.InDelta(t, 0.03, a.angle(), 1e-12)
	assert.Equal(t, frames[0], a.scene.Render(a.renderer, 20, 8, 0))
	assert.Empty(t, a.renderFrames(20, 8, -1))
	assert.Contains(t, a.status(), "sphere")
}

func TestGifDelay(t *testing.T) {
	d, err := gifDelay(10)
	require.NoError(t, err)
	assert.Equal(t, 10, d)
	d, err = gifDelay(1000)
	require.NoError(t, err)
	assert.Equal(t, 1, d)
	d, err = gifDelay(3)
	require.NoError(t, err)
	assert.Equal(t, 33, d)
}

func TestEncodeGif(t *testing.T) {
	a := newAnimation()
	frames := a.renderFrames(12, 5, 4)
	var buf bytes.Buffer
	require.NoError(t, encodeGif(&buf, frames, 10))
	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 4)
	assert.Equal(t, []int{10, 10, 10, 10}, g.Delay)
	b := g.Image[0].Bounds()
	assert.Equal(t, 12*glyphFace.Advance, b.Dx())
	assert.Equal(t, 5*glyphFace.Height, b.Dy())

	assert.Error(t, encodeGif(&buf, nil, 10))
}

func TestRasterize(t *testing.T) {
	f := tracer.NewFrame(2, 1)
	f.Cells[0] = ' '
	f.Cells[1] = '@'
	img := rasterize(f)
	lit := func(x0, x1 int) int {
		n := 0
		for y := range glyphFace.Height {
			for x := x0; x < x1; x++ {
				if img.ColorIndexAt(x, y) != 0 {
					n++
				}
			}
		}
		return n
	}
	cw := glyphFace.Advance
	assert.Zero(t, lit(0, cw))
	assert.Positive(t, lit(cw, 2*cw))
}
