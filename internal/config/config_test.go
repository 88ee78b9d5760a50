package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geofpwhite/asciiray/internal/scene"
	"github.com/geofpwhite/asciiray/internal/tracer"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, tracer.DefaultRenderer(), c.Renderer())
	s := c.Scene()
	assert.Equal(t, scene.Sphere, s.Selected)
	assert.Equal(t, scene.DefaultLight, s.Light)
}

func TestFlags(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"-fps", "30", "-object", "box", "-light", "1, 0, -1",
		"-intensity", "4", "-yaw", "0.5", "-true-normal", "-palette", " .#",
	}))
	require.NoError(t, c.Validate())
	assert.Equal(t, 30.0, c.FPS)

	r := c.Renderer()
	assert.Equal(t, 4.0, r.Intensity)
	assert.Equal(t, 0.5, r.Yaw)
	assert.Equal(t, tracer.Palette(" .#"), r.Palette)

	s := c.Scene()
	assert.Equal(t, scene.Box, s.Selected)
	assert.Equal(t, tracer.Vec3{1, 0, -1}, s.Light)
	assert.True(t, s.TrueNormal)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ASCIIRAY_FPS", "25")
	t.Setenv("ASCIIRAY_OBJECT", "box")
	c := Default()
	require.NoError(t, c.ApplyEnv())
	assert.Equal(t, 25.0, c.FPS)
	assert.Equal(t, "box", c.Object)
	assert.Equal(t, 0.01, c.Step)
}

func TestEnvBadValue(t *testing.T) {
	t.Setenv("ASCIIRAY_FPS", "fast")
	c := Default()
	assert.Error(t, c.ApplyEnv())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero fps", func(c *Config) { c.FPS = 0 }, "fps"},
		{"unknown object", func(c *Config) { c.Object = "teapot" }, "teapot"},
		{"short light", func(c *Config) { c.Light = "1,2" }, "light"},
		{"bad light", func(c *Config) { c.Light = "1,x,2" }, "light"},
		{"zero light", func(c *Config) { c.Light = "0,0,0" }, "zero"},
		{"empty palette", func(c *Config) { c.Palette = "" }, "palette"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "config"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			assert.ErrorContains(t, c.Validate(), tc.errMsg)
		})
	}
}

func TestParseVec3(t *testing.T) {
	v, err := ParseVec3("-1,-2,-1")
	require.NoError(t, err)
	assert.Equal(t, scene.DefaultLight, v)
	_, err = ParseVec3("")
	assert.Error(t, err)
	_, err = ParseVec3("1,2,3,4")
	assert.Error(t, err)
}
