// Package config holds the runtime settings of the renderer. Values come
// from defaults, then command line flags, then ASCIIRAY_* environment
// variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/log"
	"fortio.org/struct2env"

	"github.com/geofpwhite/asciiray/internal/scene"
	"github.com/geofpwhite/asciiray/internal/tracer"
)

// EnvPrefix is prepended to every environment override, e.g. ASCIIRAY_FPS.
const EnvPrefix = "ASCIIRAY_"

type Config struct {
	FPS        float64 // frames per second of the animation
	Step       float64 // scene rotation per frame, radians
	Object     string  // initial solid: sphere or box
	Light      string  // light direction as "x,y,z"
	Intensity  float64
	Aspect     float64 // glyph width/height
	Yaw        float64 // fixed rotation about Y, radians
	TrueNormal bool
	Palette    string // glyphs darkest to brightest
	LogLevel   string
}

// Default matches the classic animation: 10 fps, 0.01 rad per frame.
func Default() Config {
	return Config{
		FPS:       10,
		Step:      0.01,
		Object:    "sphere",
		Light:     "-1,-2,-1",
		Intensity: 10,
		Aspect:    tracer.GlyphAspect,
		Palette:   string(tracer.DefaultPalette),
		LogLevel:  "info",
	}
}

// Bind registers flags for every field on fs, using c as defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.FPS, "fps", c.FPS, "set the fps for the animation")
	fs.Float64Var(&c.Step, "step", c.Step, "rotation of the scene per frame in radians")
	fs.StringVar(&c.Object, "object", c.Object, "solid to show: "+strings.Join(scene.Names(), ", "))
	fs.StringVar(&c.Light, "light", c.Light, "light direction `x,y,z`")
	fs.Float64Var(&c.Intensity, "intensity", c.Intensity, "luminance multiplier before quantizing")
	fs.Float64Var(&c.Aspect, "aspect", c.Aspect, "glyph width to height ratio")
	fs.Float64Var(&c.Yaw, "yaw", c.Yaw, "fixed rotation about the Y axis in radians")
	fs.BoolVar(&c.TrueNormal, "true-normal", c.TrueNormal, "shade the sphere with its geometric normal")
	fs.StringVar(&c.Palette, "palette", c.Palette, "glyph gradient, darkest first")
	fs.StringVar(&c.LogLevel, "loglevel", c.LogLevel, "log level (debug, verbose, info, warning, error)")
}

// ApplyEnv overrides fields from EnvPrefix environment variables.
func (c *Config) ApplyEnv() error {
	if errs := struct2env.SetFromEnv(EnvPrefix, c); len(errs) > 0 {
		return fmt.Errorf("config: env: %w", errors.Join(errs...))
	}
	return nil
}

// Validate checks c and applies the log level.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be > 0, got %g", c.FPS)
	}
	if _, err := scene.Parse(c.Object); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	light, err := ParseVec3(c.Light)
	if err != nil {
		return fmt.Errorf("config: light: %w", err)
	}
	if light.Len() == 0 {
		return errors.New("config: light direction must not be zero")
	}
	if c.Palette == "" {
		return errors.New("config: palette must not be empty")
	}
	lvl, err := log.ValidateLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log.SetLogLevel(lvl)
	return nil
}

// Renderer builds the tracer settings. c must be valid.
func (c Config) Renderer() tracer.Renderer {
	r := tracer.DefaultRenderer()
	r.Aspect = c.Aspect
	r.Intensity = c.Intensity
	r.Yaw = c.Yaw
	r.Palette = tracer.Palette(c.Palette)
	return r
}

// Scene builds the initial scene. c must be valid.
func (c Config) Scene() scene.Scene {
	sel, _ := scene.Parse(c.Object)
	s := scene.New(sel)
	s.Light, _ = ParseVec3(c.Light)
	s.TrueNormal = c.TrueNormal
	return s
}

// ParseVec3 parses "x,y,z".
func ParseVec3(s string) (tracer.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return tracer.Vec3{}, fmt.Errorf("want 3 comma separated numbers, got %q", s)
	}
	var v tracer.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return tracer.Vec3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v[i] = f
	}
	return v, nil
}
