// Package fonts provides the font registry used by the rendering pipeline.
//
// The registry enumerates the three weights the visuals use (regular, bold,
// black) and maps each to a parsed font, replacing any reliance on global
// font-path state. Faces are created at the requested pixel size and are
// cheap to construct; callers use them transiently within a single render.
package fonts

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Weight identifies one of the font weights the pipeline renders with.
type Weight int

const (
	Regular Weight = iota
	Bold
	Black
)

// String returns the lowercase weight name.
func (w Weight) String() string {
	switch w {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	case Black:
		return "black"
	}
	return fmt.Sprintf("weight(%d)", int(w))
}

// Registry holds one parsed font per weight.
type Registry struct {
	parsed map[Weight]*opentype.Font
}

// Load parses the font files at the given paths into a registry. A path may
// name a font family (e.g. "DejaVuSans.ttf") instead of a file, in which case
// it is resolved against the system font directories. A missing or
// unparseable font is a fatal configuration error.
func Load(regular, bold, black string) (*Registry, error) {
	r := &Registry{parsed: make(map[Weight]*opentype.Font, 3)}
	for w, path := range map[Weight]string{Regular: regular, Bold: bold, Black: black} {
		f, err := loadFont(path)
		if err != nil {
			return nil, fmt.Errorf("load %s font: %w", w, err)
		}
		r.parsed[w] = f
	}
	return r, nil
}

// Builtin returns a registry backed by the embedded Go fonts. The black
// weight falls back to Go Bold, the heaviest embedded weight. Used as the
// default when no font files are configured, and by tests.
func Builtin() *Registry {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("fonts: parse embedded goregular: %v", err))
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("fonts: parse embedded gobold: %v", err))
	}
	return &Registry{parsed: map[Weight]*opentype.Font{
		Regular: regular,
		Bold:    bold,
		Black:   bold,
	}}
}

func loadFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// Not a file, try the system font directories.
		resolved, ferr := findfont.Find(path)
		if ferr != nil {
			return nil, fmt.Errorf("%q: %w", path, err)
		}
		data, err = os.ReadFile(resolved)
	}
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return f, nil
}

// Face creates a font face of the given weight at the given pixel size.
func (r *Registry) Face(w Weight, size float64) (font.Face, error) {
	f, ok := r.parsed[w]
	if !ok {
		return nil, fmt.Errorf("no %s font registered", w)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%s face at %g: %w", w, size, err)
	}
	return face, nil
}

// Regular is shorthand for Face(Regular, size).
func (r *Registry) Regular(size float64) (font.Face, error) { return r.Face(Regular, size) }

// Bold is shorthand for Face(Bold, size).
func (r *Registry) Bold(size float64) (font.Face, error) { return r.Face(Bold, size) }

// Black is shorthand for Face(Black, size).
func (r *Registry) Black(size float64) (font.Face, error) { return r.Face(Black, size) }
