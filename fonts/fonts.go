// Package fonts holds the faces used by the HUD.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Small   FontName = "small"
	Mono    FontName = "mono"
)

var faces = map[FontName]font.Face{}

// Get returns the face registered under f. Unregistered names fall back to
// a fixed bitmap face so a missing font never stops the HUD from drawing.
func (f FontName) Get() font.Face {
	if face, ok := faces[f]; ok {
		return face
	}
	return basicfont.Face7x13
}

// LoadDefaults registers the Go fonts bundled with x/image.
func LoadDefaults() error {
	for _, def := range []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Regular, goregular.TTF, 14},
		{Small, goregular.TTF, 11},
		{Mono, gomono.TTF, 12},
	} {
		if err := Load(def.name, def.ttf, def.size); err != nil {
			return err
		}
	}
	return nil
}

// Load parses a TrueType font and registers it at the given point size.
func Load(name FontName, ttf []byte, size float64) error {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("fonts: parse %s: %w", name, err)
	}
	faces[name] = truetype.NewFace(parsed, &truetype.Options{Size: size})
	return nil
}
