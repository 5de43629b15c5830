package ime

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Hayleia/florisboard/pkg/ime/internal"
)

// Icon identifies a key symbol. Name selects a texture from a loaded icon
// pack when one provides it; Glyph is the Material Design Icons codepoint
// drawn with the symbol font otherwise.
type Icon struct {
	Name  string
	Glyph string
}

func (ic Icon) IsZero() bool {
	return ic.Name == "" && ic.Glyph == ""
}

var (
	iconArrowLeft      = Icon{Name: "arrow-left", Glyph: "\U000F004D"}
	iconArrowRight     = Icon{Name: "arrow-right", Glyph: "\U000F0054"}
	iconArrowUp        = Icon{Name: "arrow-up", Glyph: "\U000F005D"}
	iconArrowDown      = Icon{Name: "arrow-down", Glyph: "\U000F0045"}
	iconContentCopy    = Icon{Name: "content-copy", Glyph: "\U000F018F"}
	iconContentCut     = Icon{Name: "content-cut", Glyph: "\U000F0190"}
	iconContentPaste   = Icon{Name: "content-paste", Glyph: "\U000F0192"}
	iconSelect         = Icon{Name: "select", Glyph: "\U000F04DD"}
	iconSelectAll      = Icon{Name: "select-all", Glyph: "\U000F04DE"}
	iconBackspace      = Icon{Name: "keyboard-backspace", Glyph: "\U000F030D"}
	iconBackspaceWord  = Icon{Name: "backspace", Glyph: "\U000F006E"}
	iconReturn         = Icon{Name: "keyboard-return", Glyph: "\U000F0311"}
	iconCheck          = Icon{Name: "check", Glyph: "\U000F012C"}
	iconChevronLeft    = Icon{Name: "chevron-left", Glyph: "\U000F0141"}
	iconChevronRight   = Icon{Name: "chevron-right", Glyph: "\U000F0142"}
	iconMagnify        = Icon{Name: "magnify", Glyph: "\U000F0349"}
	iconSend           = Icon{Name: "send", Glyph: "\U000F048A"}
	iconShift          = Icon{Name: "apple-keyboard-shift", Glyph: "\U000F0636"}
	iconCapsLock       = Icon{Name: "apple-keyboard-caps", Glyph: "\U000F0632"}
	iconSpaceBar       = Icon{Name: "keyboard-space", Glyph: "\U000F1050"}
	iconTranslate      = Icon{Name: "translate", Glyph: "\U000F05CA"}
	iconEmoticon       = Icon{Name: "emoticon", Glyph: "\U000F01F5"}
	iconKeyboard       = Icon{Name: "keyboard", Glyph: "\U000F030C"}
	iconCompactLayout  = Icon{Name: "arrow-collapse-horizontal", Glyph: "\U000F084C"}
	iconExpandedLayout = Icon{Name: "arrow-expand-horizontal", Glyph: "\U000F084E"}
)

// iconTextureSize is the side of the square each pack image is
// rasterized at. Textures are scaled down into the key's icon box, so
// this just needs headroom over the largest expected box.
const iconTextureSize = 128

// IconSet holds the textures of a loaded icon pack, keyed by icon name.
type IconSet struct {
	textures map[string]*sdl.Texture
}

// LoadIconPack loads every .svg and .png in dir as a texture keyed by
// the file's stem name. Files that fail to load are skipped with a log
// entry rather than failing the whole pack.
func LoadIconPack(renderer *sdl.Renderer, dir string) (*IconSet, error) {
	logger := internal.GetInternalLogger()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read icon pack directory: %w", err)
	}

	set := &IconSet{textures: make(map[string]*sdl.Texture)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".svg" && ext != ".png" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.Debug("Skipping unreadable icon", "file", entry.Name(), "error", err)
			continue
		}

		texture, err := loadImageTexture(renderer, data, iconTextureSize, iconTextureSize)
		if err != nil {
			logger.Debug("Skipping bad icon", "file", entry.Name(), "error", err)
			continue
		}

		name := strings.ToLower(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		set.textures[name] = texture
	}

	logger.Debug("Loaded icon pack", "dir", dir, "count", len(set.textures))
	return set, nil
}

// Texture returns the pack texture for name, or nil when the pack has
// none (the caller falls back to the symbol-font glyph).
func (s *IconSet) Texture(name string) *sdl.Texture {
	if s == nil {
		return nil
	}
	return s.textures[name]
}

func (s *IconSet) Destroy() {
	if s == nil {
		return
	}
	for _, texture := range s.textures {
		texture.Destroy()
	}
	s.textures = nil
}

// isSVG checks if the data is SVG format
func isSVG(data []byte) bool {
	head := data[:min(len(data), 512)]
	return bytes.Contains(head, []byte("<svg")) || bytes.Contains(head, []byte("<?xml"))
}

// loadImageTexture loads an image (PNG or SVG) from bytes and creates an SDL texture
func loadImageTexture(renderer *sdl.Renderer, imageData []byte, width, height int32) (*sdl.Texture, error) {
	if isSVG(imageData) {
		return loadSVGTexture(renderer, imageData, width, height)
	}
	return loadRasterTexture(renderer, imageData)
}

// loadRasterTexture loads a raster image from bytes
func loadRasterTexture(renderer *sdl.Renderer, imageData []byte) (*sdl.Texture, error) {
	img.Init(img.INIT_PNG)
	rw, err := sdl.RWFromMem(imageData)
	if err != nil {
		return nil, fmt.Errorf("failed to create RWops from image data: %w", err)
	}
	texture, err := img.LoadTextureRW(renderer, rw, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture from image data: %w", err)
	}
	return texture, nil
}

// loadSVGTexture rasterizes an SVG and creates an SDL texture
func loadSVGTexture(renderer *sdl.Renderer, svgData []byte, width, height int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	if width == 0 || height == 0 {
		width = int32(icon.ViewBox.W)
		height = int32(icon.ViewBox.H)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))

	scanner := rasterx.NewScannerGV(int(width), int(height), rgba, rgba.Bounds())
	raster := rasterx.NewDasher(int(width), int(height), scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("failed to encode SVG as PNG: %w", err)
	}

	return loadRasterTexture(renderer, buf.Bytes())
}
