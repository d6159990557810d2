package window

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/depthscroll/internal/render"
)

// assetNames are the logical sprites a window can draw as images.
var assetNames = []string{"bush", "column", "projectile", render.ActorAsset}

// Images maps asset names to loaded sprites. It implements render.Assets;
// anything missing falls back to shapes.
type Images map[string]*ebiten.Image

// Has implements render.Assets.
func (im Images) Has(name string) bool {
	return im[name] != nil
}

// assetFiles returns the <name>.png files present in dir.
func assetFiles(dir string) (map[string]string, error) {
	found := make(map[string]string)
	if dir == "" {
		return found, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("assets path is not a directory")
	}
	for _, name := range assetNames {
		path := filepath.Join(dir, name+".png")
		if _, err := os.Stat(path); err == nil {
			found[name] = path
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return found, nil
}

// LoadImages loads whichever sprites exist in dir. A missing file is not an
// error; an unreadable one is logged and skipped.
func LoadImages(dir string, logger *log.Logger) (Images, error) {
	files, err := assetFiles(dir)
	if err != nil {
		return nil, err
	}

	images := make(Images, len(files))
	for name, path := range files {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			logger.Warn("could not load sprite; using shape fallback", "asset", name, "path", path, "error", err)
			continue
		}
		images[name] = img
	}
	for _, name := range assetNames {
		if images[name] == nil {
			logger.Debug("no sprite image", "asset", name)
		}
	}
	return images, nil
}
