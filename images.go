package themecheck

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/corona10/goimagehash"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// checkRasterImageDimensions verifies that every background and overlay
// has the configured dimensions.
func (th *Theme) checkRasterImageDimensions(ctx context.Context, report func(Result)) error {
	want := th.Config.Raster

	for _, folder := range []string{FolderBackgrounds, FolderOverlays} {
		files, err := th.Files(folder)
		if err != nil {
			return err
		}
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg, err := decodeImageConfig(f)
			if err != nil {
				return err
			}
			if cfg.Width != want.Width || cfg.Height != want.Height {
				report(Fail(f, fmt.Sprintf("Invalid dimensions: %dx%d", cfg.Width, cfg.Height)))
			} else {
				report(Success(f))
			}
		}
	}

	return nil
}

// checkDuplicatedBackgrounds verifies that no two background images are
// perceptually identical.
func (th *Theme) checkDuplicatedBackgrounds(ctx context.Context, report func(Result)) error {
	files, err := th.Files(FolderBackgrounds)
	if err != nil {
		return err
	}

	seen := make(map[uint64]string, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		img, err := decodeImage(f)
		if err != nil {
			return err
		}
		hash, err := goimagehash.PerceptionHash(img)
		if err != nil {
			return err
		}

		if other, ok := seen[hash.GetHash()]; ok {
			report(Fail(f, fmt.Sprintf("Visually identical to %q", filepath.Base(other))))
		} else {
			seen[hash.GetHash()] = f
			report(Success(f))
		}
	}

	return nil
}

// checkOverlaysMatchBackgrounds verifies that every overlay visually
// matches its background. Both images are composited over white through
// the overlay's fully opaque alpha mask and compared block by block with
// perceptual hashes.
func (th *Theme) checkOverlaysMatchBackgrounds(ctx context.Context, report func(Result)) error {
	overlays, err := th.Files(FolderOverlays)
	if err != nil {
		return err
	}

	for _, overlayFile := range overlays {
		if err := ctx.Err(); err != nil {
			return err
		}

		backgroundFile := filepath.Join(th.IncDir(), FolderBackgrounds, filepath.Base(overlayFile))
		if _, err := os.Stat(backgroundFile); err != nil {
			report(Fail(overlayFile, "Missing background"))
			continue
		}

		overlay, err := decodeImage(overlayFile)
		if err != nil {
			return err
		}
		background, err := decodeImage(backgroundFile)
		if err != nil {
			return err
		}

		mask := opaqueMask(overlay)
		overlayMasked := maskOverWhite(overlay, mask)
		backgroundMasked := maskOverWhite(background, mask)

		maxDistance, compared, err := blockDistance(overlayMasked, backgroundMasked, mask, th.Config.Overlay.BlockSize)
		if err != nil {
			return err
		}
		if compared == 0 {
			return fmt.Errorf("%s: %w", overlayFile, ErrNoOpaquePixels)
		}

		if maxDistance > th.Config.Overlay.MaxDistance {
			report(Fail(overlayFile, "Overlay does not match background visually"))
		} else {
			report(Success(overlayFile))
		}
	}

	return nil
}

// opaqueMask returns an alpha mask selecting the fully opaque pixels of
// img.
func opaqueMask(img image.Image) *image.Alpha {
	bounds := img.Bounds()
	mask := image.NewAlpha(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a == 0xffff {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}

// maskOverWhite composites img over a white canvas through mask. The
// canvas takes the mask's bounds; pixels outside img stay white.
func maskOverWhite(img image.Image, mask *image.Alpha) *image.RGBA {
	bounds := mask.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.DrawMask(out, bounds, img, bounds.Min, mask, bounds.Min, draw.Over)
	return out
}

// blockDistance compares two masked images block by block with perceptual
// hashes, skipping blocks with no opaque pixel. It returns the largest
// distance seen and the number of blocks compared.
func blockDistance(a, b *image.RGBA, mask *image.Alpha, block int) (maxDist, compared int, err error) {
	bounds := mask.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += block {
		for x := bounds.Min.X; x < bounds.Max.X; x += block {
			box := image.Rect(x, y, x+block, y+block).Intersect(bounds)
			if !anyOpaque(mask, box) {
				continue
			}

			hashA, err := goimagehash.PerceptionHash(a.SubImage(box))
			if err != nil {
				return 0, 0, err
			}
			hashB, err := goimagehash.PerceptionHash(b.SubImage(box))
			if err != nil {
				return 0, 0, err
			}
			distance, err := hashA.Distance(hashB)
			if err != nil {
				return 0, 0, err
			}

			compared++
			if distance > maxDist {
				maxDist = distance
			}
		}
	}
	return maxDist, compared, nil
}

func anyOpaque(mask *image.Alpha, box image.Rectangle) bool {
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if mask.AlphaAt(x, y).A != 0 {
				return true
			}
		}
	}
	return false
}

// decodeImage opens and decodes a raster image. Decode failure is a
// fault; the format is sniffed from the content, not the extension.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// decodeImageConfig reads only the dimensions of a raster image.
func decodeImageConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}
