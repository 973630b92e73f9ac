package canvas

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	"glscene/glapi"
)

// ToRGBA converts img to a width x height RGBA image. A non-positive size
// keeps the source size.
func ToRGBA(img image.Image, width, height int) *image.RGBA {
	b := img.Bounds()
	if width <= 0 || height <= 0 {
		width, height = b.Dx(), b.Dy()
	}
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	if b.Dx() == width && b.Dy() == height {
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
		return rgba
	}
	draw.BiLinear.Scale(rgba, rgba.Bounds(), img, b, draw.Src, nil)
	return rgba
}

func DecodeFile(file string) (image.Image, error) {
	imgFile, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("texture %q not found on disk: %w", file, err)
	}
	defer imgFile.Close()
	img, _, err := image.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", file, err)
	}
	return img, nil
}

// UploadTexture writes img into texture, creating a new texture when it is 0.
func UploadTexture(ctx glapi.Context, texture glapi.Texture, img image.Image, width, height int) glapi.Texture {
	rgba := ToRGBA(img, width, height)
	if texture == 0 {
		texture = ctx.CreateTexture()
	}
	ctx.ActiveTexture(glapi.TEXTURE0)
	ctx.BindTexture(glapi.TEXTURE_2D, texture)
	ctx.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_MIN_FILTER, int(glapi.LINEAR))
	ctx.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_MAG_FILTER, int(glapi.LINEAR))
	ctx.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_WRAP_S, int(glapi.CLAMP_TO_EDGE))
	ctx.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_WRAP_T, int(glapi.CLAMP_TO_EDGE))
	ctx.PixelStorei(glapi.UNPACK_ALIGNMENT, 1)
	ctx.TexImage2D(
		glapi.TEXTURE_2D,
		0,
		rgba.Rect.Size().X,
		rgba.Rect.Size().Y,
		glapi.RGBA,
		glapi.UNSIGNED_BYTE,
		rgba.Pix)
	return texture
}

// LoadTexture decodes a PNG (or JPEG) file into texture, see UploadTexture.
func LoadTexture(ctx glapi.Context, texture glapi.Texture, file string, width, height int) (glapi.Texture, error) {
	img, err := DecodeFile(file)
	if err != nil {
		return texture, err
	}
	return UploadTexture(ctx, texture, img, width, height), nil
}
