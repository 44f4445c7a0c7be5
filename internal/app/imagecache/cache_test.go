package imagecache

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyIsStablePerURLAndWidth(t *testing.T) {
	a := ObjectKey("https://img.test/a.jpg", 640)
	b := ObjectKey("https://img.test/a.jpg", 640)
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, ObjectKey("https://img.test/a.jpg", 256))
	assert.NotEqual(t, a, ObjectKey("https://img.test/b.jpg", 640))
	assert.Contains(t, a, "_w640")
}

func TestScaleKeepsAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1000, 500))

	dst := Scale(src, 200)

	assert.Equal(t, 200, dst.Bounds().Dx())
	assert.Equal(t, 100, dst.Bounds().Dy())
}

func TestScaleNeverUpscales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))

	dst := Scale(src, 640)

	assert.Equal(t, 100, dst.Bounds().Dx())
	assert.Equal(t, 100, dst.Bounds().Dy())
}
