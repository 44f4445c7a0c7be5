// Package imagecache is the image-optimization layer: it serves ship images
// resized to a requested width, backed by a MinIO bucket so each (url, width)
// pair is fetched and scaled at most once. The cache warmer pre-populates it
// after every sync.
package imagecache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

// MaxWidth bounds what a caller may request so the cache cannot be filled
// with arbitrary variants.
const MaxWidth = 3840

type Cache struct {
	client *minio.Client
	bucket string
	http   *http.Client
}

func New(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Cache, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket: %w", err)
		}
	}

	return &Cache{
		client: client,
		bucket: bucket,
		http:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Optimized returns the image at rawURL scaled to width, serving from the
// cache bucket when possible. Returns the bytes and their content type.
func (c *Cache) Optimized(ctx context.Context, rawURL string, width int) ([]byte, string, error) {
	if width < 1 || width > MaxWidth {
		return nil, "", fmt.Errorf("width %d out of range", width)
	}

	key := ObjectKey(rawURL, width)

	if data, contentType, err := c.get(ctx, key); err == nil {
		return data, contentType, nil
	}

	data, contentType, err := c.fetchAndScale(ctx, rawURL, width)
	if err != nil {
		return nil, "", err
	}

	_, err = c.client.PutObject(ctx, c.bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		// Serve the result anyway; the next request re-caches.
		logrus.Warnf("image cache put %s: %v", key, err)
	}

	return data, contentType, nil
}

// ObjectKey is the cache key for one (url, width) variant.
func ObjectKey(rawURL string, width int) string {
	sum := sha256.Sum256([]byte(rawURL))
	return fmt.Sprintf("img/%s_w%d", hex.EncodeToString(sum[:]), width)
}

func (c *Cache) get(ctx context.Context, key string) ([]byte, string, error) {
	obj, err := c.client.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", err
	}
	defer obj.Close()

	stat, err := obj.Stat()
	if err != nil {
		return nil, "", err
	}
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", err
	}
	return data, stat.ContentType, nil
}

func (c *Cache) fetchAndScale(ctx context.Context, rawURL string, width int) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch source image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch source image: status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read source image: %w", err)
	}

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// Formats we cannot decode are cached as-is rather than rejected.
		contentType := resp.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		return raw, contentType, nil
	}

	scaled := Scale(src, width)

	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, scaled); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	default:
		if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: 85}); err != nil {
			return nil, "", fmt.Errorf("encode jpeg: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	}
}

// Scale resizes src to the given width keeping aspect ratio. Images already
// narrower than width are returned unchanged; the optimizer never upscales.
func Scale(src image.Image, width int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= width {
		return src
	}
	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
