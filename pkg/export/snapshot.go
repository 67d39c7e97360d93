package export

import (
	"bytes"
	"image"
	"image/png"
	"log"

	"github.com/nfnt/resize"
)

// SnapshotFileName is the fixed download filename for view snapshots.
const SnapshotFileName = "snapshot.png"

// SnapshotContentType is the content type of encoded snapshots.
const SnapshotContentType = "image/png"

// Snapshot encodes the raw RGBA framebuffer of the rendered view as
// PNG. The pixels come from whatever the (external) renderer currently
// shows; there is no geometric logic here. If no renderable surface
// exists yet (zero dimensions or a short pixel buffer) it fails
// silently and returns nil.
func Snapshot(width, height int, rgba []byte) []byte {
	img := surfaceImage(width, height, rgba)
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Printf("export: could not encode snapshot png: %v", err)
		return nil
	}
	return buf.Bytes()
}

// Thumbnail is Snapshot downscaled to fit within maxEdge pixels per
// side, preserving aspect ratio.
func Thumbnail(width, height int, rgba []byte, maxEdge uint) []byte {
	img := surfaceImage(width, height, rgba)
	if img == nil || maxEdge == 0 {
		return nil
	}
	small := resize.Thumbnail(maxEdge, maxEdge, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := png.Encode(&buf, small); err != nil {
		log.Printf("export: could not encode thumbnail png: %v", err)
		return nil
	}
	return buf.Bytes()
}

func surfaceImage(width, height int, rgba []byte) image.Image {
	if width <= 0 || height <= 0 || len(rgba) < width*height*4 {
		return nil
	}
	return &image.RGBA{
		Pix:    rgba[:width*height*4],
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}
