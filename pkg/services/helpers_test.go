package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngFile(t *testing.T, name string, width, height int) ImageFile {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return ImageFile{
		Name:        name,
		ContentType: "image/png",
		Data:        buf.Bytes(),
	}
}

type hostCall struct {
	fileName    string
	contentType string
	data        []byte
}

/*
fakeHost answers https://cdn.example.com/<fileName> unless the file name
is listed in fail.
*/
type fakeHost struct {
	lock     sync.Mutex
	calls    []hostCall
	fail     map[string]bool
	inFlight int
	maxSeen  int
	block    chan struct{}
	entered  chan struct{}
}

func (h *fakeHost) Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	h.lock.Lock()
	h.calls = append(h.calls, hostCall{fileName: fileName, contentType: contentType, data: data})
	h.inFlight++
	h.maxSeen = max(h.maxSeen, h.inFlight)
	h.lock.Unlock()

	defer func() {
		h.lock.Lock()
		h.inFlight--
		h.lock.Unlock()
	}()

	if h.entered != nil {
		h.entered <- struct{}{}
	}

	if h.block != nil {
		<-h.block
	}

	if h.fail[fileName] {
		return "", fmt.Errorf("host rejected %s", fileName)
	}

	return "https://cdn.example.com/" + fileName, nil
}

func (h *fakeHost) callCount() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.calls)
}

type failingBackend struct{}

func (failingBackend) Get(ctx context.Context, slot string) ([]byte, error) {
	return nil, fmt.Errorf("disk on fire")
}

func (failingBackend) Put(ctx context.Context, slot string, data []byte) error {
	return fmt.Errorf("disk on fire")
}
