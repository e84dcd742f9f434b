package imagehost

import (
	"context"
	"io"
)

/*
Host accepts an encoded image and returns the durable URL it is served
from.
*/
type Host interface {
	Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error)
}
