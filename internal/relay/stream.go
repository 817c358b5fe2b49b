package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ChunkSize bounds how much of an upstream stream is held in memory at once.
const ChunkSize = 32 * 1024

// Pipe copies src to dst in arrival order, flushing after every chunk when
// dst supports it. Writes are synchronous, so a slow reader on the dst side
// slows down reads from src. Pipe returns when src is exhausted, a write
// fails, or ctx is done.
func Pipe(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	flusher, _ := dst.(http.Flusher)
	buf := make([]byte, ChunkSize)

	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			w, err := dst.Write(buf[:n])
			written += int64(w)
			if err != nil {
				return written, fmt.Errorf("write chunk: %w", err)
			}
			if flusher != nil {
				flusher.Flush()
			}
		}

		if errors.Is(readErr, io.EOF) {
			return written, nil
		}
		if readErr != nil {
			return written, fmt.Errorf("read upstream: %w", readErr)
		}
	}
}
