package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jules-cli/jules42/internal/jerrors"
)

// downloadChunkSize is the write granularity for streamed file content
const downloadChunkSize = 1024

// DownloadParams contains parameters for the Download command
type DownloadParams struct {
	SessionParams
	MD5    string
	SHA256 string
	SaveAs string
	ErrOut io.Writer
}

// Download streams a file out of the forensic store by checksum and writes
// it to SaveAs. Exactly one of MD5 or SHA256 must be set. When the store
// has no content for the checksum, the remote message is reported and no
// file is created.
func Download(ctx context.Context, params DownloadParams) error {
	if params.MD5 == "" && params.SHA256 == "" {
		return jerrors.NewUsageError("Missing one of required md5 or sha256 options.")
	}

	sess, err := newSession(params.SessionParams)
	if err != nil {
		return err
	}

	errOut := params.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	var stream io.ReadCloser
	if params.MD5 != "" {
		stream, err = sess.client.SecurityData.StreamFileByMD5(ctx, params.MD5)
	} else {
		stream, err = sess.client.SecurityData.StreamFileBySHA256(ctx, params.SHA256)
	}
	if err != nil {
		var notFound *jerrors.ChecksumNotFoundError
		if errors.As(err, &notFound) {
			// Expected remote condition: report the message, no file, no
			// failure exit.
			fmt.Fprintln(errOut, notFound.Error())
			return nil
		}
		return err
	}
	defer func() { _ = stream.Close() }()

	// The target file is only created once the stream is open, so a failed
	// lookup never truncates an existing download.
	f, err := os.Create(params.SaveAs)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", params.SaveAs, err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, downloadChunkSize)
	if _, err := io.CopyBuffer(f, stream, buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", params.SaveAs, err)
	}

	return nil
}
