package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jules-cli/jules42/internal/jerrors"
)

// ChecksumType identifies which hash kind a download request carries
type ChecksumType string

// Supported checksum kinds for file-content downloads
const (
	ChecksumMD5    ChecksumType = "MD5"
	ChecksumSHA256 ChecksumType = "SHA256"
)

// SecurityDataService streams file content out of the forensic file store
type SecurityDataService struct {
	client *Client
}

// StreamFileByMD5 streams the content of the file with the given MD5 hash.
// The caller owns the returned reader and must close it.
func (s *SecurityDataService) StreamFileByMD5(ctx context.Context, hash string) (io.ReadCloser, error) {
	return s.streamFile(ctx, ChecksumMD5, hash)
}

// StreamFileBySHA256 streams the content of the file with the given SHA256
// hash. The caller owns the returned reader and must close it.
func (s *SecurityDataService) StreamFileBySHA256(ctx context.Context, hash string) (io.ReadCloser, error) {
	return s.streamFile(ctx, ChecksumSHA256, hash)
}

func (s *SecurityDataService) streamFile(ctx context.Context, kind ChecksumType, hash string) (io.ReadCloser, error) {
	resp, err := s.client.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"checksum": hash,
			"type":     string(kind),
		}).
		SetDoNotParseResponse(true).
		Get("/forensic-search/queryservice/api/v1/filedownload")
	if err != nil {
		return nil, fmt.Errorf("stream file by %s: %w", kind, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		defer func() { _ = resp.RawBody().Close() }()
		msg := fmt.Sprintf("No files found with %s checksum %q.", kind, hash)
		if body, err := io.ReadAll(resp.RawBody()); err == nil {
			var remote apiErrorBody
			if err := json.Unmarshal(body, &remote); err == nil && remote.Problem != "" {
				msg = remote.Problem
			}
		}
		return nil, jerrors.NewChecksumNotFoundError(hash, msg)
	}
	if resp.IsError() {
		defer func() { _ = resp.RawBody().Close() }()
		return nil, jerrors.NewAPIError(resp.StatusCode(), fmt.Sprintf("file download returned %s", resp.Status()))
	}

	return resp.RawBody(), nil
}
