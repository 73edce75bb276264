// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nirco-cloud/tripsync/internal/config"
	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/models"
)

// contentResponse is the content store's GET payload: the base64 document
// body and its content hash.
type contentResponse struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

// contentPutRequest is the content store's PUT payload. SHA is the
// optimistic-concurrency precondition; omitted on document creation.
type contentPutRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

type githubDocumentClient struct {
	client *resty.Client
	logger *logger.Logger

	// now stamps the syncedAt field of pushed envelopes. Replaced in tests.
	now func() time.Time
}

// NewGithubDocumentClient constructs a DocumentClient over a GitHub-style
// contents API.
func NewGithubDocumentClient(cfg config.DaemonRemote, log *logger.Logger) DocumentClient {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIBaseURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/vnd.github.v3+json")

	return &githubDocumentClient{client: cli, logger: log, now: time.Now}
}

func (g *githubDocumentClient) Pull(ctx context.Context, cfg models.SyncConfig) (*RemoteDocument, error) {
	resp, err := g.documentRequest(ctx, cfg).
		SetQueryParam("ref", cfg.Branch).
		Get(documentPath(cfg))
	if err != nil {
		return nil, fmt.Errorf("pull request: %w", err)
	}

	// A missing document is the valid first-sync-ever outcome, not an error.
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if err = mapRemoteError(resp); err != nil {
		return nil, err
	}

	var content contentResponse
	if err = json.Unmarshal(resp.Body(), &content); err != nil {
		return nil, fmt.Errorf("decode pull response: %w", err)
	}

	doc, err := decodeDocument(content.Content)
	if err != nil {
		return nil, err
	}

	g.logger.Debug().
		Str("func", "githubDocumentClient.Pull").
		Str("handle", content.SHA).
		Int("entries", len(doc.Entries)).
		Msg("pulled remote document")

	return &RemoteDocument{
		Entries: models.NormalizeAll(doc.Entries),
		Handle:  content.SHA,
	}, nil
}

func (g *githubDocumentClient) Push(ctx context.Context, cfg models.SyncConfig, entries []models.PlanEntry, handle string) error {
	now := g.now().UTC()

	body, err := encodeDocument(models.SyncDocument{
		Version:  models.SyncVersion,
		SyncedAt: now,
		Entries:  entries,
	})
	if err != nil {
		return err
	}

	resp, err := g.documentRequest(ctx, cfg).
		SetHeader("Content-Type", "application/json").
		SetBody(contentPutRequest{
			Message: fmt.Sprintf("sync %s", now.Format(time.RFC3339)),
			Content: body,
			Branch:  cfg.Branch,
			SHA:     handle,
		}).
		Put(documentPath(cfg))
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}
	if err = mapRemoteError(resp); err != nil {
		return err
	}

	g.logger.Debug().
		Str("func", "githubDocumentClient.Push").
		Int("entries", len(entries)).
		Msg("pushed remote document")

	return nil
}

func (g *githubDocumentClient) documentRequest(ctx context.Context, cfg models.SyncConfig) *resty.Request {
	return g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+cfg.Token)
}

func documentPath(cfg models.SyncConfig) string {
	return fmt.Sprintf("/repos/%s/%s/contents/%s", cfg.Owner, cfg.Repo, cfg.FilePath)
}

// mapRemoteError converts a non-success content API response into the
// adapter's error taxonomy: 409 is the optimistic-concurrency rejection,
// everything else carries the response body for diagnostics.
func mapRemoteError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	if resp.StatusCode() == http.StatusConflict {
		return ErrConflict
	}
	return &RemoteError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
}

func decodeDocument(content string) (models.SyncDocument, error) {
	// Content stores wrap base64 bodies at 60 columns.
	cleaned := strings.NewReplacer("\n", "", "\r", "").Replace(content)

	raw, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return models.SyncDocument{}, fmt.Errorf("decode document content: %w", err)
	}

	var doc models.SyncDocument
	if err = json.Unmarshal(raw, &doc); err != nil {
		return models.SyncDocument{}, fmt.Errorf("decode document envelope: %w", err)
	}

	return doc, nil
}

func encodeDocument(doc models.SyncDocument) (string, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode document envelope: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}
