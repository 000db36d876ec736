package tablesource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/statkit-dev/statkit/internal/cache"
	"github.com/statkit-dev/statkit/internal/errs"
)

const (
	blobScheme     = "azblob://"
	blobHostSuffix = ".blob.core.windows.net"
)

// blobDownloader is just an interface over [*azblob.Client]
type blobDownloader interface {
	// Download maps to [azblob.Client.DownloadStream] and returns the body
	Download(ctx context.Context, container, blob string) (io.ReadCloser, error)
}

type azblobDownloader struct {
	inner *azblob.Client
}

func (a *azblobDownloader) Download(ctx context.Context, container, blob string) (io.ReadCloser, error) {
	resp, err := a.inner.DownloadStream(ctx, container, blob, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// BlobOptions configures NewBlob.
type BlobOptions struct {
	// Anonymous uses no credential (public containers or SAS URLs).
	Anonymous bool
	// Credential overrides azidentity.DefaultAzureCredential.
	Credential azcore.TokenCredential
	// Cache keeps downloaded tables on disk. May be nil.
	Cache *cache.Cache
}

// Blob reads a table stored in Azure Blob Storage.
type Blob struct {
	location   string
	serviceURL string
	container  string
	blob       string

	downloader blobDownloader
	cache      *cache.Cache
	logger     *slog.Logger
}

// NewBlob parses an azblob:// or https blob URL and prepares a client for it.
// No request is made until Open.
func NewBlob(location string, opts BlobOptions) (*Blob, error) {
	serviceURL, container, blob, err := parseBlobLocation(location)
	if err != nil {
		return nil, err
	}

	var client *azblob.Client
	if opts.Anonymous {
		client, err = azblob.NewClientWithNoCredential(serviceURL, nil)
	} else {
		cred := opts.Credential
		if cred == nil {
			cred, err = azidentity.NewDefaultAzureCredential(nil)
			if err != nil {
				return nil, fmt.Errorf("azure credential: %w", err)
			}
		}
		client, err = azblob.NewClient(serviceURL, cred, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("blob client for %s: %w", location, err)
	}

	return &Blob{
		location:   location,
		serviceURL: serviceURL,
		container:  container,
		blob:       blob,
		downloader: &azblobDownloader{inner: client},
		cache:      opts.Cache,
		logger:     slog.Default(),
	}, nil
}

func (b *Blob) Open(ctx context.Context) (io.ReadCloser, error) {
	key := cache.Key(b.location)
	if b.cache != nil {
		if data, ok := b.cache.Get(key); ok {
			b.logger.Debug("critical-value table served from cache", "location", b.location)
			return io.NopCloser(bytes.NewReader(data)), nil
		}
	}

	body, err := b.downloader.Download(ctx, b.container, b.blob)
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) {
			return nil, errs.New("download table", errs.ErrResourceUnavailable,
				"location", b.location, "status", respErr.StatusCode, "code", respErr.ErrorCode)
		}
		return nil, fmt.Errorf("downloading %s: %w", b.location, err)
	}
	defer body.Close() //nolint:errcheck

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", b.location, err)
	}

	if b.cache != nil {
		if err := b.cache.Put(key, data); err != nil {
			b.logger.Warn("could not cache critical-value table", "location", b.location, "error", err)
		}
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (b *Blob) String() string { return b.location }

func parseBlobLocation(location string) (serviceURL, container, blob string, err error) {
	var account, path, query string
	if rest, ok := strings.CutPrefix(location, blobScheme); ok {
		account, path, _ = strings.Cut(rest, "/")
	} else {
		u, perr := url.Parse(location)
		if perr != nil {
			return "", "", "", fmt.Errorf("blob location %q: %w", location, perr)
		}
		account = strings.TrimSuffix(u.Hostname(), blobHostSuffix)
		path = strings.TrimPrefix(u.Path, "/")
		query = u.RawQuery
	}

	container, blob, _ = strings.Cut(path, "/")
	if account == "" || container == "" || blob == "" {
		return "", "", "", fmt.Errorf("blob location %q: expected <account>/<container>/<blob>", location)
	}

	serviceURL = "https://" + account + blobHostSuffix + "/"
	if query != "" {
		serviceURL += "?" + query
	}
	return serviceURL, container, blob, nil
}
