package acl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/quotekeeper/internal/adapters/clients"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
	"github.com/jsamuelsen/quotekeeper/internal/platform/logging"
)

const (
	opPull = "pull"
	opPush = "push"

	// maxEchoBody bounds how much of a push echo is kept for logging.
	maxEchoBody = 4 << 10
)

// RemoteQuoteClientConfig contains configuration for the remote quote client.
type RemoteQuoteClientConfig struct {
	// Client is the HTTP client whose BaseURL points at the remote API.
	Client *clients.Client

	// Path is the collection path used for both GET and POST.
	Path string

	// PageSize caps how many records of the fetched page are used.
	PageSize int

	// TitlePath and IDPath are JSONPath expressions evaluated per record.
	TitlePath string
	IDPath    string

	// Category is assigned to every fetched quote.
	Category string

	Logger *slog.Logger
}

// RemoteQuoteClient implements ports.RemoteQuotes against a placeholder API
// that serves a JSON array of generic records.
type RemoteQuoteClient struct {
	BaseAdapter

	path     string
	pageSize int
	mapper   *RecordMapper
	logger   *slog.Logger
}

// pushRequest is the body sent for every pushed quote.
type pushRequest struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// NewRemoteQuoteClient creates the adapter.
// Panics if Client is nil. Returns an error if a JSONPath expression does not compile.
func NewRemoteQuoteClient(cfg RemoteQuoteClientConfig) (*RemoteQuoteClient, error) {
	if cfg.Client == nil {
		panic("RemoteQuoteClient: Client is required")
	}

	category := cfg.Category
	if category == "" {
		category = domain.RemoteCategory
	}

	mapper, err := NewRecordMapper(cfg.TitlePath, cfg.IDPath, category)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	path := cfg.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return &RemoteQuoteClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		path:        path,
		pageSize:    cfg.PageSize,
		mapper:      mapper,
		logger:      logger.With(slog.String("component", "acl.RemoteQuoteClient")),
	}, nil
}

// FetchPage implements ports.RemoteQuotes.
// The response must be a JSON array. Records beyond PageSize are ignored,
// records without a title are dropped.
func (c *RemoteQuoteClient) FetchPage(ctx context.Context) (domain.Collection, error) {
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", c.path))

	body, err := c.Get(ctx, c.path, opPull)
	if err != nil {
		return nil, err
	}

	records, err := DecodeResponse[[]any](body, c.ServiceName(), opPull)
	if err != nil {
		return nil, err
	}

	if c.pageSize > 0 && len(records) > c.pageSize {
		records = records[:c.pageSize]
	}

	quotes := TranslateSlice(records, func(record any) (domain.Quote, bool) {
		return c.mapper.Map(ctx, record)
	})

	if dropped := len(records) - len(quotes); dropped > 0 {
		c.logger.DebugContext(ctx, "dropped records without a title", slog.Int("count", dropped))
	}

	c.logger.DebugContext(ctx, "fetched remote page",
		slog.Int("records", len(records)),
		slog.Int("quotes", len(quotes)),
	)

	return domain.Collection(quotes), nil
}

// Push implements ports.RemoteQuotes. The echoed body is logged and otherwise ignored.
func (c *RemoteQuoteClient) Push(ctx context.Context, quote domain.Quote) error {
	body, err := c.PostJSON(ctx, c.path, pushRequest{
		ID:       quote.ID,
		Text:     quote.Text,
		Category: quote.Category,
	}, opPush)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	echo, err := io.ReadAll(io.LimitReader(body, maxEchoBody))
	if err != nil {
		c.logger.DebugContext(ctx, "reading push echo failed", slog.Any("error", err))
	}

	c.logger.Log(ctx, logging.LevelTrace, "pushed quote",
		slog.String("quote_id", quote.ID),
		slog.String("echo", string(echo)),
	)

	return nil
}
