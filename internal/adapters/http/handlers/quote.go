package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotekeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotekeeper/internal/app"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// QuoteService is the part of the quote controller the HTTP API drives.
// *app.QuoteController implements it.
type QuoteService interface {
	ShowRandom(ctx context.Context) (domain.Quote, bool)
	LastShown() (domain.Quote, bool)
	Add(ctx context.Context, text, category string) (domain.Quote, error)
	Import(ctx context.Context, source string, r io.Reader) (int, error)
	Export() ([]byte, error)
	Reset(ctx context.Context) error
	SelectCategory(ctx context.Context, category string) error
	Filter() string
	Categories() []string
	View() domain.Collection
	All() domain.Collection
	Pull(ctx context.Context) (domain.Collection, error)
	Push(ctx context.Context, id string) (domain.Quote, error)
	Sync(ctx context.Context) (app.SyncReport, error)
}

var _ QuoteService = (*app.QuoteController)(nil)

// QuoteHandler serves the /api/v1 quote endpoints.
type QuoteHandler struct {
	service QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// ListQuotes handles GET /quotes. The selected filter applies unless
// ?scope=all is given.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	if c.Query("scope") == domain.FilterAll {
		c.JSON(http.StatusOK, dto.NewQuoteListResponse(domain.FilterAll, h.service.All()))
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(h.service.Filter(), h.service.View()))
}

// RandomQuote handles GET /quotes/random.
func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	quote, ok := h.service.ShowRandom(c.Request.Context())
	if !ok {
		noQuotes(c)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// LastQuote handles GET /quotes/last.
func (h *QuoteHandler) LastQuote(c *gin.Context) {
	quote, ok := h.service.LastShown()
	if !ok {
		noQuotes(c)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

func noQuotes(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeNotFound, domain.NoQuotesMessage).
		WithTraceID(dto.GetTraceID(c)))
}

// AddQuote handles POST /quotes.
func (h *QuoteHandler) AddQuote(c *gin.Context) {
	var req dto.AddQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	quote, err := h.service.Add(c.Request.Context(), req.Text, req.Category)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuoteResponse(quote))
}

// PushQuote handles POST /quotes/:id/push.
func (h *QuoteHandler) PushQuote(c *gin.Context) {
	quote, err := h.service.Push(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// Categories handles GET /categories.
func (h *QuoteHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: h.service.Categories()})
}

// GetFilter handles GET /filter.
func (h *QuoteHandler) GetFilter(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FilterResponse{Category: h.service.Filter()})
}

// SetFilter handles PUT /filter.
func (h *QuoteHandler) SetFilter(c *gin.Context) {
	var req dto.FilterRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.service.SelectCategory(c.Request.Context(), req.Category); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FilterResponse{Category: h.service.Filter()})
}

// Export handles GET /export as a JSON file download.
func (h *QuoteHandler) Export(c *gin.Context) {
	data, err := h.service.Export()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+app.DefaultExportName+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// Import handles POST /import. The body is the exported JSON array; ?name=
// names the source in parse errors.
func (h *QuoteHandler) Import(c *gin.Context) {
	n, err := h.service.Import(c.Request.Context(), c.Query("name"), c.Request.Body)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ImportResponse{Imported: n, Total: len(h.service.All())})
}

// Reset handles POST /reset.
func (h *QuoteHandler) Reset(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context()); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(h.service.Filter(), h.service.All()))
}

// Pull handles POST /pull.
func (h *QuoteHandler) Pull(c *gin.Context) {
	added, err := h.service.Pull(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp := dto.PullResponse{Added: make([]dto.QuoteResponse, 0, len(added))}
	for _, q := range added {
		resp.Added = append(resp.Added, dto.NewQuoteResponse(q))
	}

	c.JSON(http.StatusOK, resp)
}

// Sync handles POST /sync. An overlapping run answers 202 with skipped set.
func (h *QuoteHandler) Sync(c *gin.Context) {
	report, err := h.service.Sync(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	status := http.StatusOK
	if report.Skipped {
		status = http.StatusAccepted
	}

	c.JSON(status, dto.NewSyncResponse(report))
}

// RegisterQuoteRoutes registers the quote routes on rg.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.POST("", h.AddQuote)
	quotes.GET("/random", h.RandomQuote)
	quotes.GET("/last", h.LastQuote)
	quotes.POST("/:id/push", h.PushQuote)

	rg.GET("/categories", h.Categories)
	rg.GET("/filter", h.GetFilter)
	rg.PUT("/filter", h.SetFilter)
	rg.GET("/export", h.Export)
	rg.POST("/import", h.Import)
	rg.POST("/reset", h.Reset)
	rg.POST("/pull", h.Pull)
	rg.POST("/sync", h.Sync)
}
