package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cse-motors/inventory-system/internal/api/middleware"
	"github.com/cse-motors/inventory-system/internal/core/domain"
	"github.com/cse-motors/inventory-system/internal/core/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer satisfies echo.Renderer over the embedded HTML templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"usd": func(v float64) string {
			return "$" + groupThousands(int64(v+0.5))
		},
		"comma": func(n int) string {
			return groupThousands(int64(n))
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// groupThousands renders n with comma separators ("28999" → "28,999").
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var b []byte
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b = append(b, ',')
		}
		b = append(b, byte(r))
	}
	if neg {
		return "-" + string(b)
	}
	return string(b)
}

// Page is the data envelope every template receives. Nav, identity and flash
// messages are common to all pages; Data carries the page-specific payload.
type Page struct {
	Title    string
	Nav      []domain.Classification
	Identity domain.Identity
	Messages []string
	Errors   []string
	Data     any
}

// View renders pages with the shared chrome (nav bar, identity, flash
// messages) assembled around the page payload.
type View struct {
	inventory ports.InventoryService
	flash     ports.FlashStore
	log       zerolog.Logger
}

func NewView(inventory ports.InventoryService, flash ports.FlashStore, log zerolog.Logger) *View {
	return &View{inventory: inventory, flash: flash, log: log}
}

// Render drains the session's pending flash messages (consume-once) and
// renders the named template. Nav and flash failures degrade to empty values
// rather than failing the page.
func (v *View) Render(c echo.Context, status int, name, title string, data any) error {
	ctx := c.Request().Context()

	nav, err := v.inventory.Nav(ctx)
	if err != nil {
		nav = nil
	}

	sid := middleware.SessionID(c)
	messages, err := v.flash.Drain(ctx, sid, ports.FlashMessage)
	if err != nil {
		v.log.Warn().Err(err).Msg("flash drain failed")
	}
	flashErrors, err := v.flash.Drain(ctx, sid, ports.FlashErrors)
	if err != nil {
		v.log.Warn().Err(err).Msg("flash drain failed")
	}

	return c.Render(status, name, Page{
		Title:    title,
		Nav:      nav,
		Identity: middleware.IdentityFrom(c),
		Messages: messages,
		Errors:   flashErrors,
		Data:     data,
	})
}

// Flash enqueues messages for the next rendered page. A storage failure is
// logged and swallowed; losing a notice must not fail the request.
func (v *View) Flash(c echo.Context, category string, messages ...string) {
	if err := v.flash.Push(c.Request().Context(), middleware.SessionID(c), category, messages...); err != nil {
		v.log.Warn().Err(err).Str("category", category).Msg("flash push failed")
	}
}
