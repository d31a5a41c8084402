package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed templates/*.html
var templateFS embed.FS

const dateTimeLayout = "02/01/2006 15:04:05"

// Renderer renders the embedded html templates for echo. Amounts and
// timestamps are localized with the configured locale and time zone.
type Renderer struct {
	templates  *template.Template
	printer    *message.Printer
	decimalSep string
	location   *time.Location
}

func NewRenderer(locale string, location *time.Location) (*Renderer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	if location == nil {
		location = time.UTC
	}

	r := &Renderer{
		printer:  message.NewPrinter(tag),
		location: location,
	}
	r.decimalSep = strings.TrimSuffix(strings.TrimPrefix(r.printer.Sprint(number.Decimal(1.5)), "1"), "5")

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"money":    r.formatMoney,
		"datetime": r.formatDateTime,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.templates = tmpl

	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// formatMoney groups the whole part for the locale and appends every
// fraction digit the decimal carries. Nothing is rounded.
func (r *Renderer) formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole := d.Truncate(0)
	var out string
	if wb := whole.BigInt(); wb.IsInt64() {
		out = r.printer.Sprint(number.Decimal(wb.Int64()))
	} else {
		out = whole.String()
	}

	// frac is in [0, 1), so String() is "0.xxx" without trailing zeros
	if frac := d.Sub(whole); !frac.IsZero() {
		out += r.decimalSep + strings.TrimPrefix(frac.String(), "0.")
	}
	return sign + out
}

func (r *Renderer) formatDateTime(t time.Time) string {
	return t.In(r.location).Format(dateTimeLayout)
}
