package httpapi

import (
	"embed"
	"html/template"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/i474232898/weather-widget/internal/store"
	"github.com/i474232898/weather-widget/internal/weather"
)

// SessionCookie carries the id of the visitor's widget session.
const SessionCookie = "widget_session"

const widgetKey = "widget"

//go:embed templates/index.html
var templateFS embed.FS

var (
	validate = validator.New()
	page     = template.Must(template.ParseFS(templateFS, "templates/index.html"))
)

// Options configures how weather is presented.
type Options struct {
	IconBaseURL string
	Units       string
	CookieTTL   time.Duration
}

type handler struct {
	sessions *store.MemoryStore
	opts     Options
	l        *zap.Logger
}

// RegisterRoutes wires the page and JSON handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, sessions *store.MemoryStore, opts Options, l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	h := &handler{sessions: sessions, opts: opts, l: l}

	app.Get("/", h.withWidget, h.index)
	app.Post("/search", h.withWidget, h.search)

	v1 := app.Group("/api/v1", h.withWidget)
	v1.Get("/weather/state", h.state)
	v1.Post("/weather/lookup", h.lookup)
}

// withWidget resolves the session cookie to a widget, starting a new session
// when the cookie is missing, malformed or expired.
func (h *handler) withWidget(c *fiber.Ctx) error {
	id, err := store.ParseSessionID(c.Cookies(SessionCookie))
	if err != nil {
		id = store.NewSessionID()
	}

	w, created := h.sessions.GetOrCreate(id)
	if created {
		h.l.Debug("widget session started", zap.String("session", id.String()))
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    id.String(),
			Path:     "/",
			MaxAge:   int(h.opts.CookieTTL.Seconds()),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}

	c.Locals(widgetKey, w)
	return c.Next()
}

func widgetFrom(c *fiber.Ctx) *weather.Widget {
	w, _ := c.Locals(widgetKey).(*weather.Widget)
	return w
}

// pageData is what the index template renders.
type pageData struct {
	Gradient  weather.Gradient
	City      string
	Error     string
	Loading   bool
	Weather   *weather.WeatherSnapshot
	IconURL   string
	SpeedUnit string
}

func (h *handler) index(c *fiber.Ctx) error {
	s := widgetFrom(c).Mount(c.UserContext())

	data := pageData{
		Gradient:  s.Gradient(),
		City:      s.City,
		Error:     s.Err(),
		Loading:   s.Loading(),
		Weather:   s.Snapshot,
		SpeedUnit: speedUnit(h.opts.Units),
	}
	if s.Snapshot != nil {
		data.IconURL = s.Snapshot.IconURL(h.opts.IconBaseURL)
	}

	c.Type("html", "utf-8")
	if err := page.Execute(c, data); err != nil {
		h.l.Error("failed to render page", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}
	return nil
}

func (h *handler) search(c *fiber.Ctx) error {
	widgetFrom(c).Lookup(c.UserContext(), c.FormValue("city"))
	return c.Redirect("/", fiber.StatusSeeOther)
}

// stateResponse is the JSON form of a widget state.
type stateResponse struct {
	weather.State
	Loading  bool             `json:"loading"`
	Gradient weather.Gradient `json:"gradient"`
	IconURL  string           `json:"iconUrl,omitempty"`
}

func (h *handler) render(s weather.State) stateResponse {
	resp := stateResponse{
		State:    s,
		Loading:  s.Loading(),
		Gradient: s.Gradient(),
	}
	if s.Snapshot != nil {
		resp.IconURL = s.Snapshot.IconURL(h.opts.IconBaseURL)
	}
	return resp
}

func (h *handler) state(c *fiber.Ctx) error {
	s := widgetFrom(c).Mount(c.UserContext())
	return c.JSON(h.render(s))
}

// lookupRequest is the body of POST /api/v1/weather/lookup. An empty city is
// not a bad request: it is reported through the widget state.
type lookupRequest struct {
	City string `json:"city" validate:"max=100"`
}

func (h *handler) lookup(c *fiber.Ctx) error {
	var req lookupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	s := widgetFrom(c).Lookup(c.UserContext(), req.City)
	return c.JSON(h.render(s))
}

func speedUnit(units string) string {
	if units == "imperial" {
		return "mph"
	}
	return "m/s"
}
