package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lumina-commerce/storefront/internal/assistant"
	"github.com/lumina-commerce/storefront/internal/cart"
	"github.com/lumina-commerce/storefront/internal/catalog"
	"github.com/lumina-commerce/storefront/internal/chat"
	"github.com/lumina-commerce/storefront/internal/core"
	logx "github.com/lumina-commerce/storefront/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// Config holds the HTTP surface settings sourced from the environment.
type Config struct {
	Addr         string   `envconfig:"HTTP_ADDR" default:":8080"`
	AllowOrigins []string `envconfig:"HTTP_ALLOW_ORIGINS" default:"*"`
}

// Responder is the slice of the recommendation adapter the server needs;
// tests substitute a stub.
type Responder interface {
	Respond(ctx context.Context, userText string, history []chat.Turn) assistant.Reply
}

// Server renders the storefront and translates user gestures into operations
// on the cart, the filter state, and the conversation log.
type Server struct {
	engine         *gin.Engine
	store          *catalog.Store
	cart           *cart.Cart
	turns          chat.Repository
	conversationID string
	responder      Responder
	cfg            Config

	// admission gate: at most one recommendation call in flight
	sending atomic.Bool
}

// New wires the router. The cart and conversation id live for the lifetime of
// the process; there is no per-user session handling.
func New(env core.Environment, cfg Config, store *catalog.Store, turns chat.Repository, conversationID string, responder Responder) *Server {
	switch env {
	case core.Production:
		gin.SetMode(gin.ReleaseMode)
	case core.Testing:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	s := &Server{
		engine:         gin.New(),
		store:          store,
		cart:           cart.New(),
		turns:          turns,
		conversationID: conversationID,
		responder:      responder,
		cfg:            cfg,
	}

	s.engine.Use(gin.Recovery(), requestLogger())
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"money": renderMoney,
		"stars": renderStars,
	}).ParseFS(templateFS, "templates/*.html"))
	s.engine.SetHTMLTemplate(tmpl)

	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/", s.homeHandler)
	s.engine.GET("/healthz", s.healthHandler)

	s.engine.POST("/cart/add", s.cartAddHandler)
	s.engine.POST("/cart/remove", s.cartRemoveHandler)
	s.engine.POST("/cart/adjust", s.cartAdjustHandler)

	s.engine.POST("/chat", s.chatHandler)
	s.engine.POST("/chat/clear", s.chatClearHandler)

	api := s.engine.Group("/api")
	api.GET("/products", s.listProductsHandler)
	api.GET("/products/:id", s.getProductHandler)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP listener and blocks.
func (s *Server) Run() error {
	logx.Info().Str("addr", s.cfg.Addr).Msg("storefront listening")
	if err := s.engine.Run(s.cfg.Addr); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// requestLogger emits one structured line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logx.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

func renderMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// renderStars renders a five-slot rating bar, filling floor(rating) slots.
func renderStars(rating float64) string {
	out := make([]rune, 0, 5)
	filled := int(rating)
	for i := 0; i < 5; i++ {
		if i < filled {
			out = append(out, '★')
		} else {
			out = append(out, '☆')
		}
	}
	return string(out)
}
