package server

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lumina-commerce/storefront/internal/catalog"
	"github.com/lumina-commerce/storefront/internal/chat"
	errx "github.com/lumina-commerce/storefront/internal/core/error"
	logx "github.com/lumina-commerce/storefront/pkg/logger"
)

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) homeHandler(c *gin.Context) {
	category := catalog.ParseCategory(c.Query("category"))
	query := c.Query("q")

	turns, err := s.turns.History(c.Request.Context(), s.conversationID)
	if err != nil {
		logx.Error().Err(err).Msg("failed to load conversation")
		c.String(errx.Status(err, http.StatusInternalServerError), errx.SystemErrorMessage)
		return
	}

	view := s.buildHomeView(category, query, turns, homeFlags{
		CartOpen:      c.Query("cart") == "open",
		ChatOpen:      c.Query("chat") == "open",
		AssistantBusy: c.Query("busy") == "1",
		QuickViewID:   c.Query("view"),
	})
	c.HTML(http.StatusOK, "home.html", view)
}

// ---- cart gestures ----

func (s *Server) cartAddHandler(c *gin.Context) {
	id := c.PostForm("product_id")
	if p, ok := s.store.Get(id); ok {
		s.cart.Add(p)
	} else {
		logx.Warn().Str("product_id", id).Msg("add to cart for unknown product ignored")
	}
	s.redirectHome(c, withOverlay(formState(c), "cart"))
}

func (s *Server) cartRemoveHandler(c *gin.Context) {
	s.cart.Remove(c.PostForm("product_id"))
	s.redirectHome(c, withOverlay(formState(c), "cart"))
}

func (s *Server) cartAdjustHandler(c *gin.Context) {
	delta, err := strconv.Atoi(c.PostForm("delta"))
	if err != nil {
		delta = 0
	}
	s.cart.Adjust(c.PostForm("product_id"), delta)
	s.redirectHome(c, withOverlay(formState(c), "cart"))
}

// ---- chat gestures ----

// chatHandler appends the user's turn, performs the single recommendation call,
// and appends the assistant's turn. The admission gate allows one outstanding
// call; further sends are bounced back with a busy notice instead of queueing.
func (s *Server) chatHandler(c *gin.Context) {
	message := strings.TrimSpace(c.PostForm("message"))
	if message == "" {
		s.redirectHome(c, withOverlay(formState(c), "chat"))
		return
	}

	if !s.sending.CompareAndSwap(false, true) {
		vals := withOverlay(formState(c), "chat")
		vals.Set("busy", "1")
		s.redirectHome(c, vals)
		return
	}
	defer s.sending.Store(false)

	ctx := c.Request.Context()

	history, err := s.turns.History(ctx, s.conversationID)
	if err != nil {
		logx.Error().Err(err).Msg("failed to load conversation")
		c.String(errx.Status(err, http.StatusInternalServerError), errx.SystemErrorMessage)
		return
	}

	// the user turn is recorded before the call so turn order stays
	// chronological regardless of response latency
	if err := s.turns.Append(ctx, s.conversationID, chat.UserTurn(message)); err != nil {
		logx.Error().Err(err).Msg("failed to append user turn")
		c.String(errx.Status(err, http.StatusInternalServerError), errx.SystemErrorMessage)
		return
	}

	reply := s.responder.Respond(ctx, message, history)

	if err := s.turns.Append(ctx, s.conversationID, chat.AssistantTurn(reply.Text, reply.SuggestedProductIDs)); err != nil {
		logx.Error().Err(err).Msg("failed to append assistant turn")
		c.String(errx.Status(err, http.StatusInternalServerError), errx.SystemErrorMessage)
		return
	}

	s.redirectHome(c, withOverlay(formState(c), "chat"))
}

func (s *Server) chatClearHandler(c *gin.Context) {
	if err := s.turns.Clear(c.Request.Context(), s.conversationID); err != nil {
		logx.Error().Err(err).Msg("failed to clear conversation")
		c.String(errx.Status(err, http.StatusInternalServerError), errx.SystemErrorMessage)
		return
	}
	s.redirectHome(c, withOverlay(formState(c), "chat"))
}

// ---- JSON API ----

func (s *Server) listProductsHandler(c *gin.Context) {
	category := catalog.ParseCategory(c.Query("category"))
	products := s.store.Filter(category, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

func (s *Server) getProductHandler(c *gin.Context) {
	p, ok := s.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ---- helpers ----

// formState carries the filter state hidden in every form so a gesture never
// resets the active category or search text.
func formState(c *gin.Context) url.Values {
	vals := url.Values{}
	if v := c.PostForm("category"); v != "" {
		vals.Set("category", v)
	}
	if v := c.PostForm("q"); v != "" {
		vals.Set("q", v)
	}
	if v := c.PostForm("view"); v != "" {
		vals.Set("view", v)
	}
	return vals
}

func withOverlay(vals url.Values, overlay string) url.Values {
	vals.Set(overlay, "open")
	return vals
}

func (s *Server) redirectHome(c *gin.Context, vals url.Values) {
	u := url.URL{Path: "/", RawQuery: vals.Encode()}
	c.Redirect(http.StatusSeeOther, u.String())
}
