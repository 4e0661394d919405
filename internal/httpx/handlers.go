package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"allergysafe-be/internal/auth"
	"allergysafe-be/internal/cart"
	"allergysafe-be/internal/catalog"
	"allergysafe-be/internal/logger"
	"allergysafe-be/internal/metrics"
	"allergysafe-be/internal/middleware"
	"allergysafe-be/internal/session"
	"allergysafe-be/internal/user"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler bundles the store handles the presentation layer works through.
type Handler struct {
	Catalog catalog.Service
	Cart    cart.Service
	Session *session.Store
	Users   *user.Registry
	Nav     *IntentNavigator

	// Delay simulates auth latency at the transport boundary. The stores
	// stay synchronous; tests leave it nil.
	Delay func(ctx context.Context)

	requests metrics.Counter
}

type loginRequest struct {
	Role string `json:"role"`
}

type loginResponse struct {
	Token    string           `json:"token"`
	User     session.Identity `json:"user"`
	Redirect string           `json:"redirect"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

type sessionResponse struct {
	IsLoggedIn    bool                 `json:"is_logged_in"`
	User          *session.Identity    `json:"user,omitempty"`
	Capabilities  session.Capabilities `json:"capabilities"`
	PromptVisible bool                 `json:"prompt_visible"`
}

func (h *Handler) Register(r *chi.Mux) {
	r.Group(func(r chi.Router) {
		r.Use(h.countRequests)

		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Post("/products", h.createProduct)
		r.Put("/products/{id}", h.updateProduct)
		r.Get("/filters", h.listFilters)

		r.Get("/cart", h.getCart)
		r.Post("/cart/items", h.addCartItem)
		r.Delete("/cart/items/{id}", h.removeCartItem)
		r.Delete("/cart", h.clearCart)

		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Get("/session", h.getSession)
		r.Post("/register", h.register)
	})
}

// RequestCount exposes the served-request counter.
func (h *Handler) RequestCount() uint64 {
	return h.requests.Load()
}

func (h *Handler) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.requests.Inc()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}

// currentIdentity prefers the bearer identity resolved by the middleware and
// falls back to the session store.
func (h *Handler) currentIdentity(r *http.Request) (session.Identity, bool) {
	if id, ok := middleware.IdentityFromContext(r.Context()); ok {
		return id, true
	}
	return h.Session.Identity()
}

/* ---------- catalog ---------- */

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	res, err := h.Catalog.List(r.Context(), catalog.ListOptions{
		Category: r.URL.Query().Get("category"),
		Allergy:  r.URL.Query().Get("allergy"),
		Page:     page,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) listFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"categories":      catalog.Categories,
		"allergy_filters": catalog.AllergyFilters,
	})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	if !h.requireSeller(w, r) {
		return
	}

	var input catalog.NewProduct
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	created, err := h.Catalog.Create(r.Context(), input)
	if errors.Is(err, catalog.ErrInvalidName) || errors.Is(err, catalog.ErrInvalidPrice) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create product")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	if !h.requireSeller(w, r) {
		return
	}

	var input catalog.UpdateProduct
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	input.ID = chi.URLParam(r, "id")

	updated, err := h.Catalog.Update(r.Context(), input)
	if errors.Is(err, catalog.ErrProductNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if errors.Is(err, catalog.ErrInvalidPrice) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update product")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

/* ---------- cart ---------- */

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	if !h.requireBuyer(w, r) {
		return
	}

	sum, err := h.Cart.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireBuyer(w, r) {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	sum, err := h.Cart.Add(r.Context(), req.ProductID)
	if errors.Is(err, cart.ErrInvalidProductID) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, cart.ErrProductNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to add item")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireBuyer(w, r) {
		return
	}

	sum, err := h.Cart.Remove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if !h.requireBuyer(w, r) {
		return
	}

	sum, err := h.Cart.Clear(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

/* ---------- session ---------- */

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	role := session.Role(req.Role)
	if !role.Valid() {
		writeError(w, http.StatusBadRequest, "unsupported role")
		return
	}

	if h.Delay != nil {
		h.Delay(r.Context())
	}

	id := h.Session.Login(r.Context(), role)

	token, err := auth.GenerateToken(id)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to generate token", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:    token,
		User:     id,
		Redirect: h.Nav.Last(),
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"redirect": h.Nav.Last()})
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	resp := sessionResponse{
		IsLoggedIn:    h.Session.IsLoggedIn(),
		Capabilities:  h.Session.Capabilities(),
		PromptVisible: h.Session.PromptVisible(),
	}
	if id, ok := h.Session.Identity(); ok {
		resp.User = &id
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if h.Delay != nil {
		h.Delay(r.Context())
	}

	acc, err := h.Users.Register(r.Context(), req.Email, req.Password, session.Role(req.Role))
	switch {
	case errors.Is(err, user.ErrEmailExists):
		writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrWeakPassword):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to register")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"email": acc.Email,
		"role":  string(acc.Role),
	})
}

/* ---------- gating ---------- */

// requireBuyer gates cart endpoints. Anonymous callers get the login prompt
// opened and a 401; sellers and admins cannot buy.
func (h *Handler) requireBuyer(w http.ResponseWriter, r *http.Request) bool {
	id, ok := h.currentIdentity(r)
	if !ok {
		h.Session.OpenPrompt()
		writeError(w, http.StatusUnauthorized, "login required")
		return false
	}
	if !session.CapabilitiesFor(id.Role).CanBuy {
		writeError(w, http.StatusForbidden, "role cannot buy")
		return false
	}
	return true
}

func (h *Handler) requireSeller(w http.ResponseWriter, r *http.Request) bool {
	id, ok := h.currentIdentity(r)
	if !ok {
		h.Session.OpenPrompt()
		writeError(w, http.StatusUnauthorized, "login required")
		return false
	}
	if !session.CapabilitiesFor(id.Role).CanSell {
		writeError(w, http.StatusForbidden, "role cannot manage products")
		return false
	}
	return true
}
