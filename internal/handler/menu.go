package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saawariya-rasoi/api/internal/enum"
	"github.com/saawariya-rasoi/api/internal/menu"
)

// MenuHandler serves the static menu catalog. The catalog itself is compiled
// into the binary; only the display price and order action vary with the
// order mode.
type MenuHandler struct {
	deliveryURL   string
	takeawayPhone string
}

// NewMenuHandler creates a new MenuHandler with the configured outbound
// order actions.
func NewMenuHandler(deliveryURL, takeawayPhone string) *MenuHandler {
	return &MenuHandler{deliveryURL: deliveryURL, takeawayPhone: takeawayPhone}
}

// RegisterRoutes registers menu endpoints on the given Chi router.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/menu", h.List)
	r.Get("/menu/categories", h.Categories)
	r.Get("/menu/{id}", h.Get)
}

// --- Response types ---

type menuItemResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	Price         string  `json:"price"`
	TakeawayPrice *string `json:"takeaway_price,omitempty"`
	DisplayPrice  string  `json:"display_price"`
	OrderAction   string  `json:"order_action"`
	Popular       bool    `json:"popular"`
	Category      string  `json:"category"`
	Subcategory   *string `json:"subcategory,omitempty"`
	Veg           bool    `json:"veg"`
	Quantity      *string `json:"quantity,omitempty"`
}

type menuListResponse struct {
	Mode  string             `json:"mode"`
	Items []menuItemResponse `json:"items"`
}

// --- Handlers ---

// List handles GET /menu?mode=&category=&subcategory=&veg=&popular=.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = enum.ModeDelivery
	}
	if !enum.IsValidMode(mode) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid mode"})
		return
	}

	f := menu.Filter{
		Category:    r.URL.Query().Get("category"),
		Subcategory: r.URL.Query().Get("subcategory"),
	}
	// "All" is the menu's catch-all tab, not a real category.
	if f.Category == "All" {
		f.Category = ""
	}
	if s := r.URL.Query().Get("veg"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid veg filter"})
			return
		}
		f.Veg = &v
	}
	if s := r.URL.Query().Get("popular"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid popular filter"})
			return
		}
		f.Popular = &v
	}

	items := menu.List(f)
	resp := make([]menuItemResponse, len(items))
	for i, it := range items {
		resp[i] = h.toItemResponse(it, mode)
	}

	writeJSON(w, http.StatusOK, menuListResponse{Mode: mode, Items: resp})
}

// Get handles GET /menu/{id}.
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}

	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = enum.ModeDelivery
	}
	if !enum.IsValidMode(mode) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid mode"})
		return
	}

	item, ok := menu.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
		return
	}

	writeJSON(w, http.StatusOK, h.toItemResponse(item, mode))
}

// Categories handles GET /menu/categories.
func (h *MenuHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"categories": menu.Categories()})
}

// --- Helpers ---

func (h *MenuHandler) toItemResponse(it menu.Item, mode string) menuItemResponse {
	resp := menuItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Price:        "₹" + it.Price.String(),
		DisplayPrice: "₹" + it.PriceFor(mode).String(),
		Popular:      it.Popular,
		Category:     it.Category,
		Veg:          it.Veg,
	}

	// Delivery orders go out through the external platform; takeaway orders
	// are placed by phone.
	if mode == enum.ModeTakeaway {
		resp.OrderAction = h.takeawayPhone
	} else {
		resp.OrderAction = h.deliveryURL
	}

	if it.Description != "" {
		resp.Description = &it.Description
	}
	if !it.TakeawayPrice.IsZero() {
		s := "₹" + it.TakeawayPrice.String()
		resp.TakeawayPrice = &s
	}
	if it.Subcategory != "" {
		resp.Subcategory = &it.Subcategory
	}
	if it.Quantity != "" {
		resp.Quantity = &it.Quantity
	}

	return resp
}
