package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"CleanSort/internal/model"
	"CleanSort/internal/service"
)

// ItemHandler обрабатывает операции над товарами.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger}
}

// ItemRequest — тело создания товара.
type ItemRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Interval int     `json:"interval"`
}

func (req *ItemRequest) toInput() service.ItemInput {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return service.ItemInput{
		Name:     req.Name,
		Category: model.WasteCategory(req.Category),
		Quantity: quantity,
		Unit:     req.Unit,
		Interval: req.Interval,
	}
}

// Create создаёт товар и его напоминание.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	it, err := h.ItemService.CreateItem(r.Context(), req.toInput())
	if err != nil {
		h.Logger.Warnw("Create: service error", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

// CreateBulk создаёт пачку товаров (например, подтверждённый скан чека).
func (h *ItemHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		h.Logger.Warnw("CreateBulk: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	inputs := make([]service.ItemInput, 0, len(reqs))
	for i := range reqs {
		inputs = append(inputs, reqs[i].toInput())
	}

	items, err := h.ItemService.CreateItemsBulk(r.Context(), inputs)
	if err != nil {
		h.Logger.Warnw("CreateBulk: service error", "count", len(reqs), "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, items)
}

// List возвращает все товары.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.ListItems(r.Context())
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get возвращает товар по id.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	it, err := h.ItemService.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// ItemPatchRequest — частичное обновление товара.
type ItemPatchRequest struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
	Interval *int     `json:"interval,omitempty"`
}

// Update применяет частичное обновление товара.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ItemPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "id", id, "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	patch := service.ItemPatch{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Interval: req.Interval,
	}
	if req.Category != nil {
		cat := model.WasteCategory(*req.Category)
		patch.Category = &cat
	}

	if err := h.ItemService.UpdateItem(r.Context(), id, patch); err != nil {
		h.Logger.Warnw("Update: service error", "id", id, "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete удаляет товар и каскадно его напоминания.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.ItemService.DeleteItem(r.Context(), id); err != nil {
		h.Logger.Warnw("Delete: service error", "id", id, "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
