package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"CleanSort/internal/model"
	"CleanSort/internal/policy"
	"CleanSort/internal/service"
)

// SettingHandler обрабатывает настройки, справочники и сервисные
// операции над данными.
type SettingHandler struct {
	SettingService *service.SettingService
	Logger         *zap.SugaredLogger
}

// NewSettingHandler создаёт хендлер настроек
func NewSettingHandler(settingService *service.SettingService, logger *zap.SugaredLogger) *SettingHandler {
	return &SettingHandler{SettingService: settingService, Logger: logger}
}

// GetCity возвращает выбранный город.
func (h *SettingHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	city, err := h.SettingService.SelectedCity(r.Context())
	if err != nil {
		h.Logger.Errorw("GetCity: service error", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"city": city})
}

// PutCity сохраняет выбранный город.
func (h *SettingHandler) PutCity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		City string `json:"city"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.City == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.SettingService.SetSelectedCity(r.Context(), req.City); err != nil {
		h.Logger.Errorw("PutCity: service error", "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetOnboarding сообщает, пройден ли онбординг.
func (h *SettingHandler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	done, err := h.SettingService.OnboardingCompleted(r.Context())
	if err != nil {
		h.Logger.Errorw("GetOnboarding: service error", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"completed": done})
}

// CompleteOnboarding помечает онбординг пройденным.
func (h *SettingHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	if err := h.SettingService.CompleteOnboarding(r.Context()); err != nil {
		h.Logger.Errorw("CompleteOnboarding: service error", "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetAll возвращает все настройки.
func (h *SettingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.SettingService.GetAll(r.Context())
	if err != nil {
		h.Logger.Errorw("GetAll: service error", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// PutAll сохраняет произвольные настройки (last-write-wins).
func (h *SettingHandler) PutAll(w http.ResponseWriter, r *http.Request) {
	var prefs map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.SettingService.PutAll(r.Context(), prefs); err != nil {
		h.Logger.Errorw("PutAll: service error", "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearAll стирает все пользовательские данные.
func (h *SettingHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.SettingService.ClearAll(r.Context()); err != nil {
		h.Logger.Errorw("ClearAll: service error", "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export отдаёт выгрузку всех коллекций.
func (h *SettingHandler) Export(w http.ResponseWriter, r *http.Request) {
	payload, err := h.SettingService.Export(r.Context())
	if err != nil {
		h.Logger.Errorw("Export: service error", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// Guides возвращает городские правила утилизации по фильтру.
func (h *SettingHandler) Guides(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		// без явного города — правила выбранного города
		selected, err := h.SettingService.SelectedCity(r.Context())
		if err == nil {
			city = selected
		}
	}
	guides := policy.Guides(policy.GuideFilter{
		City:     city,
		Category: model.WasteCategory(r.URL.Query().Get("category")),
		Query:    r.URL.Query().Get("q"),
	})
	writeJSON(w, http.StatusOK, guides)
}

// CategoryDTO — категория с дефолтным интервалом для клиента.
type CategoryDTO struct {
	Value model.WasteCategory `json:"value"`
	policy.CategoryInfo
}

// Categories возвращает таблицу категорий и пресеты.
func (h *SettingHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats := make([]CategoryDTO, 0, len(model.Categories))
	for _, c := range model.Categories {
		info, _ := policy.Info(c)
		cats = append(cats, CategoryDTO{Value: c, CategoryInfo: info})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"categories":      cats,
		"quick_intervals": policy.QuickIntervals,
		"snooze_options":  policy.SnoozeOptions,
	})
}
