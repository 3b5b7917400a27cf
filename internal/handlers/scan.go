package handlers

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"CleanSort/internal/service"
)

// Лимит снимка чека.
const maxReceiptSizeMB = 10

// ScanHandler обрабатывает загрузку снимка чека.
type ScanHandler struct {
	ScanService *service.ScanService
	Logger      *zap.SugaredLogger
}

// NewScanHandler создаёт хендлер сканирования
func NewScanHandler(scanService *service.ScanService, logger *zap.SugaredLogger) *ScanHandler {
	return &ScanHandler{ScanService: scanService, Logger: logger}
}

// ProcessReceipt принимает multipart-форму с полем image (и
// опциональным city) и возвращает распознанные позиции. Отказ
// распознавания не является ошибкой запроса: вернётся резервный набор
// с флагом fallback.
func (h *ScanHandler) ProcessReceipt(w http.ResponseWriter, r *http.Request) {
	maxBody := int64(maxReceiptSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("ProcessReceipt: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	imageFile, header, err := r.FormFile("image")
	if err != nil {
		h.Logger.Warnw("ProcessReceipt: missing image file", "error", err)
		http.Error(w, "missing image file", http.StatusBadRequest)
		return
	}
	defer imageFile.Close()

	image, err := io.ReadAll(imageFile)
	if err != nil {
		h.Logger.Warnw("ProcessReceipt: failed to read image", "error", err)
		http.Error(w, "failed to read image", http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	city := r.FormValue("city")

	res := h.ScanService.ProcessReceipt(r.Context(), image, mimeType, city)
	writeJSON(w, http.StatusOK, res)
}
