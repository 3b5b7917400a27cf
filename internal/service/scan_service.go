package service

import (
	"context"

	"go.uber.org/zap"

	"CleanSort/internal/ocr"
)

// ScanService — сценарий "сканировать чек": распознавание снимка и
// пакетное создание подтверждённых позиций.
type ScanService struct {
	client   ocr.Client
	settings *SettingService
	logger   *zap.SugaredLogger
}

// NewScanService создаёт сервис сканирования.
func NewScanService(client ocr.Client, settings *SettingService, logger *zap.SugaredLogger) *ScanService {
	return &ScanService{client: client, settings: settings, logger: logger}
}

// ScanResult — результат распознавания чека.
type ScanResult struct {
	Items []ocr.ParsedItem `json:"items"`
	// Fallback истинен, когда распознавание не удалось и возвращён
	// резервный набор.
	Fallback bool `json:"fallback"`
}

// ProcessReceipt распознаёт чек. Любой отказ коллаборатора гасится на
// этой границе и превращается в резервный набор: сканирование не
// ломается из-за внешнего API.
func (s *ScanService) ProcessReceipt(ctx context.Context, image []byte, mimeType, city string) *ScanResult {
	if city == "" {
		stored, err := s.settings.SelectedCity(ctx)
		if err != nil {
			s.logger.Warnw("failed to load selected city, using default prompt", "error", err)
		} else {
			city = stored
		}
	}

	items, err := s.client.ProcessReceipt(ctx, image, mimeType, city)
	if err != nil {
		s.logger.Warnw("receipt recognition failed, returning sample results", "error", err)
		return &ScanResult{Items: ocr.SampleResults(), Fallback: true}
	}
	return &ScanResult{Items: items, Fallback: false}
}

// ToItemInputs превращает подтверждённые позиции в входы создания
// товаров для CreateItemsBulk.
func ToItemInputs(parsed []ocr.ParsedItem) []ItemInput {
	inputs := make([]ItemInput, 0, len(parsed))
	for _, p := range parsed {
		inputs = append(inputs, ItemInput{
			Name:     p.Name,
			Category: p.Category,
			Quantity: 1,
			Unit:     p.Quantity,
			Interval: p.Interval,
		})
	}
	return inputs
}
