package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"

	"CleanSort/internal/model"
)

// DefaultGeminiURL — эндпоинт generateContent модели gemini-2.5-flash.
const DefaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"

// ErrNoAPIKey — клиент создан без ключа; вызовов к API не будет.
var ErrNoAPIKey = errors.New("gemini api key is not configured")

// GeminiClient — реализация Client поверх REST API Gemini.
type GeminiClient struct {
	apiKey string
	apiURL string
	http   *http.Client
	logger *zap.SugaredLogger
}

var _ Client = (*GeminiClient)(nil)

// NewGeminiClient создаёт клиент. Пустой apiURL заменяется на DefaultGeminiURL.
func NewGeminiClient(apiKey, apiURL string, logger *zap.SugaredLogger) *GeminiClient {
	if apiURL == "" {
		apiURL = DefaultGeminiURL
	}
	return &GeminiClient{
		apiKey: apiKey,
		apiURL: apiURL,
		http:   &http.Client{Timeout: 60 * time.Second},
		logger: logger,
	}
}

// Запрос/ответ generateContent. Поля — ровно те, что использует клиент.
type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string        `json:"text,omitempty"`
	InlineData *geminiInline `json:"inline_data,omitempty"`
}

type geminiInline struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// rawParsedItem — позиция в том виде, как её возвращает модель.
type rawParsedItem struct {
	Name             string  `json:"name"`
	Quantity         string  `json:"quantity"`
	Category         string  `json:"category"`
	DisposalInterval int     `json:"disposalInterval"`
	Confidence       float64 `json:"confidence"`
}

// ProcessReceipt отправляет снимок чека в Gemini и разбирает ответ.
// Ошибки не маскируются: резервный набор подставляет вызывающий слой.
func (c *GeminiClient) ProcessReceipt(ctx context.Context, image []byte, mimeType, city string) ([]ParsedItem, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: buildPrompt(city)},
				{InlineData: &geminiInline{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
		GenerationConfig: generationConfig{
			Temperature:     0.1,
			TopK:            32,
			TopP:            1,
			MaxOutputTokens: 4096,
		},
	}

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"?key="+c.apiKey, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini api error: status %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("empty response from gemini")
	}
	if gr.Candidates[0].FinishReason == "MAX_TOKENS" {
		c.logger.Warnw("gemini response truncated by token limit")
	}

	return parseModelOutput(gr.Candidates[0].Content.Parts[0].Text)
}

// parseModelOutput разбирает текст модели в список позиций.
// Markdown-ограждения срезаются; невалидный JSON чинится jsonrepair.
func parseModelOutput(text string) ([]ParsedItem, error) {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var rawItems []rawParsedItem
	if err := json.Unmarshal([]byte(clean), &rawItems); err != nil {
		fixed, repairErr := jsonrepair.JSONRepair(clean)
		if repairErr != nil {
			return nil, fmt.Errorf("parse model output: %w", err)
		}
		if err := json.Unmarshal([]byte(fixed), &rawItems); err != nil {
			return nil, fmt.Errorf("parse repaired model output: %w", err)
		}
	}

	items := make([]ParsedItem, 0, len(rawItems))
	for _, ri := range rawItems {
		if strings.TrimSpace(ri.Name) == "" {
			continue
		}
		cat := model.WasteCategory(normalizeCategory(ri.Category))
		if !cat.Valid() {
			cat = model.CategoryDry
		}
		// Отрицательный интервал обнуляем: ноль позже заменится
		// дефолтом категории.
		interval := ri.DisposalInterval
		if interval < 0 {
			interval = 0
		}
		items = append(items, ParsedItem{
			Name:       strings.TrimSpace(ri.Name),
			Quantity:   ri.Quantity,
			Category:   cat,
			Interval:   interval,
			Confidence: ri.Confidence,
		})
	}
	return items, nil
}
