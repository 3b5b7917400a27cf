package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"CleanSort/internal/model"
	"CleanSort/internal/policy"
	"CleanSort/internal/repo"
)

// ItemService — операции над товарами и планирование напоминаний.
// Планировщик создаёт ровно одно напоминание на товар; удаление товара
// каскадно удаляет его напоминания.
type ItemService struct {
	items     repo.ItemRepository
	reminders repo.ReminderRepository
	logger    *zap.SugaredLogger
}

// NewItemService создаёт сервис товаров.
func NewItemService(items repo.ItemRepository, reminders repo.ReminderRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{items: items, reminders: reminders, logger: logger}
}

// ItemInput — данные создания товара. Interval == 0 означает
// "взять из таблицы категорий".
type ItemInput struct {
	Name     string
	Category model.WasteCategory
	Quantity float64
	Unit     string
	Interval int
}

// validate проверяет вход до любой записи в хранилище (fail fast).
func (in *ItemInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrEmptyName
	}
	if !in.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, in.Category)
	}
	if in.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if in.Interval < 0 {
		return ErrInvalidInterval
	}
	return nil
}

// newItem превращает вход в модель, подставляя дефолты.
func (in *ItemInput) newItem() *model.Item {
	interval := in.Interval
	if interval == 0 {
		interval = policy.DefaultInterval(in.Category)
	}
	quantity := in.Quantity
	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}
	return &model.Item{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(in.Name),
		Category: in.Category,
		Quantity: quantity,
		Unit:     unit,
		Interval: interval,
	}
}

// CreateItem создаёт товар и сразу планирует напоминание. Если
// планирование не удалось — созданный товар удаляется, чтобы не
// оставлять товар без напоминания молча.
func (s *ItemService) CreateItem(ctx context.Context, in ItemInput) (*model.Item, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	it := in.newItem()
	if err := s.items.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	if _, err := s.ScheduleForItem(ctx, it); err != nil {
		s.logger.Errorw("scheduling failed, rolling back item", "item_id", it.ID, "error", err)
		if delErr := s.items.Delete(ctx, it.ID); delErr != nil {
			s.logger.Errorw("orphan item rollback failed", "item_id", it.ID, "error", delErr)
		}
		return nil, fmt.Errorf("schedule reminder: %w", err)
	}

	return it, nil
}

// CreateItemsBulk создаёт пачку товаров. Сначала валидируются и
// сохраняются все товары, затем для каждого планируется напоминание.
// Сбой планирования откатывает всю пачку: напоминание никогда не
// ссылается на несуществующий товар, и ни один товар из пачки не
// остаётся без напоминания.
func (s *ItemService) CreateItemsBulk(ctx context.Context, inputs []ItemInput) ([]model.Item, error) {
	if len(inputs) == 0 {
		return []model.Item{}, nil
	}
	for i := range inputs {
		if err := inputs[i].validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	items := make([]*model.Item, 0, len(inputs))
	for i := range inputs {
		items = append(items, inputs[i].newItem())
	}
	if err := s.items.CreateBatch(ctx, items); err != nil {
		return nil, fmt.Errorf("create items: %w", err)
	}

	for i, it := range items {
		if _, err := s.ScheduleForItem(ctx, it); err != nil {
			s.logger.Errorw("bulk scheduling failed, rolling back batch",
				"item_id", it.ID, "scheduled", i, "total", len(items), "error", err)
			s.rollbackBatch(ctx, items)
			return nil, fmt.Errorf("schedule reminder for %q: %w", it.Name, err)
		}
	}

	res := make([]model.Item, 0, len(items))
	for _, it := range items {
		res = append(res, *it)
	}
	return res, nil
}

// rollbackBatch удаляет созданные в пачке товары и их напоминания.
func (s *ItemService) rollbackBatch(ctx context.Context, items []*model.Item) {
	for _, it := range items {
		if err := s.reminders.DeleteByItemID(ctx, it.ID); err != nil {
			s.logger.Errorw("batch rollback: reminder cleanup failed", "item_id", it.ID, "error", err)
		}
		if err := s.items.Delete(ctx, it.ID); err != nil && err != repo.ErrNotFound {
			s.logger.Errorw("batch rollback: item cleanup failed", "item_id", it.ID, "error", err)
		}
	}
}

// ScheduleForItem создаёт напоминание для уже сохранённого товара.
// Срок считается календарными днями (AddDate), а не секундами:
// суточный интервал попадает на то же время следующего дня независимо
// от перевода часов.
func (s *ItemService) ScheduleForItem(ctx context.Context, it *model.Item) (*model.Reminder, error) {
	if it.Interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if _, err := s.items.GetByID(ctx, it.ID); err != nil {
		if err == repo.ErrNotFound {
			return nil, ErrDanglingItem
		}
		return nil, err
	}

	existing, err := s.reminders.ListByItemID(ctx, it.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrReminderExists
	}

	rem := &model.Reminder{
		ID:       uuid.NewString(),
		ItemID:   it.ID,
		ItemName: it.Name,
		Category: it.Category,
		DueAt:    it.CreatedAt.AddDate(0, 0, it.Interval),
		Status:   model.StatusUpcoming,
	}
	if err := s.reminders.Create(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

// GetItem возвращает товар по id.
func (s *ItemService) GetItem(ctx context.Context, id string) (*model.Item, error) {
	return s.items.GetByID(ctx, id)
}

// ListItems возвращает все товары.
func (s *ItemService) ListItems(ctx context.Context) ([]model.Item, error) {
	return s.items.ListAll(ctx)
}

// ItemPatch — частичное обновление товара. Правка Interval намеренно
// не пересчитывает срок уже созданного напоминания.
type ItemPatch struct {
	Name     *string
	Category *model.WasteCategory
	Quantity *float64
	Unit     *string
	Interval *int
}

// UpdateItem применяет частичное обновление.
func (s *ItemService) UpdateItem(ctx context.Context, id string, patch ItemPatch) error {
	updates := map[string]any{}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return ErrEmptyName
		}
		updates["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidCategory, *patch.Category)
		}
		updates["category"] = *patch.Category
	}
	if patch.Quantity != nil {
		if *patch.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		updates["quantity"] = *patch.Quantity
	}
	if patch.Unit != nil {
		updates["unit"] = *patch.Unit
	}
	if patch.Interval != nil {
		if *patch.Interval <= 0 {
			return ErrInvalidInterval
		}
		updates["interval"] = *patch.Interval
	}
	if len(updates) == 0 {
		return nil
	}
	return s.items.Update(ctx, id, updates)
}

// DeleteItem удаляет товар и каскадно все его напоминания. Сначала
// удаляются напоминания: после любого исхода нельзя прочитать
// напоминание с висячим item_id.
func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.items.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.reminders.DeleteByItemID(ctx, id); err != nil {
		return fmt.Errorf("cascade delete reminders: %w", err)
	}
	return s.items.Delete(ctx, id)
}
