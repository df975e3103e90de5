package combobox

import "strings"

// Фиксированные сообщения для пустого списка и состояния загрузки
const (
	MsgNoOptions = "Ничего не найдено"
	MsgLoading   = "Загрузка..."
)

// Key клавиша, обрабатываемая контролом
type Key int

const (
	KeyEnter Key = iota
	KeySpace
	KeyArrowDown
	KeyArrowUp
	KeyEscape
)

// Option один элемент выпадающего списка
// Fields хранит произвольные атрибуты: ключ значения, отображаемый текст и
// дополнительные поля, по которым выполняется поиск
type Option struct {
	Fields map[string]string
}

// Get возвращает значение поля (пустая строка, если поля нет)
func (o Option) Get(key string) string {
	return o.Fields[key]
}

// Config конфигурация контрола
type Config struct {
	// ValueKey ключ поля-значения (по умолчанию "value")
	ValueKey string
	// DisplayKey ключ отображаемого поля (по умолчанию "label")
	DisplayKey string
	// SearchKeys поля для текстового поиска
	// По умолчанию: DisplayKey + стандартные fallback-ключи "name", "title"
	SearchKeys []string
	// OnChange вызывается при выборе значения и при очистке
	OnChange func(value string)
}

const (
	defaultValueKey   = "value"
	defaultDisplayKey = "label"
)

// Combobox состояние выпадающего списка с текстовым фильтром
// Фильтрация пересчитывается синхронно на каждый вызов Filtered -
// кэширования нет, списки небольшие (<1000 элементов)
type Combobox struct {
	cfg       Config
	options   []Option
	loading   bool
	open      bool
	filter    string
	highlight int
	value     string
}

// New создает контрол с текущим значением value
func New(options []Option, value string, cfg Config) *Combobox {
	if cfg.ValueKey == "" {
		cfg.ValueKey = defaultValueKey
	}
	if cfg.DisplayKey == "" {
		cfg.DisplayKey = defaultDisplayKey
	}
	if len(cfg.SearchKeys) == 0 {
		cfg.SearchKeys = []string{cfg.DisplayKey, "name", "title"}
	}
	return &Combobox{
		cfg:     cfg,
		options: options,
		value:   value,
	}
}

// SetOptions заменяет список опций
func (c *Combobox) SetOptions(options []Option) {
	c.options = options
	c.highlight = 0
}

// SetLoading переключает состояние загрузки
func (c *Combobox) SetLoading(loading bool) {
	c.loading = loading
}

// Value текущее выбранное значение
func (c *Combobox) Value() string { return c.value }

// IsOpen открыт ли список
func (c *Combobox) IsOpen() bool { return c.open }

// Filter текущий текст фильтра
func (c *Combobox) Filter() string { return c.filter }

// Highlight индекс подсвеченной опции в отфильтрованном списке
func (c *Combobox) Highlight() int { return c.highlight }

// Filtered возвращает опции, подходящие под текущий фильтр
// Поиск: регистронезависимое вхождение подстроки в любое из SearchKeys
// Всегда считается от полного списка, а не от предыдущего результата
func (c *Combobox) Filtered() []Option {
	if c.filter == "" {
		return c.options
	}

	needle := strings.ToLower(c.filter)
	matched := make([]Option, 0, len(c.options))

	for _, opt := range c.options {
		for _, key := range c.cfg.SearchKeys {
			if strings.Contains(strings.ToLower(opt.Get(key)), needle) {
				matched = append(matched, opt)
				break
			}
		}
	}

	return matched
}

// InputChanged обрабатывает ввод в поле фильтра
// Подсветка сбрасывается на первую опцию нового результата
func (c *Combobox) InputChanged(text string) {
	c.filter = text
	c.highlight = 0
}

// HandleKey обрабатывает нажатие клавиши
//
// Закрытый список: Enter, Space и ArrowDown открывают список
// Открытый список: ArrowDown/ArrowUp двигают подсветку по кругу,
// Enter выбирает подсвеченную опцию, Escape закрывает без изменения выбора
func (c *Combobox) HandleKey(k Key) {
	if !c.open {
		if k == KeyEnter || k == KeySpace || k == KeyArrowDown {
			c.openList()
		}
		return
	}

	switch k {
	case KeyArrowDown:
		c.moveHighlight(1)
	case KeyArrowUp:
		c.moveHighlight(-1)
	case KeyEnter:
		c.commitHighlighted()
	case KeyEscape:
		c.closeList()
	}
}

// OutsideClick закрывает список и сбрасывает фильтр, выбор не меняется
func (c *Combobox) OutsideClick() {
	c.closeList()
}

// Blur потеря фокуса, поведение как у OutsideClick
func (c *Combobox) Blur() {
	c.closeList()
}

// Clear сбрасывает выбранное значение не открывая список
func (c *Combobox) Clear() {
	c.value = ""
	if c.cfg.OnChange != nil {
		c.cfg.OnChange("")
	}
}

// PlaceholderText текст-заглушка для текущего состояния списка
// Пустая строка означает, что есть опции для отображения
func (c *Combobox) PlaceholderText() string {
	if c.loading {
		return MsgLoading
	}
	if len(c.Filtered()) == 0 {
		return MsgNoOptions
	}
	return ""
}

func (c *Combobox) openList() {
	c.open = true
	c.highlight = 0

	// Если текущее значение видно в списке, подсвечиваем его
	for i, opt := range c.Filtered() {
		if opt.Get(c.cfg.ValueKey) == c.value {
			c.highlight = i
			break
		}
	}
}

func (c *Combobox) closeList() {
	c.open = false
	c.filter = ""
	c.highlight = 0
}

func (c *Combobox) moveHighlight(delta int) {
	n := len(c.Filtered())
	if n == 0 {
		return
	}
	c.highlight = ((c.highlight+delta)%n + n) % n
}

func (c *Combobox) commitHighlighted() {
	filtered := c.Filtered()
	if len(filtered) == 0 {
		return
	}
	if c.highlight >= len(filtered) {
		c.highlight = 0
	}

	c.value = filtered[c.highlight].Get(c.cfg.ValueKey)
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(c.value)
	}
	c.closeList()
}
