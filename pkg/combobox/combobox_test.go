package combobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomOptions() []Option {
	return []Option{
		{Fields: map[string]string{"value": "101", "label": "Номер 101 (Standard)"}},
		{Fields: map[string]string{"value": "102", "label": "Номер 102 (Standard)"}},
		{Fields: map[string]string{"value": "201", "label": "Номер 201 (Deluxe)"}},
		{Fields: map[string]string{"value": "301", "label": "Люкс 301", "name": "Suite 301"}},
	}
}

func TestFiltered_SubstringCaseInsensitive(t *testing.T) {
	c := New(roomOptions(), "", Config{})

	c.InputChanged("deluxe")
	filtered := c.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "201", filtered[0].Get("value"))

	// Поиск по fallback-ключу name
	c.InputChanged("suite")
	filtered = c.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "301", filtered[0].Get("value"))
}

func TestFiltered_ReturnsExactlyMatchingOptions(t *testing.T) {
	c := New(roomOptions(), "", Config{})
	c.InputChanged("standard")

	filtered := c.Filtered()
	require.Len(t, filtered, 2)
	for _, opt := range filtered {
		assert.Contains(t, opt.Get("label"), "Standard")
	}
}

func TestFiltered_RecomputedFromFullList(t *testing.T) {
	c := New(roomOptions(), "", Config{})

	// Сначала сужаем до одной опции, потом расширяем фильтр обратно -
	// результат должен считаться от полного списка
	c.InputChanged("люкс")
	require.Len(t, c.Filtered(), 1)

	c.InputChanged("номер")
	assert.Len(t, c.Filtered(), 3)
}

func TestHandleKey_ClosedListOpensOnEnterSpaceArrowDown(t *testing.T) {
	for _, key := range []Key{KeyEnter, KeySpace, KeyArrowDown} {
		c := New(roomOptions(), "", Config{})
		c.HandleKey(key)
		assert.True(t, c.IsOpen())
	}
}

func TestHandleKey_HighlightMovesCircularly(t *testing.T) {
	c := New(roomOptions(), "", Config{})
	c.HandleKey(KeyEnter)
	require.True(t, c.IsOpen())
	require.Equal(t, 0, c.Highlight())

	c.HandleKey(KeyArrowDown)
	assert.Equal(t, 1, c.Highlight())

	// Вверх с первой опции - на последнюю
	c.HandleKey(KeyArrowUp)
	c.HandleKey(KeyArrowUp)
	assert.Equal(t, 3, c.Highlight())

	// Вниз с последней - на первую
	c.HandleKey(KeyArrowDown)
	assert.Equal(t, 0, c.Highlight())
}

func TestHandleKey_EnterCommitsHighlighted(t *testing.T) {
	var changed string
	c := New(roomOptions(), "", Config{OnChange: func(v string) { changed = v }})

	c.HandleKey(KeyEnter)
	c.HandleKey(KeyArrowDown)
	c.HandleKey(KeyEnter)

	assert.Equal(t, "102", c.Value())
	assert.Equal(t, "102", changed)
	assert.False(t, c.IsOpen())
	assert.Empty(t, c.Filter())
}

func TestHandleKey_EscapeClosesAndKeepsSelection(t *testing.T) {
	c := New(roomOptions(), "201", Config{})

	c.HandleKey(KeyEnter)
	c.InputChanged("номер")
	c.HandleKey(KeyEscape)

	assert.False(t, c.IsOpen())
	assert.Empty(t, c.Filter())
	assert.Equal(t, "201", c.Value())
}

func TestOutsideClickAndBlur_CloseAndClearFilter(t *testing.T) {
	c := New(roomOptions(), "101", Config{})
	c.HandleKey(KeyEnter)
	c.InputChanged("люкс")

	c.OutsideClick()
	assert.False(t, c.IsOpen())
	assert.Empty(t, c.Filter())
	assert.Equal(t, "101", c.Value())

	c.HandleKey(KeySpace)
	c.InputChanged("люкс")
	c.Blur()
	assert.False(t, c.IsOpen())
	assert.Empty(t, c.Filter())
}

func TestClear_InvokesOnChangeWithoutOpening(t *testing.T) {
	var changed *string
	c := New(roomOptions(), "201", Config{OnChange: func(v string) { changed = &v }})

	c.Clear()

	require.NotNil(t, changed)
	assert.Empty(t, *changed)
	assert.Empty(t, c.Value())
	assert.False(t, c.IsOpen())
}

func TestPlaceholderText(t *testing.T) {
	c := New(roomOptions(), "", Config{})

	assert.Empty(t, c.PlaceholderText())

	c.InputChanged("нет такого номера")
	assert.Equal(t, MsgNoOptions, c.PlaceholderText())

	c.SetLoading(true)
	assert.Equal(t, MsgLoading, c.PlaceholderText())
}

func TestOpenList_HighlightsCurrentValue(t *testing.T) {
	c := New(roomOptions(), "201", Config{})
	c.HandleKey(KeyArrowDown)

	require.True(t, c.IsOpen())
	assert.Equal(t, 2, c.Highlight())
}
