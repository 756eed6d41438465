package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"RutasVerdes-App/internal/domain/model"
)

func TestSelection(t *testing.T) {
	t.Run("初期状態は未選択", func(t *testing.T) {
		s := NewSelection()
		_, ok := s.SelectedID()
		assert.False(t, ok)
		assert.False(t, s.IsSelected(""))
	})

	t.Run("別のルートを選択すると置き換わる", func(t *testing.T) {
		s := NewSelection()
		s.Select(model.Route{ID: "A"})
		s.Select(model.Route{ID: "B"})

		id, ok := s.SelectedID()
		assert.True(t, ok)
		assert.Equal(t, "B", id)
		assert.False(t, s.IsSelected("A"))
		assert.True(t, s.IsSelected("B"))
	})

	t.Run("同じルートを再選択しても選択されたまま", func(t *testing.T) {
		s := NewSelection()
		s.Select(model.Route{ID: "A"})
		s.Select(model.Route{ID: "A"})
		assert.True(t, s.IsSelected("A"))
	})

	t.Run("解除すると未選択に戻る", func(t *testing.T) {
		s := NewSelection()
		s.Select(model.Route{ID: "A"})
		s.Clear()
		_, ok := s.SelectedID()
		assert.False(t, ok)
	})
}
