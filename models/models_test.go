package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveWinners(t *testing.T) {
	t.Run("explicit flags take precedence over scores", func(t *testing.T) {
		m := Match{Results: []Result{
			{PlayerID: "p1", Score: 100},
			{PlayerID: "p2", Score: 5, IsWinner: true},
		}}
		assert.Equal(t, []string{"p2"}, m.EffectiveWinners())
	})

	t.Run("no flags falls back to max score", func(t *testing.T) {
		m := Match{Results: []Result{
			{PlayerID: "p1", Score: 42},
			{PlayerID: "p2", Score: 17},
		}}
		assert.Equal(t, []string{"p1"}, m.EffectiveWinners())
	})

	t.Run("score tie produces several winners, stored flags untouched", func(t *testing.T) {
		m := Match{Results: []Result{
			{PlayerID: "p1", Score: 10},
			{PlayerID: "p2", Score: 10},
		}}
		assert.Equal(t, []string{"p1", "p2"}, m.EffectiveWinners())
		assert.False(t, m.Results[0].IsWinner)
		assert.False(t, m.Results[1].IsWinner)
	})

	t.Run("no results means no winners", func(t *testing.T) {
		m := Match{}
		assert.Nil(t, m.EffectiveWinners())
	})
}

func TestValidationErrors(t *testing.T) {
	err := ValidationErrors{"name": "required", "date": "in the future"}
	assert.Contains(t, err.Error(), "date: in the future")
	assert.Contains(t, err.Error(), "name: required")
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, PriorityHigh.Valid())
	assert.True(t, PriorityMedium.Valid())
	assert.True(t, PriorityLow.Valid())
	assert.False(t, Priority("urgent").Valid())
}
