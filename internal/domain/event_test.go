package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Categories(t *testing.T) {
	e := &Event{AwardCategories: " MVP , Best Helper ,, MVP "}

	assert.Equal(t, []string{"MVP", "Best Helper", "MVP"}, e.Categories())
}

func TestEvent_Categories_Empty(t *testing.T) {
	e := &Event{}

	assert.Nil(t, e.Categories())
}

func TestEvent_Elapsed(t *testing.T) {
	now := time.Now()

	past := &Event{DateTime: now.Add(-time.Hour)}
	assert.True(t, past.Elapsed(now))

	future := &Event{DateTime: now.Add(time.Hour)}
	assert.False(t, future.Elapsed(now))

	// An end time extends the window past the start.
	end := now.Add(time.Hour)
	running := &Event{DateTime: now.Add(-time.Hour), EndTime: &end}
	assert.False(t, running.Elapsed(now))
}

func TestEvent_IsOrganizer(t *testing.T) {
	e := &Event{OrganizerID: "u1"}

	assert.True(t, e.IsOrganizer("u1"))
	assert.False(t, e.IsOrganizer("u2"))
	assert.False(t, e.IsOrganizer(""))
}

func TestDefaultEndorsementMessage(t *testing.T) {
	assert.Equal(t, "Awarded for MVP during Demo Day", DefaultEndorsementMessage("MVP", "Demo Day"))
	assert.Equal(t, "Awarded for MVP", DefaultEndorsementMessage("MVP", ""))
}

func TestAvatarURL(t *testing.T) {
	assert.Equal(t, "https://api.dicebear.com/7.x/adventurer/svg?seed=Alice", AvatarURL("Alice"))
}
