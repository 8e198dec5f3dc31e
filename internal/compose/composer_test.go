package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emitRecorder struct {
	texts []string
}

func (r *emitRecorder) emit(text string) { r.texts = append(r.texts, text) }

func TestConsonantTapOpensModifierPopup(t *testing.T) {
	rec := &emitRecorder{}
	c := New(rec.emit)

	popup := c.Tap('ක')
	require.NotNil(t, popup)
	assert.Equal(t, AwaitingModifier, c.State())
	assert.Equal(t, PopupVowelModifiers, popup.Kind)
	assert.Equal(t, 'ක', popup.Base)
	assert.Empty(t, rec.texts, "opening a popup must not emit")

	// Bare consonant first, then the full default sign set.
	require.Len(t, popup.Options, 16)
	assert.Equal(t, "ක", popup.Options[0].Emit)
	assert.Equal(t, "කා", popup.Options[1].Emit)
	assert.Equal(t, "ක්", popup.Options[15].Emit)
}

func TestSelectEmitsClusterAndCloses(t *testing.T) {
	rec := &emitRecorder{}
	c := New(rec.emit)

	c.Tap('ක')
	require.True(t, c.Select(1))
	assert.Equal(t, []string{"කා"}, rec.texts)
	assert.Equal(t, Idle, c.State())
	assert.Nil(t, c.Popup())
}

func TestSelectOutOfRange(t *testing.T) {
	rec := &emitRecorder{}
	c := New(rec.emit)

	assert.False(t, c.Select(0), "no popup open")

	c.Tap('ක')
	assert.False(t, c.Select(-1))
	assert.False(t, c.Select(99))
	assert.Equal(t, AwaitingModifier, c.State(), "failed select keeps the popup")
	assert.Empty(t, rec.texts)
}

func TestDismissEmitsNothing(t *testing.T) {
	rec := &emitRecorder{}
	c := New(rec.emit)

	c.Tap('ක')
	c.Dismiss()
	assert.Equal(t, Idle, c.State())
	assert.Nil(t, c.Popup())
	assert.Empty(t, rec.texts)
}

func TestTapWhilePopupOpenDismissesFirst(t *testing.T) {
	rec := &emitRecorder{}
	c := New(rec.emit)

	c.Tap('ක')
	popup := c.Tap('ග')
	require.NotNil(t, popup)
	assert.Equal(t, 'ග', popup.Base, "second tap replaces the pending base")
	assert.Empty(t, rec.texts, "implicit dismissal must not emit the first base")
}

func TestPlainKeyEmitsDirectly(t *testing.T) {
	rec := &emitRecorder{}
	c := New(rec.emit)

	popup := c.Tap('ඉ')
	assert.Nil(t, popup, "ungrouped vowel emits without a popup")
	assert.Equal(t, []string{"ඉ"}, rec.texts)
	assert.Equal(t, Idle, c.State())
}

func TestVowelVariantGroup(t *testing.T) {
	rec := &emitRecorder{}
	c := New(rec.emit)

	popup := c.Tap('අ')
	require.NotNil(t, popup)
	assert.Equal(t, PopupVowelVariants, popup.Kind)
	require.Len(t, popup.Options, 4)
	assert.Equal(t, "අ", popup.Options[0].Emit)
	assert.Equal(t, "ඈ", popup.Options[3].Emit)

	require.True(t, c.Select(2))
	assert.Equal(t, []string{"ඇ"}, rec.texts)
}

func TestFocusLostClearsPendingBase(t *testing.T) {
	rec := &emitRecorder{}
	c := New(rec.emit)

	c.Tap('ම')
	c.FocusLost()
	assert.Equal(t, Idle, c.State())
	assert.Empty(t, rec.texts)
	assert.False(t, c.Select(0), "no stale popup after focus loss")
}

func TestRestrictedModifierSets(t *testing.T) {
	// ආ and its siblings only take hal kirima.
	assert.Equal(t, []rune{halKirima}, ModifiersFor('ආ'))
	// අ takes a reduced set of eight signs.
	assert.Len(t, ModifiersFor('අ'), 8)
	// Plain consonants take the full default set.
	assert.Len(t, ModifiersFor('ක'), 15)
}

func TestCombineLogicalOrder(t *testing.T) {
	// Pre-base signs still store after the consonant.
	assert.Equal(t, "කෙ", Combine('ක', 'ෙ'))
	assert.Equal(t, "ක", Combine('ක', 0))
}

func TestClassification(t *testing.T) {
	assert.True(t, IsConsonant('ක'))
	assert.False(t, IsConsonant('අ'))
	assert.True(t, IsVowel('අ'))
	assert.False(t, IsVowel('ක'))
	assert.False(t, IsConsonant('a'))
}
