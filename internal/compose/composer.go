// Package compose drives the on-screen keyboard's two-step character
// entry: a consonant tap opens a popup of that consonant joined with each
// dependent vowel sign, and the selection emits one finished cluster.
package compose

// State of the composer. AwaitingModifier means a popup is open for a
// pending base letter.
type State int

const (
	Idle State = iota
	AwaitingModifier
)

// PopupKind distinguishes the two popup flavors.
type PopupKind int

const (
	// PopupVowelVariants lists related forms of a plain vowel key.
	PopupVowelVariants PopupKind = iota
	// PopupVowelModifiers lists a consonant joined with each dependent
	// vowel sign, the bare consonant first.
	PopupVowelModifiers
)

// Option is one selectable cell in a popup. Label is what the UI draws;
// Emit is the text committed when it is chosen.
type Option struct {
	Label string
	Emit  string
}

// Popup is a plain value describing the open selection surface. The UI
// layer decides where and how to draw it; the composer only tracks which
// one is open and what each cell emits.
type Popup struct {
	Kind    PopupKind
	Base    rune
	Options []Option
}

// Composer is the finite-state machine behind the virtual keyboard.
// Emitted text goes through the emit callback; nothing is emitted on
// dismissal.
type Composer struct {
	state State
	popup *Popup
	emit  func(string)
}

func New(emit func(string)) *Composer {
	return &Composer{emit: emit}
}

func (c *Composer) State() State { return c.state }

// Popup returns the currently open popup, or nil.
func (c *Composer) Popup() *Popup { return c.popup }

// Tap handles a key tap on the main grid. Consonants and grouped vowels
// open a popup (implicitly dismissing any open one without emitting);
// every other key emits immediately.
func (c *Composer) Tap(key rune) *Popup {
	c.dismiss()

	switch {
	case IsConsonant(key):
		c.open(&Popup{
			Kind:    PopupVowelModifiers,
			Base:    key,
			Options: modifierOptions(key),
		})
	case IsVowel(key):
		group, ok := vowelGroups[key]
		if !ok {
			c.send(string(key))
			return nil
		}
		c.open(&Popup{
			Kind:    PopupVowelVariants,
			Base:    key,
			Options: variantOptions(group),
		})
	default:
		c.send(string(key))
		return nil
	}
	return c.popup
}

// Select commits the option at index in the open popup and closes it.
// Returns false when no popup is open or the index is out of range.
func (c *Composer) Select(index int) bool {
	if c.popup == nil || index < 0 || index >= len(c.popup.Options) {
		return false
	}
	text := c.popup.Options[index].Emit
	c.dismiss()
	c.send(text)
	return true
}

// Dismiss closes the popup without emitting: tap outside its bounds.
func (c *Composer) Dismiss() {
	c.dismiss()
}

// FocusLost behaves like a dismissal; the keyboard losing focus must not
// leave a pending base behind.
func (c *Composer) FocusLost() {
	c.dismiss()
}

func (c *Composer) open(p *Popup) {
	c.popup = p
	c.state = AwaitingModifier
}

func (c *Composer) dismiss() {
	c.popup = nil
	c.state = Idle
}

func (c *Composer) send(text string) {
	if c.emit != nil && text != "" {
		c.emit(text)
	}
}

func modifierOptions(base rune) []Option {
	mods := ModifiersFor(base)
	options := make([]Option, 0, len(mods)+1)
	options = append(options, Option{Label: string(base), Emit: string(base)})
	for _, mod := range mods {
		combined := Combine(base, mod)
		options = append(options, Option{Label: combined, Emit: combined})
	}
	return options
}

func variantOptions(group []rune) []Option {
	options := make([]Option, 0, len(group))
	for _, variant := range group {
		options = append(options, Option{Label: string(variant), Emit: string(variant)})
	}
	return options
}
