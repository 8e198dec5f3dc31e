package compose

// Sinhala script tables for the on-screen keyboard. Dependent vowel signs
// combine with a consonant to make one glyph cluster; the signs ෙ ේ ෛ ො
// ෝ ෞ render before the consonant glyph but are stored after it in
// logical order.

const halKirima = '්'

var independentVowels = []rune{
	'අ', 'ආ', 'ඇ', 'ඈ', 'ඉ', 'ඊ', 'උ', 'ඌ', 'එ', 'ඒ', 'ඔ', 'ඕ',
}

var consonants = []rune{
	'ක', 'ඛ', 'ග', 'ඝ', 'ඟ', 'ච', 'ඡ', 'ජ', 'ඣ', 'ඤ', 'ඥ',
	'ට', 'ඨ', 'ඩ', 'ඪ', 'ණ', 'ඬ', 'ත', 'ථ', 'ද', 'ධ', 'න', 'ඳ',
	'ප', 'ඵ', 'බ', 'භ', 'ම', 'ඹ', 'ය', 'ර', 'ල', 'ව', 'ශ', 'ෂ',
	'ස', 'හ', 'ළ', 'ෆ',
}

// defaultModifiers applies to every consonant without an entry in
// validModifiers. Order is the popup's display order; the bare consonant
// slot is added separately at the front.
var defaultModifiers = []rune{
	'ා', 'ැ', 'ෑ', 'ි', 'ී', 'ු', 'ූ', 'ෘ', 'ෙ', 'ේ', 'ෛ', 'ො', 'ෝ', 'ෞ', halKirima,
}

// validModifiers restricts letters that take fewer signs than the default
// set. Independent vowels only ever carry hal kirima, except අ.
var validModifiers = map[rune][]rune{
	'අ': {'ා', 'ැ', 'ෑ', 'ි', 'ී', 'ු', 'ූ', halKirima},
	'ආ': {halKirima},
	'ඇ': {halKirima},
	'ඈ': {halKirima},
	'ඉ': {halKirima},
	'ඊ': {halKirima},
	'උ': {halKirima},
	'ඌ': {halKirima},
	'ඍ': {halKirima},
	'ඎ': {halKirima},
	'ඏ': {halKirima},
	'ඐ': {halKirima},
	'ඞ': {halKirima},
}

// vowelGroups lists the variant popup contents for plain vowel keys.
var vowelGroups = map[rune][]rune{
	'අ': {'අ', 'ආ', 'ඇ', 'ඈ'},
}

var consonantSet = buildRuneSet(consonants)

var vowelSet = buildRuneSet(independentVowels)

func buildRuneSet(list []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(list))
	for _, ch := range list {
		set[ch] = struct{}{}
	}
	return set
}

// IsConsonant reports whether the rune takes the vowel-modifier popup.
func IsConsonant(ch rune) bool {
	_, ok := consonantSet[ch]
	return ok
}

// IsVowel reports whether the rune is an independent vowel.
func IsVowel(ch rune) bool {
	_, ok := vowelSet[ch]
	return ok
}

// ModifiersFor returns the dependent signs a letter accepts.
func ModifiersFor(base rune) []rune {
	if mods, ok := validModifiers[base]; ok {
		return mods
	}
	return defaultModifiers
}

// Combine joins a base letter with a dependent vowel sign into the glyph
// cluster the keyboard emits. The sign always follows the base in logical
// order; the renderer is what draws pre-base signs to the left.
func Combine(base, modifier rune) string {
	if modifier == 0 {
		return string(base)
	}
	return string([]rune{base, modifier})
}
