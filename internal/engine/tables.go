package engine

// toneKey is one of the five internal tone identifiers used throughout the
// dispatcher, independent of which literal key (Telex letter or VNI digit)
// the user pressed to request it.
type toneKey rune

const (
	toneAcute toneKey = 's' // sắc
	toneGrave toneKey = 'f' // huyền
	toneHook  toneKey = 'r' // hỏi
	toneTilde toneKey = 'x' // ngã
	toneDot   toneKey = 'j' // nặng
)

// vowelPair is a (from, to) entry in a VOWEL_TRANSFORMS row.
type vowelPair struct {
	from rune
	to   rune
}

// untransformEntry is what VOWEL_UNTRANSFORMS maps a transformed vowel to:
// the trigger key that produced it and the original character it replaced.
type untransformEntry struct {
	key      rune
	original rune
}

// baseVowels is the set of the twelve Vietnamese base vowel letters
// (including ă â ê ô ơ ư), both cases, untoned.
var baseVowels = map[rune]bool{
	'a': true, 'ă': true, 'â': true, 'e': true, 'ê': true, 'i': true,
	'o': true, 'ô': true, 'ơ': true, 'u': true, 'ư': true, 'y': true,
	'A': true, 'Ă': true, 'Â': true, 'E': true, 'Ê': true, 'I': true,
	'O': true, 'Ô': true, 'Ơ': true, 'U': true, 'Ư': true, 'Y': true,
}

// nucleusOnlyVowels always carry the tone when present: ă â ê ô ơ ư and
// their toned/upper variants.
var nucleusOnlyVowels = map[rune]bool{}

// vowelToToned[base][tone] = toned code point, case-preserving.
var vowelToToned = map[rune]map[toneKey]rune{
	'a': {toneAcute: 'á', toneGrave: 'à', toneHook: 'ả', toneTilde: 'ã', toneDot: 'ạ'},
	'A': {toneAcute: 'Á', toneGrave: 'À', toneHook: 'Ả', toneTilde: 'Ã', toneDot: 'Ạ'},
	'ă': {toneAcute: 'ắ', toneGrave: 'ằ', toneHook: 'ẳ', toneTilde: 'ẵ', toneDot: 'ặ'},
	'Ă': {toneAcute: 'Ắ', toneGrave: 'Ằ', toneHook: 'Ẳ', toneTilde: 'Ẵ', toneDot: 'Ặ'},
	'â': {toneAcute: 'ấ', toneGrave: 'ầ', toneHook: 'ẩ', toneTilde: 'ẫ', toneDot: 'ậ'},
	'Â': {toneAcute: 'Ấ', toneGrave: 'Ầ', toneHook: 'Ẩ', toneTilde: 'Ẫ', toneDot: 'Ậ'},
	'e': {toneAcute: 'é', toneGrave: 'è', toneHook: 'ẻ', toneTilde: 'ẽ', toneDot: 'ẹ'},
	'E': {toneAcute: 'É', toneGrave: 'È', toneHook: 'Ẻ', toneTilde: 'Ẽ', toneDot: 'Ẹ'},
	'ê': {toneAcute: 'ế', toneGrave: 'ề', toneHook: 'ể', toneTilde: 'ễ', toneDot: 'ệ'},
	'Ê': {toneAcute: 'Ế', toneGrave: 'Ề', toneHook: 'Ể', toneTilde: 'Ễ', toneDot: 'Ệ'},
	'i': {toneAcute: 'í', toneGrave: 'ì', toneHook: 'ỉ', toneTilde: 'ĩ', toneDot: 'ị'},
	'I': {toneAcute: 'Í', toneGrave: 'Ì', toneHook: 'Ỉ', toneTilde: 'Ĩ', toneDot: 'Ị'},
	'o': {toneAcute: 'ó', toneGrave: 'ò', toneHook: 'ỏ', toneTilde: 'õ', toneDot: 'ọ'},
	'O': {toneAcute: 'Ó', toneGrave: 'Ò', toneHook: 'Ỏ', toneTilde: 'Õ', toneDot: 'Ọ'},
	'ô': {toneAcute: 'ố', toneGrave: 'ồ', toneHook: 'ổ', toneTilde: 'ỗ', toneDot: 'ộ'},
	'Ô': {toneAcute: 'Ố', toneGrave: 'Ồ', toneHook: 'Ổ', toneTilde: 'Ỗ', toneDot: 'Ộ'},
	'ơ': {toneAcute: 'ớ', toneGrave: 'ờ', toneHook: 'ở', toneTilde: 'ỡ', toneDot: 'ợ'},
	'Ơ': {toneAcute: 'Ớ', toneGrave: 'Ờ', toneHook: 'Ở', toneTilde: 'Ỡ', toneDot: 'Ợ'},
	'u': {toneAcute: 'ú', toneGrave: 'ù', toneHook: 'ủ', toneTilde: 'ũ', toneDot: 'ụ'},
	'U': {toneAcute: 'Ú', toneGrave: 'Ù', toneHook: 'Ủ', toneTilde: 'Ũ', toneDot: 'Ụ'},
	'ư': {toneAcute: 'ứ', toneGrave: 'ừ', toneHook: 'ử', toneTilde: 'ữ', toneDot: 'ự'},
	'Ư': {toneAcute: 'Ứ', toneGrave: 'Ừ', toneHook: 'Ử', toneTilde: 'Ữ', toneDot: 'Ự'},
	'y': {toneAcute: 'ý', toneGrave: 'ỳ', toneHook: 'ỷ', toneTilde: 'ỹ', toneDot: 'ỵ'},
	'Y': {toneAcute: 'Ý', toneGrave: 'Ỳ', toneHook: 'Ỷ', toneTilde: 'Ỹ', toneDot: 'Ỵ'},
}

// tonedToBase[toned] = (base, tone). Computed as the inverse of
// vowelToToned at package initialization.
var tonedToBase = map[rune]struct {
	base rune
	tone toneKey
}{}

func init() {
	for base, tones := range vowelToToned {
		for tone, toned := range tones {
			tonedToBase[toned] = struct {
				base rune
				tone toneKey
			}{base, tone}
		}
	}

	for _, ch := range []rune{
		'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ', 'Ă', 'Ắ', 'Ằ', 'Ẳ', 'Ẵ', 'Ặ',
		'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ', 'Â', 'Ấ', 'Ầ', 'Ẩ', 'Ẫ', 'Ậ',
		'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ', 'Ê', 'Ế', 'Ề', 'Ể', 'Ễ', 'Ệ',
		'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ', 'Ô', 'Ố', 'Ồ', 'Ổ', 'Ỗ', 'Ộ',
		'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ', 'Ơ', 'Ớ', 'Ờ', 'Ở', 'Ỡ', 'Ợ',
		'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự', 'Ư', 'Ứ', 'Ừ', 'Ử', 'Ữ', 'Ự',
	} {
		nucleusOnlyVowels[ch] = true
	}
}

// vowelUntransforms maps a transformed vowel back to the literal trigger key
// (in the Telex alphabet) that produced it and the original character.
// VNI's distinct trigger digits are rekeyed into vniUntransform below.
var vowelUntransforms = map[rune]untransformEntry{
	'â': {'a', 'a'}, 'Â': {'a', 'A'},
	'ê': {'e', 'e'}, 'Ê': {'e', 'E'},
	'ô': {'o', 'o'}, 'Ô': {'o', 'O'},
	'ă': {'w', 'a'}, 'Ă': {'w', 'A'},
	'ơ': {'w', 'o'}, 'Ơ': {'w', 'O'},
	'ư': {'w', 'u'}, 'Ư': {'w', 'U'},
	'ắ': {'w', 'á'}, 'ằ': {'w', 'à'}, 'ẳ': {'w', 'ả'}, 'ẵ': {'w', 'ã'}, 'ặ': {'w', 'ạ'},
	'Ắ': {'w', 'Á'}, 'Ằ': {'w', 'À'}, 'Ẳ': {'w', 'Ả'}, 'Ẵ': {'w', 'Ã'}, 'Ặ': {'w', 'Ạ'},
	'ớ': {'w', 'ó'}, 'ờ': {'w', 'ò'}, 'ở': {'w', 'ỏ'}, 'ỡ': {'w', 'õ'}, 'ợ': {'w', 'ọ'},
	'Ớ': {'w', 'Ó'}, 'Ờ': {'w', 'Ò'}, 'Ở': {'w', 'Ỏ'}, 'Ỡ': {'w', 'Õ'}, 'Ợ': {'w', 'Ọ'},
	'ứ': {'w', 'ú'}, 'ừ': {'w', 'ù'}, 'ử': {'w', 'ủ'}, 'ữ': {'w', 'ũ'}, 'ự': {'w', 'ụ'},
	'Ứ': {'w', 'Ú'}, 'Ừ': {'w', 'Ù'}, 'Ử': {'w', 'Ủ'}, 'Ữ': {'w', 'Ũ'}, 'Ự': {'w', 'Ụ'},
	'ấ': {'a', 'á'}, 'ầ': {'a', 'à'}, 'ẩ': {'a', 'ả'}, 'ẫ': {'a', 'ã'}, 'ậ': {'a', 'ạ'},
	'Ấ': {'a', 'Á'}, 'Ầ': {'a', 'À'}, 'Ẩ': {'a', 'Ả'}, 'Ẫ': {'a', 'Ã'}, 'Ậ': {'a', 'Ạ'},
	'ế': {'e', 'é'}, 'ề': {'e', 'è'}, 'ể': {'e', 'ẻ'}, 'ễ': {'e', 'ẽ'}, 'ệ': {'e', 'ẹ'},
	'Ế': {'e', 'É'}, 'Ề': {'e', 'È'}, 'Ể': {'e', 'Ẻ'}, 'Ễ': {'e', 'Ẽ'}, 'Ệ': {'e', 'Ẹ'},
	'ố': {'o', 'ó'}, 'ồ': {'o', 'ò'}, 'ổ': {'o', 'ỏ'}, 'ỗ': {'o', 'õ'}, 'ộ': {'o', 'ọ'},
	'Ố': {'o', 'Ó'}, 'Ồ': {'o', 'Ò'}, 'Ổ': {'o', 'Ỏ'}, 'Ỗ': {'o', 'Õ'}, 'Ộ': {'o', 'Ọ'},
}

// vniUntransform mirrors vowelUntransforms with VNI's own trigger digits:
// '6' for circumflex (â ê ô), '8' for breve (ă), '7' for horn (ơ ư).
// Built in init below, after tonedToBase exists: rekeying a toned breve
// needs baseVowel, which reads that table.
var vniUntransform = map[rune]untransformEntry{}

func init() {
	for r, e := range vowelUntransforms {
		nk := e.key
		switch e.key {
		case 'a', 'e', 'o':
			nk = '6'
		case 'w':
			if lower(baseVowel(r)) == 'ă' {
				nk = '8'
			} else {
				nk = '7'
			}
		}
		vniUntransform[r] = untransformEntry{key: nk, original: e.original}
	}
}
