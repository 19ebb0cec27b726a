package romaji

// sokuon is the small tsu, the geminate-consonant marker.
const sokuon = 'ッ'

// encodeTable holds one romanization system's kana→romaji data. single is
// total over the supported repertoire; digraph only carries the recognized
// yōon pairs and is consulted first.
type encodeTable struct {
	single  map[rune]string
	digraph map[[2]rune]string
}

var hepburnTable = encodeTable{
	single: map[rune]string{
		'ア': "a", 'イ': "i", 'ウ': "u", 'エ': "e", 'オ': "o",
		'カ': "ka", 'キ': "ki", 'ク': "ku", 'ケ': "ke", 'コ': "ko",
		'サ': "sa", 'シ': "shi", 'ス': "su", 'セ': "se", 'ソ': "so",
		'タ': "ta", 'チ': "chi", 'ツ': "tsu", 'テ': "te", 'ト': "to",
		'ナ': "na", 'ニ': "ni", 'ヌ': "nu", 'ネ': "ne", 'ノ': "no",
		'ハ': "ha", 'ヒ': "hi", 'フ': "fu", 'ヘ': "he", 'ホ': "ho",
		'マ': "ma", 'ミ': "mi", 'ム': "mu", 'メ': "me", 'モ': "mo",
		'ヤ': "ya", 'ユ': "yu", 'ヨ': "yo",
		'ラ': "ra", 'リ': "ri", 'ル': "ru", 'レ': "re", 'ロ': "ro",
		'ワ': "wa", 'ヲ': "wo", 'ン': "n",
		'ガ': "ga", 'ギ': "gi", 'グ': "gu", 'ゲ': "ge", 'ゴ': "go",
		'ザ': "za", 'ジ': "ji", 'ズ': "zu", 'ゼ': "ze", 'ゾ': "zo",
		'ダ': "da", 'ヂ': "ji", 'ヅ': "zu", 'デ': "de", 'ド': "do",
		'バ': "ba", 'ビ': "bi", 'ブ': "bu", 'ベ': "be", 'ボ': "bo",
		'パ': "pa", 'ピ': "pi", 'プ': "pu", 'ペ': "pe", 'ポ': "po",
		'ァ': "a", 'ィ': "i", 'ゥ': "u", 'ェ': "e", 'ォ': "o",
		'ャ': "ya", 'ュ': "yu", 'ョ': "yo", 'ヮ': "wa",
		'ー': "-",
	},
	digraph: map[[2]rune]string{
		{'キ', 'ャ'}: "kya", {'キ', 'ュ'}: "kyu", {'キ', 'ョ'}: "kyo",
		{'シ', 'ャ'}: "sha", {'シ', 'ュ'}: "shu", {'シ', 'ョ'}: "sho",
		{'チ', 'ャ'}: "cha", {'チ', 'ュ'}: "chu", {'チ', 'ョ'}: "cho",
		{'ニ', 'ャ'}: "nya", {'ニ', 'ュ'}: "nyu", {'ニ', 'ョ'}: "nyo",
		{'ヒ', 'ャ'}: "hya", {'ヒ', 'ュ'}: "hyu", {'ヒ', 'ョ'}: "hyo",
		{'ミ', 'ャ'}: "mya", {'ミ', 'ュ'}: "myu", {'ミ', 'ョ'}: "myo",
		{'リ', 'ャ'}: "rya", {'リ', 'ュ'}: "ryu", {'リ', 'ョ'}: "ryo",
		{'ギ', 'ャ'}: "gya", {'ギ', 'ュ'}: "gyu", {'ギ', 'ョ'}: "gyo",
		{'ジ', 'ャ'}: "ja", {'ジ', 'ュ'}: "ju", {'ジ', 'ョ'}: "jo",
		{'ビ', 'ャ'}: "bya", {'ビ', 'ュ'}: "byu", {'ビ', 'ョ'}: "byo",
		{'ピ', 'ャ'}: "pya", {'ピ', 'ュ'}: "pyu", {'ピ', 'ョ'}: "pyo",
		{'ヂ', 'ャ'}: "ja", {'ヂ', 'ュ'}: "ju", {'ヂ', 'ョ'}: "jo",
		{'テ', 'ィ'}: "ti", {'デ', 'ィ'}: "di",
		{'ト', 'ゥ'}: "tu", {'ド', 'ゥ'}: "du",
		{'フ', 'ァ'}: "fa", {'フ', 'ィ'}: "fi", {'フ', 'ェ'}: "fe", {'フ', 'ォ'}: "fo",
		{'ウ', 'ィ'}: "wi", {'ウ', 'ェ'}: "we", {'ウ', 'ォ'}: "wo",
		{'シ', 'ェ'}: "she", {'ジ', 'ェ'}: "je", {'チ', 'ェ'}: "che",
	},
}

// Kunrei shares most of the Hepburn tables; only the entries below
// diverge. The full kunreiTable is assembled in init.
var kunreiSingleOverrides = map[rune]string{
	'シ': "si", 'チ': "ti", 'ツ': "tu", 'フ': "hu", 'ジ': "zi", 'ヂ': "zi",
}

var kunreiDigraphOverrides = map[[2]rune]string{
	{'シ', 'ャ'}: "sya", {'シ', 'ュ'}: "syu", {'シ', 'ョ'}: "syo",
	{'チ', 'ャ'}: "tya", {'チ', 'ュ'}: "tyu", {'チ', 'ョ'}: "tyo",
	{'ジ', 'ャ'}: "zya", {'ジ', 'ュ'}: "zyu", {'ジ', 'ョ'}: "zyo",
	{'ヂ', 'ャ'}: "zya", {'ヂ', 'ュ'}: "zyu", {'ヂ', 'ョ'}: "zyo",
	{'シ', 'ェ'}: "sye", {'ジ', 'ェ'}: "zye", {'チ', 'ェ'}: "tye",
}

var kunreiTable encodeTable

func init() {
	kunreiTable = encodeTable{
		single:  make(map[rune]string, len(hepburnTable.single)),
		digraph: make(map[[2]rune]string, len(hepburnTable.digraph)),
	}
	for k, v := range hepburnTable.single {
		kunreiTable.single[k] = v
	}
	for k, v := range kunreiSingleOverrides {
		kunreiTable.single[k] = v
	}
	for k, v := range hepburnTable.digraph {
		kunreiTable.digraph[k] = v
	}
	for k, v := range kunreiDigraphOverrides {
		kunreiTable.digraph[k] = v
	}
}

// decodeLiterals is the ordered romaji→hiragana table. Every literal that
// is a prefix of another literal comes after it: three-letter yōon first,
// then two-letter morae, then single vowels, the nasal n and the long
// vowel dash. The first-listed kana wins for duplicate literals ("ji",
// "zu"), so じ and ず shadow ぢ and づ.
var decodeLiterals = []struct {
	romaji string
	kana   string
}{
	{"kya", "きゃ"}, {"kyu", "きゅ"}, {"kyo", "きょ"},
	{"sha", "しゃ"}, {"shu", "しゅ"}, {"sho", "しょ"},
	{"cha", "ちゃ"}, {"chu", "ちゅ"}, {"cho", "ちょ"},
	{"nya", "にゃ"}, {"nyu", "にゅ"}, {"nyo", "にょ"},
	{"hya", "ひゃ"}, {"hyu", "ひゅ"}, {"hyo", "ひょ"},
	{"mya", "みゃ"}, {"myu", "みゅ"}, {"myo", "みょ"},
	{"rya", "りゃ"}, {"ryu", "りゅ"}, {"ryo", "りょ"},
	{"gya", "ぎゃ"}, {"gyu", "ぎゅ"}, {"gyo", "ぎょ"},
	{"ja", "じゃ"}, {"ju", "じゅ"}, {"jo", "じょ"},
	{"bya", "びゃ"}, {"byu", "びゅ"}, {"byo", "びょ"},
	{"pya", "ぴゃ"}, {"pyu", "ぴゅ"}, {"pyo", "ぴょ"},
	{"shi", "し"}, {"chi", "ち"}, {"tsu", "つ"},
	{"ka", "か"}, {"ki", "き"}, {"ku", "く"}, {"ke", "け"}, {"ko", "こ"},
	{"sa", "さ"}, {"su", "す"}, {"se", "せ"}, {"so", "そ"},
	{"ta", "た"}, {"te", "て"}, {"to", "と"},
	{"na", "な"}, {"ni", "に"}, {"nu", "ぬ"}, {"ne", "ね"}, {"no", "の"},
	{"ha", "は"}, {"hi", "ひ"}, {"hu", "ふ"}, {"fu", "ふ"}, {"he", "へ"}, {"ho", "ほ"},
	{"ma", "ま"}, {"mi", "み"}, {"mu", "む"}, {"me", "め"}, {"mo", "も"},
	{"ya", "や"}, {"yu", "ゆ"}, {"yo", "よ"},
	{"ra", "ら"}, {"ri", "り"}, {"ru", "る"}, {"re", "れ"}, {"ro", "ろ"},
	{"wa", "わ"}, {"wo", "を"},
	{"ga", "が"}, {"gi", "ぎ"}, {"gu", "ぐ"}, {"ge", "げ"}, {"go", "ご"},
	{"za", "ざ"}, {"ji", "じ"}, {"zu", "ず"}, {"ze", "ぜ"}, {"zo", "ぞ"},
	{"da", "だ"}, {"ji", "ぢ"}, {"zu", "づ"}, {"de", "で"}, {"do", "ど"},
	{"ba", "ば"}, {"bi", "び"}, {"bu", "ぶ"}, {"be", "べ"}, {"bo", "ぼ"},
	{"pa", "ぱ"}, {"pi", "ぴ"}, {"pu", "ぷ"}, {"pe", "ぺ"}, {"po", "ぽ"},
	{"a", "あ"}, {"i", "い"}, {"u", "う"}, {"e", "え"}, {"o", "お"},
	{"n", "ん"},
	{"-", "ー"},
}
