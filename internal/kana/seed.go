package kana

// Row ids are short romaji prefixes. The trailing ん/ン belongs to the "n" row.

var hiraganaTable = []Character{
	{"あ", "a", "a"}, {"い", "a", "i"}, {"う", "a", "u"}, {"え", "a", "e"}, {"お", "a", "o"},
	{"か", "k", "ka"}, {"き", "k", "ki"}, {"く", "k", "ku"}, {"け", "k", "ke"}, {"こ", "k", "ko"},
	{"さ", "sh", "sa"}, {"し", "sh", "shi"}, {"す", "sh", "su"}, {"せ", "sh", "se"}, {"そ", "sh", "so"},
	{"た", "ts", "ta"}, {"ち", "ts", "chi"}, {"つ", "ts", "tsu"}, {"て", "ts", "te"}, {"と", "ts", "to"},
	{"な", "n", "na"}, {"に", "n", "ni"}, {"ぬ", "n", "nu"}, {"ね", "n", "ne"}, {"の", "n", "no"},
	{"は", "h", "ha"}, {"ひ", "h", "hi"}, {"ふ", "h", "fu"}, {"へ", "h", "he"}, {"ほ", "h", "ho"},
	{"ま", "m", "ma"}, {"み", "m", "mi"}, {"む", "m", "mu"}, {"め", "m", "me"}, {"も", "m", "mo"},
	{"や", "y", "ya"}, {"ゆ", "y", "yu"}, {"よ", "y", "yo"},
	{"ら", "r", "ra"}, {"り", "r", "ri"}, {"る", "r", "ru"}, {"れ", "r", "re"}, {"ろ", "r", "ro"},
	{"わ", "w", "wa"}, {"を", "w", "wo"},
	{"ん", "n", "n"},
}

var katakanaTable = []Character{
	{"ア", "a", "a"}, {"イ", "a", "i"}, {"ウ", "a", "u"}, {"エ", "a", "e"}, {"オ", "a", "o"},
	{"カ", "k", "ka"}, {"キ", "k", "ki"}, {"ク", "k", "ku"}, {"ケ", "k", "ke"}, {"コ", "k", "ko"},
	{"サ", "sh", "sa"}, {"シ", "sh", "shi"}, {"ス", "sh", "su"}, {"セ", "sh", "se"}, {"ソ", "sh", "so"},
	{"タ", "ts", "ta"}, {"チ", "ts", "chi"}, {"ツ", "ts", "tsu"}, {"テ", "ts", "te"}, {"ト", "ts", "to"},
	{"ナ", "n", "na"}, {"ニ", "n", "ni"}, {"ヌ", "n", "nu"}, {"ネ", "n", "ne"}, {"ノ", "n", "no"},
	{"ハ", "h", "ha"}, {"ヒ", "h", "hi"}, {"フ", "h", "fu"}, {"ヘ", "h", "he"}, {"ホ", "h", "ho"},
	{"マ", "m", "ma"}, {"ミ", "m", "mi"}, {"ム", "m", "mu"}, {"メ", "m", "me"}, {"モ", "m", "mo"},
	{"ヤ", "y", "ya"}, {"ユ", "y", "yu"}, {"ヨ", "y", "yo"},
	{"ラ", "r", "ra"}, {"リ", "r", "ri"}, {"ル", "r", "ru"}, {"レ", "r", "re"}, {"ロ", "r", "ro"},
	{"ワ", "w", "wa"}, {"ヲ", "w", "wo"},
	{"ン", "n", "n"},
}
