package localization

import "golang.org/x/text/language"

// MessageCatalog holds the localized templates used to compose one audit
// diagnostic line. Catalogs are immutable values; selecting a different
// language yields a different catalog rather than mutating a shared table.
type MessageCatalog struct {
	Explanation      string
	SystemPath       string
	Sdk64Only        string
	Sdk32Only        string
	BothCorrectOrder string
	BothWrongOrder   string
	NotFound         string
}

var englishCatalog = MessageCatalog{
	Explanation:      " The 64-bit SDK must precede the 32-bit SDK in the search path so 64-bit builds resolve the correct toolchain.",
	SystemPath:       "\nPATH: <color=grey>%s</color>",
	Sdk64Only:        "<color=lime>64-bit SDK found in the search path: </color>",
	Sdk32Only:        "<color=red>Only the 32-bit SDK is in the search path: </color>",
	BothCorrectOrder: "<color=lime>Both SDKs found, 64-bit listed first: </color>",
	BothWrongOrder:   "<color=orange>The 32-bit SDK precedes the 64-bit SDK in the search path: </color>",
	NotFound:         "<color=red>No SDK installation found in the search path.</color>",
}

var japaneseCatalog = MessageCatalog{
	Explanation:      " 64 ビットビルドが正しいツールチェーンを解決するには、検索パスで 64 ビット SDK が 32 ビット SDK より前にある必要があります。",
	SystemPath:       "\nPATH: <color=grey>%s</color>",
	Sdk64Only:        "<color=lime>検索パスに 64 ビット SDK が見つかりました: </color>",
	Sdk32Only:        "<color=red>検索パスに 32 ビット SDK しかありません: </color>",
	BothCorrectOrder: "<color=lime>両方の SDK が見つかり、64 ビットが先にあります: </color>",
	BothWrongOrder:   "<color=orange>検索パスで 32 ビット SDK が 64 ビット SDK より前にあります: </color>",
	NotFound:         "<color=red>検索パスに SDK が見つかりません。</color>",
}

var simplifiedChineseCatalog = MessageCatalog{
	Explanation:      " 64 位 SDK 必须在搜索路径中位于 32 位 SDK 之前，64 位构建才能解析到正确的工具链。",
	SystemPath:       "\nPATH: <color=grey>%s</color>",
	Sdk64Only:        "<color=lime>在搜索路径中找到 64 位 SDK: </color>",
	Sdk32Only:        "<color=red>搜索路径中只有 32 位 SDK: </color>",
	BothCorrectOrder: "<color=lime>两个 SDK 均已找到，64 位在前: </color>",
	BothWrongOrder:   "<color=orange>搜索路径中 32 位 SDK 位于 64 位 SDK 之前: </color>",
	NotFound:         "<color=red>在搜索路径中未找到 SDK。</color>",
}

var koreanCatalog = MessageCatalog{
	Explanation:      " 64비트 빌드가 올바른 툴체인을 찾으려면 검색 경로에서 64비트 SDK가 32비트 SDK보다 앞에 있어야 합니다.",
	SystemPath:       "\nPATH: <color=grey>%s</color>",
	Sdk64Only:        "<color=lime>검색 경로에서 64비트 SDK를 찾았습니다: </color>",
	Sdk32Only:        "<color=red>검색 경로에 32비트 SDK만 있습니다: </color>",
	BothCorrectOrder: "<color=lime>두 SDK를 모두 찾았으며 64비트가 먼저 있습니다: </color>",
	BothWrongOrder:   "<color=orange>검색 경로에서 32비트 SDK가 64비트 SDK보다 앞에 있습니다: </color>",
	NotFound:         "<color=red>검색 경로에서 SDK를 찾을 수 없습니다.</color>",
}

var supportedLanguageTags = []language.Tag{
	language.English,
	language.Japanese,
	language.SimplifiedChinese,
	language.Korean,
}

var catalogsByLanguage = map[language.Tag]MessageCatalog{
	language.English:           englishCatalog,
	language.Japanese:          japaneseCatalog,
	language.SimplifiedChinese: simplifiedChineseCatalog,
	language.Korean:            koreanCatalog,
}
