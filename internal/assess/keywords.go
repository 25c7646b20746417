package assess

// Keyword tables are process-wide immutable values. They are bilingual
// because the catalogs this tool reviews mix English and Chinese copy;
// token-set matching only fires on space-delimited languages, while the
// suspicious-claim check matches substrings and covers both.

var exaggerationKeywords = wordSet(
	"惊艳", "完美", "令人难以置信", "难以置信", "革命性", "必备", "神器", "全能",
	"游戏规则改变者", "无瑕", "史上最佳", "终极", "奇迹", "无与伦比", "轰动", "绝对", "效果惊人",
	"amazing", "perfect", "incredible", "unbelievable", "revolutionary",
	"must-have", "game-changer", "flawless", "best ever", "ultimate",
	"miracle", "unparalleled", "sensational", "absolutely", "stunning", "fantastic",
)

var vagueKeywords = wordSet(
	"好", "不错", "很棒", "极好", "有效", "高质量", "优秀", "卓越", "显著", "轻松", "智能",
	"方便", "强大", "全面",
	"great", "nice", "good", "wonderful", "fantastic", "effective", "easy", "smart",
	"high-quality", "excellent", "superb", "significant", "powerful", "comprehensive",
)

// suspiciousClaimKeywords are matched as substrings of the lowercased
// text, so multi-character Chinese terms fire without tokenization.
var suspiciousClaimKeywords = []string{
	"能量", "量子", "保证", "运势", "风水", "磁疗", "红外线",
	"宇宙", "奇迹", "根治", "特效", "永恒",
	"quantum", "guaranteed", "cosmic energy", "miracle cure", "feng shui",
	"magnetic therapy", "eternal",
}

// stopWords is the English stop-word list applied before vectorization,
// matching the filtering the similarity baseline was tuned against.
var stopWords = wordSet(
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "did", "do",
	"does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"him", "his", "how", "i", "if", "in", "into", "is", "it", "its",
	"itself", "just", "me", "more", "most", "my", "myself", "no", "nor",
	"not", "now", "of", "off", "on", "once", "only", "or", "other", "our",
	"ours", "out", "over", "own", "same", "she", "should", "so", "some",
	"such", "than", "that", "the", "their", "theirs", "them", "then",
	"there", "these", "they", "this", "those", "through", "to", "too",
	"under", "until", "up", "very", "was", "we", "were", "what", "when",
	"where", "which", "while", "who", "whom", "why", "will", "with", "you",
	"your", "yours", "yourself",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
