package lexicon

// DefaultStopwords returns the built-in Chinese stopword list used when no
// stopword file is available.
func DefaultStopwords() []string {
	return []string{
		"的", "了", "在", "是", "我", "有", "和", "就", "不", "人", "都", "一", "一个", "上", "也", "很", "到", "说", "要", "去",
		"你", "会", "着", "没有", "看", "好", "自己", "这", "那", "它", "她", "他", "们", "这个", "那个", "这些", "那些",
		"什么", "怎么", "为什么", "哪个", "多少", "几", "第一", "第二", "第三", "又", "再", "更", "还", "可以", "能够", "应该",
	}
}

// DefaultSynonymGroups returns the built-in festival and culture synonym
// groups used when no synonym file is available.
func DefaultSynonymGroups() [][]string {
	return [][]string{
		{"春节", "新年", "农历新年", "春节假期"},
		{"中秋节", "月饼节", "仲秋节", "八月十五"},
		{"端午节", "龙舟节", "端午", "端阳"},
		{"清明节", "扫墓节", "踏青节"},
		{"元宵节", "灯节", "上元节"},
		{"七夕节", "乞巧节", "中国情人节"},
		{"重阳节", "登高节", "敬老节"},
		{"传统节日", "民俗节日", "民间节日"},
		{"传统文化", "中华文化", "中国文化"},
		{"民间艺术", "民俗艺术", "传统艺术"},
	}
}
