package utils

import (
	"sort"
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// PinyinKey 把中文姓名转成拼音串，作为排序键；非汉字字符原样保留。
func PinyinKey(name string) string {
	args := pinyin.NewArgs()

	var b strings.Builder
	for _, r := range name {
		syllables := pinyin.SinglePinyin(r, args)
		if len(syllables) > 0 {
			b.WriteString(syllables[0])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SortByPinyin 按拼音对姓名做确定性排序，导出报表用。
func SortByPinyin(names []string) {
	sort.Slice(names, func(i, j int) bool {
		ki, kj := PinyinKey(names[i]), PinyinKey(names[j])
		if ki != kj {
			return ki < kj
		}
		return names[i] < names[j]
	})
}
