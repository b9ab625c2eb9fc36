package utils

import (
	"strings"
	"testing"
)

func TestPinyinKey(t *testing.T) {
	if got := PinyinKey("王藥師"); !strings.HasPrefix(got, "wang") {
		t.Errorf("王 的拼音应以 wang 开头，实际=%s", got)
	}
	// 非汉字字符原样保留
	if got := PinyinKey("A藥師"); !strings.HasPrefix(got, "A") {
		t.Errorf("非汉字字符应原样保留，实际=%s", got)
	}
}

func TestSortByPinyin(t *testing.T) {
	names := []string{"王藥師", "陳藥師", "李藥師"}
	SortByPinyin(names)

	want := []string{"陳藥師", "李藥師", "王藥師"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("期望顺序=%v，实际=%v", want, names)
		}
	}
}

func TestSortByPinyin_Deterministic(t *testing.T) {
	// 拼音串相同前缀时按剩余字符比较，排序结果可重现
	names := []string{"李藥師", "李藥師B", "李藥師A"}
	SortByPinyin(names)

	if names[0] != "李藥師" || names[1] != "李藥師A" || names[2] != "李藥師B" {
		t.Errorf("同音名字应按原始字符串决胜，实际=%v", names)
	}
}
