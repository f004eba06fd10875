package novel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Sanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Chapter 1: The Beginning", "chapter_1_the_beginning"},
		{"My Novel", "my_novel"},
		{"Fire & Ice (part 2)", "fire_ice_part_2"},
		{"a--b__c", "a_b_c"},
		{"  spaced  out  ", "spaced_out"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), "Sanitize(%q)", tt.in)
	}
}

func Test_SlugFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://novels.test/mi-esposo-es-un-billonario/", "mi-esposo-es-un-billonario"},
		{"https://novels.test/a/b/c", "c"},
		{"https://novels.test/", "novel"},
		{"://bad", "novel"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SlugFromURL(tt.in), "SlugFromURL(%q)", tt.in)
	}
}

func Test_PadWidth(t *testing.T) {
	assert.Equal(t, 1, PadWidth(0))
	assert.Equal(t, 1, PadWidth(9))
	assert.Equal(t, 2, PadWidth(10))
	assert.Equal(t, 3, PadWidth(342))
	assert.Equal(t, 4, PadWidth(1200))
}

func Test_ChapterFileName(t *testing.T) {
	ch := Chapter{Index: 7, Title: "Chapter 7: The Duel"}

	assert.Equal(t, "007_chapter_7_the_duel.html", ch.FileName(3))
	assert.Equal(t, "7_chapter_7_the_duel.html", ch.FileName(1))

	untitled := Chapter{Index: 2}
	assert.Equal(t, "02.html", untitled.FileName(2))
}

func Test_NovelOutputFile(t *testing.T) {
	n := Novel{Title: "My Novel"}
	assert.Equal(t, "my_novel.html", n.OutputFile())

	fromURL := Novel{HomeURL: "https://novels.test/some-story/"}
	assert.Equal(t, "some_story.html", fromURL.OutputFile())

	assert.Equal(t, "novel.html", Novel{}.OutputFile())
}
