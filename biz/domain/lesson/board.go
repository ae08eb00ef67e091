package lesson

import (
	"fmt"
	"strings"

	"github.com/xh-polaris/virtual-classroom/biz/domain/curriculum"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━"

// trackHeader 黑板抬头, 如 MATHS • Year 8
func trackHeader(s *Session) string {
	h := strings.ToUpper(s.Track)
	if s.YearGroup != "" {
		h += " • Year " + s.YearGroup
	}
	return h
}

func overviewBoard(s *Session, t *curriculum.Topic) string {
	var sb strings.Builder
	for i, name := range t.Sections {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, name)
	}
	return fmt.Sprintf("%s\n\n%s\n\n📌 %s\n\n%s\n\n%s\n\n%s\n\n🎯 What we'll learn:\n%s\n%s\n\n🎬 Step 1: Introduction\n\nLet's get started!",
		trackHeader(s), divider, t.Name, divider, t.Description, divider, sb.String(), divider)
}

func sectionBoard(s *Session, i int, name, body string) string {
	footer := "💬 \"Let's continue!\"\n✅ \"You're doing great!\""
	if i == 0 {
		footer = "💬 \"Take your time to understand this.\"\n💡 \"Ask me if you're confused!\""
	}
	return fmt.Sprintf("%s\n\n%s\n\n📖 Section %d/%d\n\n%s\n\n%s\n\n%s\n\n%s\n\n%s",
		trackHeader(s), divider, i+1, s.SectionCount(), divider, name, body, divider, footer)
}

// bannerBoard 例题与练习的黑板, 只有学科抬头
func bannerBoard(s *Session, banner, body string) string {
	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s\n\n%s", strings.ToUpper(s.Track), divider, banner, divider, body)
}
