package player

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/manara-app/manara/internal/assist"
	"github.com/manara-app/manara/internal/i18n"
	ctrl "github.com/manara-app/manara/internal/player"
	"github.com/manara-app/manara/internal/ui/theme"
)

const sidebarWidth = 32

func (p *PlayerScreen) View(width, height int) string {
	sw := sidebarWidth
	if width < 90 {
		sw = 24
	}
	cw := width - sw - 2
	if cw < 20 {
		cw = 20
	}

	sidebar := lipgloss.NewStyle().
		Width(sw).
		Height(height).
		Border(lipgloss.RoundedBorder(), false, true, false, false).
		BorderForeground(theme.Border).
		Render(p.renderSidebar(sw - 2))

	content := lipgloss.NewStyle().
		Width(cw).
		Height(height).
		Padding(0, 1).
		Render(p.renderContent(cw - 2))

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
}

func (p *PlayerScreen) renderSidebar(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(" " + i18n.T("chapters", p.lang)))
	b.WriteString("\n\n")

	items := p.sidebarItems()
	activeLesson := p.sess.ActiveLesson().ID
	expanded := p.sess.ExpandedChapter()

	for i, item := range items {
		selected := p.focus == focusSidebar && i == p.cursor

		if item.lesson == nil {
			marker := "▸"
			if item.chapterID == expanded {
				marker = "▾"
			}
			title := p.chapterTitle(item.chapterID)
			line := fmt.Sprintf(" %s %s", marker, title)
			style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
			if selected {
				style = style.Foreground(theme.Primary)
			}
			b.WriteString(style.MaxWidth(width).Render(line))
			b.WriteString("\n")
			continue
		}

		lesson := item.lesson
		check := " "
		if p.progressSvc != nil && p.progressSvc.IsCompleted(lesson.ID) {
			check = "✓"
		}
		prefix := "   "
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if lesson.ID == activeLesson {
			prefix = " ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		if selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%s %s  %s", prefix, check, lesson.Title.In(p.lang), lesson.Duration)
		b.WriteString(style.MaxWidth(width).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func (p *PlayerScreen) chapterTitle(chapterID string) string {
	for _, ch := range p.course.Chapters {
		if ch.ID == chapterID {
			return ch.Title.In(p.lang)
		}
	}
	return chapterID
}

func (p *PlayerScreen) renderContent(width int) string {
	var sections []string

	lesson := p.sess.ActiveLesson()
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(lesson.Title.In(p.lang))
	sections = append(sections, title)
	sections = append(sections, p.renderTabBar())

	switch p.sess.ActiveTab() {
	case ctrl.TabSummary:
		sections = append(sections, p.renderSummaryTab(width))
	case ctrl.TabQuiz:
		sections = append(sections, p.renderQuizTab(width))
	case ctrl.TabVideo:
		sections = append(sections, p.renderVideoTab(width))
	case ctrl.TabDiscussion:
		sections = append(sections, p.renderDiscussionTab(width))
	}

	if p.inputMode != inputNone {
		sections = append(sections, "\n"+p.input.View())
	}

	return strings.Join(sections, "\n\n")
}

func (p *PlayerScreen) renderTabBar() string {
	tabs := []struct {
		tab   ctrl.Tab
		label string
	}{
		{ctrl.TabSummary, i18n.T("summary", p.lang)},
		{ctrl.TabQuiz, i18n.T("quiz", p.lang)},
		{ctrl.TabVideo, i18n.T("videoAnalysis", p.lang)},
		{ctrl.TabDiscussion, i18n.T("discussion", p.lang)},
	}

	active := p.sess.ActiveTab()
	parts := make([]string, 0, len(tabs))
	for i, t := range tabs {
		label := fmt.Sprintf("%d %s", i+1, t.label)
		if t.tab == active {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Primary).Bold(true).Underline(true).Render(label))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

// renderOpState renders the shared pending/failed presentation for an
// operation slot, or "" when the op is idle or succeeded.
func (p *PlayerScreen) renderOpState(kind ctrl.OpKind, pendingText string) string {
	switch p.sess.Status(kind) {
	case ctrl.StatusPending:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(pendingText)
	case ctrl.StatusFailed:
		return lipgloss.NewStyle().Foreground(theme.Error).Render(p.sess.OpError(kind))
	}
	return ""
}

func (p *PlayerScreen) renderSummaryTab(width int) string {
	var sections []string

	lesson := p.sess.ActiveLesson()
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width).
		Render(lesson.Content.In(p.lang))
	sections = append(sections, body)

	if state := p.renderOpState(ctrl.OpSummary, i18n.T("loading", p.lang)); state != "" {
		sections = append(sections, state)
	} else if summary := p.sess.Summary(); summary != "" {
		header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("✦ " + i18n.T("generateSummary", p.lang))
		text := lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(summary)
		sections = append(sections, header+"\n"+text)
	}

	if state := p.renderOpState(ctrl.OpTutor, i18n.T("loading", p.lang)); state != "" {
		sections = append(sections, state)
	} else if answer := p.sess.TutorResponse(); answer != "" {
		header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("✦ " + i18n.T("askAI", p.lang))
		text := lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(answer)
		sections = append(sections, header+"\n"+text)
	}

	return strings.Join(sections, "\n\n")
}

func (p *PlayerScreen) renderQuizTab(width int) string {
	if state := p.renderOpState(ctrl.OpQuizGen, i18n.T("loading", p.lang)); state != "" {
		return state
	}

	quiz := p.sess.Quiz()
	if quiz == nil {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render(i18n.T("generateQuiz", p.lang) + " — press g")
	}

	if quiz.Submitted {
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("Score: %d / %d", quiz.Score, len(quiz.Questions))))
		b.WriteString("\n")
		if quiz.Perfect() {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
				Render(i18n.T("correct", p.lang)))
			b.WriteString("\n")
		}
		if p.lastAward != nil {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
				Render(fmt.Sprintf("✦ +%d %s", p.lastAward.Points, i18n.T("xp", p.lang))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("press g for a new quiz"))
		return b.String()
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", p.quizIdx+1, len(quiz.Questions))))
	b.WriteString("\n\n")
	b.WriteString(p.mc.View())

	if p.mc.Submitted {
		q := quiz.Questions[p.quizIdx]
		if q.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(width).
				Render(q.Explanation))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("press enter to continue"))
	}

	return b.String()
}

func (p *PlayerScreen) renderVideoTab(width int) string {
	var sections []string

	file := p.sess.VideoFile()
	if file == nil {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Width(width).
			Render(i18n.T("uploadPrompt", p.lang)))
	} else {
		info := fmt.Sprintf("%s  (%s, %d KB)", file.Name, file.MIMEType, len(file.Data)/1024)
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Render(info))
	}

	if state := p.renderOpState(ctrl.OpVideoAnalysis, i18n.T("analyzing", p.lang)); state != "" {
		sections = append(sections, state)
	} else if result := p.sess.VideoResult(); result != "" {
		header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("✦ " + i18n.T("analysisResult", p.lang))
		text := lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(result)
		sections = append(sections, header+"\n"+text)
	}

	return strings.Join(sections, "\n\n")
}

func (p *PlayerScreen) renderDiscussionTab(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(i18n.T("chatAssistant", p.lang)))
	b.WriteString("\n\n")

	if p.chat != nil {
		turns := p.chat.Turns
		if len(turns) > 4 {
			turns = turns[len(turns)-4:]
		}
		for _, turn := range turns {
			label := "Manara"
			if turn.Speaker == assist.SpeakerLearner {
				label = "You"
			}
			line := fmt.Sprintf("%s: %s", label, turn.Text)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(width).Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("press enter to open the chat"))
	return b.String()
}
