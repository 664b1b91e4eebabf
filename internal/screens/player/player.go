// Package player implements the lesson player screen: the curriculum
// sidebar, the content tabs, and the dispatch of AI operations through
// the session controller.
package player

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/manara-app/manara/internal/assist"
	"github.com/manara-app/manara/internal/catalog"
	ctrl "github.com/manara-app/manara/internal/player"
	"github.com/manara-app/manara/internal/progress"
	"github.com/manara-app/manara/internal/rewards"
	"github.com/manara-app/manara/internal/router"
	"github.com/manara-app/manara/internal/screen"
	chatscreen "github.com/manara-app/manara/internal/screens/chat"
	"github.com/manara-app/manara/internal/store"
	"github.com/manara-app/manara/internal/ui/components"
	"github.com/manara-app/manara/internal/ui/layout"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusContent
)

type inputKind int

const (
	inputNone inputKind = iota
	inputTutor
	inputVideo
)

// sidebarItem is one row of the flattened curriculum tree.
type sidebarItem struct {
	chapterID string
	lesson    *catalog.Lesson
}

// PlayerScreen is the lesson player.
type PlayerScreen struct {
	course      catalog.Course
	client      *assist.Client
	events      store.EventRepo
	progressSvc *progress.Service
	rewardsSvc  *rewards.Service
	chat        *assist.ChatSession
	lang        catalog.Language

	sess *ctrl.Session

	focus     focusArea
	cursor    int
	inputMode inputKind
	input     components.TextInput

	// quiz answering state for the current attempt
	quizIdx int
	mc      components.MultiChoice

	lastAward *rewards.Award
}

var _ screen.Screen = (*PlayerScreen)(nil)
var _ screen.KeyHintProvider = (*PlayerScreen)(nil)

// New creates a PlayerScreen for the given course.
func New(course catalog.Course, client *assist.Client, events store.EventRepo, progressSvc *progress.Service, rewardsSvc *rewards.Service, chat *assist.ChatSession, lang catalog.Language) *PlayerScreen {
	p := &PlayerScreen{
		course:      course,
		client:      client,
		events:      events,
		progressSvc: progressSvc,
		rewardsSvc:  rewardsSvc,
		chat:        chat,
		lang:        lang,
		focus:       focusContent,
	}

	hooks := ctrl.Hooks{
		LessonChanged: func(prevID, newID string) {
			if events == nil {
				return
			}
			_ = events.AppendLesson(context.Background(), store.LessonEventData{
				CourseID:         course.ID,
				LessonID:         newID,
				PreviousLessonID: prevID,
			})
		},
	}
	p.sess = ctrl.NewSession(course, lang, hooks)
	if chat != nil {
		p.sess.AttachChat(chat.ID)
	}
	return p
}

func (p *PlayerScreen) Init() tea.Cmd {
	return nil
}

func (p *PlayerScreen) Title() string {
	return p.course.Title.In(p.lang)
}

func (p *PlayerScreen) KeyHints() []layout.KeyHint {
	if p.inputMode != inputNone {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Tab", Description: "Cancel"},
		}
	}
	if p.focus == focusSidebar {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "Tab", Description: "Content"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Tabs"},
		{Key: "Tab", Description: "Curriculum"},
	}
	switch p.sess.ActiveTab() {
	case ctrl.TabSummary:
		hints = append(hints, layout.KeyHint{Key: "g", Description: "Summarize"},
			layout.KeyHint{Key: "a", Description: "Ask tutor"})
	case ctrl.TabQuiz:
		hints = append(hints, layout.KeyHint{Key: "g", Description: "Generate quiz"})
	case ctrl.TabVideo:
		hints = append(hints, layout.KeyHint{Key: "f", Description: "Pick file"},
			layout.KeyHint{Key: "g", Description: "Analyze"})
	case ctrl.TabDiscussion:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Open chat"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (p *PlayerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case opOutcomeMsg:
		return p.handleOutcome(msg)

	case quizRecordedMsg:
		if msg.Err == nil {
			p.lastAward = msg.Award
		}
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.inputMode != inputNone {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

// handleOutcome routes an async result through the staleness gate and
// refreshes the quiz widget when a fresh quiz arrived.
func (p *PlayerScreen) handleOutcome(msg opOutcomeMsg) (screen.Screen, tea.Cmd) {
	if !p.sess.Resolve(msg.Ticket, msg.Outcome) {
		return p, nil
	}
	if msg.Ticket.Kind == ctrl.OpQuizGen && p.sess.Status(ctrl.OpQuizGen) == ctrl.StatusSucceeded {
		if quiz := p.sess.Quiz(); quiz != nil && len(quiz.Questions) > 0 {
			p.quizIdx = 0
			p.lastAward = nil
			q := quiz.Questions[0]
			p.mc = components.NewMultiChoice(q.Question, q.Options, q.CorrectIndex)
		}
	}
	return p, nil
}

func (p *PlayerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.inputMode != inputNone {
		switch key {
		case "tab":
			p.inputMode = inputNone
			return p, nil
		case "enter":
			return p.submitInput()
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	if key == "tab" {
		if p.focus == focusSidebar {
			p.focus = focusContent
		} else {
			p.focus = focusSidebar
			p.syncCursor()
		}
		return p, nil
	}

	if p.focus == focusSidebar {
		return p.handleSidebarKey(key)
	}
	return p.handleContentKey(msg)
}

func (p *PlayerScreen) handleSidebarKey(key string) (screen.Screen, tea.Cmd) {
	items := p.sidebarItems()

	switch key {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(items)-1 {
			p.cursor++
		}
	case "enter":
		if p.cursor >= len(items) {
			return p, nil
		}
		item := items[p.cursor]
		if item.lesson == nil {
			p.sess.ToggleChapter(item.chapterID)
			p.clampCursor()
			return p, nil
		}
		if err := p.sess.SelectLesson(item.lesson.ID); err == nil {
			p.resetLessonUI()
			p.focus = focusContent
		}
	}
	return p, nil
}

func (p *PlayerScreen) handleContentKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Tab switching is available everywhere in the content pane.
	switch key {
	case "left", "h":
		p.cycleTab(-1)
		return p, nil
	case "right", "l":
		p.cycleTab(1)
		return p, nil
	case "1":
		p.sess.SelectTab(ctrl.TabSummary)
		return p, nil
	case "2":
		p.sess.SelectTab(ctrl.TabQuiz)
		return p, nil
	case "3":
		p.sess.SelectTab(ctrl.TabVideo)
		return p, nil
	case "4":
		p.sess.SelectTab(ctrl.TabDiscussion)
		return p, nil
	}

	switch p.sess.ActiveTab() {
	case ctrl.TabSummary:
		switch key {
		case "g":
			return p, p.generateSummary()
		case "a":
			p.inputMode = inputTutor
			p.input = components.NewTextInput("Ask the AI tutor...", false, 200)
			return p, p.input.Init()
		}

	case ctrl.TabQuiz:
		if key == "g" {
			return p, p.generateQuiz()
		}
		return p.handleQuizKey(msg)

	case ctrl.TabVideo:
		switch key {
		case "f":
			p.inputMode = inputVideo
			p.input = components.NewTextInput("Path to a video file...", false, 300)
			return p, p.input.Init()
		case "g":
			return p, p.analyzeVideo()
		}

	case ctrl.TabDiscussion:
		if key == "enter" || key == "c" {
			client, chat, sess := p.client, p.chat, p.sess
			return p, func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(client, chat, sess)}
			}
		}
	}

	return p, nil
}

// handleQuizKey drives the one-question-at-a-time answer flow.
func (p *PlayerScreen) handleQuizKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	quiz := p.sess.Quiz()
	if quiz == nil || quiz.Submitted {
		return p, nil
	}

	if p.mc.Submitted {
		// Feedback is showing; enter advances.
		if msg.String() != "enter" {
			return p, nil
		}
		if p.quizIdx+1 < len(quiz.Questions) {
			p.quizIdx++
			q := quiz.Questions[p.quizIdx]
			p.mc = components.NewMultiChoice(q.Question, q.Options, q.CorrectIndex)
			return p, nil
		}
		return p, p.submitQuiz()
	}

	wasSubmitted := p.mc.Submitted
	p.mc, _ = p.mc.Update(msg)
	if p.mc.Submitted && !wasSubmitted {
		_ = p.sess.AnswerQuiz(p.quizIdx, p.mc.ChosenIndex)
	}
	return p, nil
}

// submitInput dispatches the active text input (tutor question or video path).
func (p *PlayerScreen) submitInput() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(p.input.Value())
	mode := p.inputMode
	p.inputMode = inputNone
	if text == "" {
		return p, nil
	}

	switch mode {
	case inputTutor:
		return p, p.askTutor(text)
	case inputVideo:
		file, err := assist.LoadMediaFile(text)
		if err != nil {
			return p, nil
		}
		p.sess.StageVideo(file)
		return p, p.analyzeVideo()
	}
	return p, nil
}

func (p *PlayerScreen) generateSummary() tea.Cmd {
	t, err := p.sess.Begin(ctrl.OpSummary)
	if err != nil {
		return nil
	}
	client, lang := p.client, p.lang
	content := p.sess.ActiveLesson().Content.In(lang)
	return func() tea.Msg {
		text, err := client.Summarize(context.Background(), content, lang)
		out := ctrl.Outcome{Text: text, Err: err}
		if err != nil {
			out.ErrText = text
		}
		return opOutcomeMsg{Ticket: t, Outcome: out}
	}
}

func (p *PlayerScreen) generateQuiz() tea.Cmd {
	t, err := p.sess.Begin(ctrl.OpQuizGen)
	if err != nil {
		return nil
	}
	client, lang := p.client, p.lang
	content := p.sess.ActiveLesson().Content.In(lang)
	return func() tea.Msg {
		questions, err := client.GenerateQuiz(context.Background(), content, lang)
		out := ctrl.Outcome{Questions: questions, Err: err}
		if err != nil || len(questions) == 0 {
			out.ErrText = quizErrText(lang)
		}
		return opOutcomeMsg{Ticket: t, Outcome: out}
	}
}

func (p *PlayerScreen) askTutor(question string) tea.Cmd {
	t, err := p.sess.Begin(ctrl.OpTutor)
	if err != nil {
		return nil
	}
	client, lang := p.client, p.lang
	content := p.sess.ActiveLesson().Content.In(lang)
	return func() tea.Msg {
		text, err := client.AskTutor(context.Background(), question, content, lang)
		out := ctrl.Outcome{Text: text, Err: err}
		if err != nil {
			out.ErrText = text
		}
		return opOutcomeMsg{Ticket: t, Outcome: out}
	}
}

func (p *PlayerScreen) analyzeVideo() tea.Cmd {
	file := p.sess.VideoFile()
	if file == nil {
		return nil
	}
	t, err := p.sess.Begin(ctrl.OpVideoAnalysis)
	if err != nil {
		return nil
	}
	client, lang := p.client, p.lang
	staged := *file
	return func() tea.Msg {
		text, err := client.AnalyzeVideo(context.Background(), staged, lang)
		out := ctrl.Outcome{Text: text, Err: err}
		if err != nil {
			out.ErrText = text
		}
		return opOutcomeMsg{Ticket: t, Outcome: out}
	}
}

// submitQuiz grades the attempt and persists the result, reward, and
// lesson completion asynchronously.
func (p *PlayerScreen) submitQuiz() tea.Cmd {
	attempt, err := p.sess.SubmitQuiz()
	if err != nil {
		return nil
	}

	events, rewardsSvc, progressSvc, lang := p.events, p.rewardsSvc, p.progressSvc, p.lang
	return func() tea.Msg {
		ctx := context.Background()

		if events != nil {
			_ = events.AppendQuiz(ctx, store.QuizEventData{
				AttemptID:     attempt.ID,
				LessonID:      attempt.LessonID,
				QuestionCount: len(attempt.Questions),
				Score:         attempt.Score,
				Perfect:       attempt.Perfect(),
				Language:      string(lang),
			})
		}

		var award *rewards.Award
		if rewardsSvc != nil {
			a, err := rewardsSvc.AwardQuiz(ctx, attempt.ID, attempt.LessonID, attempt.Score, len(attempt.Questions))
			if err != nil {
				return quizRecordedMsg{Err: err}
			}
			award = a
		}
		if progressSvc != nil {
			_ = progressSvc.MarkCompleted(ctx, attempt.LessonID)
		}
		return quizRecordedMsg{Award: award}
	}
}

// cycleTab moves the active tab left or right with wraparound.
func (p *PlayerScreen) cycleTab(dir int) {
	order := []ctrl.Tab{ctrl.TabSummary, ctrl.TabQuiz, ctrl.TabVideo, ctrl.TabDiscussion}
	cur := 0
	active := p.sess.ActiveTab()
	for i, t := range order {
		if t == active {
			cur = i
			break
		}
	}
	next := (cur + dir + len(order)) % len(order)
	p.sess.SelectTab(order[next])
}

// sidebarItems flattens the curriculum: every chapter, plus the lessons
// of the expanded chapter.
func (p *PlayerScreen) sidebarItems() []sidebarItem {
	expanded := p.sess.ExpandedChapter()
	var items []sidebarItem
	for ci := range p.course.Chapters {
		ch := &p.course.Chapters[ci]
		items = append(items, sidebarItem{chapterID: ch.ID})
		if ch.ID != expanded {
			continue
		}
		for li := range ch.Lessons {
			items = append(items, sidebarItem{chapterID: ch.ID, lesson: &ch.Lessons[li]})
		}
	}
	return items
}

// syncCursor points the cursor at the active lesson when focus moves to
// the sidebar.
func (p *PlayerScreen) syncCursor() {
	active := p.sess.ActiveLesson().ID
	for i, item := range p.sidebarItems() {
		if item.lesson != nil && item.lesson.ID == active {
			p.cursor = i
			return
		}
	}
	p.cursor = 0
}

func (p *PlayerScreen) clampCursor() {
	if n := len(p.sidebarItems()); p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// resetLessonUI clears screen-local widgets after a lesson switch.
func (p *PlayerScreen) resetLessonUI() {
	p.quizIdx = 0
	p.mc = components.MultiChoice{}
	p.lastAward = nil
	p.inputMode = inputNone
}

func quizErrText(lang catalog.Language) string {
	if lang == catalog.LangArabic {
		return "فشل إنشاء الاختبار."
	}
	return "Failed to generate quiz."
}
