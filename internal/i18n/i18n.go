// Package i18n provides the bilingual UI string table.
package i18n

import "github.com/manara-app/manara/internal/catalog"

// T returns the translated string for key in the given language.
// Unknown keys return the key itself so missing entries are visible.
func T(key string, lang catalog.Language) string {
	table := en
	if lang == catalog.LangArabic {
		table = ar
	}
	if s, ok := table[key]; ok {
		return s
	}
	if s, ok := en[key]; ok {
		return s
	}
	return key
}

var ar = map[string]string{
	"courses":          "الدورات",
	"instructor":       "المعلم",
	"continueLearning": "تابع التعلم",
	"level":            "المستوى",
	"xp":               "نقطة خبرة",
	"streak":           "يوم تتابع",
	"chapters":         "الفصول",
	"startLesson":      "ابدأ الدرس",
	"completed":        "مكتمل",
	"summary":          "ملخص الدرس",
	"quiz":             "اختبار سريع",
	"discussion":       "نقاش",
	"askAI":            "اسأل المعلم الذكي",
	"generateQuiz":     "إنشاء اختبار (AI)",
	"generateSummary":  "تلخيص المحتوى (AI)",
	"submit":           "إرسال",
	"correct":          "إجابة صحيحة!",
	"incorrect":        "حاول مرة أخرى",
	"next":             "التالي",
	"loading":          "جاري التحميل...",
	"points":           "نقطة",
	"chatAssistant":    "المساعد الذكي",
	"typeMessage":      "اكتب رسالتك هنا...",
	"videoAnalysis":    "تحليل الفيديو",
	"uploadVideo":      "رفع فيديو للتحليل",
	"analyzeVideo":     "تحليل الفيديو",
	"analysisResult":   "نتائج التحليل",
	"analyzing":        "جاري التحليل...",
	"uploadPrompt":     "قم برفع ملف فيديو لاستخراج النقاط الرئيسية والمفاهيم.",
	"chatWelcome":      "مرحباً! أنا مساعدك الذكي. كيف يمكنني مساعدتك اليوم في دروسك؟",
	"send":             "إرسال",
	"welcome":          "مرحباً",
	"switchLang":       "English",
}

var en = map[string]string{
	"courses":          "Courses",
	"instructor":       "Instructor",
	"continueLearning": "Continue Learning",
	"level":            "Level",
	"xp":               "XP",
	"streak":           "Day Streak",
	"chapters":         "Chapters",
	"startLesson":      "Start Lesson",
	"completed":        "Completed",
	"summary":          "Lesson Summary",
	"quiz":             "Quick Quiz",
	"discussion":       "Discussion",
	"askAI":            "Ask AI Tutor",
	"generateQuiz":     "Generate Quiz (AI)",
	"generateSummary":  "Summarize Content (AI)",
	"submit":           "Submit",
	"correct":          "Correct Answer!",
	"incorrect":        "Try Again",
	"next":             "Next",
	"loading":          "Loading...",
	"points":           "Pts",
	"chatAssistant":    "AI Assistant",
	"typeMessage":      "Type your message...",
	"videoAnalysis":    "Video Analysis",
	"uploadVideo":      "Upload Video for Analysis",
	"analyzeVideo":     "Analyze Video",
	"analysisResult":   "Analysis Results",
	"analyzing":        "Analyzing...",
	"uploadPrompt":     "Upload a video file to extract key points and concepts.",
	"chatWelcome":      "Hello! I am your AI assistant. How can I help you with your studies today?",
	"send":             "Send",
	"welcome":          "Welcome",
	"switchLang":       "العربية",
}
