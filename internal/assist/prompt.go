package assist

import (
	"fmt"

	"github.com/manara-app/manara/internal/catalog"
)

func languageName(lang catalog.Language) string {
	if lang == catalog.LangArabic {
		return "Arabic"
	}
	return "English"
}

// buildQuizPrompt asks for a fixed-size multiple-choice quiz over the
// (truncated) lesson content.
func buildQuizPrompt(content string, count int, lang catalog.Language) string {
	return fmt.Sprintf(
		"Create a quiz with %d multiple choice questions based on the following content.\n"+
			"The output must be in %s.\n"+
			"Content: %q",
		count, languageName(lang), content)
}

func buildTutorPrompt(query, lessonContent string) string {
	return fmt.Sprintf("Context: %s\n\nStudent Question: %s", lessonContent, query)
}

func tutorSystemPrompt(lang catalog.Language) string {
	if lang == catalog.LangArabic {
		return "أنت معلم مساعد ذكي ودود. اشرح المفاهيم بوضوح وبساطة للطلاب."
	}
	return "You are a friendly and smart teaching assistant. Explain concepts clearly and simply to students."
}

func buildSummaryPrompt(rawText string, lang catalog.Language) string {
	return fmt.Sprintf(
		"Summarize the following educational content into a concise paragraph "+
			"suitable for a student lesson description. Language: %s.\n\nText: %s",
		languageName(lang), rawText)
}

func chatSystemPrompt(lang catalog.Language) string {
	if lang == catalog.LangArabic {
		return "أنت مساعد تعليمي ذكي في منصة 'المنارة'. ساعد الطلاب في الإجابة على استفساراتهم وتوجيههم."
	}
	return "You are an AI educational assistant on 'Al-Manara' platform. Help students by answering their queries and guiding them."
}

func buildVideoPrompt(lang catalog.Language) string {
	if lang == catalog.LangArabic {
		return "قم بتحليل هذا الفيديو واستخراج النقاط التعليمية الرئيسية، والمفاهيم المشروحة، وأي مصطلحات مهمة. قدم ملخصاً منظماً."
	}
	return "Analyze this video and extract key educational points, explained concepts, and important terminology. Provide a structured summary."
}

// Localized fallback strings. The gateway never surfaces raw errors to
// screens; it hands back one of these alongside the error marker.

func notConfiguredText(lang catalog.Language) string {
	if lang == catalog.LangArabic {
		return "يرجى تكوين مفتاح API."
	}
	return "Please configure API Key."
}

func tutorErrorText(lang catalog.Language) string {
	if lang == catalog.LangArabic {
		return "حدث خطأ أثناء الاتصال بالمعلم الذكي."
	}
	return "Error connecting to AI Tutor."
}

func summaryErrorText(lang catalog.Language) string {
	if lang == catalog.LangArabic {
		return "فشل إنشاء الملخص."
	}
	return "Failed to generate summary."
}

func chatErrorText(lang catalog.Language) string {
	if lang == catalog.LangArabic {
		return "عذراً، حدث خطأ."
	}
	return "Sorry, an error occurred."
}

func videoErrorText(lang catalog.Language) string {
	if lang == catalog.LangArabic {
		return "فشل تحليل الفيديو. يرجى التأكد من أن الملف مدعوم وحجمه مناسب."
	}
	return "Failed to analyze video. Please ensure the file is supported and size is appropriate."
}
