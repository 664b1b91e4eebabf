package catalog

// seedCourses is the built-in catalog shipped with the client.
var seedCourses = []Course{
	{
		ID:          "c1",
		Title:       Text{AR: "مقدمة في الفيزياء الفلكية", EN: "Introduction to Astrophysics"},
		Description: Text{AR: "رحلة ممتعة لاستكشاف النجوم والمجرات.", EN: "A fun journey exploring stars and galaxies."},
		Instructor:  "د. سارة",
		Category:    Text{AR: "علوم", EN: "Science"},
		Chapters: []Chapter{
			{
				ID:    "ch1",
				Title: Text{AR: "المجموعة الشمسية", EN: "The Solar System"},
				Lessons: []Lesson{
					{
						ID:       "l1-1",
						Title:    Text{AR: "الشمس: نجمنا الأم", EN: "The Sun: Our Mother Star"},
						VideoURL: "placeholder",
						Duration: "5:30",
						Content: Text{
							AR: "الشمس هي نجم يقع في مركز نظامنا الشمسي. تتكون بشكل أساسي من الهيدروجين والهيليوم.",
							EN: "The Sun is the star at the center of the Solar System. It is nearly perfect sphere of hot plasma.",
						},
					},
					{
						ID:       "l1-2",
						Title:    Text{AR: "الكواكب الصخرية", EN: "Rocky Planets"},
						VideoURL: "placeholder",
						Duration: "6:15",
						Content: Text{
							AR: "عطارد والزهرة والأرض والمريخ هي الكواكب الصخرية الداخلية.",
							EN: "Mercury, Venus, Earth, and Mars are the inner rocky planets.",
						},
					},
				},
			},
		},
	},
	{
		ID:          "c2",
		Title:       Text{AR: "أساسيات البرمجة باستخدام بايثون", EN: "Python Programming Basics"},
		Description: Text{AR: "تعلم لغة العصر من الصفر.", EN: "Learn the language of the era from scratch."},
		Instructor:  "أ. خالد",
		Category:    Text{AR: "برمجة", EN: "Programming"},
	},
	{
		ID:          "c3",
		Title:       Text{AR: "تاريخ الحضارات القديمة", EN: "History of Ancient Civilizations"},
		Description: Text{AR: "استكشاف الحضارات التي شكلت عالمنا.", EN: "Exploring civilizations that shaped our world."},
		Instructor:  "أ. ليلى",
		Category:    Text{AR: "تاريخ", EN: "History"},
	},
}

// Courses returns the seed catalog.
func Courses() []Course {
	return seedCourses
}
