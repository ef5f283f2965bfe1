package usecase

import (
	"time"

	"skillswitch-service/src/internal/entity"
	"skillswitch-service/src/internal/model"
)

// DefaultTools is the affiliate catalogue shown on the tools page.
func DefaultTools() []model.AffiliateTool {
	return []model.AffiliateTool{
		{
			ID: "1", Name: "Canva Pro", Category: "design", Bonus: 50,
			Description:   "Create stunning designs with drag-and-drop simplicity. Perfect for presentations, social media, and marketing materials.",
			LogoURL:       "https://logo.clearbit.com/canva.com",
			AffiliateLink: "https://canva.com?ref=skillswitch",
		},
		{
			ID: "2", Name: "Grammarly Premium", Category: "writing", Bonus: 40,
			Description:   "AI-powered writing assistant that helps you write flawlessly. Check grammar, spelling, and enhance clarity.",
			LogoURL:       "https://logo.clearbit.com/grammarly.com",
			AffiliateLink: "https://grammarly.com?ref=skillswitch",
		},
		{
			ID: "3", Name: "GitHub Copilot", Category: "coding", Bonus: 60,
			Description:   "Your AI pair programmer. Code faster with intelligent suggestions powered by OpenAI.",
			LogoURL:       "https://logo.clearbit.com/github.com",
			AffiliateLink: "https://github.com/features/copilot?ref=skillswitch",
		},
		{
			ID: "4", Name: "Figma Professional", Category: "design", Bonus: 45,
			Description:   "Collaborative interface design tool. Create prototypes, design systems, and beautiful UIs.",
			LogoURL:       "https://logo.clearbit.com/figma.com",
			AffiliateLink: "https://figma.com?via=skillswitch",
		},
		{
			ID: "5", Name: "Notion Team", Category: "productivity", Bonus: 35,
			Description:   "All-in-one workspace for notes, tasks, wikis, and databases. Organize your life and studies.",
			LogoURL:       "https://logo.clearbit.com/notion.so",
			AffiliateLink: "https://notion.so?ref=skillswitch",
		},
		{
			ID: "6", Name: "Replit", Category: "coding", Bonus: 30,
			Description:   "Code collaboratively in the browser. Perfect for pair programming and learning.",
			LogoURL:       "https://logo.clearbit.com/replit.com",
			AffiliateLink: "https://replit.com?ref=skillswitch",
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedResources is inserted into an empty resources table on startup.
func SeedResources() []entity.Resource {
	return []entity.Resource{
		{
			ID: "1", TutorID: "tutor1", TutorName: "Alice Johnson", Title: "Complete Python Basics Notes",
			Description: "Comprehensive notes covering variables, functions, loops, and OOP concepts. Perfect for beginners!",
			Category:    "notes", Price: 50, FileSizeMB: 2.5, Downloads: 143, Rating: 4.8, Reviews: 28,
			PreviewImage: "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?w=400",
			Tags:         entity.StringList{"Python", "Beginner", "Programming"},
			CreatedAt:    date(2024, time.January, 15),
		},
		{
			ID: "2", TutorID: "tutor2", TutorName: "Bob Smith", Title: "React Component Templates",
			Description: "20+ reusable React components with Tailwind styling. Save hours of development time!",
			Category:    "code", Price: 150, FileSizeMB: 5.2, Downloads: 89, Rating: 4.9, Reviews: 15,
			PreviewImage: "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400",
			Tags:         entity.StringList{"React", "TypeScript", "Tailwind"},
			CreatedAt:    date(2024, time.February, 1),
		},
		{
			ID: "3", TutorID: "tutor3", TutorName: "Carol Davis", Title: "Calculus Formula Sheet",
			Description: "All essential calculus formulas in one handy PDF. Great for quick revision!",
			Category:    "notes", Price: 0, FileSizeMB: 0.8, Downloads: 512, Rating: 4.7, Reviews: 63,
			PreviewImage: "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=400",
			Tags:         entity.StringList{"Calculus", "Math", "Free"},
			CreatedAt:    date(2023, time.December, 10),
		},
		{
			ID: "4", TutorID: "tutor4", TutorName: "David Lee", Title: "UI/UX Design Toolkit",
			Description: "Figma components, icons, and templates for modern web design. Commercial license included!",
			Category:    "toolkit", Price: 200, FileSizeMB: 12.5, Downloads: 67, Rating: 5.0, Reviews: 12,
			PreviewImage: "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=400",
			Tags:         entity.StringList{"Figma", "Design", "UI/UX"},
			CreatedAt:    date(2024, time.January, 20),
		},
		{
			ID: "5", TutorID: "tutor5", TutorName: "Emma Wilson", Title: "Data Structures Cheat Sheet",
			Description: "Visual guide to all major data structures with time/space complexity analysis.",
			Category:    "guide", Price: 75, FileSizeMB: 1.8, Downloads: 201, Rating: 4.6, Reviews: 41,
			PreviewImage: "https://images.unsplash.com/photo-1509228468518-180dd4864904?w=400",
			Tags:         entity.StringList{"DSA", "Algorithms", "CS"},
			CreatedAt:    date(2024, time.February, 5),
		},
		{
			ID: "6", TutorID: "tutor6", TutorName: "Frank Chen", Title: "Machine Learning Code Samples",
			Description: "Python notebooks with ML algorithms implemented from scratch (Linear Regression, KNN, SVM, etc.)",
			Category:    "code", Price: 100, FileSizeMB: 8.3, Downloads: 95, Rating: 4.8, Reviews: 19,
			PreviewImage: "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=400",
			Tags:         entity.StringList{"ML", "Python", "AI"},
			CreatedAt:    date(2024, time.January, 25),
		},
	}
}
