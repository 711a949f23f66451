package repository

import (
	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed наполняет пустые таблицы встроенным каталогом.
// Повторный запуск ничего не делает: наполняем только пустое.
func Seed(db *gorm.DB) error {
	if err := seedCourses(db); err != nil {
		return err
	}
	return seedQuizQuestions(db)
}

func seedCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	courses := builtinCourses()
	for i := range courses {
		if err := db.Create(&courses[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedQuizQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.QuizQuestion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	questions := builtinQuizQuestions()
	return db.Create(&questions).Error
}

func builtinCourses() []domain.Course {
	makeLessons := func(courseID string, xp int, titles ...string) []domain.Lesson {
		var lessons []domain.Lesson
		for i, title := range titles {
			lessons = append(lessons, domain.Lesson{
				ID:               uuid.New(),
				CourseID:         courseID,
				Order:            i + 1,
				Title:            title,
				Content:          "", // Контент генерируется при первом открытии урока
				XPReward:         xp,
				EstimatedMinutes: 10,
			})
		}
		return lessons
	}

	return []domain.Course{
		{
			ID:             "budgeting-basics",
			Title:          "Budgeting Basics",
			Description:    "Learn how to plan your income and spending so your money works for you.",
			Difficulty:     "beginner",
			LessonCount:    4,
			EstimatedHours: 1,
			Icon:           "💰",
			Lessons: makeLessons("budgeting-basics", 50,
				"What Is a Budget and Why You Need One",
				"The 50/30/20 Rule",
				"Tracking Your Expenses",
				"Building Your First Monthly Budget",
			),
		},
		{
			ID:             "saving-strategies",
			Title:          "Saving Strategies",
			Description:    "From emergency funds to savings goals: make saving a habit, not a chore.",
			Difficulty:     "beginner",
			LessonCount:    4,
			EstimatedHours: 1,
			Icon:           "🏦",
			Lessons: makeLessons("saving-strategies", 50,
				"Why Save: Emergency Funds Explained",
				"Setting Realistic Savings Goals",
				"Automating Your Savings",
				"Where to Keep Your Savings",
			),
		},
		{
			ID:             "credit-and-debt",
			Title:          "Credit and Debt",
			Description:    "Understand how credit works, what it costs, and how to stay out of the debt trap.",
			Difficulty:     "intermediate",
			LessonCount:    4,
			EstimatedHours: 2,
			Icon:           "💳",
			Lessons: makeLessons("credit-and-debt", 60,
				"How Credit Scores Work",
				"Good Debt vs Bad Debt",
				"Understanding Interest and APR",
				"Paying Down Debt: Snowball and Avalanche",
			),
		},
		{
			ID:             "investing-101",
			Title:          "Investing 101",
			Description:    "The basics of making your money grow: stocks, bonds, funds and compound interest.",
			Difficulty:     "intermediate",
			LessonCount:    4,
			EstimatedHours: 2,
			Icon:           "📈",
			Lessons: makeLessons("investing-101", 70,
				"Why Invest: The Power of Compound Interest",
				"Stocks, Bonds and Funds",
				"Risk and Diversification",
				"Getting Started with Your First Investment",
			),
		},
	}
}

func builtinQuizQuestions() []domain.QuizQuestion {
	q := func(topic, difficulty, question string, options []string, correct int, explanation string) domain.QuizQuestion {
		return domain.QuizQuestion{
			ID:            uuid.New(),
			Topic:         topic,
			Difficulty:    difficulty,
			Question:      question,
			Options:       datatypes.NewJSONSlice(options),
			CorrectAnswer: correct,
			Explanation:   explanation,
		}
	}

	return []domain.QuizQuestion{
		q("budgeting", "easy",
			"What does the 50/30/20 rule suggest you spend 50% of your income on?",
			[]string{"Wants", "Needs", "Savings", "Investments"}, 1,
			"The rule allocates 50% to needs, 30% to wants and 20% to savings."),
		q("budgeting", "easy",
			"Which of these is a fixed expense?",
			[]string{"Restaurant meals", "Monthly rent", "Concert tickets", "Gifts"}, 1,
			"Rent stays the same every month, unlike discretionary spending."),
		q("budgeting", "medium",
			"Your budget shows you spent more than you planned on groceries. What is the healthiest first step?",
			[]string{"Ignore it", "Review and adjust the category allocation", "Stop buying groceries", "Close the budget"}, 1,
			"Budgets are living documents: review and adjust rather than abandon."),
		q("saving", "easy",
			"How many months of expenses is a common target for an emergency fund?",
			[]string{"1 month", "3-6 months", "12 months", "24 months"}, 1,
			"3-6 months of essential expenses is the widely used guideline."),
		q("saving", "medium",
			"What is the main advantage of automating your savings?",
			[]string{"Higher interest rates", "You save before you can spend", "Banks waive all fees", "It increases your salary"}, 1,
			"Paying yourself first removes the temptation to spend the money."),
		q("saving", "medium",
			"Which account type usually offers the best mix of access and interest for an emergency fund?",
			[]string{"Checking account", "High-yield savings account", "Long-term bond", "Retirement account"}, 1,
			"High-yield savings keeps the money liquid while still earning interest."),
		q("credit", "easy",
			"What does APR stand for?",
			[]string{"Annual Percentage Rate", "Average Payment Ratio", "Applied Principal Return", "Annual Payment Requirement"}, 0,
			"APR is the yearly cost of borrowing, including interest."),
		q("credit", "medium",
			"Which action typically hurts your credit score the most?",
			[]string{"Checking your own score", "Missing a payment", "Having a credit card", "Paying in full monthly"}, 1,
			"Payment history is the largest factor in most scoring models."),
		q("credit", "hard",
			"With the avalanche method, which debt do you pay off first?",
			[]string{"The smallest balance", "The highest interest rate", "The oldest debt", "The newest debt"}, 1,
			"Avalanche targets the highest rate to minimize total interest paid."),
		q("investing", "easy",
			"What is compound interest?",
			[]string{"Interest on the principal only", "Interest earned on both principal and prior interest", "A fixed bank fee", "A type of loan"}, 1,
			"Compounding means your returns start earning returns of their own."),
		q("investing", "medium",
			"Why is diversification recommended?",
			[]string{"It guarantees profit", "It reduces the impact of any single investment failing", "It avoids all taxes", "It doubles returns"}, 1,
			"Spreading money across assets lowers the risk of a single failure."),
		q("investing", "hard",
			"An index fund is best described as:",
			[]string{"A single company stock", "A basket of securities tracking a market index", "A savings account", "A government bond"}, 1,
			"Index funds passively track an index like the S&P 500."),
	}
}
