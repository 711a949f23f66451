package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/ai"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/repository"
	"github.com/vamsipakalapati4107/finlit4/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Слаг курса приходит прямо из URL и попадает в промпт, поэтому формат жесткий
var courseSlugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

const courseSystemPrompt = `You are a personal finance teacher writing course material for a gamified learning app. Always respond with valid JSON and nothing else.`

const lessonSystemPrompt = `You are a personal finance teacher. Write lesson content in Markdown: short sections, concrete numbers in examples, no preamble and no closing summary.`

func courseUserPrompt(topic string) string {
	return fmt.Sprintf(`Create a short course about "%s".
Respond with JSON in exactly this shape:
{
  "course": {"title": "...", "description": "...", "difficulty": "beginner|intermediate|advanced", "estimated_hours": 2, "icon": "one emoji"},
  "lessons": [{"title": "...", "content": "", "estimated_minutes": 10, "xp_reward": 50}]
}
Give 3 to 5 lessons ordered from basics to practice. Leave every lesson "content" as an empty string.`, topic)
}

func lessonUserPrompt(courseTitle, lessonTitle string) string {
	return fmt.Sprintf(`Write the lesson "%s" for the course "%s". 300-500 words, Markdown, finish with a short "Try this" action item.`, lessonTitle, courseTitle)
}

type CourseService struct {
	courses      *repository.CourseRepository
	profiles     *repository.ProfileRepository
	progress     *ProgressService
	achievements *AchievementService
	gen          ai.Generator
	log          *logger.Logger
}

func NewCourseService(
	courses *repository.CourseRepository,
	profiles *repository.ProfileRepository,
	progress *ProgressService,
	achievements *AchievementService,
	gen ai.Generator,
	log *logger.Logger,
) *CourseService {
	return &CourseService{
		courses:      courses,
		profiles:     profiles,
		progress:     progress,
		achievements: achievements,
		gen:          gen,
		log:          log,
	}
}

func (s *CourseService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return s.courses.List(ctx)
}

type CourseDetail struct {
	Course           *domain.Course `json:"course"`
	CompletedLessons []uuid.UUID    `json:"completed_lessons"`
	ProgressPercent  int            `json:"progress_percent"`
}

// GetCourse отдает курс с уроками и отметками прохождения.
// Неизвестный слаг — повод сгенерировать курс, а не вернуть 404.
func (s *CourseService) GetCourse(ctx context.Context, userID uuid.UUID, id string) (*CourseDetail, error) {
	if !courseSlugPattern.MatchString(id) {
		return nil, domain.ErrInvalidCourseID
	}

	course, err := s.ensureCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	completed, err := s.profiles.GetCompletedLessonIDs(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if completed == nil {
		completed = []uuid.UUID{}
	}

	return &CourseDetail{
		Course:           course,
		CompletedLessons: completed,
		ProgressPercent:  progressPercent(len(completed), len(course.Lessons)),
	}, nil
}

// GetLesson отдает урок, при первом открытии дописывая в него контент.
// Генерация идет через условный UPDATE: из двух одновременных запросов
// сохранится только один вариант, второй запрос получит его же.
func (s *CourseService) GetLesson(ctx context.Context, courseID string, lessonID uuid.UUID) (*domain.Lesson, error) {
	lesson, err := s.courses.GetLesson(ctx, courseID, lessonID)
	if err != nil {
		return nil, err
	}
	if lesson.Content != "" {
		return lesson, nil
	}

	course, err := s.courses.Get(ctx, courseID)
	if err != nil {
		return nil, err
	}

	s.log.Info("generating lesson content", "courseId", courseID, "lessonId", lessonID)
	raw, err := s.gen.GenerateText(ctx, lessonSystemPrompt, lessonUserPrompt(course.Title, lesson.Title))
	if err != nil {
		return nil, err
	}
	content := stripCodeFences(raw)

	filled, err := s.courses.FillLessonContent(ctx, lesson.ID, content)
	if err != nil {
		return nil, err
	}
	if !filled {
		// Кто-то записал контент раньше нас, отдаем его вариант
		return s.courses.GetLesson(ctx, courseID, lessonID)
	}

	lesson.Content = content
	return lesson, nil
}

type LessonCompleteResult struct {
	AlreadyCompleted bool                 `json:"already_completed"`
	XPAwarded        int                  `json:"xp_awarded"`
	CompletedLessons int64                `json:"completed_lessons"`
	TotalLessons     int64                `json:"total_lessons"`
	ProgressPercent  int                  `json:"progress_percent"`
	Unlocked         []domain.Achievement `json:"unlocked,omitempty"`
}

// CompleteLesson отмечает урок пройденным. Награда выдается только при
// первой отметке, повторный вызов безопасен.
func (s *CourseService) CompleteLesson(ctx context.Context, userID uuid.UUID, courseID string, lessonID uuid.UUID) (*LessonCompleteResult, error) {
	lesson, err := s.courses.GetLesson(ctx, courseID, lessonID)
	if err != nil {
		return nil, err
	}

	created, err := s.profiles.MarkLessonCompleted(ctx, &domain.UserProgress{
		UserID:   userID,
		CourseID: courseID,
		LessonID: lesson.ID,
	})
	if err != nil {
		return nil, err
	}

	result := &LessonCompleteResult{AlreadyCompleted: !created}
	if created {
		result.XPAwarded = lesson.XPReward
		if _, err := s.progress.AwardXP(ctx, userID, lesson.XPReward, true); err != nil {
			s.log.Error("failed to award lesson xp", "userId", userID, "error", err)
		}
		unlocked, err := s.achievements.Check(ctx, userID, MetricLessonCount, MetricLevel)
		if err != nil {
			s.log.Error("failed to check lesson achievements", "userId", userID, "error", err)
		}
		result.Unlocked = unlocked
	}

	completedCount, err := s.profiles.CountCompletedLessons(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	totalLessons, err := s.courses.CountLessons(ctx, courseID)
	if err != nil {
		return nil, err
	}
	result.CompletedLessons = completedCount
	result.TotalLessons = totalLessons
	result.ProgressPercent = progressPercent(int(completedCount), int(totalLessons))
	return result, nil
}

func (s *CourseService) ensureCourse(ctx context.Context, id string) (*domain.Course, error) {
	course, err := s.courses.GetWithLessons(ctx, id)
	if err == nil {
		return course, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	s.log.Info("generating course", "courseId", id)
	raw, err := s.gen.GenerateText(ctx, courseSystemPrompt, courseUserPrompt(titleFromSlug(id)))
	if err != nil {
		return nil, err
	}

	course = buildCourseFromText(id, raw)
	if err := s.courses.CreateWithLessons(ctx, course); err != nil {
		// Гонка двух генераций: победивший курс уже в базе
		if existing, gerr := s.courses.GetWithLessons(ctx, id); gerr == nil {
			return existing, nil
		}
		return nil, err
	}
	return course, nil
}

type generatedCourse struct {
	Course struct {
		Title          string `json:"title"`
		Description    string `json:"description"`
		Difficulty     string `json:"difficulty"`
		EstimatedHours int    `json:"estimated_hours"`
		Icon           string `json:"icon"`
	} `json:"course"`
	Lessons []struct {
		Title            string `json:"title"`
		Content          string `json:"content"`
		EstimatedMinutes int    `json:"estimated_minutes"`
		XPReward         int    `json:"xp_reward"`
	} `json:"lessons"`
}

// buildCourseFromText разбирает ответ модели. Если JSON не разобрался,
// курс все равно создается: один урок, контент — сырой текст ответа.
func buildCourseFromText(id, raw string) *domain.Course {
	text := stripCodeFences(raw)
	fallbackTitle := titleFromSlug(id)

	var parsed generatedCourse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil || len(parsed.Lessons) == 0 {
		return &domain.Course{
			ID:             id,
			Title:          fallbackTitle,
			Description:    "Generated course",
			Difficulty:     "beginner",
			LessonCount:    1,
			EstimatedHours: 1,
			Icon:           "📚",
			IsGenerated:    true,
			Lessons: []domain.Lesson{{
				ID:               uuid.New(),
				CourseID:         id,
				Order:            1,
				Title:            fallbackTitle,
				Content:          text,
				XPReward:         50,
				EstimatedMinutes: 10,
			}},
		}
	}

	course := &domain.Course{
		ID:             id,
		Title:          parsed.Course.Title,
		Description:    parsed.Course.Description,
		Difficulty:     parsed.Course.Difficulty,
		LessonCount:    len(parsed.Lessons),
		EstimatedHours: parsed.Course.EstimatedHours,
		Icon:           parsed.Course.Icon,
		IsGenerated:    true,
	}
	if course.Title == "" {
		course.Title = fallbackTitle
	}
	if course.Difficulty == "" {
		course.Difficulty = "beginner"
	}
	if course.EstimatedHours <= 0 {
		course.EstimatedHours = 1
	}
	if course.Icon == "" {
		course.Icon = "📚"
	}

	for i, l := range parsed.Lessons {
		lesson := domain.Lesson{
			ID:               uuid.New(),
			CourseID:         id,
			Order:            i + 1,
			Title:            l.Title,
			Content:          l.Content,
			XPReward:         l.XPReward,
			EstimatedMinutes: l.EstimatedMinutes,
		}
		if lesson.Title == "" {
			lesson.Title = fmt.Sprintf("Lesson %d", i+1)
		}
		if lesson.XPReward <= 0 {
			lesson.XPReward = 50
		}
		if lesson.EstimatedMinutes <= 0 {
			lesson.EstimatedMinutes = 10
		}
		course.Lessons = append(course.Lessons, lesson)
	}
	return course
}

// stripCodeFences срезает обертку ```json ... ```, которую модели любят
// добавлять вокруг ответа
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func progressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	percent := completed * 100 / total
	if percent > 100 {
		percent = 100
	}
	return percent
}
