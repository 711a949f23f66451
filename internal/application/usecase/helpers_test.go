package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/repository"
	"github.com/vamsipakalapati4107/finlit4/internal/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeGenerator replays canned replies instead of calling a model.
// The last reply sticks so tests can call it more than queued.
type fakeGenerator struct {
	calls   int
	replies []string
	err     error
}

func (f *fakeGenerator) GenerateText(_ context.Context, _, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "stub reply", nil
	}
	reply := f.replies[0]
	if len(f.replies) > 1 {
		f.replies = f.replies[1:]
	}
	return reply, nil
}

type testEnv struct {
	db  *gorm.DB
	gen *fakeGenerator

	profilesRepo     *repository.ProfileRepository
	expensesRepo     *repository.ExpenseRepository
	budgetsRepo      *repository.BudgetRepository
	goalsRepo        *repository.GoalRepository
	quizzesRepo      *repository.QuizRepository
	achievementsRepo *repository.AchievementRepository
	coursesRepo      *repository.CourseRepository

	progress     *ProgressService
	achievements *AchievementService
	analytics    *AnalyticsService
	expenses     *ExpenseService
	budgets      *BudgetService
	goals        *GoalService
	quizzes      *QuizService
	courses      *CourseService
	shop         *ShopService
	profile      *ProfileService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// a named in-memory database per test so parallel tests do not share state
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	log := logger.NewNop()
	gen := &fakeGenerator{}

	env := &testEnv{
		db:               db,
		gen:              gen,
		profilesRepo:     repository.NewProfileRepository(db, rdb),
		expensesRepo:     repository.NewExpenseRepository(db),
		budgetsRepo:      repository.NewBudgetRepository(db),
		goalsRepo:        repository.NewGoalRepository(db),
		quizzesRepo:      repository.NewQuizRepository(db),
		achievementsRepo: repository.NewAchievementRepository(db),
		coursesRepo:      repository.NewCourseRepository(db, rdb),
	}

	env.progress = NewProgressService(env.profilesRepo, log)
	env.achievements = NewAchievementService(env.achievementsRepo, env.profilesRepo, env.expensesRepo, env.quizzesRepo)
	env.analytics = NewAnalyticsService(env.expensesRepo, env.budgetsRepo)
	env.expenses = NewExpenseService(env.expensesRepo, env.progress, env.achievements, log)
	env.budgets = NewBudgetService(env.budgetsRepo, env.analytics)
	env.goals = NewGoalService(env.goalsRepo, env.progress, log)
	env.quizzes = NewQuizService(env.quizzesRepo, env.progress, env.achievements, log)
	env.courses = NewCourseService(env.coursesRepo, env.profilesRepo, env.progress, env.achievements, gen, log)
	env.shop = NewShopService(env.profilesRepo, log)
	env.profile = NewProfileService(env.profilesRepo, log)
	return env
}

func (e *testEnv) createUser(t *testing.T, xp, coins int) uuid.UUID {
	t.Helper()
	id := uuid.New()
	email := fmt.Sprintf("%s@test.dev", id.String()[:8])
	_, err := e.profilesRepo.GetOrCreate(context.Background(), id, email, "tester")
	require.NoError(t, err)
	if xp != 0 || coins != 0 {
		require.NoError(t, e.profilesRepo.UpdateFields(context.Background(), id, map[string]interface{}{
			"xp":    xp,
			"level": LevelForXP(xp),
			"coins": coins,
		}))
	}
	return id
}
