package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/kesteai/internal/db"
	"github.com/alexanderramin/kesteai/internal/domain"
	"github.com/alexanderramin/kesteai/internal/repository"
	"github.com/alexanderramin/kesteai/internal/testutil"
)

func TestGroupRepo_CRUD(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()

	g := domain.Group{ID: 7, Name: "ИС-302", Specialization: "Ақпараттық жүйелер", NumberOfStudents: 25, Curator: "Сейтова"}
	require.NoError(t, store.Groups.Create(ctx, g))

	got, err := store.Groups.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, g, got)

	g.NumberOfStudents = 30
	require.NoError(t, store.Groups.Update(ctx, g))
	got, err = store.Groups.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 30, got.NumberOfStudents)

	require.NoError(t, store.Groups.Delete(ctx, 7))
	_, err = store.Groups.Get(ctx, 7)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdate_MissingRowIsNotFound(t *testing.T) {
	store := testutil.NewTestStore(t)

	err := store.Teachers.Update(context.Background(), domain.Teacher{ID: 99, FullName: "Иванов"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestList_EmptyTableReturnsEmptySlice(t *testing.T) {
	store := testutil.NewTestStore(t)

	rooms, err := store.ListRooms(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestLessonRepo_ListInIDOrder(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddLesson(ctx, domain.Lesson{ID: 30, Group: "C"}))
	require.NoError(t, store.AddLesson(ctx, domain.Lesson{ID: 10, Group: "A"}))
	require.NoError(t, store.AddLesson(ctx, domain.Lesson{ID: 20, Group: "B"}))

	lessons, err := store.ListLessons(ctx)
	require.NoError(t, err)
	require.Len(t, lessons, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{lessons[0].Group, lessons[1].Group, lessons[2].Group})
}

func TestLessonRepo_RemoveLeavesOthers(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()

	a := testutil.NewTestLesson("ИС-302", "Математика", "Иванов")
	b := testutil.NewTestLesson("ИС-303", "Физика", "Петров")
	testutil.SeedLessons(t, store, a, b)

	require.NoError(t, store.RemoveLesson(ctx, a.ID))

	lessons, err := store.ListLessons(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Lesson{b}, lessons)
}

func TestLessonRepo_ReplaceAll(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()

	testutil.SeedLessons(t, store,
		testutil.NewTestLesson("A", "S", "T"),
		testutil.NewTestLesson("B", "S", "T"),
	)
	kept := testutil.NewTestLesson("C", "S", "T")

	require.NoError(t, store.ReplaceLessons(ctx, []domain.Lesson{kept}))

	lessons, err := store.ListLessons(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Lesson{kept}, lessons)
}

func TestLessonRepo_ReplaceAllRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	sb := db.Builder(db.DriverSQLite)

	plain := repository.NewLessonRepo(database, sb, db.NewSQLUnitOfWork(database))
	original := testutil.NewTestLesson("A", "S", "T")
	require.NoError(t, plain.Create(ctx, original))

	injected := errors.New("disk full")
	failing := repository.NewLessonRepo(database, sb, &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected})

	err := failing.ReplaceAll(ctx, []domain.Lesson{
		testutil.NewTestLesson("B", "S", "T"),
		testutil.NewTestLesson("C", "S", "T"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, injected)

	lessons, err := plain.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Lesson{original}, lessons)
}

func TestNoticeRepo_GetSet(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := store.Notice.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.SetNotice(ctx, "Ертең сабақ болмайды!"))
	require.NoError(t, store.SetNotice(ctx, "Сабақ 9:00-де басталады"))

	text, err := store.Notice.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Сабақ 9:00-де басталады", text)
}
