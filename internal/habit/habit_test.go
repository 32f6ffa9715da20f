package habit

import (
	"io"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/julianstephens/daybook/internal/dateutil"
	"github.com/julianstephens/daybook/internal/notify"
	"github.com/julianstephens/daybook/internal/store"
)

// newFixture pins the clock to Monday 2024-01-01 08:00 local.
func newFixture(t *testing.T) (*Service, *dateutil.FixedClock, *notify.MemoryScheduler) {
	t.Helper()
	backend, err := store.NewDiskvBackend(filepath.Join(t.TempDir(), "store"))
	if err != nil {
		t.Fatalf("backend: %v", err)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	st := store.New(backend, logger)

	monday, err := time.ParseInLocation("2006-01-02 15:04", "2024-01-01 08:00", time.Local)
	if err != nil {
		t.Fatal(err)
	}
	clock := &dateutil.FixedClock{T: monday}
	sched := &notify.MemoryScheduler{}
	return NewService(st, sched, clock, logger), clock, sched
}

func TestCreate_InitialState(t *testing.T) {
	svc, _, sched := newFixture(t)

	h := svc.Create("Stretch", "08:00", dateutil.WeekdaySetOf(1, 4))

	if h.ID == "" {
		t.Error("expected a generated ID")
	}
	if h.Streak != 0 || h.Done || h.LastDate != nil {
		t.Errorf("unexpected initial state: %+v", h)
	}
	if len(h.NotifyIDs) != 2 {
		t.Errorf("expected one reminder handle per scheduled weekday, got %d", len(h.NotifyIDs))
	}
	if len(sched.Scheduled) != 2 {
		t.Errorf("expected 2 scheduled reminders, got %d", len(sched.Scheduled))
	}
}

func TestCreate_DuplicateTextTolerated(t *testing.T) {
	svc, _, _ := newFixture(t)

	first := svc.Create("Read", "20:00", dateutil.WeekdaySetOf(2))
	second := svc.Create("Read", "21:00", dateutil.WeekdaySetOf(3))

	if first.ID == second.ID {
		t.Fatal("duplicate habits must get distinct IDs")
	}
	if got := len(svc.List()); got != 2 {
		t.Fatalf("expected 2 habits, got %d", got)
	}
	found, ok := svc.FindByText("Read")
	if !ok || found.ID != first.ID {
		t.Error("FindByText should return the first match")
	}
}

// Walks a full week: done Monday, untouched Tuesday, cleared and re-done
// Thursday.
func TestStreak_ContinuesAcrossScheduledDays(t *testing.T) {
	svc, clock, _ := newFixture(t)
	h := svc.Create("Stretch", "08:00", dateutil.WeekdaySetOf(1, 4)) // Mon, Thu

	got, ok := svc.MarkDone(h.ID)
	if !ok {
		t.Fatal("habit not found")
	}
	if got.Streak != 1 || !got.Done {
		t.Fatalf("after Monday completion: streak=%d done=%v, want 1/true", got.Streak, got.Done)
	}

	clock.AdvanceDays(1) // Tuesday, not scheduled
	svc.Rollover()
	got, _ = svc.Get(h.ID)
	if got.Streak != 1 || !got.Done {
		t.Fatalf("Tuesday rollover should leave unscheduled habit untouched: %+v", got)
	}

	clock.AdvanceDays(2) // Thursday, scheduled
	svc.Rollover()
	got, _ = svc.Get(h.ID)
	if got.Done {
		t.Fatal("Thursday rollover should clear the done flag")
	}
	if got.Streak != 1 {
		t.Fatalf("unbroken chain should keep its streak through rollover, got %d", got.Streak)
	}

	got, _ = svc.MarkDone(h.ID)
	if got.Streak != 2 || !got.Done {
		t.Errorf("Thursday completion should continue the chain: streak=%d done=%v, want 2/true", got.Streak, got.Done)
	}
}

func TestStreak_BrokenChainRestartsAtOne(t *testing.T) {
	svc, clock, _ := newFixture(t)
	h := svc.Create("Stretch", "08:00", dateutil.WeekdaySetOf(1, 4))

	svc.MarkDone(h.ID) // Monday

	clock.AdvanceDays(7) // next Monday, Thursday was missed
	svc.Rollover()
	got, _ := svc.Get(h.ID)
	if got.Streak != 0 || got.Done {
		t.Fatalf("rollover past a missed Thursday should zero the streak: %+v", got)
	}

	got, _ = svc.MarkDone(h.ID)
	if got.Streak != 1 {
		t.Errorf("completion after a broken chain should restart at 1, got %d", got.Streak)
	}
}

func TestRollover_Idempotent(t *testing.T) {
	svc, clock, _ := newFixture(t)
	svc.Create("Stretch", "08:00", dateutil.WeekdaySetOf(1, 4))
	svc.Create("Journal", "21:00", dateutil.AllWeekdays)
	svc.Create("Float", "12:00", dateutil.WeekdaySet{})

	clock.AdvanceDays(3) // Thursday

	once := svc.Rollover()
	twice := svc.Rollover()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("double rollover diverged:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestRollover_SkipsHabitCompletedToday(t *testing.T) {
	svc, _, _ := newFixture(t)
	h := svc.Create("Stretch", "08:00", dateutil.WeekdaySetOf(1, 4))

	svc.MarkDone(h.ID) // Monday, scheduled today

	svc.Rollover() // same Monday, e.g. app foregrounded again
	got, _ := svc.Get(h.ID)
	if !got.Done || got.Streak != 1 {
		t.Errorf("same-day rollover must not clear a completion made today: %+v", got)
	}
}

func TestMarkDone_ToggleUndoesExactly(t *testing.T) {
	svc, clock, _ := newFixture(t)
	h := svc.Create("Stretch", "08:00", dateutil.WeekdaySetOf(1, 4))

	// Build a streak of 1 on Monday, then toggle twice on Thursday.
	svc.MarkDone(h.ID)
	clock.AdvanceDays(3)
	svc.Rollover()

	pre, _ := svc.Get(h.ID)
	marked, _ := svc.MarkDone(h.ID)
	if marked.Streak != pre.Streak+1 {
		t.Fatalf("mark should increment: %d -> %d", pre.Streak, marked.Streak)
	}
	unmarked, _ := svc.MarkDone(h.ID)
	if unmarked.Done || unmarked.Streak != pre.Streak {
		t.Errorf("unmark should exactly reverse: streak=%d done=%v, want %d/false",
			unmarked.Streak, unmarked.Done, pre.Streak)
	}

	// Re-marking the same day continues from the restored value.
	remarked, _ := svc.MarkDone(h.ID)
	if remarked.Streak != marked.Streak || !remarked.Done {
		t.Errorf("re-mark should restore the incremented streak, got %+v", remarked)
	}
}

func TestMarkUndone_KeepsStreak(t *testing.T) {
	svc, _, _ := newFixture(t)
	h := svc.Create("Stretch", "08:00", dateutil.WeekdaySetOf(1, 4))

	svc.MarkDone(h.ID)
	got, ok := svc.MarkUndone(h.ID)
	if !ok {
		t.Fatal("habit not found")
	}
	if got.Done || got.Streak != 1 {
		t.Errorf("MarkUndone should only clear the flag: %+v", got)
	}
}

func TestResetStreak(t *testing.T) {
	svc, _, _ := newFixture(t)
	h := svc.Create("Stretch", "08:00", dateutil.WeekdaySetOf(1, 4))

	svc.MarkDone(h.ID)
	got, _ := svc.ResetStreak(h.ID)
	if got.Streak != 0 || got.Done {
		t.Errorf("expected zeroed streak and cleared flag: %+v", got)
	}
}

func TestEmptyWeekdaySet_NeverScheduled(t *testing.T) {
	svc, clock, _ := newFixture(t)
	h := svc.Create("Float", "12:00", dateutil.WeekdaySet{})

	got, _ := svc.MarkDone(h.ID)
	if got.Streak != 1 || !got.Done {
		t.Fatalf("unexpected state after completion: %+v", got)
	}
	if got.LastDate != nil {
		t.Error("completion day must only be recorded on scheduled weekdays")
	}

	clock.AdvanceDays(1)
	svc.Rollover()
	after, _ := svc.Get(h.ID)
	if !after.Done || after.Streak != 1 {
		t.Errorf("rollover must never touch an unscheduled habit: %+v", after)
	}
}

func TestDelete_CancelsReminders(t *testing.T) {
	svc, _, sched := newFixture(t)
	h := svc.Create("Stretch", "08:00", dateutil.WeekdaySetOf(1, 4))

	svc.Delete(h.ID)

	if _, ok := svc.Get(h.ID); ok {
		t.Fatal("habit should be gone")
	}
	if len(sched.Cancelled) != len(h.NotifyIDs) || len(sched.Cancelled) != 2 {
		t.Errorf("expected every reminder handle cancelled, got %v", sched.Cancelled)
	}

	// Deleting again is a silent no-op.
	svc.Delete(h.ID)
	if len(sched.Cancelled) != 2 {
		t.Error("repeat delete must not cancel again")
	}
}

func TestUnknownHabit_NoOps(t *testing.T) {
	svc, _, _ := newFixture(t)
	svc.Create("Stretch", "08:00", dateutil.WeekdaySetOf(1))

	if _, ok := svc.MarkDone("nope"); ok {
		t.Error("MarkDone on unknown ID should report not found")
	}
	if _, ok := svc.MarkUndone("nope"); ok {
		t.Error("MarkUndone on unknown ID should report not found")
	}
	if _, ok := svc.ResetStreak("nope"); ok {
		t.Error("ResetStreak on unknown ID should report not found")
	}
	if got := len(svc.List()); got != 1 {
		t.Errorf("no-ops must leave the collection unchanged, got %d habits", got)
	}
}
