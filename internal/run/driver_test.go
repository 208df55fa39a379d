package run

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
)

// levelFunc scripts one level: it receives the entering snapshot.
type levelFunc func(GameState) LevelResult

// completeLevel finishes a level without losing anything.
func completeLevel(s GameState) LevelResult {
	s.Score += 100
	s.ShipsDestroyed += 10
	return LevelResult{State: s}
}

// fakeScreens plays back scripted screen results and records what the
// driver handed in.
type fakeScreens struct {
	titles []ReturnCode
	levels []levelFunc
	scores []ReturnCode

	titleCalls int
	highScores int
	customs    int
	entered    []GameState
	settings   []config.GameSettings
	scored     []GameState
	err        error
}

func (f *fakeScreens) Title(context.Context) (ReturnCode, error) {
	f.titleCalls++
	if len(f.titles) == 0 {
		return Exit, nil
	}
	c := f.titles[0]
	f.titles = f.titles[1:]
	return c, nil
}

func (f *fakeScreens) Level(_ context.Context, s GameState, settings config.GameSettings) (LevelResult, error) {
	if f.err != nil {
		return LevelResult{}, f.err
	}
	f.entered = append(f.entered, s)
	f.settings = append(f.settings, settings)
	if len(f.levels) == 0 {
		return completeLevel(s), nil
	}
	fn := f.levels[0]
	f.levels = f.levels[1:]
	return fn(s), nil
}

func (f *fakeScreens) Score(_ context.Context, s GameState) (ReturnCode, error) {
	f.scored = append(f.scored, s)
	if len(f.scores) == 0 {
		return MainMenu, nil
	}
	c := f.scores[0]
	f.scores = f.scores[1:]
	return c, nil
}

func (f *fakeScreens) HighScores(context.Context) (ReturnCode, error) {
	f.highScores++
	return MainMenu, nil
}

func (f *fakeScreens) Custom(context.Context) (ReturnCode, error) {
	f.customs++
	return MainMenu, nil
}

type fakeSaver struct {
	saved   *GameState
	loadErr error
	saves   int
	clears  int
}

func (s *fakeSaver) Save(g GameState) error {
	s.saves++
	s.saved = &g
	return nil
}

func (s *fakeSaver) Load() (GameState, error) {
	if s.loadErr != nil {
		return GameState{}, s.loadErr
	}
	if s.saved == nil {
		return GameState{}, errors.New("nothing saved")
	}
	return *s.saved, nil
}

func (s *fakeSaver) Clear() error {
	s.clears++
	s.saved = nil
	return nil
}

type fakeRecorder struct {
	runs []GameState
}

func (r *fakeRecorder) Record(_ context.Context, s GameState) error {
	r.runs = append(r.runs, s)
	return nil
}

type fakeAudio struct {
	calls []string
}

func (a *fakeAudio) Play(e audio.Effect) {
	if e == audio.EffectRoundEnd {
		a.calls = append(a.calls, "round-end")
	}
}

func (a *fakeAudio) StartLoop(t audio.Track) {
	if t == audio.TrackTitle {
		a.calls = append(a.calls, "title")
	}
}

func (a *fakeAudio) Stop() {
	a.calls = append(a.calls, "stop")
}

func newTestDriver(t *testing.T, screens Screens, opts ...Option) *Driver {
	t.Helper()
	d, err := NewDriver(screens, config.DefaultConfig(), opts...)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	return d
}

func TestLosingOnFirstLevelGoesToScore(t *testing.T) {
	screens := &fakeScreens{
		titles: []ReturnCode{Play},
		levels: []levelFunc{func(s GameState) LevelResult {
			s.LivesRemaining = 0
			s.Score = 40
			return LevelResult{State: s}
		}},
	}
	saver := &fakeSaver{}
	d := newTestDriver(t, screens, WithSaver(saver))

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(screens.entered) != 1 {
		t.Fatalf("played %d levels, expected 1", len(screens.entered))
	}
	if len(screens.scored) != 1 {
		t.Fatalf("score screen shown %d times, expected 1", len(screens.scored))
	}
	final := screens.scored[0]
	if final.Level != 1 || final.LivesRemaining != 0 || final.Score != 40 {
		t.Errorf("score screen got %+v, expected level 1, 0 lives, 40 points", final)
	}
	if saver.saves != 0 || saver.clears != 1 {
		t.Errorf("saves=%d clears=%d, expected no checkpoint and one clear", saver.saves, saver.clears)
	}
	if screens.titleCalls != 2 {
		t.Errorf("title shown %d times, expected a return to the main menu", screens.titleCalls)
	}
}

func TestCompletingLastLevelGoesToScore(t *testing.T) {
	screens := &fakeScreens{titles: []ReturnCode{Load}}
	saver := &fakeSaver{}
	saver.Save(GameState{Level: 9, LivesRemaining: 3, Score: 800})
	saver.saves = 0
	d := newTestDriver(t, screens, WithSaver(saver))

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(screens.entered) != 1 || screens.entered[0].Level != 9 {
		t.Fatalf("entered %+v, expected only level 9", screens.entered)
	}
	if len(screens.scored) != 1 {
		t.Fatalf("score screen shown %d times, expected 1", len(screens.scored))
	}
	if got := screens.scored[0]; got.Level != 10 || got.Score != 900 {
		t.Errorf("final state %+v, expected level past the table and 900 points", got)
	}
	if screens.titleCalls != 2 {
		t.Errorf("title shown %d times, expected a return to the main menu", screens.titleCalls)
	}
}

func TestFullRunCarriesStateForward(t *testing.T) {
	screens := &fakeScreens{
		titles: []ReturnCode{Play},
		levels: []levelFunc{
			completeLevel,
			func(s GameState) LevelResult {
				s.LivesRemaining--
				s.BulletsShot += 7
				return LevelResult{State: s}
			},
		},
	}
	recorder := &fakeRecorder{}
	d := newTestDriver(t, screens, WithRecorder(recorder))

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(screens.entered) != 9 {
		t.Fatalf("played %d levels, expected 9", len(screens.entered))
	}
	for i, s := range screens.entered {
		if s.Level != i+1 {
			t.Errorf("level %d entered as %d", i+1, s.Level)
		}
	}
	if screens.entered[1].Score != 100 {
		t.Errorf("level 2 score %d, expected 100 carried from level 1", screens.entered[1].Score)
	}
	if screens.entered[2].LivesRemaining != 3 {
		t.Errorf("level 3 lives %d, expected the bonus life back to 3", screens.entered[2].LivesRemaining)
	}
	if screens.entered[8].BulletsShot != 7 {
		t.Errorf("bullets shot %d on level 9, expected stats to carry", screens.entered[8].BulletsShot)
	}
	if !screens.settings[5].Bonus || !screens.settings[7].Boss {
		t.Error("levels 6 and 8 should get the bonus and boss settings")
	}
	if len(recorder.runs) != 1 || recorder.runs[0].Level != 10 {
		t.Errorf("recorded %+v, expected one finished run", recorder.runs)
	}
}

func TestRestartLevelRetriesPreLevelSnapshot(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Run.MaxLives = 5

	screens := &fakeScreens{
		titles: []ReturnCode{Load},
		levels: []levelFunc{
			func(s GameState) LevelResult {
				s.Score = 999
				s.LivesRemaining = 1
				return LevelResult{State: s, Signal: SignalRestartLevel}
			},
			func(s GameState) LevelResult {
				s.LivesRemaining = 0
				return LevelResult{State: s}
			},
		},
	}
	saver := &fakeSaver{}
	saver.Save(GameState{Level: 3, LivesRemaining: 2, Score: 50})
	d, err := NewDriver(screens, cfg, WithSaver(saver))
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(screens.entered) != 2 {
		t.Fatalf("entered %d levels, expected the same level twice", len(screens.entered))
	}
	first, second := screens.entered[0], screens.entered[1]
	if first != second {
		t.Errorf("retry got %+v, expected the pre-level snapshot %+v", second, first)
	}
	if second.Level != 3 || second.LivesRemaining != 3 || second.Score != 50 {
		t.Errorf("retry snapshot %+v, expected level 3 with a single bonus life", second)
	}
}

func TestReturnToMainScoresPreLevelSnapshot(t *testing.T) {
	screens := &fakeScreens{
		titles: []ReturnCode{Play, Play},
		levels: []levelFunc{
			completeLevel,
			func(s GameState) LevelResult {
				s.Score = 5000
				s.Level = 7
				s.BulletsShot = 99
				return LevelResult{State: s, Signal: SignalReturnToMain}
			},
			func(s GameState) LevelResult {
				s.LivesRemaining = 0
				return LevelResult{State: s}
			},
		},
	}
	saver := &fakeSaver{}
	recorder := &fakeRecorder{}
	d := newTestDriver(t, screens, WithSaver(saver), WithRecorder(recorder))

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(screens.scored) != 2 {
		t.Fatalf("score screen shown %d times, expected 2", len(screens.scored))
	}
	want := Advance(completeLevel(Fresh(d.Rules())).State)
	if got := screens.scored[0]; got != want {
		t.Errorf("aborted run scored %+v, expected pre-level snapshot %+v", got, want)
	}
	if len(recorder.runs) != 2 || recorder.runs[0] != want {
		t.Errorf("recorded runs = %+v, expected first to be %+v", recorder.runs, want)
	}
	if saver.saved != nil {
		t.Errorf("checkpoint kept after the run ended: %+v", *saver.saved)
	}
	if got := screens.entered[2]; got.Level != 1 || got.Score != 0 {
		t.Errorf("new run started from %+v, aborted level state leaked", got)
	}
	if screens.titleCalls != 3 {
		t.Errorf("title shown %d times, expected 3", screens.titleCalls)
	}
}

func TestLoadFallsBackToFreshRun(t *testing.T) {
	tests := []struct {
		name  string
		saver *fakeSaver
	}{
		{"missing save", &fakeSaver{loadErr: errors.New("no save")}},
		{"unusable save", &fakeSaver{saved: &GameState{Level: 42, LivesRemaining: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screens := &fakeScreens{
				titles: []ReturnCode{Load},
				levels: []levelFunc{func(s GameState) LevelResult {
					s.LivesRemaining = 0
					return LevelResult{State: s}
				}},
			}
			d := newTestDriver(t, screens, WithSaver(tt.saver))

			if err := d.Run(context.Background()); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if got := screens.entered[0]; got != Fresh(d.Rules()) {
				t.Errorf("entered %+v, expected a fresh run", got)
			}
		})
	}
}

func TestCheckpointAfterEachLevel(t *testing.T) {
	saver := &fakeSaver{}
	var checkpoint *GameState
	screens := &fakeScreens{
		titles: []ReturnCode{Play},
		levels: []levelFunc{
			completeLevel,
			func(s GameState) LevelResult {
				checkpoint = saver.saved
				s.LivesRemaining = 0
				return LevelResult{State: s}
			},
		},
	}
	d := newTestDriver(t, screens, WithSaver(saver))

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if checkpoint == nil {
		t.Fatal("expected a checkpoint after level 1")
	}
	if checkpoint.Level != 2 || checkpoint.Score != 100 {
		t.Errorf("checkpoint %+v, expected level 2 with 100 points", *checkpoint)
	}
	if saver.saves != 1 {
		t.Errorf("saved %d times, expected 1", saver.saves)
	}
	if saver.saved != nil {
		t.Error("checkpoint should be cleared when the run ends")
	}
}

func TestRestartCodeStartsFreshRun(t *testing.T) {
	lose := func(s GameState) LevelResult {
		s.LivesRemaining = 0
		s.Score += 10
		return LevelResult{State: s}
	}
	screens := &fakeScreens{
		titles: []ReturnCode{Play},
		levels: []levelFunc{lose, lose},
		scores: []ReturnCode{Restart, MainMenu},
	}
	d := newTestDriver(t, screens)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(screens.scored) != 2 {
		t.Fatalf("score screen shown %d times, expected 2", len(screens.scored))
	}
	if screens.entered[1] != Fresh(d.Rules()) {
		t.Errorf("play again started from %+v", screens.entered[1])
	}
}

func TestLeafScreensAndUnknownCodes(t *testing.T) {
	screens := &fakeScreens{titles: []ReturnCode{HighScores, Custom, ReturnCode(42)}}
	d := newTestDriver(t, screens)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if screens.highScores != 1 || screens.customs != 1 {
		t.Errorf("highScores=%d customs=%d, expected 1 each", screens.highScores, screens.customs)
	}
	if screens.titleCalls != 4 {
		t.Errorf("title shown %d times, expected 4", screens.titleCalls)
	}
}

func TestRunAudio(t *testing.T) {
	screens := &fakeScreens{
		titles: []ReturnCode{Play},
		levels: []levelFunc{func(s GameState) LevelResult {
			s.LivesRemaining = 0
			return LevelResult{State: s}
		}},
	}
	player := &fakeAudio{}
	d := newTestDriver(t, screens, WithAudio(player))

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"title", "round-end", "title", "stop"}
	if len(player.calls) != len(want) {
		t.Fatalf("audio calls %v, expected %v", player.calls, want)
	}
	for i := range want {
		if player.calls[i] != want[i] {
			t.Errorf("audio call %d = %q, expected %q", i, player.calls[i], want[i])
		}
	}
}

func TestRunStopsOnCancelAndErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := newTestDriver(t, &fakeScreens{})
	if err := d.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run on cancelled ctx = %v, expected context.Canceled", err)
	}

	boom := errors.New("terminal gone")
	screens := &fakeScreens{titles: []ReturnCode{Play}, err: boom}
	d = newTestDriver(t, screens)
	if err := d.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run = %v, expected the screen error", err)
	}
}

func TestNewDriverValidates(t *testing.T) {
	if _, err := NewDriver(nil, config.DefaultConfig()); !errors.Is(err, ErrNilScreens) {
		t.Errorf("nil screens err = %v, expected ErrNilScreens", err)
	}

	cfg := config.DefaultConfig()
	cfg.Levels = nil
	if _, err := NewDriver(&fakeScreens{}, cfg); !errors.Is(err, config.ErrEmptyTable) {
		t.Errorf("empty table err = %v, expected ErrEmptyTable", err)
	}
}
