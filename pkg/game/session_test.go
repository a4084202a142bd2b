package game

import (
	"testing"
	"time"
)

func newFakeClock() *StepClock {
	return NewStepClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateRunning, "Running"},
		{StatePaused, "Paused"},
		{StateGameOver, "GameOver"},
		{State(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

// TestSessionStartsRunning 测试新会话处于 Running 状态且计时从 0 开始
func TestSessionStartsRunning(t *testing.T) {
	clock := newFakeClock()
	s := NewSession(clock)

	if s.State() != StateRunning {
		t.Fatalf("Expected Running, got %s", s.State())
	}
	if s.Elapsed() != 0 {
		t.Errorf("Expected elapsed 0, got %v", s.Elapsed())
	}

	clock.Advance(2500 * time.Millisecond)
	if s.ElapsedSeconds() != 2 {
		t.Errorf("Expected 2 whole seconds, got %d", s.ElapsedSeconds())
	}
}

// TestSessionPauseExcludesPausedTime 测试暂停时间不计入存活时间
func TestSessionPauseExcludesPausedTime(t *testing.T) {
	clock := newFakeClock()
	s := NewSession(clock)

	clock.Advance(3 * time.Second)
	if got := s.TogglePause(); got != StatePaused {
		t.Fatalf("Expected Paused, got %s", got)
	}

	clock.Advance(10 * time.Second)
	if s.ElapsedSeconds() != 3 {
		t.Errorf("Expected elapsed frozen at 3s while paused, got %d", s.ElapsedSeconds())
	}

	if got := s.TogglePause(); got != StateRunning {
		t.Fatalf("Expected Running, got %s", got)
	}
	clock.Advance(2 * time.Second)
	if s.ElapsedSeconds() != 5 {
		t.Errorf("Expected 5s excluding pause, got %d", s.ElapsedSeconds())
	}
}

// TestSessionEndFreezesTime 测试 GameOver 冻结存活时间
func TestSessionEndFreezesTime(t *testing.T) {
	clock := newFakeClock()
	s := NewSession(clock)

	clock.Advance(7900 * time.Millisecond)
	if !s.End() {
		t.Fatal("Expected End() to transition from Running")
	}
	if s.State() != StateGameOver {
		t.Fatalf("Expected GameOver, got %s", s.State())
	}

	clock.Advance(time.Minute)
	if s.ElapsedSeconds() != 7 {
		t.Errorf("Expected frozen 7s, got %d", s.ElapsedSeconds())
	}

	if s.End() {
		t.Error("End() should not transition twice")
	}
	if got := s.TogglePause(); got != StateGameOver {
		t.Errorf("TogglePause in GameOver should be ignored, got %s", got)
	}
}

// TestSessionEndIgnoredWhilePaused 测试暂停时不会结束
func TestSessionEndIgnoredWhilePaused(t *testing.T) {
	s := NewSession(newFakeClock())
	s.TogglePause()
	if s.End() {
		t.Error("End() should be ignored while paused")
	}
}

// TestSessionRestart 测试任意状态都可以重新开始
func TestSessionRestart(t *testing.T) {
	for _, setup := range []func(*Session){
		func(s *Session) {},
		func(s *Session) { s.TogglePause() },
		func(s *Session) { s.End() },
	} {
		clock := newFakeClock()
		s := NewSession(clock)
		clock.Advance(4 * time.Second)
		setup(s)
		clock.Advance(time.Second)

		s.Restart()
		if s.State() != StateRunning {
			t.Errorf("Expected Running after restart, got %s", s.State())
		}
		if s.Elapsed() != 0 {
			t.Errorf("Expected elapsed reset to 0, got %v", s.Elapsed())
		}
	}
}

func TestNewSessionNilClockUsesSystemClock(t *testing.T) {
	s := NewSession(nil)
	if s.Elapsed() < 0 {
		t.Errorf("Expected non-negative elapsed, got %v", s.Elapsed())
	}
}
