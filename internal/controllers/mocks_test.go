package controllers

import "time"

type mockScheduler struct {
	next       time.Time
	persists   int
	persistErr error
}

func (m *mockScheduler) Init() error        { return nil }
func (m *mockScheduler) Stop()              {}
func (m *mockScheduler) NextRun() time.Time { return m.next }
func (m *mockScheduler) Restore() error     { return nil }

func (m *mockScheduler) Persist() error {
	m.persists++
	return m.persistErr
}
