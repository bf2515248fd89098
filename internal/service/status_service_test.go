package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sdeshmukh/website-backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockStatusCheckRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockStatusCheckRepository struct {
	insertFunc func(ctx context.Context, sc *model.StatusCheck) error
	listFunc   func(ctx context.Context) ([]*model.StatusCheck, error)
}

func (m *mockStatusCheckRepository) Insert(ctx context.Context, sc *model.StatusCheck) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, sc)
	}
	return nil
}

func (m *mockStatusCheckRepository) List(ctx context.Context) ([]*model.StatusCheck, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestStatusCheckService_Create_CompletesRecord(t *testing.T) {
	var saved *model.StatusCheck
	mock := &mockStatusCheckRepository{
		insertFunc: func(ctx context.Context, sc *model.StatusCheck) error {
			saved = sc
			return nil
		},
	}
	svc := NewStatusCheckService(mock)

	before := time.Now().UTC()
	got, err := svc.Create(context.Background(), "monitor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := time.Now().UTC()

	if saved == nil {
		t.Fatal("expected Insert to be called")
	}
	if got != saved {
		t.Error("expected the persisted record to be returned")
	}
	if got.ID == "" {
		t.Error("expected a generated id")
	}
	if got.ClientName != "monitor-1" {
		t.Errorf("expected client_name=monitor-1, got %q", got.ClientName)
	}
	if got.Timestamp.Before(before) || got.Timestamp.After(after) {
		t.Errorf("Timestamp %v not in expected range", got.Timestamp)
	}
}

func TestStatusCheckService_Create_RepositoryError(t *testing.T) {
	mock := &mockStatusCheckRepository{
		insertFunc: func(ctx context.Context, sc *model.StatusCheck) error {
			return errors.New("db write failed")
		},
	}
	svc := NewStatusCheckService(mock)

	if _, err := svc.Create(context.Background(), "c"); err == nil {
		t.Error("expected error from repository, got nil")
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestStatusCheckService_List_ReturnsChecks(t *testing.T) {
	want := []*model.StatusCheck{{ID: "1", ClientName: "a", Timestamp: time.Now().UTC()}}
	mock := &mockStatusCheckRepository{
		listFunc: func(ctx context.Context) ([]*model.StatusCheck, error) {
			return want, nil
		},
	}
	svc := NewStatusCheckService(mock)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStatusCheckService_List_RepositoryError(t *testing.T) {
	mock := &mockStatusCheckRepository{
		listFunc: func(ctx context.Context) ([]*model.StatusCheck, error) {
			return nil, errors.New("db read failed")
		},
	}
	svc := NewStatusCheckService(mock)

	if _, err := svc.List(context.Background()); err == nil {
		t.Error("expected error from repository, got nil")
	}
}
