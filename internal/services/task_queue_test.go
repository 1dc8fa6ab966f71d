package services

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestTaskTypeNotify_Constant(t *testing.T) {
	if TaskTypeNotify != "notify:project_update" {
		t.Errorf("TaskTypeNotify = %q, expected %q", TaskTypeNotify, "notify:project_update")
	}
}

func TestNotifyTask_Structure(t *testing.T) {
	task := NotifyTask{
		UpdateID:    1,
		ProjectID:   10,
		AuthorID:    3,
		ProjectName: "Distributed KV Store",
		Title:       "Milestone 2 reached",
	}

	if task.UpdateID != 1 {
		t.Errorf("UpdateID = %d, expected 1", task.UpdateID)
	}
	if task.ProjectID != 10 {
		t.Errorf("ProjectID = %d, expected 10", task.ProjectID)
	}
	if task.AuthorID != 3 {
		t.Errorf("AuthorID = %d, expected 3", task.AuthorID)
	}
	if task.ProjectName != "Distributed KV Store" {
		t.Errorf("ProjectName = %q, expected %q", task.ProjectName, "Distributed KV Store")
	}
	if task.Title != "Milestone 2 reached" {
		t.Errorf("Title = %q, expected %q", task.Title, "Milestone 2 reached")
	}
}

func TestSyncQueue_New(t *testing.T) {
	queue := NewSyncQueue()
	if queue == nil {
		t.Error("NewSyncQueue should not return nil")
	}
}

func TestSyncQueue_IsAsync(t *testing.T) {
	queue := NewSyncQueue()
	if queue.IsAsync() {
		t.Error("SyncQueue.IsAsync() should return false")
	}
}

func TestSyncQueue_Close(t *testing.T) {
	queue := NewSyncQueue()
	err := queue.Close()
	if err != nil {
		t.Errorf("SyncQueue.Close() should return nil, got %v", err)
	}
}

func TestSyncQueue_EnqueueWithoutProcessor(t *testing.T) {
	queue := NewSyncQueue()
	task := &NotifyTask{
		UpdateID:  1,
		ProjectID: 1,
	}

	err := queue.Enqueue(task)
	if err != nil {
		t.Errorf("Enqueue without processor should not error, got %v", err)
	}
}

func TestSyncQueue_ProcessesTask(t *testing.T) {
	queue := NewSyncQueue()

	var mu sync.Mutex
	var processed *NotifyTask
	done := make(chan struct{})

	queue.SetProcessor(func(ctx context.Context, task *NotifyTask) error {
		mu.Lock()
		processed = task
		mu.Unlock()
		close(done)
		return nil
	})

	if err := queue.Enqueue(&NotifyTask{UpdateID: 7, ProjectID: 2, Title: "hello"}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("processor was not invoked within 1s")
	}

	mu.Lock()
	defer mu.Unlock()
	if processed == nil || processed.UpdateID != 7 {
		t.Errorf("processed task = %+v, expected UpdateID 7", processed)
	}
}

func TestAsyncQueue_IsAsync(t *testing.T) {
	queue := &AsyncQueue{}
	if !queue.IsAsync() {
		t.Error("AsyncQueue.IsAsync() should return true")
	}
}
