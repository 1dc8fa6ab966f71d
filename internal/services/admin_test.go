package services

import (
	"sync"
	"testing"
	"time"
)

func TestAdminResolver_EmptyEmail(t *testing.T) {
	called := false
	resolver := NewAdminResolver(func(email string) bool {
		called = true
		return true
	})

	if resolver.IsAdmin("") {
		t.Error("empty email should resolve to false")
	}
	if called {
		t.Error("empty email should not trigger a lookup")
	}
}

func TestAdminResolver_CachesResult(t *testing.T) {
	calls := 0
	resolver := NewAdminResolver(func(email string) bool {
		calls++
		return email == "admin@learnflow.dev"
	})

	for i := 0; i < 3; i++ {
		if !resolver.IsAdmin("admin@learnflow.dev") {
			t.Fatal("expected admin@learnflow.dev to be admin")
		}
	}
	if calls != 1 {
		t.Errorf("lookup called %d times, expected 1 (cached after first)", calls)
	}

	if resolver.IsAdmin("user@learnflow.dev") {
		t.Error("user@learnflow.dev should not be admin")
	}
	if calls != 2 {
		t.Errorf("lookup called %d times, expected 2 after identity change", calls)
	}
}

func TestAdminResolver_Invalidate(t *testing.T) {
	calls := 0
	resolver := NewAdminResolver(func(email string) bool {
		calls++
		return true
	})

	resolver.IsAdmin("admin@learnflow.dev")
	resolver.Invalidate()
	resolver.IsAdmin("admin@learnflow.dev")

	if calls != 2 {
		t.Errorf("lookup called %d times, expected 2 (cache dropped by Invalidate)", calls)
	}
}

func TestAdminResolver_StaleLookupDoesNotOverwrite(t *testing.T) {
	// The first lookup is slow; a second identity resolves while it is in
	// flight. When the slow lookup finishes, its answer must not replace the
	// cached answer for the newer identity.
	var mu sync.Mutex
	delays := map[string]time.Duration{
		"slow@learnflow.dev": 50 * time.Millisecond,
		"fast@learnflow.dev": 0,
	}
	answers := map[string]bool{
		"slow@learnflow.dev": true,
		"fast@learnflow.dev": false,
	}

	resolver := NewAdminResolver(func(email string) bool {
		mu.Lock()
		d := delays[email]
		a := answers[email]
		mu.Unlock()
		time.Sleep(d)
		return a
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if !resolver.IsAdmin("slow@learnflow.dev") {
			t.Error("slow lookup should still return its own answer")
		}
	}()

	// Let the slow lookup start, then resolve the newer identity.
	time.Sleep(10 * time.Millisecond)
	if resolver.IsAdmin("fast@learnflow.dev") {
		t.Error("fast@learnflow.dev should not be admin")
	}
	wg.Wait()

	// The cache must still answer for the newer identity without another
	// lookup flipping the result.
	mu.Lock()
	answers["fast@learnflow.dev"] = true // a fresh lookup would now say true
	mu.Unlock()

	if resolver.IsAdmin("fast@learnflow.dev") {
		t.Error("cached answer for fast@learnflow.dev should still be false")
	}
}

func TestAdminResolver_ConcurrentSameEmail(t *testing.T) {
	resolver := NewAdminResolver(func(email string) bool {
		time.Sleep(5 * time.Millisecond)
		return true
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !resolver.IsAdmin("admin@learnflow.dev") {
				t.Error("concurrent resolve should return true")
			}
		}()
	}
	wg.Wait()
}

func TestCreateMembershipRequest_Structure(t *testing.T) {
	req := CreateMembershipRequest{Email: "admin@learnflow.dev"}
	if req.Email != "admin@learnflow.dev" {
		t.Errorf("Email = %q, expected %q", req.Email, "admin@learnflow.dev")
	}
}
