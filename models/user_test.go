package models

import "testing"

func TestPostCredits(t *testing.T) {
	t.Parallel()

	u := &UserProfile{FreePostsRemaining: 2, PurchasedPostsRemaining: 3}
	if got := u.PostCredits(); got != 5 {
		t.Fatalf("expected 5 credits, got %d", got)
	}

	if (&UserProfile{}).PostCredits() != 0 {
		t.Fatal("expected zero credits for a fresh profile")
	}
}

func TestHasSavedJob(t *testing.T) {
	t.Parallel()

	u := &UserProfile{SavedJobs: []string{"j1", "j2"}}
	if !u.HasSavedJob("j2") {
		t.Fatal("expected j2 saved")
	}
	if u.HasSavedJob("j3") {
		t.Fatal("expected j3 not saved")
	}
}

func TestHasFulfilledSession(t *testing.T) {
	t.Parallel()

	u := &UserProfile{FulfilledSessions: []string{"cs_1"}}
	if !u.HasFulfilledSession("cs_1") {
		t.Fatal("expected cs_1 recorded")
	}
	if u.HasFulfilledSession("cs_2") {
		t.Fatal("expected cs_2 not recorded")
	}
}
