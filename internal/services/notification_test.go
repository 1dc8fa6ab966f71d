package services

import "testing"

func TestFanOutMessage(t *testing.T) {
	cases := []struct {
		projectName string
		title       string
		expected    string
	}{
		{"Study Buddy", "Sprint review notes", "New update in Study Buddy: Sprint review notes"},
		{"", "Sprint review notes", "New project update: Sprint review notes"},
	}

	for _, tc := range cases {
		if got := fanOutMessage(tc.projectName, tc.title); got != tc.expected {
			t.Errorf("fanOutMessage(%q, %q) = %q, expected %q", tc.projectName, tc.title, got, tc.expected)
		}
	}
}

func TestNotificationListRequest_Defaults(t *testing.T) {
	req := &NotificationListRequest{}

	if req.Page != 0 {
		t.Errorf("default Page should be 0, got %d", req.Page)
	}
	if req.PageSize != 0 {
		t.Errorf("default PageSize should be 0, got %d", req.PageSize)
	}
	if req.UnreadOnly {
		t.Error("UnreadOnly should default to false")
	}
}
