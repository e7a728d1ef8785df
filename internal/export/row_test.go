package export

import (
	"strings"
	"testing"
	"time"

	"github.com/matillion/members-fetcher/internal/directory"
)

func TestBuildRow(t *testing.T) {
	const guildID = 123
	member := directory.Member{
		ID:          2,
		Username:    "member_a",
		DisplayName: "Member A",
		JoinedAt:    time.Date(2023, 5, 1, 10, 30, 0, 0, time.UTC),
		CreatedAt:   time.Date(2019, 1, 2, 3, 4, 5, 678000000, time.UTC),
	}
	profile := directory.Profile{
		MutualGuilds: []directory.Ref{
			{ID: 500, Name: "Other Guild"},
			{ID: guildID, Name: "Test Server"},
			{ID: 600, Name: "Third"},
		},
		MutualFriends: []directory.Ref{
			{ID: 7, Name: "alice"},
			{ID: 8, Name: "bob"},
		},
	}

	row := BuildRow(member, profile, guildID)

	if row.ID != 2 {
		t.Errorf("ID: got %d, want 2", row.ID)
	}
	if row.Username != "member_a" || row.DisplayName != "Member A" {
		t.Errorf("names: got %q/%q", row.Username, row.DisplayName)
	}
	if row.MutualGuildsCount != 2 {
		t.Errorf("MutualGuildsCount: got %d, want 2", row.MutualGuildsCount)
	}
	if row.MutualFriendsCount != 2 {
		t.Errorf("MutualFriendsCount: got %d, want 2", row.MutualFriendsCount)
	}
	wantGuilds := "Other Guild (500), Third (600)"
	if row.MutualGuilds != wantGuilds {
		t.Errorf("MutualGuilds: got %q, want %q", row.MutualGuilds, wantGuilds)
	}
	wantFriends := "alice (7), bob (8)"
	if row.MutualFriends != wantFriends {
		t.Errorf("MutualFriends: got %q, want %q", row.MutualFriends, wantFriends)
	}
	if row.JoinedAt != "2023-05-01 10:30:00.000000+00:00" {
		t.Errorf("JoinedAt: got %q", row.JoinedAt)
	}
	if row.CreatedAt != "2019-01-02 03:04:05.678000+00:00" {
		t.Errorf("CreatedAt: got %q", row.CreatedAt)
	}
}

func TestBuildRow_OnlyTargetGuild(t *testing.T) {
	profile := directory.Profile{
		MutualGuilds: []directory.Ref{{ID: 123, Name: "Test Server"}},
	}

	row := BuildRow(directory.Member{ID: 3}, profile, 123)

	if row.MutualGuildsCount != 0 {
		t.Errorf("MutualGuildsCount: got %d, want 0", row.MutualGuildsCount)
	}
	if row.MutualGuilds != "" {
		t.Errorf("MutualGuilds: got %q, want empty", row.MutualGuilds)
	}
	if row.MutualFriends != "" {
		t.Errorf("MutualFriends: got %q, want empty", row.MutualFriends)
	}
	if row.JoinedAt != "" || row.CreatedAt != "" {
		t.Errorf("zero times should render empty, got %q/%q", row.JoinedAt, row.CreatedAt)
	}
}

func TestBuildRow_NeverRendersTargetGuild(t *testing.T) {
	profile := directory.Profile{
		MutualGuilds: []directory.Ref{
			{ID: 123, Name: "Test Server"},
			{ID: 1234, Name: "Lookalike"},
			{ID: 123, Name: "Duplicate"},
		},
	}

	row := BuildRow(directory.Member{ID: 9}, profile, 123)

	if strings.Contains(row.MutualGuilds, "(123)") {
		t.Errorf("MutualGuilds contains target guild: %q", row.MutualGuilds)
	}
	if row.MutualGuilds != "Lookalike (1234)" {
		t.Errorf("MutualGuilds: got %q", row.MutualGuilds)
	}
}

func TestBuildRow_ProfileWithoutTargetGuild(t *testing.T) {
	row := BuildRow(directory.Member{ID: 9}, directory.Profile{}, 123)

	// The offset is applied unconditionally; inconsistent data is reported, not corrected.
	if row.MutualGuildsCount != -1 {
		t.Errorf("MutualGuildsCount: got %d, want -1", row.MutualGuildsCount)
	}
}
