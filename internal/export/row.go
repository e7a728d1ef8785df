package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/matillion/members-fetcher/internal/directory"
)

// timeLayout renders timestamps the way the CSV consumers already parse them.
const timeLayout = "2006-01-02 15:04:05.000000-07:00"

// Row is one exported member. The csv tags define the fixed header.
type Row struct {
	ID                 uint64 `csv:"ID"`
	Username           string `csv:"Username"`
	DisplayName        string `csv:"Display name"`
	JoinedAt           string `csv:"Joined server at"`
	CreatedAt          string `csv:"Created account at"`
	MutualGuildsCount  int    `csv:"Mutual guilds count"`
	MutualFriendsCount int    `csv:"Mutual friends count"`
	MutualGuilds       string `csv:"Mutual guilds"`
	MutualFriends      string `csv:"Mutual friends"`
}

// header lists the column names in file order
var header = []string{
	"ID",
	"Username",
	"Display name",
	"Joined server at",
	"Created account at",
	"Mutual guilds count",
	"Mutual friends count",
	"Mutual guilds",
	"Mutual friends",
}

// BuildRow converts a member and its profile into a row. The guild being
// exported is dropped from the mutual guilds string and from the count.
func BuildRow(m directory.Member, p directory.Profile, guildID uint64) Row {
	guilds := make([]directory.Ref, 0, len(p.MutualGuilds))
	for _, g := range p.MutualGuilds {
		if g.ID == guildID {
			continue
		}
		guilds = append(guilds, g)
	}

	return Row{
		ID:                 m.ID,
		Username:           m.Username,
		DisplayName:        m.DisplayName,
		JoinedAt:           formatTime(m.JoinedAt),
		CreatedAt:          formatTime(m.CreatedAt),
		MutualGuildsCount:  len(p.MutualGuilds) - 1,
		MutualFriendsCount: len(p.MutualFriends),
		MutualGuilds:       joinRefs(guilds),
		MutualFriends:      joinRefs(p.MutualFriends),
	}
}

// hasGuild reports whether the profile lists guildID among its mutual guilds.
func hasGuild(p directory.Profile, guildID uint64) bool {
	for _, g := range p.MutualGuilds {
		if g.ID == guildID {
			return true
		}
	}
	return false
}

// joinRefs renders refs as "name (id)" separated by ", "
func joinRefs(refs []directory.Ref) string {
	var sb strings.Builder
	for i, r := range refs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.Name)
		sb.WriteString(" (")
		sb.WriteString(strconv.FormatUint(r.ID, 10))
		sb.WriteString(")")
	}
	return sb.String()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}
