package discord

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/matillion/members-fetcher/internal/directory"
	"go.uber.org/mock/gomock"
)

func restError(status, code int) *discordgo.RESTError {
	return &discordgo.RESTError{
		Response: &http.Response{StatusCode: status, Status: http.StatusText(status)},
		Message:  &discordgo.APIErrorMessage{Code: code, Message: http.StatusText(status)},
	}
}

func TestNewClient_RequiresToken(t *testing.T) {
	if _, err := NewClient(Config{}, nil); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestNewClient_ConfiguresSession(t *testing.T) {
	client, err := NewClient(Config{Token: "Bot test-token"}, newTestLogger().Logger)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	session := client.Session()
	if session.ShouldRetryOnRateLimit {
		t.Error("ShouldRetryOnRateLimit: expected false")
	}
	if !session.SyncEvents {
		t.Error("SyncEvents: expected true")
	}
	if _, ok := session.Client.Transport.(*loggingTransport); !ok {
		t.Errorf("transport: got %T, want *loggingTransport", session.Client.Transport)
	}
}

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockDiscordAPI(ctrl)

	api.EXPECT().User("@me", gomock.Any()).Return(&discordgo.User{
		ID:         "175928847299117063",
		Username:   "exporter",
		GlobalName: "The Exporter",
	}, nil)

	firstPage := make([]*discordgo.UserGuild, userGuildsPageSize)
	for i := range firstPage {
		firstPage[i] = &discordgo.UserGuild{ID: formatID(uint64(1000 + i)), Name: "guild"}
	}
	gomock.InOrder(
		api.EXPECT().UserGuilds(userGuildsPageSize, "", "", false, gomock.Any()).Return(firstPage, nil),
		api.EXPECT().UserGuilds(userGuildsPageSize, "", formatID(uint64(1000+userGuildsPageSize-1)), false, gomock.Any()).
			Return([]*discordgo.UserGuild{{ID: "5", Name: "Last"}}, nil),
	)

	logger := newTestLogger()
	client := newClientWithAPI(api, nil, logger.Logger)

	if err := client.Authenticate(context.Background()); err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	self := client.Self()
	if self.ID != 175928847299117063 {
		t.Errorf("self ID: got %d", self.ID)
	}
	if self.DisplayName != "The Exporter" {
		t.Errorf("self display name: got %q", self.DisplayName)
	}
	if self.CreatedAt.Year() != 2016 {
		t.Errorf("self created at: got %v, want 2016", self.CreatedAt)
	}
	if got := client.guilds.Size(); got != userGuildsPageSize+1 {
		t.Errorf("guild index size: got %d, want %d", got, userGuildsPageSize+1)
	}
	if name, _ := client.guilds.Name(5); name != "Last" {
		t.Errorf("guild 5 name: got %q", name)
	}
	if !logger.HasMessage("Authenticated") {
		t.Error("expected Authenticated log entry")
	}
}

func TestAuthenticate_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockDiscordAPI(ctrl)

	api.EXPECT().User("@me", gomock.Any()).Return(nil, restError(http.StatusUnauthorized, 0))

	client := newClientWithAPI(api, nil, nil)

	err := client.Authenticate(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if matchAuthError(err) == nil {
		t.Errorf("expected auth error to survive wrapping, got %v", err)
	}
}

func TestFetchGuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockDiscordAPI(ctrl)

	api.EXPECT().GuildWithCounts("123", gomock.Any()).Return(&discordgo.Guild{
		ID:                       "123",
		Name:                     "Test Server",
		ApproximateMemberCount:   42,
		ApproximatePresenceCount: 7,
	}, nil)

	client := newClientWithAPI(api, nil, nil)

	guild, err := client.FetchGuild(context.Background(), 123)
	if err != nil {
		t.Fatalf("FetchGuild failed: %v", err)
	}

	want := directory.Guild{ID: 123, Name: "Test Server", ApproximateMemberCount: 42, ApproximatePresenceCount: 7}
	if guild != want {
		t.Errorf("guild: got %+v, want %+v", guild, want)
	}
	if name, ok := client.guilds.Name(123); !ok || name != "Test Server" {
		t.Errorf("guild index: got %q, %v", name, ok)
	}
}

func TestFetchGuild_NotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "unknown guild", err: restError(http.StatusNotFound, discordgo.ErrCodeUnknownGuild)},
		{name: "missing access", err: restError(http.StatusForbidden, discordgo.ErrCodeMissingAccess)},
		{name: "plain 404", err: restError(http.StatusNotFound, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := NewMockDiscordAPI(ctrl)
			api.EXPECT().GuildWithCounts("999", gomock.Any()).Return(nil, tt.err)

			client := newClientWithAPI(api, nil, nil)

			_, err := client.FetchGuild(context.Background(), 999)
			if !errors.Is(err, directory.ErrGuildNotFound) {
				t.Errorf("error: got %v, want ErrGuildNotFound", err)
			}
		})
	}
}

func TestFetchGuild_OtherError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockDiscordAPI(ctrl)

	api.EXPECT().GuildWithCounts("123", gomock.Any()).Return(nil, restError(http.StatusInternalServerError, 0))

	client := newClientWithAPI(api, nil, nil)

	_, err := client.FetchGuild(context.Background(), 123)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, directory.ErrGuildNotFound) {
		t.Errorf("server error must not be reported as not found: %v", err)
	}
}

func TestFetchChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockDiscordAPI(ctrl)

	api.EXPECT().GuildChannels("123", gomock.Any()).Return([]*discordgo.Channel{
		{ID: "1", GuildID: "123", Name: "general", Type: discordgo.ChannelTypeGuildText},
		{ID: "2", GuildID: "123", Name: "Lounge", Type: discordgo.ChannelTypeGuildVoice},
		{ID: "3", GuildID: "123", Name: "Text Channels", Type: discordgo.ChannelTypeGuildCategory},
		{ID: "4", GuildID: "123", Name: "announcements", Type: discordgo.ChannelTypeGuildNews},
		{ID: "5", GuildID: "123", Name: "forum", Type: discordgo.ChannelTypeGuildForum},
	}, nil)

	client := newClientWithAPI(api, nil, nil)

	channels, err := client.FetchChannels(context.Background(), 123)
	if err != nil {
		t.Fatalf("FetchChannels failed: %v", err)
	}

	wantKinds := []directory.ChannelKind{
		directory.ChannelText,
		directory.ChannelVoice,
		directory.ChannelCategory,
		directory.ChannelText,
		directory.ChannelOther,
	}
	if len(channels) != len(wantKinds) {
		t.Fatalf("channels: got %d, want %d", len(channels), len(wantKinds))
	}
	for i, kind := range wantKinds {
		if channels[i].Kind != kind {
			t.Errorf("channel %d kind: got %v, want %v", i, channels[i].Kind, kind)
		}
		if channels[i].GuildID != 123 {
			t.Errorf("channel %d guild: got %d", i, channels[i].GuildID)
		}
	}
}

func TestFetchChannels_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockDiscordAPI(ctrl)

	apiErr := restError(http.StatusForbidden, discordgo.ErrCodeMissingAccess)
	api.EXPECT().GuildChannels("123", gomock.Any()).Return(nil, apiErr)

	client := newClientWithAPI(api, nil, nil)

	if _, err := client.FetchChannels(context.Background(), 123); !errors.Is(err, apiErr) {
		t.Errorf("error: got %v, want %v", err, apiErr)
	}
}
