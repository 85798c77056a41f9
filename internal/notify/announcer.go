package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/event"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
)

// messageSender is the slice of the Discord session the announcer uses.
// Announcements go out over the REST API, so no gateway connection is opened.
type messageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer posts level-up and badge announcements to a Discord channel.
// An empty channel ID disables announcements without unsubscribing.
type Announcer struct {
	sender    messageSender
	channelID string
}

// NewAnnouncer creates an announcer backed by a Discord session
func NewAnnouncer(token, channelID string) (*Announcer, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Announcer{
		sender:    session,
		channelID: channelID,
	}, nil
}

// Register subscribes the announcer to the events it reports on
func (a *Announcer) Register(bus event.Bus) {
	bus.Subscribe(event.LevelUp, a.HandleLevelUp)
	bus.Subscribe(event.AchievementUnlocked, a.HandleAchievementUnlocked)
}

// HandleLevelUp announces a level-up with its new tier title
func (a *Announcer) HandleLevelUp(ctx context.Context, evt event.Event) error {
	if a.channelID == "" {
		return nil
	}

	payload, err := event.DecodePayload[domain.LevelUpPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode level up payload: %w", err)
	}

	name := payload.Username
	if name == "" {
		name = FallbackAlchemistName
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Level Up!",
		Description: fmt.Sprintf("**%s** reached **level %d** and is now a %s!", name, payload.NewLevel, payload.Title),
		Color:       ColorLevelUp,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "New Level",
				Value:  fmt.Sprintf("%d", payload.NewLevel),
				Inline: true,
			},
			{
				Name:   "Title",
				Value:  payload.Title,
				Inline: true,
			},
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: EmbedFooter,
		},
	}

	if payload.BonusXP > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Milestone Bonus",
			Value:  fmt.Sprintf("%d XP", payload.BonusXP),
			Inline: true,
		})
	}

	return a.send(ctx, evt.Type, embed)
}

// HandleAchievementUnlocked announces a first-time badge unlock
func (a *Announcer) HandleAchievementUnlocked(ctx context.Context, evt event.Event) error {
	if a.channelID == "" {
		return nil
	}

	payload, err := event.DecodePayload[domain.AchievementUnlockedPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode achievement unlocked payload: %w", err)
	}

	name := payload.Username
	if name == "" {
		name = FallbackAlchemistName
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Achievement Unlocked!",
		Description: fmt.Sprintf("**%s** earned **%s**", name, payload.Title),
		Color:       rarityColor(payload.Rarity),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Badge",
				Value:  payload.Title,
				Inline: true,
			},
			{
				Name:   "Rarity",
				Value:  payload.Rarity,
				Inline: true,
			},
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: EmbedFooter,
		},
	}

	return a.send(ctx, evt.Type, embed)
}

func (a *Announcer) send(ctx context.Context, eventType event.Type, embed *discordgo.MessageEmbed) error {
	log := logger.FromContext(ctx)

	if _, err := a.sender.ChannelMessageSendEmbed(a.channelID, embed); err != nil {
		log.Error(LogMsgAnnouncementFailed, "event_type", eventType, "error", err)
		return err
	}

	log.Info(LogMsgAnnouncementSent, "event_type", eventType, "title", embed.Title)
	return nil
}
