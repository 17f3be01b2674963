package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/kiroku-dev/sensekibot/internal/domain"
	"github.com/kiroku-dev/sensekibot/internal/metrics"
	"github.com/kiroku-dev/sensekibot/internal/record"
)

// StatsCommand returns the stats command definition and handler.
// Lists every player's record in the current channel as an embed.
func StatsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "stats",
		Description: "このチャンネルの戦績一覧を表示します",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc record.Service) {
		if !deferResponse(s, i) {
			return
		}

		records, err := svc.ListRecords(commandContext(), i.ChannelID)
		if err != nil {
			slog.Error("Failed to list records", "error", err, "channel_id", i.ChannelID)
			metrics.CommandErrors.WithLabelValues(cmd.Name).Inc()
			respondFriendlyError(s, i, err)
			return
		}

		if len(records) == 0 {
			respondContent(s, i, MsgStatsEmpty)
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       MsgStatsTitle,
			Description: formatStatsList(records),
			Color:       0x3498db, // Blue
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// formatStatsList renders one line per player: counters plus win rate
func formatStatsList(records []domain.PlayerRecord) string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, fmt.Sprintf(MsgStatsLine,
			rec.PlayerName, rec.Win, rec.Lose, rec.Games, rec.WinRate()))
	}
	return strings.Join(lines, "\n")
}
