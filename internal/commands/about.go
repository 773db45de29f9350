package commands

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/ailie/internal/version"
	"github.com/latoulicious/ailie/pkg/embed"
)

var startTime = time.Now()

// AboutCommand shows bot information and runtime statistics
func AboutCommand(s Sender, m *discordgo.MessageCreate, args []string) {
	logger := commandLogger("about", m)
	logger.Info("About command executed", map[string]interface{}{
		"username": m.Author.Username,
	})

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	memoryUsage := fmt.Sprintf("%.2f MB", float64(memStats.Alloc)/1024/1024)

	info := version.Get()
	buildTime := info.BuildTime
	if t, err := time.Parse(time.RFC3339, info.BuildTime); err == nil {
		buildTime = t.UTC().Format("02 Jan 2006 15:04 UTC")
	}

	about := &discordgo.MessageEmbed{
		Title:       "Bot Information",
		Description: "Guardian records keeper of Kanterbury.",
		Color:       embed.ColorGuardian,
		Timestamp:   time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Bot Name", Value: "Ailie", Inline: true},
			{Name: "Version", Value: "`" + info.Version + "`", Inline: true},
			{Name: "Commit", Value: "`" + info.ShortCommit + "`", Inline: true},
			{Name: "Uptime", Value: formatUptime(time.Since(startTime)), Inline: true},
			{Name: "Memory Usage", Value: memoryUsage, Inline: true},
			{Name: "Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "Go Version", Value: runtime.Version(), Inline: true},
			{Name: "Platform", Value: fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH), Inline: true},
			{Name: "Build Time", Value: buildTime, Inline: true},
			{Name: "Ping", Value: fmt.Sprintf("%dms", s.HeartbeatLatency().Milliseconds()), Inline: true},
		},
	}

	if ownerID != "" {
		owner := &discordgo.MessageEmbedField{Name: "Owner", Value: "<@" + ownerID + ">", Inline: true}
		about.Fields = append([]*discordgo.MessageEmbedField{owner}, about.Fields...)
	}

	sendEmbed(s, m, logger, about)
}

// formatUptime formats the uptime duration into a human-readable string
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	} else if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
