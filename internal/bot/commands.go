package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/models"
	"github.com/shrimpsizemoose/semla/internal/views"
)

const helpText = `Available commands:
/due - What's on the checklist right now
/week - Everything due in the next two weeks
/help - Show this message`

type commandHandler func(*tgbotapi.Message) error

func (b *Bot) routeCommands(cmd string) (commandHandler, bool) {
	commands := map[string]commandHandler{
		"start": b.handleStart,
		"due":   b.handleDue,
		"week":  b.handleWeek,
		"help":  b.handleHelp,
	}
	handler, found := commands[cmd]
	return handler, found
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if !msg.IsCommand() {
		b.sendMessage(msg.Chat.ID, "Send /help for the list of commands.")
		return
	}

	handler, ok := b.routeCommands(msg.Command())
	if !ok {
		b.sendMessage(msg.Chat.ID, "Send /help for the list of commands.")
		return
	}

	if err := handler(msg); err != nil {
		logger.Error.Printf("Command error: %v", err)
		b.sendMessage(msg.Chat.ID, fmt.Sprintf("Error: %v", err))
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) error {
	return b.sendMessage(msg.Chat.ID, "Hi! I keep an eye on the assignment tracker.\n\n"+helpText)
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) error {
	return b.sendMessage(msg.Chat.ID, helpText)
}

func (b *Bot) handleDue(msg *tgbotapi.Message) error {
	text, err := b.dueDigest()
	if err != nil {
		return err
	}
	return b.sendMessage(msg.Chat.ID, text)
}

func (b *Bot) handleWeek(msg *tgbotapi.Message) error {
	assignments, subjects, _, err := b.gateway.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	now := time.Now()
	grid := views.ProjectTwoWeekGrid(now, now, assignments, subjects)

	var lines []string
	for _, cell := range grid.Cells {
		if cell.Placeholder || len(cell.Items) == 0 {
			continue
		}
		lines = append(lines, b.formatDay(cell))
	}

	if len(lines) == 0 {
		return b.sendMessage(msg.Chat.ID, fmt.Sprintf("Nothing due between %s. Enjoy!", grid.Title))
	}

	text := fmt.Sprintf("Due %s:\n%s", grid.Title, strings.Join(lines, "\n"))
	return b.sendMessage(msg.Chat.ID, text)
}

// dueDigest renders the checklist todo head, same ordering the web client
// shows.
func (b *Bot) dueDigest() (string, error) {
	assignments, subjects, _, err := b.gateway.Load(context.Background())
	if err != nil {
		return "", fmt.Errorf("failed to load state: %w", err)
	}

	checklist := views.ProjectChecklist(assignments, subjects, views.DefaultRecentDoneLimit)

	switch checklist.State {
	case views.ChecklistEmpty:
		return "No assignments tracked yet.", nil
	case views.ChecklistAllCaughtUp:
		return "All caught up!", nil
	}

	var lines []string
	for _, item := range checklist.Todo {
		lines = append(lines, fmt.Sprintf("- %s (%s), due %s",
			item.Assignment.Name,
			item.Subject.Name,
			b.formatDueDate(item.Assignment.DueDate),
		))
	}

	return "On the checklist:\n" + strings.Join(lines, "\n"), nil
}

func (b *Bot) formatDay(cell views.DayCell) string {
	names := make([]string, 0, len(cell.Items))
	for _, item := range cell.Items {
		names = append(names, fmt.Sprintf("%s (%s)", item.Assignment.Name, item.Subject.Name))
	}
	return fmt.Sprintf("%s: %s", b.formatDueDate(cell.Date), strings.Join(names, ", "))
}

func (b *Bot) formatDueDate(iso string) string {
	date, err := time.Parse(models.DueDateFormat, iso)
	if err != nil {
		return iso
	}
	return date.Format(b.config.Display.DateFormat)
}
